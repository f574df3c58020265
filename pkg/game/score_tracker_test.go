package game

import "testing"

func TestScoreTrackerAward(t *testing.T) {
	st := NewScoreTracker(10)
	st.ResetForCrash(3)

	for i := 1; i <= 3; i++ {
		st.Award()
		if st.Score != i*10 {
			t.Errorf("after %d awards expected score %d, got %d", i, i*10, st.Score)
		}
		if st.HighScore != st.Score {
			t.Errorf("high score should follow a new best, got %d vs %d", st.HighScore, st.Score)
		}
	}
	if !st.LevelComplete() {
		t.Error("expected level complete at 30/30")
	}
}

func TestScoreTrackerCrashKeepsHighScore(t *testing.T) {
	st := NewScoreTracker(10)
	st.ResetForCrash(5)
	st.Award()
	st.Award()

	st.ResetForCrash(7)

	if st.Score != 0 {
		t.Errorf("expected score 0 after crash, got %d", st.Score)
	}
	if st.WinningScore != 70 {
		t.Errorf("expected winning score 70, got %d", st.WinningScore)
	}
	if st.HighScore != 20 {
		t.Errorf("expected high score 20 to survive the crash, got %d", st.HighScore)
	}
	if st.Level != 1 {
		t.Errorf("expected level 1 after crash, got %d", st.Level)
	}

	st.Award()
	if st.HighScore != 20 {
		t.Errorf("high score must not drop below its best, got %d", st.HighScore)
	}
}

func TestScoreTrackerAdvanceLevelIsCumulative(t *testing.T) {
	st := NewScoreTracker(10)
	st.ResetForCrash(1)
	st.Award()

	st.AdvanceLevel(4)

	if st.WinningScore != 50 {
		t.Errorf("expected winning score 10+40=50, got %d", st.WinningScore)
	}
	if st.Score != 10 {
		t.Errorf("score should carry over, got %d", st.Score)
	}
	if st.Level != 2 {
		t.Errorf("expected level 2, got %d", st.Level)
	}
	if st.LevelComplete() {
		t.Error("level should not be complete right after advancing")
	}
}

func TestScoreTrackerHUDText(t *testing.T) {
	st := NewScoreTracker(10)
	if got := st.HUDText(); got != "Score: 0 High Score: 0" {
		t.Errorf("unexpected HUD %q", got)
	}
	st.ResetForCrash(20)
	for i := 0; i < 12; i++ {
		st.Award()
	}
	if got := st.HUDText(); got != "Score:120 High Score:120" {
		t.Errorf("unexpected HUD %q", got)
	}
}
