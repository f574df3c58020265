package systems

import (
	"testing"
	"time"

	"github.com/decker502/alienblitz/pkg/game"
)

func TestBombDropsFromPlaneAndFalls(t *testing.T) {
	loop, _ := newTestLoop(t, nil, safeField(1))
	loop.Start()
	gs := loop.State()
	bomb := gs.BombPosition()

	if !loop.DropBomb() {
		t.Fatal("first drop should be accepted")
	}
	// 投弹立即执行一步：在飞机下方一个步长
	if bomb.X != -363 || bomb.Y != 263 {
		t.Errorf("expected bomb at (-363, 263), got (%.1f, %.1f)", bomb.X, bomb.Y)
	}
	if !gs.Bomb().Active || gs.BombArmed {
		t.Error("bomb should be active and the trigger disarmed")
	}

	loop.Update(40 * time.Millisecond)
	if bomb.Y != 251 {
		t.Errorf("expected y=251 after one delay, got %.1f", bomb.Y)
	}
	if bomb.X != -363 {
		t.Errorf("bomb must fall straight down, x=%.1f", bomb.X)
	}
}

func TestAtMostOneBomb(t *testing.T) {
	loop, _ := newTestLoop(t, nil, safeField(1))
	loop.Start()
	gs := loop.State()
	bomb := gs.BombPosition()

	loop.DropBomb()
	startY := bomb.Y
	for i := 0; i < 10; i++ {
		if loop.DropBomb() {
			t.Fatalf("trigger %d accepted during a drop", i)
		}
		loop.Update(4 * time.Millisecond)
	}

	// 过了 40ms：只有一条链条，恰好再走一步
	if bomb.Y != startY-12 {
		t.Errorf("expected a single bomb chain at y=%.1f, got %.1f", startY-12, bomb.Y)
	}
}

func TestBombLeavesPlayfield(t *testing.T) {
	loop, sounds := newTestLoop(t, nil, safeField(1))
	loop.Start()
	gs := loop.State()
	bomb := gs.BombPosition()

	loop.DropBomb()
	// 从 y=263 还需要 45 步才低于 -275
	runFor(loop, 2*time.Second)

	if gs.Bomb().Active {
		t.Errorf("bomb should be gone, y=%.1f", bomb.Y)
	}
	if !gs.BombArmed {
		t.Error("trigger should be re-armed after the drop")
	}
	if gs.Score.Score != 0 {
		t.Errorf("a miss must not score, got %d", gs.Score.Score)
	}
	if sounds.count(game.SoundBombed) != 0 {
		t.Error("a miss must not play the hit sound")
	}
	if !loop.DropBomb() {
		t.Error("a new drop should be accepted")
	}
}

func TestBombHitDestroysCell(t *testing.T) {
	// 第一次投弹位置下方叠放的两格
	field := testField{
		{x: -363, y: -256.25, level: 0},
		{x: -363, y: -218.75, level: 1},
	}
	loop, sounds := newTestLoop(t, nil, field)
	loop.Start()
	gs := loop.State()

	loop.DropBomb()
	runFor(loop, 2*time.Second)

	if gs.Score.Score != 10 || gs.Score.HighScore != 10 {
		t.Errorf("expected score 10 / high 10, got %d / %d", gs.Score.Score, gs.Score.HighScore)
	}
	ys := cellYs(gs)
	if len(ys) != 1 {
		t.Fatalf("expected one cell left, got %d", len(ys))
	}
	if ys[0] != -256.25 {
		t.Error("the top cell should be destroyed first")
	}
	if gs.Bomb().Active || !gs.BombArmed {
		t.Error("drop should end on a hit")
	}
	if sounds.count(game.SoundBombed) != 1 {
		t.Errorf("expected one hit sound, got %v", sounds.played)
	}
}

func TestBombEndsWhenNotPlaying(t *testing.T) {
	loop, _ := newTestLoop(t, nil, fieldOf([2]float64{-363, -256.25}))
	loop.Start()
	gs := loop.State()

	gs.Playing = false
	loop.DropBomb()

	if gs.Bomb().Active {
		t.Error("a drop while not playing should end on its first tick")
	}
	if gs.Score.Score != 0 || gs.CellCount() != 1 {
		t.Error("a drop while not playing must not score")
	}
}
