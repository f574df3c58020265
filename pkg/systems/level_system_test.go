package systems

import (
	"testing"
	"time"

	"github.com/decker502/alienblitz/pkg/components"
	"github.com/decker502/alienblitz/pkg/ecs"
	"github.com/decker502/alienblitz/pkg/game"
)

func TestLevelTransitions(t *testing.T) {
	// 第一片塔楼正挡在飞机航线上：第一个节拍就坠毁
	loop, sounds := newTestLoop(t, nil, fieldOf([2]float64{-356.25, 256.25}))
	gs := loop.State()

	var infos []RestartInfo
	loop.OnRestart(func(info RestartInfo) { infos = append(infos, info) })

	loop.Start()
	if len(infos) != 1 || infos[0].NewLevel || infos[0].Cells != 1 {
		t.Fatalf("first restart = %+v", infos)
	}
	if gs.Playing || !gs.Plane().Crashed {
		t.Fatalf("expected an immediate crash, playing=%v crashed=%v", gs.Playing, gs.Plane().Crashed)
	}
	if sounds.count(game.SoundPlaneCrash) != 1 {
		t.Errorf("crash sound played %d times, want 1", sounds.count(game.SoundPlaneCrash))
	}

	loop.Update(999 * time.Millisecond)
	if len(infos) != 1 {
		t.Fatalf("restarted before the crash pause ended")
	}

	loop.Update(time.Millisecond)
	if len(infos) != 2 {
		t.Fatalf("no restart after the crash pause")
	}
	if got := infos[1]; got.NewLevel || got.Cells != 3 {
		t.Errorf("crash restart = %+v", got)
	}
	if gs.Epoch != 2 || !gs.Playing || gs.Plane().Crashed {
		t.Errorf("after crash restart: epoch=%d playing=%v crashed=%v", gs.Epoch, gs.Playing, gs.Plane().Crashed)
	}
	if gs.Score.Score != 0 || gs.Score.WinningScore != 30 {
		t.Errorf("score %d target %d, want 0 and 30", gs.Score.Score, gs.Score.WinningScore)
	}

	loop.level.CompleteLevel()
	if len(infos) != 3 {
		t.Fatalf("level completion with no pause should restart at once")
	}
	want := RestartInfo{NewLevel: true, Cells: 3, ScoreBefore: 0, WinningBefore: 30}
	if infos[2] != want {
		t.Errorf("level restart = %+v, want %+v", infos[2], want)
	}
	if gs.Score.WinningScore != 60 || gs.Score.Level != 2 || gs.Epoch != 3 {
		t.Errorf("after level: target %d level %d epoch %d", gs.Score.WinningScore, gs.Score.Level, gs.Epoch)
	}
	if sounds.count(game.SoundVictory) != 1 {
		t.Errorf("victory sound played %d times, want 1", sounds.count(game.SoundVictory))
	}
}

func TestRestartReplacesCellEntities(t *testing.T) {
	loop, _ := newTestLoop(t, nil, fieldOf([2]float64{-356.25, 256.25}, [2]float64{0, -256.25}))
	loop.Start()
	gs := loop.State()

	old := gs.Cells()
	if len(old) != 2 {
		t.Fatalf("expected two cells before the crash restart, got %d", len(old))
	}

	loop.Update(time.Second)
	cells := gs.Cells()
	if len(cells) != 3 {
		t.Fatalf("expected the three-cell field after the restart, got %d", len(cells))
	}
	for _, id := range old {
		if _, ok := ecs.GetComponent[*components.CellComponent](gs.EntityManager, id); ok {
			t.Errorf("cell entity %d survived the restart", id)
		}
	}
	if _, ok := ecs.GetComponent[*components.PlaneComponent](gs.EntityManager, gs.PlaneEntity); !ok {
		t.Error("restart must keep the plane entity")
	}
	if _, ok := ecs.GetComponent[*components.BombComponent](gs.EntityManager, gs.BombEntity); !ok {
		t.Error("restart must keep the bomb entity")
	}
}
