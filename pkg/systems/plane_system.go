package systems

import (
	"log"

	"github.com/decker502/alienblitz/pkg/game"
	"github.com/decker502/alienblitz/pkg/sched"
)

// PlaneSystem 飞机系统
//
// 飞机每个节拍向右移动 Plane.Step，越过右边界后回到左边界并下降一格。
// 每个节拍以下列结果之一结束：
//   - 坠毁（PlaneHitRadius 内有格子，或低于场地底部）
//   - 过关（得分达到目标分）
//   - Plane.DelayMs 之后的下一个节拍
type PlaneSystem struct {
	state *game.GameState
	sched *sched.Scheduler
	level *LevelSystem
}

// NewPlaneSystem 创建飞机系统，关卡系统由 GameLoop 接上
func NewPlaneSystem(gs *game.GameState, s *sched.Scheduler) *PlaneSystem {
	return &PlaneSystem{state: gs, sched: s}
}

// Tick 移动飞机一步并决定接下来发生什么
func (s *PlaneSystem) Tick() {
	gs := s.state
	pos := gs.PlanePosition()

	if pos.X > gs.Layout.HalfWidth {
		pos.X = gs.Layout.Left
		pos.Y -= gs.Layout.CellSize
	} else {
		pos.X += gs.Config.Plane.Step
	}

	if s.collides() {
		s.level.Crash()
		return
	}
	if gs.Score.LevelComplete() {
		s.level.CompleteLevel()
		return
	}

	epoch := gs.Epoch
	s.sched.After(gs.Config.PlaneDelay(), func() {
		// 期间发生过重开的话，新的链条已经启动
		if s.state.Epoch == epoch {
			s.Tick()
		}
	})
}

func (s *PlaneSystem) collides() bool {
	gs := s.state
	p := gs.PlanePosition()

	if _, cell, hit := findCellWithin(gs.EntityManager, p.X, p.Y, gs.PlaneHitRadius()); hit {
		log.Printf("[PlaneSystem] Plane at (%.1f, %.1f) hit cell (%.1f, %.1f)", p.X, p.Y, cell.X, cell.Y)
		return true
	}
	if p.Y < gs.Layout.Ground() {
		log.Printf("[PlaneSystem] Plane at (%.1f, %.1f) flew into the ground", p.X, p.Y)
		return true
	}
	return false
}
