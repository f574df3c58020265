package systems

import (
	"log"

	"github.com/decker502/alienblitz/pkg/game"
	"github.com/decker502/alienblitz/pkg/sched"
)

// BombSystem 炸弹系统
// 职责：
// - 从飞机当前位置投下唯一的炸弹
// - 每个下落步检测命中的塔楼格子并计分
// - 炸弹落出场地或命中后重新装填
//
// 投弹过程中扳机处于未装填状态，所以无论 Trigger 调用多少次，场上最多一颗炸弹。
// 每次投弹有编号，上一次投弹遗留的下落步什么都不做。
type BombSystem struct {
	state  *game.GameState
	sched  *sched.Scheduler
	sounds game.SoundPlayer

	drop uint64 // 当前或上一次投弹的编号
}

// NewBombSystem 创建炸弹系统
func NewBombSystem(gs *game.GameState, s *sched.Scheduler, sounds game.SoundPlayer) *BombSystem {
	return &BombSystem{state: gs, sched: s, sounds: sounds}
}

// Trigger 从飞机位置开始一次投弹
//
// 返回:
//   - bool: 正在投弹时返回 false
func (s *BombSystem) Trigger() bool {
	gs := s.state
	if !gs.BombArmed {
		return false
	}

	plane := gs.PlanePosition()
	pos := gs.BombPosition()
	pos.X, pos.Y = plane.X, plane.Y

	gs.BombArmed = false
	gs.Bomb().Active = true
	s.drop++
	s.tick(s.drop)
	return true
}

// Stop 结束当前投弹且不计分：隐藏炸弹并重新装填
// 没有投弹时调用也是安全的
func (s *BombSystem) Stop() {
	s.state.Bomb().Active = false
	s.state.BombArmed = true
}

func (s *BombSystem) tick(drop uint64) {
	gs := s.state
	if drop != s.drop || !gs.Bomb().Active {
		return
	}

	pos := gs.BombPosition()
	pos.Y -= gs.Config.Bomb.Step

	if gs.Playing && s.hitCell() {
		s.Stop()
		return
	}
	if pos.Y < gs.Layout.Ground() || !gs.Playing {
		s.Stop()
		return
	}

	s.sched.After(gs.Config.BombDelay(), func() { s.tick(drop) })
}

// hitCell 摧毁 BombHitRadius 内的第一个格子并计分
func (s *BombSystem) hitCell() bool {
	gs := s.state
	bomb := gs.BombPosition()
	id, cell, found := findCellWithin(gs.EntityManager, bomb.X, bomb.Y, gs.BombHitRadius())
	if !found {
		return false
	}

	s.sounds.PlaySound(game.SoundBombed)
	gs.EntityManager.DestroyEntity(id)
	gs.EntityManager.RemoveMarkedEntities()
	gs.Score.Award()
	log.Printf("[BombSystem] Destroyed cell (%.1f, %.1f), score %d, high %d, %d cells left",
		cell.X, cell.Y, gs.Score.Score, gs.Score.HighScore, gs.CellCount())
	return true
}
