package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/alienblitz/pkg/ecs"
	"github.com/decker502/alienblitz/pkg/entities"
	"github.com/decker502/alienblitz/pkg/game"
	"github.com/decker502/alienblitz/pkg/sched"
)

// FieldGenerator 在实体管理器中生成一片新的塔楼格子
type FieldGenerator func(em *ecs.EntityManager) []ecs.EntityID

// RestartInfo 一次重开的结果
type RestartInfo struct {
	NewLevel      bool
	Cells         int // 新塔楼的格子数
	ScoreBefore   int
	WinningBefore int
}

// LevelSystem 关卡系统
// 职责：
// - 坠毁后暂停并以清零规则重开
// - 过关后以累加规则重开
// - 重开时替换塔楼并把飞机放回起点
type LevelSystem struct {
	state  *game.GameState
	sched  *sched.Scheduler
	sounds game.SoundPlayer
	plane  *PlaneSystem
	bomb   *BombSystem

	generate  FieldGenerator
	onRestart func(RestartInfo)
}

// NewLevelSystem 创建关卡系统，默认使用随机塔楼生成器
func NewLevelSystem(gs *game.GameState, s *sched.Scheduler, rng *rand.Rand, sounds game.SoundPlayer) *LevelSystem {
	spec := entities.TowerFieldSpecFromConfig(gs.Config)
	return &LevelSystem{
		state:  gs,
		sched:  s,
		sounds: sounds,
		generate: func(em *ecs.EntityManager) []ecs.EntityID {
			return entities.NewTowerField(em, rng, spec)
		},
	}
}

// Restart 替换塔楼并把飞机放回起点
//
// 参数:
//   - newLevel: false 为坠毁规则（得分清零、重新计算目标分），
//     true 为过关规则（目标分累加、得分保留）
//
// 两种情况都会停止炸弹、恢复游戏，并立即执行一次飞机节拍重新开始链条。
func (s *LevelSystem) Restart(newLevel bool) {
	gs := s.state
	em := gs.EntityManager
	info := RestartInfo{
		NewLevel:      newLevel,
		ScoreBefore:   gs.Score.Score,
		WinningBefore: gs.Score.WinningScore,
	}

	if old := gs.Cells(); len(old) > 0 {
		for _, id := range old {
			em.DestroyEntity(id)
		}
		log.Printf("[LevelSystem] Cleared %d cells", em.RemoveMarkedEntities())
	}

	gs.Plane().Crashed = false
	s.generate(em)
	info.Cells = gs.CellCount()

	if newLevel {
		gs.Score.AdvanceLevel(info.Cells)
	} else {
		gs.Score.ResetForCrash(info.Cells)
	}

	s.bomb.Stop()
	plane, bomb := gs.PlanePosition(), gs.BombPosition()
	plane.X, plane.Y = gs.Layout.StartPosition()
	bomb.X, bomb.Y = gs.Layout.StartPosition()
	gs.Playing = true
	gs.Epoch++

	log.Printf("[LevelSystem] %v: level %d, %d cells, score %d, target %d (new level: %v)",
		s.sched.Now(), gs.Score.Level, info.Cells, gs.Score.Score, gs.Score.WinningScore, newLevel)

	if s.onRestart != nil {
		s.onRestart(info)
	}
	s.plane.Tick()
}

// Crash 停止游戏，显示坠毁的飞机，坠毁暂停结束后重开
func (s *LevelSystem) Crash() {
	gs := s.state
	gs.Playing = false
	gs.Plane().Crashed = true
	s.bomb.Stop()
	s.sounds.PlaySound(game.SoundPlaneCrash)

	log.Printf("[LevelSystem] %v: plane crashed with score %d (high %d)",
		s.sched.Now(), gs.Score.Score, gs.Score.HighScore)
	s.after(gs.Config.CrashPause(), func() { s.Restart(false) })
}

// CompleteLevel 播放胜利音效并进入下一片塔楼
// 配置了过关暂停时，暂停期间游戏停止
func (s *LevelSystem) CompleteLevel() {
	gs := s.state
	s.sounds.PlaySound(game.SoundVictory)
	log.Printf("[LevelSystem] %v: level %d complete with score %d",
		s.sched.Now(), gs.Score.Level, gs.Score.Score)

	pause := gs.Config.LevelPause()
	if pause > 0 {
		gs.Playing = false
		s.bomb.Stop()
	}
	s.after(pause, func() { s.Restart(true) })
}

func (s *LevelSystem) after(d time.Duration, fn func()) {
	if d <= 0 {
		fn()
		return
	}
	s.sched.After(d, fn)
}
