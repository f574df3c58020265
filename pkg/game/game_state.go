package game

import (
	"github.com/decker502/alienblitz/pkg/components"
	"github.com/decker502/alienblitz/pkg/config"
	"github.com/decker502/alienblitz/pkg/ecs"
	"github.com/decker502/alienblitz/pkg/entities"
)

// GameState 一局游戏的全部可变状态
//
// 由调用方显式传给各个系统，没有包级实例。所有访问都发生在帧循环所在的 goroutine。
// 飞机、炸弹与塔楼格子都是 EntityManager 中的实体。
type GameState struct {
	Config *config.GameConfig
	Layout config.PlayfieldLayout

	EntityManager *ecs.EntityManager
	PlaneEntity   ecs.EntityID
	BombEntity    ecs.EntityID

	Score *ScoreTracker

	// Playing 坠毁到下一次重开之间为 false
	Playing bool

	// Epoch 每次重开加一，旧一轮开始的投弹不再计分
	Epoch uint64

	// BombArmed 投弹过程中为 false
	BombArmed bool
}

// NewGameState 创建开局前的状态
//
// 飞机和炸弹实体放在起始位置，塔楼格子由第一次重开生成。
func NewGameState(cfg *config.GameConfig) *GameState {
	gs := &GameState{
		Config:        cfg,
		Layout:        cfg.Layout(),
		EntityManager: ecs.NewEntityManager(),
		Score:         NewScoreTracker(cfg.Score.PointsPerCell),
		BombArmed:     true,
	}
	x, y := gs.Layout.StartPosition()
	gs.PlaneEntity = entities.NewPlaneEntity(gs.EntityManager, x, y)
	gs.BombEntity = entities.NewBombEntity(gs.EntityManager, x, y)
	return gs
}

// PlanePosition 飞机的位置组件
func (gs *GameState) PlanePosition() *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](gs.EntityManager, gs.PlaneEntity)
	return pos
}

// Plane 飞机组件
func (gs *GameState) Plane() *components.PlaneComponent {
	plane, _ := ecs.GetComponent[*components.PlaneComponent](gs.EntityManager, gs.PlaneEntity)
	return plane
}

// BombPosition 炸弹的位置组件
func (gs *GameState) BombPosition() *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](gs.EntityManager, gs.BombEntity)
	return pos
}

// Bomb 炸弹组件
func (gs *GameState) Bomb() *components.BombComponent {
	bomb, _ := ecs.GetComponent[*components.BombComponent](gs.EntityManager, gs.BombEntity)
	return bomb
}

// Cells 剩余的塔楼格子，按实体ID升序
func (gs *GameState) Cells() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.CellComponent, *components.PositionComponent](gs.EntityManager)
}

// CellCount 剩余格子数
func (gs *GameState) CellCount() int {
	return len(gs.Cells())
}

// PlaneHitRadius 飞机与格子中心的距离小于该值即坠毁
func (gs *GameState) PlaneHitRadius() float64 {
	return gs.Layout.CellSize/2 + gs.Config.Plane.CollisionMargin
}

// BombHitRadius 炸弹与格子中心的距离小于该值即命中
func (gs *GameState) BombHitRadius() float64 {
	return gs.Layout.CellSize/2 + gs.Config.Bomb.CollisionMargin
}
