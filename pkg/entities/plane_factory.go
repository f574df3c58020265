package entities

import (
	"github.com/decker502/alienblitz/pkg/components"
	"github.com/decker502/alienblitz/pkg/ecs"
)

// NewPlaneEntity 创建飞机实体
//
// 参数:
//   - em: EntityManager 实例
//   - x, y: 初始位置（世界坐标）
//
// 返回:
//   - ecs.EntityID: 飞机实体ID
func NewPlaneEntity(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.PlaneComponent{})
	return id
}

// NewBombEntity 创建炸弹实体，初始为隐藏状态
func NewBombEntity(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.BombComponent{})
	return id
}
