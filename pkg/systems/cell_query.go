package systems

import (
	"github.com/decker502/alienblitz/pkg/components"
	"github.com/decker502/alienblitz/pkg/ecs"
)

// findCellWithin 查找与 (x, y) 距离不超过 radius 的第一个塔楼格子
//
// 按实体ID升序检查，即塔楼从左到右、每座从下到上的生成顺序。
//
// 返回:
//   - ecs.EntityID: 格子实体
//   - *components.PositionComponent: 格子中心
//   - bool: 是否找到
func findCellWithin(em *ecs.EntityManager, x, y, radius float64) (ecs.EntityID, *components.PositionComponent, bool) {
	cells := ecs.GetEntitiesWith2[
		*components.CellComponent,
		*components.PositionComponent,
	](em)

	for _, id := range cells {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.DistanceTo(x, y) <= radius {
			return id, pos, true
		}
	}
	return 0, nil, false
}
