package entities

import (
	"image/color"
	"math/rand"

	"github.com/decker502/alienblitz/pkg/components"
	"github.com/decker502/alienblitz/pkg/config"
	"github.com/decker502/alienblitz/pkg/ecs"
)

// TowerFieldSpec 生成塔楼阵列所需的参数
type TowerFieldSpec struct {
	Layout         config.PlayfieldLayout
	MaxTowerHeight int
	Palette        []color.RGBA
}

// TowerFieldSpecFromConfig 从游戏配置构建 TowerFieldSpec
func TowerFieldSpecFromConfig(cfg *config.GameConfig) TowerFieldSpec {
	return TowerFieldSpec{
		Layout:         cfg.Layout(),
		MaxTowerHeight: cfg.Field.MaxTowerHeight,
		Palette:        cfg.Palette(),
	}
}

// NewTowerField 创建一排随机高度的塔楼，每列一座
//
// 参数:
//   - em: EntityManager 实例
//   - rng: 随机源，决定塔高和颜色
//   - spec: 布局、最大塔高和调色板
//
// 返回:
//   - []ecs.EntityID: 所有格子实体，按列从左到右、每列自下而上排列
//
// 塔高在 [1, MaxTowerHeight] 内均匀分布，每格颜色从调色板均匀选取。
func NewTowerField(em *ecs.EntityManager, rng *rand.Rand, spec TowerFieldSpec) []ecs.EntityID {
	layout := spec.Layout
	cells := make([]ecs.EntityID, 0, layout.NumTowers*spec.MaxTowerHeight)

	first := layout.FirstColumn()
	for col := first; col < first+layout.NumTowers; col++ {
		x := layout.ColumnX(col)
		height := 1 + rng.Intn(spec.MaxTowerHeight)

		for level := 0; level < height; level++ {
			clr := spec.Palette[rng.Intn(len(spec.Palette))]
			cells = append(cells, NewCellEntity(em, x, layout.RowY(level), col, level, clr))
		}
	}

	return cells
}

// NewCellEntity 创建一个塔楼格子实体
//
// 参数:
//   - em: EntityManager 实例
//   - x, y: 格子中心（世界坐标）
//   - column, level: 所在列和层
//   - clr: 格子颜色
//
// 返回:
//   - ecs.EntityID: 新实体ID
func NewCellEntity(em *ecs.EntityManager, x, y float64, column, level int, clr color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CellComponent{
		Column: column,
		Level:  level,
		Color:  clr,
	})
	return id
}
