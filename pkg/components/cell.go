package components

import "image/color"

// CellComponent 塔楼中可被炸毁的一格
//
// 同一列的格子组成一座塔，Level 0 贴地。被炸毁的格子直接删除实体，
// 其余格子保持原位，所以塔中间可能出现空洞。
type CellComponent struct {
	Column int        // 所在列，范围 [-N/2, N/2)
	Level  int        // 堆叠层数，0 为地面
	Color  color.RGBA // 从调色板随机选取
}
