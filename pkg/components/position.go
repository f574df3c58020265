package components

import "math"

// PositionComponent 实体在游戏世界中的位置
// 坐标系以游戏区中心为原点，X 向右，Y 向上
type PositionComponent struct {
	X, Y float64
}

// DistanceTo 返回到另一位置的欧氏距离
func (p *PositionComponent) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}
