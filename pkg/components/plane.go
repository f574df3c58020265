package components

// PlaneComponent 玩家飞机
// 从左向右飞行，越过右边界后回到左边并下降一格
type PlaneComponent struct {
	Crashed bool // 坠毁后以坠毁颜色绘制，直到下次重开
}

// BombComponent 唯一的一颗炸弹
type BombComponent struct {
	Active bool // 可见且正在下落
}
