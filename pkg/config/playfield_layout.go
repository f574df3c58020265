package config

// PlayfieldLayout 由窗口与塔楼配置推导出的游戏区几何参数
//
// 游戏逻辑使用以游戏区中心为原点的坐标系：X 向右，Y 向上。
// 渲染器负责转换到屏幕坐标（见 utils.Viewport）。
//
// 奇数尺寸时左/下边界向下取整：宽 751 的游戏区横跨 [-376, 375]。
type PlayfieldLayout struct {
	// Width, Height 游戏区尺寸（窗口尺寸减去边距）
	Width  float64
	Height float64

	// HalfWidth = floor(width/2)，飞机越过它就回到左边
	HalfWidth float64
	// HalfHeight = floor(height/2)，顶行高度
	HalfHeight float64
	// Left = floor(-width/2)，飞机回绕后的 X
	Left float64
	// Bottom = floor(-height/2)，地面高度
	Bottom float64

	// CellSize 塔楼格子边长：游戏区宽度 / 塔楼数量
	CellSize float64

	// Offset 让格子在列中居中，塔楼数为奇数时多偏移半格
	Offset float64

	NumTowers int
}

// Layout 推导游戏区几何参数
func (c *GameConfig) Layout() PlayfieldLayout {
	width := c.Window.Width - c.Window.Margin
	height := c.Window.Height - c.Window.Margin
	n := c.Field.NumTowers

	cellSize := float64(width) / float64(n)
	return PlayfieldLayout{
		Width:      float64(width),
		Height:     float64(height),
		HalfWidth:  float64(floorDiv(width, 2)),
		HalfHeight: float64(floorDiv(height, 2)),
		Left:       float64(floorDiv(-width, 2)),
		Bottom:     float64(floorDiv(-height, 2)),
		CellSize:   cellSize,
		Offset:     float64(n%2)*cellSize/2 + cellSize/2,
		NumTowers:  n,
	}
}

// StartPosition 重开时飞机和炸弹的位置：左上角
func (l PlayfieldLayout) StartPosition() (x, y float64) {
	return l.Left, l.HalfHeight
}

// Ground 游戏区底部的 Y 坐标
func (l PlayfieldLayout) Ground() float64 {
	return l.Bottom
}

// ColumnX 返回第 col 列的中心 X，col 范围 [FirstColumn, FirstColumn+NumTowers)
func (l PlayfieldLayout) ColumnX(col int) float64 {
	return float64(col)*l.CellSize + l.Offset
}

// RowY 返回第 level 层格子的中心 Y（0 为贴地一层）
func (l PlayfieldLayout) RowY(level int) float64 {
	return l.Ground() + float64(level)*l.CellSize + l.Offset
}

// FirstColumn 返回最左列的编号
// 向下取整，奇数塔楼数时以中间一列为对称轴
func (l PlayfieldLayout) FirstColumn() int {
	return floorDiv(-l.NumTowers, 2)
}

// floorDiv 向负无穷取整的整数除法
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
