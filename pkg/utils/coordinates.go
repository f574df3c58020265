// Package utils 两个渲染器共用的坐标换算、帧计时与随机数工具
//
// # 坐标系
//
//   - 世界坐标：游戏逻辑使用，原点在窗口中心，X 向右，Y 向上
//   - 屏幕坐标：ebiten 像素，原点在左上角，Y 向下
//   - 网格坐标：终端字符格，原点在左上角，每个字符一个单位
//
// 换算：
//
//	screenX = worldX + width/2
//	screenY = height/2 - worldY
package utils

// Viewport 把世界坐标映射到 Width x Height 的绘制表面
type Viewport struct {
	Width  float64
	Height float64
}

// WorldToScreen 世界坐标转表面坐标
func (v Viewport) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	return worldX + v.Width/2, v.Height/2 - worldY
}

// GridMapper 把世界坐标缩放到 Cols x Rows 的终端网格
type GridMapper struct {
	World Viewport // 网格显示的世界范围
	Cols  int
	Rows  int
}

// WorldToGrid 返回包含该世界坐标的网格单元
//
// 返回:
//   - col, row: 网格列与行
//   - ok: 点落在网格外时为 false
func (g GridMapper) WorldToGrid(worldX, worldY float64) (col, row int, ok bool) {
	if g.Cols <= 0 || g.Rows <= 0 || g.World.Width <= 0 || g.World.Height <= 0 {
		return 0, 0, false
	}
	sx, sy := g.World.WorldToScreen(worldX, worldY)
	fx := sx / g.World.Width * float64(g.Cols)
	fy := sy / g.World.Height * float64(g.Rows)
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	col, row = int(fx), int(fy)
	if col >= g.Cols || row >= g.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// CellSize 一个网格单元对应的世界尺寸
func (g GridMapper) CellSize() (w, h float64) {
	return g.World.Width / float64(g.Cols), g.World.Height / float64(g.Rows)
}
