// Package terminal tcell 终端前端
//
// 在字符网格上绘制游戏状态，并由终端事件驱动游戏循环。
package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/alienblitz/pkg/components"
	"github.com/decker502/alienblitz/pkg/config"
	"github.com/decker502/alienblitz/pkg/ecs"
	"github.com/decker502/alienblitz/pkg/game"
	"github.com/decker502/alienblitz/pkg/utils"
)

const (
	cellRune  = '█'
	planeRune = '>'
	crashRune = '*'
	bombRune  = 'o'
	hudRows   = 1 // 顶行显示得分
)

// Renderer 把 GameState 绘制到 tcell 屏幕
// 游戏区缩放到得分行下方的网格
type Renderer struct {
	screen tcell.Screen
	mapper utils.GridMapper

	background tcell.Style
	plane      tcell.Style
	crash      tcell.Style
	bomb       tcell.Style
	hud        tcell.Style
}

// NewRenderer 按配置创建渲染器，并按屏幕大小设置网格
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - cfg: 游戏配置，提供颜色与游戏区尺寸
func NewRenderer(screen tcell.Screen, cfg *config.GameConfig) *Renderer {
	bg := tcellColor(config.MustColor(cfg.Window.Background))
	base := tcell.StyleDefault.Background(bg)

	r := &Renderer{
		screen:     screen,
		background: base,
		plane:      base.Foreground(tcellColor(config.MustColor(cfg.Plane.Color))).Bold(true),
		crash:      base.Foreground(tcellColor(config.MustColor(cfg.Plane.CrashColor))).Bold(true),
		bomb:       base.Foreground(tcellColor(config.MustColor(cfg.Bomb.Color))),
		hud:        base.Foreground(tcellColor(config.MustColor(cfg.Score.Color))),
	}
	layout := cfg.Layout()
	r.mapper.World = utils.Viewport{
		Width:  layout.Width,
		Height: layout.Height,
	}
	r.Resize()
	return r
}

// Resize 读取当前屏幕大小
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.mapper.Cols = w
	r.mapper.Rows = h - hudRows
}

// Draw 绘制一帧，由调用方调用 Show
func (r *Renderer) Draw(gs *game.GameState) {
	w, h := r.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.background)
		}
	}

	em := gs.EntityManager
	half := gs.Layout.CellSize / 2
	for _, id := range gs.Cells() {
		cell, _ := ecs.GetComponent[*components.CellComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		r.fillRect(pos.X-half, pos.Y+half, pos.X+half, pos.Y-half,
			r.background.Foreground(tcellColor(cell.Color)))
	}

	if gs.Bomb().Active {
		bomb := gs.BombPosition()
		r.put(bomb.X, bomb.Y, bombRune, r.bomb)
	}

	plane := gs.PlanePosition()
	if gs.Plane().Crashed {
		r.put(plane.X, plane.Y, crashRune, r.crash)
	} else {
		r.put(plane.X, plane.Y, planeRune, r.plane)
	}

	r.drawHUD(gs, w)
}

// fillRect 填充与世界矩形重叠的每个网格单元
func (r *Renderer) fillRect(left, top, right, bottom float64, style tcell.Style) {
	cw, ch := r.mapper.CellSize()
	c0, r0, ok0 := r.mapper.WorldToGrid(left+cw/2, top-ch/2)
	c1, r1, ok1 := r.mapper.WorldToGrid(right-cw/2, bottom+ch/2)
	if !ok0 || !ok1 || c1 < c0 || r1 < r0 {
		// 小于一个网格单元的矩形退化为其中心点
		c, row, ok := r.mapper.WorldToGrid((left+right)/2, (top+bottom)/2)
		if !ok {
			return
		}
		c0, r0, c1, r1 = c, row, c, row
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row+hudRows, cellRune, nil, style)
		}
	}
}

func (r *Renderer) put(x, y float64, ch rune, style tcell.Style) {
	col, row, ok := r.mapper.WorldToGrid(x, y)
	if !ok {
		return
	}
	r.screen.SetContent(col, row+hudRows, ch, nil, style)
}

func (r *Renderer) drawHUD(gs *game.GameState, width int) {
	line := fmt.Sprintf("%s  Level:%d", gs.Score.HUDText(), gs.Score.Level)
	x := (width - len(line)) / 2
	if x < 0 {
		x = 0
	}
	for i, ch := range line {
		if x+i >= width {
			break
		}
		r.screen.SetContent(x+i, 0, ch, nil, r.hud)
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
