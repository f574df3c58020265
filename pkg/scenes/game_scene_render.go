package scenes

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	planeLength = 40.0
	planeHeight = 20.0
	bombRadius  = 5.0
	hudMarginY  = 15.0 // 游戏区顶边与得分行基线的间距
)

var whiteSubImage *ebiten.Image

// solidSource DrawTriangles 使用的 1x1 白色源图
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (s *GameScene) drawCell(screen *ebiten.Image, x, y, size float64, clr color.RGBA) {
	sx, sy := s.viewport.WorldToScreen(x, y)
	half := size / 2
	// 留一像素间隙区分相邻格子
	vector.DrawFilledRect(screen, float32(sx-half+0.5), float32(sy-half+0.5), float32(size-1), float32(size-1), clr, false)
}

func (s *GameScene) drawBomb(screen *ebiten.Image, x, y float64) {
	sx, sy := s.viewport.WorldToScreen(x, y)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), bombRadius, s.palette.bomb, true)
}

// drawPlane 以飞机位置为中心画一个指向右方的三角形
func (s *GameScene) drawPlane(screen *ebiten.Image, x, y float64, clr color.RGBA) {
	sx, sy := s.viewport.WorldToScreen(x, y)
	points := [3][2]float64{
		{sx + planeLength/2, sy},
		{sx - planeLength/2, sy - planeHeight/2},
		{sx - planeLength/2, sy + planeHeight/2},
	}

	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	vertices := make([]ebiten.Vertex, 0, len(points))
	for _, p := range points {
		vertices = append(vertices, ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, solidSource(), op)
}

// drawHUD 在游戏区上方居中绘制得分行
func (s *GameScene) drawHUD(screen *ebiten.Image, line string, halfHeight float64) {
	sx, sy := s.viewport.WorldToScreen(0, halfHeight-hudMarginY)
	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy-s.hudFace.Size)
	op.ColorScale.ScaleWithColor(s.palette.hud)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, line, s.hudFace, op)
}
