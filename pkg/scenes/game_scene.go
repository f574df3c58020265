package scenes

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/alienblitz/pkg/components"
	"github.com/decker502/alienblitz/pkg/config"
	"github.com/decker502/alienblitz/pkg/ecs"
	"github.com/decker502/alienblitz/pkg/utils"
)

// MaxDeltaTime 单帧推进的上限（秒），窗口卡顿后不会快进游戏
const MaxDeltaTime = 0.1

// GameScene 游戏区场景
// 职责：
// - 把投弹输入转给游戏循环
// - 推进游戏时间
// - 绘制塔楼、飞机、炸弹与得分行
type GameScene struct {
	loop     Loop
	viewport utils.Viewport
	hudFace  *text.GoTextFace
	palette  scenePalette

	// bombPressed 本帧是否新按下了投弹输入
	bombPressed func() bool
}

type scenePalette struct {
	background color.RGBA
	plane      color.RGBA
	crash      color.RGBA
	bomb       color.RGBA
	hud        color.RGBA
}

// NewGameScene 创建游戏区场景
//
// 参数:
//   - loop: 已经 Start 的游戏循环
//   - hudFace: 得分行字体，nil 时不显示得分行
//
// 返回:
//   - *GameScene: 游戏区场景
func NewGameScene(loop Loop, hudFace *text.GoTextFace) *GameScene {
	cfg := loop.State().Config
	return &GameScene{
		loop: loop,
		viewport: utils.Viewport{
			Width:  float64(cfg.Window.Width),
			Height: float64(cfg.Window.Height),
		},
		hudFace: hudFace,
		palette: scenePalette{
			background: config.MustColor(cfg.Window.Background),
			plane:      config.MustColor(cfg.Plane.Color),
			crash:      config.MustColor(cfg.Plane.CrashColor),
			bomb:       config.MustColor(cfg.Bomb.Color),
			hud:        config.MustColor(cfg.Score.Color),
		},
		bombPressed: func() bool {
			return GetInputState().BombPressed()
		},
	}
}

// Update 处理投弹输入并把游戏推进 deltaTime 秒
func (s *GameScene) Update(deltaTime float64) {
	if s.bombPressed() {
		s.loop.DropBomb()
	}

	if deltaTime > MaxDeltaTime {
		deltaTime = MaxDeltaTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	s.loop.Update(time.Duration(deltaTime * float64(time.Second)))
}

// Draw 绘制塔楼、飞机、炸弹与得分行
func (s *GameScene) Draw(screen *ebiten.Image) {
	gs := s.loop.State()
	em := gs.EntityManager
	screen.Fill(s.palette.background)

	for _, id := range gs.Cells() {
		cell, _ := ecs.GetComponent[*components.CellComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.drawCell(screen, pos.X, pos.Y, gs.Layout.CellSize, cell.Color)
	}

	if gs.Bomb().Active {
		bomb := gs.BombPosition()
		s.drawBomb(screen, bomb.X, bomb.Y)
	}

	planeColor := s.palette.plane
	if gs.Plane().Crashed {
		planeColor = s.palette.crash
	}
	plane := gs.PlanePosition()
	s.drawPlane(screen, plane.X, plane.Y, planeColor)

	if s.hudFace != nil {
		s.drawHUD(screen, gs.Score.HUDText(), gs.Layout.HalfHeight)
	}
}
