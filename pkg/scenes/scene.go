package scenes

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/alienblitz/pkg/game"
)

// Scene 游戏中的一个画面（目前只有游戏区）
// 每个场景有自己的更新与渲染逻辑
type Scene interface {
	// Update 按经过的时间更新场景逻辑
	// deltaTime 为距上次更新的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Loop 场景驱动的游戏循环，由 systems.GameLoop 实现
type Loop interface {
	DropBomb() bool
	Update(dt time.Duration)
	State() *game.GameState
}

var _ Scene = (*GameScene)(nil)
