// Package app 游戏的窗口版
//
// 把启动参数转换为运行中的游戏循环、音频管理器与场景，并在其上实现 ebiten.Game。
package app

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/decker502/alienblitz/pkg/audio"
	"github.com/decker502/alienblitz/pkg/config"
	"github.com/decker502/alienblitz/pkg/game"
	"github.com/decker502/alienblitz/pkg/scenes"
	"github.com/decker502/alienblitz/pkg/systems"
	"github.com/decker502/alienblitz/pkg/utils"
)

// Config 启动选项
type Config struct {
	// Verbose 是否输出日志
	Verbose bool
	// ConfigPath 可选的用户配置文件，覆盖内置默认值
	ConfigPath string
	// Seed 固定随机数种子，0 表示按时间选取
	Seed int64
}

// App 游戏的窗口版，实现 ebiten.Game 接口
type App struct {
	gameConfig   *config.GameConfig
	sceneManager *scenes.SceneManager
	clock        *utils.FrameClock
}

// NewApp 创建并开始游戏
//
// 调用前须先调用 embedded.Init。
//
// 参数:
//   - cfg: 启动选项
//
// 返回:
//   - *App: 已开始的游戏
//   - error: 配置或字体加载失败
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.LoadStartupConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	sounds := newAudioManager(gameConfig.Sound)

	hudFace, err := newHUDFace(gameConfig.Score.FontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}

	gameState := game.NewGameState(gameConfig)
	loop := systems.NewGameLoop(gameState, utils.NewRand(cfg.Seed), sounds)
	loop.OnRestart(func(info systems.RestartInfo) {
		log.Printf("[App] Level %d: %d cells, target %d", gameState.Score.Level, info.Cells, gameState.Score.WinningScore)
	})
	loop.Start()

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(loop, hudFace))

	return &App{
		gameConfig:   gameConfig,
		sceneManager: sceneManager,
		clock:        utils.NewFrameClock(utils.DefaultMaxFrameTime),
	}, nil
}

// newAudioManager 打开 ebiten 音频上下文并加载音效库
// 关闭音效时返回什么都不播放的管理器
func newAudioManager(cfg config.SoundConfig) *game.AudioManager {
	bank := audio.LoadBank(cfg.Dir, cfg.Clips)
	if !cfg.Enabled {
		log.Printf("[App] Sound disabled")
		return game.NewAudioManager(bank, nil, cfg)
	}

	context := ebitenaudio.NewContext(int(audio.SampleRate))
	log.Printf("[App] AudioManager initialized with %d clips", bank.Len())
	return game.NewAudioManager(bank, newEbitenOutput(context), cfg)
}

func newHUDFace(size int) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: source, Size: float64(size)}, nil
}

// Update 处理全屏切换并按真实经过的时间推进游戏
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.advance(time.Now())
	return nil
}

// advance 以 now 与上一帧的间隔更新场景
// ebiten 掉帧时间隔大于 1/TPS，超过上限的部分被截断
func (a *App) advance(now time.Time) {
	a.sceneManager.Update(a.clock.Tick(now).Seconds())
}

// Draw 绘制激活的场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸，由 ebiten 缩放到窗口
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// WindowTitle 配置的窗口标题
func (a *App) WindowTitle() string {
	return a.gameConfig.Window.Title
}
