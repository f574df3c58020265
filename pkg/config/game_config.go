package config

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内嵌默认配置文件路径
const DefaultConfigPath = "data/game.yaml"

// GameConfig 游戏的全部可调参数
//
// 默认值来自内嵌的 data/game.yaml。--config 指定的用户文件叠加在默认值之上，
// 只需写出要修改的键。
type GameConfig struct {
	Window WindowConfig `yaml:"window" toml:"window"`
	Field  FieldConfig  `yaml:"field" toml:"field"`
	Plane  PlaneConfig  `yaml:"plane" toml:"plane"`
	Bomb   BombConfig   `yaml:"bomb" toml:"bomb"`
	Score  ScoreConfig  `yaml:"score" toml:"score"`
	Sound  SoundConfig  `yaml:"sound" toml:"sound"`
}

// WindowConfig 窗口及其中的游戏区
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Margin     int    `yaml:"margin" toml:"margin"` // 游戏区 = 窗口尺寸减去边距
	Background string `yaml:"background" toml:"background"`
}

// FieldConfig 塔楼生成参数
type FieldConfig struct {
	NumTowers      int      `yaml:"numTowers" toml:"numTowers"`
	MaxTowerHeight int      `yaml:"maxTowerHeight" toml:"maxTowerHeight"`
	CellColors     []string `yaml:"cellColors" toml:"cellColors"`
}

// PlaneConfig 飞机飞行参数
type PlaneConfig struct {
	DelayMs         int     `yaml:"delayMs" toml:"delayMs"`
	Step            float64 `yaml:"step" toml:"step"`
	CollisionMargin float64 `yaml:"collisionMargin" toml:"collisionMargin"`
	CrashPauseMs    int     `yaml:"crashPauseMs" toml:"crashPauseMs"`
	Color           string  `yaml:"color" toml:"color"`
	CrashColor      string  `yaml:"crashColor" toml:"crashColor"`
}

// BombConfig 炸弹下落参数
type BombConfig struct {
	DelayMs         int     `yaml:"delayMs" toml:"delayMs"`
	Step            float64 `yaml:"step" toml:"step"`
	CollisionMargin float64 `yaml:"collisionMargin" toml:"collisionMargin"`
	Color           string  `yaml:"color" toml:"color"`
}

// ScoreConfig 计分与 HUD 参数
type ScoreConfig struct {
	PointsPerCell int    `yaml:"pointsPerCell" toml:"pointsPerCell"`
	LevelPauseMs  int    `yaml:"levelPauseMs" toml:"levelPauseMs"`
	Color         string `yaml:"color" toml:"color"`
	FontSize      int    `yaml:"fontSize" toml:"fontSize"`
}

// SoundConfig 音效参数
type SoundConfig struct {
	Enabled bool              `yaml:"enabled" toml:"enabled"`
	Dir     string            `yaml:"dir" toml:"dir"`
	Volume  float64           `yaml:"volume" toml:"volume"`
	Clips   map[string]string `yaml:"clips" toml:"clips"` // 音效ID -> Dir 下的文件名
}

// DefaultGameConfig 返回内置配置
// 与 data/game.yaml 一致，内嵌文件不可用时（如终端版）使用
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:      "Alien Blitz",
			Width:      800,
			Height:     600,
			Margin:     50,
			Background: "dark blue",
		},
		Field: FieldConfig{
			NumTowers:      20,
			MaxTowerHeight: 10,
			CellColors:     []string{"black", "dark green", "brown"},
		},
		Plane: PlaneConfig{
			DelayMs:         40,
			Step:            12,
			CollisionMargin: 10,
			CrashPauseMs:    1000,
			Color:           "yellow",
			CrashColor:      "red",
		},
		Bomb: BombConfig{
			DelayMs:         40,
			Step:            12,
			CollisionMargin: 5,
			Color:           "red",
		},
		Score: ScoreConfig{
			PointsPerCell: 10,
			LevelPauseMs:  0,
			Color:         "white",
			FontSize:      24,
		},
		Sound: SoundConfig{
			Enabled: true,
			Dir:     "assets/sounds",
			Volume:  0.8,
			Clips: map[string]string{
				"bombed":      "bombed.wav",
				"plane_crash": "plane_crash.wav",
				"victory":     "victory.wav",
			},
		},
	}
}

// ParseGameConfig 将 YAML 数据叠加到内置默认值上并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := cfg.mergeYAML(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// LoadGameConfig 读取配置文件并叠加到 base 上
//
// 参数:
//   - path: 配置文件路径，按扩展名选择格式（.yaml/.yml 或 .toml）
//   - base: 基础配置，不会被修改；nil 表示内置默认值
//
// 返回:
//   - *GameConfig: 校验通过的新配置
//   - error: 读取、解析或校验失败
func LoadGameConfig(path string, base *GameConfig) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	cfg := DefaultGameConfig()
	if base != nil {
		cfg = base.Clone()
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := cfg.mergeYAML(data); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *GameConfig) mergeYAML(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse game config: %w", err)
	}
	return nil
}

// Clone 返回深拷贝
func (c *GameConfig) Clone() *GameConfig {
	out := *c
	out.Field.CellColors = append([]string(nil), c.Field.CellColors...)
	out.Sound.Clips = make(map[string]string, len(c.Sound.Clips))
	for id, file := range c.Sound.Clips {
		out.Sound.Clips[id] = file
	}
	return &out
}

// Validate 检查配置能否驱动一局游戏
func (c *GameConfig) Validate() error {
	if c.Window.Width <= c.Window.Margin || c.Window.Height <= c.Window.Margin {
		return fmt.Errorf("window %dx%d leaves no playfield with margin %d",
			c.Window.Width, c.Window.Height, c.Window.Margin)
	}
	if c.Window.Margin < 0 {
		return fmt.Errorf("window margin must not be negative, got %d", c.Window.Margin)
	}
	if c.Field.NumTowers <= 0 {
		return fmt.Errorf("numTowers must be positive, got %d", c.Field.NumTowers)
	}
	if c.Field.MaxTowerHeight <= 0 {
		return fmt.Errorf("maxTowerHeight must be positive, got %d", c.Field.MaxTowerHeight)
	}
	if len(c.Field.CellColors) == 0 {
		return fmt.Errorf("cellColors must not be empty")
	}
	if c.Plane.DelayMs <= 0 || c.Bomb.DelayMs <= 0 {
		return fmt.Errorf("tick delays must be positive (plane %d, bomb %d)", c.Plane.DelayMs, c.Bomb.DelayMs)
	}
	if c.Plane.Step <= 0 || c.Bomb.Step <= 0 {
		return fmt.Errorf("steps must be positive (plane %.1f, bomb %.1f)", c.Plane.Step, c.Bomb.Step)
	}
	if c.Plane.CollisionMargin < 0 || c.Bomb.CollisionMargin < 0 {
		return fmt.Errorf("collision margins must not be negative")
	}
	if c.Plane.CrashPauseMs < 0 || c.Score.LevelPauseMs < 0 {
		return fmt.Errorf("pauses must not be negative")
	}
	if c.Score.PointsPerCell <= 0 {
		return fmt.Errorf("pointsPerCell must be positive, got %d", c.Score.PointsPerCell)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound volume must be within [0, 1], got %.2f", c.Sound.Volume)
	}

	names := append([]string{
		c.Window.Background, c.Plane.Color, c.Plane.CrashColor, c.Bomb.Color, c.Score.Color,
	}, c.Field.CellColors...)
	for _, name := range names {
		if _, err := ParseColor(name); err != nil {
			return err
		}
	}
	return nil
}

// PlaneDelay 飞机每步的间隔
func (c *GameConfig) PlaneDelay() time.Duration {
	return time.Duration(c.Plane.DelayMs) * time.Millisecond
}

// BombDelay 炸弹每步的间隔
func (c *GameConfig) BombDelay() time.Duration {
	return time.Duration(c.Bomb.DelayMs) * time.Millisecond
}

// CrashPause 坠毁后到重开前的停顿
func (c *GameConfig) CrashPause() time.Duration {
	return time.Duration(c.Plane.CrashPauseMs) * time.Millisecond
}

// LevelPause 过关后到生成新塔楼前的停顿
func (c *GameConfig) LevelPause() time.Duration {
	return time.Duration(c.Score.LevelPauseMs) * time.Millisecond
}

// Palette 解析格子调色板
func (c *GameConfig) Palette() []color.RGBA {
	palette := make([]color.RGBA, 0, len(c.Field.CellColors))
	for _, name := range c.Field.CellColors {
		palette = append(palette, MustColor(name))
	}
	return palette
}

// ParseColor 解析 SVG 颜色名，如 "dark green" 或 "DarkBlue"
// 忽略空格、下划线、连字符和大小写
func ParseColor(name string) (color.RGBA, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	c, ok := colornames.Map[key]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color name %q", name)
	}
	return c, nil
}

// MustColor 用于已经过 Validate 的颜色名
// 未知名称返回洋红色，错误值显眼但不致命
func MustColor(name string) color.RGBA {
	c, err := ParseColor(name)
	if err != nil {
		return colornames.Magenta
	}
	return c
}
