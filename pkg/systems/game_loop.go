package systems

import (
	"math/rand"
	"time"

	"github.com/decker502/alienblitz/pkg/game"
	"github.com/decker502/alienblitz/pkg/sched"
)

// GameLoop 围绕一个 GameState 和一个调度器组装飞机、炸弹与关卡系统
//
// 前端调用一次 Start，按下投弹键时调用 DropBomb，每帧调用 Update。
type GameLoop struct {
	state *game.GameState
	sched *sched.Scheduler

	plane *PlaneSystem
	bomb  *BombSystem
	level *LevelSystem
}

// NewGameLoop 创建各个系统
//
// 参数:
//   - gs: 游戏状态
//   - rng: 塔楼生成使用的随机数
//   - sounds: 音效播放器，nil 表示静音
//
// 返回:
//   - *GameLoop: 尚未开始的游戏循环
func NewGameLoop(gs *game.GameState, rng *rand.Rand, sounds game.SoundPlayer) *GameLoop {
	if sounds == nil {
		sounds = game.SilentPlayer{}
	}
	s := sched.NewScheduler()

	plane := NewPlaneSystem(gs, s)
	bomb := NewBombSystem(gs, s, sounds)
	level := NewLevelSystem(gs, s, rng, sounds)

	plane.level = level
	level.plane = plane
	level.bomb = bomb

	return &GameLoop{state: gs, sched: s, plane: plane, bomb: bomb, level: level}
}

// SetFieldGenerator 替换随机塔楼生成器
func (l *GameLoop) SetFieldGenerator(gen FieldGenerator) {
	l.level.generate = gen
}

// OnRestart 注册每次重开后、第一次飞机节拍之前执行的回调
func (l *GameLoop) OnRestart(fn func(RestartInfo)) {
	l.level.onRestart = fn
}

// Start 生成第一片塔楼并让飞机起飞
func (l *GameLoop) Start() {
	l.level.Restart(false)
}

// DropBomb 处理投弹键，正在投弹时返回 false
func (l *GameLoop) DropBomb() bool {
	return l.bomb.Trigger()
}

// Update 游戏时间前进 dt，执行所有到期的节拍
func (l *GameLoop) Update(dt time.Duration) {
	l.sched.Advance(dt)
}

// State 返回游戏状态
func (l *GameLoop) State() *game.GameState {
	return l.state
}
