package terminal

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/alienblitz/pkg/game"
	"github.com/decker502/alienblitz/pkg/utils"
)

// MaxDeltaTime 卡顿后（终端被挂起、重绘缓慢）单帧推进的上限
const MaxDeltaTime = 100 * time.Millisecond

// Loop 终端驱动的游戏循环，由 systems.GameLoop 实现
type Loop interface {
	DropBomb() bool
	Update(dt time.Duration)
	State() *game.GameState
}

// Runner 用 tcell 屏幕驱动游戏循环
// 定时器推进游戏时间并重绘，按键投弹或退出
type Runner struct {
	screen   tcell.Screen
	loop     Loop
	renderer *Renderer
	frame    time.Duration
}

// NewRunner 创建每隔 frame 重绘一次的运行器
func NewRunner(screen tcell.Screen, loop Loop, frame time.Duration) *Runner {
	return &Runner{
		screen:   screen,
		loop:     loop,
		renderer: NewRenderer(screen, loop.State().Config),
		frame:    frame,
	}
}

// Run 阻塞直到玩家退出或屏幕不再产生事件
// 屏幕须已初始化，Run 不调用 Fini
func (r *Runner) Run() {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.frame)
	defer ticker.Stop()

	clock := utils.NewFrameClock(MaxDeltaTime)
	r.Step(clock.Tick(time.Now()))
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				log.Printf("[Terminal] Event stream closed")
				return
			}
			if r.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			r.Step(clock.Tick(now))
		}
	}
}

// HandleEvent 处理一个终端事件，玩家退出时返回 true
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
		r.renderer.Resize()
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if e.Rune() == ' ' {
				r.loop.DropBomb()
			}
		}
	}
	return false
}

// Step 把游戏推进 dt（有上限）并重绘
func (r *Runner) Step(dt time.Duration) {
	if dt > MaxDeltaTime {
		dt = MaxDeltaTime
	}
	r.loop.Update(dt)
	r.renderer.Draw(r.loop.State())
	r.screen.Show()
}
