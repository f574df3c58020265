package utils

import "time"

// DefaultMaxFrameTime 单帧计入游戏时间的上限
const DefaultMaxFrameTime = 100 * time.Millisecond

// FrameClock 测量两帧之间真实经过的时间
//
// 窗口被拖动或进程被挂起后的长帧按 Max 截断，避免一帧内补跑大量节拍。
type FrameClock struct {
	Max time.Duration // <= 0 表示不截断

	last    time.Time
	started bool
}

// NewFrameClock 创建截断上限为 limit 的帧时钟
func NewFrameClock(limit time.Duration) *FrameClock {
	return &FrameClock{Max: limit}
}

// Tick 记录当前帧的时刻并返回距上一帧的时间
//
// 参数:
//   - now: 当前时刻
//
// 返回:
//   - time.Duration: 第一次调用返回 0；时钟回拨时返回 0；超过 Max 时返回 Max
func (c *FrameClock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.Max > 0 && dt > c.Max {
		return c.Max
	}
	return dt
}
