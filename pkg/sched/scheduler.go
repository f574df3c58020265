// Package sched 单线程的一次性定时器
//
// After 登记回调，帧循环以本帧耗时调用 Advance 触发到期的回调。
// 回调总是在 Advance 内、在调用方的 goroutine 上执行，不会另起 goroutine。
//
// 周期行为由回调再次登记自身实现。没有取消接口，不再登记即停止。
package sched

import (
	"container/heap"
	"time"
)

// Scheduler 保存尚未触发的定时器
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

// NewScheduler 创建时钟从零开始的调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now 调度器时钟，在回调内部即为该回调的到期时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After 在当前时钟之后 delay 执行 fn
// delay 不为正时在下一次 Advance 触发，包括 Advance(0)
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	heap.Push(&s.queue, &timer{due: s.now + delay, seq: s.seq, fn: fn})
}

// Advance 时钟前进 dt，并执行所有到期的定时器
//
// 按到期时间顺序触发，同一时刻到期的按登记顺序触发。
// 回调中登记的定时器以该回调的到期时间为基准，所以 40ms 的链条
// 与帧率无关地落在 40ms 的整数倍上。
//
// 参数:
//   - dt: 本帧耗时，负数按 0 处理
//
// 返回:
//   - int: 执行的回调数量
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*timer)
		if t.due > s.now {
			s.now = t.due
		}
		t.fn()
		fired++
	}
	s.now = target
	return fired
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
