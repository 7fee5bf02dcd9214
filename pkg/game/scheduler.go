package game

import "time"

// TaskHandle 是一个周期任务的句柄，用于取消任务
type TaskHandle interface {
	// Cancel 取消任务，之后任务不会再被调用；重复调用是安全的
	Cancel()
}

// Scheduler 以固定周期重复调用回调
type Scheduler interface {
	Every(period time.Duration, fn func()) TaskHandle
}

// frameTask FrameScheduler 中的一个周期任务
type frameTask struct {
	period    time.Duration
	elapsed   time.Duration // 自上次触发以来累积的时间
	fn        func()
	cancelled bool
}

// Cancel 实现 TaskHandle
func (t *frameTask) Cancel() {
	t.cancelled = true
}

// FrameScheduler 由游戏循环驱动的单线程调度器
//
// 每次 Step(dt) 累积时间，每累积满一个周期调用一次任务回调。
// 所有回调都在调用 Step 的 goroutine 中同步执行：
//   - 同一任务不会重叠执行
//   - 多个任务按注册顺序执行
//   - 被取消的任务不会再执行（包括同一次 Step 中剩余的周期）
type FrameScheduler struct {
	tasks []*frameTask
}

// NewFrameScheduler 创建空调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Every 注册一个周期任务
// period <= 0 的任务在每次 Step 中触发一次
func (s *FrameScheduler) Every(period time.Duration, fn func()) TaskHandle {
	task := &frameTask{period: period, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Step 推进调度器时钟 dt，并触发到期的任务
// 在回调中注册的新任务从下一次 Step 开始计时
func (s *FrameScheduler) Step(dt time.Duration) {
	// 回调中可能注册新任务，这里只遍历本次 Step 开始时的任务
	pending := s.tasks
	for _, task := range pending {
		if task.cancelled {
			continue
		}
		if task.period <= 0 {
			task.fn()
			continue
		}
		task.elapsed += dt
		for task.elapsed >= task.period && !task.cancelled {
			task.elapsed -= task.period
			task.fn()
		}
	}
	s.compact()
}

// Active 返回尚未取消的任务数量
func (s *FrameScheduler) Active() int {
	n := 0
	for _, task := range s.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}

// compact 移除已取消的任务
func (s *FrameScheduler) compact() {
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.cancelled {
			kept = append(kept, task)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}
