package game

import (
	"log"
	"time"
)

// DefaultAnimationPeriod 默认动画 tick 周期
const DefaultAnimationPeriod = 20 * time.Millisecond

// Animator 动画驱动器
// 启动后以固定周期重复调用 tick 回调，直到被停止
//
// 不变量：handle 非空当且仅当 running 为 true
type Animator struct {
	scheduler Scheduler
	period    time.Duration
	running   bool
	handle    TaskHandle
}

// NewAnimator 创建动画驱动器
// period <= 0 时使用 DefaultAnimationPeriod
func NewAnimator(scheduler Scheduler, period time.Duration) *Animator {
	if period <= 0 {
		period = DefaultAnimationPeriod
	}
	return &Animator{
		scheduler: scheduler,
		period:    period,
	}
}

// Start 开始周期调用 tick；已在运行时为无操作
func (a *Animator) Start(tick func()) {
	if a.running {
		return
	}
	a.running = true
	a.handle = a.scheduler.Every(a.period, tick)
	log.Printf("[Animator] started (period=%v)", a.period)
}

// Stop 停止周期调用；未运行时为无操作
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.handle.Cancel()
	a.handle = nil
	log.Printf("[Animator] stopped")
}

// IsRunning 是否正在运行
func (a *Animator) IsRunning() bool {
	return a.running
}

// Period 返回 tick 周期
func (a *Animator) Period() time.Duration {
	return a.period
}
