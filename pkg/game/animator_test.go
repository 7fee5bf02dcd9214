package game

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFrameScheduler_FiresOncePerPeriod(t *testing.T) {
	s := NewFrameScheduler()
	count := 0
	s.Every(20*time.Millisecond, func() { count++ })

	s.Step(10 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired after half a period: count=%d", count)
	}
	s.Step(10 * time.Millisecond)
	if count != 1 {
		t.Fatalf("count=%d after one period, want 1", count)
	}
	// 一次较长的 Step 追赶多个周期
	s.Step(65 * time.Millisecond)
	if count != 4 {
		t.Fatalf("count=%d after 85ms, want 4", count)
	}
}

func TestFrameScheduler_OrderAndCancel(t *testing.T) {
	s := NewFrameScheduler()
	var order []string
	a := s.Every(10*time.Millisecond, func() { order = append(order, "a") })
	s.Every(10*time.Millisecond, func() { order = append(order, "b") })

	s.Step(10 * time.Millisecond)
	a.Cancel()
	a.Cancel()
	s.Step(10 * time.Millisecond)

	if diff := cmp.Diff([]string{"a", "b", "b"}, order); diff != "" {
		t.Errorf("tick order mismatch (-want, +got):\n%s", diff)
	}
	if s.Active() != 1 {
		t.Errorf("Active() = %d, want 1", s.Active())
	}
}

func TestFrameScheduler_CancelInsideCallback(t *testing.T) {
	s := NewFrameScheduler()
	count := 0
	var h TaskHandle
	h = s.Every(10*time.Millisecond, func() {
		count++
		h.Cancel()
	})

	// 即使 Step 覆盖多个周期，取消后也不再触发
	s.Step(100 * time.Millisecond)
	if count != 1 {
		t.Errorf("count=%d, want 1", count)
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d, want 0", s.Active())
	}
}

func TestFrameScheduler_RegisterInsideCallback(t *testing.T) {
	s := NewFrameScheduler()
	inner := 0
	registered := false
	s.Every(10*time.Millisecond, func() {
		if !registered {
			registered = true
			s.Every(10*time.Millisecond, func() { inner++ })
		}
	})

	s.Step(10 * time.Millisecond)
	if inner != 0 {
		t.Fatalf("task registered during Step fired in the same Step: inner=%d", inner)
	}
	s.Step(10 * time.Millisecond)
	if inner != 1 {
		t.Fatalf("inner=%d, want 1", inner)
	}
}

func TestAnimator_StartIsIdempotent(t *testing.T) {
	s := NewFrameScheduler()
	a := NewAnimator(s, 20*time.Millisecond)
	count := 0
	tick := func() { count++ }

	a.Start(tick)
	a.Start(tick)
	if !a.IsRunning() {
		t.Fatal("animator should be running")
	}
	if s.Active() != 1 {
		t.Fatalf("Active() = %d after double start, want exactly 1", s.Active())
	}

	s.Step(20 * time.Millisecond)
	if count != 1 {
		t.Errorf("count=%d after one period, want 1", count)
	}
}

func TestAnimator_StopIsIdempotent(t *testing.T) {
	s := NewFrameScheduler()
	a := NewAnimator(s, 0)
	if a.Period() != DefaultAnimationPeriod {
		t.Errorf("Period() = %v, want %v", a.Period(), DefaultAnimationPeriod)
	}

	// 未启动时停止是安全的
	a.Stop()

	count := 0
	a.Start(func() { count++ })
	a.Stop()
	a.Stop()
	if a.IsRunning() {
		t.Fatal("animator should be stopped")
	}

	s.Step(time.Second)
	if count != 0 {
		t.Errorf("stopped animator ticked %d times", count)
	}

	// 停止后可以再次启动
	a.Start(func() { count++ })
	s.Step(DefaultAnimationPeriod)
	if count != 1 {
		t.Errorf("count=%d after restart, want 1", count)
	}
}
