package vis

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerCoalescesInvalidations(t *testing.T) {
	var runs atomic.Int32
	s := newScheduler(20*time.Millisecond, func() { runs.Add(1) })
	defer s.Close()

	for i := 0; i < 10; i++ {
		s.Invalidate()
		time.Sleep(time.Millisecond)
	}

	deadline := time.Now().Add(time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	// The burst supersedes itself into a single settled run.
	if got := runs.Load(); got != 1 {
		t.Fatalf("runs = %d, want 1", got)
	}
}

func TestSchedulerRunsAgainAfterSettle(t *testing.T) {
	var runs atomic.Int32
	s := newScheduler(5*time.Millisecond, func() { runs.Add(1) })
	defer s.Close()

	s.Invalidate()
	time.Sleep(50 * time.Millisecond)
	s.Invalidate()
	time.Sleep(50 * time.Millisecond)

	if got := runs.Load(); got != 2 {
		t.Fatalf("runs = %d, want 2", got)
	}
}

func TestSchedulerCloseCancelsPending(t *testing.T) {
	var runs atomic.Int32
	s := newScheduler(30*time.Millisecond, func() { runs.Add(1) })

	s.Invalidate()
	s.Close()
	time.Sleep(80 * time.Millisecond)

	if got := runs.Load(); got != 0 {
		t.Fatalf("runs after Close = %d, want 0", got)
	}
	s.Close() // idempotent
}
