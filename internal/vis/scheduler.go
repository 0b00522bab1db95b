package vis

import (
	"sync"
	"time"
)

// settleDelay approximates "next paint frame": long enough for a burst of
// triggers (resize plus layout mutation plus data change) to coalesce,
// short enough to feel immediate.
const settleDelay = 16 * time.Millisecond

// scheduler coalesces recomputation triggers. A new trigger supersedes a
// pending one instead of stacking with it, so a storm of resize/mutation
// events produces exactly one recompute per settled layout. Close cancels
// any pending run and prevents further scheduling; after Close returns no
// callback will fire.
type scheduler struct {
	mu     sync.Mutex
	run    func()
	settle time.Duration
	timer  *time.Timer
	closed bool
}

func newScheduler(settle time.Duration, run func()) *scheduler {
	if settle <= 0 {
		settle = settleDelay
	}
	return &scheduler{run: run, settle: settle}
}

// Invalidate schedules run after the settle delay, restarting the delay if a
// run is already pending.
func (s *scheduler) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Reset(s.settle)
		return
	}
	s.timer = time.AfterFunc(s.settle, s.fire)
}

func (s *scheduler) fire() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	run := s.run
	s.mu.Unlock()
	run()
}

// Close releases the scheduler. Idempotent.
func (s *scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
