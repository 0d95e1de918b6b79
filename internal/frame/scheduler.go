package frame

import (
	"sync"
	"time"
)

// Scheduler invokes a callback once per frame interval. Each invocation
// re-arms the timer for the next one, so a slow callback delays the next
// frame instead of piling frames up.
type Scheduler struct {
	interval time.Duration

	mu       sync.Mutex
	running  bool
	stopped  bool
	timer    *time.Timer
	fn       func(now time.Time)
	inflight sync.WaitGroup
	ticks    chan time.Time
}

// NewScheduler creates a scheduler firing rate times per second.
func NewScheduler(rate int) *Scheduler {
	if rate <= 0 {
		rate = 60
	}
	return &Scheduler{interval: time.Second / time.Duration(rate)}
}

// Interval returns the time between two frames.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start begins invoking fn. Calling Start on a running or stopped
// scheduler is a no-op.
func (s *Scheduler) Start(fn func(now time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked(fn)
}

func (s *Scheduler) startLocked(fn func(now time.Time)) {
	if s.running || s.stopped {
		return
	}
	s.running = true
	s.fn = fn
	s.timer = time.AfterFunc(s.interval, s.fire)
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.inflight.Add(1)
	fn := s.fn
	s.mu.Unlock()

	defer s.inflight.Done()
	fn(time.Now())

	s.mu.Lock()
	if s.running {
		s.timer = time.AfterFunc(s.interval, s.fire)
	}
	s.mu.Unlock()
}

// Ticks starts the scheduler and returns a channel that receives one
// timestamp per frame. Frames the reader is not ready for are dropped.
// The channel is closed by Stop. A scheduler already driven by Start, or
// already stopped, never delivers ticks: the returned channel is closed.
func (s *Scheduler) Ticks() <-chan time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticks != nil {
		return s.ticks
	}
	if s.running || s.stopped {
		ch := make(chan time.Time)
		close(ch)
		return ch
	}

	ch := make(chan time.Time, 1)
	s.ticks = ch
	s.startLocked(func(now time.Time) {
		select {
		case ch <- now:
		default:
		}
	})
	return ch
}

// Stop cancels the pending frame and waits for a running callback to
// return. After Stop returns the callback is never invoked again and the
// scheduler cannot be restarted.
// Stop must not be called from inside the callback.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	s.inflight.Wait()

	s.mu.Lock()
	if s.ticks != nil {
		close(s.ticks)
		s.ticks = nil
	}
	s.mu.Unlock()
}

// Running reports whether the scheduler is between Start and Stop.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
