package cubeguess

import (
	"sync"
	"time"
)

// Continuation is a handle to a scheduled callback.
type Continuation interface {
	// Cancel stops the callback from running. It reports whether the call
	// prevented the callback; false means it already ran or was cancelled.
	Cancel() bool
}

// Scheduler runs a callback after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Continuation
}

// TimerScheduler runs callbacks on their own goroutine via time.AfterFunc.
type TimerScheduler struct{}

// AfterFunc implements Scheduler.
func (TimerScheduler) AfterFunc(d time.Duration, f func()) Continuation {
	return timerContinuation{t: time.AfterFunc(d, f)}
}

type timerContinuation struct {
	t *time.Timer
}

func (c timerContinuation) Cancel() bool {
	return c.t.Stop()
}

// ManualScheduler queues callbacks until Run is called. Delays are recorded
// but not waited on. Safe for concurrent use.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []*manualTask
}

type manualTask struct {
	s     *ManualScheduler
	delay time.Duration
	f     func()
	done  bool
}

// AfterFunc implements Scheduler.
func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) Continuation {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{s: m, delay: d, f: f}
	m.pending = append(m.pending, t)
	return t
}

func (t *manualTask) Cancel() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.s.removeLocked(t)
	return true
}

func (m *ManualScheduler) removeLocked(t *manualTask) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting to run.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Delays returns the delays of the waiting callbacks in scheduling order.
func (m *ManualScheduler) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.pending))
	for i, t := range m.pending {
		out[i] = t.delay
	}
	return out
}

// Run fires every callback queued before the call, in scheduling order, and
// returns how many ran. Callbacks scheduled while running wait for the next
// Run.
func (m *ManualScheduler) Run() int {
	m.mu.Lock()
	batch := m.pending
	m.pending = nil
	for _, t := range batch {
		t.done = true
	}
	m.mu.Unlock()

	for _, t := range batch {
		t.f()
	}
	return len(batch)
}
