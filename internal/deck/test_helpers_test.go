package deck

import (
	"sync"
	"time"

	"github.com/gabrielcapilla/tapedeck/internal/ports"
)

// manualScheduler hands control of time to the test. Frame fires every live
// repeating task once; Advance fires the one-shot tasks that became due.
type manualScheduler struct {
	mu        sync.Mutex
	now       time.Time
	repeating []*manualRepeating
	oneShots  []*manualOneShot
}

type manualTask struct {
	mu        sync.Mutex
	cancelled bool
}

func (t *manualTask) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
}

func (t *manualTask) isCancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

type manualRepeating struct {
	manualTask
	interval time.Duration
	fn       func(time.Time)
}

type manualOneShot struct {
	manualTask
	due   time.Time
	fired bool
	fn    func()
}

var _ ports.Scheduler = (*manualScheduler)(nil)

func newManualScheduler() *manualScheduler {
	return &manualScheduler{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (s *manualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *manualScheduler) Every(interval time.Duration, fn func(time.Time)) ports.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &manualRepeating{interval: interval, fn: fn}
	s.repeating = append(s.repeating, task)
	return task
}

func (s *manualScheduler) After(delay time.Duration, fn func()) ports.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &manualOneShot{due: s.now.Add(delay), fn: fn}
	s.oneShots = append(s.oneShots, task)
	return task
}

// Frame moves time forward by d and delivers one frame to each live task.
func (s *manualScheduler) Frame(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	now := s.now
	var live []*manualRepeating
	for _, task := range s.repeating {
		if !task.isCancelled() {
			live = append(live, task)
		}
	}
	s.mu.Unlock()

	for _, task := range live {
		task.fn(now)
	}
}

// Advance moves time forward by d and fires due one-shot tasks in order.
func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	var due []*manualOneShot
	for _, task := range s.oneShots {
		if !task.fired && !task.isCancelled() && !task.due.After(s.now) {
			task.fired = true
			due = append(due, task)
		}
	}
	s.mu.Unlock()

	for _, task := range due {
		task.fn()
	}
}

func (s *manualScheduler) liveFrameTasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, task := range s.repeating {
		if !task.isCancelled() {
			n++
		}
	}
	return n
}

func (s *manualScheduler) liveOneShots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, task := range s.oneShots {
		if !task.fired && !task.isCancelled() {
			n++
		}
	}
	return n
}

// fireCancelled invokes every cancelled frame callback anyway, as a tick
// that raced its cancellation would.
func (s *manualScheduler) fireCancelled(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	now := s.now
	var stale []*manualRepeating
	for _, task := range s.repeating {
		if task.isCancelled() {
			stale = append(stale, task)
		}
	}
	s.mu.Unlock()

	for _, task := range stale {
		task.fn(now)
	}
}

// fireAllOneShots invokes every one-shot callback that has not run yet,
// including cancelled ones.
func (s *manualScheduler) fireAllOneShots() {
	s.mu.Lock()
	var pending []*manualOneShot
	for _, task := range s.oneShots {
		if !task.fired {
			task.fired = true
			pending = append(pending, task)
		}
	}
	s.mu.Unlock()

	for _, task := range pending {
		task.fn()
	}
}

func newTestDeck(opts Options) (*Deck, *manualScheduler) {
	s := newManualScheduler()
	return New(s, opts), s
}
