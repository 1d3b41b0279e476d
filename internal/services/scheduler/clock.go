package scheduler

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gabrielcapilla/tapedeck/internal/ports"
)

type ClockScheduler struct {
	clock clock.Clock
}

func NewClockScheduler(c clock.Clock) ports.Scheduler {
	if c == nil {
		c = clock.New()
	}
	return &ClockScheduler{clock: c}
}

func (s *ClockScheduler) Now() time.Time { return s.clock.Now() }

func (s *ClockScheduler) Every(interval time.Duration, fn func(now time.Time)) ports.Task {
	t := &repeatingTask{
		ticker: s.clock.Ticker(interval),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

func (s *ClockScheduler) After(delay time.Duration, fn func()) ports.Task {
	t := &oneShotTask{done: make(chan struct{})}
	t.timer = s.clock.AfterFunc(delay, func() {
		select {
		case <-t.done:
		default:
			fn()
		}
	})
	return t
}

type repeatingTask struct {
	ticker *clock.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *repeatingTask) run(fn func(now time.Time)) {
	for {
		select {
		case <-t.done:
			return
		case now := <-t.ticker.C:
			// A tick and a cancel can be ready together; cancel wins.
			select {
			case <-t.done:
				return
			default:
			}
			fn(now)
		}
	}
}

func (t *repeatingTask) Cancel() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

type oneShotTask struct {
	timer *clock.Timer
	done  chan struct{}
	once  sync.Once
}

func (t *oneShotTask) Cancel() {
	t.once.Do(func() {
		t.timer.Stop()
		close(t.done)
	})
}
