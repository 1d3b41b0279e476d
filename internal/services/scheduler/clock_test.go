package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = time.Second
	tick    = time.Millisecond
)

func TestClockScheduler_Now(t *testing.T) {
	mock := clock.NewMock()
	s := NewClockScheduler(mock)

	mock.Add(42 * time.Second)

	require.Equal(t, mock.Now(), s.Now())
}

func TestClockScheduler_Every(t *testing.T) {
	mock := clock.NewMock()
	s := NewClockScheduler(mock)

	var ticks atomic.Int32
	var last atomic.Int64
	task := s.Every(16*time.Millisecond, func(now time.Time) {
		last.Store(now.UnixNano())
		ticks.Add(1)
	})

	mock.Add(16 * time.Millisecond)
	require.Eventually(t, func() bool { return ticks.Load() == 1 }, waitFor, tick)
	require.Equal(t, mock.Now().UnixNano(), last.Load(), "tick should carry the clock's time")

	task.Cancel()
	task.Cancel()

	mock.Add(160 * time.Millisecond)
	require.Never(t, func() bool { return ticks.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestClockScheduler_After(t *testing.T) {
	mock := clock.NewMock()
	s := NewClockScheduler(mock)

	var fired atomic.Bool
	s.After(150*time.Millisecond, func() { fired.Store(true) })

	mock.Add(149 * time.Millisecond)
	require.Never(t, fired.Load, 20*time.Millisecond, 2*time.Millisecond)

	mock.Add(time.Millisecond)
	require.Eventually(t, fired.Load, waitFor, tick)
}

func TestClockScheduler_AfterCancelled(t *testing.T) {
	mock := clock.NewMock()
	s := NewClockScheduler(mock)

	var fired atomic.Bool
	task := s.After(150*time.Millisecond, func() { fired.Store(true) })
	task.Cancel()
	task.Cancel()

	mock.Add(time.Second)
	require.Never(t, fired.Load, 30*time.Millisecond, 3*time.Millisecond)
}

func TestClockScheduler_RealClock(t *testing.T) {
	s := NewClockScheduler(nil)

	var ticks atomic.Int32
	task := s.Every(time.Millisecond, func(time.Time) { ticks.Add(1) })
	defer task.Cancel()

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, waitFor, tick)
}
