package ports

import "time"

// Task is a scheduled piece of work. Cancel is idempotent; once it returns the
// task's function is not started again.
type Task interface {
	Cancel()
}

// Scheduler runs deferred work off the caller's goroutine. Implementations
// must never invoke fn synchronously from Every or After.
type Scheduler interface {
	Now() time.Time
	Every(interval time.Duration, fn func(now time.Time)) Task
	After(delay time.Duration, fn func()) Task
}
