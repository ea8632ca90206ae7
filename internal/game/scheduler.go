package game

import "time"

// Scheduler runs fn once after d. The returned func cancels it; cancelling a
// task that already ran is harmless.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler fires on the runtime timer goroutine.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
