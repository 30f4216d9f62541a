package wheel

import "time"

// Scheduler runs fn after d. The returned cancel stops a pending run; it is
// a no-op once fn has fired. Tests substitute a manual scheduler so nothing
// waits on the wall clock.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler is the production scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
