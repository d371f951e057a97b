// Package sched abstracts timer scheduling so every delayed continuation in
// the application is armed through an injectable scheduler. Production code
// uses the wall clock; tests substitute Manual and fast-forward.
package sched

import "time"

// CancelFunc cancels an armed timer. Calling it after the timer fired is a
// no-op.
type CancelFunc func()

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) CancelFunc
	NewTicker(d time.Duration) Ticker
}

type timeScheduler struct{}

// New returns a Scheduler backed by the wall clock.
func New() Scheduler {
	return timeScheduler{}
}

func (timeScheduler) Now() time.Time {
	return time.Now()
}

func (timeScheduler) AfterFunc(d time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

func (timeScheduler) NewTicker(d time.Duration) Ticker {
	return realTicker{ticker: time.NewTicker(d)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (r realTicker) C() <-chan time.Time {
	return r.ticker.C
}

func (r realTicker) Stop() {
	r.ticker.Stop()
}
