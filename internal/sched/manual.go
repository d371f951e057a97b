package sched

import (
	"sort"
	"sync"
	"time"
)

// Manual is a deterministic Scheduler driven by Advance instead of the wall
// clock. Timers fire synchronously, in deadline order, on the goroutine that
// calls Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	timers  []*manualTimer
	tickers []*manualTicker
}

type manualTimer struct {
	deadline time.Time
	seq      int
	fn       func()
	stopped  bool
}

type manualTicker struct {
	m        *Manual
	interval time.Duration
	next     time.Time
	ch       chan time.Time
	stopped  bool
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	timer := &manualTimer{deadline: m.now.Add(d), seq: m.seq, fn: fn}
	m.seq++
	m.timers = append(m.timers, timer)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		timer.stopped = true
	}
}

func (m *Manual) NewTicker(d time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	ticker := &manualTicker{m: m, interval: d, next: m.now.Add(d), ch: make(chan time.Time, 16)}
	m.tickers = append(m.tickers, ticker)
	return ticker
}

// Advance moves the clock forward and fires every timer whose deadline falls
// within the window. A fired timer may arm new timers; those fire too if they
// fall before the new now.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	for {
		timer := m.popDueLocked(target)
		if timer == nil {
			break
		}
		m.now = timer.deadline
		m.mu.Unlock()
		timer.fn()
		m.mu.Lock()
	}
	m.now = target
	for _, ticker := range m.tickers {
		if ticker.stopped {
			continue
		}
		for !ticker.next.After(target) {
			select {
			case ticker.ch <- ticker.next:
			default:
			}
			ticker.next = ticker.next.Add(ticker.interval)
		}
	}
	m.mu.Unlock()
}

func (m *Manual) popDueLocked(target time.Time) *manualTimer {
	due := -1
	for i, timer := range m.timers {
		if timer.stopped || timer.deadline.After(target) {
			continue
		}
		if due == -1 {
			due = i
			continue
		}
		best := m.timers[due]
		if timer.deadline.Before(best.deadline) ||
			(timer.deadline.Equal(best.deadline) && timer.seq < best.seq) {
			due = i
		}
	}
	if due == -1 {
		// drop spent timers to keep the slice small
		live := m.timers[:0]
		for _, timer := range m.timers {
			if !timer.stopped {
				live = append(live, timer)
			}
		}
		m.timers = live
		return nil
	}
	timer := m.timers[due]
	timer.stopped = true
	return timer
}

// Pending reports how many armed timers have not fired, sorted soonest first.
func (m *Manual) Pending() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	deadlines := make([]time.Time, 0, len(m.timers))
	for _, timer := range m.timers {
		if !timer.stopped {
			deadlines = append(deadlines, timer.deadline)
		}
	}
	sort.Slice(deadlines, func(i, j int) bool { return deadlines[i].Before(deadlines[j]) })
	return deadlines
}

func (t *manualTicker) C() <-chan time.Time {
	return t.ch
}

func (t *manualTicker) Stop() {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	t.stopped = true
}
