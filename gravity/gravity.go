// Package gravity derives the fall period from the level and provides the timer that turns a
// period into a stream of ticks.
package gravity

import (
	"sync"
	"time"
)

const (
	// baseSpeed is the fall rate at level 1, in rows per second
	baseSpeed = 1.0
	// speedUp is added to the fall rate for every level above 1
	speedUp = 0.25
)

// IntervalForLevel is the time between two gravity ticks at the given level. It shrinks
// monotonically as the level grows: 1s at level 1, 500ms at level 5.
func IntervalForLevel(level int) time.Duration {
	factor := baseSpeed + float64(level-1)*speedUp
	return time.Duration(float64(time.Second) / factor)
}

// Scheduler receives requests to change the gravity period. A period of zero stops gravity, any
// positive period replaces the previous one.
type Scheduler interface {
	Reset(period time.Duration)
}

// Discard is a Scheduler that ignores every request.
var Discard Scheduler = discard{}

type discard struct{}

func (discard) Reset(time.Duration) {}

// Timer is a Scheduler backed by a time.Ticker. It starts stopped.
type Timer struct {
	mu     sync.Mutex
	ticker *time.Ticker
	period time.Duration
}

func NewTimer() *Timer {
	t := time.NewTicker(time.Hour)
	t.Stop()
	return &Timer{ticker: t}
}

// C delivers a tick every period while the timer runs.
func (t *Timer) C() <-chan time.Time {
	return t.ticker.C
}

// Reset restarts the timer at period, or stops it when period is zero or negative. A tick that
// was pending under the old period is dropped.
func (t *Timer) Reset(period time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if period <= 0 {
		t.ticker.Stop()
		t.period = 0
	} else {
		t.ticker.Reset(period)
		t.period = period
	}
	select {
	case <-t.ticker.C:
	default:
	}
}

// Period is the active period, zero while stopped.
func (t *Timer) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

func (t *Timer) Stop() {
	t.Reset(0)
}
