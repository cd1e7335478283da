package gravity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalForLevel(t *testing.T) {
	tests := []struct {
		level  int
		expect time.Duration
	}{
		{1, time.Second},
		{2, 800 * time.Millisecond},
		{5, 500 * time.Millisecond},
		{9, 333333333 * time.Nanosecond},
		{13, 250 * time.Millisecond},
	}
	for _, test := range tests {
		assert.Equal(t, test.expect, IntervalForLevel(test.level), "IntervalForLevel(%d)", test.level)
	}
}

func TestIntervalForLevelIsMonotonic(t *testing.T) {
	prev := IntervalForLevel(1)
	for level := 2; level < 100; level++ {
		cur := IntervalForLevel(level)
		require.Less(t, cur, prev, "level %d", level)
		prev = cur
	}
}

func TestTimer(t *testing.T) {
	t.Run("starts stopped", func(t *testing.T) {
		timer := NewTimer()
		defer timer.Stop()
		assert.Zero(t, timer.Period())
		select {
		case <-timer.C():
			t.Fatal("stopped timer ticked")
		case <-time.After(30 * time.Millisecond):
		}
	})

	t.Run("ticks at the requested period", func(t *testing.T) {
		timer := NewTimer()
		defer timer.Stop()
		timer.Reset(5 * time.Millisecond)
		assert.Equal(t, 5*time.Millisecond, timer.Period())
		for range 3 {
			select {
			case <-timer.C():
			case <-time.After(time.Second):
				t.Fatal("timer did not tick")
			}
		}
	})

	t.Run("zero stops", func(t *testing.T) {
		timer := NewTimer()
		timer.Reset(5 * time.Millisecond)
		timer.Reset(0)
		assert.Zero(t, timer.Period())
		select {
		case <-timer.C():
			t.Fatal("stopped timer ticked")
		case <-time.After(30 * time.Millisecond):
		}
	})

	t.Run("new period replaces the old one", func(t *testing.T) {
		timer := NewTimer()
		defer timer.Stop()
		timer.Reset(time.Hour)
		timer.Reset(5 * time.Millisecond)
		assert.Equal(t, 5*time.Millisecond, timer.Period())
		select {
		case <-timer.C():
		case <-time.After(time.Second):
			t.Fatal("timer did not tick at the new period")
		}
	})
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard.Reset(time.Second) })
}
