package game

import (
	"time"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/gravity"
)

// Transition returns the state that follows s after e. It is a pure function: s is not modified
// and the same inputs always give the same result. Requests to change the gravity period are
// dropped; use Apply to receive them.
func Transition(s State, e Event) State {
	return Apply(s, e, gravity.Discard)
}

// Apply is Transition with a side channel. Whenever the event changes how fast pieces should fall
// (pause, resume, restart, level up, game over) the new period is sent to sched, zero meaning
// stopped. Rejected moves and rotations are silently undone; Apply never fails.
func Apply(s State, e Event, sched gravity.Scheduler) State {
	next := s.clone()

	if e == Pause && !next.GameOver {
		next.Paused = !next.Paused
		if next.Paused {
			sched.Reset(0)
		} else {
			sched.Reset(gravity.IntervalForLevel(next.Level))
		}
	}

	if e == Restart {
		next = fresh(s.rng)
		next.Paused = false
		next.ToggleColor = s.ToggleColor
		sched.Reset(gravity.IntervalForLevel(next.Level))
	}

	if e == Color {
		next.ToggleColor = !next.ToggleColor
	}

	if next.Paused {
		return next
	}

	switch e {
	case Fall, Down:
		if over := next.descend(sched); over {
			return next
		}
	case Left:
		next.shift(-1, WallLeft)
	case Right:
		next.shift(+1, WallRight)
	case Rotate:
		next.Active = next.Active.RotateCW()
		if Classify(next) != NoCollision {
			next.Active = next.Active.RotateCCW()
		}
	}

	next.Field = next.render()
	return next
}

// descend moves the piece one row down. When it lands, full lines are cleared, the last rendered
// field becomes the stack and the next piece spawns. It reports whether the new piece could not
// be placed, in which case the game is over and s must not be rendered again.
func (s *State) descend(sched gravity.Scheduler) bool {
	s.Y++

	switch Classify(*s) {
	case WallBottom, BrickOther:
	default:
		return false
	}

	if cleared := board.ClearLines(s.Field); cleared.Amount > 0 {
		s.Lines += cleared.Amount
		s.Level = LevelForLines(s.Lines)
		s.Field = cleared.Field
		sched.Reset(gravity.IntervalForLevel(s.Level))
	}

	s.spawn()
	s.Stack = s.Field.Clone()

	if Classify(*s) == GameOver {
		s.GameOver = true
		s.Paused = true
		sched.Reset(0)
		return true
	}
	return false
}

func (s *State) shift(dx int, wall Collision) {
	x := s.X
	s.X += dx
	if c := Classify(*s); c == wall || c == BrickOther {
		s.X = x
	}
}

// Interval is the gravity period for the state: zero while paused, otherwise the period of the
// current level.
func (s State) Interval() time.Duration {
	if s.Paused {
		return 0
	}
	return gravity.IntervalForLevel(s.Level)
}
