package game

import "fmt"

// Event is one discrete input to the game. The set is closed and events carry no data.
type Event int

const (
	// Left moves the active piece one column left
	Left Event = iota + 1
	// Right moves the active piece one column right
	Right
	// Down is the player's soft drop, one row
	Down
	// Rotate turns the active piece clockwise
	Rotate
	// Fall is the gravity tick, one row
	Fall
	// Pause toggles the pause state
	Pause
	// Restart replaces the game with a fresh one
	Restart
	// Color toggles the colour display mode
	Color
)

// Events lists every event in declaration order.
var Events = []Event{Left, Right, Down, Rotate, Fall, Pause, Restart, Color}

var eventNames = map[Event]string{
	Left:    "Left",
	Right:   "Right",
	Down:    "Down",
	Rotate:  "Rotate",
	Fall:    "Fall",
	Pause:   "Pause",
	Restart: "Restart",
	Color:   "Color",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// IsGameplay reports whether the event moves or turns the active piece. Gameplay events have no
// effect while the game is paused.
func (e Event) IsGameplay() bool {
	switch e {
	case Left, Right, Down, Rotate, Fall:
		return true
	default:
		return false
	}
}
