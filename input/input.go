// Package input turns key presses into game events. Keys are named after the DOM
// KeyboardEvent.key values so that every front-end maps onto the same vocabulary.
package input

import "github.com/deitrix/blocks/game"

// Key names understood by Lookup.
const (
	KeyLeft      = "ArrowLeft"
	KeyRight     = "ArrowRight"
	KeyDown      = "ArrowDown"
	KeyUp        = "ArrowUp"
	KeySpace     = "Space"
	KeySpaceChar = " "
	KeyBackspace = "Backspace"
	KeyColor     = "c"
)

var keymap = map[string]game.Event{
	KeyColor:     game.Color,
	KeyBackspace: game.Restart,
	KeySpace:     game.Pause,
	KeySpaceChar: game.Pause,
	KeyLeft:      game.Left,
	KeyRight:     game.Right,
	KeyDown:      game.Down,
	KeyUp:        game.Rotate,
}

// Lookup returns the event bound to key.
func Lookup(key string) (game.Event, bool) {
	e, ok := keymap[key]
	return e, ok
}

// Repeater filters the key-down stream of a keyboard with auto-repeat. Holding a key produces its
// event once; only Down is allowed to repeat. Releasing any key re-arms every key.
//
// A Repeater is not safe for concurrent use.
type Repeater struct {
	last game.Event
}

// KeyDown reports the event for a key-down of key, or false if the key is unbound or the press is
// a repeat of the previous event.
func (r *Repeater) KeyDown(key string) (game.Event, bool) {
	e, ok := Lookup(key)
	if !ok {
		return 0, false
	}
	if e == r.last && e != game.Down {
		return 0, false
	}
	r.last = e
	return e, true
}

// KeyUp re-arms the repeater.
func (r *Repeater) KeyUp() {
	r.last = 0
}
