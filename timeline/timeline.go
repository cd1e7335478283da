// Package timeline keeps a short history of the events that reached the game, for display next to
// the board.
package timeline

import (
	"image/color"
	"time"

	"github.com/deitrix/blocks/game"
)

// DefaultWindow is how far back a Timeline looks by default.
const DefaultWindow = 3 * time.Second

// Category groups events for display.
type Category int

const (
	Unknown Category = iota
	Interval
	Movement
	Rotation
	General
)

var categoryNames = [...]string{
	Unknown:  "Unknown",
	Interval: "Interval",
	Movement: "Movement",
	Rotation: "Rotation",
	General:  "General",
}

func (c Category) String() string {
	return categoryNames[c]
}

var categoryColors = [...]color.NRGBA{
	Unknown:  {0x65, 0x4c, 0x4f, 0xff},
	Interval: {0xc0, 0xca, 0xad, 0xff},
	Movement: {0xce, 0xc0, 0x75, 0xff},
	Rotation: {0xb2, 0x6e, 0x63, 0xff},
	General:  {0x9d, 0xa9, 0xa0, 0xff},
}

// Color is the marble colour of the category.
func (c Category) Color() color.NRGBA {
	return categoryColors[c]
}

// CategoryOf returns the display category of e.
func CategoryOf(e game.Event) Category {
	switch e {
	case game.Left, game.Right, game.Down:
		return Movement
	case game.Rotate:
		return Rotation
	case game.Fall:
		return Interval
	case game.Restart, game.Pause:
		return General
	default:
		return Unknown
	}
}

// Marble is one recorded event.
type Marble struct {
	ID       int
	At       time.Time
	Name     string
	Category Category
}

// Age is how long before now the marble was recorded.
func (m Marble) Age(now time.Time) time.Duration {
	return now.Sub(m.At)
}

// Timeline records events and forgets them once they are older than its window.
//
// A Timeline is not safe for concurrent use.
type Timeline struct {
	window  time.Duration
	marbles []Marble
	nextID  int
}

func New(window time.Duration) *Timeline {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Timeline{window: window}
}

// Window is how far back the timeline looks.
func (t *Timeline) Window() time.Duration {
	return t.window
}

// Record adds e at now. A Restart wipes the history before being recorded itself.
func (t *Timeline) Record(e game.Event, now time.Time) Marble {
	if e == game.Restart {
		t.marbles = t.marbles[:0]
	}
	m := Marble{
		ID:       t.nextID,
		At:       now,
		Name:     e.String(),
		Category: CategoryOf(e),
	}
	t.nextID++
	t.marbles = append(t.marbles, m)
	return m
}

// Visible returns the marbles recorded within the window before now, oldest first, and drops the
// ones that fell out of it.
func (t *Timeline) Visible(now time.Time) []Marble {
	start := now.Add(-t.window)
	i := 0
	for i < len(t.marbles) && t.marbles[i].At.Before(start) {
		i++
	}
	t.marbles = append(t.marbles[:0], t.marbles[i:]...)
	out := make([]Marble, len(t.marbles))
	copy(out, t.marbles)
	return out
}
