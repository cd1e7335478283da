// Package term is the terminal front-end. It renders session snapshots with bubbletea and turns
// key presses into game events.
package term

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/deitrix/blocks/game"
	"github.com/deitrix/blocks/input"
	"github.com/deitrix/blocks/timeline"
)

const (
	// frameRate is how often the event timeline is refreshed
	frameRate = 10
	// keyQueue is how many key presses may wait for the session before new ones are dropped
	keyQueue = 64
)

// Game is the part of a session the terminal needs.
type Game interface {
	Send(ctx context.Context, e game.Event) error
	Snapshot() game.State
	Subscribe() <-chan game.State
	Timeline() []timeline.Marble
}

// keyNames maps bubbletea key strings onto input key names.
var keyNames = map[string]string{
	"left":      input.KeyLeft,
	"right":     input.KeyRight,
	"down":      input.KeyDown,
	"up":        input.KeyUp,
	" ":         input.KeySpaceChar,
	"backspace": input.KeyBackspace,
	"c":         input.KeyColor,
}

type (
	snapshotMsg game.State
	closedMsg   struct{}
	frameMsg    time.Time
	errMsg      struct{ err error }
)

type Model struct {
	ctx     context.Context
	game    Game
	sub     <-chan game.State
	keys    chan game.Event
	profile termenv.Profile

	state    game.State
	marbles  []timeline.Marble
	now      time.Time
	err      error
	quitting bool
}

func NewModel(ctx context.Context, g Game, profile termenv.Profile) Model {
	return Model{
		ctx:     ctx,
		game:    g,
		sub:     g.Subscribe(),
		keys:    make(chan game.Event, keyQueue),
		profile: profile,
		state:   g.Snapshot(),
		now:     time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.sub), frame(), forward(m.ctx, m.game, m.keys))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.state = game.State(msg)
		return m, waitForSnapshot(m.sub)
	case closedMsg:
		m.quitting = true
		return m, tea.Quit
	case frameMsg:
		m.now = time.Time(msg)
		m.marbles = m.game.Timeline()
		return m, frame()
	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		// terminals report no key releases, so every press is its own event
		e, ok := input.Lookup(keyNames[key])
		if !ok {
			return m, nil
		}
		// commands run concurrently, so presses are queued here to keep their order
		select {
		case m.keys <- e:
		default:
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return Render(m.state, m.marbles, m.now, m.profile)
}

// Err is the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

func waitForSnapshot(sub <-chan game.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-sub
		if !ok {
			return closedMsg{}
		}
		return snapshotMsg(st)
	}
}

func frame() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// forward hands queued key presses to g in the order they were pressed. It runs for the lifetime
// of the program.
func forward(ctx context.Context, g Game, keys <-chan game.Event) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e := <-keys:
				if err := g.Send(ctx, e); err != nil {
					return errMsg{err}
				}
			}
		}
	}
}

// Run shows g in the terminal until the user quits or ctx is cancelled.
func Run(ctx context.Context, g Game) error {
	m := NewModel(ctx, g, termenv.ColorProfile())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
