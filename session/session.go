// Package session runs a game: it merges player input and gravity ticks into a single stream,
// feeds them one at a time through the reducer and publishes every resulting snapshot.
package session

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/deitrix/blocks/game"
	"github.com/deitrix/blocks/gravity"
	"github.com/deitrix/blocks/timeline"
)

// Clock is the time source of the timeline.
type Clock func() time.Time

type options struct {
	log    *logrus.Entry
	window time.Duration
	clock  Clock
	buffer int
}

type Option func(*options)

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(log *logrus.Entry) Option {
	return func(o *options) { o.log = log }
}

// WithTimelineWindow sets how far back the event timeline looks.
func WithTimelineWindow(window time.Duration) Option {
	return func(o *options) { o.window = window }
}

// WithClock replaces time.Now as the timeline's time source.
func WithClock(clock Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithInputBuffer sets how many input events may be queued before Send blocks.
func WithInputBuffer(n int) Option {
	return func(o *options) { o.buffer = n }
}

// Session owns a game state. Run must be called exactly once; every other method is safe for
// concurrent use.
type Session struct {
	log    *logrus.Entry
	clock  Clock
	input  chan game.Event
	ticker Ticker

	mu       sync.RWMutex
	state    game.State
	timeline *timeline.Timeline
	subs     []chan game.State
	done     bool
}

// Ticker is the gravity source driven by the reducer. *gravity.Timer implements it.
type Ticker interface {
	gravity.Scheduler
	C() <-chan time.Time
}

// New creates a session for a fresh game drawn from seed, ticking with a gravity.Timer.
func New(seed uint64, opts ...Option) *Session {
	return NewWithTicker(game.New(seed), gravity.NewTimer(), opts...)
}

// NewWithTicker creates a session that starts from state and takes its gravity ticks from ticker.
func NewWithTicker(state game.State, ticker Ticker, opts ...Option) *Session {
	o := options{
		window: timeline.DefaultWindow,
		clock:  time.Now,
		buffer: 16,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = logrus.NewEntry(l)
	}
	return &Session{
		log:      o.log.WithField("component", "session"),
		clock:    o.clock,
		input:    make(chan game.Event, o.buffer),
		ticker:   ticker,
		state:    state,
		timeline: timeline.New(o.window),
	}
}

// Send queues an input event. It blocks while the queue is full.
func (s *Session) Send(ctx context.Context, e game.Event) error {
	select {
	case s.input <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes events until ctx is cancelled, then stops gravity and closes every subscription.
// It always returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	s.log.WithField("paused", s.Snapshot().Paused).Info("session started")
	s.ticker.Reset(s.Snapshot().Interval())
	defer s.shutdown()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("session stopped")
			return ctx.Err()
		case e := <-s.input:
			s.handle(e)
		case <-s.ticker.C():
			s.handle(game.Fall)
		}
	}
}

func (s *Session) handle(e game.Event) {
	prev := s.Snapshot()
	next := game.Apply(prev, e, s.ticker)

	s.mu.Lock()
	s.state = next
	s.timeline.Record(e, s.clock())
	subs := s.subs
	s.mu.Unlock()

	s.logTransition(e, prev, next)
	for _, ch := range subs {
		publish(ch, next)
	}
}

func (s *Session) logTransition(e game.Event, prev, next game.State) {
	log := s.log.WithFields(logrus.Fields{
		"event":      e.String(),
		"game_level": next.Level,
		"lines":      next.Lines,
	})
	log.Debug("event applied")

	switch {
	case e == game.Restart:
		log.Info("game restarted")
	case next.GameOver && !prev.GameOver:
		log.Warn("game over")
	case next.Paused != prev.Paused:
		log.WithField("paused", next.Paused).Info("pause toggled")
	}
	if next.Level > prev.Level {
		log.WithField("interval", next.Interval()).Info("level up")
	}
}

// publish replaces whatever snapshot is waiting in ch with st.
func publish(ch chan game.State, st game.State) {
	for {
		select {
		case ch <- st:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (s *Session) shutdown() {
	s.ticker.Reset(0)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
	s.done = true
}

// Snapshot is the current state.
func (s *Session) Snapshot() game.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Now reads the clock the timeline is stamped with. Renderers age marbles against it.
func (s *Session) Now() time.Time {
	return s.clock()
}

// Timeline returns the events of the last timeline window, oldest first.
func (s *Session) Timeline() []timeline.Marble {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeline.Visible(s.clock())
}

// Subscribe returns a channel that receives the state after every event. Only the newest state is
// kept: a slow reader skips snapshots instead of holding up the game. The channel is closed when
// Run returns.
func (s *Session) Subscribe() <-chan game.State {
	ch := make(chan game.State, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		close(ch)
		return ch
	}
	s.subs = append(s.subs, ch)
	return ch
}
