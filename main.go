package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/deitrix/blocks/config"
	"github.com/deitrix/blocks/session"
	"github.com/deitrix/blocks/sprite"
	"github.com/deitrix/blocks/term"
)

// newLogger builds the program logger. Without a log file the terminal front-end discards
// everything, since stderr shares the screen with the game.
func newLogger(cfg config.Config) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		return log, f, nil
	case cfg.Frontend == config.FrontendTerminal:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return log, io.NopCloser(nil), nil
}

func seed(cfg config.Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := seed(cfg)
	log.WithFields(logrus.Fields{
		"frontend": cfg.Frontend,
		"seed":     s,
	}).Info("starting")

	sess := session.New(s,
		session.WithLogger(logrus.NewEntry(log)),
		session.WithTimelineWindow(cfg.TimelineWindow),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sess.Run(ctx)
	})

	// ebiten must own the main goroutine, so the front-end runs here and the session above.
	var err error
	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = term.Run(ctx, sess)
	default:
		err = runWindow(ctx, cfg, sess, log)
	}
	cancel()

	if gerr := g.Wait(); !errors.Is(gerr, context.Canceled) {
		err = errors.Join(err, gerr)
	}
	return err
}

func runWindow(ctx context.Context, cfg config.Config, sess *session.Session, log *logrus.Logger) error {
	if err := sprite.Load(); err != nil {
		return fmt.Errorf("loading sprites: %w", err)
	}
	w := NewWindow(ctx, sess, cfg, logrus.NewEntry(log))

	ebiten.SetWindowTitle("Blocks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w.Layout(0, 0))
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// finish logs err, closes the log and returns the process exit code.
func finish(log *logrus.Logger, closer io.Closer, err error) int {
	code := 0
	if err != nil {
		log.Errorf("failed to run: %v", err)
		code = 1
	}
	if cerr := closer.Close(); cerr != nil {
		logrus.Errorf("failed to close log: %v", cerr)
	}
	return code
}

func realMain() int {
	cfg, err := config.Load()
	if err != nil {
		logrus.Errorf("failed to load config: %v", err)
		return 1
	}
	log, closer, err := newLogger(cfg)
	if err != nil {
		logrus.Errorf("failed to set up logging: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return finish(log, closer, run(ctx, cfg, log))
}

func main() {
	os.Exit(realMain())
}
