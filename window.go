package main

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/opentype"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/config"
	"github.com/deitrix/blocks/game"
	"github.com/deitrix/blocks/input"
	"github.com/deitrix/blocks/session"
	"github.com/deitrix/blocks/sprite"
	"github.com/deitrix/blocks/timeline"
)

const (
	// repeatDelay is the number of ticks a key is held before it starts repeating
	repeatDelay = 10
	// repeatEvery is the number of ticks between repeats of a held key
	repeatEvery = 3
	// sidebarCells is the width of the sidebar in cells
	sidebarCells = 6
	// timelineCells is the width of the event timeline column in cells
	timelineCells = 4
)

// keyNames maps the keys the window listens to onto input key names.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyBackspace:  input.KeyBackspace,
	ebiten.KeyC:          input.KeyColor,
}

var controls = []string{
	"Up        rotate",
	"Left      move left",
	"Right     move right",
	"Down      move down",
	"Space     pause",
	"Backspace restart",
	"C         colours",
}

// Window is the ebiten front-end of a session.
type Window struct {
	ctx      context.Context
	sess     *session.Session
	log      *logrus.Entry
	cellSize int
	window   time.Duration
	repeater input.Repeater
}

func NewWindow(ctx context.Context, sess *session.Session, cfg config.Config, log *logrus.Entry) *Window {
	return &Window{
		ctx:      ctx,
		sess:     sess,
		log:      log.WithField("component", "window"),
		cellSize: cfg.CellSize,
		window:   cfg.TimelineWindow,
	}
}

// repeats reports whether a key held for d ticks fires again this tick.
func repeats(d int) bool {
	return d > repeatDelay && (d-repeatDelay)%repeatEvery == 0
}

func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	for key, name := range keyNames {
		if inpututil.IsKeyJustReleased(key) {
			w.repeater.KeyUp()
			continue
		}
		if !inpututil.IsKeyJustPressed(key) && !repeats(inpututil.KeyPressDuration(key)) {
			continue
		}
		e, ok := w.repeater.KeyDown(name)
		if !ok {
			continue
		}
		if err := w.sess.Send(w.ctx, e); err != nil {
			return ebiten.Termination
		}
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	st := w.sess.Snapshot()
	screen.Fill(cell.Background.NRGBA())

	cs := w.cellSize
	w.drawMatrix(screen, st.Field, st.ToggleColor, cs, cs, true)

	side := w.sidebarX(st)
	w.drawText(screen, "Next", 20, side, cs+20)
	w.drawMatrix(screen, st.NextShape(), st.ToggleColor, side, cs+cs, false)
	w.drawText(screen, fmt.Sprintf("Level %d", st.Level), 20, side, 6*cs)
	w.drawText(screen, fmt.Sprintf("Lines %d", st.Lines), 20, side, 6*cs+28)
	w.drawMonospace(screen, strings.Join(controls, "\n"), 12, side, 8*cs)

	w.drawTimeline(screen, w.sess.Timeline(), w.sess.Now(), st)
	w.drawOverlay(screen, st)
}

func (w *Window) Layout(_, _ int) (screenWidth, screenHeight int) {
	return w.size(board.Width, board.Height)
}

func (w *Window) size(cols, rows int) (width, height int) {
	cs := w.cellSize
	width = cs + cols*cs + cs + sidebarCells*cs + timelineCells*cs + cs
	height = cs + rows*cs + cs
	return width, height
}

func (w *Window) sidebarX(st game.State) int {
	return w.cellSize*2 + st.Field.Cols()*w.cellSize
}

// drawMatrix draws m with its top-left corner at (x, y). Empty cells are only drawn when
// withEmpty is set, which is how the board differs from the preview.
func (w *Window) drawMatrix(screen *ebiten.Image, m board.Matrix, colored bool, x, y int, withEmpty bool) {
	cs := w.cellSize
	for row := range m {
		for col, v := range m[row] {
			if v == board.Empty && !withEmpty {
				continue
			}
			drawCell(screen, sprite.Cell, x+col*cs, y+row*cs, cs, cs, cell.For(v, colored), 255)
		}
	}
}

// drawTimeline draws one marble per recent event. Marbles enter at the top and sink towards the
// bottom of the column as they age.
func (w *Window) drawTimeline(screen *ebiten.Image, marbles []timeline.Marble, now time.Time, st game.State) {
	cs := w.cellSize
	x := w.sidebarX(st) + sidebarCells*cs
	top := cs
	height := st.Field.Rows() * cs

	vector.StrokeLine(screen, float32(x), float32(top), float32(x), float32(top+height), 1, cell.Inactive.NRGBA(), false)
	size := cs / 2
	for _, m := range marbles {
		off, ok := marbleOffset(m, now, w.window, height-size)
		if !ok {
			continue
		}
		y := top + off
		drawCell(screen, sprite.Marble, x-size/2, y, size, size, tintOf(m.Category.Color()), 255)
		w.drawMonospace(screen, m.Name, 12, x+size, y+size-2)
	}
}

// marbleOffset is how far down a column of span pixels m has sunk at now. Marbles older than
// window are off the column.
func marbleOffset(m timeline.Marble, now time.Time, window time.Duration, span int) (int, bool) {
	frac := float64(m.Age(now)) / float64(window)
	if frac < 0 || frac > 1 {
		return 0, false
	}
	return int(frac * float64(span)), true
}

func (w *Window) drawOverlay(screen *ebiten.Image, st game.State) {
	var msg string
	switch {
	case st.GameOver:
		msg = "GAME OVER\nBackspace to restart"
	case st.Paused:
		msg = "PAUSED\nSpace to resume"
	default:
		return
	}
	cs := w.cellSize
	width := float32(st.Field.Cols() * cs)
	height := float32(st.Field.Rows() * cs)
	vector.DrawFilledRect(screen, float32(cs), float32(cs), width, height, color.NRGBA{A: 0xb0}, false)
	w.drawText(screen, msg, 24, cs+cs/2, cs+st.Field.Rows()*cs/2)
}

func (w *Window) drawText(screen *ebiten.Image, s string, size float64, x, y int) {
	w.drawFont(screen, sprite.Regular, s, size, x, y)
}

func (w *Window) drawMonospace(screen *ebiten.Image, s string, size float64, x, y int) {
	w.drawFont(screen, sprite.Monospace, s, size, x, y)
}

func (w *Window) drawFont(screen *ebiten.Image, f *opentype.Font, s string, size float64, x, y int) {
	face, err := sprite.Face(f, size)
	if err != nil {
		w.log.WithError(err).Error("font face unavailable")
		return
	}
	text.Draw(screen, s, face, x, y, cell.Text.NRGBA())
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, width, height int, tint cell.Tint, opacity uint8) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

func tintOf(c color.NRGBA) cell.Tint {
	return cell.Tint(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}
