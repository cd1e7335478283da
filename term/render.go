package term

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/game"
	"github.com/deitrix/blocks/timeline"
)

const (
	filledGlyph = "[]"
	emptyGlyph  = " ."
)

// Render draws the read model of a game as text. Colours are emitted according to p; with
// termenv.Ascii the output is plain text.
func Render(st game.State, marbles []timeline.Marble, now time.Time, p termenv.Profile) string {
	side := sidebar(st, p)
	grid := matrix(st.Field, st.ToggleColor, p)

	var b strings.Builder
	border := "+" + strings.Repeat("-", 2*st.Field.Cols()) + "+"
	b.WriteString(border + "\n")
	for y, row := range grid {
		b.WriteString("|" + row + "|")
		if y < len(side) {
			b.WriteString("  " + side[y])
		}
		b.WriteString("\n")
	}
	b.WriteString(border + "\n")

	if msg := status(st); msg != "" {
		b.WriteString(msg + "\n")
	}

	if len(marbles) > 0 {
		b.WriteString("\nEvents\n")
		for i := len(marbles) - 1; i >= 0; i-- {
			m := marbles[i]
			dot := p.String("o").Foreground(p.FromColor(m.Category.Color()))
			fmt.Fprintf(&b, "%s %-8s %ds\n", dot, m.Name, int(m.Age(now).Round(time.Second)/time.Second))
		}
	}
	return b.String()
}

func status(st game.State) string {
	switch {
	case st.GameOver:
		return "GAME OVER - press BACKSPACE to restart"
	case st.Paused:
		return "PAUSED - press SPACE to resume"
	default:
		return ""
	}
}

func sidebar(st game.State, p termenv.Profile) []string {
	lines := []string{"Next"}
	lines = append(lines, matrix(st.NextShape(), st.ToggleColor, p)...)
	lines = append(lines,
		"",
		fmt.Sprintf("Level %d", st.Level),
		fmt.Sprintf("Lines %d", st.Lines),
		"",
		"up        rotate",
		"left/right/down  move",
		"space     pause",
		"backspace restart",
		"c         colour",
		"q         quit",
	)
	return lines
}

func matrix(m board.Matrix, colored bool, p termenv.Profile) []string {
	out := make([]string, len(m))
	for y, row := range m {
		var b strings.Builder
		for _, v := range row {
			glyph := emptyGlyph
			if v != board.Empty {
				glyph = filledGlyph
			}
			tint := cell.For(v, colored)
			b.WriteString(p.String(glyph).Background(p.Color(tint.Hex())).String())
		}
		out[y] = b.String()
	}
	return out
}
