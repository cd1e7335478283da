// Package cell maps the values of a field to display colours.
package cell

import (
	"fmt"
	"image/color"
)

// Tint is a display colour.
type Tint uint32

// Hex returns the tint as "#rrggbb".
func (t Tint) Hex() string {
	return fmt.Sprintf("#%06X", uint32(t))
}

func (t Tint) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(t >> 16),
		G: uint8(t >> 8),
		B: uint8(t),
		A: 0xff,
	}
}

const (
	// Inactive is an empty cell
	Inactive Tint = 0xD3D3D3
	// Active is an occupied cell while per-piece colours are off
	Active Tint = 0xE6746A
	// Background surrounds the board
	Background Tint = 0x282C34
	// Text is used for labels
	Text Tint = 0xF5F5F5
)

// palette is indexed by cell value; value 0 is an empty cell and values 1..7 are piece kinds.
var palette = [...]Tint{
	Inactive,
	0xEF3E36,
	0x17BEBB,
	0x2E282A,
	0x86BA90,
	0xBDCC72,
	0xF18805,
	0x058ED9,
}

// For returns the tint of a cell holding value. With colored off every occupied cell shares one
// tint; with it on each piece kind has its own.
func For(value int, colored bool) Tint {
	switch {
	case value <= 0:
		return Inactive
	case !colored:
		return Active
	case value < len(palette):
		return palette[value]
	default:
		return Active
	}
}
