// Package sprite builds the images and fonts of the window front-end. Everything is generated or
// embedded, so loading never touches the file system.
package sprite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Size is the edge length of the generated sprites in pixels. They are scaled when drawn.
const Size = 16

// Cell is a white bevelled square, tinted when drawn. Marble is a white disc.
var Cell, Marble *ebiten.Image

// Load creates the sprites and parses the fonts. It must run before the first frame is drawn.
func Load() error {
	Cell = ebiten.NewImageFromImage(cellImage(Size))
	Marble = ebiten.NewImageFromImage(discImage(Size))
	if err := loadFonts(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return nil
}

// cellImage draws a square with a lighter top-left and darker bottom-right edge, so that adjacent
// cells of the same tint stay distinguishable.
func cellImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	edge := max(1, size/8)
	for y := range size {
		for x := range size {
			var v uint8 = 0xe0
			switch {
			case x < edge || y < edge:
				v = 0xff
			case x >= size-edge || y >= size-edge:
				v = 0xa0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return img
}

func discImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := range size {
		for x := range size {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}
	return img
}
