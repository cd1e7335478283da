package sprite

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellImage(t *testing.T) {
	img := cellImage(Size)
	require.Equal(t, Size, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}, img.NRGBAAt(Size/2, Size/2))
	assert.Equal(t, color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}, img.NRGBAAt(Size-1, Size-1))
}

func TestDiscImage(t *testing.T) {
	img := discImage(Size)
	assert.Zero(t, img.NRGBAAt(0, 0).A, "corners are transparent")
	assert.Equal(t, uint8(0xff), img.NRGBAAt(Size/2, Size/2).A)
}

func TestFonts(t *testing.T) {
	require.NoError(t, loadFonts())
	require.NotNil(t, Regular)
	require.NotNil(t, Monospace)

	a, err := Face(Regular, 16)
	require.NoError(t, err)
	b, err := Face(Regular, 16)
	require.NoError(t, err)
	assert.Same(t, a, b, "faces are cached")
}
