package sprite

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	Regular   *opentype.Font
	Monospace *opentype.Font
)

var fontMap = map[string]struct {
	dst **opentype.Font
	ttf []byte
}{
	"goregular": {&Regular, goregular.TTF},
	"gomono":    {&Monospace, gomono.TTF},
}

func loadFonts() error {
	for name, f := range fontMap {
		parsed, err := opentype.Parse(f.ttf)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		*f.dst = parsed
	}
	return nil
}

type faceKey struct {
	font *opentype.Font
	size float64
}

var faceCache = make(map[faceKey]font.Face)

// Face returns a face of f at size points, creating it on first use. Faces are not safe for
// concurrent use; call it from the draw loop only.
func Face(f *opentype.Font, size float64) (font.Face, error) {
	key := faceKey{f, size}
	if face, ok := faceCache[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	faceCache[key] = face
	return face, nil
}
