package nothofagus

import (
	"fmt"
	"image"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text color ids. WriteChar needs a palette of at least two colors.
const (
	TextBackground ColorID = 0
	TextInk        ColorID = 1
)

// glyphFace is the bitmap font used by WriteChar.
var glyphFace = basicfont.Face7x13

// GlyphSize returns the cell size, in pixels, that WriteChar fills.
func GlyphSize() (width, height int) {
	return glyphFace.Advance, glyphFace.Height
}

// WriteChar writes the glyph for r into t with its top-left corner at
// column i0, row j0. Ink pixels get TextInk and the rest of the cell
// TextBackground. It returns an error wrapping ErrDimensionMismatch when the
// cell does not fit inside t, or ErrPaletteIndexOutOfRange when t's palette
// has fewer than two colors.
func WriteChar(t *Texture, r rune, i0, j0 int) error {
	gw, gh := GlyphSize()
	w, h := t.Size()
	if i0 < 0 || j0 < 0 || i0+gw > w || j0+gh > h {
		return fmt.Errorf("write %q at (%d, %d) into %dx%d texture: %w", r, i0, j0, w, h, ErrDimensionMismatch)
	}
	if t.palette.Len() <= int(TextInk) {
		return fmt.Errorf("write %q with %d-color palette: %w", r, t.palette.Len(), ErrPaletteIndexOutOfRange)
	}
	dr, mask, maskp, _, ok := glyphFace.Glyph(fixed.P(0, glyphFace.Ascent), r)
	if !ok {
		return fmt.Errorf("write %q: no glyph", r)
	}
	for j := 0; j < gh; j++ {
		for i := 0; i < gw; i++ {
			id := TextBackground
			if inked(dr, mask, maskp, i, j) {
				id = TextInk
			}
			t.pixels[indexOf(w, h, i0+i, j0+j)] = id
		}
	}
	return nil
}

func inked(dr image.Rectangle, mask image.Image, maskp image.Point, i, j int) bool {
	p := image.Pt(i, j)
	if !p.In(dr) {
		return false
	}
	_, _, _, a := mask.At(maskp.X+i-dr.Min.X, maskp.Y+j-dr.Min.Y).RGBA()
	return a > 0
}

// WriteText writes s one glyph cell after another starting at column i0,
// row j0. It stops at the first glyph that fails; earlier glyphs stay
// written.
func WriteText(t *Texture, s string, i0, j0 int) error {
	gw, _ := GlyphSize()
	k := 0
	for _, r := range s {
		if err := WriteChar(t, r, i0+k*gw, j0); err != nil {
			return err
		}
		k++
	}
	return nil
}

// NewTextTexture returns a texture sized to hold s on one line, with
// background and ink colors, and s written into it.
func NewTextTexture(s string, background, ink Color) *Texture {
	gw, gh := GlyphSize()
	n := max(len([]rune(s)), 1)
	t := NewTexture(n*gw, gh, background)
	t.SetPalette(NewColorPalette(background, ink))
	if err := WriteText(t, s, 0, 0); err != nil {
		panic(fmt.Errorf("nothofagus: %w", err))
	}
	return t
}
