package nothofagus

// ColorID indexes a color in a ColorPalette.
type ColorID = uint8

// ColorPalette is an ordered color table. Insertion order is color-index order.
type ColorPalette struct {
	Colors []Color
}

// NewColorPalette creates a palette holding a copy of colors.
func NewColorPalette(colors ...Color) ColorPalette {
	return ColorPalette{Colors: append([]Color(nil), colors...)}
}

// Len returns the number of colors.
func (p ColorPalette) Len() int {
	return len(p.Colors)
}

// At returns the color for id. Panics with ErrPaletteIndexOutOfRange if id is
// not in the palette.
func (p ColorPalette) At(id ColorID) Color {
	if int(id) >= len(p.Colors) {
		fail(ErrPaletteIndexOutOfRange, "color id %d, palette size %d", id, len(p.Colors))
	}
	return p.Colors[id]
}

// Clone returns a palette that shares no storage with p.
func (p ColorPalette) Clone() ColorPalette {
	return NewColorPalette(p.Colors...)
}

// Add adds c component-wise to every entry.
func (p *ColorPalette) Add(c Color) *ColorPalette {
	for i := range p.Colors {
		e := &p.Colors[i]
		e.R += c.R
		e.G += c.G
		e.B += c.B
		e.A += c.A
	}
	return p
}

// AddScalar adds s to every channel of every entry.
func (p *ColorPalette) AddScalar(s float64) *ColorPalette {
	return p.Add(Color{s, s, s, s})
}

// Mul multiplies every entry component-wise by c.
func (p *ColorPalette) Mul(c Color) *ColorPalette {
	for i := range p.Colors {
		e := &p.Colors[i]
		e.R *= c.R
		e.G *= c.G
		e.B *= c.B
		e.A *= c.A
	}
	return p
}

// MulScalar multiplies every channel of every entry by s.
func (p *ColorPalette) MulScalar(s float64) *ColorPalette {
	return p.Mul(Color{s, s, s, s})
}
