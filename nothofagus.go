package nothofagus

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// ColorTransparent is fully transparent black.
var ColorTransparent = Color{}

// Vec2 is a 2D vector used for locations, scales, and sizes.
type Vec2 struct {
	X, Y float64
}

// Handles returned by the Canvas. Each wraps a monotonic counter value and is
// never reused within a process.
type (
	TextureID         uint64
	TextureArrayID    uint64
	BellotaID         uint64
	AnimatedBellotaID uint64
)

// Tint blends a runtime color over an entity's sampled texture color.
// Intensity 0 leaves the texture untouched and 1 replaces its RGB with Color.
// Alpha always passes through unmodified.
type Tint struct {
	Intensity float64
	Color     Color // A is ignored
}

// noTint is applied to entities without an explicit Tint.
var noTint = Tint{Intensity: 0, Color: ColorWhite}

// Blend applies the tint to a straight-alpha texture color.
func (t Tint) Blend(c Color) Color {
	k := clamp01(t.Intensity)
	return Color{
		R: t.Color.R*k + c.R*(1-k),
		G: t.Color.G*k + c.G*(1-k),
		B: t.Color.B*k + c.B*(1-k),
		A: c.A,
	}
}

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
