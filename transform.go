package nothofagus

import "math"

// Mat3 is a 3x3 homogeneous 2D matrix in row-major order:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
type Mat3 [9]float64

// Identity3 is the identity matrix.
var Identity3 = Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Translate3 returns a translation matrix.
func Translate3(x, y float64) Mat3 {
	return Mat3{1, 0, x, 0, 1, y, 0, 0, 1}
}

// Scale3 returns a non-uniform scale matrix.
func Scale3(sx, sy float64) Mat3 {
	return Mat3{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Rotate3 returns a counter-clockwise rotation of degrees.
func Rotate3(degrees float64) Mat3 {
	sin, cos := math.Sincos(degreesToRadians(degrees))
	return Mat3{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
}

// Mul returns m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3]*o[col] + m[row*3+1]*o[3+col] + m[row*3+2]*o[6+col]
		}
	}
	return r
}

// Apply transforms the point (x, y).
func (m Mat3) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Transform places an entity: a location, a non-uniform scale, and a rotation
// in degrees. The zero value is not usable; use NewTransform.
type Transform struct {
	Location Vec2
	Scale    Vec2
	Angle    float64 // degrees, counter-clockwise
}

// NewTransform returns a transform at location with unit scale and no
// rotation.
func NewTransform(location Vec2) Transform {
	return Transform{Location: location, Scale: Vec2{1, 1}}
}

// Matrix composes T * R * S: scale first, then rotate, then translate.
func (t Transform) Matrix() Mat3 {
	return Translate3(t.Location.X, t.Location.Y).
		Mul(Rotate3(t.Angle)).
		Mul(Scale3(t.Scale.X, t.Scale.Y))
}

// SetLocation sets the location.
func (t *Transform) SetLocation(x, y float64) {
	t.Location = Vec2{x, y}
}

// SetScale sets the scale.
func (t *Transform) SetScale(sx, sy float64) {
	t.Scale = Vec2{sx, sy}
}

// SetUniformScale sets both scale components to s.
func (t *Transform) SetUniformScale(s float64) {
	t.Scale = Vec2{s, s}
}

// SetAngle sets the rotation in degrees.
func (t *Transform) SetAngle(degrees float64) {
	t.Angle = degrees
}

// screenMatrix maps canvas pixel space, origin bottom-left, to normalized
// device coordinates in [-1, 1].
func screenMatrix(width, height int) Mat3 {
	return Translate3(-1, -1).Mul(Scale3(2/float64(width), 2/float64(height)))
}
