package nothofagus

import (
	"math"
	"testing"
)

func assertMatrix(t *testing.T, name string, got, want Mat3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertPoint(t *testing.T, name string, x, y, wantX, wantY float64) {
	t.Helper()
	if math.Abs(x-wantX) > epsilon || math.Abs(y-wantY) > epsilon {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, x, y, wantX, wantY)
	}
}

func TestTransformIdentity(t *testing.T) {
	tr := NewTransform(Vec2{})
	assertMatrix(t, "identity", tr.Matrix(), Identity3)
}

func TestTransformTranslation(t *testing.T) {
	tr := NewTransform(Vec2{10, 20})
	assertMatrix(t, "translation", tr.Matrix(), Mat3{1, 0, 10, 0, 1, 20, 0, 0, 1})
}

func TestTransformScale(t *testing.T) {
	tr := NewTransform(Vec2{})
	tr.SetScale(2, 3)
	assertMatrix(t, "scale", tr.Matrix(), Mat3{2, 0, 0, 0, 3, 0, 0, 0, 1})
}

func TestTransformRotation90(t *testing.T) {
	tr := NewTransform(Vec2{})
	tr.SetAngle(90)
	// Counter-clockwise: +X maps to +Y.
	x, y := tr.Matrix().Apply(1, 0)
	assertPoint(t, "rot90", x, y, 0, 1)
}

func TestTransformComposeOrder(t *testing.T) {
	tr := NewTransform(Vec2{100, 50})
	tr.SetUniformScale(2)
	tr.SetAngle(90)
	// Scale (1,0) to (2,0), rotate to (0,2), translate to (100,52).
	x, y := tr.Matrix().Apply(1, 0)
	assertPoint(t, "composed", x, y, 100, 52)
}

func TestMat3MulIdentity(t *testing.T) {
	m := Translate3(3, 4).Mul(Rotate3(30)).Mul(Scale3(2, 5))
	assertMatrix(t, "m*I", m.Mul(Identity3), m)
	assertMatrix(t, "I*m", Identity3.Mul(m), m)
}

func TestScreenMatrix(t *testing.T) {
	m := screenMatrix(200, 100)
	tests := []struct {
		name       string
		x, y       float64
		wantX, wantY float64
	}{
		{"origin", 0, 0, -1, -1},
		{"center", 100, 50, 0, 0},
		{"top right", 200, 100, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := m.Apply(tt.x, tt.y)
			assertPoint(t, tt.name, x, y, tt.wantX, tt.wantY)
		})
	}
}
