package nothofagus

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors and call Update(dt) each frame from the update
// callback. Durations use the same unit as dt (milliseconds inside Run).
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	// alive, when set, is checked before each step; the group stops once it
	// returns false.
	alive func() bool
	// apply, when set, runs after the fields are written.
	apply func()
	Done  bool
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// Update advances all tweens by dt and writes their values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.alive != nil && !g.alive() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.apply != nil {
		g.apply()
	}
}

// Reset rewinds every tween to its start.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// TweenLocation animates t.Location to `to`.
func TweenLocation(t *Transform, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&t.Location.X, to.X, duration, fn)
	g.add(&t.Location.Y, to.Y, duration, fn)
	return g
}

// TweenScale animates t.Scale to `to`.
func TweenScale(t *Transform, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&t.Scale.X, to.X, duration, fn)
	g.add(&t.Scale.Y, to.Y, duration, fn)
	return g
}

// TweenAngle animates t.Angle to `to` degrees.
func TweenAngle(t *Transform, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&t.Angle, to, duration, fn)
	return g
}

// TweenTint animates the tint of Bellota id towards `to`, starting from its
// current tint or from no tint. The group stops when the Bellota is removed.
func TweenTint(c *Canvas, id BellotaID, to Tint, duration float32, fn ease.TweenFunc) *TweenGroup {
	cur, ok := c.TintOf(id)
	if !ok {
		cur = Tint{Intensity: 0, Color: to.Color}
	}
	g := &TweenGroup{
		alive: func() bool { return c.HasBellota(id) },
		apply: func() { c.SetTint(id, cur) },
	}
	g.add(&cur.Intensity, to.Intensity, duration, fn)
	g.add(&cur.Color.R, to.Color.R, duration, fn)
	g.add(&cur.Color.G, to.Color.G, duration, fn)
	g.add(&cur.Color.B, to.Color.B, duration, fn)
	return g
}
