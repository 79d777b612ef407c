package nothofagus

// Bellota is a drawable entity showing a single-layer texture.
// The zero value is invisible and has zero scale; create one with NewBellota.
type Bellota struct {
	Transform Transform
	Texture   TextureID
	Visible   bool
	// DepthOffset orders drawing: higher values are drawn later, on top.
	DepthOffset int8
}

// NewBellota creates a visible Bellota at transform using texture.
func NewBellota(transform Transform, texture TextureID) Bellota {
	return Bellota{Transform: transform, Texture: texture, Visible: true}
}

// AnimatedBellota is a drawable entity showing one layer of a TextureArray.
// Its layer is normally written by an AnimationStateMachine. Create one with
// NewAnimatedBellota.
type AnimatedBellota struct {
	Transform   Transform
	Texture     TextureArrayID
	Visible     bool
	DepthOffset int8

	layers int
	layer  int
}

// NewAnimatedBellota creates a visible AnimatedBellota over a texture array
// with the given number of layers, showing layer 0.
func NewAnimatedBellota(transform Transform, texture TextureArrayID, layers int) AnimatedBellota {
	if layers < 1 {
		fail(ErrDimensionMismatch, "animated bellota with %d layers", layers)
	}
	return AnimatedBellota{Transform: transform, Texture: texture, Visible: true, layers: layers}
}

// Layers returns the layer count the entity was created with.
func (b *AnimatedBellota) Layers() int {
	return b.layers
}

// Layer returns the layer currently shown.
func (b *AnimatedBellota) Layer() int {
	return b.layer
}

// SetLayer selects the layer to show. Panics with ErrDimensionMismatch if
// layer is outside [0, Layers()).
func (b *AnimatedBellota) SetLayer(layer int) {
	if layer < 0 || layer >= b.layers {
		fail(ErrDimensionMismatch, "layer %d of %d", layer, b.layers)
	}
	b.layer = layer
}
