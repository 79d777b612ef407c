package nothofagus

// Vertex is a mesh vertex: a position in entity space and a texture
// coordinate in [0, 1], with v = 0 at the top row of the texture.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// quadMesh builds the axis-aligned quad for a width x height texture,
// centered on the origin, as two triangles.
func quadMesh(width, height int) Mesh {
	hw := float32(width) / 2
	hh := float32(height) / 2
	return Mesh{
		Vertices: []Vertex{
			{X: -hw, Y: -hh, U: 0, V: 1}, // bottom left
			{X: hw, Y: -hh, U: 1, V: 1},  // bottom right
			{X: hw, Y: hh, U: 1, V: 0},   // upper right
			{X: -hw, Y: hh, U: 0, V: 0},  // upper left
		},
		Indices: []uint16{0, 1, 2, 2, 3, 0},
	}
}

// Join appends o to m, offsetting o's indices past m's vertices.
func (m Mesh) Join(o Mesh) Mesh {
	out := Mesh{
		Vertices: make([]Vertex, 0, len(m.Vertices)+len(o.Vertices)),
		Indices:  make([]uint16, 0, len(m.Indices)+len(o.Indices)),
	}
	out.Vertices = append(out.Vertices, m.Vertices...)
	out.Vertices = append(out.Vertices, o.Vertices...)
	out.Indices = append(out.Indices, m.Indices...)
	offset := uint16(len(m.Vertices))
	for _, i := range o.Indices {
		out.Indices = append(out.Indices, offset+i)
	}
	return out
}
