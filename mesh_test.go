package nothofagus

import "testing"

func TestQuadMesh(t *testing.T) {
	m := quadMesh(4, 2)
	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		t.Fatalf("quad has %d vertices, %d indices", len(m.Vertices), len(m.Indices))
	}
	want := []Vertex{
		{-2, -1, 0, 1},
		{2, -1, 1, 1},
		{2, 1, 1, 0},
		{-2, 1, 0, 0},
	}
	for i, v := range want {
		if m.Vertices[i] != v {
			t.Errorf("vertex %d = %+v, want %+v", i, m.Vertices[i], v)
		}
	}
	for i, idx := range []uint16{0, 1, 2, 2, 3, 0} {
		if m.Indices[i] != idx {
			t.Errorf("index %d = %d, want %d", i, m.Indices[i], idx)
		}
	}
}

func TestMeshJoin(t *testing.T) {
	a := quadMesh(1, 1)
	b := quadMesh(2, 2)
	j := a.Join(b)
	if len(j.Vertices) != 8 || len(j.Indices) != 12 {
		t.Fatalf("joined mesh has %d vertices, %d indices", len(j.Vertices), len(j.Indices))
	}
	if j.Indices[6] != 4 || j.Indices[11] != 4 {
		t.Errorf("second mesh indices not offset: %v", j.Indices)
	}
	// Join must not alias its inputs.
	j.Vertices[0].X = 99
	if a.Vertices[0].X == 99 {
		t.Error("Join aliases input vertices")
	}
}
