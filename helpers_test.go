package nothofagus

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// mustPanicWith runs fn and fails unless it panics with an error wrapping
// target.
func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not wrap %v", err, target)
		}
	}()
	fn()
}

// fakeDevice records every call the Canvas makes.
type fakeDevice struct {
	next     uint64
	textures map[TextureHandle]TextureData
	meshes   map[MeshHandle]Mesh
	draws    []DrawCall

	uploads      int
	releases     []TextureHandle
	meshCreates  int
	meshDestroys []MeshHandle
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		next:     1,
		textures: make(map[TextureHandle]TextureData),
		meshes:   make(map[MeshHandle]Mesh),
	}
}

func (d *fakeDevice) UploadTexture(data TextureData) TextureHandle {
	h := TextureHandle(d.next)
	d.next++
	d.textures[h] = data
	d.uploads++
	return h
}

func (d *fakeDevice) ReleaseTexture(h TextureHandle) {
	if _, ok := d.textures[h]; !ok {
		panic("release of unknown texture handle")
	}
	delete(d.textures, h)
	d.releases = append(d.releases, h)
}

func (d *fakeDevice) CreateMesh(m Mesh) MeshHandle {
	h := MeshHandle(d.next)
	d.next++
	d.meshes[h] = m
	d.meshCreates++
	return h
}

func (d *fakeDevice) DestroyMesh(h MeshHandle) {
	if _, ok := d.meshes[h]; !ok {
		panic("destroy of unknown mesh handle")
	}
	delete(d.meshes, h)
	d.meshDestroys = append(d.meshDestroys, h)
}

func (d *fakeDevice) Draw(call DrawCall) {
	if _, ok := d.meshes[call.Mesh]; !ok {
		panic("draw with unknown mesh handle")
	}
	if _, ok := d.textures[call.Texture]; !ok {
		panic("draw with unknown texture handle")
	}
	d.draws = append(d.draws, call)
}

// frame clears recorded draws and renders one frame.
func (d *fakeDevice) frame(c *Canvas) []DrawCall {
	d.draws = d.draws[:0]
	c.Render()
	return d.draws
}

func newTestCanvas(t *testing.T) (*Canvas, *fakeDevice) {
	t.Helper()
	dev := newFakeDevice()
	cfg := DefaultConfig()
	cfg.ScreenWidth = 100
	cfg.ScreenHeight = 80
	cfg.Device = dev
	cfg.ScreenshotDir = t.TempDir()
	return NewCanvas(cfg), dev
}
