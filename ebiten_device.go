package nothofagus

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// tintShaderSrc mixes the sampled straight-alpha color toward TintColor by
// TintIntensity, leaving alpha untouched.
const tintShaderSrc = `//kage:unit pixels

package main

var TintColor vec3
var TintIntensity float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	if c.a == 0 {
		return vec4(0)
	}
	rgb := mix(c.rgb/c.a, TintColor, TintIntensity)
	return vec4(rgb*c.a, c.a)
}
`

// ebitenDevice implements Device on top of ebiten. A texture is one
// *ebiten.Image per layer; meshes stay on the CPU and are submitted with
// DrawTrianglesShader.
type ebitenDevice struct {
	screenW, screenH int
	target           *ebiten.Image
	shader           *ebiten.Shader
	textures         *IndexedContainer[[]*ebiten.Image]
	meshes           *IndexedContainer[Mesh]
	verts            []ebiten.Vertex // reused per draw
	uniforms         map[string]any
	scratch          []byte
}

func newEbitenDevice(screenW, screenH int) *ebitenDevice {
	return &ebitenDevice{
		screenW:  screenW,
		screenH:  screenH,
		textures: NewIndexedContainer[[]*ebiten.Image](),
		meshes:   NewIndexedContainer[Mesh](),
		uniforms: make(map[string]any, 2),
	}
}

// compileShader compiles the tint program. Panics on compile failure.
func compileShader(src string) *ebiten.Shader {
	s, err := ebiten.NewShader([]byte(src))
	if err != nil {
		panic(fmt.Errorf("nothofagus: compile tint shader: %w", err))
	}
	return s
}

// setTarget sets the image draws go to for the current frame.
func (d *ebitenDevice) setTarget(img *ebiten.Image) {
	d.target = img
}

func (d *ebitenDevice) UploadTexture(data TextureData) TextureHandle {
	layers := make([]*ebiten.Image, data.Layers)
	for l := range layers {
		img := ebiten.NewImage(data.Width, data.Height)
		d.scratch = premultiply(d.scratch, data.Layer(l))
		img.WritePixels(d.scratch)
		layers[l] = img
	}
	return TextureHandle(d.textures.Add(layers))
}

func (d *ebitenDevice) ReleaseTexture(h TextureHandle) {
	for _, img := range *d.textures.At(uint64(h)) {
		img.Deallocate()
	}
	d.textures.Remove(uint64(h))
}

func (d *ebitenDevice) CreateMesh(m Mesh) MeshHandle {
	return MeshHandle(d.meshes.Add(Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
		Indices:  append([]uint16(nil), m.Indices...),
	}))
}

func (d *ebitenDevice) DestroyMesh(h MeshHandle) {
	d.meshes.Remove(uint64(h))
}

func (d *ebitenDevice) Draw(call DrawCall) {
	if d.target == nil {
		panic("nothofagus: draw with no target image")
	}
	if d.shader == nil {
		d.shader = compileShader(tintShaderSrc)
	}
	mesh := d.meshes.At(uint64(call.Mesh))
	layers := *d.textures.At(uint64(call.Texture))
	if call.Layer < 0 || call.Layer >= len(layers) {
		fail(ErrDimensionMismatch, "draw layer %d of %d", call.Layer, len(layers))
	}
	img := layers[call.Layer]
	b := img.Bounds()

	d.verts = screenVertices(d.verts, mesh, call.Transform, d.screenW, d.screenH, b.Dx(), b.Dy())

	tc := call.Tint.Color
	d.uniforms["TintColor"] = []float32{float32(tc.R), float32(tc.G), float32(tc.B)}
	d.uniforms["TintIntensity"] = float32(clamp01(call.Tint.Intensity))

	var op ebiten.DrawTrianglesShaderOptions
	op.Images[0] = img
	op.Uniforms = d.uniforms
	op.Blend = ebiten.BlendSourceOver
	d.target.DrawTrianglesShader(d.verts, mesh.Indices, d.shader, &op)
}

// screenVertices maps mesh through m (entity space to normalized device
// coordinates) into screen pixels, y down, with texture coordinates scaled to
// a texW x texH source image.
func screenVertices(dst []ebiten.Vertex, mesh *Mesh, m Mat3, screenW, screenH, texW, texH int) []ebiten.Vertex {
	dst = dst[:0]
	sw, sh := float64(screenW), float64(screenH)
	tw, th := float32(texW), float32(texH)
	for _, v := range mesh.Vertices {
		nx, ny := m.Apply(float64(v.X), float64(v.Y))
		dst = append(dst, ebiten.Vertex{
			DstX:   float32((nx + 1) / 2 * sw),
			DstY:   float32((1 - ny) / 2 * sh),
			SrcX:   v.U * tw,
			SrcY:   v.V * th,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	return dst
}

// premultiply copies straight-alpha RGBA src into dst with color channels
// scaled by alpha, as ebiten images expect.
func premultiply(dst, src []byte) []byte {
	if cap(dst) < len(src) {
		dst = make([]byte, len(src))
	}
	dst = dst[:len(src)]
	for i := 0; i < len(src); i += 4 {
		a := uint16(src[i+3])
		dst[i] = uint8(uint16(src[i]) * a / 255)
		dst[i+1] = uint8(uint16(src[i+1]) * a / 255)
		dst[i+2] = uint8(uint16(src[i+2]) * a / 255)
		dst[i+3] = src[i+3]
	}
	return dst
}
