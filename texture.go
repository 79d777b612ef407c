package nothofagus

import (
	"fmt"

	"go.uber.org/multierr"
)

// ColorDepth is the number of bytes per pixel in TextureData.
const ColorDepth = 4

// TextureData is an upload-ready 8-bit RGBA buffer. Layers are stored
// back to back, each Width*Height*ColorDepth bytes.
type TextureData struct {
	Data   []byte
	Width  int
	Height int
	Layers int
}

func newTextureData(width, height, layers int) TextureData {
	return TextureData{
		Data:   make([]byte, width*height*layers*ColorDepth),
		Width:  width,
		Height: height,
		Layers: layers,
	}
}

// Layer returns the bytes of a single layer.
func (d TextureData) Layer(layer int) []byte {
	n := d.Width * d.Height * ColorDepth
	return d.Data[layer*n : (layer+1)*n]
}

// putColor writes c as 8-bit RGBA at byte offset i. Channels are truncated
// after scaling, so 0.5 maps to 127.
func (d TextureData) putColor(i int, c Color) {
	d.Data[i] = uint8(clamp01(c.R) * 255)
	d.Data[i+1] = uint8(clamp01(c.G) * 255)
	d.Data[i+2] = uint8(clamp01(c.B) * 255)
	d.Data[i+3] = uint8(clamp01(c.A) * 255)
}

// Texture2D is any single-layer texture a Bellota can reference.
type Texture2D interface {
	Size() (width, height int)
	GenerateTextureData() TextureData
}

// indexOf maps (i, j) to a row-major offset, panicking when out of bounds.
func indexOf(width, height, i, j int) int {
	if i < 0 || i >= width || j < 0 || j >= height {
		fail(ErrDimensionMismatch, "pixel (%d, %d) outside %dx%d texture", i, j, width, height)
	}
	return width*j + i
}

// checkPixels verifies ids against palette p.
func checkPixels(ids []ColorID, p ColorPalette) {
	for k, id := range ids {
		if int(id) >= p.Len() {
			fail(ErrPaletteIndexOutOfRange, "pixel %d has color id %d, palette size %d", k, id, p.Len())
		}
	}
}

// checkPaletteGrowth rejects replacing cur with a smaller palette.
func checkPaletteGrowth(cur, next ColorPalette) {
	if next.Len() < cur.Len() {
		fail(ErrPaletteIndexOutOfRange, "palette shrinks from %d to %d colors", cur.Len(), next.Len())
	}
}

// validatePixels returns an error for every pixel in ids outside p.
func validatePixels(ids []ColorID, p ColorPalette, layer int) error {
	var err error
	for k, id := range ids {
		if int(id) >= p.Len() {
			err = multierr.Append(err, fmt.Errorf("layer %d pixel %d: color id %d, palette size %d: %w",
				layer, k, id, p.Len(), ErrPaletteIndexOutOfRange))
		}
	}
	return err
}

// --- Texture (indexed, single layer) ---

// Texture is an indexed-color texture: a row-major grid of palette indices
// plus one palette.
type Texture struct {
	width, height int
	pixels        []ColorID
	palette       ColorPalette
}

// NewTexture creates a width x height texture whose palette holds only
// defaultColor and whose pixels all reference it.
func NewTexture(width, height int, defaultColor Color) *Texture {
	if width <= 0 || height <= 0 {
		fail(ErrDimensionMismatch, "texture size %dx%d", width, height)
	}
	return &Texture{
		width:   width,
		height:  height,
		pixels:  make([]ColorID, width*height),
		palette: NewColorPalette(defaultColor),
	}
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Pixels returns the pixel buffer. The returned slice MUST NOT be mutated.
func (t *Texture) Pixels() []ColorID {
	return t.pixels
}

// SetPixels replaces every pixel. Panics with ErrDimensionMismatch if len(ids)
// differs from the pixel count, or ErrPaletteIndexOutOfRange if any id is not
// in the palette. The texture is unchanged on failure.
func (t *Texture) SetPixels(ids ...ColorID) *Texture {
	if len(ids) != len(t.pixels) {
		fail(ErrDimensionMismatch, "set %d pixels on %dx%d texture", len(ids), t.width, t.height)
	}
	checkPixels(ids, t.palette)
	copy(t.pixels, ids)
	return t
}

// Pixel returns the color id at column i, row j.
func (t *Texture) Pixel(i, j int) ColorID {
	return t.pixels[indexOf(t.width, t.height, i, j)]
}

// SetPixel sets the color id at column i, row j.
func (t *Texture) SetPixel(i, j int, id ColorID) *Texture {
	if int(id) >= t.palette.Len() {
		fail(ErrPaletteIndexOutOfRange, "color id %d, palette size %d", id, t.palette.Len())
	}
	t.pixels[indexOf(t.width, t.height, i, j)] = id
	return t
}

// Color returns the palette color at column i, row j.
func (t *Texture) Color(i, j int) Color {
	return t.palette.At(t.Pixel(i, j))
}

// Palette returns a copy of the palette.
func (t *Texture) Palette() ColorPalette {
	return t.palette.Clone()
}

// SetPalette replaces the palette with a copy of p. Panics with
// ErrPaletteIndexOutOfRange if p has fewer colors than the current palette.
func (t *Texture) SetPalette(p ColorPalette) *Texture {
	checkPaletteGrowth(t.palette, p)
	t.palette = p.Clone()
	return t
}

// Clone returns a deep copy of t.
func (t *Texture) Clone() *Texture {
	return &Texture{
		width:   t.width,
		height:  t.height,
		pixels:  append([]ColorID(nil), t.pixels...),
		palette: t.palette.Clone(),
	}
}

// Validate reports every pixel whose color id is outside the palette.
func (t *Texture) Validate() error {
	return validatePixels(t.pixels, t.palette, 0)
}

// GenerateTextureData maps every pixel through the palette into 8-bit RGBA.
func (t *Texture) GenerateTextureData() TextureData {
	out := newTextureData(t.width, t.height, 1)
	for k, id := range t.pixels {
		out.putColor(k*ColorDepth, t.palette.At(id))
	}
	return out
}

// --- TextureArray (indexed, multi layer) ---

// TextureArray is a stack of same-sized indexed layers, each with its own
// palette. Pixels are stored layer-major.
type TextureArray struct {
	width, height int
	layers        int
	pixels        []ColorID
	palettes      []ColorPalette
}

// NewTextureArray creates a texture array of the given size and layer count.
// Every layer starts with a one-color palette holding defaultColor.
func NewTextureArray(width, height int, defaultColor Color, layers int) *TextureArray {
	if width <= 0 || height <= 0 || layers < 1 {
		fail(ErrDimensionMismatch, "texture array size %dx%d with %d layers", width, height, layers)
	}
	palettes := make([]ColorPalette, layers)
	for l := range palettes {
		palettes[l] = NewColorPalette(defaultColor)
	}
	return &TextureArray{
		width:    width,
		height:   height,
		layers:   layers,
		pixels:   make([]ColorID, width*height*layers),
		palettes: palettes,
	}
}

// Size returns the per-layer dimensions in pixels.
func (t *TextureArray) Size() (width, height int) {
	return t.width, t.height
}

// Layers returns the number of layers.
func (t *TextureArray) Layers() int {
	return t.layers
}

func (t *TextureArray) checkLayer(layer int) {
	if layer < 0 || layer >= t.layers {
		fail(ErrDimensionMismatch, "layer %d of %d", layer, t.layers)
	}
}

// layerPixels returns the slice of pixels backing layer.
func (t *TextureArray) layerPixels(layer int) []ColorID {
	n := t.width * t.height
	return t.pixels[layer*n : (layer+1)*n]
}

// LayerPixels returns the pixels of one layer. The returned slice MUST NOT be
// mutated.
func (t *TextureArray) LayerPixels(layer int) []ColorID {
	t.checkLayer(layer)
	return t.layerPixels(layer)
}

// SetPixels replaces every pixel of layer. Panics with ErrDimensionMismatch if
// len(ids) differs from the layer pixel count, or ErrPaletteIndexOutOfRange if
// any id is not in that layer's palette.
func (t *TextureArray) SetPixels(layer int, ids ...ColorID) *TextureArray {
	t.checkLayer(layer)
	dst := t.layerPixels(layer)
	if len(ids) != len(dst) {
		fail(ErrDimensionMismatch, "set %d pixels on %dx%d layer %d", len(ids), t.width, t.height, layer)
	}
	checkPixels(ids, t.palettes[layer])
	copy(dst, ids)
	return t
}

// Pixel returns the color id at column i, row j of layer.
func (t *TextureArray) Pixel(i, j, layer int) ColorID {
	t.checkLayer(layer)
	return t.layerPixels(layer)[indexOf(t.width, t.height, i, j)]
}

// SetPixel sets the color id at column i, row j of layer.
func (t *TextureArray) SetPixel(i, j, layer int, id ColorID) *TextureArray {
	t.checkLayer(layer)
	p := t.palettes[layer]
	if int(id) >= p.Len() {
		fail(ErrPaletteIndexOutOfRange, "layer %d color id %d, palette size %d", layer, id, p.Len())
	}
	t.layerPixels(layer)[indexOf(t.width, t.height, i, j)] = id
	return t
}

// Color returns the palette color at column i, row j of layer.
func (t *TextureArray) Color(i, j, layer int) Color {
	t.checkLayer(layer)
	return t.palettes[layer].At(t.Pixel(i, j, layer))
}

// Palette returns a copy of layer's palette.
func (t *TextureArray) Palette(layer int) ColorPalette {
	t.checkLayer(layer)
	return t.palettes[layer].Clone()
}

// SetPalette replaces layer's palette with a copy of p. Panics with
// ErrPaletteIndexOutOfRange if p is smaller than the current one.
func (t *TextureArray) SetPalette(layer int, p ColorPalette) *TextureArray {
	t.checkLayer(layer)
	checkPaletteGrowth(t.palettes[layer], p)
	t.palettes[layer] = p.Clone()
	return t
}

// SetPaletteAll replaces every layer's palette with its own copy of p.
func (t *TextureArray) SetPaletteAll(p ColorPalette) *TextureArray {
	for l := range t.palettes {
		checkPaletteGrowth(t.palettes[l], p)
	}
	for l := range t.palettes {
		t.palettes[l] = p.Clone()
	}
	return t
}

// Validate reports every pixel whose color id is outside its layer's palette.
func (t *TextureArray) Validate() error {
	var err error
	for l := 0; l < t.layers; l++ {
		err = multierr.Append(err, validatePixels(t.layerPixels(l), t.palettes[l], l))
	}
	return err
}

// GenerateTextureData maps every pixel of every layer through that layer's
// palette into 8-bit RGBA.
func (t *TextureArray) GenerateTextureData() TextureData {
	out := newTextureData(t.width, t.height, t.layers)
	i := 0
	for l := 0; l < t.layers; l++ {
		p := t.palettes[l]
		for _, id := range t.layerPixels(l) {
			out.putColor(i, p.At(id))
			i += ColorDepth
		}
	}
	return out
}

// --- DirectTexture (true color) ---

// DirectTexture stores true-color pixels with no palette. It may own its
// pixels or view caller-owned memory; in the latter case the caller must call
// Canvas.MarkTextureDirty after mutating that memory.
type DirectTexture struct {
	width, height int
	pixels        []Color
}

// NewDirectTexture creates a texture owning width*height pixels set to
// defaultColor.
func NewDirectTexture(width, height int, defaultColor Color) *DirectTexture {
	if width <= 0 || height <= 0 {
		fail(ErrDimensionMismatch, "texture size %dx%d", width, height)
	}
	pixels := make([]Color, width*height)
	for k := range pixels {
		pixels[k] = defaultColor
	}
	return &DirectTexture{width: width, height: height, pixels: pixels}
}

// NewDirectTextureView creates a texture over caller-owned pixels without
// copying. Panics with ErrDimensionMismatch if len(pixels) != width*height.
func NewDirectTextureView(width, height int, pixels []Color) *DirectTexture {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		fail(ErrDimensionMismatch, "view of %d pixels as %dx%d texture", len(pixels), width, height)
	}
	return &DirectTexture{width: width, height: height, pixels: pixels}
}

// Size returns the texture dimensions in pixels.
func (t *DirectTexture) Size() (width, height int) {
	return t.width, t.height
}

// Pixels returns the backing pixel slice.
func (t *DirectTexture) Pixels() []Color {
	return t.pixels
}

// Color returns the color at column i, row j.
func (t *DirectTexture) Color(i, j int) Color {
	return t.pixels[indexOf(t.width, t.height, i, j)]
}

// SetColor sets the color at column i, row j.
func (t *DirectTexture) SetColor(i, j int, c Color) *DirectTexture {
	t.pixels[indexOf(t.width, t.height, i, j)] = c
	return t
}

// GenerateTextureData converts the current pixels into 8-bit RGBA.
func (t *DirectTexture) GenerateTextureData() TextureData {
	out := newTextureData(t.width, t.height, 1)
	for k, c := range t.pixels {
		out.putColor(k*ColorDepth, c)
	}
	return out
}
