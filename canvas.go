package nothofagus

import (
	"fmt"

	"go.uber.org/zap"
)

// Defaults applied by NewCanvas to zero Config fields.
const (
	DefaultScreenWidth  = 256
	DefaultScreenHeight = 240
	DefaultTitle        = "Nothofagus App"
	DefaultPixelSize    = 4
)

// Config configures a Canvas.
type Config struct {
	// ScreenWidth and ScreenHeight are the canvas size in canvas pixels.
	ScreenWidth, ScreenHeight int
	// Title is the window title.
	Title string
	// ClearColor fills the screen before each frame. Alpha is ignored.
	ClearColor Color
	// PixelSize is the window size in screen pixels of one canvas pixel.
	PixelSize int
	// Logger receives debug records. Nil means zap.NewNop().
	Logger *zap.Logger
	// Device materializes GPU resources. Nil means the ebiten device.
	Device Device
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   DefaultScreenWidth,
		ScreenHeight:  DefaultScreenHeight,
		Title:         DefaultTitle,
		ClearColor:    ColorBlack,
		PixelSize:     DefaultPixelSize,
		ScreenshotDir: "screenshots",
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.ScreenWidth <= 0 {
		cfg.ScreenWidth = def.ScreenWidth
	}
	if cfg.ScreenHeight <= 0 {
		cfg.ScreenHeight = def.ScreenHeight
	}
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.PixelSize <= 0 {
		cfg.PixelSize = def.PixelSize
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = def.ScreenshotDir
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// ResourceState tracks whether a CPU resource is reflected on the Device.
type ResourceState uint8

const (
	ResourceUnloaded ResourceState = iota // never uploaded
	ResourceLoaded                        // uploaded and current
	ResourceStale                         // uploaded, CPU copy changed since
)

// String returns the state name.
func (s ResourceState) String() string {
	switch s {
	case ResourceLoaded:
		return "loaded"
	case ResourceStale:
		return "stale"
	default:
		return "unloaded"
	}
}

type texturePack struct {
	texture Texture2D
	handle  TextureHandle
	state   ResourceState
}

type textureArrayPack struct {
	texture *TextureArray
	handle  TextureHandle
	state   ResourceState
}

// meshState is the lazily built GPU side of an entity.
type meshState struct {
	handle MeshHandle
	built  bool
	tint   *Tint
}

type bellotaPack struct {
	bellota Bellota
	bound   TextureID // texture registered with the usage monitor
	meshState
}

type animatedBellotaPack struct {
	bellota AnimatedBellota
	bound   TextureArrayID
	meshState
}

// Canvas owns textures and entities and renders them once per frame.
// It is not safe for concurrent use: every method must be called from the
// goroutine running the frame loop.
type Canvas struct {
	cfg    Config
	logger *zap.Logger
	device Device
	world  Mat3

	textures      *IndexedContainer[texturePack]
	textureArrays *IndexedContainer[textureArrayPack]
	entityIDs     IndexFactory // shared so creation order spans both entity kinds
	bellotas      *IndexedContainer[bellotaPack]
	animated      *IndexedContainer[animatedBellotaPack]

	textureUsage      *TextureUsageMonitor
	textureArrayUsage *TextureArrayUsageMonitor
	orphanTextures    map[TextureID]TextureHandle
	orphanArrays      map[TextureArrayID]TextureHandle
	deadMeshes        []MeshHandle

	drawList []drawItem
	sortBuf  []drawItem

	controller *Controller
	update     func(dt float64)
	perf       *PerformanceMonitor
	elapsed    float64
	stats      bool
	debug      bool
	closing    bool
	closed     bool
	running    bool

	keys            keyPoller
	keyBuf          []KeyboardTrigger
	injectQueue     []KeyboardTrigger
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewCanvas creates a canvas. Zero Config fields take their defaults.
func NewCanvas(cfg Config) *Canvas {
	cfg = cfg.withDefaults()
	c := &Canvas{
		cfg:               cfg,
		logger:            cfg.Logger,
		device:            cfg.Device,
		world:             screenMatrix(cfg.ScreenWidth, cfg.ScreenHeight),
		textures:          NewIndexedContainer[texturePack](),
		textureArrays:     NewIndexedContainer[textureArrayPack](),
		textureUsage:      NewUsageMonitor[TextureID, BellotaID](),
		textureArrayUsage: NewUsageMonitor[TextureArrayID, AnimatedBellotaID](),
		orphanTextures:    make(map[TextureID]TextureHandle),
		orphanArrays:      make(map[TextureArrayID]TextureHandle),
		perf:              NewPerformanceMonitor(0, defaultPerformancePeriod),
	}
	c.bellotas = NewIndexedContainerWithFactory[bellotaPack](&c.entityIDs)
	c.animated = NewIndexedContainerWithFactory[animatedBellotaPack](&c.entityIDs)
	if c.device == nil {
		c.device = newEbitenDevice(cfg.ScreenWidth, cfg.ScreenHeight)
	}
	return c
}

// Config returns the effective configuration.
func (c *Canvas) Config() Config {
	return c.cfg
}

// ScreenSize returns the canvas size in canvas pixels.
func (c *Canvas) ScreenSize() (width, height int) {
	return c.cfg.ScreenWidth, c.cfg.ScreenHeight
}

// Logger returns the canvas logger.
func (c *Canvas) Logger() *zap.Logger {
	return c.logger
}

// Stats reports whether the fps/ms overlay is shown.
func (c *Canvas) Stats() bool {
	return c.stats
}

// SetStats shows or hides the fps/ms overlay.
func (c *Canvas) SetStats(enabled bool) {
	c.stats = enabled
}

// SetDebugMode enables or disables per-frame stats logging at debug level.
func (c *Canvas) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// PerformanceMonitor returns the frame timing monitor.
func (c *Canvas) PerformanceMonitor() *PerformanceMonitor {
	return c.perf
}

// --- Textures ---

// AddTexture registers a single-layer texture. It is uploaded lazily on the
// next frame. Use AddTextureArray for *TextureArray.
func (c *Canvas) AddTexture(t Texture2D) TextureID {
	if t == nil {
		panic("nothofagus: cannot add nil texture")
	}
	if _, ok := t.(*TextureArray); ok {
		panic("nothofagus: texture arrays must be added with AddTextureArray")
	}
	id := TextureID(c.textures.Add(texturePack{texture: t}))
	c.textureUsage.AddUnused(id)
	c.logger.Debug("texture added", zap.Uint64("texture", uint64(id)))
	return id
}

// RemoveTexture removes a texture's CPU record. Its GPU copy is released by
// the end-of-frame sweep once no Bellota references it. Drawing a Bellota
// that still references it panics.
func (c *Canvas) RemoveTexture(id TextureID) {
	p := c.textures.At(uint64(id))
	if p.state != ResourceUnloaded {
		c.orphanTextures[id] = p.handle
	}
	c.textures.Remove(uint64(id))
	c.logger.Debug("texture removed", zap.Uint64("texture", uint64(id)),
		zap.Int("users", c.textureUsage.Users(id)))
}

// HasTexture reports whether id is a live texture.
func (c *Canvas) HasTexture(id TextureID) bool {
	return c.textures.Contains(uint64(id))
}

// Texture returns the texture for id. Panics with ErrInvalidHandle if absent.
// Call MarkTextureDirty after mutating it.
func (c *Canvas) Texture(id TextureID) Texture2D {
	return c.textures.At(uint64(id)).texture
}

// MarkTextureDirty schedules a re-upload of id on the next frame.
func (c *Canvas) MarkTextureDirty(id TextureID) {
	p := c.textures.At(uint64(id))
	if p.state == ResourceLoaded {
		p.state = ResourceStale
	}
}

// TextureState returns the GPU state of id.
func (c *Canvas) TextureState(id TextureID) ResourceState {
	return c.textures.At(uint64(id)).state
}

// TextureUsage returns the monitor tracking Bellota references to textures.
func (c *Canvas) TextureUsage() *TextureUsageMonitor {
	return c.textureUsage
}

// AddTextureArray registers a texture array. It is uploaded lazily on the
// next frame.
func (c *Canvas) AddTextureArray(t *TextureArray) TextureArrayID {
	if t == nil {
		panic("nothofagus: cannot add nil texture array")
	}
	id := TextureArrayID(c.textureArrays.Add(textureArrayPack{texture: t}))
	c.textureArrayUsage.AddUnused(id)
	c.logger.Debug("texture array added", zap.Uint64("textureArray", uint64(id)),
		zap.Int("layers", t.Layers()))
	return id
}

// RemoveTextureArray removes a texture array's CPU record; see RemoveTexture.
func (c *Canvas) RemoveTextureArray(id TextureArrayID) {
	p := c.textureArrays.At(uint64(id))
	if p.state != ResourceUnloaded {
		c.orphanArrays[id] = p.handle
	}
	c.textureArrays.Remove(uint64(id))
	c.logger.Debug("texture array removed", zap.Uint64("textureArray", uint64(id)),
		zap.Int("users", c.textureArrayUsage.Users(id)))
}

// HasTextureArray reports whether id is a live texture array.
func (c *Canvas) HasTextureArray(id TextureArrayID) bool {
	return c.textureArrays.Contains(uint64(id))
}

// TextureArray returns the texture array for id. Panics with ErrInvalidHandle
// if absent.
func (c *Canvas) TextureArray(id TextureArrayID) *TextureArray {
	return c.textureArrays.At(uint64(id)).texture
}

// MarkTextureArrayDirty schedules a re-upload of id on the next frame.
func (c *Canvas) MarkTextureArrayDirty(id TextureArrayID) {
	p := c.textureArrays.At(uint64(id))
	if p.state == ResourceLoaded {
		p.state = ResourceStale
	}
}

// TextureArrayState returns the GPU state of id.
func (c *Canvas) TextureArrayState(id TextureArrayID) ResourceState {
	return c.textureArrays.At(uint64(id)).state
}

// TextureArrayUsage returns the monitor tracking AnimatedBellota references
// to texture arrays.
func (c *Canvas) TextureArrayUsage() *TextureArrayUsageMonitor {
	return c.textureArrayUsage
}

// --- Bellotas ---

// AddBellota registers b. Panics with ErrInvalidHandle if b.Texture is not a
// live texture, or ErrDimensionMismatch if b has a zero scale, as a Bellota
// built without NewBellota does.
func (c *Canvas) AddBellota(b Bellota) BellotaID {
	c.textures.At(uint64(b.Texture))
	checkScale(b.Transform)
	id := BellotaID(c.bellotas.Add(bellotaPack{bellota: b, bound: b.Texture}))
	c.textureUsage.AddEntry(id, b.Texture)
	return id
}

// RemoveBellota removes b. Its texture becomes a sweep candidate if nothing
// else references it.
func (c *Canvas) RemoveBellota(id BellotaID) {
	p := c.bellotas.At(uint64(id))
	c.textureUsage.RemoveEntry(id, p.bound)
	c.dropMesh(&p.meshState)
	c.bellotas.Remove(uint64(id))
}

// HasBellota reports whether id is a live Bellota.
func (c *Canvas) HasBellota(id BellotaID) bool {
	return c.bellotas.Contains(uint64(id))
}

// Bellota returns the Bellota for id. The pointer stays valid until
// RemoveBellota. Panics with ErrInvalidHandle if absent.
func (c *Canvas) Bellota(id BellotaID) *Bellota {
	return &c.bellotas.At(uint64(id)).bellota
}

// BellotaCount returns the number of live Bellotas.
func (c *Canvas) BellotaCount() int {
	return c.bellotas.Len()
}

// SetTexture points b at texture and rebuilds its mesh next frame.
func (c *Canvas) SetTexture(id BellotaID, texture TextureID) {
	c.textures.At(uint64(texture))
	p := c.bellotas.At(uint64(id))
	p.bellota.Texture = texture
	c.rebindBellota(id, p)
}

// rebindBellota moves the usage entry to the Bellota's current texture and
// drops its mesh.
func (c *Canvas) rebindBellota(id BellotaID, p *bellotaPack) {
	if p.bound == p.bellota.Texture {
		return
	}
	c.textureUsage.RemoveEntry(id, p.bound)
	c.textureUsage.AddEntry(id, p.bellota.Texture)
	p.bound = p.bellota.Texture
	c.dropMesh(&p.meshState)
}

// SetTint sets b's tint.
func (c *Canvas) SetTint(id BellotaID, t Tint) {
	c.bellotas.At(uint64(id)).tint = &t
}

// RemoveTint clears b's tint.
func (c *Canvas) RemoveTint(id BellotaID) {
	c.bellotas.At(uint64(id)).tint = nil
}

// TintOf returns b's tint and whether one is set.
func (c *Canvas) TintOf(id BellotaID) (Tint, bool) {
	p := c.bellotas.At(uint64(id))
	if p.tint == nil {
		return Tint{}, false
	}
	return *p.tint, true
}

// --- AnimatedBellotas ---

// AddAnimatedBellota registers b. Panics with ErrInvalidHandle if b.Texture is
// not a live texture array, or ErrDimensionMismatch if b has more layers than
// the array or a zero scale.
func (c *Canvas) AddAnimatedBellota(b AnimatedBellota) AnimatedBellotaID {
	if b.layers < 1 {
		fail(ErrDimensionMismatch, "animated bellota with %d layers", b.layers)
	}
	c.checkArrayLayers(b.Texture, b.layers)
	checkScale(b.Transform)
	id := AnimatedBellotaID(c.animated.Add(animatedBellotaPack{bellota: b, bound: b.Texture}))
	c.textureArrayUsage.AddEntry(id, b.Texture)
	return id
}

// checkScale rejects the zero scale of an unset Transform.
func checkScale(t Transform) {
	if t.Scale == (Vec2{}) {
		fail(ErrDimensionMismatch, "zero scale, use NewTransform")
	}
}

func (c *Canvas) checkArrayLayers(id TextureArrayID, layers int) {
	arr := c.textureArrays.At(uint64(id)).texture
	if layers > arr.Layers() {
		fail(ErrDimensionMismatch, "%d layers over texture array %d with %d", layers, id, arr.Layers())
	}
}

// RemoveAnimatedBellota removes b.
func (c *Canvas) RemoveAnimatedBellota(id AnimatedBellotaID) {
	p := c.animated.At(uint64(id))
	c.textureArrayUsage.RemoveEntry(id, p.bound)
	c.dropMesh(&p.meshState)
	c.animated.Remove(uint64(id))
}

// HasAnimatedBellota reports whether id is a live AnimatedBellota.
func (c *Canvas) HasAnimatedBellota(id AnimatedBellotaID) bool {
	return c.animated.Contains(uint64(id))
}

// AnimatedBellota returns the AnimatedBellota for id. The pointer stays valid
// until RemoveAnimatedBellota, so it can be bound to an
// AnimationStateMachine.
func (c *Canvas) AnimatedBellota(id AnimatedBellotaID) *AnimatedBellota {
	return &c.animated.At(uint64(id)).bellota
}

// AnimatedBellotaCount returns the number of live AnimatedBellotas.
func (c *Canvas) AnimatedBellotaCount() int {
	return c.animated.Len()
}

// SetTextureArray points b at texture and rebuilds its mesh next frame.
func (c *Canvas) SetTextureArray(id AnimatedBellotaID, texture TextureArrayID) {
	p := c.animated.At(uint64(id))
	c.checkArrayLayers(texture, p.bellota.layers)
	p.bellota.Texture = texture
	c.rebindAnimated(id, p)
}

func (c *Canvas) rebindAnimated(id AnimatedBellotaID, p *animatedBellotaPack) {
	if p.bound == p.bellota.Texture {
		return
	}
	c.textureArrayUsage.RemoveEntry(id, p.bound)
	c.textureArrayUsage.AddEntry(id, p.bellota.Texture)
	p.bound = p.bellota.Texture
	c.dropMesh(&p.meshState)
}

// SetAnimatedTint sets b's tint.
func (c *Canvas) SetAnimatedTint(id AnimatedBellotaID, t Tint) {
	c.animated.At(uint64(id)).tint = &t
}

// RemoveAnimatedTint clears b's tint.
func (c *Canvas) RemoveAnimatedTint(id AnimatedBellotaID) {
	c.animated.At(uint64(id)).tint = nil
}

// dropMesh schedules the entity's GPU mesh for destruction on the next frame
// and marks it for rebuild.
func (c *Canvas) dropMesh(m *meshState) {
	if m.built {
		c.deadMeshes = append(c.deadMeshes, m.handle)
	}
	m.built = false
	m.handle = 0
}

// String summarizes the canvas contents.
func (c *Canvas) String() string {
	return fmt.Sprintf("Canvas{%dx%d textures=%d arrays=%d bellotas=%d animated=%d}",
		c.cfg.ScreenWidth, c.cfg.ScreenHeight,
		c.textures.Len(), c.textureArrays.Len(), c.bellotas.Len(), c.animated.Len())
}
