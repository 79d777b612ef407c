package nothofagus

// TextureHandle identifies a texture materialized on a Device.
type TextureHandle uint64

// MeshHandle identifies a mesh materialized on a Device.
type MeshHandle uint64

// DrawCall carries the per-draw state for one entity.
type DrawCall struct {
	Mesh      MeshHandle
	Texture   TextureHandle
	Transform Mat3 // entity space to normalized device coordinates
	Layer     int
	Tint      Tint
}

// Device is the GPU-side collaborator of the Canvas. All methods are called
// from the goroutine running the frame loop.
type Device interface {
	// UploadTexture uploads data (any number of layers) and returns a handle.
	UploadTexture(data TextureData) TextureHandle
	ReleaseTexture(h TextureHandle)
	CreateMesh(m Mesh) MeshHandle
	DestroyMesh(h MeshHandle)
	Draw(call DrawCall)
}
