package nothofagus

import (
	"time"
)

// drawItem is a single visible entity collected for the current frame.
type drawItem struct {
	depth   int8
	order   uint64 // entity id; ids are issued in creation order
	mesh    MeshHandle
	texture TextureHandle
	layer   int
	tint    Tint
	matrix  Mat3
}

// itemLessOrEqual orders by depth, then by creation order.
func itemLessOrEqual(a, b drawItem) bool {
	if a.depth != b.depth {
		return a.depth < b.depth
	}
	return a.order <= b.order
}

// Render draws one frame: materialize dirty resources, depth-sort visible
// entities, submit one draw per entity and sweep unused GPU textures.
func (c *Canvas) Render() {
	if c.closed {
		return
	}
	var st frameStats
	t0 := time.Now()

	c.destroyDeadMeshes(&st)
	c.materializeTextures(&st)
	c.materializeMeshes(&st)
	t1 := time.Now()

	c.collect()
	c.mergeSort()
	t2 := time.Now()

	for i := range c.drawList {
		it := &c.drawList[i]
		c.device.Draw(DrawCall{
			Mesh:      it.mesh,
			Texture:   it.texture,
			Transform: it.matrix,
			Layer:     it.layer,
			Tint:      it.tint,
		})
	}
	st.drawCalls = len(c.drawList)
	t3 := time.Now()

	c.sweep(&st)

	st.materializeTime = t1.Sub(t0)
	st.sortTime = t2.Sub(t1)
	st.submitTime = t3.Sub(t2)
	st.totalTime = time.Since(t0)
	if c.debug {
		c.logFrameStats(st)
	}
}

func (c *Canvas) destroyDeadMeshes(st *frameStats) {
	for _, h := range c.deadMeshes {
		c.device.DestroyMesh(h)
	}
	st.meshesDestroyed = len(c.deadMeshes)
	c.deadMeshes = c.deadMeshes[:0]
}

func (c *Canvas) materializeTextures(st *frameStats) {
	c.textures.Each(func(_ uint64, p *texturePack) {
		switch p.state {
		case ResourceLoaded:
			return
		case ResourceStale:
			c.device.ReleaseTexture(p.handle)
		}
		p.handle = c.device.UploadTexture(p.texture.GenerateTextureData())
		p.state = ResourceLoaded
		st.uploads++
	})
	c.textureArrays.Each(func(_ uint64, p *textureArrayPack) {
		switch p.state {
		case ResourceLoaded:
			return
		case ResourceStale:
			c.device.ReleaseTexture(p.handle)
		}
		p.handle = c.device.UploadTexture(p.texture.GenerateTextureData())
		p.state = ResourceLoaded
		st.uploads++
	})
}

func (c *Canvas) materializeMeshes(st *frameStats) {
	c.bellotas.Each(func(id uint64, p *bellotaPack) {
		c.rebindBellota(BellotaID(id), p)
		if p.built {
			return
		}
		tex, ok := c.textures.Lookup(uint64(p.bellota.Texture))
		if !ok {
			fail(ErrInvalidHandle, "bellota %d references removed texture %d", id, p.bellota.Texture)
		}
		w, h := tex.texture.Size()
		p.handle = c.device.CreateMesh(quadMesh(w, h))
		p.built = true
		st.meshesBuilt++
	})
	c.animated.Each(func(id uint64, p *animatedBellotaPack) {
		c.rebindAnimated(AnimatedBellotaID(id), p)
		if p.built {
			return
		}
		tex, ok := c.textureArrays.Lookup(uint64(p.bellota.Texture))
		if !ok {
			fail(ErrInvalidHandle, "animated bellota %d references removed texture array %d", id, p.bellota.Texture)
		}
		w, h := tex.texture.Size()
		p.handle = c.device.CreateMesh(quadMesh(w, h))
		p.built = true
		st.meshesBuilt++
	})
	// Rebinding above may have queued meshes for destruction.
	for _, h := range c.deadMeshes {
		c.device.DestroyMesh(h)
	}
	st.meshesDestroyed += len(c.deadMeshes)
	c.deadMeshes = c.deadMeshes[:0]
}

// collect fills c.drawList with every visible entity in handle order.
func (c *Canvas) collect() {
	c.drawList = c.drawList[:0]
	c.bellotas.Each(func(id uint64, p *bellotaPack) {
		b := &p.bellota
		if !b.Visible {
			return
		}
		tex := c.textures.At(uint64(b.Texture))
		c.drawList = append(c.drawList, drawItem{
			depth:   b.DepthOffset,
			order:   id,
			mesh:    p.handle,
			texture: tex.handle,
			tint:    tintOrDefault(p.tint),
			matrix:  c.world.Mul(b.Transform.Matrix()),
		})
	})
	c.animated.Each(func(id uint64, p *animatedBellotaPack) {
		b := &p.bellota
		if !b.Visible {
			return
		}
		tex := c.textureArrays.At(uint64(b.Texture))
		c.drawList = append(c.drawList, drawItem{
			depth:   b.DepthOffset,
			order:   id,
			mesh:    p.handle,
			texture: tex.handle,
			layer:   b.layer,
			tint:    tintOrDefault(p.tint),
			matrix:  c.world.Mul(b.Transform.Matrix()),
		})
	})
}

func tintOrDefault(t *Tint) Tint {
	if t == nil {
		return noTint
	}
	return *t
}

// mergeSort sorts c.drawList in-place using c.sortBuf as scratch space.
// Bottom-up merge sort: stable, and allocation-free once the buffer has grown.
func (c *Canvas) mergeSort() {
	n := len(c.drawList)
	if n <= 1 {
		return
	}
	if cap(c.sortBuf) < n {
		c.sortBuf = make([]drawItem, n)
	}
	c.sortBuf = c.sortBuf[:n]

	a := c.drawList
	b := c.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(c.drawList, c.sortBuf)
	}
}

// mergeRun merges src[lo:mid] and src[mid:hi] into dst[lo:hi].
func mergeRun(src, dst []drawItem, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if itemLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}

// sweep releases GPU copies of textures that are both removed and unused.
func (c *Canvas) sweep(st *frameStats) {
	for _, id := range c.textureUsage.UnusedIDs() {
		if c.textures.Contains(uint64(id)) {
			continue
		}
		if h, ok := c.orphanTextures[id]; ok {
			c.device.ReleaseTexture(h)
			delete(c.orphanTextures, id)
			st.released++
		}
		c.textureUsage.Forget(id)
	}
	for _, id := range c.textureArrayUsage.UnusedIDs() {
		if c.textureArrays.Contains(uint64(id)) {
			continue
		}
		if h, ok := c.orphanArrays[id]; ok {
			c.device.ReleaseTexture(h)
			delete(c.orphanArrays, id)
			st.released++
		}
		c.textureArrayUsage.Forget(id)
	}
}

// teardown releases every GPU resource the canvas owns.
func (c *Canvas) teardown() {
	if c.closed {
		return
	}
	for _, h := range c.deadMeshes {
		c.device.DestroyMesh(h)
	}
	c.deadMeshes = nil
	c.bellotas.Each(func(_ uint64, p *bellotaPack) {
		if p.built {
			c.device.DestroyMesh(p.handle)
			p.built = false
		}
	})
	c.animated.Each(func(_ uint64, p *animatedBellotaPack) {
		if p.built {
			c.device.DestroyMesh(p.handle)
			p.built = false
		}
	})
	c.textures.Each(func(_ uint64, p *texturePack) {
		if p.state != ResourceUnloaded {
			c.device.ReleaseTexture(p.handle)
			p.state = ResourceUnloaded
		}
	})
	c.textureArrays.Each(func(_ uint64, p *textureArrayPack) {
		if p.state != ResourceUnloaded {
			c.device.ReleaseTexture(p.handle)
			p.state = ResourceUnloaded
		}
	})
	for id, h := range c.orphanTextures {
		c.device.ReleaseTexture(h)
		delete(c.orphanTextures, id)
	}
	for id, h := range c.orphanArrays {
		c.device.ReleaseTexture(h)
		delete(c.orphanArrays, id)
	}
	c.closed = true
	c.logger.Debug("canvas closed")
}
