package nothofagus

// IndexFactory generates strictly increasing handles. Handles are never
// recycled. A plain counter (no atomic) since the core is single-threaded.
type IndexFactory struct {
	next uint64
}

// Next returns a handle never returned before by this factory.
func (f *IndexFactory) Next() uint64 {
	id := f.next
	f.next++
	return id
}

// IndexedContainer is a handle to value store. Values are held by pointer so
// references returned by At stay valid until the handle is removed.
//
// Iteration visits live handles in ascending handle order, which is also
// creation order since handles are monotonic.
type IndexedContainer[T any] struct {
	factory *IndexFactory
	values  map[uint64]*T
	order   []uint64 // ascending, may hold removed handles until compacted
	stale   int
	walking int // nesting depth of Each; compaction waits until zero
}

// NewIndexedContainer creates a container with its own IndexFactory.
func NewIndexedContainer[T any]() *IndexedContainer[T] {
	return NewIndexedContainerWithFactory[T](&IndexFactory{})
}

// NewIndexedContainerWithFactory creates a container drawing handles from a
// shared factory, so handles are unique and ordered across every container
// sharing it.
func NewIndexedContainerWithFactory[T any](factory *IndexFactory) *IndexedContainer[T] {
	return &IndexedContainer[T]{
		factory: factory,
		values:  make(map[uint64]*T),
	}
}

// Add stores value and returns its fresh handle.
func (c *IndexedContainer[T]) Add(value T) uint64 {
	id := c.factory.Next()
	v := value
	c.values[id] = &v
	c.order = append(c.order, id)
	return id
}

// Remove deletes the value for id. Panics with ErrInvalidHandle if absent.
func (c *IndexedContainer[T]) Remove(id uint64) {
	if _, ok := c.values[id]; !ok {
		fail(ErrInvalidHandle, "remove handle %d", id)
	}
	delete(c.values, id)
	c.stale++
	c.maybeCompact()
}

// At returns a pointer to the value for id. Panics with ErrInvalidHandle if
// absent.
func (c *IndexedContainer[T]) At(id uint64) *T {
	v, ok := c.values[id]
	if !ok {
		fail(ErrInvalidHandle, "lookup handle %d", id)
	}
	return v
}

// Lookup returns the value for id and whether it exists.
func (c *IndexedContainer[T]) Lookup(id uint64) (*T, bool) {
	v, ok := c.values[id]
	return v, ok
}

// Contains reports whether id is live.
func (c *IndexedContainer[T]) Contains(id uint64) bool {
	_, ok := c.values[id]
	return ok
}

// Len returns the number of live values.
func (c *IndexedContainer[T]) Len() int {
	return len(c.values)
}

// Each calls fn for every live (handle, value) pair in ascending handle order.
// fn may remove the handle it is visiting but must not add to the container.
func (c *IndexedContainer[T]) Each(fn func(id uint64, value *T)) {
	c.walking++
	defer func() {
		c.walking--
		c.maybeCompact()
	}()
	for _, id := range c.order {
		if v, ok := c.values[id]; ok {
			fn(id, v)
		}
	}
}

// IDs returns the live handles in ascending order.
func (c *IndexedContainer[T]) IDs() []uint64 {
	ids := make([]uint64, 0, len(c.values))
	for _, id := range c.order {
		if _, ok := c.values[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *IndexedContainer[T]) maybeCompact() {
	if c.walking == 0 && c.stale > len(c.order)/2 {
		c.compact()
	}
}

// compact drops removed handles from the order slice in place.
func (c *IndexedContainer[T]) compact() {
	live := c.order[:0]
	for _, id := range c.order {
		if _, ok := c.values[id]; ok {
			live = append(live, id)
		}
	}
	clear(c.order[len(live):])
	c.order = live
	c.stale = 0
}
