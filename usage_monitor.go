package nothofagus

import (
	"cmp"
	"slices"
)

// UsageMonitor tracks which resources are referenced by which users. Every
// known resource is either unused or used by at least one user, never both.
// Resources that lose their last user become sweep candidates instead of being
// torn down immediately, so a resource swapped away and back within one frame
// keeps its GPU copy.
type UsageMonitor[R, U cmp.Ordered] struct {
	unused map[R]struct{}
	used   map[R]map[U]struct{}
}

// TextureUsageMonitor tracks Bellota references to textures.
type TextureUsageMonitor = UsageMonitor[TextureID, BellotaID]

// TextureArrayUsageMonitor tracks AnimatedBellota references to texture arrays.
type TextureArrayUsageMonitor = UsageMonitor[TextureArrayID, AnimatedBellotaID]

// NewUsageMonitor creates an empty monitor.
func NewUsageMonitor[R, U cmp.Ordered]() *UsageMonitor[R, U] {
	return &UsageMonitor[R, U]{
		unused: make(map[R]struct{}),
		used:   make(map[R]map[U]struct{}),
	}
}

// AddUnused registers r with no users. Returns false if r is already known.
func (m *UsageMonitor[R, U]) AddUnused(r R) bool {
	if m.Has(r) {
		return false
	}
	m.unused[r] = struct{}{}
	return true
}

// IsUnused reports whether r is known and has no users.
func (m *UsageMonitor[R, U]) IsUnused(r R) bool {
	_, ok := m.unused[r]
	return ok
}

// IsUsed reports whether r has at least one user.
func (m *UsageMonitor[R, U]) IsUsed(r R) bool {
	_, ok := m.used[r]
	return ok
}

// Has reports whether r is known, used or not.
func (m *UsageMonitor[R, U]) Has(r R) bool {
	return m.IsUnused(r) || m.IsUsed(r)
}

// Forget drops an unused r from the monitor. Returns false if r is unknown or
// still used.
func (m *UsageMonitor[R, U]) Forget(r R) bool {
	if !m.IsUnused(r) {
		return false
	}
	delete(m.unused, r)
	return true
}

// AddEntry records that u uses r, moving r out of the unused set if needed.
// Returns false if the pair was already recorded.
func (m *UsageMonitor[R, U]) AddEntry(u U, r R) bool {
	users, ok := m.used[r]
	if !ok {
		delete(m.unused, r)
		m.used[r] = map[U]struct{}{u: {}}
		return true
	}
	if _, dup := users[u]; dup {
		return false
	}
	users[u] = struct{}{}
	return true
}

// HasEntry reports whether u uses r.
func (m *UsageMonitor[R, U]) HasEntry(u U, r R) bool {
	_, ok := m.used[r][u]
	return ok
}

// RemoveEntry records that u no longer uses r. When r loses its last user it
// moves to the unused set. Returns false if the pair was not recorded.
func (m *UsageMonitor[R, U]) RemoveEntry(u U, r R) bool {
	users, ok := m.used[r]
	if !ok {
		return false
	}
	if _, ok := users[u]; !ok {
		return false
	}
	delete(users, u)
	if len(users) == 0 {
		delete(m.used, r)
		m.unused[r] = struct{}{}
	}
	return true
}

// Users returns how many users reference r.
func (m *UsageMonitor[R, U]) Users(r R) int {
	return len(m.used[r])
}

// UnusedIDs returns the unused resources in ascending order.
func (m *UsageMonitor[R, U]) UnusedIDs() []R {
	ids := make([]R, 0, len(m.unused))
	for r := range m.unused {
		ids = append(ids, r)
	}
	slices.Sort(ids)
	return ids
}

// ClearUnused forgets every unused resource.
func (m *UsageMonitor[R, U]) ClearUnused() {
	clear(m.unused)
}

// Loaded returns the number of known resources.
func (m *UsageMonitor[R, U]) Loaded() int {
	return len(m.unused) + len(m.used)
}
