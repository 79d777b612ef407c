package nothofagus

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIndexFactoryMonotonic(t *testing.T) {
	var f IndexFactory
	prev := f.Next()
	for i := 0; i < 100; i++ {
		id := f.Next()
		if id <= prev {
			t.Fatalf("Next() = %d after %d", id, prev)
		}
		prev = id
	}
}

func TestIndexedContainerAddAt(t *testing.T) {
	c := NewIndexedContainer[string]()
	a := c.Add("a")
	b := c.Add("b")
	if a == b {
		t.Fatalf("duplicate handle %d", a)
	}
	if *c.At(a) != "a" || *c.At(b) != "b" {
		t.Errorf("At returned wrong values")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestIndexedContainerPointerStable(t *testing.T) {
	c := NewIndexedContainer[int]()
	id := c.Add(1)
	p := c.At(id)
	for i := 0; i < 1000; i++ {
		c.Add(i)
	}
	*p = 42
	if *c.At(id) != 42 {
		t.Errorf("pointer from At no longer aliases storage")
	}
}

func TestIndexedContainerRemove(t *testing.T) {
	c := NewIndexedContainer[int]()
	id := c.Add(1)
	c.Remove(id)
	if c.Contains(id) {
		t.Error("removed handle still present")
	}
	if _, ok := c.Lookup(id); ok {
		t.Error("Lookup found removed handle")
	}
	mustPanicWith(t, ErrInvalidHandle, func() { c.Remove(id) })
	mustPanicWith(t, ErrInvalidHandle, func() { c.At(id) })
}

func TestIndexedContainerNoReuse(t *testing.T) {
	c := NewIndexedContainer[int]()
	id := c.Add(1)
	c.Remove(id)
	if again := c.Add(2); again == id {
		t.Errorf("handle %d reused after removal", id)
	}
}

func TestIndexedContainerEachOrder(t *testing.T) {
	c := NewIndexedContainer[int]()
	var ids []uint64
	for i := 0; i < 10; i++ {
		ids = append(ids, c.Add(i))
	}
	c.Remove(ids[3])
	c.Remove(ids[7])

	var got []int
	c.Each(func(_ uint64, v *int) { got = append(got, *v) })
	want := []int{0, 1, 2, 4, 5, 6, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each visited %v, want %v", got, want)
		}
	}
}

func TestIndexedContainerEachRemoveCurrent(t *testing.T) {
	c := NewIndexedContainer[int]()
	for i := 0; i < 8; i++ {
		c.Add(i)
	}
	visited := 0
	c.Each(func(id uint64, _ *int) {
		visited++
		c.Remove(id)
	})
	if visited != 8 {
		t.Errorf("visited %d, want 8", visited)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
	if len(c.IDs()) != 0 {
		t.Errorf("IDs = %v, want empty", c.IDs())
	}
}

func TestIndexedContainerSharedFactory(t *testing.T) {
	var f IndexFactory
	a := NewIndexedContainerWithFactory[int](&f)
	b := NewIndexedContainerWithFactory[string](&f)
	x := a.Add(1)
	y := b.Add("y")
	z := a.Add(2)
	if !(x < y && y < z) {
		t.Errorf("handles %d %d %d not ordered across containers", x, y, z)
	}
}

func TestIndexedContainerCompaction(t *testing.T) {
	c := NewIndexedContainer[int]()
	var ids []uint64
	for i := 0; i < 100; i++ {
		ids = append(ids, c.Add(i))
	}
	for _, id := range ids[:90] {
		c.Remove(id)
	}
	if len(c.order) > 20 {
		t.Errorf("order not compacted: %d entries for %d live", len(c.order), c.Len())
	}
	got := c.IDs()
	for i, id := range got {
		if id != ids[90+i] {
			t.Fatalf("IDs after compaction = %v", got)
		}
	}
}

func TestPropertyHandleUniqueness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// Each op: even adds, odd removes the oldest live handle.
	properties.Property("handles are never repeated", prop.ForAll(
		func(ops []int) bool {
			c := NewIndexedContainer[int]()
			seen := make(map[uint64]bool)
			var live []uint64
			for _, op := range ops {
				if op%2 == 1 && len(live) > 0 {
					c.Remove(live[0])
					live = live[1:]
					continue
				}
				id := c.Add(op)
				if seen[id] {
					return false
				}
				seen[id] = true
				live = append(live, id)
			}
			return c.Len() == len(live)
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}
