package testutil

// Pair is a key/value pair as enumerated by a slab.
type Pair[T any] struct {
	Key   int
	Value T
}

type modelSlot[T any] struct {
	occupied bool
	value    T
}

// SlabModel is a naive slab: a slice of slots plus an explicit stack of freed keys.
// It reuses the most recently freed key first.
type SlabModel[T any] struct {
	slots []modelSlot[T]
	free  []int
	n     int
}

// NewSlabModel creates an empty model.
func NewSlabModel[T any]() *SlabModel[T] {
	return &SlabModel[T]{}
}

// Insert stores v and returns its key.
func (m *SlabModel[T]) Insert(v T) int {
	m.n++
	if k := len(m.free); k > 0 {
		key := m.free[k-1]
		m.free = m.free[:k-1]
		m.slots[key] = modelSlot[T]{occupied: true, value: v}
		return key
	}
	m.slots = append(m.slots, modelSlot[T]{occupied: true, value: v})
	return len(m.slots) - 1
}

// Remove frees key. It returns false if key is not live.
func (m *SlabModel[T]) Remove(key int) (T, bool) {
	var zero T
	if key < 0 || key >= len(m.slots) || !m.slots[key].occupied {
		return zero, false
	}
	v := m.slots[key].value
	m.slots[key] = modelSlot[T]{}
	m.free = append(m.free, key)
	m.n--
	return v, true
}

// Get returns the value stored under key.
func (m *SlabModel[T]) Get(key int) (T, bool) {
	if key < 0 || key >= len(m.slots) || !m.slots[key].occupied {
		var zero T
		return zero, false
	}
	return m.slots[key].value, true
}

// Len returns the number of live keys.
func (m *SlabModel[T]) Len() int { return m.n }

// Cap returns the number of slots ever created.
func (m *SlabModel[T]) Cap() int { return len(m.slots) }

// Keys returns live keys in ascending order, nil if none.
func (m *SlabModel[T]) Keys() []int {
	var keys []int
	for k, s := range m.slots {
		if s.occupied {
			keys = append(keys, k)
		}
	}
	return keys
}

// Pairs returns live pairs in ascending key order, nil if none.
func (m *SlabModel[T]) Pairs() []Pair[T] {
	var pairs []Pair[T]
	for k, s := range m.slots {
		if s.occupied {
			pairs = append(pairs, Pair[T]{Key: k, Value: s.value})
		}
	}
	return pairs
}

// FreeKeys returns freed keys in reuse order (next reused first).
func (m *SlabModel[T]) FreeKeys() []int {
	var out []int
	for i := len(m.free) - 1; i >= 0; i-- {
		out = append(out, m.free[i])
	}
	return out
}

// ListModel is a plain slice that mirrors the operations staged on an overlay.
type ListModel[E any] struct {
	items []E
}

// NewListModel creates a model seeded with a copy of base.
func NewListModel[E any](base ...E) *ListModel[E] {
	return &ListModel[E]{items: append([]E(nil), base...)}
}

// Replace overwrites index.
func (m *ListModel[E]) Replace(index int, v E) { m.items[index] = v }

// Push appends v.
func (m *ListModel[E]) Push(v E) { m.items = append(m.items, v) }

// Get returns the item at index.
func (m *ListModel[E]) Get(index int) (E, bool) {
	if index < 0 || index >= len(m.items) {
		var zero E
		return zero, false
	}
	return m.items[index], true
}

// Len returns the number of items.
func (m *ListModel[E]) Len() int { return len(m.items) }

// Items returns a copy of the items.
func (m *ListModel[E]) Items() []E { return append([]E(nil), m.items...) }
