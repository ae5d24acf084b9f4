package list

// Vec is a List backed by a growable slice.
type Vec[E any] struct {
	items []E
}

// NewVec creates an empty Vec with room for capacity items.
func NewVec[E any](capacity int) *Vec[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vec[E]{items: make([]E, 0, capacity)}
}

// VecOf creates a Vec holding a copy of items.
func VecOf[E any](items ...E) *Vec[E] {
	v := NewVec[E](len(items))
	v.items = append(v.items, items...)
	return v
}

// Len returns the number of items.
func (v *Vec[E]) Len() int { return len(v.items) }

// Push appends item.
func (v *Vec[E]) Push(item E) { v.items = append(v.items, item) }

// Get returns the item at index.
func (v *Vec[E]) Get(index int) (E, bool) {
	if index < 0 || index >= len(v.items) {
		var zero E
		return zero, false
	}
	return v.items[index], true
}

// GetMut returns a handle that writes straight into the slice.
func (v *Vec[E]) GetMut(index int) (ItemMut[E], bool) {
	if index < 0 || index >= len(v.items) {
		return nil, false
	}
	return PtrItem[E]{p: &v.items[index]}, true
}

// Clear drops all items but keeps the allocated capacity.
func (v *Vec[E]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

// Slice returns the backing slice.
func (v *Vec[E]) Slice() []E { return v.items }

// Cap returns the capacity of the backing slice.
func (v *Vec[E]) Cap() int { return cap(v.items) }

// Clone returns a deep copy of the list structure (items are copied by value).
func (v *Vec[E]) Clone() *Vec[E] {
	return VecOf(v.items...)
}

// PtrItem is an ItemMut over addressable memory.
type PtrItem[E any] struct {
	p *E
}

// Get implements ItemMut.
func (h PtrItem[E]) Get() E { return *h.p }

// Set implements ItemMut.
func (h PtrItem[E]) Set(item E) { *h.p = item }

// Ref implements RefItem.
func (h PtrItem[E]) Ref() *E { return h.p }

// VecStorage is the default Storage. It produces *Vec lists.
type VecStorage[E any] struct{}

// NewList implements Storage.
func (VecStorage[E]) NewList(capacity int) List[E] { return NewVec[E](capacity) }
