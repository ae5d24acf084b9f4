package list

// ItemMut is a place that currently holds one item and can be overwritten.
//
// A handle is valid until the next structural change (Push, Clear) of the list
// it came from.
type ItemMut[E any] interface {
	// Get returns the current item.
	Get() E
	// Set overwrites the item.
	Set(item E)
}

// Reader is the read-only half of List.
type Reader[E any] interface {
	Len() int
	Get(index int) (E, bool)
}

// List is an ordered sequence of items addressed by index.
type List[E any] interface {
	Reader[E]
	// Push appends item at index Len().
	Push(item E)
	// GetMut returns a mutable handle for index, or false if out of bounds.
	GetMut(index int) (ItemMut[E], bool)
}

// Storage creates lists for a single item type.
type Storage[E any] interface {
	NewList(capacity int) List[E]
}

// StorageFunc adapts a plain function to the Storage interface.
type StorageFunc[E any] func(capacity int) List[E]

// NewList implements Storage.
func (f StorageFunc[E]) NewList(capacity int) List[E] { return f(capacity) }

// Clearer is implemented by lists that can drop all items in bulk.
type Clearer interface {
	Clear()
}

// Slicer is implemented by lists whose storage is physically contiguous.
// The returned slice aliases the list and is invalidated by Push.
type Slicer[E any] interface {
	Slice() []E
}

// RefItem is implemented by handles that are backed by addressable memory.
type RefItem[E any] interface {
	Ref() *E
}

// Ref converts a handle into a plain pointer when the backend supports it.
func Ref[E any](m ItemMut[E]) (*E, bool) {
	r, ok := m.(RefItem[E])
	if !ok {
		return nil, false
	}
	return r.Ref(), true
}

// Collect copies every item of r into a new slice.
func Collect[E any](r Reader[E]) []E {
	if s, ok := r.(Slicer[E]); ok {
		out := make([]E, len(s.Slice()))
		copy(out, s.Slice())
		return out
	}

	n := r.Len()
	out := make([]E, 0, n)
	for i := 0; i < n; i++ {
		item, _ := r.Get(i)
		out = append(out, item)
	}
	return out
}
