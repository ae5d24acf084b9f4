package slab

// FreeListEnd terminates the free list. A vacant slot whose next is
// FreeListEnd is the tail; a slab whose head is FreeListEnd has no free slot.
const FreeListEnd = -1

// Slot is one storage cell of a slab: either occupied by a value or vacant
// and linked to the next vacant slot.
type Slot[T any] struct {
	value    T
	next     int
	occupied bool
}

// Occupied returns a slot holding v.
func Occupied[T any](v T) Slot[T] {
	return Slot[T]{value: v, next: FreeListEnd, occupied: true}
}

// Vacant returns a free slot linked to next.
func Vacant[T any](next int) Slot[T] {
	return Slot[T]{next: next}
}

// IsOccupied reports whether the slot holds a value.
func (s Slot[T]) IsOccupied() bool { return s.occupied }

// Value returns the stored value.
func (s Slot[T]) Value() (T, bool) {
	if !s.occupied {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Next returns the free-list link of a vacant slot.
func (s Slot[T]) Next() (int, bool) {
	if s.occupied {
		return FreeListEnd, false
	}
	return s.next, true
}
