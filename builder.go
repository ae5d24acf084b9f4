package slab

import (
	"github.com/hupe1980/slab/list"
)

// Builder reconstructs a Slab from (key, value) pairs, e.g. while decoding.
//
// Keys may arrive in any order. Gaps below a key are filled with vacant
// slots. A key paired twice keeps the last value and is counted once. The
// free list is threaded in Build, lowest vacant key first, so it holds exactly
// the slots no Pair targeted.
type Builder[T any] struct {
	slots   list.List[Slot[T]]
	storage list.Storage[Slot[T]]
	n       int
	logger  *Logger
}

// NewBuilder creates a Builder backed by the default slice storage,
// pre-sized for capacity slots.
func NewBuilder[T any](capacity int, opts ...Option) *Builder[T] {
	return NewBuilderWithStorage[T](list.VecStorage[Slot[T]]{}, capacity, opts...)
}

// NewBuilderWithStorage creates a Builder whose slots live in lists produced by st.
func NewBuilderWithStorage[T any](st list.Storage[Slot[T]], capacity int, opts ...Option) *Builder[T] {
	if capacity > 0 {
		opts = append(opts, WithCapacity(capacity))
	}
	o := applyOptions(opts)
	return &Builder[T]{
		slots:   st.NewList(o.capacity),
		storage: st,
		logger:  o.logger,
	}
}

// Pair installs v as occupied at key.
func (b *Builder[T]) Pair(key int, v T) error {
	if key < 0 {
		return &KeyError{Op: "pair", Key: key, Err: ErrOutOfBounds}
	}

	for b.slots.Len() < key {
		b.slots.Push(Vacant[T](FreeListEnd))
	}

	if key == b.slots.Len() {
		b.slots.Push(Occupied(v))
		b.n++
		return nil
	}

	m, _ := b.slots.GetMut(key)
	if !m.Get().occupied {
		b.n++
	}
	m.Set(Occupied(v))
	return nil
}

// Len returns the number of distinct keys paired so far.
func (b *Builder[T]) Len() int { return b.n }

// Reset discards every pair added so far.
func (b *Builder[T]) Reset() {
	b.slots = b.storage.NewList(0)
	b.n = 0
}

// Build returns the Slab and resets the Builder to empty.
func (b *Builder[T]) Build() *Slab[T] {
	next := FreeListEnd
	for key := b.slots.Len() - 1; key >= 0; key-- {
		m, _ := b.slots.GetMut(key)
		if m.Get().occupied {
			continue
		}
		m.Set(Vacant[T](next))
		next = key
	}

	s := &Slab[T]{
		slots:   b.slots,
		storage: b.storage,
		next:    next,
		n:       b.n,
		logger:  b.logger,
	}
	b.logger.LogBuild(s.n, s.slots.Len())

	b.Reset()
	return s
}
