package slab

import (
	"fmt"
	"iter"

	"github.com/hupe1980/slab/list"
)

// Slab is a key-stable arena.
//
// Slots are Occupied(value) or Vacant(next). Vacant slots form a LIFO free
// list starting at next; n counts occupied slots. A Slab is not safe for
// concurrent use.
type Slab[T any] struct {
	slots   list.List[Slot[T]]
	storage list.Storage[Slot[T]]
	next    int
	n       int
	version uint64
	logger  *Logger
}

// New creates a Slab backed by the default slice storage.
func New[T any](opts ...Option) *Slab[T] {
	return NewWithStorage[T](list.VecStorage[Slot[T]]{}, opts...)
}

// NewWithStorage creates a Slab whose slots live in lists produced by st.
func NewWithStorage[T any](st list.Storage[Slot[T]], opts ...Option) *Slab[T] {
	o := applyOptions(opts)
	return &Slab[T]{
		slots:   st.NewList(o.capacity),
		storage: st,
		next:    FreeListEnd,
		logger:  o.logger,
	}
}

// Insert stores v and returns its key. A freed slot is reused if one exists,
// the most recently freed first.
func (s *Slab[T]) Insert(v T) int {
	key := s.next
	if key == FreeListEnd {
		key = s.slots.Len()
		s.slots.Push(Occupied(v))
	} else {
		m := s.mustSlot(key)
		next, ok := m.Get().Next()
		if !ok {
			panic(corruptf("free list head %d is occupied", key))
		}
		m.Set(Occupied(v))
		s.next = next
	}
	s.n++
	s.version++
	return key
}

// Remove frees key and returns its value.
//
// It fails with ErrOutOfBounds if key does not address a slot and with
// ErrAlreadyVacant if the slot is free. Both are wrapped in a *KeyError.
func (s *Slab[T]) Remove(key int) (T, error) {
	var zero T
	m, ok := s.slots.GetMut(key)
	if !ok {
		return zero, &KeyError{Op: "remove", Key: key, Err: ErrOutOfBounds}
	}
	slot := m.Get()
	if !slot.occupied {
		return zero, &KeyError{Op: "remove", Key: key, Err: ErrAlreadyVacant}
	}
	m.Set(Vacant[T](s.next))
	s.next = key
	s.n--
	s.version++
	return slot.value, nil
}

// TryRemove is Remove for callers that treat a missing key as a no-op.
func (s *Slab[T]) TryRemove(key int) (T, bool) {
	v, err := s.Remove(key)
	return v, err == nil
}

// Get returns the value stored under key.
func (s *Slab[T]) Get(key int) (T, bool) {
	slot, ok := s.slots.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	return slot.Value()
}

// GetMut returns a handle to the value stored under key.
// The handle is valid until the next Insert, Remove or Clear.
func (s *Slab[T]) GetMut(key int) (list.ItemMut[T], bool) {
	m, ok := s.slots.GetMut(key)
	if !ok || !m.Get().occupied {
		return nil, false
	}
	return valueMut[T]{slot: m}, true
}

// GetPtr returns a pointer to the value stored under key. It requires a
// storage whose handles implement list.RefItem.
func (s *Slab[T]) GetPtr(key int) (*T, error) {
	m, ok := s.slots.GetMut(key)
	if !ok {
		return nil, &KeyError{Op: "get", Key: key, Err: ErrOutOfBounds}
	}
	p, ok := list.Ref(m)
	if !ok {
		return nil, ErrNotAddressable
	}
	if !p.occupied {
		return nil, &KeyError{Op: "get", Key: key, Err: ErrVacant}
	}
	return &p.value, nil
}

// Contains reports whether key is live.
func (s *Slab[T]) Contains(key int) bool {
	slot, ok := s.slots.Get(key)
	return ok && slot.occupied
}

// Len returns the number of occupied slots.
func (s *Slab[T]) Len() int { return s.n }

// IsEmpty reports whether no slot is occupied.
func (s *Slab[T]) IsEmpty() bool { return s.n == 0 }

// Cap returns the length of the slot sequence, occupied or not.
func (s *Slab[T]) Cap() int { return s.slots.Len() }

// VacantKey returns the key the next Insert will return.
func (s *Slab[T]) VacantKey() int {
	if s.next == FreeListEnd {
		return s.slots.Len()
	}
	return s.next
}

// All yields (key, value) for every occupied slot in ascending key order.
func (s *Slab[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if sl, ok := s.slots.(list.Slicer[Slot[T]]); ok {
			for key, slot := range sl.Slice() {
				if slot.occupied && !yield(key, slot.value) {
					return
				}
			}
			return
		}
		for key := 0; key < s.slots.Len(); key++ {
			slot, _ := s.slots.Get(key)
			if slot.occupied && !yield(key, slot.value) {
				return
			}
		}
	}
}

// Keys yields live keys in ascending order.
func (s *Slab[T]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for key := range s.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values yields live values in ascending key order.
func (s *Slab[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clear removes every slot. Storage implementing list.Clearer keeps its
// allocation; other storage is replaced by a fresh list.
func (s *Slab[T]) Clear() {
	dropped, capacity := s.n, s.slots.Len()
	if c, ok := s.slots.(list.Clearer); ok {
		c.Clear()
	} else {
		s.slots = s.storage.NewList(0)
	}
	s.next = FreeListEnd
	s.n = 0
	s.version++
	s.logger.LogClear(dropped, capacity)
}

// String implements fmt.Stringer.
func (s *Slab[T]) String() string {
	return fmt.Sprintf("Slab{len: %d, cap: %d, next: %d}", s.n, s.slots.Len(), s.next)
}

func (s *Slab[T]) mustSlot(key int) list.ItemMut[Slot[T]] {
	m, ok := s.slots.GetMut(key)
	if !ok {
		panic(corruptf("free list points at missing slot %d", key))
	}
	return m
}

type valueMut[T any] struct {
	slot list.ItemMut[Slot[T]]
}

func (h valueMut[T]) Get() T { return h.slot.Get().value }

func (h valueMut[T]) Set(v T) { h.slot.Set(Occupied(v)) }
