package slab

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Validate checks the slab invariants:
//
//   - the occupied count matches the occupied slots
//   - the free list stays in range, never reaches an occupied slot and has no cycle
//   - the free list visits every vacant slot
//
// Violations are reported as errors wrapping ErrCorrupt.
func (s *Slab[T]) Validate() error {
	err := s.validate()
	s.logger.LogValidate(err)
	return err
}

func (s *Slab[T]) validate() error {
	total := s.slots.Len()
	if s.n < 0 || s.n > total {
		return corruptf("count %d outside [0, %d]", s.n, total)
	}

	occupied := 0
	for key := 0; key < total; key++ {
		slot, _ := s.slots.Get(key)
		if slot.occupied {
			occupied++
		}
	}
	if occupied != s.n {
		return corruptf("count %d, but %d slots are occupied", s.n, occupied)
	}

	visited := roaring64.New()
	for cur := s.next; cur != FreeListEnd; {
		if cur < 0 || cur >= total {
			return corruptf("free list points at %d, capacity %d", cur, total)
		}
		if !visited.CheckedAdd(uint64(cur)) {
			return corruptf("free list cycles at %d", cur)
		}
		slot, _ := s.slots.Get(cur)
		if slot.occupied {
			return corruptf("free list reaches occupied slot %d", cur)
		}
		cur = slot.next
	}

	if vacant := uint64(total - occupied); visited.GetCardinality() != vacant {
		return corruptf("free list reaches %d of %d vacant slots", visited.GetCardinality(), vacant)
	}
	return nil
}

// Occupancy returns a bitmap of the live keys.
func (s *Slab[T]) Occupancy() *roaring64.Bitmap {
	bm := roaring64.New()
	for key := range s.Keys() {
		bm.Add(uint64(key))
	}
	return bm
}

// FreeKeys returns the vacant keys in the order Insert will reuse them.
func (s *Slab[T]) FreeKeys() []int {
	var keys []int
	for cur := s.next; cur != FreeListEnd && len(keys) < s.slots.Len(); {
		slot, ok := s.slots.Get(cur)
		if !ok || slot.occupied {
			break
		}
		keys = append(keys, cur)
		cur = slot.next
	}
	return keys
}
