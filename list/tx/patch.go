package tx

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/hupe1980/slab/list"
)

var (
	// ErrIndexOutOfRange is returned by Apply when the target is shorter than the base
	// the patch was staged against.
	ErrIndexOutOfRange = errors.New("tx: index out of range")

	// ErrApplied is returned (or used as panic value when staging) once a patch
	// has been consumed.
	ErrApplied = errors.New("tx: patch already applied")
)

// Patch holds staged replacements and appends against a base of fixed length.
type Patch[E any] struct {
	baseLen  int
	replaced map[int]*E
	pushed   []E
}

// BaseLen returns the length of the base the patch was staged against.
func (p *Patch[E]) BaseLen() int { return p.baseLen }

// NumReplaced returns the number of replaced base indices.
func (p *Patch[E]) NumReplaced() int { return len(p.replaced) }

// NumPushed returns the number of appended items.
func (p *Patch[E]) NumPushed() int { return len(p.pushed) }

// IsEmpty reports whether applying the patch would be a no-op.
func (p *Patch[E]) IsEmpty() bool {
	return len(p.replaced) == 0 && len(p.pushed) == 0
}

// Replaced yields replaced indices and their staged values in ascending index order.
func (p *Patch[E]) Replaced() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for _, idx := range slices.Sorted(maps.Keys(p.replaced)) {
			if !yield(idx, *p.replaced[idx]) {
				return
			}
		}
	}
}

// Pushed yields appended items in append order.
func (p *Patch[E]) Pushed() iter.Seq[E] {
	return slices.Values(p.pushed)
}

// Apply writes the patch into target: replacements first, then appends in order.
// The target must hold at least BaseLen items. On success the patch is drained.
func (p *Patch[E]) Apply(target list.List[E]) error {
	if n := target.Len(); n < p.baseLen {
		return fmt.Errorf("%w: target has %d items, patch expects at least %d", ErrIndexOutOfRange, n, p.baseLen)
	}

	for idx, item := range p.Replaced() {
		m, ok := target.GetMut(idx)
		if !ok {
			return fmt.Errorf("%w: index %d", ErrIndexOutOfRange, idx)
		}
		m.Set(item)
	}

	for _, item := range p.pushed {
		target.Push(item)
	}

	p.replaced = nil
	p.pushed = nil
	return nil
}

func (p *Patch[E]) replacement(idx int) (*E, bool) {
	v, ok := p.replaced[idx]
	return v, ok
}

func (p *Patch[E]) replace(idx int, item E) *E {
	if v, ok := p.replaced[idx]; ok {
		*v = item
		return v
	}
	if p.replaced == nil {
		p.replaced = make(map[int]*E)
	}
	v := new(E)
	*v = item
	p.replaced[idx] = v
	return v
}
