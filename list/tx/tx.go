package tx

import (
	"github.com/hupe1980/slab/list"
)

// State is the lifecycle state of an overlay.
type State uint8

const (
	// StateClean means nothing has been staged yet.
	StateClean State = iota
	// StateStaged means at least one replace or append was recorded.
	StateStaged
	// StateApplied means the patch was consumed. The overlay can no longer stage.
	StateApplied
)

func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateStaged:
		return "staged"
	case StateApplied:
		return "applied"
	default:
		return "unknown"
	}
}

// List is a read view over a base list plus a private Patch.
// It implements list.List, so it can back anything that accepts one.
type List[E any] struct {
	base  list.Reader[E]
	patch Patch[E]
	state State
}

var _ list.List[int] = (*List[int])(nil)

// New creates an overlay over base. The base length is captured now; the base
// must not change while the overlay is in use.
func New[E any](base list.Reader[E]) *List[E] {
	return &List[E]{
		base:  base,
		patch: Patch[E]{baseLen: base.Len()},
	}
}

// State returns the lifecycle state.
func (l *List[E]) State() State { return l.state }

// Patch returns the staged patch for inspection.
func (l *List[E]) Patch() *Patch[E] { return &l.patch }

// Len returns base length plus the number of appended items.
func (l *List[E]) Len() int {
	return l.patch.baseLen + len(l.patch.pushed)
}

// Push stages an append. It panics with ErrApplied after Apply.
func (l *List[E]) Push(item E) {
	l.stage()
	l.patch.pushed = append(l.patch.pushed, item)
}

// Get returns the merged item at index. It never modifies the patch.
func (l *List[E]) Get(index int) (E, bool) {
	if index < 0 {
		var zero E
		return zero, false
	}
	if i := index - l.patch.baseLen; i >= 0 {
		if i >= len(l.patch.pushed) {
			var zero E
			return zero, false
		}
		return l.patch.pushed[i], true
	}
	if v, ok := l.patch.replacement(index); ok {
		return *v, true
	}
	return l.base.Get(index)
}

// GetMut returns a handle for index. Handles over untouched base items do not
// allocate a replacement until their first Set.
func (l *List[E]) GetMut(index int) (list.ItemMut[E], bool) {
	if index < 0 {
		return nil, false
	}
	if i := index - l.patch.baseLen; i >= 0 {
		if i >= len(l.patch.pushed) {
			return nil, false
		}
		return &ItemMut[E]{owner: l, index: index, kind: kindPushed}, true
	}
	if v, ok := l.patch.replacement(index); ok {
		return &ItemMut[E]{owner: l, index: index, kind: kindReplaced, staged: v}, true
	}
	orig, ok := l.base.Get(index)
	if !ok {
		return nil, false
	}
	return &ItemMut[E]{owner: l, index: index, kind: kindOriginal, original: orig}, true
}

// Apply drains the patch into target and moves the overlay to StateApplied.
// A failed Apply leaves the overlay untouched so it can be retried.
func (l *List[E]) Apply(target list.List[E]) error {
	if l.state == StateApplied {
		return ErrApplied
	}
	if err := l.patch.Apply(target); err != nil {
		return err
	}
	l.state = StateApplied
	return nil
}

func (l *List[E]) stage() {
	if l.state == StateApplied {
		panic(ErrApplied)
	}
	l.state = StateStaged
}

type itemKind uint8

const (
	kindOriginal itemKind = iota
	kindReplaced
	kindPushed
)

// ItemMut is the overlay's mutable handle.
type ItemMut[E any] struct {
	owner    *List[E]
	index    int
	kind     itemKind
	original E
	staged   *E
}

// Get returns the current value seen through the handle.
func (h *ItemMut[E]) Get() E {
	switch h.kind {
	case kindReplaced:
		return *h.staged
	case kindPushed:
		return h.owner.patch.pushed[h.index-h.owner.patch.baseLen]
	default:
		return h.original
	}
}

// Set writes item. The first Set over an original item promotes it into a
// replacement entry; later Sets overwrite that entry directly.
func (h *ItemMut[E]) Set(item E) {
	h.owner.stage()
	switch h.kind {
	case kindReplaced:
		*h.staged = item
	case kindPushed:
		h.owner.patch.pushed[h.index-h.owner.patch.baseLen] = item
	default:
		h.staged = h.owner.patch.replace(h.index, item)
		h.kind = kindReplaced
		var zero E
		h.original = zero
	}
}

// Staged reports whether the handle refers to a staged (replaced or appended) value.
func (h *ItemMut[E]) Staged() bool { return h.kind != kindOriginal }
