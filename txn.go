package slab

import (
	"fmt"
	"iter"

	"github.com/hupe1980/slab/list"
	"github.com/hupe1980/slab/list/tx"
)

// Txn is a speculative view of a Slab.
//
// Every change is staged in a tx.List overlay over the slab's slots. The slab
// itself is not touched until Commit. Several transactions may be open over
// the same slab; only one of them can commit, the others fail with ErrConflict.
//
// Writes made through handles obtained from the slab directly (GetMut, GetPtr)
// while a transaction is open are not detected as conflicts.
type Txn[T any] struct {
	base    *Slab[T]
	overlay *tx.List[Slot[T]]
	view    *Slab[T]
	version uint64
	done    bool
}

// Begin opens a transaction over s.
func (s *Slab[T]) Begin() *Txn[T] {
	ov := tx.New[Slot[T]](s.slots)
	return &Txn[T]{
		base:    s,
		overlay: ov,
		view: &Slab[T]{
			slots:  ov,
			next:   s.next,
			n:      s.n,
			logger: s.logger,
		},
		version: s.version,
	}
}

// Insert stages an insert and returns the key it will have after Commit.
// It panics with ErrTxDone once the transaction is finished.
func (t *Txn[T]) Insert(v T) int {
	if t.done {
		panic(ErrTxDone)
	}
	return t.view.Insert(v)
}

// Remove stages a remove.
func (t *Txn[T]) Remove(key int) (T, error) {
	if t.done {
		var zero T
		return zero, ErrTxDone
	}
	return t.view.Remove(key)
}

// Get returns the value under key as seen by the transaction.
func (t *Txn[T]) Get(key int) (T, bool) { return t.view.Get(key) }

// GetMut returns a handle whose first Set stages a replacement.
func (t *Txn[T]) GetMut(key int) (list.ItemMut[T], bool) { return t.view.GetMut(key) }

// Contains reports whether key is live in the transaction's view.
func (t *Txn[T]) Contains(key int) bool { return t.view.Contains(key) }

// Len returns the number of occupied slots in the transaction's view.
func (t *Txn[T]) Len() int { return t.view.Len() }

// Cap returns the slot sequence length in the transaction's view.
func (t *Txn[T]) Cap() int { return t.view.Cap() }

// VacantKey returns the key the next Insert will return.
func (t *Txn[T]) VacantKey() int { return t.view.VacantKey() }

// All yields the transaction's (key, value) pairs in ascending key order.
func (t *Txn[T]) All() iter.Seq2[int, T] { return t.view.All() }

// Validate checks the invariants of the transaction's view.
func (t *Txn[T]) Validate() error { return t.view.Validate() }

// Staged returns the number of replaced and appended slots.
func (t *Txn[T]) Staged() (replaced, pushed int) {
	p := t.overlay.Patch()
	return p.NumReplaced(), p.NumPushed()
}

// Commit applies the staged slots to the slab and adopts the transaction's
// free list and count.
func (t *Txn[T]) Commit() error {
	if t.done {
		return ErrTxDone
	}
	replaced, pushed := t.Staged()

	if t.base.version != t.version {
		err := fmt.Errorf("%w: version %d, began at %d", ErrConflict, t.base.version, t.version)
		t.base.logger.LogCommit(replaced, pushed, err)
		return err
	}

	if err := t.overlay.Apply(t.base.slots); err != nil {
		err = fmt.Errorf("slab: commit: %w", err)
		t.base.logger.LogCommit(replaced, pushed, err)
		return err
	}

	t.base.next = t.view.next
	t.base.n = t.view.n
	t.base.version++
	t.done = true
	t.base.logger.LogCommit(replaced, pushed, nil)
	return nil
}

// Discard drops the staged changes.
func (t *Txn[T]) Discard() {
	if t.done {
		return
	}
	replaced, pushed := t.Staged()
	t.done = true
	t.base.logger.LogDiscard(replaced, pushed)
}
