package slab

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a key is negative or beyond the slot sequence.
	ErrOutOfBounds = errors.New("slab: key out of bounds")

	// ErrAlreadyVacant is returned when removing a key whose slot is already free.
	ErrAlreadyVacant = errors.New("slab: slot already vacant")

	// ErrVacant is returned when a value is requested from a free slot.
	ErrVacant = errors.New("slab: slot is vacant")

	// ErrNotAddressable is returned by GetPtr when the storage hands out
	// handles that are not backed by addressable memory.
	ErrNotAddressable = errors.New("slab: storage items are not addressable")

	// ErrConflict is returned by Txn.Commit when the slab changed after Begin.
	ErrConflict = errors.New("slab: slab changed since transaction began")

	// ErrTxDone is returned when a committed or discarded transaction is used.
	ErrTxDone = errors.New("slab: transaction already finished")

	// ErrCorrupt is returned by Validate when an invariant does not hold.
	ErrCorrupt = errors.New("slab: corrupt")
)

// KeyError records a failed keyed operation.
//
// The sentinel cause can be matched with errors.Is.
type KeyError struct {
	Op  string
	Key int
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s key %d: %v", e.Op, e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}
