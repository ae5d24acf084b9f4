// Package slab provides a key-stable arena with pluggable slot storage.
//
// A Slab hands out integer keys for inserted values. A key stays valid until it
// is removed, and freed keys are reused most-recently-freed first in O(1).
//
// # Quick Start
//
//	s := slab.New[string]()
//	a := s.Insert("a")      // 0
//	b := s.Insert("b")      // 1
//	_, _ = s.Remove(a)
//	c := s.Insert("c")      // 0 again
//
//	for key, v := range s.All() {
//	    fmt.Println(key, v)
//	}
//
// # Storage
//
// Slots live in a list.List produced by a list.Storage chosen at construction
// time. The slab only relies on the List contract and discovers optional
// capabilities (bulk clear, contiguous slices, addressable items) at runtime:
//
//	s := slab.NewWithStorage[int](list.SegmentedStorage[slab.Slot[int]]{})
//
// # Free List
//
// Vacant slots form a singly-linked list threaded through the slots
// themselves. The last vacant slot points at FreeListEnd.
//
// # Transactions
//
// Begin returns a Txn that stages inserts, removes and writes in an overlay
// (package list/tx) without touching the slab. Commit applies the staged patch,
// Discard drops it.
//
//	txn := s.Begin()
//	txn.Insert("speculative")
//	if ok {
//	    _ = txn.Commit()
//	} else {
//	    txn.Discard()
//	}
//
// # Encoding
//
// Package codec encodes a slab as a length-prefixed stream of (key, value)
// pairs and rebuilds it through a Builder.
package slab
