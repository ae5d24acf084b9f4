// Package testutil provides testing utilities for slab.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG, random operation scripts, and plain-slice
// reference models that the slab and the transactional overlay are
// checked against.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.SlabOps(1000, 0.4) // 40% removes
//
// # Reference Models
//
//	m := testutil.NewSlabModel[int]()
//	key := m.Insert(10)
//
//	lm := testutil.NewListModel(4, 5)
//	lm.Replace(0, 8)
//	lm.Push(2)
package testutil
