package testutil

import (
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
// It is not safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	return r.rand.Perm(n)
}

// OpKind is the kind of a scripted slab operation.
type OpKind uint8

const (
	// OpInsert inserts Value.
	OpInsert OpKind = iota
	// OpRemove removes the live key at position Pick modulo the number of live keys.
	OpRemove
)

// Op is one scripted slab operation.
type Op struct {
	Kind  OpKind
	Value int
	Pick  int
}

// SlabOps generates n operations. removeRatio is the share of removes in [0,1].
// Removes issued while nothing is live are executed as inserts by the caller's model.
func (r *RNG) SlabOps(n int, removeRatio float64) []Op {
	ops := make([]Op, n)
	for i := range ops {
		if r.rand.Float64() < removeRatio {
			ops[i] = Op{Kind: OpRemove, Pick: r.rand.Int()}
		} else {
			ops[i] = Op{Kind: OpInsert, Value: r.rand.Intn(1 << 20)}
		}
	}
	return ops
}

// Ints returns n pseudo-random ints in [0,maxVal).
func (r *RNG) Ints(n, maxVal int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}
