package slab

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slab/testutil"
)

func TestTxn_CommitMatchesDirect(t *testing.T) {
	direct := New[int]()
	base := New[int]()
	for i := 0; i < 8; i++ {
		direct.Insert(i)
		base.Insert(i)
	}
	for _, k := range []int{2, 5} {
		_, _ = direct.Remove(k)
		_, _ = base.Remove(k)
	}

	txn := base.Begin()
	apply := func(s interface {
		Insert(int) int
		Remove(int) (int, error)
	}) {
		assert.Equal(t, 5, s.Insert(50))
		assert.Equal(t, 2, s.Insert(20))
		_, err := s.Remove(0)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Insert(100))
		assert.Equal(t, 8, s.Insert(80))
		_, err = s.Remove(7)
		require.NoError(t, err)
	}
	apply(direct)
	apply(txn)

	assert.Equal(t, maps.Collect(direct.All()), maps.Collect(txn.All()))
	assert.NotEqual(t, maps.Collect(direct.All()), maps.Collect(base.All()), "base untouched before commit")
	require.NoError(t, txn.Validate())

	require.NoError(t, txn.Commit())
	assert.Equal(t, maps.Collect(direct.All()), maps.Collect(base.All()))
	assert.Equal(t, direct.Len(), base.Len())
	assert.Equal(t, direct.Cap(), base.Cap())
	assert.Equal(t, direct.FreeKeys(), base.FreeKeys())
	require.NoError(t, base.Validate())
}

func TestTxn_Discard(t *testing.T) {
	s := New[string]()
	s.Insert("a")

	txn := s.Begin()
	txn.Insert("b")
	m, ok := txn.GetMut(0)
	require.True(t, ok)
	m.Set("A")

	v, _ := txn.Get(0)
	assert.Equal(t, "A", v)
	assert.True(t, txn.Contains(1))
	assert.Equal(t, 2, txn.Len())
	assert.Equal(t, 2, txn.Cap())
	assert.Equal(t, 2, txn.VacantKey())

	txn.Discard()
	v, _ = s.Get(0)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Cap())

	require.ErrorIs(t, txn.Commit(), ErrTxDone)
	_, err := txn.Remove(0)
	require.ErrorIs(t, err, ErrTxDone)
	assert.PanicsWithValue(t, ErrTxDone, func() { txn.Insert("c") })
	txn.Discard()
}

func TestTxn_ReadOnlyStagesNothing(t *testing.T) {
	s := New[int]()
	for i := 0; i < 5; i++ {
		s.Insert(i)
	}

	txn := s.Begin()
	for k := range txn.All() {
		m, ok := txn.GetMut(k)
		require.True(t, ok)
		_ = m.Get()
	}

	replaced, pushed := txn.Staged()
	assert.Zero(t, replaced)
	assert.Zero(t, pushed)
	require.NoError(t, txn.Commit())
	assert.Equal(t, 5, s.Len())
}

func TestTxn_Staged(t *testing.T) {
	s := New[int]()
	s.Insert(1)
	s.Insert(2)

	txn := s.Begin()
	m, _ := txn.GetMut(1)
	m.Set(20)
	m.Set(21)
	txn.Insert(3)

	replaced, pushed := txn.Staged()
	assert.Equal(t, 1, replaced)
	assert.Equal(t, 1, pushed)
}

func TestTxn_Conflict(t *testing.T) {
	s := New[int]()
	s.Insert(1)

	a := s.Begin()
	b := s.Begin()
	a.Insert(2)
	b.Insert(3)

	require.NoError(t, a.Commit())
	err := b.Commit()
	require.ErrorIs(t, err, ErrConflict)

	v, _ := s.Get(1)
	assert.Equal(t, 2, v)

	c := s.Begin()
	s.Insert(4)
	c.Insert(5)
	require.ErrorIs(t, c.Commit(), ErrConflict)

	d := s.Begin()
	s.Clear()
	require.ErrorIs(t, d.Commit(), ErrConflict)
}

func TestTxn_MatchesReferenceModel(t *testing.T) {
	rng := testutil.NewRNG(99)
	s := New[int]()
	model := testutil.NewSlabModel[int]()

	for round := 0; round < 20; round++ {
		txn := s.Begin()
		ops := rng.SlabOps(100, 0.4)
		commit := rng.Intn(2) == 0

		for _, op := range ops {
			if op.Kind == testutil.OpRemove && txn.Len() > 0 {
				var keys []int
				for k := range txn.All() {
					keys = append(keys, k)
				}
				key := keys[op.Pick%len(keys)]
				_, err := txn.Remove(key)
				require.NoError(t, err)
				if commit {
					model.Remove(key)
				}
				continue
			}
			key := txn.Insert(op.Value)
			if commit {
				require.Equal(t, key, model.Insert(op.Value))
			}
		}
		require.NoError(t, txn.Validate())

		if commit {
			require.NoError(t, txn.Commit())
		} else {
			txn.Discard()
		}

		var pairs []testutil.Pair[int]
		for k, v := range s.All() {
			pairs = append(pairs, testutil.Pair[int]{Key: k, Value: v})
		}
		require.Equal(t, model.Pairs(), pairs, "round %d", round)
		require.Equal(t, model.FreeKeys(), s.FreeKeys(), "round %d", round)
		require.NoError(t, s.Validate())
	}
}
