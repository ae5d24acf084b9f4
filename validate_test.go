package slab

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corruptible() *Slab[int] {
	s := New[int]()
	for i := 0; i < 5; i++ {
		s.Insert(i)
	}
	_, _ = s.Remove(1)
	_, _ = s.Remove(3)
	return s
}

func setSlot(s *Slab[int], key int, slot Slot[int]) {
	m, _ := s.slots.GetMut(key)
	m.Set(slot)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(s *Slab[int])
		msg     string
	}{
		{
			name:    "count too large",
			corrupt: func(s *Slab[int]) { s.n = 99 },
			msg:     "outside",
		},
		{
			name:    "count mismatch",
			corrupt: func(s *Slab[int]) { s.n = 2 },
			msg:     "slots are occupied",
		},
		{
			name:    "head out of range",
			corrupt: func(s *Slab[int]) { s.next = 42 },
			msg:     "points at 42",
		},
		{
			name:    "cycle",
			corrupt: func(s *Slab[int]) { setSlot(s, 1, Vacant[int](3)) },
			msg:     "cycles at 3",
		},
		{
			name: "reaches occupied",
			corrupt: func(s *Slab[int]) {
				setSlot(s, 3, Vacant[int](0))
				setSlot(s, 1, Vacant[int](FreeListEnd))
			},
			msg: "occupied slot 0",
		},
		{
			name:    "unreachable vacant slot",
			corrupt: func(s *Slab[int]) { setSlot(s, 3, Vacant[int](FreeListEnd)) },
			msg:     "reaches 1 of 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := corruptible()
			require.NoError(t, s.Validate())

			tt.corrupt(s)
			err := s.Validate()
			require.ErrorIs(t, err, ErrCorrupt)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidate_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New[int](WithLogger(logger))
	s.Insert(1)
	require.NoError(t, s.Validate())
	assert.Empty(t, buf.String())

	s.n = 5
	require.Error(t, s.Validate())
	assert.Contains(t, buf.String(), "slab validation failed")
}

func TestOccupancy(t *testing.T) {
	s := corruptible()
	bm := s.Occupancy()

	assert.Equal(t, uint64(3), bm.GetCardinality())
	assert.Equal(t, []uint64{0, 2, 4}, bm.ToArray())
	assert.False(t, bm.Contains(1))
}

func TestFreeKeys_StopsOnCorruption(t *testing.T) {
	s := corruptible()
	setSlot(s, 1, Vacant[int](3))
	assert.LessOrEqual(t, len(s.FreeKeys()), s.Cap())
}
