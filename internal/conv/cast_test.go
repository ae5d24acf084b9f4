package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyToUint64(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := KeyToUint64(0)
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := KeyToUint64(math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := KeyToUint64(-1)
		assert.Error(t, err)
	})
}

func TestUint64ToInt(t *testing.T) {
	got, err := Uint64ToInt(123)
	assert.NoError(t, err)
	assert.Equal(t, 123, got)

	_, err = Uint64ToInt(math.MaxUint64)
	assert.Error(t, err)
}

func TestUint32Conversions(t *testing.T) {
	got, err := Uint32ToInt(math.MaxUint32)
	assert.NoError(t, err)
	assert.Equal(t, math.MaxUint32, got)

	u, err := IntToUint32(7)
	assert.NoError(t, err)
	assert.Equal(t, uint32(7), u)

	_, err = IntToUint32(-1)
	assert.Error(t, err)
	_, err = IntToUint32(math.MaxUint32 + 1)
	assert.Error(t, err)
}

func TestFitsBudget(t *testing.T) {
	tests := []struct {
		name     string
		count    uint64
		itemSize int
		budget   int
		want     bool
	}{
		{"exact", 4, 16, 64, true},
		{"one over", 5, 16, 64, false},
		{"empty", 0, 16, 0, true},
		{"zero size", math.MaxUint64, 0, 0, true},
		{"huge count", math.MaxUint64, 16, math.MaxInt, false},
		{"negative budget", 0, 16, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitsBudget(tt.count, tt.itemSize, tt.budget))
		})
	}
}
