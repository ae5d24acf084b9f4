package conv

import (
	"fmt"
	"math"
)

// KeyToUint64 converts a slab key to its wire form.
func KeyToUint64(key int) (uint64, error) {
	if key < 0 {
		return 0, fmt.Errorf("integer overflow: key %d cannot be converted to uint64 (negative)", key)
	}
	return uint64(key), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// FitsBudget reports whether count items of itemSize bytes each fit into
// budget bytes. It never overflows.
func FitsBudget(count uint64, itemSize, budget int) bool {
	if budget < 0 {
		return false
	}
	if itemSize <= 0 {
		return true
	}
	return count <= uint64(budget)/uint64(itemSize)
}
