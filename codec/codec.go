package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/hupe1980/slab/internal/conv"
)

// ValueCodec encodes and decodes single values of type T.
// Implementations must be safe for concurrent use.
type ValueCodec[T any] interface {
	// Append encodes v and appends it to dst.
	Append(dst []byte, v T) ([]byte, error)
	// Decode decodes one value from the front of src and reports how many
	// bytes it consumed.
	Decode(src []byte) (T, int, error)
	// MinSize is the smallest number of bytes any encoded value occupies.
	MinSize() int
}

// Uint64 encodes uint64 as 8 little-endian bytes.
type Uint64 struct{}

func (Uint64) Append(dst []byte, v uint64) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(dst, v), nil
}

func (Uint64) Decode(src []byte) (uint64, int, error) {
	if len(src) < 8 {
		return 0, 0, fmt.Errorf("%w: need 8 bytes for uint64, have %d", ErrShort, len(src))
	}
	return binary.LittleEndian.Uint64(src), 8, nil
}

func (Uint64) MinSize() int { return 8 }

// Int64 encodes int64 as 8 little-endian bytes (two's complement).
type Int64 struct{}

func (Int64) Append(dst []byte, v int64) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(dst, uint64(v)), nil
}

func (Int64) Decode(src []byte) (int64, int, error) {
	u, n, err := Uint64{}.Decode(src)
	return int64(u), n, err
}

func (Int64) MinSize() int { return 8 }

// Int encodes int as Int64.
type Int struct{}

func (Int) Append(dst []byte, v int) ([]byte, error) {
	return Int64{}.Append(dst, int64(v))
}

func (Int) Decode(src []byte) (int, int, error) {
	v, n, err := Int64{}.Decode(src)
	if err != nil {
		return 0, 0, err
	}
	if v < math.MinInt || v > math.MaxInt {
		return 0, 0, fmt.Errorf("%w: %d does not fit int", ErrMalformed, v)
	}
	return int(v), n, nil
}

func (Int) MinSize() int { return 8 }

// Uint32 encodes uint32 as 4 little-endian bytes.
type Uint32 struct{}

func (Uint32) Append(dst []byte, v uint32) ([]byte, error) {
	return binary.LittleEndian.AppendUint32(dst, v), nil
}

func (Uint32) Decode(src []byte) (uint32, int, error) {
	if len(src) < 4 {
		return 0, 0, fmt.Errorf("%w: need 4 bytes for uint32, have %d", ErrShort, len(src))
	}
	return binary.LittleEndian.Uint32(src), 4, nil
}

func (Uint32) MinSize() int { return 4 }

// Float64 encodes float64 as its IEEE 754 bits.
type Float64 struct{}

func (Float64) Append(dst []byte, v float64) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(v)), nil
}

func (Float64) Decode(src []byte) (float64, int, error) {
	u, n, err := Uint64{}.Decode(src)
	return math.Float64frombits(u), n, err
}

func (Float64) MinSize() int { return 8 }

// Bool encodes bool as a single 0 or 1 byte.
type Bool struct{}

func (Bool) Append(dst []byte, v bool) ([]byte, error) {
	if v {
		return append(dst, 1), nil
	}
	return append(dst, 0), nil
}

func (Bool) Decode(src []byte) (bool, int, error) {
	if len(src) < 1 {
		return false, 0, fmt.Errorf("%w: need 1 byte for bool", ErrShort)
	}
	switch src[0] {
	case 0:
		return false, 1, nil
	case 1:
		return true, 1, nil
	default:
		return false, 0, fmt.Errorf("%w: invalid bool byte %#x", ErrMalformed, src[0])
	}
}

func (Bool) MinSize() int { return 1 }

// Bytes encodes []byte as a u64 length followed by the raw bytes.
// Decoded slices are copies.
type Bytes struct{}

func (Bytes) Append(dst []byte, v []byte) ([]byte, error) {
	dst = binary.LittleEndian.AppendUint64(dst, uint64(len(v)))
	return append(dst, v...), nil
}

func (Bytes) Decode(src []byte) ([]byte, int, error) {
	body, n, err := decodeLengthPrefixed(src)
	if err != nil {
		return nil, 0, err
	}
	out := make([]byte, len(body))
	copy(out, body)
	return out, n, nil
}

func (Bytes) MinSize() int { return 8 }

// String encodes string as a u64 length followed by UTF-8 bytes.
type String struct{}

func (String) Append(dst []byte, v string) ([]byte, error) {
	if !utf8.ValidString(v) {
		return nil, fmt.Errorf("%w: string is not valid UTF-8", ErrMalformed)
	}
	dst = binary.LittleEndian.AppendUint64(dst, uint64(len(v)))
	return append(dst, v...), nil
}

func (String) Decode(src []byte) (string, int, error) {
	body, n, err := decodeLengthPrefixed(src)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(body) {
		return "", 0, fmt.Errorf("%w: string is not valid UTF-8", ErrMalformed)
	}
	return string(body), n, nil
}

func (String) MinSize() int { return 8 }

func decodeLengthPrefixed(src []byte) ([]byte, int, error) {
	length, _, err := Uint64{}.Decode(src)
	if err != nil {
		return nil, 0, err
	}
	if !conv.FitsBudget(length, 1, len(src)-8) {
		return nil, 0, fmt.Errorf("%w: length %d, %d bytes left", ErrShort, length, len(src)-8)
	}
	end := 8 + int(length)
	return src[8:end], end, nil
}
