package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip[T any](t *testing.T, vc ValueCodec[T], v T) {
	t.Helper()

	buf, err := vc.Append([]byte{0xAA}, v)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), buf[0], "Append must not touch existing bytes")
	assert.GreaterOrEqual(t, len(buf)-1, vc.MinSize())

	got, n, err := vc.Decode(append(buf[1:], 0xFF))
	require.NoError(t, err)
	assert.Equal(t, len(buf)-1, n)
	assert.Equal(t, v, got)
}

func TestValueCodecs_RoundTrip(t *testing.T) {
	t.Run("uint64", func(t *testing.T) {
		for _, v := range []uint64{0, 1, math.MaxUint64} {
			roundTrip[uint64](t, Uint64{}, v)
		}
	})
	t.Run("int64", func(t *testing.T) {
		for _, v := range []int64{0, -1, math.MinInt64, math.MaxInt64} {
			roundTrip[int64](t, Int64{}, v)
		}
	})
	t.Run("int", func(t *testing.T) {
		for _, v := range []int{0, -42, math.MaxInt} {
			roundTrip[int](t, Int{}, v)
		}
	})
	t.Run("uint32", func(t *testing.T) {
		for _, v := range []uint32{0, 7, math.MaxUint32} {
			roundTrip[uint32](t, Uint32{}, v)
		}
	})
	t.Run("float64", func(t *testing.T) {
		for _, v := range []float64{0, -1.5, math.Inf(1), math.SmallestNonzeroFloat64} {
			roundTrip[float64](t, Float64{}, v)
		}
	})
	t.Run("bool", func(t *testing.T) {
		roundTrip[bool](t, Bool{}, true)
		roundTrip[bool](t, Bool{}, false)
	})
	t.Run("string", func(t *testing.T) {
		for _, v := range []string{"", "slab", "héllo, 世界"} {
			roundTrip[string](t, String{}, v)
		}
	})
	t.Run("bytes", func(t *testing.T) {
		roundTrip[[]byte](t, Bytes{}, []byte{1, 2, 3})
		roundTrip[[]byte](t, Bytes{}, []byte{})
	})
}

func TestValueCodecs_Layout(t *testing.T) {
	buf, err := Uint32{}.Append(nil, 0x01020304)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 3, 2, 1}, buf)

	buf, err = String{}.Append(nil, "ab")
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 0, 0, 0, 0, 0, 0, 'a', 'b'}, buf)
}

func TestValueCodecs_Errors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{"uint64 short", func() error { _, _, err := Uint64{}.Decode([]byte{1, 2, 3}); return err }, ErrShort},
		{"uint32 short", func() error { _, _, err := Uint32{}.Decode([]byte{1}); return err }, ErrShort},
		{"float64 short", func() error { _, _, err := Float64{}.Decode(nil); return err }, ErrShort},
		{"bool short", func() error { _, _, err := Bool{}.Decode(nil); return err }, ErrShort},
		{"bool invalid", func() error { _, _, err := Bool{}.Decode([]byte{2}); return err }, ErrMalformed},
		{"string length short", func() error { _, _, err := String{}.Decode([]byte{1, 0}); return err }, ErrShort},
		{"string body short", func() error {
			_, _, err := String{}.Decode([]byte{5, 0, 0, 0, 0, 0, 0, 0, 'a'})
			return err
		}, ErrShort},
		{"string huge length", func() error {
			_, _, err := String{}.Decode([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 'a'})
			return err
		}, ErrShort},
		{"string invalid utf8 decode", func() error {
			_, _, err := String{}.Decode([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0xFF})
			return err
		}, ErrMalformed},
		{"string invalid utf8 append", func() error { _, err := String{}.Append(nil, "\xff"); return err }, ErrMalformed},
		{"bytes short", func() error { _, _, err := Bytes{}.Decode([]byte{3, 0, 0, 0, 0, 0, 0, 0}); return err }, ErrShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), tt.want)
		})
	}
}

func TestBytes_DecodeCopies(t *testing.T) {
	buf, err := Bytes{}.Append(nil, []byte("abc"))
	require.NoError(t, err)

	got, _, err := Bytes{}.Decode(buf)
	require.NoError(t, err)
	buf[8] = 'z'
	assert.Equal(t, []byte("abc"), got)
}

type record struct {
	Name string            `json:"name"`
	Tags []string          `json:"tags"`
	Meta map[string]string `json:"meta,omitempty"`
}

func TestJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		roundTrip[record](t, JSON[record]{}, record{Name: "a", Tags: []string{"x", "y"}, Meta: map[string]string{"k": "v"}})
		roundTrip[int](t, JSON[int]{}, 7)
	})

	t.Run("min size", func(t *testing.T) {
		buf, err := JSON[int]{}.Append(nil, 0)
		require.NoError(t, err)
		assert.Len(t, buf, JSON[int]{}.MinSize())
	})

	t.Run("invalid document", func(t *testing.T) {
		buf := []byte{3, 0, 0, 0, 0, 0, 0, 0, '{', 'x', '"'}
		_, _, err := JSON[record]{}.Decode(buf)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("unsupported value", func(t *testing.T) {
		_, err := JSON[chan int]{}.Append(nil, make(chan int))
		assert.ErrorIs(t, err, ErrMalformed)
	})
}
