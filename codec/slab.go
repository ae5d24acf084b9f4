package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/slab"
	"github.com/hupe1980/slab/internal/conv"
)

const (
	countSize = 8
	keySize   = 8

	// writeChunkSize is the buffered size at which WriteSlab flushes.
	writeChunkSize = 64 * 1024
)

// AppendSlab appends the encoding of s to dst.
func AppendSlab[T any](dst []byte, s *slab.Slab[T], vc ValueCodec[T]) ([]byte, error) {
	dst = binary.LittleEndian.AppendUint64(dst, uint64(s.Len()))

	var err error
	for key, v := range s.All() {
		if dst, err = appendPair(dst, key, v, vc); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// MarshalSlab returns the encoding of s.
func MarshalSlab[T any](s *slab.Slab[T], vc ValueCodec[T]) ([]byte, error) {
	buf := make([]byte, 0, countSize+s.Len()*(keySize+vc.MinSize()))
	return AppendSlab(buf, s, vc)
}

// WriteSlab streams the encoding of s to w and returns the number of bytes
// written.
func WriteSlab[T any](w io.Writer, s *slab.Slab[T], vc ValueCodec[T]) (int64, error) {
	var written int64

	flush := func(buf []byte) error {
		n, err := w.Write(buf)
		written += int64(n)
		return err
	}

	buf := make([]byte, 0, writeChunkSize)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Len()))

	var err error
	for key, v := range s.All() {
		if buf, err = appendPair(buf, key, v, vc); err != nil {
			return written, err
		}
		if len(buf) >= writeChunkSize {
			if err := flush(buf); err != nil {
				return written, err
			}
			buf = buf[:0]
		}
	}

	if len(buf) > 0 {
		if err := flush(buf); err != nil {
			return written, err
		}
	}
	return written, nil
}

func appendPair[T any](dst []byte, key int, v T, vc ValueCodec[T]) ([]byte, error) {
	k, err := conv.KeyToUint64(key)
	if err != nil {
		return nil, err
	}
	dst = binary.LittleEndian.AppendUint64(dst, k)
	return vc.Append(dst, v)
}

// DecodeSlab decodes one slab from the front of data and reports how many
// bytes it consumed. Trailing bytes are left alone.
func DecodeSlab[T any](data []byte, vc ValueCodec[T], opts ...DecodeOption) (*slab.Slab[T], int, error) {
	return DecodeSlabInto(slab.NewBuilder[T](0), data, vc, opts...)
}

// DecodeSlabInto decodes one slab from the front of data through b, so the
// result uses b's storage. The builder is reset on failure.
func DecodeSlabInto[T any](b *slab.Builder[T], data []byte, vc ValueCodec[T], opts ...DecodeOption) (*slab.Slab[T], int, error) {
	o := applyDecodeOptions(opts)

	s, n, count, err := decode(b, data, vc, o)
	if err != nil {
		b.Reset()
		o.logger.LogDecode(count, err)
		return nil, 0, err
	}

	o.logger.LogDecode(count, nil)
	return s, n, nil
}

func decode[T any](b *slab.Builder[T], data []byte, vc ValueCodec[T], o decodeOptions) (*slab.Slab[T], int, int, error) {
	if len(data) < countSize {
		return nil, 0, 0, fmt.Errorf("%w: need %d bytes for count, have %d", ErrShort, countSize, len(data))
	}

	declared := binary.LittleEndian.Uint64(data)
	if !conv.FitsBudget(declared, keySize+vc.MinSize(), len(data)-countSize) {
		return nil, 0, 0, fmt.Errorf("%w: count %d does not fit %d bytes", ErrTooLarge, declared, len(data)-countSize)
	}
	count := int(declared)

	off := countSize
	for i := range count {
		if len(data)-off < keySize {
			return nil, 0, count, fmt.Errorf("%w: pair %d: need %d bytes for key, have %d", ErrShort, i, keySize, len(data)-off)
		}

		rawKey := binary.LittleEndian.Uint64(data[off:])
		key, err := conv.Uint64ToInt(rawKey)
		if err != nil {
			return nil, 0, count, fmt.Errorf("%w: pair %d: %v", ErrTooLarge, i, err)
		}
		if o.maxKey > 0 && key > o.maxKey {
			return nil, 0, count, fmt.Errorf("%w: pair %d: key %d above limit %d", ErrTooLarge, i, key, o.maxKey)
		}
		off += keySize

		v, n, err := vc.Decode(data[off:])
		if err != nil {
			return nil, 0, count, fmt.Errorf("pair %d (key %d): %w", i, key, err)
		}
		off += n

		if err := b.Pair(key, v); err != nil {
			return nil, 0, count, fmt.Errorf("%w: pair %d: %v", ErrMalformed, i, err)
		}
	}

	return b.Build(), off, count, nil
}

// UnmarshalSlab decodes a slab that must span all of data.
func UnmarshalSlab[T any](data []byte, vc ValueCodec[T], opts ...DecodeOption) (*slab.Slab[T], error) {
	s, n, err := DecodeSlab(data, vc, opts...)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(data)-n)
	}
	return s, nil
}

// ReadSlab reads at most limit bytes from r and decodes them as one slab.
// Input longer than limit fails with ErrTooLarge.
func ReadSlab[T any](r io.Reader, limit int64, vc ValueCodec[T], opts ...DecodeOption) (*slab.Slab[T], error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrMalformed, limit)
	}

	readLimit := limit
	if readLimit < math.MaxInt64 {
		readLimit++
	}

	data, err := io.ReadAll(io.LimitReader(r, readLimit))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrTooLarge, limit)
	}

	return UnmarshalSlab(data, vc, opts...)
}
