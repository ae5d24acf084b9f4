package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/hupe1980/slab"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm used for a frame.
type CompressionType uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD CompressionType = 2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("CompressionType(%d)", uint8(c))
	}
}

// MaxFrameSize is the largest payload a frame can describe.
const MaxFrameSize = math.MaxUint32

// Frame format: [type u8][uncompressed u32][stored u32][data...]
// A frame whose payload did not shrink is stored with type CompressionNone.
const frameHeaderSize = 9

// lz4MaxRatio bounds how far an LZ4 block can expand on decompression.
const lz4MaxRatio = 255

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxFrameSize),
	)
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Compress wraps data in a frame compressed with ct.
func Compress(data []byte, ct CompressionType) ([]byte, error) {
	if uint64(len(data)) > MaxFrameSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds frame limit", ErrTooLarge, len(data))
	}

	var (
		compressed []byte
		err        error
	)
	switch ct {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		compressed, err = compressZSTD(data)
	default:
		return nil, fmt.Errorf("%w: unknown compression type %d", ErrMalformed, ct)
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || len(compressed) >= len(data) {
		return appendFrame(nil, CompressionNone, len(data), data), nil
	}
	return appendFrame(nil, ct, len(data), compressed), nil
}

func appendFrame(dst []byte, ct CompressionType, size int, payload []byte) []byte {
	dst = append(dst, byte(ct))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(size))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(payload)))
	return append(dst, payload...)
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress returns the payload of a frame produced by Compress. The frame
// must span all of data.
func Decompress(frame []byte) ([]byte, error) {
	if len(frame) < frameHeaderSize {
		return nil, fmt.Errorf("%w: frame of %d bytes has no header", ErrShort, len(frame))
	}

	ct := CompressionType(frame[0])
	size := binary.LittleEndian.Uint32(frame[1:])
	stored := binary.LittleEndian.Uint32(frame[5:])
	payload := frame[frameHeaderSize:]

	if uint64(len(payload)) < uint64(stored) {
		return nil, fmt.Errorf("%w: frame declares %d bytes, has %d", ErrShort, stored, len(payload))
	}
	if uint64(len(payload)) > uint64(stored) {
		return nil, fmt.Errorf("%w: %d trailing bytes after frame", ErrMalformed, uint64(len(payload))-uint64(stored))
	}

	switch ct {
	case CompressionNone:
		if stored != size {
			return nil, fmt.Errorf("%w: stored frame size %d, declared %d", ErrMalformed, stored, size)
		}
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil

	case CompressionLZ4:
		if uint64(size) > uint64(stored)*lz4MaxRatio+16 {
			return nil, fmt.Errorf("%w: lz4 frame of %d bytes cannot expand to %d", ErrTooLarge, stored, size)
		}
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrMalformed, err)
		}
		if uint32(n) != size {
			return nil, fmt.Errorf("%w: decompressed %d bytes, declared %d", ErrMalformed, n, size)
		}
		return out, nil

	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)

		out, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrMalformed, err)
		}
		if uint32(len(out)) != size {
			return nil, fmt.Errorf("%w: decompressed %d bytes, declared %d", ErrMalformed, len(out), size)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: unknown compression type %d", ErrMalformed, ct)
	}
}

// MarshalCompressed encodes s and wraps it in a compressed frame.
func MarshalCompressed[T any](s *slab.Slab[T], vc ValueCodec[T], ct CompressionType) ([]byte, error) {
	data, err := MarshalSlab(s, vc)
	if err != nil {
		return nil, err
	}
	return Compress(data, ct)
}

// UnmarshalCompressed reverses MarshalCompressed.
func UnmarshalCompressed[T any](frame []byte, vc ValueCodec[T], opts ...DecodeOption) (*slab.Slab[T], error) {
	data, err := Decompress(frame)
	if err != nil {
		return nil, err
	}
	return UnmarshalSlab(data, vc, opts...)
}
