package codec

import (
	"encoding/binary"
	"fmt"

	gojson "github.com/goccy/go-json"
)

// JSON encodes values of any JSON-serializable type as a u64 length followed
// by the github.com/goccy/go-json encoding of the value.
type JSON[T any] struct{}

func (JSON[T]) Append(dst []byte, v T) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	dst = binary.LittleEndian.AppendUint64(dst, uint64(len(b)))
	return append(dst, b...), nil
}

func (JSON[T]) Decode(src []byte) (T, int, error) {
	var v T
	body, n, err := decodeLengthPrefixed(src)
	if err != nil {
		return v, 0, err
	}
	if err := gojson.Unmarshal(body, &v); err != nil {
		return v, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, n, nil
}

// MinSize is the length prefix plus the shortest JSON document.
func (JSON[T]) MinSize() int { return 9 }
