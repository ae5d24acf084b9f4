package codec

import "github.com/hupe1980/slab"

type decodeOptions struct {
	logger *slab.Logger
	maxKey int
}

// DecodeOption configures slab decoding.
type DecodeOption func(*decodeOptions)

// WithLogger sets the logger used for decode events.
//
// If nil is passed, slab.NoopLogger is used.
func WithLogger(l *slab.Logger) DecodeOption {
	return func(o *decodeOptions) {
		if l == nil {
			l = slab.NoopLogger()
		}
		o.logger = l
	}
}

// WithMaxKey rejects any key above n with ErrTooLarge.
// Keys control how many slots a decode allocates, so untrusted input should
// set a bound. Zero or negative means no limit.
func WithMaxKey(n int) DecodeOption {
	return func(o *decodeOptions) {
		if n < 0 {
			n = 0
		}
		o.maxKey = n
	}
}

func applyDecodeOptions(opts []DecodeOption) decodeOptions {
	o := decodeOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slab.NoopLogger()
	}
	return o
}
