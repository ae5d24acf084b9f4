package slab

type options struct {
	capacity int
	logger   *Logger
}

// Option configures slab and builder construction.
type Option func(*options)

// WithCapacity pre-sizes the slot sequence for n slots.
// Negative values are treated as zero.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithLogger sets the logger used for lifecycle events.
//
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
