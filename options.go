package murmur3

type options struct {
	seed uint32
}

// Option configures a streaming wrapper at construction time.
type Option func(*options)

// WithSeed sets the initial accumulator seed. The zero seed is the
// default and matches the unseeded Sum functions.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
