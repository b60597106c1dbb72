package probable

// Option configures a filter at construction time.
type Option func(*options)

type options struct {
	hasher Hasher
	seedA  uint64
	seedB  uint64
}

func defaultOptions() options {
	return options{
		hasher: XXH3,
		seedA:  DefaultSeedA,
		seedB:  DefaultSeedB,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeeds sets the seeds of the two base hashes. Equal seeds would make
// h1 == h2, so they are ignored and the defaults kept.
func WithSeeds(seedA, seedB uint64) Option {
	return func(o *options) {
		if seedA == seedB {
			return
		}
		o.seedA = seedA
		o.seedB = seedB
	}
}

// WithHasher selects the seeded 64-bit hash function. A nil hasher is ignored.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}
