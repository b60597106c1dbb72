package probable

import "fmt"

// ClassicFilter is a bloom filter whose k derived hash functions all address a
// single shared bit array of m bits.
//
// ClassicFilter is NOT safe for concurrent Add. Wrap it with NewLocked or
// serialize writers externally.
type ClassicFilter struct {
	bits   *BitArray
	m      uint64
	k      uint64
	params Params
	ix     indexer
	count  uint64
}

// New creates a classic bloom filter sized for n expected items at false
// positive rate f. It returns an error if n is zero or f is not in (0, 1).
func New(n uint64, f float64, opts ...Option) (*ClassicFilter, error) {
	p, err := OptimalParams(n, f)
	if err != nil {
		return nil, err
	}
	return NewWithParams(p, opts...)
}

// NewWithParams creates a classic bloom filter from explicit parameters. Only
// p.M and p.K are used for sizing.
func NewWithParams(p Params, opts ...Option) (*ClassicFilter, error) {
	if p.M == 0 || p.K == 0 {
		return nil, fmt.Errorf("%w: m=%d k=%d", ErrDegenerateParams, p.M, p.K)
	}
	if p.M > MaxBits {
		return nil, fmt.Errorf("%w: m=%d", ErrFilterTooLarge, p.M)
	}

	return &ClassicFilter{
		bits:   NewBitArray(p.M),
		m:      p.M,
		k:      p.K,
		params: p,
		ix:     newIndexer(buildOptions(opts)),
	}, nil
}

// Add adds data to the bloom filter.
func (f *ClassicFilter) Add(data []byte) {
	h1, h2 := f.ix.hashData(data, f.m)
	f.addWithHash(h1, h2)
}

// AddString adds a string to the bloom filter without allocating.
func (f *ClassicFilter) AddString(s string) {
	h1, h2 := f.ix.hashString(s, f.m)
	f.addWithHash(h1, h2)
}

func (f *ClassicFilter) addWithHash(h1, h2 uint64) {
	for i := range f.k {
		f.bits.Set(location(h1, h2, i, f.m))
	}
	f.count++
}

// Test checks if data might be in the bloom filter.
// Returns true if the data might be present (with false positive probability),
// or false if the data is definitely not present.
func (f *ClassicFilter) Test(data []byte) bool {
	h1, h2 := f.ix.hashData(data, f.m)
	return f.testWithHash(h1, h2)
}

// TestString checks if a string might be in the bloom filter without allocating.
func (f *ClassicFilter) TestString(s string) bool {
	h1, h2 := f.ix.hashString(s, f.m)
	return f.testWithHash(h1, h2)
}

func (f *ClassicFilter) testWithHash(h1, h2 uint64) bool {
	for i := range f.k {
		if !f.bits.Test(location(h1, h2, i, f.m)) {
			return false
		}
	}
	return true
}

// TestAndAdd adds data and reports whether it might have been present before.
func (f *ClassicFilter) TestAndAdd(data []byte) bool {
	h1, h2 := f.ix.hashData(data, f.m)
	present := f.testWithHash(h1, h2)
	f.addWithHash(h1, h2)
	return present
}

// Size returns m, the number of bits in the shared array.
func (f *ClassicFilter) Size() uint64 {
	return f.m
}

// Cap returns the capacity of the filter in bits.
func (f *ClassicFilter) Cap() uint64 {
	return f.m
}

// K returns the number of hash functions.
func (f *ClassicFilter) K() uint64 {
	return f.k
}

// Count returns the number of Add calls, including repeated values.
func (f *ClassicFilter) Count() uint64 {
	return f.count
}

// Params returns the parameters the filter was built with.
func (f *ClassicFilter) Params() Params {
	return f.params
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (f *ClassicFilter) EstimatedFillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items added.
func (f *ClassicFilter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count)
}
