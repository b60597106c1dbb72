package probable

import (
	"errors"
	"fmt"
)

// ErrPartitionIndex is returned when a partition index is not in [0, k).
var ErrPartitionIndex = errors.New("probable: partition index out of range")

// PartitionedFilter is a bloom filter split into k independent bit arrays of
// floor(m/k) bits each. The i-th derived hash function only ever reads or
// writes partition i, so each Add sets exactly one bit per partition.
//
// PartitionedFilter is NOT safe for concurrent Add. Wrap it with NewLocked or
// serialize writers externally.
type PartitionedFilter struct {
	k             uint64
	partitionSize uint64
	partitions    []*BitArray
	params        Params
	ix            indexer
	count         uint64
}

// NewPartitioned creates a partitioned bloom filter sized for n expected items
// at false positive rate f. It returns an error if n is zero, f is not in
// (0, 1), or the derived partition size would be zero.
func NewPartitioned(n uint64, f float64, opts ...Option) (*PartitionedFilter, error) {
	p, err := OptimalParams(n, f)
	if err != nil {
		return nil, err
	}
	return NewPartitionedWithParams(p, opts...)
}

// NewPartitionedWithParams creates a partitioned bloom filter from explicit
// parameters. Only p.M and p.K are used for sizing.
func NewPartitionedWithParams(p Params, opts ...Option) (*PartitionedFilter, error) {
	if p.M == 0 || p.K == 0 {
		return nil, fmt.Errorf("%w: m=%d k=%d", ErrDegenerateParams, p.M, p.K)
	}
	if p.M > MaxBits {
		return nil, fmt.Errorf("%w: m=%d", ErrFilterTooLarge, p.M)
	}
	partitionSize := p.PartitionSize()
	if partitionSize == 0 {
		return nil, fmt.Errorf("%w: partition size is 0 (m=%d k=%d)", ErrDegenerateParams, p.M, p.K)
	}

	partitions := make([]*BitArray, p.K)
	for i := range partitions {
		partitions[i] = NewBitArray(partitionSize)
	}

	return &PartitionedFilter{
		k:             p.K,
		partitionSize: partitionSize,
		partitions:    partitions,
		params:        p,
		ix:            newIndexer(buildOptions(opts)),
	}, nil
}

// Add adds data to the bloom filter.
func (f *PartitionedFilter) Add(data []byte) {
	h1, h2 := f.ix.hashData(data, f.partitionSize)
	f.addWithHash(h1, h2)
}

// AddString adds a string to the bloom filter without allocating.
func (f *PartitionedFilter) AddString(s string) {
	h1, h2 := f.ix.hashString(s, f.partitionSize)
	f.addWithHash(h1, h2)
}

func (f *PartitionedFilter) addWithHash(h1, h2 uint64) {
	for i, part := range f.partitions {
		part.Set(location(h1, h2, uint64(i), f.partitionSize))
	}
	f.count++
}

// Test checks if data might be in the bloom filter.
// Returns true if the data might be present (with false positive probability),
// or false if the data is definitely not present.
func (f *PartitionedFilter) Test(data []byte) bool {
	h1, h2 := f.ix.hashData(data, f.partitionSize)
	return f.testWithHash(h1, h2)
}

// TestString checks if a string might be in the bloom filter without allocating.
func (f *PartitionedFilter) TestString(s string) bool {
	h1, h2 := f.ix.hashString(s, f.partitionSize)
	return f.testWithHash(h1, h2)
}

func (f *PartitionedFilter) testWithHash(h1, h2 uint64) bool {
	for i, part := range f.partitions {
		if !part.Test(location(h1, h2, uint64(i), f.partitionSize)) {
			return false
		}
	}
	return true
}

// TestAndAdd adds data and reports whether it might have been present before.
func (f *PartitionedFilter) TestAndAdd(data []byte) bool {
	h1, h2 := f.ix.hashData(data, f.partitionSize)
	present := f.testWithHash(h1, h2)
	f.addWithHash(h1, h2)
	return present
}

// TestPartition reports whether the bit that hash function i derives for data
// is set in partition i. It only reads partition i.
func (f *PartitionedFilter) TestPartition(i uint64, data []byte) (bool, error) {
	if i >= f.k {
		return false, fmt.Errorf("%w: %d (k=%d)", ErrPartitionIndex, i, f.k)
	}
	h1, h2 := f.ix.hashData(data, f.partitionSize)
	return f.partitions[i].Test(location(h1, h2, i, f.partitionSize)), nil
}

// PartitionFillRatio returns the proportion of set bits in partition i.
func (f *PartitionedFilter) PartitionFillRatio(i uint64) (float64, error) {
	if i >= f.k {
		return 0, fmt.Errorf("%w: %d (k=%d)", ErrPartitionIndex, i, f.k)
	}
	return float64(f.partitions[i].Count()) / float64(f.partitionSize), nil
}

// Size returns k, the number of partitions. It is a diagnostic and does not
// reflect memory use; see Cap.
func (f *PartitionedFilter) Size() uint64 {
	return uint64(len(f.partitions))
}

// Cap returns the capacity of the filter in bits, k * floor(m/k).
func (f *PartitionedFilter) Cap() uint64 {
	return f.k * f.partitionSize
}

// K returns the number of hash functions (partitions).
func (f *PartitionedFilter) K() uint64 {
	return f.k
}

// PartitionSize returns the number of bits in each partition.
func (f *PartitionedFilter) PartitionSize() uint64 {
	return f.partitionSize
}

// Count returns the number of Add calls, including repeated values.
func (f *PartitionedFilter) Count() uint64 {
	return f.count
}

// Params returns the parameters the filter was built with.
func (f *PartitionedFilter) Params() Params {
	return f.params
}

// EstimatedFillRatio returns the proportion of bits set across all partitions.
func (f *PartitionedFilter) EstimatedFillRatio() float64 {
	var setBits uint64
	for _, part := range f.partitions {
		setBits += part.Count()
	}
	return float64(setBits) / float64(f.Cap())
}

// EstimatedFalsePositiveRate estimates the current false positive rate based
// on the number of items added. Each partition receives one bit per item, so
// the rate is (1 - e^(-n/partitionSize))^k.
func (f *PartitionedFilter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.Cap(), f.k, f.count)
}
