// Package probable provides classic and partitioned bloom filters for Go.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Sizing
//
// Filters are sized from the expected number of items n and the target false
// positive rate f:
//
//	m = ceil(-n * ln(f) / ln(2)²)     bits
//	k = max(1, round(m/n * ln(2)))    hash functions
//
// [CalculateM], [CalculateK] and [OptimalParams] expose this math directly.
// n = 0 or f outside (0, 1) is rejected with an error instead of producing a
// filter that always or never reports membership.
//
// # Hashing
//
// Instead of computing k independent hash functions, each key is hashed twice
// with a seeded 64-bit hash (xxh3 by default, see [WithHasher] and
// [WithSeeds]) and the i-th bit position is derived as
//
//	index_i = (h1 + i*h2) mod size
//
// This is the Kirsch–Mitzenmacher double hashing scheme: two hash
// evaluations per operation regardless of k, at a negligible cost in false
// positive rate.
//
// # Implementations
//
// [ClassicFilter] keeps a single array of m bits addressed by all k derived
// hash functions.
//
// [PartitionedFilter] splits the bits into k partitions of floor(m/k) bits.
// Derived hash function i only addresses partition i, so every Add sets
// exactly one bit per partition and partitions can be inspected on their own
// with [PartitionedFilter.TestPartition].
//
// Both satisfy [Filter]; use [NewFilter] with a [Variant] to choose at runtime:
//
//	f, err := probable.NewFilter(probable.Partitioned, 1_000_000, 0.01)
//	if err != nil {
//		return err
//	}
//	f.Add([]byte("hello"))
//	f.Test([]byte("hello")) // true
//
// # Thread Safety
//
// Filters are NOT thread-safe. Concurrent Test calls are safe as long as no
// Add is running. Wrap a filter with [NewLocked] to share it between
// goroutines, or serialize writers externally.
//
// # References
//
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
//   - Partitioned bloom filters: https://gsd.di.uminho.pt/members/cbm/ps/dbloom.pdf
package probable
