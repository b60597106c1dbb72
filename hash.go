package probable

import (
	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
)

const (
	// DefaultSeedA is the seed of the first base hash.
	DefaultSeedA uint64 = 0
	// DefaultSeedB is the seed of the second base hash.
	DefaultSeedB uint64 = 64
)

// Hasher is a seeded 64-bit non-cryptographic hash function.
type Hasher interface {
	Sum64(data []byte, seed uint64) uint64
	Sum64String(s string, seed uint64) uint64
}

// XXH3 hashes with xxh3. It is the default Hasher.
var XXH3 Hasher = xxh3Hasher{}

// Murmur3 hashes with the 64-bit murmur3 (x64_128, low half).
var Murmur3 Hasher = murmur3Hasher{}

type xxh3Hasher struct{}

func (xxh3Hasher) Sum64(data []byte, seed uint64) uint64 {
	return xxh3.HashSeed(data, seed)
}

func (xxh3Hasher) Sum64String(s string, seed uint64) uint64 {
	return xxh3.HashStringSeed(s, seed)
}

type murmur3Hasher struct{}

func (murmur3Hasher) Sum64(data []byte, seed uint64) uint64 {
	return murmur3.SeedSum64(seed, data)
}

func (murmur3Hasher) Sum64String(s string, seed uint64) uint64 {
	return murmur3.SeedStringSum64(seed, s)
}

// indexer derives k bit positions from two seeded base hashes
// (Kirsch-Mitzenmacher double hashing):
//
//	h1 = hash(data, seedA) mod size
//	h2 = hash(data, seedB) mod size
//	index_i = (h1 + i*h2) mod size
type indexer struct {
	hasher Hasher
	seedA  uint64
	seedB  uint64
}

func newIndexer(o options) indexer {
	return indexer{hasher: o.hasher, seedA: o.seedA, seedB: o.seedB}
}

// hashData returns both base hashes of data reduced modulo size.
func (ix indexer) hashData(data []byte, size uint64) (h1, h2 uint64) {
	h1 = ix.hasher.Sum64(data, ix.seedA) % size
	h2 = ix.hasher.Sum64(data, ix.seedB) % size
	return
}

// hashString is hashData for strings, without converting to []byte.
func (ix indexer) hashString(s string, size uint64) (h1, h2 uint64) {
	h1 = ix.hasher.Sum64String(s, ix.seedA) % size
	h2 = ix.hasher.Sum64String(s, ix.seedB) % size
	return
}

// location returns the i-th derived index. h1 and h2 are already < size, so
// the sum cannot overflow for any size bounded by MaxBits.
func location(h1, h2, i, size uint64) uint64 {
	return (h1 + i*h2) % size
}

// Locations returns the k indices in [0, size) that data maps to using the
// default hasher and seeds. Filters compute the same indices internally
// without allocating.
func Locations(data []byte, k, size uint64, opts ...Option) []uint64 {
	if size == 0 {
		return nil
	}
	ix := newIndexer(buildOptions(opts))
	h1, h2 := ix.hashData(data, size)
	locs := make([]uint64, k)
	for i := range k {
		locs[i] = location(h1, h2, i, size)
	}
	return locs
}
