package probable

import (
	"errors"
	"fmt"
	"math"
)

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014

	// MaxBits is the largest bit-array size a filter may be built with (16 GiB).
	MaxBits = uint64(1) << 37
)

var (
	// ErrInvalidItemCount is returned when the expected number of items is zero.
	ErrInvalidItemCount = errors.New("probable: expected item count must be at least 1")

	// ErrInvalidFPRate is returned when the false positive rate is not in (0, 1).
	ErrInvalidFPRate = errors.New("probable: false positive rate must be in (0, 1)")

	// ErrDegenerateParams is returned when the derived parameters would produce
	// a filter that cannot hold any bits.
	ErrDegenerateParams = errors.New("probable: derived filter parameters are degenerate")

	// ErrFilterTooLarge is returned when the derived bit-array size exceeds MaxBits.
	ErrFilterTooLarge = errors.New("probable: derived filter size exceeds MaxBits")
)

// Params holds the inputs and derived sizing of a bloom filter.
type Params struct {
	N uint64  // expected number of items
	F float64 // target false positive rate
	M uint64  // bit-array size
	K uint64  // number of hash functions
}

// PartitionSize returns floor(M/K), the per-partition bit count used by
// PartitionedFilter.
func (p Params) PartitionSize() uint64 {
	return p.M / p.K
}

// String implements fmt.Stringer.
func (p Params) String() string {
	return fmt.Sprintf("n=%d f=%g m=%d k=%d", p.N, p.F, p.M, p.K)
}

// CalculateM returns the bit-array size minimizing the false positive rate for
// n items at rate f:
//
//	m = ceil(-n * ln(f) / ln(2)^2)
func CalculateM(f float64, n uint64) (uint64, error) {
	if n == 0 {
		return 0, ErrInvalidItemCount
	}
	if math.IsNaN(f) || f <= 0 || f >= 1 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidFPRate, f)
	}

	m := math.Ceil(-float64(n) * math.Log(f) / ln2Squared)
	if m > float64(MaxBits) {
		return 0, fmt.Errorf("%w: m=%.0f", ErrFilterTooLarge, m)
	}
	if m < 1 {
		return 0, fmt.Errorf("%w: m=0", ErrDegenerateParams)
	}
	return uint64(m), nil
}

// CalculateK returns the optimal number of hash functions for m bits and n
// items, never less than 1:
//
//	k = max(1, round((m/n) * ln(2)))
func CalculateK(m, n uint64) (uint64, error) {
	if n == 0 {
		return 0, ErrInvalidItemCount
	}
	if m == 0 {
		return 0, fmt.Errorf("%w: m=0", ErrDegenerateParams)
	}

	k := uint64(math.Round(float64(m) / float64(n) * ln2))
	return max(k, 1), nil
}

// OptimalParams derives (m, k) for n expected items at false positive rate f.
func OptimalParams(n uint64, f float64) (Params, error) {
	m, err := CalculateM(f, n)
	if err != nil {
		return Params{}, err
	}
	k, err := CalculateK(m, n)
	if err != nil {
		return Params{}, err
	}
	return Params{N: n, F: f, M: m, K: k}, nil
}

// EstimateFalsePositiveRate estimates the false positive rate for a filter of
// m bits and k hash functions after itemsAdded insertions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m, k, itemsAdded uint64) float64 {
	if m == 0 || itemsAdded == 0 {
		return 0
	}

	mf := float64(m)
	n := float64(itemsAdded)
	kf := float64(k)

	return math.Pow(1-math.Exp(-kf*n/mf), kf)
}
