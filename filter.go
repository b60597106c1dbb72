package probable

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned by NewFilter for an unrecognized Variant.
var ErrUnknownVariant = errors.New("probable: unknown filter variant")

// Filter is the behavior shared by every bloom filter variant.
//
// Size returns a variant-specific structural metric (total bits for
// ClassicFilter, number of partitions for PartitionedFilter). It is meant for
// diagnostics and is not comparable across variants.
type Filter interface {
	Add(data []byte)
	Test(data []byte) bool
	Size() uint64
}

// Variant selects a filter layout for NewFilter.
type Variant int

const (
	// Classic is a single bit array shared by all k hash functions.
	Classic Variant = iota
	// Partitioned gives each of the k hash functions its own bit array.
	Partitioned
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Classic:
		return "classic"
	case Partitioned:
		return "partitioned"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant parses the output of Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "classic":
		return Classic, nil
	case "partitioned":
		return Partitioned, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// NewFilter creates a filter of the given variant sized for n expected items
// at false positive rate f.
func NewFilter(v Variant, n uint64, f float64, opts ...Option) (Filter, error) {
	var (
		filter Filter
		err    error
	)
	switch v {
	case Classic:
		filter, err = New(n, f, opts...)
	case Partitioned:
		filter, err = NewPartitioned(n, f, opts...)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
	if err != nil {
		return nil, err
	}
	return filter, nil
}
