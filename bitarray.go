package probable

import "github.com/bits-and-blooms/bitset"

// BitArray is a fixed-length array of bits, all initially false. Bits can only
// be set, never cleared, and the length never changes.
type BitArray struct {
	bits   *bitset.BitSet
	length uint64
}

// NewBitArray allocates a zeroed BitArray of length bits.
func NewBitArray(length uint64) *BitArray {
	return &BitArray{
		bits:   bitset.New(uint(length)),
		length: length,
	}
}

// Len returns the number of bits in the array.
func (b *BitArray) Len() uint64 {
	return b.length
}

// Set sets bit i to true. It panics if i >= Len().
func (b *BitArray) Set(i uint64) {
	if i >= b.length {
		panic("probable: bit index out of range")
	}
	b.bits.Set(uint(i))
}

// Test reports whether bit i is set. Out of range indices report false.
func (b *BitArray) Test(i uint64) bool {
	return b.bits.Test(uint(i))
}

// Count returns the number of set bits.
func (b *BitArray) Count() uint64 {
	return uint64(b.bits.Count())
}
