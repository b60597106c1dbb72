package probable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassicFilterAccessors(t *testing.T) {
	f, err := New(1000, 0.01)
	require.NoError(t, err)

	require.Equal(t, uint64(9586), f.Cap())
	require.Equal(t, f.Cap(), f.Size())
	require.Equal(t, uint64(7), f.K())
	require.Equal(t, uint64(1000), f.Params().N)
	require.Zero(t, f.Count())
	require.Zero(t, f.EstimatedFillRatio())
	require.Zero(t, f.EstimatedFalsePositiveRate())
}

func TestClassicFilterStrings(t *testing.T) {
	f, err := New(1000, 0.01)
	require.NoError(t, err)

	f.AddString("foo")
	f.Add([]byte("bar"))

	require.True(t, f.TestString("foo"))
	require.True(t, f.Test([]byte("foo")))
	require.True(t, f.TestString("bar"))
}

func TestClassicFilterTestAndAdd(t *testing.T) {
	f, err := New(1000, 0.01)
	require.NoError(t, err)

	// First add should return false (not present before)
	require.False(t, f.TestAndAdd([]byte("test")))
	// Second add should return true (was present)
	require.True(t, f.TestAndAdd([]byte("test")))
	require.Equal(t, uint64(2), f.Count())
}

func TestClassicFilterFillRatio(t *testing.T) {
	f, err := New(1000, 0.01)
	require.NoError(t, err)

	f.Add([]byte("one"))
	ratio := f.EstimatedFillRatio()
	require.Greater(t, ratio, 0.0)
	// One item sets at most k bits.
	require.LessOrEqual(t, ratio, float64(f.K())/float64(f.Cap()))

	for i := range 1000 {
		f.Add(fmt.Appendf(nil, "item-%d", i))
	}
	// An optimally loaded filter is about half full.
	require.InDelta(t, 0.5, f.EstimatedFillRatio(), 0.05)
	require.InDelta(t, 0.01, f.EstimatedFalsePositiveRate(), 0.003)
}

func TestNewWithParams(t *testing.T) {
	f, err := NewWithParams(Params{M: 64, K: 3})
	require.NoError(t, err)
	require.Equal(t, uint64(64), f.Cap())
	require.Equal(t, uint64(3), f.K())

	_, err = NewWithParams(Params{M: 0, K: 3})
	require.ErrorIs(t, err, ErrDegenerateParams)

	_, err = NewWithParams(Params{M: 64, K: 0})
	require.ErrorIs(t, err, ErrDegenerateParams)

	_, err = NewWithParams(Params{M: MaxBits + 1, K: 3})
	require.ErrorIs(t, err, ErrFilterTooLarge)
}
