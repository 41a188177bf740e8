package rgs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodetree/boolrank/bignat"
	"github.com/nodetree/boolrank/rgs"
	"github.com/nodetree/boolrank/tables"
)

func isValidRGS(r rgs.RGS) bool {
	if len(r) == 0 {
		return true
	}
	if r[0] != 0 {
		return false
	}
	maxSeen := 0
	for i := 1; i < len(r); i++ {
		if r[i] > maxSeen+1 {
			return false
		}
		if r[i] > maxSeen {
			maxSeen = r[i]
		}
	}

	return true
}

func TestUnrank_EmptyLength(t *testing.T) {
	tb, err := tables.Build(5)
	require.NoError(t, err)

	r, err := rgs.Unrank(tb, 0, bignat.Zero)
	require.NoError(t, err)
	assert.Empty(t, r)
}

func TestUnrank_Bijection(t *testing.T) {
	tb, err := tables.Build(6)
	require.NoError(t, err)

	for length := 1; length <= 5; length++ {
		bell, err := tb.Bell(length)
		require.NoError(t, err)
		n, exact := bell.Uint64()
		require.True(t, exact)

		seen := map[string]struct{}{}
		for k := uint64(0); k < n; k++ {
			r, err := rgs.Unrank(tb, length, bignat.FromUint64(k))
			require.NoError(t, err)
			assert.True(t, isValidRGS(r), "length=%d k=%d rgs=%v", length, k, r)
			seen[fmt.Sprint(r)] = struct{}{}
		}
		assert.EqualValues(t, n, len(seen), "length %d: distinct RGS count", length)
	}
}

func TestUnrank_Boundaries(t *testing.T) {
	tb, err := tables.Build(6)
	require.NoError(t, err)

	const length = 5
	zero, err := rgs.Unrank(tb, length, bignat.Zero)
	require.NoError(t, err)
	assert.Equal(t, rgs.RGS{0, 0, 0, 0, 0}, zero)

	bell, err := tb.Bell(length)
	require.NoError(t, err)
	last, err := bell.Sub(bignat.One)
	require.NoError(t, err)

	top, err := rgs.Unrank(tb, length, last)
	require.NoError(t, err)
	assert.Equal(t, rgs.RGS{0, 1, 2, 3, 4}, top)
}

func TestUnrank_OutOfRange(t *testing.T) {
	tb, err := tables.Build(4)
	require.NoError(t, err)

	bell, err := tb.Bell(3)
	require.NoError(t, err)

	_, err = rgs.Unrank(tb, 3, bell)
	assert.ErrorIs(t, err, rgs.ErrBounds)
}
