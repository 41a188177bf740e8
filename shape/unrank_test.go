package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodetree/boolrank/bignat"
	"github.com/nodetree/boolrank/shape"
	"github.com/nodetree/boolrank/tables"
)

func TestUnrank_LayerCoverage(t *testing.T) {
	const m = 6
	tb, err := tables.Build(m)
	require.NoError(t, err)

	for s := 1; s <= m; s++ {
		sw, err := tb.ShapeWeight(s)
		require.NoError(t, err)
		total, exact := sw.Uint64()
		require.True(t, exact, "shapeWeight[%d] too large for this test", s)

		signatures := map[string]struct{}{}
		var prevSig string
		blocks := 0

		for w := uint64(0); w < total; w++ {
			sh, bShape, variantOff, err := shape.Unrank(tb, s, bignat.FromUint64(w))
			require.NoError(t, err)
			assert.Equal(t, s, sh.Size())
			assert.Equal(t, bShape, sh.BinaryCount())

			wt, err := tb.W(bShape)
			require.NoError(t, err)
			wtU, _ := wt.Uint64()
			offU, _ := variantOff.Uint64()
			assert.Less(t, offU, wtU)

			sig := sh.Signature()
			signatures[sig] = struct{}{}
			if sig != prevSig {
				blocks++
				prevSig = sig
			}
		}

		shapeCount, err := tb.ShapeCount(s)
		require.NoError(t, err)
		scU, _ := shapeCount.Uint64()
		assert.EqualValues(t, scU, blocks, "layer %d: distinct shape blocks", s)
		assert.EqualValues(t, scU, len(signatures), "layer %d: distinct signatures", s)
	}
}

func TestUnrank_Size1IsLeaf(t *testing.T) {
	tb, err := tables.Build(3)
	require.NoError(t, err)

	sh, bShape, off, err := shape.Unrank(tb, 1, bignat.Zero)
	require.NoError(t, err)
	assert.Equal(t, shape.Leaf, sh.Root())
	assert.Equal(t, 0, bShape)
	assert.True(t, off.IsZero())
}

func TestUnrank_Size2IsUnary(t *testing.T) {
	tb, err := tables.Build(3)
	require.NoError(t, err)

	sh, bShape, _, err := shape.Unrank(tb, 2, bignat.Zero)
	require.NoError(t, err)
	assert.Equal(t, shape.Unary, sh.Root())
	assert.Equal(t, 0, bShape)
	assert.Equal(t, "UL", sh.Signature())
}

func TestUnrank_Size3FirstIsBinary(t *testing.T) {
	tb, err := tables.Build(3)
	require.NoError(t, err)

	sh, bShape, off, err := shape.Unrank(tb, 3, bignat.Zero)
	require.NoError(t, err)
	assert.Equal(t, shape.Binary, sh.Root())
	assert.Equal(t, 1, bShape)
	assert.True(t, off.IsZero())
	assert.Equal(t, "BLL", sh.Signature())
}

func TestUnrank_InvalidSize(t *testing.T) {
	tb, err := tables.Build(3)
	require.NoError(t, err)

	_, _, _, err = shape.Unrank(tb, 0, bignat.Zero)
	assert.ErrorIs(t, err, shape.ErrBounds)

	_, _, _, err = shape.Unrank(tb, 4, bignat.Zero)
	assert.ErrorIs(t, err, shape.ErrBounds)
}
