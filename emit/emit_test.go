package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodetree/boolrank/bignat"
	"github.com/nodetree/boolrank/emit"
	"github.com/nodetree/boolrank/rgs"
	"github.com/nodetree/boolrank/shape"
	"github.com/nodetree/boolrank/tables"
)

func TestVarName(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, emit.VarName(tc.id))
	}
}

func TestEmit_Leaf(t *testing.T) {
	tb, err := tables.Build(3)
	require.NoError(t, err)

	sh, _, _, err := shape.Unrank(tb, 1, bignat.Zero)
	require.NoError(t, err)

	out, err := emit.Emit(sh, nil, rgs.RGS{0})
	require.NoError(t, err)
	assert.Equal(t, "A", out)
}

func TestEmit_Size3Variants(t *testing.T) {
	tb, err := tables.Build(3)
	require.NoError(t, err)

	sh, bShape, _, err := shape.Unrank(tb, 3, bignat.Zero)
	require.NoError(t, err)
	require.Equal(t, 1, bShape)

	want := []string{
		"AND(A,A)", "AND(A,B)",
		"OR(A,A)", "OR(A,B)",
		"XOR(A,A)", "XOR(A,B)",
	}
	i := 0
	for op := 0; op < 3; op++ {
		for _, label := range []rgs.RGS{{0, 0}, {0, 1}} {
			out, err := emit.Emit(sh, []int{op}, label)
			require.NoError(t, err)
			assert.Equal(t, want[i], out)
			i++
		}
	}
}

func TestEmit_MismatchedCounts(t *testing.T) {
	tb, err := tables.Build(3)
	require.NoError(t, err)

	sh, _, _, err := shape.Unrank(tb, 3, bignat.Zero)
	require.NoError(t, err)

	_, err = emit.Emit(sh, []int{0, 1}, rgs.RGS{0, 0})
	assert.ErrorIs(t, err, emit.ErrOperator)
}
