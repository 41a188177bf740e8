package tables

import "github.com/nodetree/boolrank/bignat"

// Tables holds every combinatorial count derived from a single bound M.
// All fields are indexed from 0 and are read-only after Build returns.
type Tables struct {
	// M is the maximum total expression size these tables were built for.
	M int

	// pow3[b] = 3^b, for b in [0, M].
	pow3 []bignat.Nat

	// bell[n] = Bell(n), for n in [0, M+1].
	bell []bignat.Nat

	// binom[n][k] = C(n, k), for n,k in [0, M+1]. Used only while building
	// bell; kept around because it is cheap and self-documenting.
	binom [][]bignat.Nat

	// shapeCountByB[s][b] = number of shapes of size s with exactly b
	// binary nodes, for s in [0, M], b in [0, M].
	shapeCountByB [][]bignat.Nat

	// shapeCount[s] = total number of shapes of size s, for s in [0, M].
	shapeCount []bignat.Nat

	// w[b] = Bell(b+1) * 3^b, for b in [0, M].
	w []bignat.Nat

	// shapeWeight[s] = sum_b shapeCountByB[s][b] * w[b], for s in [0, M].
	shapeWeight []bignat.Nat

	// cum[s] = sum_{i<=s} shapeWeight[i], for s in [0, M]. cum[0] == 0.
	cum []bignat.Nat

	// blockWeight[s][ls] = weight of binary-root shapes of size s whose
	// left subtree has size ls, for s in [2, M], ls in [1, s-2].
	blockWeight [][]bignat.Nat

	// rowWeightSum[s][ls][b1] = within blockWeight[s][ls], the weight
	// contributed by fixing the left subtree's binary count to b1.
	rowWeightSum [][][]bignat.Nat

	// rgs[len][k] = count of length-len restricted-growth strings whose
	// running max equals k, for len in [0, M], k in [0, M].
	rgs [][]bignat.Nat
}

// Bound returns the bound M these tables were built for.
func (t *Tables) Bound() int { return t.M }

// Pow3 returns 3^b. b must be in [0, M].
func (t *Tables) Pow3(b int) (bignat.Nat, error) {
	if b < 0 || b > t.M {
		return bignat.Nat{}, ErrBounds
	}

	return t.pow3[b], nil
}

// Bell returns the nth Bell number. n must be in [0, M+1].
func (t *Tables) Bell(n int) (bignat.Nat, error) {
	if n < 0 || n > t.M+1 {
		return bignat.Nat{}, ErrBounds
	}

	return t.bell[n], nil
}

// ShapeCountByB returns the number of size-s shapes with exactly b binary
// nodes. s must be in [0, M], b must be in [0, M].
func (t *Tables) ShapeCountByB(s, b int) (bignat.Nat, error) {
	if s < 0 || s > t.M || b < 0 || b > t.M {
		return bignat.Nat{}, ErrBounds
	}

	return t.shapeCountByB[s][b], nil
}

// ShapeCount returns the total number of shapes of size s. s must be in
// [0, M].
func (t *Tables) ShapeCount(s int) (bignat.Nat, error) {
	if s < 0 || s > t.M {
		return bignat.Nat{}, ErrBounds
	}

	return t.shapeCount[s], nil
}

// W returns Bell(b+1) * 3^b, the labelings-times-operators weight of a
// shape with b binary nodes. b must be in [0, M].
func (t *Tables) W(b int) (bignat.Nat, error) {
	if b < 0 || b > t.M {
		return bignat.Nat{}, ErrBounds
	}

	return t.w[b], nil
}

// ShapeWeight returns the total weight of layer s (every expression whose
// shape has size s). s must be in [0, M].
func (t *Tables) ShapeWeight(s int) (bignat.Nat, error) {
	if s < 0 || s > t.M {
		return bignat.Nat{}, ErrBounds
	}

	return t.shapeWeight[s], nil
}

// Cum returns the cumulative weight of layers 1..s. s must be in [0, M];
// Cum(0) is always zero and Cum(M) is the engine's total cardinality T.
func (t *Tables) Cum(s int) (bignat.Nat, error) {
	if s < 0 || s > t.M {
		return bignat.Nat{}, ErrBounds
	}

	return t.cum[s], nil
}

// BlockWeight returns the weight of binary-root shapes of size s whose left
// subtree has size ls. s must be in [2, M], ls must be in [1, s-2].
func (t *Tables) BlockWeight(s, ls int) (bignat.Nat, error) {
	if s < 2 || s > t.M || ls < 1 || ls > s-2 {
		return bignat.Nat{}, ErrBounds
	}

	return t.blockWeight[s][ls], nil
}

// RowWeightSum returns the weight contributed to BlockWeight(s, ls) by
// fixing the left subtree's binary count to b1. s must be in [2, M], ls
// must be in [1, s-2], b1 must be in [0, ls-1].
func (t *Tables) RowWeightSum(s, ls, b1 int) (bignat.Nat, error) {
	if s < 2 || s > t.M || ls < 1 || ls > s-2 || b1 < 0 || b1 >= ls {
		return bignat.Nat{}, ErrBounds
	}

	return t.rowWeightSum[s][ls][b1], nil
}

// RGSCount returns the number of length-len restricted-growth strings whose
// running maximum equals k. len must be in [0, M], k must be in [0, M].
func (t *Tables) RGSCount(length, k int) (bignat.Nat, error) {
	if length < 0 || length > t.M || k < 0 || k > t.M {
		return bignat.Nat{}, ErrBounds
	}

	return t.rgs[length][k], nil
}
