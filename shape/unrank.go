package shape

import (
	"fmt"

	"github.com/nodetree/boolrank/bignat"
	"github.com/nodetree/boolrank/tables"
)

// Unrank decomposes a layer-local weight offset w into the shape it
// selects, that shape's binary-node count, and the residual variantOff the
// caller splits into an operator tuple index and an RGS index.
//
// w must be in [0, shapeWeight[s)); s must be in [1, t.Bound()].
//
// Enumeration order: all binary-root shapes first, grouped by left-subtree
// size (ascending), then by left binary-count bucket, then by right
// binary-count bucket, then by (left shape rank, right shape rank) with
// left varying slowest; then the single unary-root block, wrapping each
// shape of size s-1 in that shape's own order. This is the layered
// canonical order the table builders in package tables are written
// against, so the two can never drift from each other.
func Unrank(t *tables.Tables, s int, w bignat.Nat) (sh *Shape, bShape int, variantOff bignat.Nat, err error) {
	if s < 1 || s > t.Bound() {
		return nil, 0, bignat.Nat{}, fmt.Errorf("%w: size %d outside [1,%d]", ErrBounds, s, t.Bound())
	}

	sw, err := t.ShapeWeight(s)
	if err != nil {
		return nil, 0, bignat.Nat{}, err
	}
	if !w.Less(sw) {
		return nil, 0, bignat.Nat{}, fmt.Errorf("%w: offset %s outside [0,%s) for size %d", ErrBounds, w.Decimal(), sw.Decimal(), s)
	}

	if s == 1 {
		return newLeaf(), 0, w, nil
	}

	binTotal := bignat.Zero
	for ls := 1; ls <= s-2; ls++ {
		bw, err := t.BlockWeight(s, ls)
		if err != nil {
			return nil, 0, bignat.Nat{}, err
		}
		binTotal = binTotal.Add(bw)
	}

	if w.Less(binTotal) {
		return unrankBinaryRoot(t, s, w)
	}

	w2, err := w.Sub(binTotal)
	if err != nil {
		return nil, 0, bignat.Nat{}, fmt.Errorf("%w: unary offset underflow", ErrBounds)
	}

	child, bShape, variantOff, err := Unrank(t, s-1, w2)
	if err != nil {
		return nil, 0, bignat.Nat{}, err
	}

	return newUnary(child), bShape, variantOff, nil
}

// unrankBinaryRoot handles the case w < binTotal: w selects a binary-root
// shape. It peels the ls block, then the b1 row, then the b2 column, then
// splits the remainder into a combo index (left shape rank x right shape
// rank) and the final variantOff.
func unrankBinaryRoot(t *tables.Tables, s int, w bignat.Nat) (*Shape, int, bignat.Nat, error) {
	var ls int
	for ls = 1; ls <= s-2; ls++ {
		bw, err := t.BlockWeight(s, ls)
		if err != nil {
			return nil, 0, bignat.Nat{}, err
		}
		if w.Less(bw) {
			break
		}
		w, _ = w.Sub(bw)
	}
	rs := s - 1 - ls

	var b1 int
	for b1 = 0; b1 < ls; b1++ {
		cLs, err := t.ShapeCountByB(ls, b1)
		if err != nil {
			return nil, 0, bignat.Nat{}, err
		}
		row, err := t.RowWeightSum(s, ls, b1)
		if err != nil {
			return nil, 0, bignat.Nat{}, err
		}
		rowTotal := cLs.Mul(row)
		if w.Less(rowTotal) {
			break
		}
		w, _ = w.Sub(rowTotal)
	}

	cLs, err := t.ShapeCountByB(ls, b1)
	if err != nil {
		return nil, 0, bignat.Nat{}, err
	}

	var b2 int
	for b2 = 0; b2 < rs; b2++ {
		cRs, err := t.ShapeCountByB(rs, b2)
		if err != nil {
			return nil, 0, bignat.Nat{}, err
		}
		wt, err := t.W(b1 + b2 + 1)
		if err != nil {
			return nil, 0, bignat.Nat{}, err
		}
		chunk := cLs.Mul(cRs).Mul(wt)
		if w.Less(chunk) {
			break
		}
		w, _ = w.Sub(chunk)
	}

	cRs, err := t.ShapeCountByB(rs, b2)
	if err != nil {
		return nil, 0, bignat.Nat{}, err
	}
	wt, err := t.W(b1 + b2 + 1)
	if err != nil {
		return nil, 0, bignat.Nat{}, err
	}

	combosIdx, variantOff, err := w.DivMod(wt)
	if err != nil {
		return nil, 0, bignat.Nat{}, err
	}
	leftRank, rightRank, err := combosIdx.DivMod(cRs)
	if err != nil {
		return nil, 0, bignat.Nat{}, err
	}

	left, err := unrankByB(t, ls, b1, leftRank)
	if err != nil {
		return nil, 0, bignat.Nat{}, err
	}
	right, err := unrankByB(t, rs, b2, rightRank)
	if err != nil {
		return nil, 0, bignat.Nat{}, err
	}

	return newBinary(left, right), b1 + b2 + 1, variantOff, nil
}

// unrankByB is the shape-only analogue of Unrank, fixing the binary-node
// count b rather than a weight: it inverts the C[s][b] recurrence to
// locate the rank-th shape of size s with exactly b binary nodes, among
// C[s][b] such shapes.
func unrankByB(t *tables.Tables, s, b int, rank bignat.Nat) (*Shape, error) {
	if s == 1 {
		if b != 0 || !rank.IsZero() {
			return nil, fmt.Errorf("%w: unrankByB(1,%d,%s)", ErrBounds, b, rank.Decimal())
		}

		return newLeaf(), nil
	}

	binPart := bignat.Zero
	if b >= 1 {
		for ls := 1; ls <= s-2; ls++ {
			rs := s - 1 - ls
			for b1 := 0; b1 <= b-1; b1++ {
				b2 := b - 1 - b1
				if b2 < 0 || b2 > t.Bound() {
					continue
				}
				cLs, err := t.ShapeCountByB(ls, b1)
				if err != nil {
					return nil, err
				}
				cRs, err := t.ShapeCountByB(rs, b2)
				if err != nil {
					return nil, err
				}
				chunk := cLs.Mul(cRs)
				next := binPart.Add(chunk)
				if rank.Less(next) {
					local, _ := rank.Sub(binPart)
					leftRank, rightRank, err := local.DivMod(cRs)
					if err != nil {
						return nil, err
					}
					left, err := unrankByB(t, ls, b1, leftRank)
					if err != nil {
						return nil, err
					}
					right, err := unrankByB(t, rs, b2, rightRank)
					if err != nil {
						return nil, err
					}

					return newBinary(left, right), nil
				}
				binPart = next
			}
		}
	}

	rank2, err := rank.Sub(binPart)
	if err != nil {
		return nil, fmt.Errorf("%w: unrankByB(%d,%d,%s)", ErrBounds, s, b, rank.Decimal())
	}
	child, err := unrankByB(t, s-1, b, rank2)
	if err != nil {
		return nil, err
	}

	return newUnary(child), nil
}
