package tables

import "github.com/nodetree/boolrank/bignat"

// Build constructs every combinatorial table for bound M in one pass.
// M must be a positive integer; Build fails with ErrBounds otherwise.
//
// Complexity: O(M^4) time, O(M^3) memory (RowWeightSum dominates).
func Build(m int) (*Tables, error) {
	if m < 1 {
		return nil, ErrBounds
	}

	t := &Tables{M: m}
	t.buildPow3()
	t.buildBinomAndBell()
	t.buildShapeCounts()
	t.buildWeights()
	t.buildBlocks()
	t.buildRGS()

	return t, nil
}

func (t *Tables) buildPow3() {
	t.pow3 = make([]bignat.Nat, t.M+1)
	t.pow3[0] = bignat.One
	three := bignat.FromUint64(3)
	for i := 1; i <= t.M; i++ {
		t.pow3[i] = t.pow3[i-1].Mul(three)
	}
}

// buildBinomAndBell fills Pascal's triangle up to row M+1 and the Bell
// numbers up to index M+1 via the triangle recurrence
// Bell[n] = sum_{k=0}^{n-1} C(n-1,k) * Bell[k].
func (t *Tables) buildBinomAndBell() {
	n := t.M + 2
	t.binom = make([][]bignat.Nat, n)
	for i := range t.binom {
		t.binom[i] = make([]bignat.Nat, n)
		t.binom[i][0] = bignat.One
		for k := 1; k <= i; k++ {
			t.binom[i][k] = t.binom[i-1][k-1].Add(t.binom[i-1][k])
		}
	}

	t.bell = make([]bignat.Nat, n)
	t.bell[0] = bignat.One
	for bn := 1; bn < n; bn++ {
		sum := bignat.Zero
		for k := 0; k < bn; k++ {
			sum = sum.Add(t.binom[bn-1][k].Mul(t.bell[k]))
		}
		t.bell[bn] = sum
	}
}

// buildShapeCounts fills shapeCountByB[s][b] via the binary-root /
// unary-root recurrence, then derives shapeCount[s] as the row sum.
func (t *Tables) buildShapeCounts() {
	t.shapeCountByB = make([][]bignat.Nat, t.M+1)
	for s := range t.shapeCountByB {
		t.shapeCountByB[s] = make([]bignat.Nat, t.M+1)
	}
	if t.M >= 1 {
		t.shapeCountByB[1][0] = bignat.One
	}

	for s := 2; s <= t.M; s++ {
		for b := 0; b <= t.M; b++ {
			sum := bignat.Zero
			if b >= 1 {
				for ls := 1; ls <= s-2; ls++ {
					rs := s - 1 - ls
					for b1 := 0; b1 < b; b1++ {
						b2 := b - 1 - b1
						if b2 < 0 || b2 > t.M {
							continue
						}
						sum = sum.Add(t.shapeCountByB[ls][b1].Mul(t.shapeCountByB[rs][b2]))
					}
				}
			}
			sum = sum.Add(t.shapeCountByB[s-1][b])
			t.shapeCountByB[s][b] = sum
		}
	}

	t.shapeCount = make([]bignat.Nat, t.M+1)
	for s := 0; s <= t.M; s++ {
		sum := bignat.Zero
		for b := 0; b <= t.M; b++ {
			sum = sum.Add(t.shapeCountByB[s][b])
		}
		t.shapeCount[s] = sum
	}
}

// buildWeights fills W[b], shapeWeight[s], and cum[s].
func (t *Tables) buildWeights() {
	t.w = make([]bignat.Nat, t.M+1)
	for b := 0; b <= t.M; b++ {
		t.w[b] = t.bell[b+1].Mul(t.pow3[b])
	}

	t.shapeWeight = make([]bignat.Nat, t.M+1)
	for s := 0; s <= t.M; s++ {
		sum := bignat.Zero
		for b := 0; b <= t.M; b++ {
			sum = sum.Add(t.shapeCountByB[s][b].Mul(t.w[b]))
		}
		t.shapeWeight[s] = sum
	}

	t.cum = make([]bignat.Nat, t.M+1)
	for s := 1; s <= t.M; s++ {
		t.cum[s] = t.cum[s-1].Add(t.shapeWeight[s])
	}
}

// buildBlocks fills blockWeight[s][ls] and rowWeightSum[s][ls][b1], the
// tables the shape unranker peels through to locate a binary-root block.
func (t *Tables) buildBlocks() {
	t.blockWeight = make([][]bignat.Nat, t.M+1)
	t.rowWeightSum = make([][][]bignat.Nat, t.M+1)
	for s := range t.blockWeight {
		t.blockWeight[s] = make([]bignat.Nat, t.M+1)
		t.rowWeightSum[s] = make([][]bignat.Nat, t.M+1)
	}

	for s := 2; s <= t.M; s++ {
		for ls := 1; ls <= s-2; ls++ {
			rs := s - 1 - ls
			row := make([]bignat.Nat, ls)
			for b1 := 0; b1 < ls; b1++ {
				sum := bignat.Zero
				for b2 := 0; b2 < rs; b2++ {
					wIdx := b1 + b2 + 1
					if wIdx > t.M {
						continue
					}
					sum = sum.Add(t.shapeCountByB[rs][b2].Mul(t.w[wIdx]))
				}
				row[b1] = sum
			}
			t.rowWeightSum[s][ls] = row

			block := bignat.Zero
			for b1 := 0; b1 < ls; b1++ {
				block = block.Add(t.shapeCountByB[ls][b1].Mul(row[b1]))
			}
			t.blockWeight[s][ls] = block
		}
	}
}

// buildRGS fills rgs[len][k] via RGS[0][k]=1 and
// RGS[len][k] = sum_{v=0}^{k+1} RGS[len-1][max(k,v)].
//
// The k dimension is sized to M+2 internally (k in [0, M+1]) so that the
// v=k+1 term of the recurrence at k=M never indexes out of range; the
// public accessor still only exposes k in [0, M], which is all any caller
// needs (a running max of k over at most M leaves can never exceed M-1).
func (t *Tables) buildRGS() {
	kdim := t.M + 2
	t.rgs = make([][]bignat.Nat, t.M+1)
	for length := range t.rgs {
		t.rgs[length] = make([]bignat.Nat, kdim)
	}
	for k := 0; k < kdim; k++ {
		t.rgs[0][k] = bignat.One
	}

	for length := 1; length <= t.M; length++ {
		for k := 0; k < kdim; k++ {
			sum := bignat.Zero
			for v := 0; v <= k+1; v++ {
				nk := v
				if k > nk {
					nk = k
				}
				if nk >= kdim {
					continue
				}
				sum = sum.Add(t.rgs[length-1][nk])
			}
			t.rgs[length][k] = sum
		}
	}
}
