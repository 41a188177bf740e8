package rgs

import (
	"fmt"

	"github.com/nodetree/boolrank/bignat"
	"github.com/nodetree/boolrank/tables"
)

// RGS is a restricted-growth string: RGS[0] == 0 and RGS[i] <= 1 +
// max(RGS[:i]) for every i. Its values are the length-ℓ encoding of a set
// partition of ℓ leaves.
type RGS []int

// Unrank returns the length-len RGS at lexicographic position k, where k
// must be in [0, Bell(len)). Boundary behaviors: len == 0 returns the
// empty sequence; k == 0 always returns the all-zero sequence; k ==
// Bell(len)-1 returns the strictly increasing sequence (0,1,...,len-1).
func Unrank(t *tables.Tables, length int, k bignat.Nat) (RGS, error) {
	if length == 0 {
		return RGS{}, nil
	}
	if length < 0 || length > t.Bound() {
		return nil, fmt.Errorf("%w: length %d outside [0,%d]", ErrBounds, length, t.Bound())
	}

	bell, err := t.Bell(length)
	if err != nil {
		return nil, err
	}
	if !k.Less(bell) {
		return nil, fmt.Errorf("%w: k=%s outside [0,%s)", ErrBounds, k.Decimal(), bell.Decimal())
	}

	out := make(RGS, length)
	out[0] = 0
	maxSeen := 0
	rem := k

	for pos := 1; pos < length; pos++ {
		tail := length - pos - 1
		placed := false
		for v := 0; v <= maxSeen+1; v++ {
			nk := v
			if maxSeen > nk {
				nk = maxSeen
			}
			cnt, err := t.RGSCount(tail, nk)
			if err != nil {
				return nil, err
			}
			if rem.Less(cnt) {
				out[pos] = v
				maxSeen = nk
				placed = true

				break
			}
			rem, err = rem.Sub(cnt)
			if err != nil {
				return nil, err
			}
		}
		if !placed {
			return nil, fmt.Errorf("%w: no candidate fit at position %d", ErrBounds, pos)
		}
	}

	return out, nil
}
