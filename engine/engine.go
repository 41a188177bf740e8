package engine

import (
	"fmt"
	"sort"

	"github.com/nodetree/boolrank/bignat"
	"github.com/nodetree/boolrank/emit"
	"github.com/nodetree/boolrank/rgs"
	"github.com/nodetree/boolrank/shape"
	"github.com/nodetree/boolrank/tables"
)

// MaxBound is the build-time upper bound on M. It keeps table construction
// (O(M^4) time, O(M^3) memory for rowWeightSum) bounded on a single
// machine; callers who need a larger bound must shard by some other means,
// which is out of this package's scope.
const MaxBound = 4096

// Engine is a built, read-only combinatorial unranker for one bound M. The
// zero value is Uninitialized; Init returns a Ready Engine.
type Engine struct {
	tables *tables.Tables
	cfg    config
}

// Init builds the tables for bound m and returns a Ready Engine. m must be
// a positive integer at most MaxBound. Options adjust indexing and
// alphabet-cap conventions; see WithIndexBase and WithAlphabetCap.
func Init(m int, opts ...Option) (*Engine, error) {
	if m < 1 || m > MaxBound {
		return nil, fmt.Errorf("%w: M=%d outside [1,%d]", ErrConfig, m, MaxBound)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.indexBase != 0 && cfg.indexBase != 1 {
		return nil, fmt.Errorf("%w: index base %d not in {0,1}", ErrConfig, cfg.indexBase)
	}
	if cfg.alphabetCap < 1 {
		return nil, fmt.Errorf("%w: alphabet cap %d must be positive", ErrConfig, cfg.alphabetCap)
	}

	t, err := tables.Build(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return &Engine{tables: t, cfg: cfg}, nil
}

// Bound returns the M this Engine was built with.
func (e *Engine) Bound() int {
	e.mustReady()

	return e.tables.Bound()
}

// IndexBase returns the configured indexing convention, 0 or 1.
func (e *Engine) IndexBase() int {
	e.mustReady()

	return e.cfg.indexBase
}

// AlphabetCap returns the configured single-letter variable cap.
func (e *Engine) AlphabetCap() int {
	e.mustReady()

	return e.cfg.alphabetCap
}

// Total returns T, the number of distinct expressions this Engine can
// unrank: cum[M].
func (e *Engine) Total() bignat.Nat {
	e.mustReady()

	cum, err := e.tables.Cum(e.tables.Bound())
	if err != nil {
		panic(fmt.Sprintf("engine: Total: %v", err))
	}

	return cum
}

func (e *Engine) mustReady() {
	if e == nil || e.tables == nil {
		panic("engine: method called on an Uninitialized Engine")
	}
}

// layerOffset converts rank n to a 0-based layer offset n0 in [0, T), or
// fails with ErrBounds if n falls outside the configured index range.
func (e *Engine) layerOffset(n bignat.Nat) (bignat.Nat, error) {
	total := e.Total()

	switch e.cfg.indexBase {
	case 0:
		if !n.Less(total) {
			return bignat.Nat{}, fmt.Errorf("%w: N=%s outside [0,%s)", ErrBounds, n.Decimal(), total.Decimal())
		}

		return n, nil
	default: // 1
		if n.IsZero() || total.Less(n) {
			return bignat.Nat{}, fmt.Errorf("%w: N=%s outside [1,%s]", ErrBounds, n.Decimal(), total.Decimal())
		}

		n0, err := n.Sub(bignat.One)
		if err != nil {
			return bignat.Nat{}, fmt.Errorf("%w: %v", ErrBounds, err)
		}

		return n0, nil
	}
}

// findLayer returns the smallest s with cum[s] > n0, by binary search over
// the monotone cum[] sequence.
func (e *Engine) findLayer(n0 bignat.Nat) (int, error) {
	m := e.tables.Bound()
	s := sort.Search(m, func(i int) bool {
		c, err := e.tables.Cum(i + 1)
		if err != nil {
			panic(fmt.Sprintf("engine: findLayer: %v", err))
		}

		return n0.Less(c)
	}) + 1
	if s > m {
		return 0, fmt.Errorf("%w: N too large for M=%d", ErrBounds, m)
	}

	return s, nil
}

// Unrank returns the expression string at rank n, per the configured
// indexing convention.
func (e *Engine) Unrank(n bignat.Nat) (string, error) {
	e.mustReady()

	n0, err := e.layerOffset(n)
	if err != nil {
		return "", err
	}

	s, err := e.findLayer(n0)
	if err != nil {
		return "", err
	}

	cumPrev, err := e.tables.Cum(s - 1)
	if err != nil {
		return "", err
	}
	w, err := n0.Sub(cumPrev)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBounds, err)
	}

	sh, bShape, variantOff, err := shape.Unrank(e.tables, s, w)
	if err != nil {
		return "", err
	}

	ell := bShape + 1
	bellEll, err := e.tables.Bell(ell)
	if err != nil {
		return "", err
	}
	opIndex, labelIndex, err := variantOff.DivMod(bellEll)
	if err != nil {
		return "", err
	}

	ops := decodeOps(opIndex, bShape)

	r, err := rgs.Unrank(e.tables, ell, labelIndex)
	if err != nil {
		return "", err
	}

	return emit.Emit(sh, ops, r)
}

// decodeOps reads opIndex apart in base 3, writing the least-significant
// digit into the highest preorder position: ops[b-1] is the first digit
// produced, ops[0] the last.
func decodeOps(opIndex bignat.Nat, b int) []int {
	if b == 0 {
		return nil
	}

	ops := make([]int, b)
	three := bignat.FromUint64(3)
	rem := opIndex
	for i := b - 1; i >= 0; i-- {
		q, digit, err := rem.DivMod(three)
		if err != nil {
			panic(fmt.Sprintf("engine: decodeOps: %v", err))
		}
		u, _ := digit.Uint64() // digit is always < 3, always exact
		ops[i] = int(u)
		rem = q
	}

	return ops
}

// Distinct reports whether Unrank(from) and Unrank(to) produce different
// strings, without materializing either when a cheaper rank comparison
// already answers the question. Equal ranks are never distinct. This
// supplements the core unrank operation with the duplicate-detection check
// a bulk dump of the enumeration would otherwise need to run by brute
// force.
func (e *Engine) Distinct(from, to bignat.Nat) (bool, error) {
	e.mustReady()

	if from.Equal(to) {
		return false, nil
	}

	a, err := e.Unrank(from)
	if err != nil {
		return false, err
	}
	b, err := e.Unrank(to)
	if err != nil {
		return false, err
	}

	return a != b, nil
}
