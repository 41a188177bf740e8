package bignat

import (
	"fmt"
	"math/big"
)

// Nat is an immutable arbitrary-precision unsigned integer. The zero value
// is a valid Nat equal to 0.
type Nat struct {
	v big.Int // always >= 0; never mutated in place after construction
}

// Zero is the additive identity.
var Zero = Nat{}

// One is the multiplicative identity.
var One = FromUint64(1)

// FromUint64 constructs a Nat from a small non-negative integer.
func FromUint64(n uint64) Nat {
	var n0 Nat
	n0.v.SetUint64(n)

	return n0
}

// FromInt constructs a Nat from a non-negative int, panicking on a
// negative argument — a programming error, not an input error, since every
// caller in this module derives n from a table size or a loop bound it
// controls.
func FromInt(n int) Nat {
	if n < 0 {
		panic(fmt.Sprintf("bignat: FromInt negative: %d", n))
	}

	return FromUint64(uint64(n))
}

// Parse decodes s as an unsigned decimal integer: digits only, no sign, no
// whitespace. Leading zeros are accepted ("007" parses as 7). It fails with
// ErrParse on empty input or any non-digit byte.
func Parse(s string) (Nat, error) {
	if len(s) == 0 {
		return Nat{}, fmt.Errorf("%w: empty input", ErrParse)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Nat{}, fmt.Errorf("%w: non-digit byte %q at offset %d", ErrParse, s[i], i)
		}
	}

	var n Nat
	if _, ok := n.v.SetString(s, 10); !ok {
		return Nat{}, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return n, nil
}

// Decimal renders n in canonical shortest decimal form: "0" for zero, no
// leading zeros, no sign.
func (n Nat) Decimal() string {
	return n.v.String()
}

// String satisfies fmt.Stringer with the same rendering as Decimal.
func (n Nat) String() string {
	return n.Decimal()
}

// Add returns n + m.
func (n Nat) Add(m Nat) Nat {
	var r Nat
	r.v.Add(&n.v, &m.v)

	return r
}

// Sub returns n - m. Fails with ErrArithmetic if n < m.
func (n Nat) Sub(m Nat) (Nat, error) {
	if n.v.Cmp(&m.v) < 0 {
		return Nat{}, fmt.Errorf("%w: %s - %s would be negative", ErrArithmetic, n.Decimal(), m.Decimal())
	}
	var r Nat
	r.v.Sub(&n.v, &m.v)

	return r, nil
}

// Mul returns n * m.
func (n Nat) Mul(m Nat) Nat {
	var r Nat
	r.v.Mul(&n.v, &m.v)

	return r
}

// DivMod returns (n/m, n%m). Fails with ErrArithmetic if m is zero.
func (n Nat) DivMod(m Nat) (q, r Nat, err error) {
	if m.v.Sign() == 0 {
		return Nat{}, Nat{}, fmt.Errorf("%w: division by zero", ErrArithmetic)
	}
	q.v.DivMod(&n.v, &m.v, &r.v)

	return q, r, nil
}

// Shl returns n << bits. The shift count is unsigned, and the result is
// never truncated: Nat has no fixed width.
func (n Nat) Shl(bits uint) Nat {
	var r Nat
	r.v.Lsh(&n.v, bits)

	return r
}

// Shr returns n >> bits. A shift at or beyond the bit length of n yields
// zero.
func (n Nat) Shr(bits uint) Nat {
	var r Nat
	r.v.Rsh(&n.v, bits)

	return r
}

// Cmp returns -1, 0, or +1 as n is less than, equal to, or greater than m.
func (n Nat) Cmp(m Nat) int {
	return n.v.Cmp(&m.v)
}

// Equal reports whether n and m denote the same value.
func (n Nat) Equal(m Nat) bool {
	return n.Cmp(m) == 0
}

// Less reports whether n < m.
func (n Nat) Less(m Nat) bool {
	return n.Cmp(m) < 0
}

// IsZero reports whether n == 0.
func (n Nat) IsZero() bool {
	return n.v.Sign() == 0
}

// BitLen returns 0 for zero and floor(log2(n))+1 otherwise.
func (n Nat) BitLen() int {
	return n.v.BitLen()
}

// Uint64 returns n as a uint64 and whether the conversion was exact (n fits
// in 64 bits). The engine uses it only to read single base-3 digits; it
// never relies on ranks fitting in a machine word.
func (n Nat) Uint64() (uint64, bool) {
	return n.v.Uint64(), n.v.IsUint64()
}

// Ratio returns n / 2^width as a float64, i.e. the fraction of the width-bit
// unsigned range that n occupies. It is a diagnostic (supplemented from the
// original implementation's "percentage of 128-bit range used" report) and
// is never consulted by Unrank or Total.
func (n Nat) Ratio(width int) float64 {
	if width <= 0 {
		return 0
	}
	num := new(big.Float).SetInt(&n.v)
	den := new(big.Float).SetMantExp(big.NewFloat(1), width)
	ratio := new(big.Float).Quo(num, den)
	f, _ := ratio.Float64()

	return f
}
