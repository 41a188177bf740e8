package bignat

import "errors"

// Sentinel errors for bignat operations. Callers MUST use errors.Is to
// branch on semantics; messages are not part of the contract.
var (
	// ErrArithmetic is returned for a zero divisor in DivMod, or for a Sub
	// whose minuend is smaller than its subtrahend.
	ErrArithmetic = errors.New("bignat: arithmetic error")

	// ErrParse is returned by Parse for empty input or input containing a
	// non-digit byte.
	ErrParse = errors.New("bignat: parse error")
)
