// Package bignat provides an arbitrary-precision unsigned integer, Nat,
// used wherever the ranking engine's counts exceed the range of a machine
// word — cumulative shape weights grow combinatorially in the expression
// size bound M and routinely exceed 64 and even 128 bits.
//
// What:
//
//   - Nat: an immutable, value-typed unsigned integer backed by math/big.
//     Supports Add, Sub, Mul, DivMod, shifts, comparisons, BitLen, and
//     decimal marshaling in both directions.
//
// Why:
//   - The engine must never silently wrap or truncate a rank or a weight;
//     Nat makes overflow a non-issue instead of a hazard to audit for.
//   - Keeping the type under one package lets every other package treat
//     "big enough integer" as a single, well-tested dependency.
//
// Errors:
//
//   - ErrArithmetic  division by zero, or subtraction where the minuend is
//     smaller than the subtrahend.
//   - ErrParse       malformed decimal text passed to Parse.
//
// Nat values are immutable: every operation returns a new Nat and leaves
// its receiver and argument untouched, so concurrent callers never need to
// synchronize around a shared Nat.
package bignat
