// Package emit walks a shape, an operator tuple, and a restricted-growth
// string together and renders the final prefix-notation expression.
//
// What:
//
//   - VarName(id): the canonical variable name for leaf id, using a
//     bijective base-26 scheme (A..Z, then AA, AB, ...).
//   - Emit(shape, ops, rgs): the prefix string for one fully-decoded
//     expression.
//
// Why:
//   - Keeping rendering separate from the unrankers means the output
//     grammar has exactly one implementation to keep bit-exact,
//     independent of how a shape was produced.
//
// Emit builds and returns its own strings.Builder per call rather than
// writing into a package-level buffer, so a single engine built from
// these pieces is safe for concurrent callers without synchronization.
package emit
