// Package tables builds the combinatorial tables the ranking engine needs
// to locate a rank without ever enumerating the family it belongs to:
// powers of three, Bell numbers, shape counts by binary-node count, weight
// factors, cumulative layer weights, and the block/row decomposition used
// by the shape unranker, plus the restricted-growth-string count table.
//
// What:
//
//   - Tables: an immutable snapshot of every derived count for a fixed
//     bound M, built once by Build and never mutated afterward.
//
// Why:
//   - Every other package (shape, rgs, emit, engine) is a pure function of
//     these tables and its own input; keeping them in one place makes the
//     O(M^4) build cost explicit and pays it exactly once.
//
// Complexity:
//
//   - Build(M): O(M^4) time (dominated by the binary-root C[s][b]
//     recurrence), O(M^3) memory (dominated by RowWeightSum).
//
// Errors:
//
//   - ErrBounds  M is not a positive integer.
package tables
