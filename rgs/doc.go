// Package rgs unranks restricted-growth strings: sequences r[0..n) with
// r[0]=0 and r[i] <= 1+max(r[0..i)), which biject with set partitions of
// the leaves of an expression and so encode which leaves share a variable
// name.
//
// What:
//
//   - Unrank(length, k): the length-len RGS at lexicographic position k,
//     using the tables.RGSCount table to skip whole subtrees of the
//     decision at each position instead of generating candidates.
//
// Complexity:
//
//   - Unrank: O(length^2) — length positions, each trying up to length
//     candidate values.
package rgs
