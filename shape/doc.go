// Package shape represents the tree topology underlying one Boolean
// expression — Leaf, Unary, or Binary nodes — and unranks a layer-local
// weight offset into a concrete shape without ever enumerating the shapes
// of that layer.
//
// What:
//
//   - Shape: an arena of nodes (a flat slice, children referenced by
//     index) for a single expression's tree, built fresh per call.
//   - Unrank: given a size s and a weight offset w, returns the shape that
//     offset falls under plus the residual variantOff the caller hands to
//     the operator/RGS split.
//
// Why:
//   - Shapes of the same size can number in the (large) thousands or more;
//     materializing them to index into one would defeat the point of
//     random-access unranking. Unrank instead walks the same block/row/
//     column decomposition the tables package used to count them.
//
// Complexity:
//
//   - Unrank(s, w): O(s^2) — the binary-block walk is O(s), and locating a
//     specific shape within a fixed binary-count bucket recurses O(s) deep
//     with an O(s) scan at each level.
//
// Errors:
//
//   - ErrBounds  w is outside [0, shapeWeight[s)), or an internal rank
//     selector lands outside its bucket — the latter is always a
//     programming error, not a user input error.
package shape
