// Package boolrank is a bijective ranking and unranking engine for a
// family of Boolean expression strings built from AND, OR, XOR, NOT, and
// named variable leaves.
//
// What is boolrank?
//
//	A deterministic bijection between the integers 1..T (or 0..T-1) and
//	every Boolean expression up to a configured size bound M, built from:
//		- bignat: arbitrary-precision unsigned arithmetic
//		- tables: the combinatorial counts (shapes, Bell numbers, weights)
//		  the unrankers consume
//		- shape:  the tagged-node tree topology and its unranker
//		- rgs:    restricted-growth strings, unranked to pick variable labels
//		- emit:   renders a shape plus operators plus labels to text
//		- engine: the public Init/Total/Unrank surface tying all of the
//		  above together
//
// Why boolrank?
//
//   - No enumeration ever materializes: every rank maps to its expression
//     through closed-form combinatorial tables. The reverse direction
//     (expression to rank) is not provided.
//   - Arbitrary precision throughout — T grows well past 64 bits for
//     modest M, and boolrank never silently wraps.
//   - Read-only tables after Init, so one Engine answers concurrent
//     Unrank calls from any number of goroutines without synchronization.
//
// Package layout:
//
//	bignat/ — arbitrary-precision unsigned integers (Nat)
//	tables/ — combinatorial count tables built once per bound M
//	shape/  — tree topology (Leaf/Unary/Binary) and its unranker
//	rgs/    — restricted-growth strings and their unranker
//	emit/   — variable naming and prefix-notation rendering
//	engine/ — Init, Total, Unrank: the module's public API
//
// Quick example:
//
//	e, _ := engine.Init(6)
//	s, _ := e.Unrank(bignat.FromInt(1))
//	// s == "A"
package boolrank
