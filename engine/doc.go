// Package engine binds the combinatorial tables, the shape and RGS
// unrankers, and the emitter into the module's public surface: Init,
// Total, and Unrank.
//
// An Engine moves through exactly two states. A zero-value Engine is
// Uninitialized; calling Init transitions it to Ready or leaves it
// Uninitialized on error. Total and Unrank panic if called before Init
// succeeds, since that is always a programming error in the caller, never
// a runtime condition a caller should recover from.
//
// Once Ready, an Engine's tables are read-only, and Unrank allocates only
// per-call scratch, so a single Engine built by one Init call is safe for
// concurrent Unrank callers without external synchronization.
package engine
