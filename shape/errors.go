package shape

import "errors"

// ErrBounds is returned when a weight offset or rank selector falls
// outside the interval its caller claimed it would be in. Every occurrence
// this package can actually trigger from a validated engine call is a
// contract violation inside this module, not a bad user input — user input
// is validated once, at the engine boundary, before it ever reaches here.
var ErrBounds = errors.New("shape: offset out of bounds")
