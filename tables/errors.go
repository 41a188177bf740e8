package tables

import "errors"

// ErrBounds is returned by Build for a non-positive M, and by any table
// accessor given an index outside the table's valid range — the latter is
// always a programming error in a calling package, never a user input
// error (user input is validated once, at the engine boundary).
var ErrBounds = errors.New("tables: index out of bounds")
