package engine

import "errors"

// ErrConfig is returned by Init for an invalid bound or option value.
var ErrConfig = errors.New("engine: invalid configuration")

// ErrBounds is returned by Unrank and Distinct for a rank outside the
// configured index range.
var ErrBounds = errors.New("engine: rank out of bounds")
