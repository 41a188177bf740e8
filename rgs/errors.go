package rgs

import "errors"

// ErrBounds is returned when k falls outside [0, Bell(length)) for the
// requested length.
var ErrBounds = errors.New("rgs: index out of bounds")
