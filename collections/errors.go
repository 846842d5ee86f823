package collections

import "errors"

// ErrInvalidCapacity indicates that a capacity was negative or does not fit
// the filter's sizing type.
var ErrInvalidCapacity = errors.New("invalid capacity")

// ErrInvalidFPRate indicates that a false-positive rate was outside (0, 1).
var ErrInvalidFPRate = errors.New("false-positive rate must be in (0, 1)")
