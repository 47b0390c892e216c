package num

import "errors"

var (
	// ErrOutOfRange signals that a value cannot be represented by the target type.
	ErrOutOfRange = errors.New("num: value out of range for target type")
	// ErrNaN signals a NaN reading converted into an integer type.
	ErrNaN = errors.New("num: NaN has no integer representation")
)
