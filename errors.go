package mathie

import "errors"

var (
	// ErrTupleShape signals a serialized carrier that is not the expected
	// fixed-width tuple.
	ErrTupleShape = errors.New("mathie: malformed tuple encoding")
	// ErrSketchSize signals a sketch grid with non-positive dimensions.
	ErrSketchSize = errors.New("mathie: sketch grid size must be positive")
)
