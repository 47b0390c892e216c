package num

import "math"

// Convert changes the element type of v, failing when To cannot represent
// the value.
//
// The rules, by type kind:
//   - integer → integer: exact, or ErrOutOfRange;
//   - integer → float: always succeeds (precision loss is rounding, not failure);
//   - float → integer: the fraction is discarded (truncation toward zero is a
//     conscious cast choice, not an error), then ErrOutOfRange if the truncated
//     value does not fit; NaN yields ErrNaN, ±Inf yields ErrOutOfRange;
//   - float → float: finite values beyond the target's range yield
//     ErrOutOfRange; NaN and ±Inf pass through.
func Convert[To, From Number](v From) (To, error) {
	switch {
	case IsFloat[From]():
		return fromFloat[To](float64(v))
	case IsFloat[To]():
		return To(v), nil
	default:
		return intToInt[To](v)
	}
}

// MustConvert is Convert, panicking on failure.
func MustConvert[To, From Number](v From) To {
	out, err := Convert[To](v)
	if err != nil {
		panic(err)
	}
	return out
}

func fromFloat[To Number](f float64) (To, error) {
	var zero To
	if IsFloat[To]() {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return To(f), nil
		}
		if isFloat32[To]() && math.Abs(f) > math.MaxFloat32 {
			return zero, ErrOutOfRange
		}
		return To(f), nil
	}
	if math.IsNaN(f) {
		return zero, ErrNaN
	}
	tr := math.Trunc(f)
	lo, hi := bounds[To]()
	if math.IsInf(f, 0) || tr < lo || tr >= hi {
		return zero, ErrOutOfRange
	}
	return To(tr), nil
}

func intToInt[To, From Number](v From) (To, error) {
	t := To(v)
	// Round-trip plus sign agreement catches both width truncation and
	// signedness reinterpretation.
	if From(t) != v || (v < Zero[From]()) != (t < Zero[To]()) {
		var zero To
		return zero, ErrOutOfRange
	}
	return t, nil
}
