package mathie

import (
	"github.com/alphaqu/mathie/num"
	"github.com/alphaqu/mathie/unit"
)

// Casting changes the element type N and preserves the tag; converting
// changes the tag U and preserves the element type. Both live in free
// functions because Go methods cannot introduce type parameters.

// CastValue changes the element type of v to NO, preserving the tag.
// Casting a fractional reading into an integer type truncates toward zero;
// a reading outside NO's range fails (num.Convert semantics).
func CastValue[NO, N num.Number, U unit.Unit](v Value[N, U]) (Value[NO, U], error) {
	n, err := num.Convert[NO](v.val)
	if err != nil {
		return Value[NO, U]{}, err
	}
	return Value[NO, U]{val: n}, nil
}

// CastVec2 casts both lanes, preserving the tag.
func CastVec2[NO, N num.Number, U unit.Unit](v Vec2[N, U]) (Vec2[NO, U], error) {
	x, err := num.Convert[NO](v.x)
	if err != nil {
		return Vec2[NO, U]{}, err
	}
	y, err := num.Convert[NO](v.y)
	if err != nil {
		return Vec2[NO, U]{}, err
	}
	return Vec2[NO, U]{x: x, y: y}, nil
}

// CastRect casts origin and size, preserving the tag.
func CastRect[NO, N num.Number, U unit.Unit](r Rect[N, U]) (Rect[NO, U], error) {
	origin, err := CastVec2[NO](r.origin)
	if err != nil {
		return Rect[NO, U]{}, err
	}
	size, err := CastVec2[NO](r.size)
	if err != nil {
		return Rect[NO, U]{}, err
	}
	return Rect[NO, U]{origin: origin, size: size}, nil
}

// MustCastValue is CastValue, panicking on failure.
func MustCastValue[NO, N num.Number, U unit.Unit](v Value[N, U]) Value[NO, U] {
	out, err := CastValue[NO](v)
	if err != nil {
		panic(err)
	}
	return out
}

// MustCastVec2 is CastVec2, panicking on failure.
func MustCastVec2[NO, N num.Number, U unit.Unit](v Vec2[N, U]) Vec2[NO, U] {
	out, err := CastVec2[NO](v)
	if err != nil {
		panic(err)
	}
	return out
}

// MustCastRect is CastRect, panicking on failure.
func MustCastRect[NO, N num.Number, U unit.Unit](r Rect[N, U]) Rect[NO, U] {
	out, err := CastRect[NO](r)
	if err != nil {
		panic(err)
	}
	return out
}

// ConvertValue re-expresses v in unit UO, preserving the element type:
//
//	m := mathie.ValIn[unit.Meter](3)
//	cm, err := mathie.ConvertValue[unit.Centimeter](m) // 300cm
//
// The reading is scaled through float64 by the tags' base-factor ratio and
// cast back into N, failing when the scaled reading is not representable.
func ConvertValue[UO unit.Prefix, N num.Number, U unit.Prefix](v Value[N, U]) (Value[N, UO], error) {
	n, err := unit.Convert[UO, U](v.val)
	if err != nil {
		return Value[N, UO]{}, err
	}
	return Value[N, UO]{val: n}, nil
}

// ConvertVec2 converts both lanes to unit UO.
func ConvertVec2[UO unit.Prefix, N num.Number, U unit.Prefix](v Vec2[N, U]) (Vec2[N, UO], error) {
	x, err := unit.Convert[UO, U](v.x)
	if err != nil {
		return Vec2[N, UO]{}, err
	}
	y, err := unit.Convert[UO, U](v.y)
	if err != nil {
		return Vec2[N, UO]{}, err
	}
	return Vec2[N, UO]{x: x, y: y}, nil
}

// ConvertRect converts origin and size to unit UO. Both vectors go through
// the same tag-to-tag ratio.
func ConvertRect[UO unit.Prefix, N num.Number, U unit.Prefix](r Rect[N, U]) (Rect[N, UO], error) {
	origin, err := ConvertVec2[UO](r.origin)
	if err != nil {
		return Rect[N, UO]{}, err
	}
	size, err := ConvertVec2[UO](r.size)
	if err != nil {
		return Rect[N, UO]{}, err
	}
	return Rect[N, UO]{origin: origin, size: size}, nil
}

// MustConvertValue is ConvertValue, panicking on failure.
func MustConvertValue[UO unit.Prefix, N num.Number, U unit.Prefix](v Value[N, U]) Value[N, UO] {
	out, err := ConvertValue[UO](v)
	if err != nil {
		panic(err)
	}
	return out
}

// MustConvertVec2 is ConvertVec2, panicking on failure.
func MustConvertVec2[UO unit.Prefix, N num.Number, U unit.Prefix](v Vec2[N, U]) Vec2[N, UO] {
	out, err := ConvertVec2[UO](v)
	if err != nil {
		panic(err)
	}
	return out
}

// MustConvertRect is ConvertRect, panicking on failure.
func MustConvertRect[UO unit.Prefix, N num.Number, U unit.Prefix](r Rect[N, U]) Rect[N, UO] {
	out, err := ConvertRect[UO](r)
	if err != nil {
		panic(err)
	}
	return out
}
