package unit

import (
	"github.com/alphaqu/mathie/num"
)

// Unit is the constraint for tag types. A tag is a stateless zero-size
// struct; Symbol is its display suffix (empty for None).
type Unit interface {
	comparable
	Symbol() string
}

// Prefix refines Unit with a static scale factor: how many reference units
// equal one of this unit (centimeter: 0.01).
type Prefix interface {
	Unit
	Base() float64
}

// None is the absence of a unit: symbol "", base factor 1. It is the
// identity element of the tag system and the default tag of the carrier
// constructors.
type None struct{}

// Symbol returns the empty string.
func (None) Symbol() string { return "" }

// Base returns 1.
func (None) Base() float64 { return 1 }

// vetoer is implemented by tag types that can refuse to combine with
// another tag value of the same type.
type vetoer[U any] interface {
	CompatibleWith(other U) bool
}

// Compatible reports whether two tag values of the same type may be
// combined in one arithmetic operation. The default is true; a tag type
// overrides it by implementing CompatibleWith(U) bool.
func Compatible[U Unit](a, b U) bool {
	if v, ok := any(a).(vetoer[U]); ok {
		return v.CompatibleWith(b)
	}
	return true
}

// Ratio returns the conversion ratio from one Prefix tag to another:
// multiplying a reading in From units by the ratio yields the reading in To
// units.
func Ratio[From, To Prefix]() float64 {
	var from From
	var to To
	return from.Base() / to.Base()
}

// Convert re-expresses a reading in From units as a reading in To units.
//
// The ratio is applied in float64 and the result cast back into N via
// num.Convert, so converting into an integer element type truncates
// (250 in centimeters converts to 2 in meters for integer N) and fails with
// num.ErrOutOfRange when the scaled reading does not fit.
func Convert[To, From Prefix, N num.Number](x N) (N, error) {
	return num.Convert[N](float64(x) * Ratio[From, To]())
}
