package mathie

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/alphaqu/mathie/unit"
)

// The float-only operations live in free functions so the carrier types can
// stay generic over all element types.

// Lerp linearly interpolates between a and b: a + (b - a) * t (tags
// checked). t is not clamped.
func Lerp[N constraints.Float, U unit.Unit](a, b Value[N, U], t N) Value[N, U] {
	unit.CheckCompatible(a.Unit(), b.Unit())
	return Value[N, U]{val: a.val + (b.val-a.val)*t}
}

// LerpVec2 interpolates per lane (tags checked).
func LerpVec2[N constraints.Float, U unit.Unit](a, b Vec2[N, U], t N) Vec2[N, U] {
	unit.CheckCompatible(a.Unit(), b.Unit())
	return Vec2[N, U]{
		x: a.x + (b.x-a.x)*t,
		y: a.y + (b.y-a.y)*t,
	}
}

// Hypot returns the Euclidean length of v as a tagged Value.
func Hypot[N constraints.Float, U unit.Unit](v Vec2[N, U]) Value[N, U] {
	return Value[N, U]{val: N(math.Hypot(float64(v.x), float64(v.y)))}
}

// Normalize divides both lanes by the Euclidean length. The zero vector has
// no direction and normalizes to NaN lanes.
func Normalize[N constraints.Float, U unit.Unit](v Vec2[N, U]) Vec2[N, U] {
	l := N(math.Hypot(float64(v.x), float64(v.y)))
	return Vec2[N, U]{x: v.x / l, y: v.y / l}
}
