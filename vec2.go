package mathie

import (
	"fmt"

	"github.com/alphaqu/mathie/num"
	"github.com/alphaqu/mathie/unit"
)

// Vec2 is an ordered pair of readings sharing one unit tag. There are no
// per-lane tags: both lanes always carry exactly the tag U.
//
// Like Value, a Vec2 is an immutable value type and comparable with ==
// (equal iff both lanes are equal).
type Vec2[N num.Number, U unit.Unit] struct {
	x, y N
}

// Vec constructs an untagged vector.
func Vec[N num.Number](x, y N) Vec2[N, unit.None] {
	return Vec2[N, unit.None]{x: x, y: y}
}

// VecIn constructs a vector tagged with unit U:
//
//	size := mathie.VecIn[unit.Millimeter](210, 297)
func VecIn[U unit.Unit, N num.Number](x, y N) Vec2[N, U] {
	return Vec2[N, U]{x: x, y: y}
}

// ZeroVec2 returns the zero vector.
func ZeroVec2[N num.Number, U unit.Unit]() Vec2[N, U] {
	return Vec2[N, U]{}
}

// OneVec2 returns the vector (1, 1).
func OneVec2[N num.Number, U unit.Unit]() Vec2[N, U] {
	return Vec2[N, U]{x: num.One[N](), y: num.One[N]()}
}

// --- Lanes -----------------------------------------------------------------

// X returns the first lane as a tagged Value.
func (v Vec2[N, U]) X() Value[N, U] { return Value[N, U]{val: v.x} }

// Y returns the second lane as a tagged Value.
func (v Vec2[N, U]) Y() Value[N, U] { return Value[N, U]{val: v.y} }

// XY returns v unchanged.
func (v Vec2[N, U]) XY() Vec2[N, U] { return v }

// YX returns v with its lanes swapped.
func (v Vec2[N, U]) YX() Vec2[N, U] { return Vec2[N, U]{x: v.y, y: v.x} }

// Array returns the lanes as a raw pair.
func (v Vec2[N, U]) Array() [2]N { return [2]N{v.x, v.y} }

// Unit returns the unit tag.
func (v Vec2[N, U]) Unit() U {
	var u U
	return u
}

// Untagged re-tags both lanes with unit.None.
func (v Vec2[N, U]) Untagged() Vec2[N, unit.None] {
	return Vec2[N, unit.None]{x: v.x, y: v.y}
}

// --- Reductions ------------------------------------------------------------

// Sum reduces the vector to x + y.
func (v Vec2[N, U]) Sum() Value[N, U] { return Value[N, U]{val: v.x + v.y} }

// Diff reduces the vector to x - y.
func (v Vec2[N, U]) Diff() Value[N, U] { return Value[N, U]{val: v.x - v.y} }

// Product reduces the vector to x * y.
func (v Vec2[N, U]) Product() Value[N, U] { return Value[N, U]{val: v.x * v.y} }

// Quotient reduces the vector to x / y.
func (v Vec2[N, U]) Quotient() Value[N, U] { return Value[N, U]{val: v.x / v.y} }

// MinVal reduces the vector to its smaller lane.
func (v Vec2[N, U]) MinVal() Value[N, U] { return Value[N, U]{val: num.Min(v.x, v.y)} }

// MaxVal reduces the vector to its larger lane.
func (v Vec2[N, U]) MaxVal() Value[N, U] { return Value[N, U]{val: num.Max(v.x, v.y)} }

// --- Elementwise transforms ------------------------------------------------

// Map applies f to both lanes.
func (v Vec2[N, U]) Map(f func(N) N) Vec2[N, U] {
	return Vec2[N, U]{x: f(v.x), y: f(v.y)}
}

// MapX applies f to the x lane only.
func (v Vec2[N, U]) MapX(f func(N) N) Vec2[N, U] {
	return Vec2[N, U]{x: f(v.x), y: v.y}
}

// MapY applies f to the y lane only.
func (v Vec2[N, U]) MapY(f func(N) N) Vec2[N, U] {
	return Vec2[N, U]{x: v.x, y: f(v.y)}
}

// MoveX replaces the x lane with o's x lane (tags checked).
func (v Vec2[N, U]) MoveX(o Vec2[N, U]) Vec2[N, U] {
	unit.CheckCompatible(v.Unit(), o.Unit())
	return Vec2[N, U]{x: o.x, y: v.y}
}

// MoveY replaces the y lane with o's y lane (tags checked).
func (v Vec2[N, U]) MoveY(o Vec2[N, U]) Vec2[N, U] {
	unit.CheckCompatible(v.Unit(), o.Unit())
	return Vec2[N, U]{x: v.x, y: o.y}
}

// Min returns the elementwise minimum of v and o (tags checked). This is a
// per-lane selection, not a total-order reduction.
func (v Vec2[N, U]) Min(o Vec2[N, U]) Vec2[N, U] {
	unit.CheckCompatible(v.Unit(), o.Unit())
	return Vec2[N, U]{x: num.Min(v.x, o.x), y: num.Min(v.y, o.y)}
}

// Max returns the elementwise maximum of v and o (tags checked).
func (v Vec2[N, U]) Max(o Vec2[N, U]) Vec2[N, U] {
	unit.CheckCompatible(v.Unit(), o.Unit())
	return Vec2[N, U]{x: num.Max(v.x, o.x), y: num.Max(v.y, o.y)}
}

// --- Ordering --------------------------------------------------------------

// Cmp orders vectors lexicographically, x lane first.
//
// Note that this is a deliberate departure from an earlier scheme that
// summed per-lane comparison outcomes (under which (2,0) and (1,1) compared
// equal); that scheme is not transitive and is not reproduced here.
func (v Vec2[N, U]) Cmp(o Vec2[N, U]) int {
	if c := num.Compare(v.x, o.x); c != 0 {
		return c
	}
	return num.Compare(v.y, o.y)
}

func (v Vec2[N, U]) String() string {
	return fmt.Sprintf("(%v, %v)%s", v.x, v.y, v.Unit().Symbol())
}

// --- Arithmetic ------------------------------------------------------------

func (v Vec2[N, U]) combine(o Vec2[N, U], op func(N, N) N) Vec2[N, U] {
	unit.CheckCompatible(v.Unit(), o.Unit())
	return Vec2[N, U]{x: op(v.x, o.x), y: op(v.y, o.y)}
}

func (v Vec2[N, U]) combineN(n N, op func(N, N) N) Vec2[N, U] {
	return Vec2[N, U]{x: op(v.x, n), y: op(v.y, n)}
}

// Add returns the componentwise sum v + o (tags checked).
func (v Vec2[N, U]) Add(o Vec2[N, U]) Vec2[N, U] { return v.combine(o, num.Add[N]) }

// Sub returns the componentwise difference v - o (tags checked).
func (v Vec2[N, U]) Sub(o Vec2[N, U]) Vec2[N, U] { return v.combine(o, num.Sub[N]) }

// Mul returns the componentwise product v * o (tags checked).
func (v Vec2[N, U]) Mul(o Vec2[N, U]) Vec2[N, U] { return v.combine(o, num.Mul[N]) }

// Div returns the componentwise quotient v / o (tags checked).
func (v Vec2[N, U]) Div(o Vec2[N, U]) Vec2[N, U] { return v.combine(o, num.Div[N]) }

// Rem returns the componentwise remainder v mod o (tags checked).
func (v Vec2[N, U]) Rem(o Vec2[N, U]) Vec2[N, U] { return v.combine(o, num.Rem[N]) }

// AddN adds n to both lanes.
func (v Vec2[N, U]) AddN(n N) Vec2[N, U] { return v.combineN(n, num.Add[N]) }

// SubN subtracts n from both lanes.
func (v Vec2[N, U]) SubN(n N) Vec2[N, U] { return v.combineN(n, num.Sub[N]) }

// MulN scales both lanes by n.
func (v Vec2[N, U]) MulN(n N) Vec2[N, U] { return v.combineN(n, num.Mul[N]) }

// DivN divides both lanes by n.
func (v Vec2[N, U]) DivN(n N) Vec2[N, U] { return v.combineN(n, num.Div[N]) }

// RemN reduces both lanes mod n.
func (v Vec2[N, U]) RemN(n N) Vec2[N, U] { return v.combineN(n, num.Rem[N]) }

// AddAssign replaces v with v + o.
func (v *Vec2[N, U]) AddAssign(o Vec2[N, U]) { *v = v.Add(o) }

// SubAssign replaces v with v - o.
func (v *Vec2[N, U]) SubAssign(o Vec2[N, U]) { *v = v.Sub(o) }

// MulAssign replaces v with v * o.
func (v *Vec2[N, U]) MulAssign(o Vec2[N, U]) { *v = v.Mul(o) }

// DivAssign replaces v with v / o.
func (v *Vec2[N, U]) DivAssign(o Vec2[N, U]) { *v = v.Div(o) }

// RemAssign replaces v with v mod o.
func (v *Vec2[N, U]) RemAssign(o Vec2[N, U]) { *v = v.Rem(o) }

// AddNAssign replaces v with v + n on both lanes.
func (v *Vec2[N, U]) AddNAssign(n N) { *v = v.AddN(n) }

// SubNAssign replaces v with v - n on both lanes.
func (v *Vec2[N, U]) SubNAssign(n N) { *v = v.SubN(n) }

// MulNAssign replaces v with v * n on both lanes.
func (v *Vec2[N, U]) MulNAssign(n N) { *v = v.MulN(n) }

// DivNAssign replaces v with v / n on both lanes.
func (v *Vec2[N, U]) DivNAssign(n N) { *v = v.DivN(n) }

// RemNAssign replaces v with v mod n on both lanes.
func (v *Vec2[N, U]) RemNAssign(n N) { *v = v.RemN(n) }
