package mathie

import (
	"fmt"

	"github.com/alphaqu/mathie/num"
	"github.com/alphaqu/mathie/unit"
)

// Rect is an axis-aligned rectangle stored as origin + size vectors sharing
// one unit tag.
//
// The size is not constrained to be non-negative: an inverted rectangle is a
// valid value. Min is defined as the origin and Max as origin + size
// regardless of sign, so callers working with possibly-degenerate input
// check IsEmpty or IsNegative themselves.
//
// Derived points use the Y-down screen convention: TopLeft is Min,
// BottomRight is Max.
type Rect[N num.Number, U unit.Unit] struct {
	origin Vec2[N, U]
	size   Vec2[N, U]
}

// NewRect constructs a rectangle from origin and size.
func NewRect[N num.Number, U unit.Unit](origin, size Vec2[N, U]) Rect[N, U] {
	return Rect[N, U]{origin: origin, size: size}
}

// RectMinMax constructs a rectangle from two corners: the origin is min and
// the size is max - min.
func RectMinMax[N num.Number, U unit.Unit](min, max Vec2[N, U]) Rect[N, U] {
	return Rect[N, U]{origin: min, size: max.Sub(min)}
}

// ZeroRect returns the rectangle with zero origin and zero size.
func ZeroRect[N num.Number, U unit.Unit]() Rect[N, U] {
	return Rect[N, U]{}
}

// UnitSquare returns the rectangle with origin (0, 0) and size (1, 1).
func UnitSquare[N num.Number, U unit.Unit]() Rect[N, U] {
	return Rect[N, U]{size: OneVec2[N, U]()}
}

// --- Accessors and derived points ------------------------------------------

// Origin returns the origin vector.
func (r Rect[N, U]) Origin() Vec2[N, U] { return r.origin }

// Size returns the size vector.
func (r Rect[N, U]) Size() Vec2[N, U] { return r.size }

// Min returns the origin corner.
func (r Rect[N, U]) Min() Vec2[N, U] { return r.origin }

// Max returns origin + size.
func (r Rect[N, U]) Max() Vec2[N, U] { return r.origin.Add(r.size) }

// Unit returns the unit tag.
func (r Rect[N, U]) Unit() U {
	var u U
	return u
}

// Untagged re-tags origin and size with unit.None.
func (r Rect[N, U]) Untagged() Rect[N, unit.None] {
	return Rect[N, unit.None]{origin: r.origin.Untagged(), size: r.size.Untagged()}
}

// TopLeft is the Min corner.
func (r Rect[N, U]) TopLeft() Vec2[N, U] { return r.Min() }

// TopRight is the corner (max.x, min.y).
func (r Rect[N, U]) TopRight() Vec2[N, U] { return r.Min().MoveX(r.Max()) }

// BottomLeft is the corner (min.x, max.y).
func (r Rect[N, U]) BottomLeft() Vec2[N, U] { return r.Min().MoveY(r.Max()) }

// BottomRight is the Max corner.
func (r Rect[N, U]) BottomRight() Vec2[N, U] { return r.Max() }

// Center returns origin + size/2. For integer element types the halving
// truncates.
func (r Rect[N, U]) Center() Vec2[N, U] {
	return r.origin.Add(r.size.DivN(N(2)))
}

// TopCenter is the midpoint of the top edge.
func (r Rect[N, U]) TopCenter() Vec2[N, U] { return r.Center().MoveY(r.Min()) }

// BottomCenter is the midpoint of the bottom edge.
func (r Rect[N, U]) BottomCenter() Vec2[N, U] { return r.Center().MoveY(r.Max()) }

// LeftCenter is the midpoint of the left edge.
func (r Rect[N, U]) LeftCenter() Vec2[N, U] { return r.Center().MoveX(r.Min()) }

// RightCenter is the midpoint of the right edge.
func (r Rect[N, U]) RightCenter() Vec2[N, U] { return r.Center().MoveX(r.Max()) }

// --- Predicates ------------------------------------------------------------

// Contains reports whether position p lies inside r. The interval is
// half-open on both axes, min ≤ p < max, matching image.Rectangle: a point
// on the max edge is outside.
func (r Rect[N, U]) Contains(p Vec2[N, U]) bool {
	lo, hi := r.Min(), r.Max()
	return lo.x <= p.x && p.x < hi.x && lo.y <= p.y && p.y < hi.y
}

// ContainsRect reports whether o lies entirely inside r, bounds inclusive
// on both sides, so every rectangle contains itself.
func (r Rect[N, U]) ContainsRect(o Rect[N, U]) bool {
	lo, hi := r.Min(), r.Max()
	olo, ohi := o.Min(), o.Max()
	return lo.x <= olo.x && ohi.x <= hi.x && lo.y <= olo.y && ohi.y <= hi.y
}

// Intersects reports whether the closed extents of r and o overlap. Exact
// edge-touching counts as intersecting.
func (r Rect[N, U]) Intersects(o Rect[N, U]) bool {
	lo, hi := r.Min(), r.Max()
	olo, ohi := o.Min(), o.Max()
	return lo.x <= ohi.x && hi.x >= olo.x && lo.y <= ohi.y && hi.y >= olo.y
}

// Intersection returns the overlapping region: the elementwise maximum of
// the mins and minimum of the maxes. If r and o do not overlap the result
// has negative size; callers check IsEmpty or IsNegative afterward.
func (r Rect[N, U]) Intersection(o Rect[N, U]) Rect[N, U] {
	return RectMinMax(r.Min().Max(o.Min()), r.Max().Min(o.Max()))
}

// IsNegative reports whether the rectangle is inverted on either axis.
func (r Rect[N, U]) IsNegative() bool {
	lo, hi := r.Min(), r.Max()
	return hi.x < lo.x || hi.y < lo.y
}

// IsEmpty reports whether the rectangle fails to have strictly positive
// extent on both axes. Unlike IsNegative this also catches zero area.
func (r Rect[N, U]) IsEmpty() bool {
	lo, hi := r.Min(), r.Max()
	return !(hi.x > lo.x && hi.y > lo.y)
}

// --- Resizing and movement -------------------------------------------------

// Shrink moves both edges of each axis inward by half of v, keeping the
// center fixed: the origin moves by +v/2 and the size by -v. For integer
// element types the half-offset truncates.
func (r Rect[N, U]) Shrink(v Vec2[N, U]) Rect[N, U] {
	unit.CheckCompatible(r.Unit(), v.Unit())
	return Rect[N, U]{origin: r.origin.Add(v.DivN(N(2))), size: r.size.Sub(v)}
}

// Expand moves both edges of each axis outward by half of v, keeping the
// center fixed.
func (r Rect[N, U]) Expand(v Vec2[N, U]) Rect[N, U] {
	unit.CheckCompatible(r.Unit(), v.Unit())
	return Rect[N, U]{origin: r.origin.Sub(v.DivN(N(2))), size: r.size.Add(v)}
}

// ShrinkN shrinks both axes by n.
func (r Rect[N, U]) ShrinkN(n N) Rect[N, U] { return r.Shrink(VecIn[U](n, n)) }

// ExpandN expands both axes by n.
func (r Rect[N, U]) ExpandN(n N) Rect[N, U] { return r.Expand(VecIn[U](n, n)) }

// Translate moves the origin by v, leaving the size unchanged (tags
// checked). Compare AddVec, which applies v to origin and size alike.
func (r Rect[N, U]) Translate(v Vec2[N, U]) Rect[N, U] {
	return Rect[N, U]{origin: r.origin.Add(v), size: r.size}
}

// --- Ordering --------------------------------------------------------------

// Cmp orders rectangles lexicographically: origin first, then size, each
// under Vec2's lexicographic order.
func (r Rect[N, U]) Cmp(o Rect[N, U]) int {
	if c := r.origin.Cmp(o.origin); c != 0 {
		return c
	}
	return r.size.Cmp(o.size)
}

func (r Rect[N, U]) String() string {
	return fmt.Sprintf("{(%v, %v) (%v, %v)}%s",
		r.origin.x, r.origin.y, r.size.x, r.size.y, r.Unit().Symbol())
}

// --- Arithmetic ------------------------------------------------------------

func (r Rect[N, U]) combine(o Rect[N, U], op func(N, N) N) Rect[N, U] {
	unit.CheckCompatible(r.Unit(), o.Unit())
	return Rect[N, U]{
		origin: Vec2[N, U]{x: op(r.origin.x, o.origin.x), y: op(r.origin.y, o.origin.y)},
		size:   Vec2[N, U]{x: op(r.size.x, o.size.x), y: op(r.size.y, o.size.y)},
	}
}

// combineVec applies a vector operand to origin and size alike.
func (r Rect[N, U]) combineVec(v Vec2[N, U], op func(N, N) N) Rect[N, U] {
	unit.CheckCompatible(r.Unit(), v.Unit())
	return Rect[N, U]{
		origin: Vec2[N, U]{x: op(r.origin.x, v.x), y: op(r.origin.y, v.y)},
		size:   Vec2[N, U]{x: op(r.size.x, v.x), y: op(r.size.y, v.y)},
	}
}

func (r Rect[N, U]) combineN(n N, op func(N, N) N) Rect[N, U] {
	return Rect[N, U]{
		origin: Vec2[N, U]{x: op(r.origin.x, n), y: op(r.origin.y, n)},
		size:   Vec2[N, U]{x: op(r.size.x, n), y: op(r.size.y, n)},
	}
}

// Add returns the componentwise sum of origins and sizes (tags checked).
func (r Rect[N, U]) Add(o Rect[N, U]) Rect[N, U] { return r.combine(o, num.Add[N]) }

// Sub returns the componentwise difference of origins and sizes (tags checked).
func (r Rect[N, U]) Sub(o Rect[N, U]) Rect[N, U] { return r.combine(o, num.Sub[N]) }

// Mul returns the componentwise product of origins and sizes (tags checked).
func (r Rect[N, U]) Mul(o Rect[N, U]) Rect[N, U] { return r.combine(o, num.Mul[N]) }

// Div returns the componentwise quotient of origins and sizes (tags checked).
func (r Rect[N, U]) Div(o Rect[N, U]) Rect[N, U] { return r.combine(o, num.Div[N]) }

// Rem returns the componentwise remainder of origins and sizes (tags checked).
func (r Rect[N, U]) Rem(o Rect[N, U]) Rect[N, U] { return r.combine(o, num.Rem[N]) }

// AddVec adds v to the origin and the size alike (tags checked).
func (r Rect[N, U]) AddVec(v Vec2[N, U]) Rect[N, U] { return r.combineVec(v, num.Add[N]) }

// SubVec subtracts v from the origin and the size alike (tags checked).
func (r Rect[N, U]) SubVec(v Vec2[N, U]) Rect[N, U] { return r.combineVec(v, num.Sub[N]) }

// MulVec multiplies the origin and the size by v lanewise (tags checked).
func (r Rect[N, U]) MulVec(v Vec2[N, U]) Rect[N, U] { return r.combineVec(v, num.Mul[N]) }

// DivVec divides the origin and the size by v lanewise (tags checked).
func (r Rect[N, U]) DivVec(v Vec2[N, U]) Rect[N, U] { return r.combineVec(v, num.Div[N]) }

// RemVec reduces the origin and the size mod v lanewise (tags checked).
func (r Rect[N, U]) RemVec(v Vec2[N, U]) Rect[N, U] { return r.combineVec(v, num.Rem[N]) }

// AddN adds n to every component.
func (r Rect[N, U]) AddN(n N) Rect[N, U] { return r.combineN(n, num.Add[N]) }

// SubN subtracts n from every component.
func (r Rect[N, U]) SubN(n N) Rect[N, U] { return r.combineN(n, num.Sub[N]) }

// MulN scales every component by n.
func (r Rect[N, U]) MulN(n N) Rect[N, U] { return r.combineN(n, num.Mul[N]) }

// DivN divides every component by n.
func (r Rect[N, U]) DivN(n N) Rect[N, U] { return r.combineN(n, num.Div[N]) }

// RemN reduces every component mod n.
func (r Rect[N, U]) RemN(n N) Rect[N, U] { return r.combineN(n, num.Rem[N]) }

// AddAssign replaces r with r.Add(o).
func (r *Rect[N, U]) AddAssign(o Rect[N, U]) { *r = r.Add(o) }

// SubAssign replaces r with r.Sub(o).
func (r *Rect[N, U]) SubAssign(o Rect[N, U]) { *r = r.Sub(o) }

// MulAssign replaces r with r.Mul(o).
func (r *Rect[N, U]) MulAssign(o Rect[N, U]) { *r = r.Mul(o) }

// DivAssign replaces r with r.Div(o).
func (r *Rect[N, U]) DivAssign(o Rect[N, U]) { *r = r.Div(o) }

// RemAssign replaces r with r.Rem(o).
func (r *Rect[N, U]) RemAssign(o Rect[N, U]) { *r = r.Rem(o) }

// AddVecAssign replaces r with r.AddVec(v).
func (r *Rect[N, U]) AddVecAssign(v Vec2[N, U]) { *r = r.AddVec(v) }

// SubVecAssign replaces r with r.SubVec(v).
func (r *Rect[N, U]) SubVecAssign(v Vec2[N, U]) { *r = r.SubVec(v) }

// MulVecAssign replaces r with r.MulVec(v).
func (r *Rect[N, U]) MulVecAssign(v Vec2[N, U]) { *r = r.MulVec(v) }

// DivVecAssign replaces r with r.DivVec(v).
func (r *Rect[N, U]) DivVecAssign(v Vec2[N, U]) { *r = r.DivVec(v) }

// RemVecAssign replaces r with r.RemVec(v).
func (r *Rect[N, U]) RemVecAssign(v Vec2[N, U]) { *r = r.RemVec(v) }

// AddNAssign replaces r with r.AddN(n).
func (r *Rect[N, U]) AddNAssign(n N) { *r = r.AddN(n) }

// SubNAssign replaces r with r.SubN(n).
func (r *Rect[N, U]) SubNAssign(n N) { *r = r.SubN(n) }

// MulNAssign replaces r with r.MulN(n).
func (r *Rect[N, U]) MulNAssign(n N) { *r = r.MulN(n) }

// DivNAssign replaces r with r.DivN(n).
func (r *Rect[N, U]) DivNAssign(n N) { *r = r.DivN(n) }

// RemNAssign replaces r with r.RemN(n).
func (r *Rect[N, U]) RemNAssign(n N) { *r = r.RemN(n) }
