package mathie

import (
	"fmt"

	"github.com/alphaqu/mathie/num"
	"github.com/alphaqu/mathie/unit"
)

// Value is a single numeric reading of element type N tagged with unit U.
//
// The tag contributes no storage; it is materialized as the zero tag value
// on demand. A Value is immutable: every operation returns a new Value, and
// the tag survives every unary and same-tag binary operation unchanged. Only
// an explicit conversion (ConvertValue) produces a differently tagged Value.
type Value[N num.Number, U unit.Unit] struct {
	val N
}

// Val constructs an untagged Value.
func Val[N num.Number](x N) Value[N, unit.None] {
	return Value[N, unit.None]{val: x}
}

// ValIn constructs a Value tagged with unit U:
//
//	width := mathie.ValIn[unit.Centimeter](250)
func ValIn[U unit.Unit, N num.Number](x N) Value[N, U] {
	return Value[N, U]{val: x}
}

// Val returns the raw numeric reading.
func (v Value[N, U]) Val() N { return v.val }

// Unit returns the unit tag.
func (v Value[N, U]) Unit() U {
	var u U
	return u
}

// Untagged re-tags the reading with unit.None, keeping the number as is.
func (v Value[N, U]) Untagged() Value[N, unit.None] {
	return Value[N, unit.None]{val: v.val}
}

// Cmp orders v against o by reading, following the num.Compare contract.
// Values are comparable with ==; equality is equality of readings.
func (v Value[N, U]) Cmp(o Value[N, U]) int {
	return num.Compare(v.val, o.val)
}

func (v Value[N, U]) String() string {
	return fmt.Sprintf("%v%s", v.val, v.Unit().Symbol())
}

// --- Arithmetic ------------------------------------------------------------

// combine is the single checked kernel behind the five same-type operators.
func (v Value[N, U]) combine(o Value[N, U], op func(N, N) N) Value[N, U] {
	unit.CheckCompatible(v.Unit(), o.Unit())
	return Value[N, U]{val: op(v.val, o.val)}
}

// combineN is the unchecked kernel for bare-number operands: scaling by a
// plain number neither changes nor needs to check the tag.
func (v Value[N, U]) combineN(n N, op func(N, N) N) Value[N, U] {
	return Value[N, U]{val: op(v.val, n)}
}

// Add returns v + o (tags checked for compatibility).
func (v Value[N, U]) Add(o Value[N, U]) Value[N, U] { return v.combine(o, num.Add[N]) }

// Sub returns v - o (tags checked for compatibility).
func (v Value[N, U]) Sub(o Value[N, U]) Value[N, U] { return v.combine(o, num.Sub[N]) }

// Mul returns v * o (tags checked for compatibility).
func (v Value[N, U]) Mul(o Value[N, U]) Value[N, U] { return v.combine(o, num.Mul[N]) }

// Div returns v / o (tags checked for compatibility).
func (v Value[N, U]) Div(o Value[N, U]) Value[N, U] { return v.combine(o, num.Div[N]) }

// Rem returns v mod o (tags checked for compatibility).
func (v Value[N, U]) Rem(o Value[N, U]) Value[N, U] { return v.combine(o, num.Rem[N]) }

// AddN returns v + n.
func (v Value[N, U]) AddN(n N) Value[N, U] { return v.combineN(n, num.Add[N]) }

// SubN returns v - n.
func (v Value[N, U]) SubN(n N) Value[N, U] { return v.combineN(n, num.Sub[N]) }

// MulN returns v * n.
func (v Value[N, U]) MulN(n N) Value[N, U] { return v.combineN(n, num.Mul[N]) }

// DivN returns v / n.
func (v Value[N, U]) DivN(n N) Value[N, U] { return v.combineN(n, num.Div[N]) }

// RemN returns v mod n.
func (v Value[N, U]) RemN(n N) Value[N, U] { return v.combineN(n, num.Rem[N]) }

// The assignment forms recompute and replace.

// AddAssign replaces v with v + o.
func (v *Value[N, U]) AddAssign(o Value[N, U]) { *v = v.Add(o) }

// SubAssign replaces v with v - o.
func (v *Value[N, U]) SubAssign(o Value[N, U]) { *v = v.Sub(o) }

// MulAssign replaces v with v * o.
func (v *Value[N, U]) MulAssign(o Value[N, U]) { *v = v.Mul(o) }

// DivAssign replaces v with v / o.
func (v *Value[N, U]) DivAssign(o Value[N, U]) { *v = v.Div(o) }

// RemAssign replaces v with v mod o.
func (v *Value[N, U]) RemAssign(o Value[N, U]) { *v = v.Rem(o) }

// AddNAssign replaces v with v + n.
func (v *Value[N, U]) AddNAssign(n N) { *v = v.AddN(n) }

// SubNAssign replaces v with v - n.
func (v *Value[N, U]) SubNAssign(n N) { *v = v.SubN(n) }

// MulNAssign replaces v with v * n.
func (v *Value[N, U]) MulNAssign(n N) { *v = v.MulN(n) }

// DivNAssign replaces v with v / n.
func (v *Value[N, U]) DivNAssign(n N) { *v = v.DivN(n) }

// RemNAssign replaces v with v mod n.
func (v *Value[N, U]) RemNAssign(n N) { *v = v.RemN(n) }
