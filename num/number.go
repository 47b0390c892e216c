package num

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the capability every carrier element type must provide: the four
// arithmetic operators plus remainder, a total order, and conversion between
// element types (see Convert).
//
// The tilde forms of the constraint admit named numeric types, e.g. the
// fixed-point coordinate types of golang.org/x/image/math/fixed.
type Number interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of N.
func Zero[N Number]() N {
	var zero N
	return zero
}

// One returns the multiplicative identity of N.
func One[N Number]() N {
	return N(1)
}

// --- Arithmetic kernels ----------------------------------------------------

// The five operators exist exactly once, as first-class funcs. The carrier
// types bind them to their lane-combination kernels instead of spelling out
// per-operator method bodies.

// Add returns a + b.
func Add[N Number](a, b N) N { return a + b }

// Sub returns a - b.
func Sub[N Number](a, b N) N { return a - b }

// Mul returns a * b.
func Mul[N Number](a, b N) N { return a * b }

// Div returns a / b. Integer division truncates; float division by zero
// follows IEEE 754.
func Div[N Number](a, b N) N { return a / b }

// Rem returns the remainder of a / b. For float element types this is
// math.Mod; for integers it is the native % with its sign semantics.
func Rem[N Number](a, b N) N {
	if IsFloat[N]() {
		return N(math.Mod(float64(a), float64(b)))
	}
	// a/b truncates for integer N, so this is exactly a % b.
	return a - a/b*b
}

// --- Ordering --------------------------------------------------------------

// Compare orders a and b, returning -1, 0 or +1. NaN compares before any
// other value and equal to itself (the cmp.Compare contract).
func Compare[N Number](a, b N) int {
	return cmp.Compare(a, b)
}

// Min returns the smaller of a and b under Compare.
func Min[N Number](a, b N) N {
	if Compare(a, b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b under Compare.
func Max[N Number](a, b N) N {
	if Compare(a, b) >= 0 {
		return a
	}
	return b
}

// Abs returns the absolute value of v.
func Abs[N Number](v N) N {
	if v < Zero[N]() {
		return -v
	}
	return v
}

// --- Element-type probes ---------------------------------------------------

// The probes classify N with plain arithmetic; constants beyond 0..3 cannot
// appear here because a constant converted to a type parameter must be
// representable in every type of the constraint's type set (int8 included).

// IsFloat reports whether N is a floating-point type.
func IsFloat[N Number]() bool {
	return N(1)/N(2) != Zero[N]()
}

// isFloat32 reports whether a float type N carries only single precision.
// Meaningful only when IsFloat[N] is true.
func isFloat32[N Number]() bool {
	return float64(N(1)/N(3)) != 1.0/3.0
}

// isUnsigned reports whether an integer type N is unsigned.
func isUnsigned[N Number]() bool {
	return N(0)-N(1) > Zero[N]()
}

// bounds returns the representable range of an integer type N as float64
// bounds: lo inclusive, hi exclusive. Both are exact powers of two and thus
// exactly representable in float64 for every fixed-size integer type.
func bounds[N Number]() (lo, hi float64) {
	if isUnsigned[N]() {
		m := N(0) - N(1)
		return 0, (float64(m/N(2)) + 1) * 2
	}
	// Find the highest positive power of two; the type minimum is -2x.
	x := N(1)
	for x*N(2) > x {
		x *= N(2)
	}
	return -float64(x) * 2, float64(x) * 2
}
