package mathie

import (
	"testing"

	"github.com/alphaqu/mathie/unit"
)

func rectOf(ox, oy, sx, sy int) Rect[int, unit.None] {
	return NewRect(Vec(ox, oy), Vec(sx, sy))
}

func TestRectFromMinMax(t *testing.T) {
	r := RectMinMax(Vec(0, 0), Vec(2, 3))
	if r.Size() != Vec(2, 3) {
		t.Fatalf("size = %v, want (2, 3)", r.Size())
	}
	if r.Max() != Vec(2, 3) {
		t.Fatalf("max = %v, want (2, 3)", r.Max())
	}
	if r.Min() != Vec(0, 0) {
		t.Fatalf("min = %v, want (0, 0)", r.Min())
	}
}

func TestRectConventionConstants(t *testing.T) {
	// Pins the unit-rectangle convention: origin zero, size one.
	u := UnitSquare[int, unit.None]()
	if u.Origin() != Vec(0, 0) || u.Size() != Vec(1, 1) {
		t.Fatalf("UnitSquare = %v, want origin (0,0) size (1,1)", u)
	}
	z := ZeroRect[int, unit.None]()
	if z.Origin() != Vec(0, 0) || z.Size() != Vec(0, 0) {
		t.Fatalf("ZeroRect = %v", z)
	}
}

func TestRectDerivedPoints(t *testing.T) {
	r := rectOf(1, 2, 4, 6)
	if r.TopLeft() != Vec(1, 2) || r.BottomRight() != Vec(5, 8) {
		t.Fatalf("corners broken: %v %v", r.TopLeft(), r.BottomRight())
	}
	if r.TopRight() != Vec(5, 2) || r.BottomLeft() != Vec(1, 8) {
		t.Fatalf("mixed corners broken: %v %v", r.TopRight(), r.BottomLeft())
	}
	if r.Center() != Vec(3, 5) {
		t.Fatalf("center = %v, want (3, 5)", r.Center())
	}
	if r.TopCenter() != Vec(3, 2) || r.BottomCenter() != Vec(3, 8) {
		t.Fatalf("vertical edge centers broken")
	}
	if r.LeftCenter() != Vec(1, 5) || r.RightCenter() != Vec(5, 5) {
		t.Fatalf("horizontal edge centers broken")
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := rectOf(0, 0, 2, 2)
	if !r.Contains(Vec(0, 0)) {
		t.Fatalf("min corner must be inside")
	}
	if !r.Contains(Vec(1, 1)) {
		t.Fatalf("interior point must be inside")
	}
	if r.Contains(Vec(2, 2)) || r.Contains(Vec(2, 0)) || r.Contains(Vec(0, 2)) {
		t.Fatalf("max edge must be outside (half-open)")
	}
	if r.Contains(Vec(-1, 1)) {
		t.Fatalf("point left of the rectangle must be outside")
	}
}

func TestRectContainsRect(t *testing.T) {
	r := rectOf(0, 0, 4, 4)
	if !r.ContainsRect(r) {
		t.Fatalf("a rectangle must contain itself")
	}
	if !r.ContainsRect(rectOf(1, 1, 2, 2)) {
		t.Fatalf("interior rectangle must be contained")
	}
	// Bounds are inclusive for rectangle containment.
	if !r.ContainsRect(rectOf(2, 2, 2, 2)) {
		t.Fatalf("rectangle reaching the max edge must be contained")
	}
	if r.ContainsRect(rectOf(3, 3, 2, 2)) {
		t.Fatalf("overhanging rectangle must not be contained")
	}
}

func TestRectIntersects(t *testing.T) {
	r := rectOf(0, 0, 1, 1)
	if !r.Intersects(r) {
		t.Fatalf("a rectangle must intersect itself")
	}
	// Exact edge-touching counts as intersecting.
	if !r.Intersects(rectOf(1, 1, 1, 1)) {
		t.Fatalf("corner-touching rectangles must intersect")
	}
	if r.Intersects(rectOf(2, 2, 1, 1)) {
		t.Fatalf("separated rectangles must not intersect")
	}
}

func TestRectIntersection(t *testing.T) {
	a := rectOf(0, 0, 4, 4)
	b := rectOf(2, 2, 4, 4)
	got := a.Intersection(b)
	if got != rectOf(2, 2, 2, 2) {
		t.Fatalf("intersection = %v, want origin (2,2) size (2,2)", got)
	}
	// Disjoint inputs produce a negative-size result for the caller to test.
	miss := rectOf(0, 0, 1, 1).Intersection(rectOf(3, 3, 1, 1))
	if !miss.IsNegative() || !miss.IsEmpty() {
		t.Fatalf("disjoint intersection must be negative and empty, got %v", miss)
	}
}

func TestRectNegativeAndEmpty(t *testing.T) {
	inverted := rectOf(0, 0, -1, -1)
	if !inverted.IsNegative() || !inverted.IsEmpty() {
		t.Fatalf("negative-size rectangle must be negative and empty")
	}
	flat := rectOf(0, 0, 0, 0)
	if flat.IsNegative() {
		t.Fatalf("zero-size rectangle is not negative")
	}
	if !flat.IsEmpty() {
		t.Fatalf("zero-size rectangle is empty")
	}
	if rectOf(0, 0, 1, 1).IsEmpty() {
		t.Fatalf("positive-extent rectangle is not empty")
	}
}

func TestRectShrinkExpandKeepCenter(t *testing.T) {
	r := rectOf(0, 0, 10, 10)
	shrunk := r.Shrink(Vec(4, 4))
	if shrunk != rectOf(2, 2, 6, 6) {
		t.Fatalf("Shrink = %v, want origin (2,2) size (6,6)", shrunk)
	}
	if shrunk.Center() != r.Center() {
		t.Fatalf("Shrink moved the center")
	}
	grown := r.ExpandN(2)
	if grown != rectOf(-1, -1, 12, 12) {
		t.Fatalf("ExpandN = %v, want origin (-1,-1) size (12,12)", grown)
	}
	if grown.Center() != r.Center() {
		t.Fatalf("Expand moved the center")
	}
}

func TestRectTranslate(t *testing.T) {
	r := rectOf(1, 1, 3, 3).Translate(Vec(10, 20))
	if r.Origin() != Vec(11, 21) || r.Size() != Vec(3, 3) {
		t.Fatalf("Translate = %v", r)
	}
}

func TestRectArithmetic(t *testing.T) {
	a := rectOf(1, 2, 3, 4)
	if a.Add(rectOf(10, 20, 30, 40)) != rectOf(11, 22, 33, 44) {
		t.Fatalf("rect + rect broken")
	}
	// A vector operand hits origin and size alike.
	if a.AddVec(Vec(1, 1)) != rectOf(2, 3, 4, 5) {
		t.Fatalf("rect + vec broken")
	}
	if a.MulN(2) != rectOf(2, 4, 6, 8) {
		t.Fatalf("rect * n broken")
	}
	b := a
	b.SubVecAssign(Vec(1, 2))
	if b != rectOf(0, 0, 2, 2) {
		t.Fatalf("SubVecAssign = %v", b)
	}
}

func TestRectCmp(t *testing.T) {
	if rectOf(0, 0, 1, 1).Cmp(rectOf(0, 1, 0, 0)) != -1 {
		t.Fatalf("origin must order first")
	}
	if rectOf(0, 0, 1, 1).Cmp(rectOf(0, 0, 2, 0)) != -1 {
		t.Fatalf("size must break origin ties")
	}
	if rectOf(1, 2, 3, 4).Cmp(rectOf(1, 2, 3, 4)) != 0 {
		t.Fatalf("equal rectangles must compare equal")
	}
}

func TestRectIncompatibleTagHalts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected incompatible-tag rect arithmetic to panic")
		}
	}()
	a := NewRect(VecIn[grump](0, 0), VecIn[grump](1, 1))
	a.Add(a)
}

func TestRectString(t *testing.T) {
	r := NewRect(VecIn[unit.Centimeter](1, 2), VecIn[unit.Centimeter](3, 4))
	if s := r.String(); s != "{(1, 2) (3, 4)}cm" {
		t.Fatalf("String() = %q", s)
	}
}
