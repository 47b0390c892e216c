package mathie

import (
	"math"
	"math/rand"
	"testing"

	"github.com/alphaqu/mathie/unit"
)

func TestVec2Lanes(t *testing.T) {
	v := VecIn[unit.Centimeter](3, 7)
	if v.X().Val() != 3 || v.Y().Val() != 7 {
		t.Fatalf("lane access broken: %v", v)
	}
	if v.X().Unit().Symbol() != "cm" {
		t.Fatalf("lane lost the tag")
	}
	if v.XY() != v {
		t.Fatalf("XY must be the identity")
	}
	if v.YX() != VecIn[unit.Centimeter](7, 3) {
		t.Fatalf("YX must swap lanes")
	}
	if v.Array() != [2]int{3, 7} {
		t.Fatalf("Array() = %v", v.Array())
	}
}

func TestVec2Identities(t *testing.T) {
	v := Vec(5, -3)
	if v.Add(ZeroVec2[int, unit.None]()) != v {
		t.Fatalf("v + 0 must equal v")
	}
	if v.MulN(1) != v {
		t.Fatalf("v * 1 must equal v")
	}
}

func TestVec2AddSubInverseRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a := Vec(r.Intn(2000)-1000, r.Intn(2000)-1000)
		b := Vec(r.Intn(2000)-1000, r.Intn(2000)-1000)
		if got := a.Add(b).Sub(b); got != a {
			t.Fatalf("(a+b)-b = %v, want %v (a=%v b=%v)", got, a, a, b)
		}
	}
}

func TestVec2Reductions(t *testing.T) {
	v := Vec(12, 4)
	if v.Sum().Val() != 16 || v.Diff().Val() != 8 || v.Product().Val() != 48 || v.Quotient().Val() != 3 {
		t.Fatalf("reductions broken: %v", v)
	}
	if v.MinVal().Val() != 4 || v.MaxVal().Val() != 12 {
		t.Fatalf("own-lane extremes broken: %v", v)
	}
}

func TestVec2MapForms(t *testing.T) {
	v := Vec(2, 5)
	double := func(n int) int { return n * 2 }
	if v.Map(double) != Vec(4, 10) {
		t.Fatalf("Map broken")
	}
	if v.MapX(double) != Vec(4, 5) {
		t.Fatalf("MapX broken")
	}
	if v.MapY(double) != Vec(2, 10) {
		t.Fatalf("MapY broken")
	}
}

func TestVec2LaneSubstitution(t *testing.T) {
	a := Vec(1, 2)
	b := Vec(30, 40)
	if a.MoveX(b) != Vec(30, 2) {
		t.Fatalf("MoveX broken")
	}
	if a.MoveY(b) != Vec(1, 40) {
		t.Fatalf("MoveY broken")
	}
}

func TestVec2ElementwiseExtremes(t *testing.T) {
	a := Vec(1, 9)
	b := Vec(5, 3)
	if a.Min(b) != Vec(1, 3) {
		t.Fatalf("elementwise Min = %v, want (1, 3)", a.Min(b))
	}
	if a.Max(b) != Vec(5, 9) {
		t.Fatalf("elementwise Max = %v, want (5, 9)", a.Max(b))
	}
}

func TestVec2BroadcastArithmetic(t *testing.T) {
	v := Vec(0.5, 0.5)
	if v.Add(Vec(1.0, 1.0)) != Vec(1.5, 1.5) {
		t.Fatalf("vector addition broken")
	}
	if v.AddN(2.0) != Vec(2.5, 2.5) {
		t.Fatalf("broadcast addition broken")
	}
	if Vec(7, 8).RemN(3) != Vec(1, 2) {
		t.Fatalf("broadcast remainder broken")
	}
}

func TestVec2AssignFormsRecompute(t *testing.T) {
	v := Vec(1, 2)
	v.AddAssign(Vec(10, 20))
	v.MulNAssign(2)
	if v != Vec(22, 44) {
		t.Fatalf("assign chain = %v, want (22, 44)", v)
	}
}

func TestVec2CmpIsLexicographic(t *testing.T) {
	// Pins the ordering decision: x decides first, y breaks ties. Under the
	// abandoned summed-comparison scheme (2,0) and (1,1) compared equal.
	if Vec(2, 0).Cmp(Vec(1, 1)) != 1 {
		t.Fatalf("(2,0) must order after (1,1)")
	}
	if Vec(1, 0).Cmp(Vec(1, 1)) != -1 {
		t.Fatalf("equal x must fall through to y")
	}
	if Vec(3, 4).Cmp(Vec(3, 4)) != 0 {
		t.Fatalf("equal vectors must compare equal")
	}
}

func TestVec2FloatOps(t *testing.T) {
	v := VecIn[unit.Meter](3.0, 4.0)
	if Hypot(v).Val() != 5 {
		t.Fatalf("Hypot = %v, want 5", Hypot(v).Val())
	}
	n := Normalize(v)
	if math.Abs(float64(n.X().Val())-0.6) > 1e-12 || math.Abs(float64(n.Y().Val())-0.8) > 1e-12 {
		t.Fatalf("Normalize = %v", n)
	}
	a := VecIn[unit.Meter](0.0, 0.0)
	b := VecIn[unit.Meter](10.0, 20.0)
	if LerpVec2(a, b, 0.5) != VecIn[unit.Meter](5.0, 10.0) {
		t.Fatalf("LerpVec2 broken")
	}
}

func TestVec2IncompatibleTagHalts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected incompatible-tag vector arithmetic to panic")
		}
	}()
	VecIn[grump](1, 1).Add(VecIn[grump](2, 2))
}

func TestVec2String(t *testing.T) {
	if s := VecIn[unit.Millimeter](210, 297).String(); s != "(210, 297)mm" {
		t.Fatalf("String() = %q", s)
	}
}

func BenchmarkVec2Add(b *testing.B) {
	v := VecIn[unit.Meter](1.0, 2.0)
	o := VecIn[unit.Meter](3.0, 4.0)
	for i := 0; i < b.N; i++ {
		v = v.Add(o).Sub(o)
	}
	_ = v
}

func BenchmarkVec2BroadcastMul(b *testing.B) {
	v := Vec(3, 4)
	for i := 0; i < b.N; i++ {
		v = v.MulN(3).DivN(3)
	}
	_ = v
}
