package compat

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/alphaqu/mathie"
)

func TestFromImagePoint(t *testing.T) {
	v := FromImagePoint(image.Pt(3, -7))
	if v != mathie.Vec(3, -7) {
		t.Fatalf("FromImagePoint = %v", v)
	}
}

func TestFromImageRect(t *testing.T) {
	r := FromImageRect(image.Rect(1, 2, 4, 8))
	if r.Origin() != mathie.Vec(1, 2) {
		t.Fatalf("origin = %v, want (1, 2)", r.Origin())
	}
	if r.Size() != mathie.Vec(3, 6) {
		t.Fatalf("size = %v, want (3, 6)", r.Size())
	}
	if r.Max() != mathie.Vec(4, 8) {
		t.Fatalf("max = %v, want (4, 8)", r.Max())
	}
}

func TestFromFixedPointKeepsRawCoordinates(t *testing.T) {
	// fixed.I(2) is 2<<6 = 128 in 26.6 raw units; no scaling happens here.
	p := fixed.P(2, 3)
	v := FromFixedPoint(p)
	if v.X().Val() != fixed.I(2) || v.Y().Val() != fixed.I(3) {
		t.Fatalf("FromFixedPoint = %v", v)
	}
	// The fixed-point type stays the element type, so its arithmetic and
	// the carrier's agree.
	if v.Add(v).X().Val() != fixed.I(4) {
		t.Fatalf("fixed-point lane arithmetic broken")
	}
}

func TestFromFixedRect(t *testing.T) {
	r := FromFixedRect(fixed.R(0, 0, 2, 3))
	if r.Size() != mathie.Vec(fixed.I(2), fixed.I(3)) {
		t.Fatalf("size = %v", r.Size())
	}
}

func TestFromFixedPoint52(t *testing.T) {
	p := fixed.Point52_12{X: 1 << 12, Y: 2 << 12}
	v := FromFixedPoint52(p)
	if v.X().Val() != 1<<12 || v.Y().Val() != 2<<12 {
		t.Fatalf("FromFixedPoint52 = %v", v)
	}
	r := FromFixedRect52(fixed.Rectangle52_12{
		Min: fixed.Point52_12{X: 0, Y: 0},
		Max: p,
	})
	if r.Max() != v {
		t.Fatalf("FromFixedRect52 max = %v, want %v", r.Max(), v)
	}
}
