/*
Package compat converts external geometry representations into mathie
carriers.

All conversions are one-directional (into Vec2/Rect) and copy coordinates
verbatim with no scaling; the fixed-point coordinate types of
golang.org/x/image/math/fixed stay in their own element type, which the
Number constraint admits directly. Converted values carry the unit.None
tag. The reverse direction is the collaborator's concern and is not
provided here.
*/
package compat

import (
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/alphaqu/mathie"
	"github.com/alphaqu/mathie/unit"
)

// FromImagePoint copies an image.Point into an untagged vector.
func FromImagePoint(p image.Point) mathie.Vec2[int, unit.None] {
	return mathie.Vec(p.X, p.Y)
}

// FromImageRect converts an image.Rectangle through its min/max corners.
func FromImageRect(r image.Rectangle) mathie.Rect[int, unit.None] {
	return mathie.RectMinMax(FromImagePoint(r.Min), FromImagePoint(r.Max))
}

// FromFixedPoint copies a 26.6 fixed-point point into an untagged vector of
// fixed.Int26_6 readings.
func FromFixedPoint(p fixed.Point26_6) mathie.Vec2[fixed.Int26_6, unit.None] {
	return mathie.Vec(p.X, p.Y)
}

// FromFixedRect converts a 26.6 fixed-point rectangle through its min/max
// corners.
func FromFixedRect(r fixed.Rectangle26_6) mathie.Rect[fixed.Int26_6, unit.None] {
	return mathie.RectMinMax(FromFixedPoint(r.Min), FromFixedPoint(r.Max))
}

// FromFixedPoint52 copies a 52.12 fixed-point point into an untagged vector
// of fixed.Int52_12 readings.
func FromFixedPoint52(p fixed.Point52_12) mathie.Vec2[fixed.Int52_12, unit.None] {
	return mathie.Vec(p.X, p.Y)
}

// FromFixedRect52 converts a 52.12 fixed-point rectangle through its
// min/max corners.
func FromFixedRect52(r fixed.Rectangle52_12) mathie.Rect[fixed.Int52_12, unit.None] {
	return mathie.RectMinMax(FromFixedPoint52(r.Min), FromFixedPoint52(r.Max))
}
