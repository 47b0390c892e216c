/*
Package mathie is a small generic geometry/units library.

It provides three immutable carrier types parameterized over an element type
N and a unit tag U: Value (one reading), Vec2 (an x/y pair sharing one tag),
and Rect (origin + size vectors). The tag is a zero-size marker from package
unit; it occupies no storage and exists to stop category mistakes (adding a
duration to a distance) at the earliest possible point and to support
lossless conversion between units of one dimension.

Delegation runs downward: Rect delegates unit-aware behavior to Vec2, Vec2
delegates scalar-lane behavior to Value, and Value performs the actual
compatibility checks and numeric casts (package num).

Every carrier is a pure value: no operation mutates its receiver, no
operation blocks, and independent copies may be used from any number of
goroutines without coordination.
*/
package mathie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathie'
func tracer() tracing.Trace {
	return tracing.Select("mathie")
}
