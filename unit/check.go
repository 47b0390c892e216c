//go:build !nounitcheck

package unit

import "fmt"

// CheckCompatible asserts that two tag values may be combined. A veto is a
// programming mistake (mixing category-incompatible quantities), not a
// runtime condition, so it halts immediately at the violating operation.
//
// Performance-sensitive builds compile the check out with the build tag
// `nounitcheck`.
func CheckCompatible[U Unit](a, b U) {
	if Compatible(a, b) {
		return
	}
	msg := fmt.Sprintf("unit: incompatible %q tags combined in one operation", a.Symbol())
	tracer().Errorf(msg)
	panic(msg)
}
