/*
Package unit defines the unit-tag protocol of mathie.

A tag is a zero-size marker type attached to a numeric reading at the type
level. Tags carry no runtime state: carriers never store them and
materialize the zero value on demand. A tag that also declares a base
factor (Prefix) supports lossless conversion into any other Prefix tag of
the same dimension.

Mixing two different tag types in one arithmetic operation is already a
compile error in Go; the runtime compatibility check exists so a tag type
can opt out of combination for reasons of its own (see Compatible).
*/
package unit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathie'
func tracer() tracing.Trace {
	return tracing.Select("mathie")
}
