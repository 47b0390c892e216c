/*
Package num is the element-type capability layer of mathie.

It defines the Number constraint all carrier types are parameterized over,
the identity elements and arithmetic kernels shared by every carrier, and a
checked conversion between any two element types.

Current status:
  - Number constraint over all fixed-size integer and float types,
  - identity elements and the five arithmetic kernels,
  - ordering helpers with the cmp.Compare NaN contract,
  - checked cross-type conversion with truncate-on-cast semantics.
*/
package num
