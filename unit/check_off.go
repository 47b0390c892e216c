//go:build nounitcheck

package unit

// CheckCompatible is compiled out under the nounitcheck build tag.
func CheckCompatible[U Unit](_, _ U) {}
