package vmath

import (
	"github.com/lucasb-eyer/go-colorful"
)

// MustHex parses a "#rrggbb" palette constant, panicking on malformed input
// Only for package-level color tables built from parameter constants
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("vmath: bad hex color " + s + ": " + err.Error())
	}
	return c
}
