//go:build go1.18
// +build go1.18

package ratmath_test

import (
	"testing"

	"github.com/zephyrtronium/ratmath"
)

func FuzzParse(f *testing.F) {
	f.Add("1/2")
	f.Add("-0..1/2:3")
	f.Add("[1+{2}]**2")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		ratmath.Parse(s)
	})
}
