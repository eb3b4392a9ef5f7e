//go:build go1.18
// +build go1.18

package calcolatrice_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calcolatrice"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("1 + 1")
	f.Add("5!")
	f.Add("root 2 -4")
	f.Add("SEC 1e-300")
	f.Add("1 × 2")
	f.Fuzz(func(t *testing.T, s string) {
		r1, err1 := calcolatrice.Evaluate(s)
		r2, err2 := calcolatrice.Evaluate(s)
		if err1 != nil {
			var e *calcolatrice.Error
			if !errors.As(err1, &e) {
				t.Fatalf("%q: error %v is not *Error", s, err1)
			}
			if err2 == nil || err1.Error() != err2.Error() {
				t.Fatalf("%q: different errors %v and %v", s, err1, err2)
			}
			return
		}
		if err2 != nil || !(r1 == r2 || math.IsNaN(r1) && math.IsNaN(r2)) {
			t.Fatalf("%q: different results %g, %v and %g, %v", s, r1, err1, r2, err2)
		}
	})
}
