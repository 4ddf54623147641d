//go:build go1.18
// +build go1.18

package exacteval_test

import (
	"testing"

	"github.com/mathslate/exacteval"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("1/3+1/3+1/3")
	f.Add("sqrt(2)^2")
	f.Add("sin(30)")
	f.Add("tan(90)")
	f.Add("1/0")
	f.Fuzz(func(t *testing.T, s string) {
		exacteval.Evaluate(s, exacteval.Exact, exacteval.Degrees)
		exacteval.Evaluate(s, exacteval.Decimal, exacteval.Radians)
	})
}
