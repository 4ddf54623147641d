//go:build go1.18
// +build go1.18

package exacteval_test

import (
	"testing"

	"github.com/mathslate/exacteval"
)

func FuzzParse(f *testing.F) {
	f.Add("1/3+1/3+1/3")
	f.Add("sqrt(8)")
	f.Add("sin(30)")
	f.Add("(1+2")
	f.Add("√(2)*√(3)")
	f.Fuzz(func(t *testing.T, s string) {
		exacteval.Parse(s)
	})
}
