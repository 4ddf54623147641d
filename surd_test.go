package exacteval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSquarefree(t *testing.T) {
	cases := []struct {
		n, outside, radicand int64
	}{
		{0, 1, 0},
		{1, 1, 1},
		{2, 1, 2},
		{3, 1, 3},
		{4, 2, 1},
		{8, 2, 2},
		{9, 3, 1},
		{12, 2, 3},
		{18, 3, 2},
		{49, 7, 1},
		{50, 5, 2},
		{72, 6, 2},
		{75, 5, 3},
		{360, 6, 10},
		{9801, 99, 1},
		{9973, 1, 9973}, // prime
		{2 * 9973 * 9973, 9973, 2},
	}
	for _, c := range cases {
		out, rad := splitSquarefree(big.NewInt(c.n))
		assert.Equal(t, c.outside, out.Int64(), "outside of %d", c.n)
		assert.Equal(t, c.radicand, rad.Int64(), "radicand of %d", c.n)
	}
}

func TestSplitSquarefreeReconstructs(t *testing.T) {
	// n must always equal outside² × radicand.
	for n := int64(1); n <= 2000; n++ {
		out, rad := splitSquarefree(big.NewInt(n))
		back := new(big.Int).Mul(out, out)
		back.Mul(back, rad)
		if back.Int64() != n {
			t.Fatalf("splitSquarefree(%d) = (%v, %v): %v² × %v = %v", n, out, rad, out, rad, back)
		}
		// The radicand must be square-free.
		for p := int64(2); p*p <= rad.Int64(); p++ {
			if rad.Int64()%(p*p) == 0 {
				t.Fatalf("splitSquarefree(%d): radicand %v divisible by %d²", n, rad, p)
			}
		}
	}
}
