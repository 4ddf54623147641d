package exacteval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationalNormalization(t *testing.T) {
	cases := []struct {
		name string
		num  int64
		den  int64
		want string
	}{
		{"reduce", 6, 8, "3/4"},
		{"neg-num", -6, 8, "-3/4"},
		{"neg-den", 6, -8, "-3/4"},
		{"both-neg", -6, -8, "3/4"},
		{"zero", 0, 5, "0"},
		{"zero-neg-den", 0, -5, "0"},
		{"integer", 12, 4, "3"},
		{"already-reduced", 3, 7, "3/7"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRat(big.NewInt(c.num), big.NewInt(c.den))
			assert.Equal(t, c.want, r.String())
		})
	}
}

func TestRationalInvariants(t *testing.T) {
	// For every representable input the denominator must be positive and
	// coprime with the numerator, and zero must be 0/1.
	for n := int64(-12); n <= 12; n++ {
		for d := int64(-12); d <= 12; d++ {
			if d == 0 {
				continue
			}
			r := newRat(big.NewInt(n), big.NewInt(d))
			if r.den.Sign() <= 0 {
				t.Fatalf("newRat(%d, %d): non-positive denominator %v", n, d, r.den)
			}
			g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.num), r.den)
			if g.Cmp(bigOne) != 0 {
				t.Fatalf("newRat(%d, %d): gcd %v, want 1", n, d, g)
			}
			if n == 0 && r.den.Cmp(bigOne) != 0 {
				t.Fatalf("newRat(0, %d): zero not normalized to 0/1", d)
			}
		}
	}
}

func TestRationalArithmetic(t *testing.T) {
	half := newRat(big.NewInt(1), big.NewInt(2))
	third := newRat(big.NewInt(1), big.NewInt(3))
	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "1/6", half.Mul(third).String())
	q, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, "3/2", q.String())
	assert.Equal(t, "-1/2", half.Neg().String())
	assert.True(t, half.Sub(half).IsZero())
}

func TestRationalDivByZero(t *testing.T) {
	half := newRat(big.NewInt(1), big.NewInt(2))
	_, err := half.Div(ratZero())
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestParseRational(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"0", "0"},
		{"3", "3"},
		{"42", "42"},
		{"0.5", "1/2"},
		{"-0.5", "-1/2"},
		{".25", "1/4"},
		{"0.1", "1/10"},
		{"2.50", "5/2"},
		{"-3", "-3"},
		{"123456789123456789123456789", "123456789123456789123456789"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			r, err := ParseRational(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, r.String())
		})
	}
}

func TestParseRationalInvalid(t *testing.T) {
	for _, src := range []string{"", ".", "5.", "-", "1.2.3", "1e5", "abc"} {
		t.Run(src, func(t *testing.T) {
			_, err := ParseRational(src)
			assert.Error(t, err)
		})
	}
}
