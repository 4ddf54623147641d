package exacteval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intVal(n int64) Value {
	return valueFromRat(ratFromInt(n))
}

func TestValueSqrt(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"zero", intVal(0), "0"},
		{"perfect-square", intVal(9), "3"},
		{"simplifies", intVal(8), "2*√2"},
		{"prime", intVal(7), "√7"},
		{"large", intVal(72), "6*√2"},
		{"fraction", valueFromRat(newRat(bigOne, big360)), "sqrt(1/360)"},
		{"negative", intVal(-4), "sqrt(-4)"},
		{"symbolic", symValue("pi"), "sqrt(pi)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.v.Sqrt().String())
		})
	}
}

func TestValueMulCrossTerms(t *testing.T) {
	sqrt2 := intVal(2).Sqrt()
	sqrt3 := intVal(3).Sqrt()
	sqrt6 := intVal(6).Sqrt()

	assert.Equal(t, "2", sqrt2.Mul(sqrt2).String())
	assert.Equal(t, "√6", sqrt2.Mul(sqrt3).String())
	assert.Equal(t, "3*√2", sqrt3.Mul(sqrt6).String())

	// (1+√2)(1-√2) = 1 - 2 = -1
	a := intVal(1).Add(sqrt2)
	b := intVal(1).Sub(sqrt2)
	assert.Equal(t, "-1", a.Mul(b).String())

	// (1+√2)² = 3 + 2√2
	assert.Equal(t, "3 + 2*√2", a.Mul(a).String())
}

func TestValueAddMergesRadicands(t *testing.T) {
	sqrt2 := intVal(2).Sqrt()
	sqrt8 := intVal(8).Sqrt()
	assert.Equal(t, "3*√2", sqrt2.Add(sqrt8).String())
	assert.Equal(t, "√2", sqrt8.Sub(sqrt2).String())
	// Coefficients that cancel drop the term entirely.
	assert.Equal(t, "0", sqrt2.Sub(sqrt2).String())
	assert.Equal(t, "1", intVal(1).Add(sqrt2).Sub(sqrt2).String())
}

func TestValuePow(t *testing.T) {
	sqrt2 := intVal(2).Sqrt()
	assert.Equal(t, "2", sqrt2.Pow(intVal(2)).String())
	assert.Equal(t, "4*√2", sqrt2.Pow(intVal(5)).String())
	assert.Equal(t, "1", sqrt2.Pow(intVal(0)).String())
	assert.Equal(t, "8", intVal(2).Pow(intVal(3)).String())

	// No closed form: negative, fractional, or surd exponents.
	assert.Equal(t, "2^-1", intVal(2).Pow(intVal(-1)).String())
	assert.Equal(t, "2^1/2", intVal(2).Pow(valueFromRat(newRat(bigOne, big.NewInt(2)))).String())
	assert.Equal(t, "2^√2", intVal(2).Pow(sqrt2).String())
}

func TestValueDiv(t *testing.T) {
	sqrt2 := intVal(2).Sqrt()

	q, err := intVal(3).Div(intVal(4))
	require.NoError(t, err)
	assert.Equal(t, "3/4", q.String())

	q, err = sqrt2.Div(intVal(2))
	require.NoError(t, err)
	assert.Equal(t, "1/2*√2", q.String())

	// Surd-bearing divisors are never rationalized.
	q, err = intVal(1).Div(sqrt2)
	require.NoError(t, err)
	assert.True(t, q.IsSymbolic())
	assert.Equal(t, "1/√2", q.String())

	_, err = sqrt2.Div(intVal(0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestValueSymbolicPropagation(t *testing.T) {
	pi := symValue("pi")
	assert.Equal(t, "pi+1", pi.Add(intVal(1)).String())
	assert.Equal(t, "2-pi", intVal(2).Sub(pi).String())
	assert.Equal(t, "pi*pi", pi.Mul(pi).String())
	assert.Equal(t, "pi^2", pi.Pow(intVal(2)).String())
	q, err := pi.Div(intVal(2))
	require.NoError(t, err)
	assert.Equal(t, "pi/2", q.String())
}

func TestValueString(t *testing.T) {
	sqrt2 := intVal(2).Sqrt()
	sqrt3 := intVal(3).Sqrt()
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"integer", intVal(5), "5"},
		{"negative-surd", intVal(0).Sub(sqrt2), "-√2"},
		{"rat-plus-surd", intVal(1).Add(sqrt3.Mul(intVal(2))), "1 + 2*√3"},
		{"rat-minus-surd", intVal(1).Sub(sqrt2), "1 - √2"},
		{"two-surds", sqrt2.Add(sqrt3), "√2 + √3"},
		{"coeff-fraction", surdv(1, 2, 2), "1/2*√2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.v.String())
		})
	}
}
