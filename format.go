package exacteval

import (
	"math/big"
	"strings"
)

// String renders v canonically: a bare integer, a numerator/denominator
// fraction, or a sum of a rational term and coeff*√radicand terms joined
// by " + " and " - ". Unit coefficients are omitted, so √6 prints as "√6"
// rather than "1*√6". Symbolic values print their stored expression.
func (v Value) String() string {
	if v.sym != "" {
		return v.sym
	}
	var b strings.Builder
	if !v.rat.IsZero() || len(v.surds) == 0 {
		b.WriteString(v.rat.String())
	}
	for _, t := range v.surds {
		coeff := t.coeff
		switch {
		case b.Len() == 0:
			if coeff.Sign() < 0 {
				b.WriteByte('-')
				coeff = coeff.Neg()
			}
		case coeff.Sign() < 0:
			b.WriteString(" - ")
			coeff = coeff.Neg()
		default:
			b.WriteString(" + ")
		}
		if !coeff.isOne() {
			b.WriteString(coeff.String())
			b.WriteByte('*')
		}
		b.WriteString("√")
		b.WriteString(t.rad.String())
	}
	return b.String()
}

// formatDecimal renders a decimal result as a plain decimal string with
// no exponent and no trailing zeros, or "Error" when it is not finite.
// The negative precision asks for the fewest digits that identify the
// value at its working precision, so more precise results print more
// digits.
func formatDecimal(x *big.Float) string {
	if x.IsInf() {
		return "Error"
	}
	return x.Text('f', -1)
}
