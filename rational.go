package exacteval

import (
	"math/big"
	"strings"
)

// Rational is an arbitrary-precision fraction in lowest terms. The
// denominator is always positive and shares no factor with the numerator,
// so every quantity has exactly one representation and zero is 0/1.
// Rationals are immutable; arithmetic returns new values.
type Rational struct {
	num, den *big.Int
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// newRat constructs the reduced form of num/den. Panics if den is zero;
// every division guards its divisor before reaching here.
func newRat(num, den *big.Int) Rational {
	if den.Sign() == 0 {
		panic("exacteval: zero denominator")
	}
	num = new(big.Int).Set(num)
	den = new(big.Int).Set(den)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Rational{num: num, den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, g)
	den.Quo(den, g)
	return Rational{num: num, den: den}
}

func ratFromInt(n int64) Rational {
	return newRat(big.NewInt(n), bigOne)
}

func ratFromBig(n *big.Int) Rational {
	return newRat(n, bigOne)
}

func ratZero() Rational {
	return Rational{num: big.NewInt(0), den: big.NewInt(1)}
}

// ParseRational parses a plain decimal literal (optional leading minus,
// digits, at most one decimal point) into an exact fraction with a
// power-of-ten denominator. There is no floating-point intermediate, so
// "0.1" is exactly 1/10.
func ParseRational(s string) (Rational, error) {
	text := s
	neg := strings.HasPrefix(text, "-")
	if neg {
		text = text[1:]
	}
	ip, fp, found := strings.Cut(text, ".")
	digits := ip + fp
	if digits == "" || strings.ContainsAny(digits, ".") || (found && fp == "") {
		return Rational{}, &LexError{Text: s, Col: 1}
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Rational{}, &LexError{Text: s, Col: 1}
	}
	if neg {
		num.Neg(num)
	}
	den := new(big.Int).Exp(bigTen, big.NewInt(int64(len(fp))), nil)
	return newRat(num, den), nil
}

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	num := new(big.Int).Mul(r.num, s.den)
	num.Add(num, new(big.Int).Mul(s.num, r.den))
	return newRat(num, new(big.Int).Mul(r.den, s.den))
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	return r.Add(s.Neg())
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	return newRat(new(big.Int).Mul(r.num, s.num), new(big.Int).Mul(r.den, s.den))
}

// Div returns r / s, or ErrDivideByZero if s is zero.
func (r Rational) Div(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, ErrDivideByZero
	}
	return newRat(new(big.Int).Mul(r.num, s.den), new(big.Int).Mul(r.den, s.num)), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return newRat(new(big.Int).Neg(r.num), r.den)
}

// IsZero reports whether r is zero.
func (r Rational) IsZero() bool {
	return r.num.Sign() == 0
}

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rational) Sign() int {
	return r.num.Sign()
}

// IsInt reports whether r is an integer.
func (r Rational) IsInt() bool {
	return r.den.Cmp(bigOne) == 0
}

func (r Rational) isOne() bool {
	return r.num.Cmp(bigOne) == 0 && r.IsInt()
}

// String renders r as a bare integer or as "numerator/denominator".
func (r Rational) String() string {
	if r.IsInt() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}
