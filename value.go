package exacteval

import (
	"math/big"
	"sort"
)

// surdTerm is one coeff·√rad summand. The radicand is square-free and
// greater than 1, and the coefficient is never zero.
type surdTerm struct {
	rad   *big.Int
	coeff Rational
}

// Value is an exact quantity: a rational part plus a sum of surd terms,
// kept sorted by radicand. When sym is nonempty the value is opaque — an
// unevaluated textual expression with no rational/surd closed form — and
// every operation on it propagates opacity by building a new symbolic
// string from the operand representations. Values are immutable.
type Value struct {
	rat   Rational
	surds []surdTerm
	sym   string
}

func valueFromRat(r Rational) Value {
	return Value{rat: r}
}

func symValue(s string) Value {
	return Value{rat: ratZero(), sym: s}
}

// repr is the operand representation used when building symbolic strings.
func (v Value) repr() string {
	if v.sym != "" {
		return v.sym
	}
	return v.String()
}

func symBinary(l Value, op string, r Value) Value {
	return symValue(l.repr() + op + r.repr())
}

func symCall(name string, arg Value) Value {
	return symValue(name + "(" + arg.repr() + ")")
}

// IsSymbolic reports whether v is an opaque symbolic expression rather
// than a rational/surd closed form.
func (v Value) IsSymbolic() bool {
	return v.sym != ""
}

func (v Value) isZero() bool {
	return v.sym == "" && len(v.surds) == 0 && v.rat.IsZero()
}

func cloneTerms(ts []surdTerm) []surdTerm {
	if len(ts) == 0 {
		return nil
	}
	return append([]surdTerm(nil), ts...)
}

// addSurd merges coeff·√rad into ts, keeping the radicand order and
// dropping terms that cancel to zero. The caller must own ts.
func addSurd(ts []surdTerm, rad *big.Int, coeff Rational) []surdTerm {
	if coeff.IsZero() {
		return ts
	}
	i := sort.Search(len(ts), func(i int) bool { return ts[i].rad.Cmp(rad) >= 0 })
	if i < len(ts) && ts[i].rad.Cmp(rad) == 0 {
		sum := ts[i].coeff.Add(coeff)
		if sum.IsZero() {
			return append(ts[:i], ts[i+1:]...)
		}
		ts[i] = surdTerm{rad: ts[i].rad, coeff: sum}
		return ts
	}
	ts = append(ts, surdTerm{})
	copy(ts[i+1:], ts[i:])
	ts[i] = surdTerm{rad: rad, coeff: coeff}
	return ts
}

// Add returns v + u.
func (v Value) Add(u Value) Value {
	if v.sym != "" || u.sym != "" {
		return symBinary(v, "+", u)
	}
	w := Value{rat: v.rat.Add(u.rat), surds: cloneTerms(v.surds)}
	for _, t := range u.surds {
		w.surds = addSurd(w.surds, t.rad, t.coeff)
	}
	return w
}

// Sub returns v - u.
func (v Value) Sub(u Value) Value {
	if v.sym != "" || u.sym != "" {
		return symBinary(v, "-", u)
	}
	w := Value{rat: v.rat.Sub(u.rat), surds: cloneTerms(v.surds)}
	for _, t := range u.surds {
		w.surds = addSurd(w.surds, t.rad, t.coeff.Neg())
	}
	return w
}

// Mul returns v * u, expanding every pair of surd terms and re-simplifying
// the product radicands so that √2·√2 collapses to 2 and √2·√3 to √6.
func (v Value) Mul(u Value) Value {
	if v.sym != "" || u.sym != "" {
		return symBinary(v, "*", u)
	}
	rat := v.rat.Mul(u.rat)
	var ts []surdTerm
	for _, t := range v.surds {
		ts = addSurd(ts, t.rad, t.coeff.Mul(u.rat))
	}
	for _, t := range u.surds {
		ts = addSurd(ts, t.rad, t.coeff.Mul(v.rat))
	}
	for _, a := range v.surds {
		for _, b := range u.surds {
			out, rad := splitSquarefree(new(big.Int).Mul(a.rad, b.rad))
			coeff := a.coeff.Mul(b.coeff).Mul(ratFromBig(out))
			if rad.Cmp(bigOne) == 0 {
				rat = rat.Add(coeff)
			} else {
				ts = addSurd(ts, rad, coeff)
			}
		}
	}
	return Value{rat: rat, surds: ts}
}

// Div returns v / u. A divisor carrying surd terms has no supported closed
// form (the denominator is never rationalized), so the result degrades to
// symbolic; a divisor whose rational part is zero is ErrDivideByZero.
func (v Value) Div(u Value) (Value, error) {
	if v.sym != "" || u.sym != "" || len(u.surds) > 0 {
		return symBinary(v, "/", u), nil
	}
	if u.rat.IsZero() {
		return Value{}, ErrDivideByZero
	}
	rat, err := v.rat.Div(u.rat)
	if err != nil {
		return Value{}, err
	}
	w := Value{rat: rat}
	for _, t := range v.surds {
		coeff, err := t.coeff.Div(u.rat)
		if err != nil {
			return Value{}, err
		}
		w.surds = addSurd(w.surds, t.rad, coeff)
	}
	return w, nil
}

// Pow returns v ^ u. Only non-negative integer exponents have a closed
// form; they are computed by square-and-multiply over Mul, which is what
// makes (√2)² collapse to 2. Everything else is symbolic.
func (v Value) Pow(u Value) Value {
	if v.sym != "" || u.sym != "" || len(u.surds) > 0 || !u.rat.IsInt() {
		return symBinary(v, "^", u)
	}
	e := u.rat.num
	if e.Sign() < 0 {
		return symBinary(v, "^", u)
	}
	w := valueFromRat(ratFromInt(1))
	for i := e.BitLen() - 1; i >= 0; i-- {
		w = w.Mul(w)
		if e.Bit(i) == 1 {
			w = w.Mul(v)
		}
	}
	return w
}

// Sqrt returns √v. Only non-negative integers have a closed form; the
// radicand splits into outside·√(square-free inside) and a square-free
// part of 1 collapses to a pure rational. Fractions, negatives, surds,
// and symbolic operands all degrade to symbolic.
func (v Value) Sqrt() Value {
	if v.sym != "" || len(v.surds) > 0 || !v.rat.IsInt() || v.rat.Sign() < 0 {
		return symCall("sqrt", v)
	}
	if v.rat.IsZero() {
		return valueFromRat(ratZero())
	}
	out, rad := splitSquarefree(v.rat.num)
	if rad.Cmp(bigOne) == 0 {
		return valueFromRat(ratFromBig(out))
	}
	return Value{rat: ratZero(), surds: []surdTerm{{rad: rad, coeff: ratFromBig(out)}}}
}
