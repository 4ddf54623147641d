package exacteval

import "math/big"

// The exact trigonometric table covers the angles whose sine and cosine
// are 0, ±1/2, ±√2/2, ±√3/2, or ±1: the multiples of 30° and 45° in
// [0°, 360°). Any other angle, any non-integer-degree operand, and radian
// mode have no closed form here and degrade to symbolic.

type sinCos struct {
	sin, cos Value
}

var big360 = big.NewInt(360)

func ratv(num, den int64) Value {
	return valueFromRat(newRat(big.NewInt(num), big.NewInt(den)))
}

func surdv(num, den, rad int64) Value {
	return Value{rat: ratZero(), surds: []surdTerm{{rad: big.NewInt(rad), coeff: newRat(big.NewInt(num), big.NewInt(den))}}}
}

var trigTable = map[int64]sinCos{
	0:   {ratv(0, 1), ratv(1, 1)},
	30:  {ratv(1, 2), surdv(1, 2, 3)},
	45:  {surdv(1, 2, 2), surdv(1, 2, 2)},
	60:  {surdv(1, 2, 3), ratv(1, 2)},
	90:  {ratv(1, 1), ratv(0, 1)},
	120: {surdv(1, 2, 3), ratv(-1, 2)},
	135: {surdv(1, 2, 2), surdv(-1, 2, 2)},
	150: {ratv(1, 2), surdv(-1, 2, 3)},
	180: {ratv(0, 1), ratv(-1, 1)},
	210: {ratv(-1, 2), surdv(-1, 2, 3)},
	225: {surdv(-1, 2, 2), surdv(-1, 2, 2)},
	240: {surdv(-1, 2, 3), ratv(-1, 2)},
	270: {ratv(-1, 1), ratv(0, 1)},
	300: {surdv(-1, 2, 3), ratv(1, 2)},
	315: {surdv(-1, 2, 2), surdv(1, 2, 2)},
	330: {ratv(-1, 2), surdv(1, 2, 3)},
}

// exactTrig evaluates sin, cos, or tan of an exact operand. The table
// applies only in degree mode to operands that reduce to an exact integer
// number of degrees; the angle is normalized modulo 360 into [0, 360)
// before the lookup.
func exactTrig(name string, arg Value, unit AngleUnit) Value {
	if unit != Degrees || arg.sym != "" || len(arg.surds) > 0 || !arg.rat.IsInt() {
		return symCall(name, arg)
	}
	deg := new(big.Int).Mod(arg.rat.num, big360)
	sc, ok := trigTable[deg.Int64()]
	if !ok {
		return symCall(name, arg)
	}
	switch name {
	case "sin":
		return sc.sin
	case "cos":
		return sc.cos
	default:
		return exactTan(arg, sc)
	}
}

// exactTan derives tangent from a table entry. A zero cosine (90°, 270°)
// has no tangent and stays symbolic. Every nonzero table cosine is either
// a pure rational, where sin/cos divides directly, or a single surd term
// c·√r, where multiplying through by √r gives sin·√r / (c·r) using only
// the supported operations.
func exactTan(arg Value, sc sinCos) Value {
	cos := sc.cos
	switch {
	case cos.isZero():
		return symCall("tan", arg)
	case len(cos.surds) == 0:
		t, err := sc.sin.Div(cos)
		if err != nil {
			return symCall("tan", arg)
		}
		return t
	default:
		s := cos.surds[0]
		root := Value{rat: ratZero(), surds: []surdTerm{{rad: s.rad, coeff: ratFromInt(1)}}}
		den := valueFromRat(s.coeff.Mul(ratFromBig(s.rad)))
		t, err := sc.sin.Mul(root).Div(den)
		if err != nil {
			return symCall("tan", arg)
		}
		return t
	}
}
