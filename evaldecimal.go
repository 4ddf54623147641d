package exacteval

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Decimal evaluates the postfix sequence with floating-point arithmetic
// on big.Float values at the given precision. Transcendental operators
// use bigfloat where it has them; trigonometry goes through float64.
// Results that are NaN or infinite are reported as ErrNotFinite, which
// Evaluate renders as the literal "Error"; a zero divisor is
// ErrDivideByZero.
func (e *Expr) Decimal(unit AngleUnit, prec uint) (res *big.Float, err error) {
	defer func() {
		// bigfloat and big.Float signal out-of-domain arguments by
		// panicking with big.ErrNaN.
		p := recover()
		if p == nil {
			return
		}
		if pe, ok := p.(error); ok && errors.As(pe, &big.ErrNaN{}) {
			res, err = nil, ErrNotFinite
			return
		}
		panic(p)
	}()
	var stack []*big.Float
	pop := func() *big.Float {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	for _, it := range e.items {
		switch it.kind {
		case itemNum:
			v, _, perr := new(big.Float).SetPrec(prec).Parse(it.text, 10)
			if perr != nil {
				return nil, ErrBadExpression
			}
			stack = append(stack, v)
		case itemConst:
			v := new(big.Float).SetPrec(prec)
			switch it.text {
			case "pi":
				v = bigfloat.Pi(v)
			case "e":
				v = bigfloat.Exp(v, big.NewFloat(1).SetPrec(prec))
			}
			stack = append(stack, v)
		case itemFunc:
			if len(stack) < 1 {
				return nil, ErrBadExpression
			}
			v, ferr := applyDecimalFunc(it.text, stack[len(stack)-1], unit)
			if ferr != nil {
				return nil, ferr
			}
			stack[len(stack)-1] = v
		case itemOp:
			if len(stack) < 2 {
				return nil, ErrBadExpression
			}
			r := pop()
			l := stack[len(stack)-1]
			switch it.text {
			case "+":
				l.Add(l, r)
			case "-":
				l.Sub(l, r)
			case "*":
				l.Mul(l, r)
			case "/":
				if r.Sign() == 0 {
					return nil, ErrDivideByZero
				}
				l.Quo(l, r)
			case "^":
				if l.Sign() > 0 {
					// Pow does not always write through its receiver, so the
					// returned float is the result.
					stack[len(stack)-1] = bigfloat.Pow(new(big.Float).SetPrec(l.Prec()), l, r)
				} else if err := powFloat64(l, r); err != nil {
					return nil, err
				}
			}
		default:
			panic("exacteval: unknown postfix item kind " + it.kind.String())
		}
	}
	if len(stack) != 1 {
		return nil, ErrBadExpression
	}
	if stack[0].IsInf() {
		return nil, ErrNotFinite
	}
	return stack[0], nil
}

// applyDecimalFunc applies a function to a stack value. The result may or
// may not alias the argument.
func applyDecimalFunc(name string, v *big.Float, unit AngleUnit) (*big.Float, error) {
	switch name {
	case "sqrt":
		if v.Sign() < 0 {
			return nil, ErrNotFinite
		}
		return v.Sqrt(v), nil
	case "ln":
		if v.Sign() <= 0 {
			return nil, ErrNotFinite
		}
		return bigfloat.Log(new(big.Float).SetPrec(v.Prec()), v), nil
	case "log":
		if v.Sign() <= 0 {
			return nil, ErrNotFinite
		}
		num := bigfloat.Log(new(big.Float).SetPrec(v.Prec()), v)
		den := bigfloat.Log(new(big.Float).SetPrec(v.Prec()), big.NewFloat(10).SetPrec(v.Prec()))
		return num.Quo(num, den), nil
	case "sin", "cos", "tan":
		// Degree conversion happens at full precision. Only the
		// transcendental step itself runs at float64, since bigfloat has
		// no trig.
		if unit == Degrees {
			v.Mul(v, bigfloat.Pi(new(big.Float).SetPrec(v.Prec())))
			v.Quo(v, big.NewFloat(180).SetPrec(v.Prec()))
		}
		f, _ := v.Float64()
		switch name {
		case "sin":
			f = math.Sin(f)
		case "cos":
			f = math.Cos(f)
		case "tan":
			f = math.Tan(f)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, ErrNotFinite
		}
		return v.SetFloat64(f), nil
	default:
		panic("exacteval: unknown function: " + name)
	}
}

// powFloat64 computes l^r at float64 precision for the bases bigfloat.Pow
// does not take, zero and negative.
func powFloat64(l, r *big.Float) error {
	lf, _ := l.Float64()
	rf, _ := r.Float64()
	f := math.Pow(lf, rf)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNotFinite
	}
	l.SetFloat64(f)
	return nil
}
