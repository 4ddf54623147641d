package exacteval

import "strconv"

// Mode selects the output form of an evaluation.
type Mode int

const (
	// Exact preserves rationals and surds symbolically.
	Exact Mode = iota
	// Decimal evaluates with floating-point semantics.
	Decimal
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Decimal:
		return "decimal"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// AngleUnit selects how trigonometric operands are interpreted.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)

func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return "AngleUnit(" + strconv.Itoa(int(u)) + ")"
	}
}

// Option is an option used when evaluating.
type Option interface {
	option(evalcfg) evalcfg
}

type evalcfg struct {
	prec uint
}

type precopt uint

func (p precopt) option(c evalcfg) evalcfg {
	c.prec = uint(p)
	return c
}

// Prec sets the precision of decimal-mode calculations in bits. The
// default is 64. Exact mode ignores it.
func Prec(prec uint) Option {
	return precopt(prec)
}

const defaultPrec = 64

// Evaluate parses and evaluates one expression and renders the result.
// Each call is fully self-contained: it owns its token sequence, postfix
// sequence, and value stack, and discards them on return, so concurrent
// calls never interfere.
//
// The error is one of the typed input errors (LexError, BracketError),
// ErrDivideByZero, or ErrBadExpression. A decimal result that is not
// finite is not an error; it renders as the literal "Error".
func Evaluate(src string, mode Mode, unit AngleUnit, opts ...Option) (string, error) {
	cfg := evalcfg{prec: defaultPrec}
	for _, o := range opts {
		cfg = o.option(cfg)
	}
	e, err := Parse(src)
	if err != nil {
		return "", err
	}
	switch mode {
	case Exact:
		v, err := e.Exact(unit)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	case Decimal:
		r, err := e.Decimal(unit, cfg.prec)
		if err == ErrNotFinite {
			return "Error", nil
		}
		if err != nil {
			return "", err
		}
		return formatDecimal(r), nil
	default:
		panic("exacteval: unknown mode " + mode.String())
	}
}
