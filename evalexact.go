package exacteval

// Exact evaluates the postfix sequence with exact arithmetic: a single
// left-to-right scan over an explicit value stack. No decimal conversion
// happens anywhere; values stay rational, surd sums, or symbolic strings
// throughout. The angle unit matters only to the trig lookup — radian
// mode bypasses the exact table entirely.
func (e *Expr) Exact(unit AngleUnit) (Value, error) {
	var stack []Value
	pop := func() (Value, bool) {
		if len(stack) == 0 {
			return Value{}, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}
	for _, it := range e.items {
		switch it.kind {
		case itemNum:
			r, err := ParseRational(it.text)
			if err != nil {
				return Value{}, err
			}
			stack = append(stack, valueFromRat(r))
		case itemConst:
			// pi and e have no rational/surd form; they stay symbolic and
			// taint anything computed from them.
			stack = append(stack, symValue(it.text))
		case itemFunc:
			arg, ok := pop()
			if !ok {
				return Value{}, ErrBadExpression
			}
			switch it.text {
			case "sqrt":
				stack = append(stack, arg.Sqrt())
			case "sin", "cos", "tan":
				stack = append(stack, exactTrig(it.text, arg, unit))
			case "ln", "log":
				stack = append(stack, symCall(it.text, arg))
			default:
				panic("exacteval: unknown function: " + it.text)
			}
		case itemOp:
			r, ok := pop()
			l, ok2 := pop()
			if !ok || !ok2 {
				return Value{}, ErrBadExpression
			}
			switch it.text {
			case "+":
				stack = append(stack, l.Add(r))
			case "-":
				stack = append(stack, l.Sub(r))
			case "*":
				stack = append(stack, l.Mul(r))
			case "/":
				w, err := l.Div(r)
				if err != nil {
					return Value{}, err
				}
				stack = append(stack, w)
			case "^":
				stack = append(stack, l.Pow(r))
			default:
				panic("exacteval: unknown operator: " + it.text)
			}
		default:
			panic("exacteval: unknown postfix item kind " + it.kind.String())
		}
	}
	if len(stack) != 1 {
		return Value{}, ErrBadExpression
	}
	return stack[0], nil
}
