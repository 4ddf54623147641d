package exacteval

import (
	"strconv"
	"strings"
)

// expr     := term (('+' | '-') term)*
// term     := power (('*' | '/') power)*
// power    := unary ('^' power)?
// unary    := ('-' unary) | atom
// atom     := number | constant | funcall | '(' expr ')'
// funcall  := ('sin'|'cos'|'tan'|'sqrt'|'ln'|'log') '(' expr ')'
// constant := 'pi' | 'e'

// item is one element of the postfix sequence the parser emits and both
// evaluators consume.
type item struct {
	text string
	kind itemKind
}

type itemKind int

const (
	itemNone itemKind = iota
	// itemNum is a decimal number literal.
	itemNum
	// itemConst is one of the named constants, pi or e.
	itemConst
	// itemFunc is one of the known function names.
	itemFunc
	// itemOp is a binary operator.
	itemOp
)

func (k itemKind) String() string {
	switch k {
	case itemNone:
		return "None"
	case itemNum:
		return "Num"
	case itemConst:
		return "Const"
	case itemFunc:
		return "Func"
	case itemOp:
		return "Op"
	default:
		return "itemKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// funcNames is the closed set of function identifiers.
var funcNames = map[string]bool{
	"sin":  true,
	"cos":  true,
	"tan":  true,
	"sqrt": true,
	"ln":   true,
	"log":  true,
}

// Expr is a parsed expression: an immutable postfix sequence ready to be
// evaluated in either mode.
type Expr struct {
	items []item
}

// String renders the postfix sequence with single spaces between items,
// for debugging and logging.
func (e *Expr) String() string {
	var b strings.Builder
	for i, it := range e.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.text)
	}
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// binop gets the binary operator properties for a token string.
func binop(text string) operator {
	switch text {
	case "+", "-":
		return operator{prec: 2}
	case "*", "/":
		return operator{prec: 3}
	case "^":
		return operator{prec: 4, right: true}
	default:
		panic("exacteval: unknown operator " + strconv.Quote(text))
	}
}

// Parse tokenizes src and converts it to postfix via shunting-yard.
func Parse(src string) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	var out []item
	var stack []token
	for _, t := range toks {
		switch t.kind {
		case tokenNum:
			out = append(out, item{text: t.text, kind: itemNum})
		case tokenIdent:
			switch low := strings.ToLower(t.text); {
			case low == "pi" || low == "e":
				out = append(out, item{text: low, kind: itemConst})
			case funcNames[t.text]:
				stack = append(stack, t)
			default:
				// Unrecognized identifiers evaluate as zero rather than
				// erroring, so stray letters never abort a calculation.
				out = append(out, item{text: "0", kind: itemNum})
			}
		case tokenOp:
			cur := binop(t.text)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOp {
					break
				}
				tp := binop(top.text)
				if tp.prec > cur.prec || (tp.prec == cur.prec && !cur.right) {
					out = append(out, item{text: top.text, kind: itemOp})
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)
		case tokenLParen:
			stack = append(stack, t)
		case tokenRParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenLParen {
					matched = true
					break
				}
				out = append(out, item{text: top.text, kind: itemOp})
			}
			if !matched {
				return nil, &BracketError{Col: t.pos}
			}
			// A pending function marker under the parentheses binds to the
			// group just emitted: this is what attaches sin(...) to its
			// argument.
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenIdent {
				out = append(out, item{text: stack[len(stack)-1].text, kind: itemFunc})
				stack = stack[:len(stack)-1]
			}
		default:
			panic("exacteval: unknown token: " + t.String())
		}
	}
	end := len([]rune(src)) + 1
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch top.kind {
		case tokenLParen:
			return nil, &BracketError{Col: end}
		case tokenIdent:
			out = append(out, item{text: top.text, kind: itemFunc})
		default:
			out = append(out, item{text: top.text, kind: itemOp})
		}
	}
	return &Expr{items: out}, nil
}
