package exacteval

import (
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal number literal.
	tokenNum
	// tokenIdent is a constant or function name.
	tokenIdent
	// tokenOp is one of the binary operators.
	tokenOp
	// tokenLParen and tokenRParen are the grouping parentheses.
	tokenLParen
	tokenRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenLParen:
		return "LParen"
	case tokenRParen:
		return "RParen"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// operators contains the runes which are considered to be operators.
const operators = "+-*/^"

// tokenize scans src into a flat token sequence. Positions are 1-based
// rune counts. After the scan, an explicit "0" literal is inserted before
// each unary minus — one that starts the input or follows an operator or
// an open parenthesis — so the parser only ever sees binary operators.
func tokenize(src string) ([]token, error) {
	var toks []token
	rs := []rune(src)
	for i := 0; i < len(rs); {
		r := rs[i]
		pos := i + 1
		switch {
		case unicode.IsSpace(r):
			i++
		case '0' <= r && r <= '9', r == '.':
			start := i
			for i < len(rs) && ('0' <= rs[i] && rs[i] <= '9' || rs[i] == '.') {
				i++
			}
			text := string(rs[start:i])
			if _, err := ParseRational(text); err != nil {
				return nil, &LexError{Text: text, Col: pos}
			}
			toks = append(toks, token{text: text, kind: tokenNum, pos: pos})
		case unicode.IsLetter(r):
			start := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i])) {
				i++
			}
			toks = append(toks, token{text: string(rs[start:i]), kind: tokenIdent, pos: pos})
		case r == '√':
			// The radical glyph is a tokenizer-level synonym for sqrt.
			toks = append(toks, token{text: "sqrt", kind: tokenIdent, pos: pos})
			i++
		case r == '(':
			toks = append(toks, token{text: "(", kind: tokenLParen, pos: pos})
			i++
		case r == ')':
			toks = append(toks, token{text: ")", kind: tokenRParen, pos: pos})
			i++
		case strings.ContainsRune(operators, r):
			toks = append(toks, token{text: string(r), kind: tokenOp, pos: pos})
			i++
		default:
			return nil, &LexError{Text: string(r), Col: pos}
		}
	}
	return insertUnaryZeros(toks), nil
}

// insertUnaryZeros rewrites each unary minus into the binary subtraction
// 0 - x.
func insertUnaryZeros(toks []token) []token {
	out := make([]token, 0, len(toks))
	for i, t := range toks {
		if t.kind == tokenOp && t.text == "-" {
			unary := i == 0
			if !unary {
				prev := toks[i-1]
				unary = prev.kind == tokenOp || prev.kind == tokenLParen
			}
			if unary {
				out = append(out, token{text: "0", kind: tokenNum, pos: t.pos})
			}
		}
		out = append(out, t)
	}
	return out
}
