package exacteval

import (
	"errors"
	"strconv"
)

var (
	// ErrDivideByZero is reported when any division's divisor reduces to
	// zero, in either mode.
	ErrDivideByZero = errors.New("division by zero")
	// ErrBadExpression is reported when the evaluator's stack does not end
	// with exactly one value, i.e. the operator and operand counts don't
	// line up.
	ErrBadExpression = errors.New("malformed expression")
	// ErrNotFinite is reported by decimal evaluation when the result is NaN
	// or infinite. Evaluate renders it as the literal "Error".
	ErrNotFinite = errors.New("result is not finite")
)

// LexError indicates a character the tokenizer could not classify. It
// implements InputError.
type LexError struct {
	// Text is the run of characters being scanned when the invalid
	// character was encountered, including it.
	Text string
	// Col is the 1-based rune position of the invalid character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character in "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// BracketError indicates mismatched parentheses. It implements InputError.
type BracketError struct {
	// Col is the 1-based rune position of the parenthesis, or the position
	// just past the input for an open parenthesis that was never closed.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "mismatched parentheses")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the text that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
)
