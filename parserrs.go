package ratmath

import "strconv"

// SyntaxError is an error indicating input that does not match the expression
// grammar. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token that caused the error, counted in
	// runes of the input after whitespace is removed.
	Col int
	// Remainder is the unconsumed input starting at the offending token.
	Remainder string
	// Msg describes the error.
	Msg string
	// Err is the underlying literal error, if any, e.g. a *FormatError or a
	// *DivisionError for a zero denominator.
	Err error
}

func (err *SyntaxError) Error() string {
	msg := err.Msg
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Remainder != "" {
		msg += " at " + strconv.Quote(err.Remainder)
	}
	return errpos(err.Col, msg)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
