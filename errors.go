package ratmath

import (
	"strconv"
	"strings"
)

// FormatError is an error indicating malformed numeric text.
type FormatError struct {
	// Kind is the kind of literal being read, e.g. "rational", "mixed
	// number", "fraction", "interval", or "exponent".
	Kind string
	// Text is the offending text.
	Text string
	// Reason optionally describes what is wrong with Text.
	Reason string
}

func (err *FormatError) Error() string {
	r := "invalid " + err.Kind + " " + strconv.Quote(err.Text)
	if err.Reason != "" {
		r += ": " + err.Reason
	}
	return r
}

// DivisionError is an error returned when a value would be divided by zero,
// including zero denominators, reciprocals of zero, and division by intervals
// containing zero.
type DivisionError struct {
	// Op identifies the operation: "denominator", "/", or "reciprocal".
	Op string
	// X is the zero or zero-containing divisor. It is empty for a zero
	// denominator.
	X string
}

func (err *DivisionError) Error() string {
	what := err.X
	if strings.Contains(what, ":") {
		what = "interval " + what + " containing zero"
	}
	switch err.Op {
	case "denominator":
		return "denominator cannot be zero"
	case "reciprocal":
		return "cannot take reciprocal of " + what
	default:
		if what == "0" || what == "" {
			return "division by zero"
		}
		return "cannot divide by " + what
	}
}

// DomainError is an error returned when a power is undefined for its base and
// exponent.
type DomainError struct {
	// X is the base.
	X string
	// Exp is the exponent.
	Exp int64
	// Func is a name identifying the operation, "^" or "**".
	Func string
	// Reason describes why the operation is undefined.
	Reason string
}

func (err *DomainError) Error() string {
	r := err.X + " outside domain of " + err.Func + " with exponent " + strconv.FormatInt(err.Exp, 10)
	if err.Reason != "" {
		r += ": " + err.Reason
	}
	return r
}

// ValidationError is an error returned when the arguments to an operation on
// fractions or fraction intervals are unacceptable.
type ValidationError struct {
	// Op names the operation.
	Op string
	// Reason describes the problem.
	Reason string
}

func (err *ValidationError) Error() string {
	return err.Op + ": " + err.Reason
}
