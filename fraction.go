package ratmath

import (
	"math/big"
	"strings"
)

// Fraction is a fraction that is never reduced implicitly. 1/2 and 2/4 are
// different fractions with the same value. Addition and subtraction are only
// defined between fractions with identical denominators, so that mediants
// keep their exact numerators and denominators.
//
// The denominator is never zero. It may be negative. The zero value is 0/1.
type Fraction struct {
	num, den *big.Int
}

func (f Fraction) n() *big.Int {
	if f.num == nil {
		return bigZero
	}
	return f.num
}

func (f Fraction) d() *big.Int {
	if f.den == nil {
		return bigOne
	}
	return f.den
}

// NewFraction creates the fraction num/den. The arguments are copied. If den
// is zero, the error is a *DivisionError.
func NewFraction(num, den *big.Int) (Fraction, error) {
	if den.Sign() == 0 {
		return Fraction{}, &DivisionError{Op: "denominator"}
	}
	return Fraction{num: new(big.Int).Set(num), den: new(big.Int).Set(den)}, nil
}

// FractionOf creates the fraction num/den from int64s. It panics if den is
// zero.
func FractionOf(num, den int64) Fraction {
	if den == 0 {
		panic("ratmath: FractionOf with zero denominator")
	}
	return Fraction{num: big.NewInt(num), den: big.NewInt(den)}
}

// FractionFromRational returns r as a fraction in lowest terms.
func FractionFromRational(r Rational) Fraction {
	return Fraction{num: r.Num(), den: r.Den()}
}

// ParseFraction parses a fraction written as "a" or "a/b" without reducing
// it. Either part may have a sign.
func ParseFraction(s string) (Fraction, error) {
	t := strings.TrimSpace(s)
	parts := strings.Split(t, "/")
	if len(parts) > 2 {
		return Fraction{}, &FormatError{Kind: "fraction", Text: s, Reason: "use a/b or a"}
	}
	num, ok := parseSignedInt(parts[0])
	if !ok {
		return Fraction{}, &FormatError{Kind: "fraction", Text: s, Reason: "use a/b or a"}
	}
	den := big.NewInt(1)
	if len(parts) == 2 {
		den, ok = parseSignedInt(parts[1])
		if !ok {
			return Fraction{}, &FormatError{Kind: "fraction", Text: s, Reason: "use a/b or a"}
		}
	}
	if den.Sign() == 0 {
		return Fraction{}, &DivisionError{Op: "denominator"}
	}
	return Fraction{num: num, den: den}, nil
}

func parseSignedInt(s string) (*big.Int, bool) {
	neg, digits, rest := scanSigned(s)
	if digits == "" || rest != "" {
		return nil, false
	}
	v, _ := new(big.Int).SetString(digits, 10)
	if neg {
		v.Neg(v)
	}
	return v, true
}

// Num returns a copy of the numerator of f.
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.n()) }

// Den returns a copy of the denominator of f.
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.d()) }

// Add returns f + g. The denominators must be identical, and the result has
// the same denominator; otherwise the error is a *ValidationError.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	if f.d().Cmp(g.d()) != 0 {
		return Fraction{}, &ValidationError{Op: "add", Reason: "addition only supported for equal denominators"}
	}
	return Fraction{num: new(big.Int).Add(f.n(), g.n()), den: new(big.Int).Set(f.d())}, nil
}

// Sub returns f - g with the same restriction as Add.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	if f.d().Cmp(g.d()) != 0 {
		return Fraction{}, &ValidationError{Op: "sub", Reason: "subtraction only supported for equal denominators"}
	}
	return Fraction{num: new(big.Int).Sub(f.n(), g.n()), den: new(big.Int).Set(f.d())}, nil
}

// Mul returns f * g without reducing.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{num: new(big.Int).Mul(f.n(), g.n()), den: new(big.Int).Mul(f.d(), g.d())}
}

// Div returns f / g without reducing. If g is zero, the error is a
// *DivisionError.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.n().Sign() == 0 {
		return Fraction{}, &DivisionError{Op: "/", X: "0"}
	}
	return Fraction{num: new(big.Int).Mul(f.n(), g.d()), den: new(big.Int).Mul(f.d(), g.n())}, nil
}

// Pow returns f^n without reducing. A negative exponent swaps the numerator
// and denominator. Zero to the zero and zero to a negative power return a
// *DomainError.
func (f Fraction) Pow(n int64) (Fraction, error) {
	if f.n().Sign() == 0 {
		switch {
		case n == 0:
			return Fraction{}, &DomainError{X: f.String(), Exp: n, Func: "^", Reason: "zero cannot be raised to the power of zero"}
		case n < 0:
			return Fraction{}, &DomainError{X: f.String(), Exp: n, Func: "^", Reason: "zero cannot be raised to a negative power"}
		}
	}
	num, den := f.n(), f.d()
	if n < 0 {
		num, den = den, num
	}
	e := new(big.Int).SetInt64(n)
	e.Abs(e)
	return Fraction{num: new(big.Int).Exp(num, e, nil), den: new(big.Int).Exp(den, e, nil)}, nil
}

// Scale multiplies both parts of f by k, giving an equal fraction with a
// different denominator. k must be nonzero.
func (f Fraction) Scale(k int64) Fraction {
	if k == 0 {
		panic("ratmath: Scale by zero")
	}
	m := big.NewInt(k)
	return Fraction{num: new(big.Int).Mul(f.n(), m), den: new(big.Int).Mul(f.d(), m)}
}

// Reduce returns f in lowest terms with a positive denominator.
func (f Fraction) Reduce() Fraction {
	if f.n().Sign() == 0 {
		return FractionOf(0, 1)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(f.n()), new(big.Int).Abs(f.d()))
	num := new(big.Int).Quo(f.n(), g)
	den := new(big.Int).Quo(f.d(), g)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return Fraction{num: num, den: den}
}

// Mediant returns (a.num + b.num) / (a.den + b.den) without reducing. If a and
// b have positive denominators, the mediant lies between them. If the
// denominators sum to zero, which can happen when one is negative, the error
// is a *DivisionError.
func Mediant(a, b Fraction) (Fraction, error) {
	den := new(big.Int).Add(a.d(), b.d())
	if den.Sign() == 0 {
		return Fraction{}, &DivisionError{Op: "denominator"}
	}
	return Fraction{num: new(big.Int).Add(a.n(), b.n()), den: den}, nil
}

// Rational returns the value of f.
func (f Fraction) Rational() Rational {
	if f.d().Sign() == 0 {
		panic("ratmath: fraction with zero denominator")
	}
	return normalized(new(big.Int).Set(f.n()), new(big.Int).Set(f.d()))
}

// Cmp compares the values of f and g, returning -1, 0, or 1. Negative
// denominators are allowed.
func (f Fraction) Cmp(g Fraction) int {
	a := new(big.Int).Mul(f.n(), g.d())
	b := new(big.Int).Mul(f.d(), g.n())
	c := a.Cmp(b)
	if f.d().Sign() != g.d().Sign() {
		c = -c
	}
	return c
}

// Equal returns whether f and g have the same numerator and the same
// denominator. Fractions with equal values can be unequal; use Cmp to compare
// values.
func (f Fraction) Equal(g Fraction) bool {
	return f.n().Cmp(g.n()) == 0 && f.d().Cmp(g.d()) == 0
}

// Less returns whether the value of f is less than that of g.
func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

// LessEq returns whether the value of f is at most that of g.
func (f Fraction) LessEq(g Fraction) bool { return f.Cmp(g) <= 0 }

// Greater returns whether the value of f is greater than that of g.
func (f Fraction) Greater(g Fraction) bool { return f.Cmp(g) > 0 }

// GreaterEq returns whether the value of f is at least that of g.
func (f Fraction) GreaterEq(g Fraction) bool { return f.Cmp(g) >= 0 }

// String formats f as "n/d", or "n" when the denominator is 1.
func (f Fraction) String() string {
	if f.d().Cmp(bigOne) == 0 {
		return f.n().String()
	}
	return f.n().String() + "/" + f.d().String()
}
