package ratmath

import (
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"
)

// Rational is an exact rational number. The denominator is always positive
// and coprime to the numerator, and zero is always 0/1. The zero value is 0.
//
// Rationals are immutable. Every operation returns a new value, so they are
// safe to share between goroutines.
type Rational struct {
	num, den *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

func (r Rational) n() *big.Int {
	if r.num == nil {
		return bigZero
	}
	return r.num
}

func (r Rational) d() *big.Int {
	if r.den == nil {
		return bigOne
	}
	return r.den
}

// normalized creates a Rational from num and den, taking ownership of both.
// den must be nonzero.
func normalized(num, den *big.Int) Rational {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Rational{num: num, den: den.SetInt64(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Rational{num: num, den: den}
}

// NewRational creates the rational num/den. The arguments are copied. If den
// is zero, the error is a *DivisionError.
func NewRational(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, &DivisionError{Op: "denominator"}
	}
	return normalized(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// RationalOf creates the rational num/den from integers of any type.
func RationalOf[T constraints.Integer](num, den T) (Rational, error) {
	return NewRational(bigOf(num), bigOf(den))
}

func bigOf[T constraints.Integer](v T) *big.Int {
	if v < 0 {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// IntRational creates the rational n/1.
func IntRational(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// ParseRational parses a rational written as "a" or "a/b". The numerator may
// have a leading sign. Text containing ".." is parsed as a mixed number by
// ParseMixed. Surrounding whitespace is ignored.
func ParseRational(s string) (Rational, error) {
	t := strings.TrimSpace(s)
	if strings.Contains(t, "..") {
		return ParseMixed(t)
	}
	neg, num, rest := scanSigned(t)
	if num == "" {
		return Rational{}, &FormatError{Kind: "rational", Text: s, Reason: "use a/b, a, or a..b/c"}
	}
	var den string
	if rest != "" {
		if rest[0] != '/' {
			return Rational{}, &FormatError{Kind: "rational", Text: s, Reason: "use a/b, a, or a..b/c"}
		}
		den, rest = scanDigits(rest[1:])
		if den == "" || rest != "" {
			return Rational{}, &FormatError{Kind: "rational", Text: s, Reason: "use a/b, a, or a..b/c"}
		}
	}
	return literal(neg, "", num, den)
}

// ParseMixed parses a mixed number written as "a..b/c", meaning a + b/c. A
// leading sign applies to the whole value, so "-1..1/2" is -3/2 and "-0..1/2"
// is -1/2.
func ParseMixed(s string) (Rational, error) {
	t := strings.TrimSpace(s)
	neg, whole, rest := scanSigned(t)
	if whole == "" || !strings.HasPrefix(rest, "..") {
		return Rational{}, &FormatError{Kind: "mixed number", Text: s, Reason: "use a..b/c"}
	}
	num, rest := scanDigits(rest[2:])
	if num == "" {
		return Rational{}, &FormatError{Kind: "mixed number", Text: s, Reason: `missing numerator after ".."`}
	}
	if !strings.HasPrefix(rest, "/") {
		return Rational{}, &FormatError{Kind: "mixed number", Text: s, Reason: "missing denominator"}
	}
	den, rest := scanDigits(rest[1:])
	if den == "" || rest != "" {
		return Rational{}, &FormatError{Kind: "mixed number", Text: s, Reason: "use a..b/c"}
	}
	return literal(neg, whole, num, den)
}

// scanSigned reads an optional sign and a run of decimal digits from the
// start of s.
func scanSigned(s string) (neg bool, digits, rest string) {
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	digits, rest = scanDigits(s)
	return neg, digits, rest
}

// scanDigits splits the leading run of ASCII decimal digits from s.
func scanDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// literal assembles a rational from the decimal digit strings of a literal.
// whole is empty unless the literal is a mixed number, and den is empty for
// integers. num must be non-empty.
func literal(neg bool, whole, num, den string) (Rational, error) {
	n, _ := new(big.Int).SetString(num, 10)
	d := big.NewInt(1)
	if den != "" {
		d.SetString(den, 10)
	}
	if d.Sign() == 0 {
		return Rational{}, &DivisionError{Op: "denominator"}
	}
	if whole != "" {
		w, _ := new(big.Int).SetString(whole, 10)
		n.Add(n, w.Mul(w, d))
	}
	if neg {
		n.Neg(n)
	}
	return normalized(n, d), nil
}

// Num returns a copy of the numerator of r.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.n())
}

// Den returns a copy of the denominator of r. It is always positive.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.d())
}

// Rat returns r as a new big.Rat.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).SetFrac(r.n(), r.d())
}

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	num := new(big.Int).Mul(r.n(), s.d())
	num.Add(num, new(big.Int).Mul(r.d(), s.n()))
	return normalized(num, new(big.Int).Mul(r.d(), s.d()))
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	num := new(big.Int).Mul(r.n(), s.d())
	num.Sub(num, new(big.Int).Mul(r.d(), s.n()))
	return normalized(num, new(big.Int).Mul(r.d(), s.d()))
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	num := new(big.Int).Mul(r.n(), s.n())
	return normalized(num, new(big.Int).Mul(r.d(), s.d()))
}

// Div returns r / s. If s is zero, the error is a *DivisionError.
func (r Rational) Div(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, &DivisionError{Op: "/", X: "0"}
	}
	num := new(big.Int).Mul(r.n(), s.d())
	return normalized(num, new(big.Int).Mul(r.d(), s.n())), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.n()), den: new(big.Int).Set(r.d())}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{num: new(big.Int).Abs(r.n()), den: new(big.Int).Set(r.d())}
}

// Reciprocal returns 1/r. If r is zero, the error is a *DivisionError.
func (r Rational) Reciprocal() (Rational, error) {
	if r.IsZero() {
		return Rational{}, &DivisionError{Op: "reciprocal", X: "0"}
	}
	return normalized(new(big.Int).Set(r.d()), new(big.Int).Set(r.n())), nil
}

// Pow returns r^n for any integer n. Zero to the zero and zero to a negative
// power are undefined and return a *DomainError.
func (r Rational) Pow(n int64) (Rational, error) {
	switch {
	case n == 0:
		if r.IsZero() {
			return Rational{}, &DomainError{X: "0", Exp: n, Func: "^", Reason: "zero cannot be raised to the power of zero"}
		}
		return IntRational(1), nil
	case n < 0:
		if r.IsZero() {
			return Rational{}, &DomainError{X: "0", Exp: n, Func: "^", Reason: "zero cannot be raised to a negative power"}
		}
		inv, _ := r.Reciprocal()
		// -n overflows for math.MinInt64, but the conversion still gives 2^63.
		return inv.pow(uint64(-n)), nil
	}
	return r.pow(uint64(n)), nil
}

// pow computes r^k by binary exponentiation. Powers of coprime integers are
// coprime, so the result needs no reduction.
func (r Rational) pow(k uint64) Rational {
	e := new(big.Int).SetUint64(k)
	num := new(big.Int).Exp(r.n(), e, nil)
	den := new(big.Int).Exp(r.d(), e, nil)
	return Rational{num: num, den: den}
}

// Cmp compares r and s, returning -1 if r < s, 0 if r == s, or 1 if r > s.
// Denominators are positive, so cross multiplication preserves order.
func (r Rational) Cmp(s Rational) int {
	a := new(big.Int).Mul(r.n(), s.d())
	b := new(big.Int).Mul(r.d(), s.n())
	return a.Cmp(b)
}

// Equal returns whether r == s.
func (r Rational) Equal(s Rational) bool {
	return r.n().Cmp(s.n()) == 0 && r.d().Cmp(s.d()) == 0
}

// Less returns whether r < s.
func (r Rational) Less(s Rational) bool { return r.Cmp(s) < 0 }

// LessEq returns whether r <= s.
func (r Rational) LessEq(s Rational) bool { return r.Cmp(s) <= 0 }

// Greater returns whether r > s.
func (r Rational) Greater(s Rational) bool { return r.Cmp(s) > 0 }

// GreaterEq returns whether r >= s.
func (r Rational) GreaterEq(s Rational) bool { return r.Cmp(s) >= 0 }

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Rational) Sign() int {
	return r.n().Sign()
}

// IsZero returns whether r == 0.
func (r Rational) IsZero() bool {
	return r.n().Sign() == 0
}

// IsInt returns whether r is an integer.
func (r Rational) IsInt() bool {
	return r.d().Cmp(bigOne) == 0
}

// String formats r as "n" if it is an integer or "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInt() {
		return r.n().String()
	}
	return r.n().String() + "/" + r.d().String()
}

// MixedString formats r as a mixed number "w..r/d", with a leading "-" for
// negative values. Integers are formatted as with String. A negative value
// with no whole part is formatted as "-0..r/d".
func (r Rational) MixedString() string {
	if r.IsInt() {
		return r.n().String()
	}
	whole, rem := new(big.Int).QuoRem(new(big.Int).Abs(r.n()), r.d(), new(big.Int))
	var b strings.Builder
	if r.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(whole.String())
	b.WriteString("..")
	b.WriteString(rem.String())
	b.WriteByte('/')
	b.WriteString(r.d().String())
	return b.String()
}
