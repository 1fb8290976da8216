package ratmath

import (
	"strings"
)

// Interval is a closed interval [Low, High] of rationals. Intervals are
// immutable, and every arithmetic operation returns an interval containing
// every result of the operation applied to points of its operands. An
// interval with equal endpoints is a point and represents an exact value.
//
// The zero value is the point 0.
type Interval struct {
	lo, hi Rational
}

// NewInterval creates the interval between a and b in either order.
func NewInterval(a, b Rational) Interval {
	if a.LessEq(b) {
		return Interval{lo: a, hi: b}
	}
	return Interval{lo: b, hi: a}
}

// Point creates the interval containing only r.
func Point(r Rational) Interval {
	return Interval{lo: r, hi: r}
}

// IntervalOf creates the interval between the integers a and b.
func IntervalOf(a, b int64) Interval {
	return NewInterval(IntRational(a), IntRational(b))
}

// ZeroInterval returns the point 0.
func ZeroInterval() Interval { return Point(IntRational(0)) }

// OneInterval returns the point 1.
func OneInterval() Interval { return Point(IntRational(1)) }

// UnitInterval returns the interval [0, 1].
func UnitInterval() Interval { return IntervalOf(0, 1) }

// ParseInterval parses an interval written as "a:b", where a and b are
// rationals in any form ParseRational accepts. The endpoints may be in either
// order.
func ParseInterval(s string) (Interval, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Interval{}, &FormatError{Kind: "interval", Text: s, Reason: "use a:b"}
	}
	a, err := ParseRational(parts[0])
	if err != nil {
		return Interval{}, err
	}
	b, err := ParseRational(parts[1])
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(a, b), nil
}

// Low returns the lower endpoint of x.
func (x Interval) Low() Rational { return x.lo }

// High returns the upper endpoint of x.
func (x Interval) High() Rational { return x.hi }

// IsPoint returns whether the endpoints of x are equal.
func (x Interval) IsPoint() bool {
	return x.lo.Equal(x.hi)
}

func (x Interval) isZeroPoint() bool {
	return x.lo.IsZero() && x.hi.IsZero()
}

// Width returns High - Low.
func (x Interval) Width() Rational {
	return x.hi.Sub(x.lo)
}

// Midpoint returns the rational halfway between the endpoints of x.
func (x Interval) Midpoint() Rational {
	m, _ := x.lo.Add(x.hi).Div(IntRational(2))
	return m
}

// Add returns x + y.
func (x Interval) Add(y Interval) Interval {
	return NewInterval(x.lo.Add(y.lo), x.hi.Add(y.hi))
}

// Sub returns x - y. The endpoints cross: [a, b] - [c, d] = [a-d, b-c].
func (x Interval) Sub(y Interval) Interval {
	return NewInterval(x.lo.Sub(y.hi), x.hi.Sub(y.lo))
}

// Neg returns -x.
func (x Interval) Neg() Interval {
	return Interval{lo: x.hi.Neg(), hi: x.lo.Neg()}
}

// Mul returns x * y, the hull of the four endpoint products.
func (x Interval) Mul(y Interval) Interval {
	return hull(x.lo.Mul(y.lo), x.lo.Mul(y.hi), x.hi.Mul(y.lo), x.hi.Mul(y.hi))
}

// Div returns x / y. If y contains zero anywhere, including if it is the
// point zero, then the error is a *DivisionError.
func (x Interval) Div(y Interval) (Interval, error) {
	if y.isZeroPoint() {
		return Interval{}, &DivisionError{Op: "/", X: "0"}
	}
	if y.ContainsZero() {
		return Interval{}, &DivisionError{Op: "/", X: y.String()}
	}
	// y has no zero endpoint, so none of these fail.
	a, _ := x.lo.Div(y.lo)
	b, _ := x.lo.Div(y.hi)
	c, _ := x.hi.Div(y.lo)
	d, _ := x.hi.Div(y.hi)
	return hull(a, b, c, d), nil
}

// hull returns the smallest interval containing all of vs.
func hull(vs ...Rational) Interval {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v.Less(lo) {
			lo = v
		}
		if v.Greater(hi) {
			hi = v
		}
	}
	return Interval{lo: lo, hi: hi}
}

// Reciprocal returns 1/x. If x contains zero, the error is a *DivisionError.
func (x Interval) Reciprocal() (Interval, error) {
	if x.ContainsZero() {
		return Interval{}, &DivisionError{Op: "reciprocal", X: x.String()}
	}
	return Interval{lo: x.hi.inv(), hi: x.lo.inv()}, nil
}

// inv is Reciprocal for r known to be nonzero.
func (r Rational) inv() Rational {
	v, err := r.Reciprocal()
	if err != nil {
		panic("ratmath: reciprocal of zero endpoint")
	}
	return v
}

// Pow returns the tightest interval containing x^n for every x in the
// interval. Raising an interval containing zero to the power zero or to a
// negative power returns a *DomainError.
//
// Pow is not repeated multiplication; see RepeatedMul.
func (x Interval) Pow(n int64) (Interval, error) {
	switch {
	case n == 0:
		if x.isZeroPoint() {
			return Interval{}, &DomainError{X: x.String(), Exp: n, Func: "^", Reason: "zero cannot be raised to the power of zero"}
		}
		if x.ContainsZero() {
			return Interval{}, &DomainError{X: x.String(), Exp: n, Func: "^", Reason: "cannot raise an interval containing zero to the power of zero"}
		}
		return OneInterval(), nil
	case n < 0:
		if x.ContainsZero() {
			return Interval{}, &DomainError{X: x.String(), Exp: n, Func: "^", Reason: "cannot raise an interval containing zero to a negative power"}
		}
		p := x.pow(uint64(-n))
		return Interval{lo: p.hi.inv(), hi: p.lo.inv()}, nil
	}
	return x.pow(uint64(n)), nil
}

func (x Interval) pow(k uint64) Interval {
	if k%2 == 1 {
		// Odd powers are monotonic.
		return Interval{lo: x.lo.pow(k), hi: x.hi.pow(k)}
	}
	switch {
	case x.ContainsZero():
		a, b := x.lo.pow(k), x.hi.pow(k)
		if a.Greater(b) {
			return Interval{lo: Rational{}, hi: a}
		}
		return Interval{lo: Rational{}, hi: b}
	case x.hi.Sign() < 0:
		// Even powers decrease on negatives.
		return Interval{lo: x.hi.pow(k), hi: x.lo.pow(k)}
	default:
		return Interval{lo: x.lo.pow(k), hi: x.hi.pow(k)}
	}
}

// RepeatedMul returns the product of n copies of x using Mul. With a negative
// n, it is the product of -n copies of the reciprocal of x. The result is
// usually wider than Pow(n) because each factor varies independently: for
// [-1, 1], Pow(2) is [0, 1] but RepeatedMul(2) is [-1, 1].
//
// An exponent of zero returns a *DomainError, since there is no factor to
// start from. A negative exponent with x containing zero returns a
// *DivisionError.
func (x Interval) RepeatedMul(n int64) (Interval, error) {
	switch {
	case n == 0:
		return Interval{}, &DomainError{X: x.String(), Exp: n, Func: "**", Reason: "multiplicative exponentiation requires at least one factor"}
	case n < 0:
		r, err := x.Reciprocal()
		if err != nil {
			return Interval{}, err
		}
		return r.mpow(uint64(-n)), nil
	}
	return x.mpow(uint64(n)), nil
}

func (x Interval) mpow(k uint64) Interval {
	r := x
	for i := uint64(1); i < k; i++ {
		r = r.Mul(x)
	}
	return r
}

// Overlaps returns whether x and y have at least one point in common.
func (x Interval) Overlaps(y Interval) bool {
	return !(x.hi.Less(y.lo) || y.hi.Less(x.lo))
}

// Contains returns whether y is a subset of x.
func (x Interval) Contains(y Interval) bool {
	return x.lo.LessEq(y.lo) && x.hi.GreaterEq(y.hi)
}

// ContainsValue returns whether r is in x.
func (x Interval) ContainsValue(r Rational) bool {
	return x.lo.LessEq(r) && x.hi.GreaterEq(r)
}

// ContainsZero returns whether 0 is in x.
func (x Interval) ContainsZero() bool {
	return x.lo.Sign() <= 0 && x.hi.Sign() >= 0
}

// Equal returns whether x and y have the same endpoints.
func (x Interval) Equal(y Interval) bool {
	return x.lo.Equal(y.lo) && x.hi.Equal(y.hi)
}

// Intersection returns the interval of points in both x and y. If they do not
// overlap, ok is false.
func (x Interval) Intersection(y Interval) (r Interval, ok bool) {
	if !x.Overlaps(y) {
		return Interval{}, false
	}
	lo, hi := x.lo, x.hi
	if y.lo.Greater(lo) {
		lo = y.lo
	}
	if y.hi.Less(hi) {
		hi = y.hi
	}
	return Interval{lo: lo, hi: hi}, true
}

// Union returns the smallest interval containing x and y, provided they
// overlap or are adjacent. Intervals are adjacent when the upper endpoint of
// one plus exactly 1 is the lower endpoint of the other, as with integer
// ranges 1:2 and 3:4. The rule applies to all rationals, so 3/2:2 and 3:4
// are adjacent as well. If the intervals are neither overlapping nor
// adjacent, ok is false.
func (x Interval) Union(y Interval) (r Interval, ok bool) {
	one := IntRational(1)
	adjacent := x.hi.Add(one).Equal(y.lo) || y.hi.Add(one).Equal(x.lo)
	if !adjacent && !x.Overlaps(y) {
		return Interval{}, false
	}
	lo, hi := x.lo, x.hi
	if y.lo.Less(lo) {
		lo = y.lo
	}
	if y.hi.Greater(hi) {
		hi = y.hi
	}
	return Interval{lo: lo, hi: hi}, true
}

// String formats x as "low:high".
func (x Interval) String() string {
	return x.lo.String() + ":" + x.hi.String()
}

// MixedString formats x as "low:high" with each endpoint formatted by
// Rational.MixedString.
func (x Interval) MixedString() string {
	return x.lo.MixedString() + ":" + x.hi.MixedString()
}
