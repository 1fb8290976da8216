package ratmath

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// FractionInterval is a closed interval of unreduced fractions, used for
// Stern–Brocot style partitioning by mediants. The zero value is the point 0.
type FractionInterval struct {
	lo, hi Fraction
}

// NewFractionInterval creates the interval between a and b in either order.
func NewFractionInterval(a, b Fraction) FractionInterval {
	if a.LessEq(b) {
		return FractionInterval{lo: a, hi: b}
	}
	return FractionInterval{lo: b, hi: a}
}

// FractionIntervalOf converts a rational interval to a fraction interval with
// endpoints in lowest terms.
func FractionIntervalOf(x Interval) FractionInterval {
	return FractionInterval{lo: FractionFromRational(x.lo), hi: FractionFromRational(x.hi)}
}

// Low returns the lower endpoint of x.
func (x FractionInterval) Low() Fraction { return x.lo }

// High returns the upper endpoint of x.
func (x FractionInterval) High() Fraction { return x.hi }

// MediantSplit splits x at the mediant of its endpoints. Both halves share
// the unreduced mediant as an endpoint. If the endpoint denominators sum to
// zero, the error is a *DivisionError.
func (x FractionInterval) MediantSplit() (left, right FractionInterval, err error) {
	m, err := Mediant(x.lo, x.hi)
	if err != nil {
		return FractionInterval{}, FractionInterval{}, err
	}
	return NewFractionInterval(x.lo, m), NewFractionInterval(m, x.hi), nil
}

// PartitionWithMediants splits every piece at its mediant n times, giving 2^n
// pieces in order. With n == 0, the result is x alone. A negative n returns a
// *ValidationError, and a failed split returns the *DivisionError from
// MediantSplit.
func (x FractionInterval) PartitionWithMediants(n int) ([]FractionInterval, error) {
	if n < 0 {
		return nil, &ValidationError{Op: "partition", Reason: "depth of mediant partitioning must be non-negative, not " + strconv.Itoa(n)}
	}
	pieces := []FractionInterval{x}
	for i := 0; i < n; i++ {
		next := make([]FractionInterval, 0, 2*len(pieces))
		for _, p := range pieces {
			l, r, err := p.MediantSplit()
			if err != nil {
				return nil, err
			}
			next = append(next, l, r)
		}
		pieces = next
	}
	return pieces, nil
}

// PartitionWith splits x at the cut points that fn returns for the endpoints
// of x. The points may be in any order. Points with the same value as each
// other or as an endpoint are used once, keeping the first representation. If
// any point is outside x, the error is a *ValidationError.
func (x FractionInterval) PartitionWith(fn func(lo, hi Fraction) []Fraction) ([]FractionInterval, error) {
	cuts := fn(x.lo, x.hi)
	interior := make([]Fraction, 0, len(cuts))
	for _, c := range cuts {
		if c.Less(x.lo) || c.Greater(x.hi) {
			return nil, &ValidationError{Op: "partition", Reason: "partition point " + c.String() + " is outside " + x.String()}
		}
		if c.Cmp(x.lo) == 0 || c.Cmp(x.hi) == 0 {
			continue
		}
		interior = append(interior, c)
	}
	slices.SortStableFunc(interior, Fraction.Cmp)
	interior = slices.CompactFunc(interior, func(a, b Fraction) bool { return a.Cmp(b) == 0 })
	r := make([]FractionInterval, 0, len(interior)+1)
	lo := x.lo
	for _, c := range interior {
		r = append(r, FractionInterval{lo: lo, hi: c})
		lo = c
	}
	return append(r, FractionInterval{lo: lo, hi: x.hi}), nil
}

// Interval returns the rational interval with the same values as x.
func (x FractionInterval) Interval() Interval {
	return NewInterval(x.lo.Rational(), x.hi.Rational())
}

// Equal returns whether the endpoints of x and y are equal as by
// Fraction.Equal.
func (x FractionInterval) Equal(y FractionInterval) bool {
	return x.lo.Equal(y.lo) && x.hi.Equal(y.hi)
}

// String formats x as "low:high".
func (x FractionInterval) String() string {
	return x.lo.String() + ":" + x.hi.String()
}
