package ratmath

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	nonormopt struct{}
	maxexpopt int64
)

// parsectx holds options for parsing.
type parsectx struct {
	// nonorm disables NFKC normalization of the input.
	nonorm bool
	// maxexp is the largest allowed exponent magnitude, or -1 for no limit.
	maxexp int64
}

// DisableNormalization tells the parser not to apply Unicode NFKC
// normalization to the input. Normally, compatibility forms like full-width
// digits are accepted as their ASCII equivalents.
func DisableNormalization() ParseOption {
	return nonormopt{}
}

func (nonormopt) parseOption(p parsectx) parsectx {
	p.nonorm = true
	return p
}

// MaxExponent limits the magnitude of exponents after ^ and **. Evaluating an
// expression with a larger exponent returns a *DomainError. Since ** performs
// one interval multiplication per unit of exponent, a limit bounds the work
// done for untrusted input. MaxExponent panics if n is negative.
func MaxExponent(n int64) ParseOption {
	if n < 0 {
		panic("ratmath: negative maximum exponent " + strconv.FormatInt(n, 10))
	}
	return maxexpopt(n)
}

func (o maxexpopt) parseOption(p parsectx) parsectx {
	p.maxexp = int64(o)
	return p
}
