package ratmath

import (
	"errors"
	"io"
	"strings"
)

// Eval evaluates the expression. If an error occurs, e.g. a division by an
// interval containing zero, then the result is the zero interval and the
// error describes the first failing operation.
func (e *Expr) Eval() (Interval, error) {
	return e.n.eval(e)
}

var negOne = Point(IntRational(-1))

// eval computes the node's value.
func (n *node) eval(e *Expr) (Interval, error) {
	switch n.kind {
	case nodeNum:
		return Point(n.val), nil
	case nodeInterval:
		return NewInterval(n.left.val, n.right.val), nil
	case nodeNeg:
		x, err := n.left.eval(e)
		if err != nil {
			return Interval{}, err
		}
		return negOne.Mul(x), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		l, err := n.left.eval(e)
		if err != nil {
			return Interval{}, err
		}
		r, err := n.right.eval(e)
		if err != nil {
			return Interval{}, err
		}
		switch n.kind {
		case nodeAdd:
			return l.Add(r), nil
		case nodeSub:
			return l.Sub(r), nil
		case nodeMul:
			return l.Mul(r), nil
		default:
			return l.Div(r)
		}
	case nodePow:
		x, err := n.left.eval(e)
		if err != nil {
			return Interval{}, err
		}
		if err := e.checkexp(x, n.exp, "^"); err != nil {
			return Interval{}, err
		}
		// Reject 0^0 here as well as in Pow so that the error names the
		// operator as written.
		if n.exp == 0 && x.isZeroPoint() {
			return Interval{}, &DomainError{X: "0", Exp: 0, Func: "^", Reason: "zero cannot be raised to the power of zero"}
		}
		return x.Pow(n.exp)
	case nodeMpow:
		x, err := n.left.eval(e)
		if err != nil {
			return Interval{}, err
		}
		if err := e.checkexp(x, n.exp, "**"); err != nil {
			return Interval{}, err
		}
		return x.RepeatedMul(n.exp)
	default:
		panic("ratmath: invalid AST node " + n.kind.String())
	}
}

// checkexp enforces the maximum exponent option.
func (e *Expr) checkexp(x Interval, exp int64, op string) error {
	if e.maxexp < 0 {
		return nil
	}
	if exp > e.maxexp || exp < -e.maxexp {
		return &DomainError{X: x.String(), Exp: exp, Func: op, Reason: "exponent exceeds the configured maximum"}
	}
	return nil
}

// Eval is a shortcut to read an entire expression from src, parse it, and
// return its result.
func Eval(src io.RuneScanner, opts ...ParseOption) (Interval, error) {
	var b strings.Builder
	for {
		r, _, err := src.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Interval{}, err
		}
		b.WriteRune(r)
	}
	return EvalString(b.String(), opts...)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (Interval, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return Interval{}, err
	}
	return a.Eval()
}
