package ratmath

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// name is the source text of a literal.
	name string
	// val is the value of a literal.
	val Rational
	// exp is the exponent of nodePow and nodeMpow.
	exp int64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum      // push point val
	nodeInterval // push interval between left.val and right.val

	nodeNeg  // evaluate left, then multiply by -1
	nodeAdd  // evaluate left, add right
	nodeSub  // evaluate left, sub right
	nodeMul  // evaluate left, mul right
	nodeDiv  // evaluate left, div by right
	nodePow  // evaluate left, closed-form power by exp
	nodeMpow // evaluate left, multiply by itself exp times
)

var nodeNames = [...]string{
	nodeNone:     "None",
	nodeNum:      "Num",
	nodeInterval: "Interval",
	nodeNeg:      "Neg",
	nodeAdd:      "Add",
	nodeSub:      "Sub",
	nodeMul:      "Mul",
	nodeDiv:      "Div",
	nodePow:      "Pow",
	nodeMpow:     "Mpow",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeNames[k]
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.name)
	case nodeInterval:
		b.WriteString(n.left.name)
		b.WriteByte(':')
		b.WriteString(n.right.name)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeAdd:
		n.left.fmt(b, !square)
		b.WriteString(" + ")
		n.right.fmt(b, !square)
	case nodeSub:
		n.left.fmt(b, !square)
		b.WriteString(" - ")
		n.right.fmt(b, !square)
	case nodeMul:
		n.left.fmt(b, !square)
		b.WriteString(" * ")
		n.right.fmt(b, !square)
	case nodeDiv:
		n.left.fmt(b, !square)
		b.WriteString(" / ")
		n.right.fmt(b, !square)
	case nodePow:
		n.left.fmt(b, !square)
		b.WriteString(" ^ ")
		b.WriteString(strconv.FormatInt(n.exp, 10))
	case nodeMpow:
		n.left.fmt(b, !square)
		b.WriteString(" ** ")
		b.WriteString(strconv.FormatInt(n.exp, 10))
	default:
		panic("ratmath: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
