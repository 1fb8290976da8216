package ratmath

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Expr = Term { ('+' | '-') Term }
// Term = Factor { ('*' | '/') Factor }
// Factor = Open Expr Close [PowSuffix] | '-' Factor | Interval [PowSuffix]
// Open, Close = '(' ')' | '[' ']' | '{' '}'  (matched)
// PowSuffix = '^' Exponent | '**' Exponent
// Exponent = ['-'] digits
// Interval = Rational [':' Rational]
// Rational = ['-'] digits [ '..' digits '/' digits | '/' digits ]

// Expr is a parsed expression. Evaluating it always gives the same result.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// maxexp is the largest allowed exponent magnitude, or -1 for no limit.
	maxexp int64
}

// parser holds the state of one parse.
type parser struct {
	scan *lexer
}

// Parse parses an expression. Before parsing, all whitespace is removed, and
// the input is normalized to NFKC unless DisableNormalization is given.
// Compatibility forms that would fold into digits, like superscripts and
// circled numbers, are rejected rather than read as plain digits; full-width
// digits are accepted. Errors in the input text are returned as *SyntaxError.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := parsectx{maxexp: -1}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	src = stripspace(src)
	if !p.nonorm {
		if err := checkfolds([]rune(src)); err != nil {
			return nil, err
		}
		src = stripspace(norm.NFKC.String(src))
	}
	if src == "" {
		return nil, &SyntaxError{Col: 1, Msg: "expression cannot be empty"}
	}
	ps := parser{scan: lex([]rune(src))}
	n, err := ps.parseexpr()
	if err != nil {
		return nil, err
	}
	tok, err := ps.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenEOF {
		return nil, ps.error(tok, "unexpected token at end", nil)
	}
	return &Expr{n: n, maxexp: p.maxexp}, nil
}

func stripspace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// checkfolds returns a syntax error for the first rune outside ASCII whose
// NFKC form contains a decimal digit, other than the full-width digits.
// Normalizing 2² would otherwise give 22.
func checkfolds(src []rune) error {
	for i, r := range src {
		if r < utf8.RuneSelf || '０' <= r && r <= '９' {
			continue
		}
		f := norm.NFKC.String(string(r))
		if strings.ContainsAny(f, "0123456789") {
			return &SyntaxError{Col: i + 1, Remainder: string(src[i:]), Msg: "invalid token " + strconv.QuoteRune(r) + ": not a plain digit"}
		}
	}
	return nil
}

// parseexpr parses a sum or difference of terms. It pushes the first token
// that cannot continue the expression.
func (p *parser) parseexpr() (*node, error) {
	n, err := p.parseterm()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind == tokenOp && tok.text == "+":
			kind = nodeAdd
		case tok.kind == tokenOp && tok.text == "-":
			kind = nodeSub
		default:
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.parseterm()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parseterm parses a product or quotient of factors.
func (p *parser) parseterm() (*node, error) {
	n, err := p.parsefactor()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind == tokenOp && (tok.text == "*" || tok.text == "×"):
			kind = nodeMul
		case tok.kind == tokenOp && (tok.text == "/" || tok.text == "÷"):
			kind = nodeDiv
		default:
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.parsefactor()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parsefactor parses a parenthesized expression, a negation, or an interval,
// with an optional power suffix on the first and last.
func (p *parser) parsefactor() (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenOpen:
		n, err := p.parseexpr()
		if err != nil {
			return nil, err
		}
		end, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if end.kind != tokenClose {
			return nil, p.error(end, "missing closing parenthesis", nil)
		}
		if strings.Index(OpenBrackets, tok.text) != strings.Index(CloseBrackets, end.text) {
			return nil, p.error(end, "mismatched bracket: "+tok.text+"expr"+end.text, nil)
		}
		return p.parsepow(n)
	case tokenOp:
		if tok.text != "-" {
			return nil, p.error(tok, "unexpected operator "+strconv.Quote(tok.text), nil)
		}
		// -x is parsed as -(x); the sign of the first endpoint of an
		// interval therefore applies to the whole interval.
		n, err := p.parsefactor()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: n}, nil
	case tokenNum:
		p.scan.push(tok)
		n, err := p.parseinterval()
		if err != nil {
			return nil, err
		}
		return p.parsepow(n)
	case tokenEOF:
		return nil, p.error(tok, "unexpected end of expression", nil)
	default:
		return nil, p.error(tok, "unexpected "+strconv.Quote(tok.text), nil)
	}
}

// parsepow parses an optional power suffix applied to n.
func (p *parser) parsepow(n *node) (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	var kind nodeKind
	switch {
	case tok.kind == tokenOp && tok.text == "^":
		kind = nodePow
	case tok.kind == tokenOp && tok.text == "**":
		kind = nodeMpow
	default:
		p.scan.push(tok)
		return n, nil
	}
	exp, err := p.parseexponent()
	if err != nil {
		return nil, err
	}
	return &node{kind: kind, left: n, exp: exp}, nil
}

// parseexponent parses an integer exponent with an optional minus sign.
func (p *parser) parseexponent() (int64, error) {
	tok, err := p.scan.next()
	if err != nil {
		return 0, err
	}
	start, neg := tok, false
	if tok.kind == tokenOp && tok.text == "-" {
		neg = true
		if tok, err = p.scan.next(); err != nil {
			return 0, err
		}
	}
	if tok.kind != tokenNum {
		return 0, p.error(tok, "invalid exponent", nil)
	}
	text := tok.text
	if neg {
		text = "-" + text
	}
	e, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, p.error(start, "invalid exponent", &FormatError{Kind: "exponent", Text: text, Reason: "out of range"})
	}
	return e, nil
}

// parseinterval parses a rational optionally followed by ':' and a second
// rational.
func (p *parser) parseinterval() (*node, error) {
	lo, err := p.parserational()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenColon {
		p.scan.push(tok)
		return lo, nil
	}
	hi, err := p.parserational()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeInterval, left: lo, right: hi}, nil
}

// parserational parses a rational literal: an integer, a fraction, or a mixed
// number, with an optional minus sign.
func (p *parser) parserational() (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	start, neg := tok, false
	if tok.kind == tokenOp && tok.text == "-" {
		neg = true
		if tok, err = p.scan.next(); err != nil {
			return nil, err
		}
	}
	if tok.kind != tokenNum {
		return nil, p.error(tok, "invalid rational number format", nil)
	}
	var whole, num, den string
	num = tok.text
	next, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	kind := "rational"
	switch {
	case next.kind == tokenMixed:
		kind = "mixed number"
		whole = num
		if num, err = p.expectnum(`missing numerator after ".."`); err != nil {
			return nil, err
		}
		slash, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if slash.kind != tokenOp || slash.text != "/" {
			return nil, p.error(slash, "invalid mixed number format", &FormatError{Kind: "mixed number", Text: p.scan.remainder(start.pos), Reason: "missing denominator"})
		}
		if den, err = p.expectnum("missing denominator"); err != nil {
			return nil, err
		}
	case next.kind == tokenOp && next.text == "/":
		// The slash belongs to the literal only when digits follow it.
		// Otherwise, it is a division.
		d, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if d.kind != tokenNum {
			p.scan.push(d)
			p.scan.push(next)
			break
		}
		den = d.text
	default:
		p.scan.push(next)
	}
	val, err := literal(neg, whole, num, den)
	if err != nil {
		return nil, p.error(start, "invalid "+kind, err)
	}
	text := num
	switch {
	case whole != "":
		text = whole + ".." + num + "/" + den
	case den != "":
		text = num + "/" + den
	}
	if neg {
		text = "-" + text
	}
	return &node{kind: nodeNum, name: text, val: val}, nil
}

// expectnum scans a number token within a mixed number, returning a syntax
// error with reason if the next token is anything else.
func (p *parser) expectnum(reason string) (string, error) {
	tok, err := p.scan.next()
	if err != nil {
		return "", err
	}
	if tok.kind != tokenNum {
		return "", p.error(tok, "invalid mixed number format", &FormatError{Kind: "mixed number", Text: p.scan.remainder(tok.pos), Reason: reason})
	}
	return tok.text, nil
}

func (p *parser) error(tok lexToken, msg string, err error) error {
	return &SyntaxError{Col: tok.pos, Remainder: p.scan.remainder(tok.pos), Msg: msg, Err: err}
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}
