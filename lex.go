package ratmath

import (
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a run of decimal digits. Signs are never part of numbers.
	tokenNum
	// tokenOp is an operator: + - * / ^ ** × or ÷.
	tokenOp
	// tokenColon separates the endpoints of an interval.
	tokenColon
	// tokenMixed is the .. separating the whole part of a mixed number.
	tokenMixed
	// tokenOpen is an open bracket, e.g. (.
	tokenOpen
	// tokenClose is a close bracket, e.g. ).
	tokenClose
)

var tokenNames = [...]string{
	tokenNone:  "None",
	tokenEOF:   "EOF",
	tokenNum:   "Num",
	tokenOp:    "Op",
	tokenColon: "Colon",
	tokenMixed: "Mixed",
	tokenOpen:  "Open",
	tokenClose: "Close",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// Operators contains the runes which are considered to be operators. × and ÷
// are synonyms for * and / as binary operators, but ÷ never separates the
// numerator and denominator of a literal.
const Operators = "+-*/^×÷"

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// The parser checks that a bracket in byte position k in OpenBrackets is
// matched with the bracket in byte position k in CloseBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// lexer scans tokens from an expression with whitespace already removed.
type lexer struct {
	src  []rune
	rune int
	p    []lexToken
}

func lex(src []rune) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next.
// Tokens pushed later are returned first.
func (l *lexer) push(tok lexToken) {
	l.p = append(l.p, tok)
}

// readRune reads a rune from the source. ok is false at the end of input.
func (l *lexer) readRune() (r rune, ok bool) {
	if l.rune >= len(l.src) {
		return 0, false
	}
	r = l.src[l.rune]
	l.rune++
	return r, true
}

// unreadRune unreads the last rune read.
func (l *lexer) unreadRune() {
	if l.rune == 0 {
		panic("ratmath: unread at start of input")
	}
	l.rune--
}

// next scans the next token from the input. At the end of input, the result
// is an EOF token, every time it is called.
func (l *lexer) next() (lexToken, error) {
	if k := len(l.p); k > 0 {
		tok := l.p[k-1]
		l.p = l.p[:k-1]
		return tok, nil
	}
	tok := lexToken{pos: l.rune + 1}
	r, ok := l.readRune()
	if !ok {
		tok.kind = tokenEOF
		return tok, nil
	}
	switch {
	case '0' <= r && r <= '9':
		l.unreadRune()
		tok.text = l.scanNum()
		tok.kind = tokenNum
	case r == '.':
		if r, ok := l.readRune(); !ok || r != '.' {
			return tok, l.error(tok.pos, "invalid token "+strconv.Quote(string(l.src[tok.pos-1:l.rune])))
		}
		tok.text = ".."
		tok.kind = tokenMixed
	case r == ':':
		tok.text = ":"
		tok.kind = tokenColon
	case strings.ContainsRune(OpenBrackets, r):
		tok.text = string(r)
		tok.kind = tokenOpen
	case strings.ContainsRune(CloseBrackets, r):
		tok.text = string(r)
		tok.kind = tokenClose
	case r == '*':
		tok.text = "*"
		tok.kind = tokenOp
		if r, ok := l.readRune(); ok {
			if r == '*' {
				tok.text = "**"
			} else {
				l.unreadRune()
			}
		}
	case strings.ContainsRune(Operators, r):
		tok.text = string(r)
		tok.kind = tokenOp
	default:
		return tok, l.error(tok.pos, "invalid token "+strconv.QuoteRune(r))
	}
	return tok, nil
}

func (l *lexer) scanNum() string {
	start := l.rune
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
	}
	return string(l.src[start:l.rune])
}

// remainder returns the input from the 1-based rune position pos onward.
func (l *lexer) remainder(pos int) string {
	if pos-1 >= len(l.src) {
		return ""
	}
	return string(l.src[pos-1:])
}

func (l *lexer) error(pos int, msg string) error {
	return &SyntaxError{Col: pos, Remainder: l.remainder(pos), Msg: msg}
}
