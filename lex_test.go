package ratmath

import (
	"errors"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		{"", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1/2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "/", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		{"1..1/2", []lexToken{
			{text: "1", kind: tokenNum, pos: 1},
			{text: "..", kind: tokenMixed, pos: 2},
			{text: "1", kind: tokenNum, pos: 4},
			{text: "/", kind: tokenOp, pos: 5},
			{text: "2", kind: tokenNum, pos: 6},
		}, 0},
		{"1:2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: ":", kind: tokenColon, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"^", []lexToken{{text: "^", kind: tokenOp, pos: 1}}, 0},
		{"**", []lexToken{{text: "**", kind: tokenOp, pos: 1}}, 0},
		{"***", []lexToken{{text: "**", kind: tokenOp, pos: 1}, {text: "*", kind: tokenOp, pos: 3}}, 0},
		{"2*3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 3}}, 0},
		{"×÷", []lexToken{{text: "×", kind: tokenOp, pos: 1}, {text: "÷", kind: tokenOp, pos: 2}}, 0},
		// brackets
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{".", []lexToken{{pos: 1}}, 1},
		{"1.5", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {pos: 2}}, 1},
		{"a", []lexToken{{pos: 1}}, 1},
	}

	for _, c := range cases {
		scan := lex([]rune(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				var serr *SyntaxError
				if !errors.As(err, &serr) {
					t.Errorf("scanning %q: error %v is not a SyntaxError", c.src, err)
				}
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
			continue
		}
		if got, err := scan.next(); got.kind != tokenEOF || err != nil {
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
	}
}

func TestLexPush(t *testing.T) {
	scan := lex([]rune("1/"))
	a, _ := scan.next()
	b, _ := scan.next()
	scan.push(b)
	scan.push(a)
	if got, _ := scan.next(); got != a {
		t.Errorf("first token after push: want %v, got %v", a, got)
	}
	if got, _ := scan.next(); got != b {
		t.Errorf("second token after push: want %v, got %v", b, got)
	}
	if got, _ := scan.next(); got.kind != tokenEOF {
		t.Errorf("expected EOF, got %v", got)
	}
	if got, _ := scan.next(); got.kind != tokenEOF {
		t.Errorf("expected EOF again, got %v", got)
	}
}

func TestLexErrorRemainder(t *testing.T) {
	scan := lex([]rune("12$34"))
	scan.next()
	_, err := scan.next()
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("want SyntaxError, got %v", err)
	}
	if serr.Col != 3 {
		t.Errorf("wrong column: want 3, got %d", serr.Col)
	}
	if serr.Remainder != "$34" {
		t.Errorf("wrong remainder: want %q, got %q", "$34", serr.Remainder)
	}
}
