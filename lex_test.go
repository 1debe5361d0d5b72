package calc

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// empty inputs
		{"", []lexToken{{kind: tokenEOF, pos: 1}}, 0},
		{" \t \r\n ", []lexToken{{kind: tokenEOF, pos: 7}}, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 4}}, 0},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 4}}, 0},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 5}}, 0},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 3}}, 0},
		{"1e", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 3}}, 1},
		{"1a", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 3}}, 1},
		{"1.2.3", []lexToken{{pos: 1}, {text: "3", kind: tokenNum, pos: 5}, {kind: tokenEOF, pos: 6}}, 1},
		// operators
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {kind: tokenEOF, pos: 3}}, 0},
		{"5%3", []lexToken{{text: "5", kind: tokenNum, pos: 1}, {text: "%", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{"2**3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "**", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 4}, {kind: tokenEOF, pos: 5}}, 0},
		{"7//2", []lexToken{{text: "7", kind: tokenNum, pos: 1}, {text: "//", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 4}, {kind: tokenEOF, pos: 5}}, 0},
		{"2 ** -3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "**", kind: tokenOp, pos: 3}, {text: "-", kind: tokenOp, pos: 6}, {text: "3", kind: tokenNum, pos: 7}, {kind: tokenEOF, pos: 8}}, 0},
		// parentheses and separators
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{"1,2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: ",", kind: tokenSep, pos: 2}, {text: "2", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		// identifiers, attributes, strings
		{"a_1", []lexToken{{text: "a_1", kind: tokenIdent, pos: 1}, {kind: tokenEOF, pos: 4}}, 0},
		{"__import__", []lexToken{{text: "__import__", kind: tokenIdent, pos: 1}, {kind: tokenEOF, pos: 11}}, 0},
		{"a.b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: ".", kind: tokenDot, pos: 2}, {text: "b", kind: tokenIdent, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{".", []lexToken{{text: ".", kind: tokenDot, pos: 1}, {kind: tokenEOF, pos: 2}}, 0},
		{"'os'", []lexToken{{text: "os", kind: tokenStr, pos: 1}, {kind: tokenEOF, pos: 5}}, 0},
		{`"echo no"`, []lexToken{{text: "echo no", kind: tokenStr, pos: 1}, {kind: tokenEOF, pos: 10}}, 0},
		{"'oops", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 6}}, 1},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 2}}, 1},
		{"$a", []lexToken{{pos: 1}, {text: "a", kind: tokenIdent, pos: 2}, {kind: tokenEOF, pos: 3}}, 1},
		{"<", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 2}}, 1},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		errs := c.errs
		for _, want := range c.tokens {
			got, err := scan.next()
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if errs > 0 {
					errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		for got, err := scan.next(); !errors.Is(err, io.EOF); got, err = scan.next() {
			if err != nil && errs > 0 {
				errs--
				continue
			}
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}
