package calc

import (
	"io"
	"math"
	"strconv"
)

// Expr    = Unary | Expr binop Expr
// Unary   = Primary | '+' Unary | '-' Unary
// Primary = num | str | ident | '(' Expr ')' | Primary '(' Args ')' | Primary '.' ident
// Args    = [ Expr { ',' Expr } ]
// binop   = '+' | '-' | '*' | '/' | '//' | '%' | '**'
//
// Identifiers, calls, attribute selections, and string literals parse so that
// the evaluator can reject them by name. They never evaluate.

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// maxDepth bounds parser recursion. Nesting deeper than this fails with
// DepthError rather than riding the goroutine stack down. The evaluator
// never recurses deeper than the parser did, so this bounds evaluation too.
const maxDepth = 512

// parser holds general data for parsing.
type parser struct {
	// depth is the current parseterm recursion depth.
	depth int
}

// Parse parses a single arithmetic expression. src must contain exactly one
// expression; input past it is an error.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	var p parser
	n, err := p.parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if n == nil || tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok)
	}
	return &Expr{n: n}, nil
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func (p *parser) parseterm(scan *lexer, until operator) (*node, error) {
	if p.depth++; p.depth > maxDepth {
		return nil, &DepthError{Col: scan.rune}
	}
	defer func() { p.depth-- }()
	n, err := p.parselhs(scan, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			// Binary operator.
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := p.parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenOpen:
			// A call. The callee may be any primary; the evaluator is what
			// rejects it, naming the construct.
			args, err := p.parseargs(scan, tok)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeCall, left: n, right: args}
		case tokenDot:
			// Attribute selection binds tightest, like a call.
			name, err := scan.next()
			if err != nil {
				return nil, err
			}
			if name.kind != tokenIdent {
				return nil, &UnexpectedTokenError{Col: name.pos, Token: name.text, Ctx: "attribute"}
			}
			n = &node{kind: nodeAttr, name: name.text, left: n}
		case tokenNum, tokenIdent, tokenStr:
			// Adjacent primaries with no operator, e.g. "2 3".
			return nil, &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary and
// any encountered token must be valid as the start of a subexpression.
func (p *parser) parselhs(scan *lexer, until operator) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := numval(tok)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNum, name: tok.text, val: v}, nil
	case tokenIdent:
		return &node{kind: nodeName, name: tok.text}, nil
	case tokenStr:
		return &node{kind: nodeStr, name: tok.text}, nil
	case tokenOp:
		// Unary operator.
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x**-y -> x**(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := p.parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		return &node{kind: prec.op, left: rhs}, nil
	case tokenOpen:
		rhs, err := p.parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		return rhs, nil
	case tokenClose, tokenSep:
		// This might be part of a niladic call like f(), so just let the
		// caller decide what to do.
		scan.push(tok)
		return nil, nil
	case tokenDot:
		return nil, &UnexpectedTokenError{Col: tok.pos, Token: "."}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("calc: unknown token: " + tok.String())
	}
}

// parseargs parses a parenthesized list of zero or more call arguments,
// ending on the close parenthesis, which it pushes for the caller.
func (p *parser) parseargs(scan *lexer, open lexToken) (*node, error) {
	var head node
	l := &head
	for {
		rhs, err := p.parseterm(scan, exprprec)
		if err != nil {
			// As a special case, reporting mismatched brackets is more helpful
			// than empty expression, if that's what we'd do here.
			if ee, _ := err.(*EmptyExpressionError); ee != nil {
				err = &BracketError{Col: ee.Col, Left: open.text}
			}
			return nil, err
		}
		end := scan.must()
		switch end.kind {
		case tokenClose:
			if rhs == nil {
				// f() is allowed, but f(a,) isn't.
				if l != &head {
					return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
				}
				return nil, nil
			}
			l.right = &node{kind: nodeArg, left: rhs}
			return head.right, nil
		case tokenSep:
			if rhs == nil {
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			l.right = &node{kind: nodeArg, left: rhs}
			l = l.right
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: open.text, Right: ""}
		default:
			panic("calc: parseargs ended on non-end token " + end.String())
		}
	}
}

// numval converts a number token to its value. Literals too large for a
// float64 become infinities rather than errors.
func numval(tok lexToken) (float64, error) {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		ne, _ := err.(*strconv.NumError)
		if ne == nil || ne.Err != strconv.ErrRange {
			return 0, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		// ParseFloat returns the nearest infinity along with ErrRange.
		if math.IsInf(v, 0) {
			return v, nil
		}
		// Underflow; the closest representable value is what ParseFloat gave.
	}
	return v, nil
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression.
func itShouldNotHaveEndedThisWay(tok lexToken) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open parenthesis that was not closed.
		return &BracketError{Col: tok.pos, Left: "(", Right: ""}
	case tokenClose:
		// A close parenthesis here has no matching open.
		return &BracketError{Col: tok.pos, Left: "", Right: tok.text}
	default:
		return &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
	}
}

// String creates a string representation of the parsed expression, with
// explicit grouping around every operation.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "//":
		return operator{5, false, nodeFloorDiv}
	case "%":
		return operator{5, false, nodeMod}
	case "**":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone. Unary operators bind
// tighter than multiplication but looser than exponentiation, so -2**2 is
// -(2**2) while 2**-2 is 2**(-2).
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodePos}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
