package calc

import (
	"io"
	"strconv"
	"strings"
)

// Eval evaluates the expression and returns the result. Evaluation is a
// structural walk of the parsed tree; the allow-list of constructs that
// evaluate is the switch in the node eval method, and everything outside it
// returns an UnsupportedError. Operands evaluate left to right, and the first
// error aborts the walk.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// eval computes the node's value.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodePos:
		return n.left.eval()
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeFloorDiv, nodeMod, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return l + r, nil
		case nodeSub:
			return l - r, nil
		case nodeMul:
			return l * r, nil
		case nodeDiv:
			return divide(l, r)
		case nodeFloorDiv:
			return floordiv(l, r)
		case nodeMod:
			return modulo(l, r)
		default: // nodePow
			return power(l, r)
		}
	case nodeName:
		return 0, &UnsupportedError{Construct: "identifier " + strconv.Quote(n.name)}
	case nodeCall:
		return 0, &UnsupportedError{Construct: "function call"}
	case nodeAttr:
		return 0, &UnsupportedError{Construct: "attribute access"}
	case nodeStr:
		return 0, &UnsupportedError{Construct: "string literal"}
	case nodeArg:
		// Argument links hang off calls, which reject before reaching them.
		return 0, &UnsupportedError{Construct: "argument list"}
	default:
		return 0, &UnsupportedError{Construct: n.kind.String()}
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// UnsupportedError is an error indicating an expression that parses but
// contains a construct outside the arithmetic allow-list, like a function
// call or an identifier.
type UnsupportedError struct {
	// Construct names the offending construct.
	Construct string
}

func (err *UnsupportedError) Error() string {
	return "unsupported expression element: " + err.Construct
}
