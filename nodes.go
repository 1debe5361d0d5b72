package calc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// name is the literal or identifier text, or the attribute name for
	// nodeAttr.
	name string
	// val is the numeric value of a nodeNum.
	val float64

	left  *node
	right *node
}

type nodeKind int8

// The evaluator is an exhaustive switch over these kinds. The kinds after
// nodeName are representable so that the parser accepts the full grammar, but
// none of them evaluates.
const (
	nodeNone nodeKind = iota

	nodeNum // push val

	nodePos // evaluate left
	nodeNeg // evaluate left, then negate

	nodeAdd      // evaluate left, add right
	nodeSub      // evaluate left, sub right
	nodeMul      // evaluate left, mul right
	nodeDiv      // evaluate left, true-divide by right
	nodeFloorDiv // evaluate left, divide by right, floor
	nodeMod      // evaluate left, mod by right, sign of divisor
	nodePow      // evaluate left, exp by right

	nodeName // identifier reference; rejected
	nodeCall // left is callee, right is link to nodeArg; rejected
	nodeArg  // eval left, right is link to next arg
	nodeStr  // string literal; rejected
	nodeAttr // left is value, name is attribute; rejected
)

var kindNames = [...]string{
	nodeNone:     "None",
	nodeNum:      "Num",
	nodePos:      "Pos",
	nodeNeg:      "Neg",
	nodeAdd:      "Add",
	nodeSub:      "Sub",
	nodeMul:      "Mul",
	nodeDiv:      "Div",
	nodeFloorDiv: "FloorDiv",
	nodeMod:      "Mod",
	nodePow:      "Pow",
	nodeName:     "Name",
	nodeCall:     "Call",
	nodeArg:      "Arg",
	nodeStr:      "Str",
	nodeAttr:     "Attr",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// opname is the operator text for a binary node kind, or the empty string.
func opname(k nodeKind) string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeFloorDiv:
		return "//"
	case nodeMod:
		return "%"
	case nodePow:
		return "**"
	default:
		return ""
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeStr:
		b.WriteString(strconv.Quote(n.name))
	case nodePos:
		b.WriteString("(+")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeFloorDiv, nodeMod, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(opname(n.kind))
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeCall:
		n.left.fmt(b)
		n.fmtargs(b)
	case nodeArg:
		// Args usually only appear inside calls, which are handled by fmtargs.
		b.WriteByte(':')
		n.left.fmt(b)
		if n.right != nil {
			n.right.fmt(b)
		}
	case nodeAttr:
		n.left.fmt(b)
		b.WriteByte('.')
		b.WriteString(n.name)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) fmtargs(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	l := n.right
	if l == nil {
		// Niladic call.
		return
	}
	l.left.fmt(b)
	for l.right != nil {
		l = l.right
		b.WriteString(", ")
		l.left.fmt(b)
	}
}
