package calc

import "strconv"

// OperatorError is an error indicating an operator token that is not
// understood by the parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the error.
	Col int
	// Left is the opening parenthesis, if any.
	Left string
	// Right is the mismatched closing parenthesis, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// UnexpectedTokenError is an error indicating a token that cannot appear
// where it did, e.g. two adjacent numbers or a stray comma. It implements
// InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token text.
	Token string
	// Ctx names what the parser was expecting instead, if anything.
	Ctx string
}

func (err *UnexpectedTokenError) Error() string {
	if err.Ctx != "" {
		return errpos(err.Col, "unexpected "+strconv.Quote(err.Token)+" in "+err.Ctx)
	}
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DepthError is an error indicating an expression nested more deeply than the
// parser permits. It implements InputError.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested more than "+strconv.Itoa(maxDepth)+" levels deep")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from input that does not parse as a single arithmetic expression implements
// InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*LexError)(nil)
)
