package calc

import (
	"math"
	"strconv"
)

// Calculator provides the basic arithmetic operations over float64 values.
// It is stateless; the zero value is ready to use, and every method is safe
// for concurrent use.
type Calculator struct{}

// Add returns a + b.
func (Calculator) Add(a, b float64) float64 { return a + b }

// Subtract returns a - b.
func (Calculator) Subtract(a, b float64) float64 { return a - b }

// Multiply returns a * b.
func (Calculator) Multiply(a, b float64) float64 { return a * b }

// Divide returns a / b, or a DivisionByZeroError when b is zero. It computes
// exactly what the evaluator computes for the / operator.
func (Calculator) Divide(a, b float64) (float64, error) { return divide(a, b) }

// Power returns a raised to b, or a DomainError when the real result would be
// complex, i.e. a negative base with a non-integer exponent. It computes
// exactly what the evaluator computes for the ** operator.
func (Calculator) Power(a, b float64) (float64, error) { return power(a, b) }

// Sqrt returns the non-negative square root of a, or a DomainError when a is
// negative.
func (Calculator) Sqrt(a float64) (float64, error) { return sqrt(a) }

// Evaluate safely evaluates an arithmetic expression. It is shorthand for
// EvalString.
func (Calculator) Evaluate(expr string) (float64, error) { return EvalString(expr) }

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DivisionByZeroError{Op: "/"}
	}
	return a / b, nil
}

// floordiv divides and floors toward negative infinity, so -7 // 2 is -4.
func floordiv(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DivisionByZeroError{Op: "//"}
	}
	return math.Floor(a / b), nil
}

// modulo computes the remainder with the sign of the divisor, so -5 % 3 is 1,
// which keeps a == (a//b)*b + a%b.
func modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DivisionByZeroError{Op: "%"}
	}
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m, nil
}

func power(a, b float64) (float64, error) {
	r := math.Pow(a, b)
	// Pow is NaN for a finite negative base with a non-integer exponent,
	// where the real-valued result would be complex.
	if math.IsNaN(r) && !math.IsNaN(a) && !math.IsNaN(b) {
		return 0, &DomainError{X: a, Func: "**"}
	}
	return r, nil
}

func sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, &DomainError{X: a, Func: "sqrt"}
	}
	return math.Sqrt(a), nil
}

// DivisionByZeroError is an error from dividing by exactly zero, whether by
// the true division, floor division, or modulo operator.
type DivisionByZeroError struct {
	// Op is the operator that divided, "/", "//", or "%".
	Op string
}

func (err *DivisionByZeroError) Error() string {
	if err.Op == "" || err.Op == "/" {
		return "division by zero"
	}
	return "division by zero in " + err.Op
}

// DomainError is an error from an operation applied to arguments outside its
// domain, like the square root of a negative number.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}
