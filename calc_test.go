package calc_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/wittyparth/calc"
)

func TestAdd(t *testing.T) {
	var c calc.Calculator
	if r := c.Add(2, 3); r != 5 {
		t.Errorf("Add(2, 3) = %g, want 5", r)
	}
}

func TestSubtract(t *testing.T) {
	var c calc.Calculator
	if r := c.Subtract(5, 2); r != 3 {
		t.Errorf("Subtract(5, 2) = %g, want 3", r)
	}
}

func TestMultiply(t *testing.T) {
	var c calc.Calculator
	if r := c.Multiply(3, 4); r != 12 {
		t.Errorf("Multiply(3, 4) = %g, want 12", r)
	}
}

func TestDivide(t *testing.T) {
	var c calc.Calculator
	r, err := c.Divide(7, 2)
	if err != nil {
		t.Fatalf("Divide(7, 2) failed: %v", err)
	}
	if r != 3.5 {
		t.Errorf("Divide(7, 2) = %g, want 3.5", r)
	}
}

func TestDivideByZero(t *testing.T) {
	var c calc.Calculator
	r, err := c.Divide(1, 0)
	if err == nil {
		t.Fatalf("Divide(1, 0) = %g, want error", r)
	}
	var dz *calc.DivisionByZeroError
	if !errors.As(err, &dz) {
		t.Errorf("Divide(1, 0) gave %#v, not *DivisionByZeroError", err)
	}
}

func TestPower(t *testing.T) {
	var c calc.Calculator
	cases := []struct {
		a, b, want float64
	}{
		{2, 3, 8},
		{-2, 3, -8},
		{2, -1, 0.5},
		{9, 0.5, 3},
		{5, 0, 1},
	}
	for _, cs := range cases {
		r, err := c.Power(cs.a, cs.b)
		if err != nil {
			t.Errorf("Power(%g, %g) failed: %v", cs.a, cs.b, err)
			continue
		}
		if r != cs.want {
			t.Errorf("Power(%g, %g) = %g, want %g", cs.a, cs.b, r, cs.want)
		}
	}
}

func TestPowerDomain(t *testing.T) {
	var c calc.Calculator
	r, err := c.Power(-1, 0.5)
	if err == nil {
		t.Fatalf("Power(-1, 0.5) = %g, want error", r)
	}
	var de *calc.DomainError
	if !errors.As(err, &de) {
		t.Errorf("Power(-1, 0.5) gave %#v, not *DomainError", err)
	}
}

func TestSqrt(t *testing.T) {
	var c calc.Calculator
	r, err := c.Sqrt(9)
	if err != nil {
		t.Fatalf("Sqrt(9) failed: %v", err)
	}
	if r != 3 {
		t.Errorf("Sqrt(9) = %g, want 3", r)
	}
	for _, a := range []float64{0, 2, 10, 12345.6789} {
		r, err := c.Sqrt(a)
		if err != nil {
			t.Errorf("Sqrt(%g) failed: %v", a, err)
			continue
		}
		if got := r * r; math.Abs(got-a) > 1e-9*math.Max(a, 1) {
			t.Errorf("Sqrt(%g) = %g, but %g*%g = %g", a, r, r, r, got)
		}
	}
}

func TestSqrtNegative(t *testing.T) {
	var c calc.Calculator
	r, err := c.Sqrt(-1)
	if err == nil {
		t.Fatalf("Sqrt(-1) = %g, want error", r)
	}
	var de *calc.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("Sqrt(-1) gave %#v, not *DomainError", err)
	}
	if de.X != -1 {
		t.Errorf("Sqrt(-1) blamed %g", de.X)
	}
}

func TestCalculatorEvaluate(t *testing.T) {
	var c calc.Calculator
	r, err := c.Evaluate("2 + 3 * 4 - 1/2")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if r != 13.5 {
		t.Errorf("Evaluate(\"2 + 3 * 4 - 1/2\") = %g, want 13.5", r)
	}
	if _, err := c.Evaluate("__import__('os').system('echo no')"); err == nil {
		t.Error("Evaluate executed a function call")
	}
}

// TestEvalMatchesDivide checks that the evaluator's / agrees exactly with
// Calculator.Divide for the same operands.
func TestEvalMatchesDivide(t *testing.T) {
	var c calc.Calculator
	pairs := [][2]float64{
		{7, 2},
		{1, 3},
		{-7, 2},
		{2.5, -0.5},
		{1e300, 1e-300},
		{0, 5},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		want, err := c.Divide(a, b)
		if err != nil {
			t.Fatalf("Divide(%g, %g) failed: %v", a, b, err)
		}
		src := fmtOperand(a) + " / " + fmtOperand(b)
		got, err := calc.EvalString(src)
		if err != nil {
			t.Fatalf("evaluating %q: %v", src, err)
		}
		if got != want {
			t.Errorf("EvalString(%q) = %g, Divide(%g, %g) = %g", src, got, a, b, want)
		}
	}
}

// fmtOperand renders a float64 as expression source, parenthesizing
// negatives so they stay a single operand.
func fmtOperand(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if v < 0 {
		return "(" + s + ")"
	}
	return s
}
