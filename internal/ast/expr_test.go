package ast

import (
	"math"
	"testing"
)

// expectPanic runs fn and fails the test unless it panics.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()

	fn()
}

// TestNumber tests literal construction and evaluation.
func TestNumber(t *testing.T) {
	n := NewNumber(1.234)

	if n.Value() != 1.234 {
		t.Errorf("Expected value 1.234, got %v", n.Value())
	}
	if n.Evaluate() != 1.234 {
		t.Errorf("Expected evaluation 1.234, got %v", n.Evaluate())
	}
	if n.String() != "1.234" {
		t.Errorf("Expected '1.234', got '%s'", n.String())
	}
}

// TestBinaryOperationEvaluate tests all four operators.
func TestBinaryOperationEvaluate(t *testing.T) {
	tests := []struct {
		left  float64
		op    Operator
		right float64
		want  float64
	}{
		{1.0, OpAdd, 2.0, 3.0},
		{32.0, OpSub, 16.0, 16.0},
		{2.0, OpMul, 4.0, 8.0},
		{1.234, OpDiv, -1.234, -1.0},
		{2.5, OpDiv, -1.25, -2.0},
	}

	for _, tt := range tests {
		b := NewBinaryOperation(NewNumber(tt.left), tt.op, NewNumber(tt.right))
		if got := b.Evaluate(); got != tt.want {
			t.Errorf("%v %s %v: expected %v, got %v", tt.left, tt.op, tt.right, tt.want, got)
		}
	}
}

// TestBinaryOperationAccessors tests operand and operator access.
func TestBinaryOperationAccessors(t *testing.T) {
	left := NewNumber(1.0)
	right := NewNumber(2.0)
	b := NewBinaryOperation(left, OpAdd, right)

	if b.Left() != left || b.Right() != right {
		t.Error("BinaryOperation operands not set correctly")
	}
	if b.Operation() != OpAdd {
		t.Error("BinaryOperation operator not set correctly")
	}
	if b.String() != "(1 + 2)" {
		t.Errorf("Expected '(1 + 2)', got '%s'", b.String())
	}
}

// TestDivisionByZero tests that division follows float semantics
// instead of failing.
func TestDivisionByZero(t *testing.T) {
	pos := NewBinaryOperation(NewNumber(1.0), OpDiv, NewNumber(0.0))
	if got := pos.Evaluate(); !math.IsInf(got, 1) {
		t.Errorf("Expected +Inf, got %v", got)
	}

	nan := NewBinaryOperation(NewNumber(0.0), OpDiv, NewNumber(0.0))
	if got := nan.Evaluate(); !math.IsNaN(got) {
		t.Errorf("Expected NaN, got %v", got)
	}
}

// TestFunctionCallEvaluate tests both permitted functions.
func TestFunctionCallEvaluate(t *testing.T) {
	sqrt := NewFunctionCall(FuncSqrt, NewNumber(16.0))
	if got := sqrt.Evaluate(); got != 4.0 {
		t.Errorf("sqrt(16): expected 4, got %v", got)
	}

	abs := NewFunctionCall(FuncAbs, NewNumber(-2.5))
	if got := abs.Evaluate(); got != 2.5 {
		t.Errorf("abs(-2.5): expected 2.5, got %v", got)
	}

	// sqrt of a negative operand is permitted and yields NaN.
	neg := NewFunctionCall(FuncSqrt, NewNumber(-1.0))
	if got := neg.Evaluate(); !math.IsNaN(got) {
		t.Errorf("sqrt(-1): expected NaN, got %v", got)
	}
}

// TestFunctionCallAccessors tests name and argument access.
func TestFunctionCallAccessors(t *testing.T) {
	arg := NewNumber(9.0)
	call := NewFunctionCall(FuncSqrt, arg)

	if call.Name() != "sqrt" {
		t.Errorf("Expected name 'sqrt', got '%s'", call.Name())
	}
	if call.Arg() != arg {
		t.Error("FunctionCall argument not set correctly")
	}
	if call.String() != "sqrt(9)" {
		t.Errorf("Expected 'sqrt(9)', got '%s'", call.String())
	}
}

// TestVariableEvaluate tests that variables evaluate to the neutral
// value regardless of name.
func TestVariableEvaluate(t *testing.T) {
	for _, name := range []string{"x", "velocity", ""} {
		v := NewVariable(name)
		if v.Name() != name {
			t.Errorf("Expected name %q, got %q", name, v.Name())
		}
		if v.Evaluate() != 0.0 {
			t.Errorf("Variable %q: expected 0.0, got %v", name, v.Evaluate())
		}
	}
}

// TestEvaluateIsPure tests that repeated evaluation of the same tree
// yields identical results.
func TestEvaluateIsPure(t *testing.T) {
	expr := NewFunctionCall(FuncAbs,
		NewBinaryOperation(NewNumber(2.0), OpMul,
			NewFunctionCall(FuncSqrt,
				NewBinaryOperation(NewNumber(32.0), OpSub, NewNumber(16.0)))))

	first := expr.Evaluate()
	for i := 0; i < 3; i++ {
		if got := expr.Evaluate(); got != first {
			t.Errorf("Evaluation %d: expected %v, got %v", i, first, got)
		}
	}

	if first != 8.0 {
		t.Errorf("abs(2 * sqrt(32 - 16)): expected 8, got %v", first)
	}
}

// TestConstructionPanics tests fail-fast rejection of invalid
// construction.
func TestConstructionPanics(t *testing.T) {
	expectPanic(t, "nil left operand", func() {
		NewBinaryOperation(nil, OpAdd, NewNumber(1.0))
	})
	expectPanic(t, "nil right operand", func() {
		NewBinaryOperation(NewNumber(1.0), OpAdd, nil)
	})
	expectPanic(t, "operator out of range", func() {
		NewBinaryOperation(NewNumber(1.0), Operator(42), NewNumber(2.0))
	})
	expectPanic(t, "rejected function name", func() {
		NewFunctionCall("ln", NewNumber(1.0))
	})
	expectPanic(t, "nil function argument", func() {
		NewFunctionCall(FuncSqrt, nil)
	})
}

// TestOperatorString tests the character form of each operator.
func TestOperatorString(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{OpAdd, "+"},
		{OpSub, "-"},
		{OpMul, "*"},
		{OpDiv, "/"},
		{Operator(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Operator %d: expected %q, got %q", int(tt.op), tt.want, got)
		}
	}
}
