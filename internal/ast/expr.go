// Package ast defines the arithmetic expression tree for exprkit.
// The node set is closed: Number, BinaryOperation, FunctionCall and
// Variable are the only variants, and every variant supports pure
// evaluation and pass-driven transformation. Trees are immutable after
// construction; transformation passes always build fresh nodes and
// never alias structure from their input, so an input tree may be
// discarded independently of any tree produced from it.
package ast

import (
	"fmt"
	"math"
)

// Expression is the base interface for all expression tree nodes.
// Evaluate is a pure function of the tree's contents and may be called
// repeatedly with identical results. Transform routes to the single
// Transformer handler matching the node's own variant; it does not
// descend into children itself.
type Expression interface {
	// Evaluate computes the numeric value of this subtree.
	Evaluate() float64
	// Transform applies a pass to this node via double dispatch.
	Transform(t Transformer) Expression
	// String returns a human-readable representation of the node.
	String() string

	expressionNode() // Marker method closing the variant set
}

// ===== Operators =====

// Operator represents a binary arithmetic operator.
type Operator int

const (
	OpAdd Operator = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
)

// Valid reports whether op is one of the four defined operators.
func (op Operator) Valid() bool {
	return op >= OpAdd && op <= OpDiv
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "unknown"
	}
}

// ===== Number =====

// Number is a literal floating point leaf. It carries any IEEE value,
// finite or not; no validation is performed.
type Number struct {
	value float64
}

// NewNumber creates a Number literal.
func NewNumber(value float64) *Number {
	return &Number{value: value}
}

// Value returns the literal value.
func (n *Number) Value() float64 { return n.value }

func (n *Number) Evaluate() float64 { return n.value }

func (n *Number) Transform(t Transformer) Expression { return t.TransformNumber(n) }

func (n *Number) String() string { return fmt.Sprintf("%g", n.value) }

func (n *Number) expressionNode() {}

// ===== BinaryOperation =====

// BinaryOperation applies one of the four arithmetic operators to two
// owned operand subtrees.
type BinaryOperation struct {
	left  Expression
	op    Operator
	right Expression
}

// NewBinaryOperation creates a BinaryOperation over two operands.
// Both operands must be non-nil and op must be one of the four defined
// operators; violations are caller bugs and panic.
func NewBinaryOperation(left Expression, op Operator, right Expression) *BinaryOperation {
	if left == nil || right == nil {
		panic("ast: BinaryOperation requires non-nil operands")
	}
	if !op.Valid() {
		panic(fmt.Sprintf("ast: BinaryOperation operator out of range: %d", int(op)))
	}

	return &BinaryOperation{left: left, op: op, right: right}
}

// Left returns the left operand.
func (b *BinaryOperation) Left() Expression { return b.left }

// Right returns the right operand.
func (b *BinaryOperation) Right() Expression { return b.right }

// Operation returns the operator.
func (b *BinaryOperation) Operation() Operator { return b.op }

// Evaluate computes both operands, then applies the operator.
// Division by zero follows float64 semantics and yields ±Inf or NaN
// rather than an error.
func (b *BinaryOperation) Evaluate() float64 {
	left := b.left.Evaluate()
	right := b.right.Evaluate()

	switch b.op {
	case OpAdd:
		return left + right
	case OpSub:
		return left - right
	case OpMul:
		return left * right
	case OpDiv:
		return left / right
	}

	// Unreachable: the constructor rejects out-of-range operators.
	panic(fmt.Sprintf("ast: undefined operator: %d", int(b.op)))
}

func (b *BinaryOperation) Transform(t Transformer) Expression {
	return t.TransformBinaryOperation(b)
}

func (b *BinaryOperation) String() string {
	return fmt.Sprintf("(%s %s %s)", b.left.String(), b.op.String(), b.right.String())
}

func (b *BinaryOperation) expressionNode() {}

// ===== FunctionCall =====

// Function names permitted in a FunctionCall.
const (
	FuncSqrt = "sqrt"
	FuncAbs  = "abs"
)

// FunctionCall applies one of the two permitted named unary functions
// to an owned argument subtree.
type FunctionCall struct {
	name string
	arg  Expression
}

// NewFunctionCall creates a FunctionCall. The name must be exactly
// "sqrt" or "abs" and arg must be non-nil; violations are caller bugs
// and panic.
func NewFunctionCall(name string, arg Expression) *FunctionCall {
	if arg == nil {
		panic("ast: FunctionCall requires a non-nil argument")
	}
	if name != FuncSqrt && name != FuncAbs {
		panic(fmt.Sprintf("ast: FunctionCall name must be %q or %q, got %q", FuncSqrt, FuncAbs, name))
	}

	return &FunctionCall{name: name, arg: arg}
}

// Name returns the function name.
func (c *FunctionCall) Name() string { return c.name }

// Arg returns the argument subtree.
func (c *FunctionCall) Arg() Expression { return c.arg }

// Evaluate applies the named function to the evaluated argument.
// sqrt of a negative value yields NaN; no domain checking is done.
func (c *FunctionCall) Evaluate() float64 {
	if c.name == FuncSqrt {
		return math.Sqrt(c.arg.Evaluate())
	}

	return math.Abs(c.arg.Evaluate())
}

func (c *FunctionCall) Transform(t Transformer) Expression {
	return t.TransformFunctionCall(c)
}

func (c *FunctionCall) String() string {
	return fmt.Sprintf("%s(%s)", c.name, c.arg.String())
}

func (c *FunctionCall) expressionNode() {}

// ===== Variable =====

// Variable is a named symbolic leaf. The model has no environment or
// binding concept, so evaluation always yields the neutral value 0.0;
// transforms nevertheless keep variables symbolic because their value
// is not statically known.
type Variable struct {
	name string
}

// NewVariable creates a Variable. Any name is accepted.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

func (v *Variable) Evaluate() float64 { return 0.0 }

func (v *Variable) Transform(t Transformer) Expression { return t.TransformVariable(v) }

func (v *Variable) String() string { return v.name }

func (v *Variable) expressionNode() {}
