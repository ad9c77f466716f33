// Package ast - expression transformation infrastructure.
// A pass implements one handler per variant and drives its own
// recursion into children, so it controls recursion order (or whether
// to recurse at all). Every handler returns a newly built Expression
// that shares no structure with its input.
package ast

import (
	"github.com/pkg/errors"
)

// Transformer defines the capability set of a tree-to-tree pass:
// exactly one handler per node variant. A handler receives the node
// read-only and returns a freshly owned result, which need not be of
// the same variant (folding turns a BinaryOperation into a Number).
type Transformer interface {
	TransformNumber(n *Number) Expression
	TransformBinaryOperation(b *BinaryOperation) Expression
	TransformFunctionCall(c *FunctionCall) Expression
	TransformVariable(v *Variable) Expression
}

// ===== Tree Copy Pass =====

// Copier is a pass that produces a structurally identical, fully
// independent deep copy of its input: same variant at every node, no
// shared node identity, no simplification.
type Copier struct{}

// NewCopier creates a tree-copy pass.
func NewCopier() *Copier {
	return &Copier{}
}

// TransformNumber clones a Number literal.
func (c *Copier) TransformNumber(n *Number) Expression {
	return NewNumber(n.Value())
}

// TransformBinaryOperation clones the node over recursively copied
// operands.
func (c *Copier) TransformBinaryOperation(b *BinaryOperation) Expression {
	return NewBinaryOperation(b.Left().Transform(c), b.Operation(), b.Right().Transform(c))
}

// TransformFunctionCall clones the node over a recursively copied
// argument.
func (c *Copier) TransformFunctionCall(call *FunctionCall) Expression {
	return NewFunctionCall(call.Name(), call.Arg().Transform(c))
}

// TransformVariable clones a Variable leaf.
func (c *Copier) TransformVariable(v *Variable) Expression {
	return NewVariable(v.Name())
}

// Copy returns a deep copy of expr.
func Copy(expr Expression) Expression {
	return expr.Transform(NewCopier())
}

// ===== Transformation Pipeline =====

// Pass couples a Transformer with a human-readable name for pipeline
// reporting.
type Pass struct {
	Name        string
	Transformer Transformer
}

// Pipeline applies a sequence of passes to an expression tree, feeding
// each pass the output of the previous one.
type Pipeline struct {
	passes []Pass
}

// NewPipeline creates an empty transformation pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		passes: make([]Pass, 0),
	}
}

// AddPass appends a named pass to the pipeline.
func (p *Pipeline) AddPass(name string, t Transformer) {
	p.passes = append(p.passes, Pass{Name: name, Transformer: t})
}

// Transform runs all passes in order on root and returns the final
// tree. The input tree is never modified. A nil root is a usage error.
func (p *Pipeline) Transform(root Expression) (Expression, error) {
	if root == nil {
		return nil, errors.New("cannot transform a nil expression")
	}

	current := root
	for _, pass := range p.passes {
		result, err := apply(pass.Transformer, current)
		if err != nil {
			return nil, errors.Wrapf(err, "pass %s failed", pass.Name)
		}

		current = result
	}

	return current, nil
}

// apply runs a single transformer, converting precondition panics from
// a misbehaving pass into errors so a pipeline caller can report which
// pass broke instead of crashing.
func apply(t Transformer, root Expression) (result Expression, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("transformer panic: %v", r)
		}
	}()

	result = root.Transform(t)
	if result == nil {
		return nil, errors.New("transformer returned a nil expression")
	}

	return result, nil
}
