// Package ast - constant folding pass.
// Folding is a single bottom-up rewrite: children are folded before
// the parent is considered, so one post-order traversal reaches a
// fixed point and repeated application changes nothing further.
package ast

// FoldStats tracks statistics from a constant folding run.
type FoldStats struct {
	NodesVisited   int // Total number of nodes the pass handled
	SubtreesFolded int // Number of subtrees collapsed to a literal
}

// ConstantFolder is a pass that rewrites a tree to its simplest
// equivalent form, replacing every subtree whose value is statically
// determinable with a single Number literal. Variables are never
// foldable (their value is not statically known, the neutral
// evaluation value notwithstanding), so subtrees containing one are
// rebuilt over folded children instead of collapsed.
type ConstantFolder struct {
	stats FoldStats
}

// NewConstantFolder creates a constant folding pass.
func NewConstantFolder() *ConstantFolder {
	return &ConstantFolder{}
}

// Stats returns statistics accumulated since the folder was created.
func (f *ConstantFolder) Stats() FoldStats {
	return f.stats
}

// TransformNumber copies a literal unchanged.
func (f *ConstantFolder) TransformNumber(n *Number) Expression {
	f.stats.NodesVisited++

	return NewNumber(n.Value())
}

// TransformVariable copies a variable unchanged; it stays symbolic.
func (f *ConstantFolder) TransformVariable(v *Variable) Expression {
	f.stats.NodesVisited++

	return NewVariable(v.Name())
}

// TransformBinaryOperation folds both operands first. If both folded
// results are Number literals the operation is evaluated immediately
// and the whole subtree replaced by a single literal; otherwise a new
// BinaryOperation over the folded operands is returned unevaluated.
func (f *ConstantFolder) TransformBinaryOperation(b *BinaryOperation) Expression {
	f.stats.NodesVisited++

	left := b.Left().Transform(f)
	right := b.Right().Transform(f)

	// The variant check must inspect the folded results, not the
	// original operands: a non-literal subtree may fold into one.
	leftNum, leftIsNum := left.(*Number)
	rightNum, rightIsNum := right.(*Number)

	if leftIsNum && rightIsNum {
		f.stats.SubtreesFolded++

		return NewNumber(NewBinaryOperation(leftNum, b.Operation(), rightNum).Evaluate())
	}

	return NewBinaryOperation(left, b.Operation(), right)
}

// TransformFunctionCall folds the argument first. If the folded
// argument is a Number literal the function is applied immediately;
// otherwise a new call wrapping the folded argument is returned.
func (f *ConstantFolder) TransformFunctionCall(c *FunctionCall) Expression {
	f.stats.NodesVisited++

	arg := c.Arg().Transform(f)

	if num, ok := arg.(*Number); ok {
		f.stats.SubtreesFolded++

		return NewNumber(NewFunctionCall(c.Name(), num).Evaluate())
	}

	return NewFunctionCall(c.Name(), arg)
}

// Fold returns the constant-folded form of expr.
func Fold(expr Expression) Expression {
	return expr.Transform(NewConstantFolder())
}
