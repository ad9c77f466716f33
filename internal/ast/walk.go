package ast

// Walk traverses expr in pre-order, calling fn for every node. If fn
// returns false the children of that node are skipped. Walk is
// read-only; it never modifies or rebuilds the tree.
func Walk(expr Expression, fn func(Expression) bool) {
	if expr == nil {
		return
	}

	if !fn(expr) {
		return
	}

	switch node := expr.(type) {
	case *BinaryOperation:
		Walk(node.Left(), fn)
		Walk(node.Right(), fn)
	case *FunctionCall:
		Walk(node.Arg(), fn)
	}
}

// HasVariable reports whether expr contains at least one Variable
// node. A tree without variables is fully foldable to a literal.
func HasVariable(expr Expression) bool {
	found := false

	Walk(expr, func(node Expression) bool {
		if _, ok := node.(*Variable); ok {
			found = true
		}

		return !found
	})

	return found
}

// CountNodes returns the number of nodes in expr.
func CountNodes(expr Expression) int {
	count := 0

	Walk(expr, func(Expression) bool {
		count++

		return true
	})

	return count
}
