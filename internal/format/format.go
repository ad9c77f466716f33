// Package format renders expression trees as human-readable infix
// text. It is a read-only collaborator of the ast package: it walks a
// tree through the public accessors only and never transforms it.
package format

import (
	"strconv"
	"strings"

	"github.com/orizon-lang/exprkit/internal/ast"
)

// Options controls infix rendering.
type Options struct {
	// SpaceAroundOperators adds spaces around binary operators
	SpaceAroundOperators bool
	// ParenthesizeAll wraps every binary operation in parentheses;
	// when false only nested binary operations are parenthesized
	ParenthesizeAll bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		SpaceAroundOperators: true,
		ParenthesizeAll:      false,
	}
}

// Formatter renders expression trees according to its options.
type Formatter struct {
	options Options
	buffer  strings.Builder
}

// NewFormatter creates a formatter with the given options.
func NewFormatter(options Options) *Formatter {
	return &Formatter{options: options}
}

// Format returns the infix rendering of expr.
func (f *Formatter) Format(expr ast.Expression) string {
	f.buffer.Reset()
	f.formatNode(expr, true)

	return f.buffer.String()
}

// Format renders expr with the default options.
func Format(expr ast.Expression) string {
	f := NewFormatter(DefaultOptions())

	return f.Format(expr)
}

// formatNode writes one node. top marks the outermost position, where
// an unparenthesized binary operation is acceptable.
func (f *Formatter) formatNode(expr ast.Expression, top bool) {
	switch node := expr.(type) {
	case *ast.Number:
		f.buffer.WriteString(strconv.FormatFloat(node.Value(), 'g', -1, 64))

	case *ast.Variable:
		f.buffer.WriteString(node.Name())

	case *ast.FunctionCall:
		f.buffer.WriteString(node.Name())
		f.buffer.WriteString("(")
		f.formatNode(node.Arg(), true)
		f.buffer.WriteString(")")

	case *ast.BinaryOperation:
		parens := f.options.ParenthesizeAll || !top
		if parens {
			f.buffer.WriteString("(")
		}

		f.formatNode(node.Left(), false)
		if f.options.SpaceAroundOperators {
			f.buffer.WriteString(" " + node.Operation().String() + " ")
		} else {
			f.buffer.WriteString(node.Operation().String())
		}
		f.formatNode(node.Right(), false)

		if parens {
			f.buffer.WriteString(")")
		}
	}
}
