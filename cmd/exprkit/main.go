package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sanity-io/litter"

	"github.com/orizon-lang/exprkit/internal/ast"
	"github.com/orizon-lang/exprkit/internal/format"
)

// exprkit demo:
// builds a handful of sample expression trees, prints each one in
// infix form together with its evaluated value, then runs the
// constant folding pass over it and prints the folded form.
// Flags:
//
//	-stats  print folding statistics per tree.
//	-dump   dump the folded tree structure as a Go value.
func main() {
	var (
		showStats bool
		dumpTrees bool
	)
	flag.BoolVar(&showStats, "stats", false, "print folding statistics per tree")
	flag.BoolVar(&dumpTrees, "dump", false, "dump the folded tree structure")
	flag.Parse()

	// Node fields are unexported to keep trees immutable, so the
	// dumper has to be told to show them.
	dumper := litter.Options{HidePrivateFields: false}

	samples := []struct {
		name string
		expr ast.Expression
	}{
		{"quotient", ast.NewBinaryOperation(ast.NewNumber(1.234), ast.OpDiv, ast.NewNumber(-1.234))},
		{"constant", ast.NewFunctionCall(ast.FuncAbs,
			ast.NewBinaryOperation(
				ast.NewNumber(2.0),
				ast.OpMul,
				ast.NewFunctionCall(ast.FuncSqrt,
					ast.NewBinaryOperation(ast.NewNumber(32.0), ast.OpSub, ast.NewNumber(16.0)))))},
		{"symbolic", ast.NewFunctionCall(ast.FuncAbs,
			ast.NewBinaryOperation(
				ast.NewVariable("x"),
				ast.OpMul,
				ast.NewFunctionCall(ast.FuncSqrt,
					ast.NewBinaryOperation(ast.NewNumber(32.0), ast.OpSub, ast.NewNumber(16.0)))))},
	}

	for _, sample := range samples {
		folder := ast.NewConstantFolder()

		pipeline := ast.NewPipeline()
		pipeline.AddPass("constant-folding", folder)

		folded, err := pipeline.Transform(sample.expr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "exprkit:", err)
			os.Exit(1)
		}

		fmt.Printf("%s: %s = %g\n", sample.name, format.Format(sample.expr), sample.expr.Evaluate())
		fmt.Printf("  folded: %s\n", format.Format(folded))

		if showStats {
			stats := folder.Stats()
			fmt.Printf("  stats: visited %d, folded %d (nodes %d -> %d)\n",
				stats.NodesVisited, stats.SubtreesFolded,
				ast.CountNodes(sample.expr), ast.CountNodes(folded))
		}

		if dumpTrees {
			fmt.Println(dumper.Sdump(folded))
		}
	}
}
