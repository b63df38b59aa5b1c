// Package stringconcat detects string building with += inside loops.
package stringconcat

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports += on strings inside loops, which copies the string each
// iteration. Normalization and alias keys should use strings.Builder or
// strings.Join instead.
var Analyzer = &analysis.Analyzer{
	Name:     "stringconcat",
	Doc:      "detects string += inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			assign, ok := n.(*ast.AssignStmt)
			if !ok {
				return true
			}

			if assign.Tok != token.ADD_ASSIGN || len(assign.Lhs) != 1 {
				return true
			}

			if isString(pass, assign.Lhs[0]) {
				pass.Reportf(assign.Pos(),
					"string += inside loop - use strings.Builder or strings.Join")
			}

			return true
		})
	})

	return nil, nil
}

// isString reports whether expr has an underlying string type.
func isString(pass *analysis.Pass, expr ast.Expr) bool {
	tv := pass.TypesInfo.TypeOf(expr)
	if tv == nil {
		return false
	}

	basic, ok := tv.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	return basic.Kind() == types.String
}
