// Package maplookup detects repeated map lookups with the same key.
package maplookup

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports an index expression in an if body that repeats one from
// the condition, such as `if byAlias[a] != "" { use(byAlias[a]) }`.
// Writes to the same key are not lookups and are ignored.
var Analyzer = &analysis.Analyzer{
	Name:     "maplookup",
	Doc:      "detects repeated map lookups with the same key",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.IfStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		ifStmt, ok := n.(*ast.IfStmt)
		if !ok || ifStmt.Init != nil {
			return
		}

		condLookups := indexExprs(ifStmt.Cond, nil)
		if len(condLookups) == 0 {
			return
		}

		writes := make(map[*ast.IndexExpr]bool)
		for _, stmt := range ifStmt.Body.List {
			if assign, ok := stmt.(*ast.AssignStmt); ok {
				for _, lhs := range assign.Lhs {
					if idx, ok := lhs.(*ast.IndexExpr); ok {
						writes[idx] = true
					}
				}
			}
		}

		var bodyLookups []*ast.IndexExpr
		for _, stmt := range ifStmt.Body.List {
			bodyLookups = indexExprs(stmt, bodyLookups)
		}

		for _, bodyLookup := range bodyLookups {
			if writes[bodyLookup] {
				continue
			}
			for _, condLookup := range condLookups {
				if sameLookup(condLookup, bodyLookup) {
					pass.Reportf(bodyLookup.Pos(),
						"repeated map lookup - store result in variable using := in if statement")
					break
				}
			}
		}
	})

	return nil, nil
}

func indexExprs(node ast.Node, acc []*ast.IndexExpr) []*ast.IndexExpr {
	ast.Inspect(node, func(n ast.Node) bool {
		if idx, ok := n.(*ast.IndexExpr); ok {
			acc = append(acc, idx)
		}
		return true
	})
	return acc
}

func sameLookup(a, b *ast.IndexExpr) bool {
	x, y := exprString(a.X), exprString(b.X)
	return x != "" && x == y && exprString(a.Index) == exprString(b.Index)
}

func exprString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.BasicLit:
		return e.Value
	case *ast.SelectorExpr:
		return exprString(e.X) + "." + e.Sel.Name
	case *ast.IndexExpr:
		return exprString(e.X) + "[" + exprString(e.Index) + "]"
	default:
		return ""
	}
}
