// Package loopcall detects LLM and resolution log calls inside loops.
package loopcall

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports calls to the LLM client or the resolution log made from
// inside a loop. A "//nolint:loopcall" comment on the line above, or on the
// same line, silences one report.
var Analyzer = &analysis.Analyzer{
	Name:     "loopcall",
	Doc:      "detects LLM and resolution log calls inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

const directive = "nolint:loopcall"

// externalMethods are the port methods that leave the process.
var externalMethods = map[string]bool{
	// LLMClient
	"Complete": true,
	// ResolutionLog
	"Record":        true,
	"Recent":        true,
	"TopUnresolved": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	silenced := silencedLines(pass)

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
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || !externalMethods[sel.Sel.Name] {
				return true
			}

			pos := pass.Fset.Position(call.Pos())
			if silenced[lineKey{pos.Filename, pos.Line}] {
				return true
			}

			pass.Reportf(call.Pos(),
				"potential N+1: %s called inside loop - consider batching",
				sel.Sel.Name)
			return true
		})
	})

	return nil, nil
}

type lineKey struct {
	file string
	line int
}

// silencedLines returns the lines covered by a nolint directive.
func silencedLines(pass *analysis.Pass) map[lineKey]bool {
	lines := make(map[lineKey]bool)
	for _, file := range pass.Files {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if !strings.Contains(c.Text, directive) {
					continue
				}
				pos := pass.Fset.Position(c.Slash)
				lines[lineKey{pos.Filename, pos.Line}] = true
				lines[lineKey{pos.Filename, pos.Line + 1}] = true
			}
		}
	}
	return lines
}
