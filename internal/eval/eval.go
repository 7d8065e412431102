// Package eval renders parsed nodes against a scope. Text passes
// through verbatim, variables resolve and stringify, and block nodes
// re-parse their buffered span on demand: the chosen branch once per if
// render, the body once per for iteration, each against a forked scope.
package eval

import (
	"fmt"
	"strings"

	"github.com/KingWilliamsGPT/temptacious/internal/ast"
	"github.com/KingWilliamsGPT/temptacious/internal/expr"
	"github.com/KingWilliamsGPT/temptacious/internal/parser"
)

// Render evaluates nodes in order and concatenates their output. The
// first error aborts the whole render; no partial output is returned.
func Render(nodes []ast.Node, scope *Scope, cfg parser.Config) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case *ast.TextNode:
			sb.WriteString(n.Text)
		case *ast.VarNode:
			value, err := expr.Resolve(n.Expr, scope)
			if err != nil {
				return "", err
			}
			sb.WriteString(stringify(value))
		case *ast.BlockNode:
			out, err := renderBlock(n, scope, cfg)
			if err != nil {
				return "", err
			}
			sb.WriteString(out)
		}
	}
	return sb.String(), nil
}

func renderBlock(b *ast.BlockNode, scope *Scope, cfg parser.Config) (string, error) {
	switch b.Kind {
	case ast.BlockFor:
		return renderFor(b, scope, cfg)
	case ast.BlockIf:
		return renderIf(b, scope, cfg)
	}
	// Parse only emits registered kinds.
	panic(fmt.Sprintf("eval: unhandled block kind %v", b.Kind))
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
