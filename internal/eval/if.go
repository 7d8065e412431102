package eval

import (
	"strings"

	"github.com/KingWilliamsGPT/temptacious/internal/ast"
	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/expr"
	"github.com/KingWilliamsGPT/temptacious/internal/parser"
	"github.com/KingWilliamsGPT/temptacious/internal/token"
)

const elseWord = "else"

// renderIf resolves the single condition word of the opening tag, picks
// the then- or else-span, and re-parses and renders it against a forked
// scope. Truthiness follows the resolved value's own type.
func renderIf(b *ast.BlockNode, scope *Scope, cfg parser.Config) (string, error) {
	open := b.Open()
	fields := strings.Fields(open.Contents)
	if len(fields) < 2 {
		return "", diag.Errorf(diag.TplIfMissingCondition, "no condition for if").
			WithRaw(open.Contents).At(open.Span, open.Line)
	}

	condition, err := expr.Resolve(expr.At(fields[1], open), scope)
	if err != nil {
		return "", err
	}

	thenSpan, elseSpan := splitElse(b.Body(), cfg)
	chosen := thenSpan
	if !expr.IsTrue(condition) {
		chosen = elseSpan
	}

	nodes, err := parser.Parse(chosen, cfg)
	if err != nil {
		return "", err
	}
	return Render(nodes, scope.Fork(), cfg)
}

// splitElse cuts the body at the first top-level else directive. Nested
// blocks are skipped by depth-tracking their end-markers, so an else
// belonging to an inner if never splits the outer one. Without an else
// the else-span is empty.
func splitElse(body []token.Token, cfg parser.Config) (thenSpan, elseSpan []token.Token) {
	depth := 0
	for i, tok := range body {
		if tok.Kind != token.Block {
			continue
		}
		fields := strings.Fields(tok.Contents)
		if len(fields) == 0 {
			continue // rejected later when the span is re-parsed
		}
		word := fields[0]
		if _, ok := cfg.KindOf(word); ok {
			depth++
			continue
		}
		if _, ok := cfg.EndKindOf(word); ok {
			if depth > 0 {
				depth--
			}
			continue
		}
		if word == elseWord && depth == 0 {
			return body[:i], body[i+1:]
		}
	}
	return body, nil
}
