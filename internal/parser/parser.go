// Package parser turns the flat token sequence into render-capable
// nodes. It is a single left-to-right pass with one open block span at a
// time: the inner structure of a block is not decoded here, only its
// matching end-marker is found, tracking same-kind nesting with a depth
// counter. Block bodies are re-parsed lazily at render time, which lets
// a for block bind fresh loop variables per iteration without mutating a
// shared tree.
package parser

import (
	"strings"

	"github.com/KingWilliamsGPT/temptacious/internal/ast"
	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/expr"
	"github.com/KingWilliamsGPT/temptacious/internal/token"
)

// Parse consumes the token sequence and produces the ordered node
// sequence. The first malformed directive aborts with an error.
func Parse(tokens []token.Token, cfg Config) ([]ast.Node, error) {
	nodes := make([]ast.Node, 0, len(tokens))

	var (
		closing  bool          // inside an open block span
		openKind ast.BlockKind // kind of the open span
		openAt   int           // arena index of the opening token
		endWord  string        // directive word that closes the span
		depth    int           // same-kind blocks opened inside the span
	)

	for i, tok := range tokens {
		if !closing {
			switch tok.Kind {
			case token.Text:
				nodes = append(nodes, &ast.TextNode{Text: tok.Contents})
			case token.Variable:
				if tok.Contents == "" {
					return nil, diag.Errorf(diag.TplEmptyExpression, "empty variable cannot substitute").
						At(tok.Span, tok.Line)
				}
				nodes = append(nodes, &ast.VarNode{Expr: expr.FromToken(tok)})
			case token.Comment:
				// comments produce no node
			case token.Block:
				word, err := BlockWord(tok)
				if err != nil {
					return nil, err
				}
				kind, ok := cfg.KindOf(word)
				if !ok {
					return nil, diag.Errorf(diag.TplUnknownDirective, "the block %q is not supported", word).
						WithRaw(tok.Contents).At(tok.Span, tok.Line)
				}
				if cfg.IsSingleton(kind) {
					continue
				}
				closing = true
				openKind = kind
				openAt = i
				endWord = kind.EndWord()
				depth = 0
			}
			continue
		}

		// Inside an open span every token is buffered verbatim (the
		// BlockNode takes the whole arena range); only block words are
		// inspected, to find the true end-marker.
		if tok.Kind != token.Block {
			continue
		}
		word, err := BlockWord(tok)
		if err != nil {
			return nil, err
		}
		switch word {
		case openKind.String():
			depth++
		case endWord:
			if depth > 0 {
				depth--
				continue
			}
			nodes = append(nodes, &ast.BlockNode{
				Kind:   openKind,
				Tokens: tokens[openAt : i+1],
			})
			closing = false
		}
	}

	if closing {
		open := tokens[openAt]
		return nil, diag.Errorf(diag.TplUnterminatedBlock, "could not find %s for", endWord).
			WithRaw(open.Contents).At(open.Span, open.Line)
	}
	return nodes, nil
}

// BlockWord extracts the directive word: the first whitespace-delimited
// word of a block token's contents.
func BlockWord(tok token.Token) (string, error) {
	fields := strings.Fields(tok.Contents)
	if len(fields) == 0 {
		return "", diag.Errorf(diag.TplEmptyBlock, "empty block").At(tok.Span, tok.Line)
	}
	return fields[0], nil
}
