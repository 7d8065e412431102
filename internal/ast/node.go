package ast

import (
	"github.com/KingWilliamsGPT/temptacious/internal/expr"
	"github.com/KingWilliamsGPT/temptacious/internal/token"
)

// Node is one render-capable unit of a parsed template. The set is
// closed: text, variable substitution, or a control block.
type Node interface {
	node()
}

// TextNode renders to its literal text, unchanged.
type TextNode struct {
	Text string
}

// VarNode renders to the string form of its resolved expression.
type VarNode struct {
	Expr expr.Expression
}

// BlockNode owns the full inclusive token span of a control block, from
// the opening directive through the matching closing directive. Tokens
// is a view into the render's token arena, not a copy; the body is
// re-parsed lazily at render time (per branch for if, per iteration for
// for).
type BlockNode struct {
	Kind   BlockKind
	Tokens []token.Token
}

func (*TextNode) node()  {}
func (*VarNode) node()   {}
func (*BlockNode) node() {}

// Open returns the opening directive token.
func (b *BlockNode) Open() token.Token {
	return b.Tokens[0]
}

// Body returns the buffered span without the opening and closing
// directive tokens.
func (b *BlockNode) Body() []token.Token {
	return b.Tokens[1 : len(b.Tokens)-1]
}
