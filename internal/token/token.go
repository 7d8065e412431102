package token

import (
	"github.com/KingWilliamsGPT/temptacious/internal/source"
)

// Token represents a single template token.
//
// Span always covers the raw, untrimmed source slice, so concatenating
// the spans of all tokens of a file reproduces the template exactly.
// Contents is the delimiter-stripped, whitespace-trimmed payload for
// directive tokens and the raw literal for Text tokens. An unterminated
// directive keeps its raw text (delimiters included) as Contents so
// later stages can reject it with the original spelling.
type Token struct {
	Kind     Kind
	Span     source.Span
	Contents string
	Line     uint32 // 1-based line of the span start
}

// IsDirective reports whether the token is a delimited directive rather
// than plain text.
func (t Token) IsDirective() bool {
	switch t.Kind {
	case Variable, Block, Comment:
		return true
	default:
		return false
	}
}
