package expr

import (
	"strings"

	"github.com/KingWilliamsGPT/temptacious/internal/token"
)

// cutset strips whitespace plus stray leading/trailing dots, so
// "{{ .user.name. }}" resolves the same path as "{{ user.name }}".
const cutset = " \t\n\r\v\f."

// Expression is a dotted path into the render context, optionally
// invoking zero-argument accessors along the way. The source token, when
// present, is kept purely for error-location reporting.
type Expression struct {
	Raw string
	Tok *token.Token
}

// New builds an expression from a bare string, with no source location.
func New(raw string) Expression {
	return Expression{Raw: strings.Trim(raw, cutset)}
}

// FromToken builds an expression from a Variable token's contents,
// keeping the token for diagnostics.
func FromToken(tok token.Token) Expression {
	return Expression{
		Raw: strings.Trim(tok.Contents, cutset),
		Tok: &tok,
	}
}

// At builds an expression from a raw string but borrows the location of
// the given token, for sub-expressions of a directive header (the if
// condition word has no token of its own).
func At(raw string, tok token.Token) Expression {
	return Expression{
		Raw: strings.Trim(raw, cutset),
		Tok: &tok,
	}
}
