package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/KingWilliamsGPT/temptacious/internal/source"
	"github.com/KingWilliamsGPT/temptacious/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind     string      `json:"kind"`
	Contents string      `json:"contents"`
	Line     uint32      `json:"line"`
	Span     source.Span `json:"span"`
}

// FormatTokensPretty writes one line per token:
//
//	  1: Variable   "user.name" at 1:12-1:27
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		_, err := fmt.Fprintf(w, "%3d: %-10s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(), tok.Contents,
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Contents: tok.Contents,
			Line:     tok.Line,
			Span:     tok.Span,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
