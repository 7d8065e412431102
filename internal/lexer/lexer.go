package lexer

import (
	"strings"

	"github.com/KingWilliamsGPT/temptacious/internal/source"
	"github.com/KingWilliamsGPT/temptacious/internal/token"
)

// Delimiters are fixed and not configurable.
const (
	BlockOpen     = "{%"
	BlockClose    = "%}"
	VariableOpen  = "{{"
	VariableClose = "}}"
	CommentOpen   = "{#"
	CommentClose  = "#}"
)

// Lexer splits a template file into a flat sequence of tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
}

// New creates a lexer over the given file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Tokenize splits the whole template into tokens. It never fails:
// a directive opener without a matching same-line closer is simply not
// a directive match, and a fragment that still begins with an opening
// delimiter is classified by that delimiter with its raw text kept
// verbatim, for later stages to reject.
//
// Empty fragments are dropped. Line numbers come from the file's line
// index, so they stay monotonic and exact across kept and dropped
// fragments alike.
func (lx *Lexer) Tokenize() []token.Token {
	tokens := make([]token.Token, 0, 8)
	fragStart := uint32(0)

	for !lx.cursor.EOF() {
		end, ok := lx.matchDirective()
		if !ok {
			lx.cursor.Bump()
			continue
		}
		start := lx.cursor.Off
		if start > fragStart {
			tokens = lx.emit(tokens, fragStart, start)
		}
		tokens = lx.emit(tokens, start, end)
		lx.cursor.Off = end
		fragStart = end
	}

	if fragStart < lx.cursor.Limit {
		tokens = lx.emit(tokens, fragStart, lx.cursor.Limit)
	}
	return tokens
}

// matchDirective reports whether a complete directive starts at the
// cursor, returning the offset just past its closing delimiter.
func (lx *Lexer) matchDirective() (end uint32, ok bool) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '{' {
		return 0, false
	}
	var closing string
	switch b1 {
	case '%':
		closing = BlockClose
	case '{':
		closing = VariableClose
	case '#':
		closing = CommentClose
	default:
		return 0, false
	}
	return lx.findClose(lx.cursor.Off+2, closing)
}

// findClose looks for the nearest closing pair at or after from.
// Directives never span newlines: an opener whose closer sits past a
// newline is not a match.
func (lx *Lexer) findClose(from uint32, closing string) (uint32, bool) {
	content := lx.file.Content
	for i := from; i+1 < lx.cursor.Limit; i++ {
		if content[i] == '\n' {
			return 0, false
		}
		if content[i] == closing[0] && content[i+1] == closing[1] {
			return i + 2, true
		}
	}
	return 0, false
}

// emit classifies the raw span [start, end) and appends the resulting
// token. Classification follows the opening delimiter; the trimmed
// contents only apply when the matching closer is present.
func (lx *Lexer) emit(tokens []token.Token, start, end uint32) []token.Token {
	raw := string(lx.file.Content[start:end])
	span := source.Span{File: lx.file.ID, Start: start, End: end}
	line := lx.file.Pos(start).Line

	kind := token.Text
	contents := raw
	switch {
	case strings.HasPrefix(raw, VariableOpen):
		kind, contents = token.Variable, directiveContents(raw, VariableClose)
	case strings.HasPrefix(raw, CommentOpen):
		kind, contents = token.Comment, directiveContents(raw, CommentClose)
	case strings.HasPrefix(raw, BlockOpen):
		kind, contents = token.Block, directiveContents(raw, BlockClose)
	}

	return append(tokens, token.Token{
		Kind:     kind,
		Span:     span,
		Contents: contents,
		Line:     line,
	})
}

// directiveContents strips the delimiter pair and surrounding whitespace
// when the closer is present; an unterminated directive keeps its raw
// spelling.
func directiveContents(raw, closing string) string {
	if len(raw) >= 4 && strings.HasSuffix(raw, closing) {
		return strings.TrimSpace(raw[2 : len(raw)-2])
	}
	return raw
}
