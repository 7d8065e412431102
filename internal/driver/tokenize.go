package driver

import (
	"github.com/KingWilliamsGPT/temptacious/internal/lexer"
	"github.com/KingWilliamsGPT/temptacious/internal/source"
	"github.com/KingWilliamsGPT/temptacious/internal/token"
)

// TokenizeResult holds the token stream of one template file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    source.FileID
	Tokens  []token.Token
}

// Tokenize lexes a template file without parsing or rendering it.
// Tokenization itself never fails; malformed directives surface later.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return &TokenizeResult{
		FileSet: fs,
		File:    id,
		Tokens:  lexer.New(fs.Get(id)).Tokenize(),
	}, nil
}
