package parser

import (
	"github.com/KingWilliamsGPT/temptacious/internal/ast"
)

// Config fixes the set of block directives the parser recognizes. The
// set is closed: a caller may hand the parser a different fixed set, but
// nothing mutates one at run time.
//
// A singleton kind is self-closing and needs no end-marker. No kind is
// registered as singleton today; for and if both require endfor/endif.
type Config struct {
	Blocks     []ast.BlockKind
	Singletons []ast.BlockKind
}

// Default returns the standard for/if directive set.
func Default() Config {
	return Config{
		Blocks: []ast.BlockKind{ast.BlockFor, ast.BlockIf},
	}
}

// KindOf maps a directive word to its registered block kind.
func (c Config) KindOf(word string) (ast.BlockKind, bool) {
	for _, k := range c.Blocks {
		if k.String() == word {
			return k, true
		}
	}
	for _, k := range c.Singletons {
		if k.String() == word {
			return k, true
		}
	}
	return ast.BlockInvalid, false
}

// EndKindOf maps an end-marker word to the block kind it closes.
func (c Config) EndKindOf(word string) (ast.BlockKind, bool) {
	for _, k := range c.Blocks {
		if k.EndWord() == word {
			return k, true
		}
	}
	return ast.BlockInvalid, false
}

// IsSingleton reports whether the kind closes itself.
func (c Config) IsSingleton(kind ast.BlockKind) bool {
	for _, k := range c.Singletons {
		if k == kind {
			return true
		}
	}
	return false
}
