// Package driver wires the template pipeline together for the CLI and
// the public API: source file management, tokenization, parsing, and
// evaluation, plus context loading and batch rendering.
package driver

import (
	"github.com/KingWilliamsGPT/temptacious/internal/eval"
	"github.com/KingWilliamsGPT/temptacious/internal/lexer"
	"github.com/KingWilliamsGPT/temptacious/internal/parser"
	"github.com/KingWilliamsGPT/temptacious/internal/source"
)

// RenderResult carries a render's output together with the file set, so
// callers can format diagnostics with source context.
type RenderResult struct {
	Output  string
	FileSet *source.FileSet
	File    source.FileID
}

// Render runs the whole pipeline over an in-memory template. Each call
// re-tokenizes and re-parses from scratch; no intermediate form is
// cached between calls. On failure the output is empty, never partial.
func Render(src string, ctx map[string]any) (string, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("template", []byte(src))
	return renderFile(fs, id, ctx)
}

// RenderFile renders a template loaded from disk. The returned result
// is non-nil whenever the file itself could be read, even if rendering
// failed, so diagnostics can quote the source.
func RenderFile(path string, ctx map[string]any) (*RenderResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	res := &RenderResult{FileSet: fs, File: id}
	out, err := renderFile(fs, id, ctx)
	if err != nil {
		return res, err
	}
	res.Output = out
	return res, nil
}

func renderFile(fs *source.FileSet, id source.FileID, ctx map[string]any) (string, error) {
	cfg := parser.Default()
	tokens := lexer.New(fs.Get(id)).Tokenize()
	nodes, err := parser.Parse(tokens, cfg)
	if err != nil {
		return "", err
	}
	return eval.Render(nodes, eval.NewScope(ctx), cfg)
}
