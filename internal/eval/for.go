package eval

import (
	"strings"

	"github.com/KingWilliamsGPT/temptacious/internal/ast"
	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/expr"
	"github.com/KingWilliamsGPT/temptacious/internal/parser"
	"github.com/KingWilliamsGPT/temptacious/internal/token"
)

const (
	inWord      = "in"
	reverseWord = "reverse"
)

// forHeader is the parsed shape of a {% for ... %} opening tag:
// for <var>[, <var2>, ...] in <name> [reverse]
type forHeader struct {
	vars    []string
	name    string
	reverse bool
}

// renderFor iterates the named sequence, binding the loop variables into
// a fresh forked scope per iteration, and re-parses the buffered body
// for every iteration so the bindings never touch a shared tree.
func renderFor(b *ast.BlockNode, scope *Scope, cfg parser.Config) (string, error) {
	open := b.Open()
	header, err := parseForHeader(open)
	if err != nil {
		return "", err
	}

	// The iterable name is looked up directly, not through the dotted
	// resolver.
	value, ok := scope.Lookup(header.name)
	if !ok {
		return "", diag.Errorf(diag.TplNameNotFound, "name %q does not exist in context", header.name).
			WithRaw(open.Contents).At(open.Span, open.Line)
	}
	seq, ok := expr.AsSequence(value)
	if !ok {
		return "", diag.Errorf(diag.TplNotIterable, "value for %q is not iterable", header.name).
			WithRaw(open.Contents).At(open.Span, open.Line)
	}

	var sb strings.Builder
	n := seq.Len()
	for i := 0; i < n; i++ {
		idx := i
		if header.reverse {
			idx = n - 1 - i
		}

		iterScope := scope.Fork()
		if err := bindItem(iterScope, header, seq.Item(idx), open); err != nil {
			return "", err
		}

		nodes, err := parser.Parse(b.Body(), cfg)
		if err != nil {
			return "", err
		}
		out, err := Render(nodes, iterScope, cfg)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// bindItem binds one produced item into the iteration scope. With more
// than one loop variable the item must be index-subscriptable and each
// variable receives the correspondingly-indexed sub-value.
func bindItem(scope *Scope, header forHeader, item any, open token.Token) error {
	if len(header.vars) == 1 {
		scope.Bind(header.vars[0], item)
		return nil
	}

	sub, ok := expr.AsSequence(item)
	if !ok || sub.Len() < len(header.vars) {
		return diag.Errorf(diag.TplNotIndexable, "loop item cannot be unpacked into %d variables", len(header.vars)).
			WithRaw(open.Contents).At(open.Span, open.Line)
	}
	for j, name := range header.vars {
		scope.Bind(name, sub.Item(j))
	}
	return nil
}

// parseForHeader splits the opening tag's contents into loop variables,
// iterable name, and the optional reverse modifier.
func parseForHeader(open token.Token) (forHeader, error) {
	fields := strings.Fields(open.Contents)

	inIdx := -1
	for i, f := range fields[1:] {
		if f == inWord {
			inIdx = i + 1
			break
		}
	}
	if inIdx < 0 {
		return forHeader{}, diag.Errorf(diag.TplForMissingIn, "for block is missing the 'in' keyword").
			WithRaw(open.Contents).At(open.Span, open.Line)
	}

	varList := strings.Join(fields[1:inIdx], " ")
	var vars []string
	for _, v := range strings.Split(varList, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			return forHeader{}, diag.Errorf(diag.TplForBadHeader, "for block has no loop variable").
				WithRaw(open.Contents).At(open.Span, open.Line)
		}
		vars = append(vars, v)
	}

	rest := fields[inIdx+1:]
	if len(rest) == 0 {
		return forHeader{}, diag.Errorf(diag.TplForBadHeader, "for block has nothing to iterate").
			WithRaw(open.Contents).At(open.Span, open.Line)
	}

	return forHeader{
		vars:    vars,
		name:    rest[0],
		reverse: len(rest) > 1 && strings.EqualFold(rest[1], reverseWord),
	}, nil
}
