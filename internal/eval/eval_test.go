package eval_test

import (
	"errors"
	"testing"

	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/eval"
	"github.com/KingWilliamsGPT/temptacious/internal/lexer"
	"github.com/KingWilliamsGPT/temptacious/internal/parser"
	"github.com/KingWilliamsGPT/temptacious/internal/source"
)

func render(t *testing.T, src string, ctx map[string]any) (string, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.tpl", []byte(src)))
	cfg := parser.Default()
	nodes, err := parser.Parse(lexer.New(file).Tokenize(), cfg)
	if err != nil {
		return "", err
	}
	return eval.Render(nodes, eval.NewScope(ctx), cfg)
}

func mustRender(t *testing.T, src string, ctx map[string]any) string {
	t.Helper()
	out, err := render(t, src, ctx)
	if err != nil {
		t.Fatalf("render %q: %v", src, err)
	}
	return out
}

func wantRenderCode(t *testing.T, err error, code diag.Code) {
	t.Helper()
	var te *diag.Error
	if !errors.As(err, &te) {
		t.Fatalf("expected *diag.Error, got %v", err)
	}
	if te.Code != code {
		t.Fatalf("code: got %v, want %v", te.Code, code)
	}
}

func TestRenderText(t *testing.T) {
	if got := mustRender(t, "just text", nil); got != "just text" {
		t.Errorf("got %q", got)
	}
}

func TestRenderVariable(t *testing.T) {
	cases := []struct {
		src  string
		ctx  map[string]any
		want string
	}{
		{"hi {{ name }}", map[string]any{"name": "ada"}, "hi ada"},
		{"{{ n }}", map[string]any{"n": 42}, "42"},
		{"{{ f }}", map[string]any{"f": 1.5}, "1.5"},
		{"{{ missing_is_empty }}", map[string]any{"missing_is_empty": nil}, ""},
		{"{{ user.name }}", map[string]any{"user": map[string]any{"name": "bo"}}, "bo"},
	}
	for _, c := range cases {
		if got := mustRender(t, c.src, c.ctx); got != c.want {
			t.Errorf("render %q: got %q, want %q", c.src, got, c.want)
		}
	}
}

func TestRenderCommentSuppressed(t *testing.T) {
	if got := mustRender(t, "a{# hidden #}b", nil); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestIfTruthy(t *testing.T) {
	ctx := map[string]any{"ok": true, "no": false}
	if got := mustRender(t, "{% if ok %}yes{% endif %}", ctx); got != "yes" {
		t.Errorf("got %q", got)
	}
	if got := mustRender(t, "{% if no %}yes{% endif %}", ctx); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestIfElse(t *testing.T) {
	src := "{% if ok %}then{% else %}other{% endif %}"
	if got := mustRender(t, src, map[string]any{"ok": 1}); got != "then" {
		t.Errorf("truthy: got %q", got)
	}
	if got := mustRender(t, src, map[string]any{"ok": 0}); got != "other" {
		t.Errorf("falsy: got %q", got)
	}
}

func TestIfTruthinessByType(t *testing.T) {
	src := "{% if v %}T{% else %}F{% endif %}"
	cases := []struct {
		v    any
		want string
	}{
		{"", "F"},
		{"x", "T"},
		{0, "F"},
		{-1, "T"},
		{0.0, "F"},
		{[]any{}, "F"},
		{[]any{1}, "T"},
		{map[string]any{}, "F"},
		{map[string]any{"k": 1}, "T"},
		{nil, "F"},
	}
	for _, c := range cases {
		got := mustRender(t, src, map[string]any{"v": c.v})
		if got != c.want {
			t.Errorf("value %#v: got %q, want %q", c.v, got, c.want)
		}
	}
}

func TestIfNestedElseBelongsToInner(t *testing.T) {
	src := "{% if a %}{% if b %}ib{% else %}ie{% endif %}{% else %}oe{% endif %}"
	cases := []struct {
		a, b any
		want string
	}{
		{true, true, "ib"},
		{true, false, "ie"},
		{false, true, "oe"},
	}
	for _, c := range cases {
		got := mustRender(t, src, map[string]any{"a": c.a, "b": c.b})
		if got != c.want {
			t.Errorf("a=%v b=%v: got %q, want %q", c.a, c.b, got, c.want)
		}
	}
}

func TestIfMissingCondition(t *testing.T) {
	_, err := render(t, "{% if %}x{% endif %}", nil)
	wantRenderCode(t, err, diag.TplIfMissingCondition)
}

func TestForOverSlice(t *testing.T) {
	ctx := map[string]any{"xs": []any{1, 2, 3}}
	if got := mustRender(t, "{% for x in xs %}{{ x }};{% endfor %}", ctx); got != "1;2;3;" {
		t.Errorf("got %q", got)
	}
}

func TestForOverStringSlice(t *testing.T) {
	ctx := map[string]any{"names": []string{"a", "b"}}
	if got := mustRender(t, "{% for n in names %}<{{ n }}>{% endfor %}", ctx); got != "<a><b>" {
		t.Errorf("got %q", got)
	}
}

func TestForReverse(t *testing.T) {
	ctx := map[string]any{"xs": []int{1, 2, 3}}
	if got := mustRender(t, "{% for x in xs reverse %}{{ x }};{% endfor %}", ctx); got != "3;2;1;" {
		t.Errorf("got %q", got)
	}
}

func TestForMultiVariable(t *testing.T) {
	ctx := map[string]any{"items": []any{
		[]any{"a", 1},
		[]any{"b", 2},
	}}
	src := "{% for k, v in items %}{{ k }}:{{ v }};{% endfor %}"
	if got := mustRender(t, src, ctx); got != "a:1;b:2;" {
		t.Errorf("got %q", got)
	}
}

func TestForMultiVariableReverse(t *testing.T) {
	ctx := map[string]any{"items": []any{
		[]any{"a", 1},
		[]any{"b", 2},
	}}
	src := "{% for k, v in items reverse %}{{ k }}:{{ v }};{% endfor %}"
	if got := mustRender(t, src, ctx); got != "b:2;a:1;" {
		t.Errorf("got %q", got)
	}
}

func TestForZeroIterations(t *testing.T) {
	ctx := map[string]any{"xs": []any{}}
	if got := mustRender(t, "a{% for x in xs %}{{ x }}{% endfor %}b", ctx); got != "ab" {
		t.Errorf("got %q", got)
	}
}

func TestForNested(t *testing.T) {
	ctx := map[string]any{
		"rows": []any{[]any{1, 2}, []any{3, 4}},
	}
	src := "{% for row in rows %}{% for c in row %}{{ c }},{% endfor %}|{% endfor %}"
	// Inner iterable is looked up by name, so the row binding from the
	// outer loop must be visible inside.
	if got := mustRender(t, src, ctx); got != "1,2,|3,4,|" {
		t.Errorf("got %q", got)
	}
}

func TestForVariableShadowsAndRestores(t *testing.T) {
	ctx := map[string]any{"x": "outer", "xs": []string{"i1", "i2"}}
	src := "{{ x }}/{% for x in xs %}{{ x }}{% endfor %}/{{ x }}"
	if got := mustRender(t, src, ctx); got != "outer/i1i2/outer" {
		t.Errorf("got %q", got)
	}
}

func TestForSharedValuesStayShared(t *testing.T) {
	// Scoping copies bindings, not values: a map reached through a loop
	// variable is the same map the context holds.
	shared := map[string]any{"n": "one"}
	ctx := map[string]any{"xs": []any{shared}}
	src := "{% for x in xs %}{{ x.n }}{% endfor %}"
	if got := mustRender(t, src, ctx); got != "one" {
		t.Errorf("got %q", got)
	}
	shared["n"] = "two"
	if got := mustRender(t, src, ctx); got != "two" {
		t.Errorf("after mutation: got %q", got)
	}
}

func TestForIfInsideLoop(t *testing.T) {
	ctx := map[string]any{"xs": []any{1, 0, 2}}
	src := "{% for x in xs %}{% if x %}{{ x }};{% endif %}{% endfor %}"
	if got := mustRender(t, src, ctx); got != "1;2;" {
		t.Errorf("got %q", got)
	}
}

func TestForErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ctx  map[string]any
		code diag.Code
	}{
		{"missing in", "{% for x xs %}{% endfor %}", map[string]any{"xs": []any{}}, diag.TplForMissingIn},
		{"no variable", "{% for in xs %}{% endfor %}", map[string]any{"xs": []any{}}, diag.TplForBadHeader},
		{"no iterable", "{% for x in %}{% endfor %}", nil, diag.TplForBadHeader},
		{"unknown name", "{% for x in xs %}{% endfor %}", nil, diag.TplNameNotFound},
		{"not iterable", "{% for x in xs %}{% endfor %}", map[string]any{"xs": 7}, diag.TplNotIterable},
		{"unpack scalar", "{% for a, b in xs %}{% endfor %}", map[string]any{"xs": []any{5}}, diag.TplNotIndexable},
		{"unpack short", "{% for a, b, c in xs %}{% endfor %}", map[string]any{"xs": []any{[]any{1, 2}}}, diag.TplNotIndexable},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := render(t, c.src, c.ctx)
			wantRenderCode(t, err, c.code)
		})
	}
}

func TestScopeLookupChain(t *testing.T) {
	base := eval.NewScope(map[string]any{"a": 1, "b": 2})
	fork := base.Fork()
	fork.Bind("b", 20)
	fork.Bind("c", 30)

	if v, ok := fork.Lookup("a"); !ok || v != 1 {
		t.Errorf("a: got %v, %v", v, ok)
	}
	if v, ok := fork.Lookup("b"); !ok || v != 20 {
		t.Errorf("b: got %v, %v", v, ok)
	}
	if v, ok := base.Lookup("b"); !ok || v != 2 {
		t.Errorf("base b must be untouched: got %v, %v", v, ok)
	}
	if _, ok := base.Lookup("c"); ok {
		t.Error("c must not leak into the base scope")
	}
}

func TestScopeNilContext(t *testing.T) {
	s := eval.NewScope(nil)
	if _, ok := s.Lookup("anything"); ok {
		t.Error("empty scope should resolve nothing")
	}
}
