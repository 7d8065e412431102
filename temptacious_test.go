package temptacious_test

import (
	"strings"
	"testing"

	"github.com/KingWilliamsGPT/temptacious"
)

type account struct {
	name string
}

func (a account) GetAttr(name string) (any, bool) {
	switch name {
	case "name":
		return a.name, true
	case "upper":
		return func() string { return strings.ToUpper(a.name) }, true
	}
	return nil, false
}

func TestRender(t *testing.T) {
	out, err := temptacious.Render(
		"Hello {{ user.name }}!{% if admin %} (admin){% endif %}",
		temptacious.Context{
			"user":  map[string]any{"name": "Ada"},
			"admin": true,
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Hello Ada! (admin)" {
		t.Errorf("got %q", out)
	}
}

func TestRenderCapabilityInterfaces(t *testing.T) {
	out, err := temptacious.Render("{{ acct.upper }}", temptacious.Context{
		"acct": account{name: "ada"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != "ADA" {
		t.Errorf("got %q", out)
	}
}

func TestTemplateReuse(t *testing.T) {
	tpl := temptacious.New("{% for x in xs %}{{ x }}.{% endfor %}")
	if tpl.Source() != "{% for x in xs %}{{ x }}.{% endfor %}" {
		t.Errorf("source: got %q", tpl.Source())
	}

	first, err := tpl.Render(temptacious.Context{"xs": []int{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	second, err := tpl.Render(temptacious.Context{"xs": []string{"a"}})
	if err != nil {
		t.Fatal(err)
	}
	if first != "1.2." || second != "a." {
		t.Errorf("got %q and %q", first, second)
	}
}

func TestErrorPredicates(t *testing.T) {
	cases := []struct {
		name string
		src  string
		pred func(error) bool
	}{
		{"unterminated block", "{% if a %}x", temptacious.IsStructural},
		{"missing in", "{% for a b %}{% endfor %}", temptacious.IsStructural},
		{"unknown directive", "{% include x %}", temptacious.IsUnknownDirective},
		{"name not found", "{{ ghost }}", temptacious.IsResolution},
		{"attr not found", "{{ user.ghost }}", temptacious.IsResolution},
		{"empty expression", "{{ }}", temptacious.IsEmptyExpression},
	}
	ctx := temptacious.Context{"a": true, "user": map[string]any{}}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := temptacious.Render(c.src, ctx)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !c.pred(err) {
				t.Errorf("predicate rejected %v", err)
			}
		})
	}

	if temptacious.IsStructural(nil) || temptacious.IsResolution(nil) {
		t.Error("predicates must be false for nil")
	}
}

func TestErrorMessageNamesLine(t *testing.T) {
	_, err := temptacious.Render("line one\nline two\n{{ ghost }}", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "at 3rd line") {
		t.Errorf("error should carry the ordinal line: %v", err)
	}
}
