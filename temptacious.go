// Package temptacious is a small string templating engine.
//
// A template mixes plain text with three kinds of directives:
//
//	{{ user.name }}                         variable substitution
//	{% if admin %} ... {% else %} ... {% endif %}
//	{% for k, v in items reverse %} ... {% endfor %}
//	{# a comment, dropped from the output #}
//
// Expressions are dotted paths into the context; any hop that resolves
// to a zero-argument callable is invoked transparently. Rendering either
// produces the complete output string or fails with an error — there is
// no partial output. Every call re-tokenizes and re-parses the template,
// so independent renders are safe to run concurrently as long as each
// gets its own context.
package temptacious

import (
	"errors"

	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/driver"
	"github.com/KingWilliamsGPT/temptacious/internal/expr"
)

// Context maps names to the run-time values expressions resolve against.
type Context = map[string]any

// Values may opt into richer resolution by implementing the capability
// interfaces; plain maps, slices, and scalars work as-is.
type (
	// Object exposes named-field access for dotted paths.
	Object = expr.Object
	// Callable is invoked with zero arguments when reached on a path.
	Callable = expr.Callable
	// Sequence is an ordered, index-subscriptable value for loops.
	Sequence = expr.Sequence
	// Truther lets a value decide its own truthiness in conditions.
	Truther = expr.Truther
)

// Render substitutes template directives against ctx and returns the
// resulting text.
func Render(template string, ctx Context) (string, error) {
	return driver.Render(template, ctx)
}

// Template is a convenience wrapper around a template string. It keeps
// no parsed state: every Render tokenizes and parses from scratch.
type Template struct {
	src string
}

// New wraps a template string.
func New(src string) *Template {
	return &Template{src: src}
}

// Render substitutes the template's directives against ctx.
func (t *Template) Render(ctx Context) (string, error) {
	return driver.Render(t.src, ctx)
}

// Source returns the raw template string.
func (t *Template) Source() string {
	return t.src
}

// IsStructural reports whether err is a malformed-directive error:
// empty block contents, a bad for/if header, or an unterminated block.
func IsStructural(err error) bool {
	if te := asTemplateError(err); te != nil {
		return te.Code.Structural()
	}
	return false
}

// IsUnknownDirective reports whether err names an unrecognized block
// directive.
func IsUnknownDirective(err error) bool {
	if te := asTemplateError(err); te != nil {
		return te.Code == diag.TplUnknownDirective
	}
	return false
}

// IsResolution reports whether err is an expression resolution failure:
// a name absent from the context, or an attribute the current value
// does not have.
func IsResolution(err error) bool {
	if te := asTemplateError(err); te != nil {
		return te.Code.Resolution()
	}
	return false
}

// IsEmptyExpression reports whether err is a variable directive with
// empty contents.
func IsEmptyExpression(err error) bool {
	if te := asTemplateError(err); te != nil {
		return te.Code == diag.TplEmptyExpression
	}
	return false
}

func asTemplateError(err error) *diag.Error {
	var te *diag.Error
	if errors.As(err, &te) {
		return te
	}
	return nil
}
