package expr

import (
	"strings"

	"github.com/KingWilliamsGPT/temptacious/internal/diag"
)

// Scope is the name lookup resolution works against.
type Scope interface {
	Lookup(name string) (any, bool)
}

// Resolve walks the expression's dotted path through the scope. The
// first segment is an exact, case-sensitive lookup; every later segment
// is an attribute access on the current value. Any attribute that turns
// out to be a zero-argument callable is invoked immediately and its
// return value becomes the current value, so a path like user.get_name
// transparently calls an accessor at each hop.
func Resolve(e Expression, scope Scope) (any, error) {
	segments := strings.Split(e.Raw, ".")

	first := segments[0]
	value, ok := scope.Lookup(first)
	if !ok {
		return nil, e.fail(diag.TplNameNotFound, "name %q does not exist in context", first)
	}

	for _, segment := range segments[1:] {
		attr, ok := attrOf(value, segment)
		if !ok {
			return nil, e.fail(diag.TplAttrNotFound, "value for %q has no attribute named %q", first, segment)
		}
		out, called, err := invoke(attr)
		if err != nil {
			return nil, e.fail(diag.TplCallFailed, "calling %q failed: %v", segment, err)
		}
		if called {
			value = out
		} else {
			value = attr
		}
	}
	return value, nil
}

// fail builds a resolution error carrying the raw expression and, when a
// source token is attached, its line for the ordinal diagnostic.
func (e Expression) fail(code diag.Code, format string, args ...any) *diag.Error {
	err := diag.Errorf(code, format, args...).WithRaw(e.Raw)
	if e.Tok != nil {
		err = err.At(e.Tok.Span, e.Tok.Line)
	}
	return err
}
