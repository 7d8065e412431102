package eval

// Scope is an immutable base with a mutable overlay. Bind writes only
// the overlay, so names bound inside a block can never leak into the
// enclosing scope or affect sibling iterations; lookups read
// overlay-then-base. Values themselves are shared, not copied, so
// mutating an object already present in the base stays visible to the
// caller.
type Scope struct {
	base *Scope
	vars map[string]any
}

// NewScope wraps a caller-supplied context mapping. The mapping is
// never written; every block render works in a fork.
func NewScope(ctx map[string]any) *Scope {
	return &Scope{
		base: &Scope{vars: ctx},
		vars: map[string]any{},
	}
}

// Fork starts a fresh overlay on top of this scope.
func (s *Scope) Fork() *Scope {
	return &Scope{
		base: s,
		vars: map[string]any{},
	}
}

// Bind sets a name in this scope's overlay.
func (s *Scope) Bind(name string, value any) {
	s.vars[name] = value
}

// Lookup finds a name, nearest overlay first.
func (s *Scope) Lookup(name string) (any, bool) {
	for sc := s; sc != nil; sc = sc.base {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}
