package expr

// Capability interfaces the resolver and evaluator work against.
// Context values either are plain Go builtins (map[string]any, slices,
// scalars) or opt in by implementing one of these; there is no
// reflection fallback. A value that supports none of the capabilities
// an operation needs fails with a resolution error.

// Object exposes named-field access.
type Object interface {
	// GetAttr returns the value of the named field and whether it exists.
	GetAttr(name string) (any, bool)
}

// Callable is invoked with zero arguments whenever resolution reaches it
// on a path.
type Callable interface {
	Call() (any, error)
}

// Sequence is an ordered, index-subscriptable value. It is what a for
// loop iterates and what multi-variable loop items are unpacked from.
type Sequence interface {
	Len() int
	Item(i int) any
}

// Truther lets a value decide its own truthiness in if conditions.
type Truther interface {
	IsTrue() bool
}

type anySeq []any

func (s anySeq) Len() int       { return len(s) }
func (s anySeq) Item(i int) any { return s[i] }

type stringSeq []string

func (s stringSeq) Len() int       { return len(s) }
func (s stringSeq) Item(i int) any { return s[i] }

type intSeq []int

func (s intSeq) Len() int       { return len(s) }
func (s intSeq) Item(i int) any { return s[i] }

type floatSeq []float64

func (s floatSeq) Len() int       { return len(s) }
func (s floatSeq) Item(i int) any { return s[i] }

type mapSeq []map[string]any

func (s mapSeq) Len() int       { return len(s) }
func (s mapSeq) Item(i int) any { return s[i] }

// AsSequence adapts v to a Sequence without reflection. Plain slices of
// the common element types adapt implicitly; anything else must
// implement Sequence itself.
func AsSequence(v any) (Sequence, bool) {
	switch s := v.(type) {
	case Sequence:
		return s, true
	case []any:
		return anySeq(s), true
	case []string:
		return stringSeq(s), true
	case []int:
		return intSeq(s), true
	case []float64:
		return floatSeq(s), true
	case []map[string]any:
		return mapSeq(s), true
	default:
		return nil, false
	}
}

// IsTrue reports standard truthiness: nil, false, zero numerics, empty
// strings, and empty sequences/mappings are falsy; everything else is
// truthy. Values implementing Truther decide for themselves.
func IsTrue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int8:
		return t != 0
	case int16:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case uint8:
		return t != 0
	case uint16:
		return t != 0
	case uint32:
		return t != 0
	case uint64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case Truther:
		return t.IsTrue()
	}
	if s, ok := AsSequence(v); ok {
		return s.Len() > 0
	}
	return true
}

// attrOf performs a single named-field access.
func attrOf(v any, name string) (any, bool) {
	switch o := v.(type) {
	case Object:
		return o.GetAttr(name)
	case map[string]any:
		val, ok := o[name]
		return val, ok
	default:
		return nil, false
	}
}

// invoke calls v when it is a zero-argument callable; otherwise it
// returns v unchanged.
func invoke(v any) (any, bool, error) {
	switch f := v.(type) {
	case Callable:
		out, err := f.Call()
		return out, true, err
	case func() any:
		return f(), true, nil
	case func() (any, error):
		out, err := f()
		return out, true, err
	case func() string:
		return f(), true, nil
	default:
		return v, false, nil
	}
}
