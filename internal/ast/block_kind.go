package ast

// BlockKind identifies a control block directive. The set is a closed
// enumeration handed to the parser as configuration; "else" and the
// end-markers are structural words inside a block span, not kinds of
// their own.
type BlockKind uint8

const (
	// BlockInvalid indicates an unrecognized block directive.
	BlockInvalid BlockKind = iota
	// BlockFor is the {% for ... %} iteration block.
	BlockFor
	// BlockIf is the {% if ... %} conditional block.
	BlockIf
)

func (k BlockKind) String() string {
	switch k {
	case BlockFor:
		return "for"
	case BlockIf:
		return "if"
	}
	return "invalid"
}

// EndWord returns the directive word that closes a block of this kind.
func (k BlockKind) EndWord() string {
	return "end" + k.String()
}
