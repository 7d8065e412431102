package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Structural: malformed directive shape.
	TplEmptyBlock         Code = 2001
	TplUnterminatedBlock  Code = 2002
	TplForMissingIn       Code = 2003
	TplForBadHeader       Code = 2004
	TplIfMissingCondition Code = 2005

	// Directive and expression shape.
	TplUnknownDirective Code = 2101
	TplEmptyExpression  Code = 2102

	// Resolution: the expression cannot be satisfied by the context.
	TplNameNotFound Code = 3001
	TplAttrNotFound Code = 3002
	TplNotIterable  Code = 3003
	TplNotIndexable Code = 3004
	TplCallFailed   Code = 3005
)

// ID returns the stable string form used in output, e.g. "TPL2001".
func (c Code) ID() string {
	return fmt.Sprintf("TPL%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}

// Structural reports whether the code denotes a malformed directive
// shape (empty block, bad for/if header, unterminated block).
func (c Code) Structural() bool {
	switch c {
	case TplEmptyBlock, TplUnterminatedBlock, TplForMissingIn, TplForBadHeader, TplIfMissingCondition:
		return true
	default:
		return false
	}
}

// Resolution reports whether the code denotes a context lookup failure.
func (c Code) Resolution() bool {
	return c >= 3000 && c < 4000
}
