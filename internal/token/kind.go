package token

// Kind represents the category of a template token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Text represents a literal run of template text between directives.
	Text
	// Variable represents a {{ ... }} substitution directive.
	Variable
	// Block represents a {% ... %} control directive.
	Block
	// Comment represents a {# ... #} comment directive.
	Comment
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Variable:
		return "Variable"
	case Block:
		return "Block"
	case Comment:
		return "Comment"
	}
	return "Invalid"
}
