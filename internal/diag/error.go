package diag

import (
	"fmt"

	"github.com/KingWilliamsGPT/temptacious/internal/source"
)

// Error is a render-aborting template error. It carries the offending
// raw text and, when the failing construct came from a source token,
// its span and 1-based line.
type Error struct {
	Code    Code
	Message string
	Raw     string      // offending raw text (expression or directive contents)
	Span    source.Span // zero when no source token was available
	Line    uint32      // 0 when unknown
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Raw != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Raw)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s [at %s line]", e.Code.ID(), msg, Ordinal(e.Line))
	}
	return fmt.Sprintf("%s: %s", e.Code.ID(), msg)
}

// Errorf builds an Error with a formatted message and no location.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithRaw attaches the offending raw text.
func (e *Error) WithRaw(raw string) *Error {
	e.Raw = raw
	return e
}

// At attaches the source location the error refers to.
func (e *Error) At(span source.Span, line uint32) *Error {
	e.Span = span
	e.Line = line
	return e
}

// Diagnostic converts the error into the aggregate form used by the CLI.
func (e *Error) Diagnostic() Diagnostic {
	return Diagnostic{
		Severity: SevError,
		Code:     e.Code,
		Message:  e.Message,
		Primary:  e.Span,
		Line:     e.Line,
		Raw:      e.Raw,
	}
}
