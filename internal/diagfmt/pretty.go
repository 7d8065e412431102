// Package diagfmt renders diagnostics and token dumps for the CLI.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	codeColor       = color.New(color.FgCyan)
	underlineColor  = color.New(color.FgRed)
)

// Pretty formats a sorted bag of diagnostics in a human-readable form:
//
//	<path>:<line>: ERROR TPL2002: message 'raw'
//	    {% if user %}...
//	    ^~~~~~~~~~~~
//
// fs may be nil when no source context is available.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, d, fs, opts)
		if opts.ShowSource && fs != nil && !d.Primary.Empty() {
			writeSourceLine(w, d, fs, opts)
		}
	}
}

func writeHeader(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	if fs != nil && fs.Len() > int(d.Primary.File) {
		f := fs.Get(d.Primary.File)
		line := d.Line
		if line == 0 {
			line = f.Pos(d.Primary.Start).Line
		}
		fmt.Fprintf(w, "%s:%d: ", f.Path, line)
	}

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = codeColor.Sprint(code)
	}
	fmt.Fprintf(w, "%s %s: %s", sev, code, d.Message)
	if d.Raw != "" {
		fmt.Fprintf(w, " '%s'", d.Raw)
	}
	if d.Line > 0 {
		fmt.Fprintf(w, " [at %s line]", diag.Ordinal(d.Line))
	}
	fmt.Fprintln(w)
}

// writeSourceLine prints the offending line and a ^~~~ underline
// aligned under the span, using display widths so wide runes do not
// skew the caret.
func writeSourceLine(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	lineText := f.GetLine(start.Line)
	if lineText == "" {
		return
	}

	fmt.Fprintf(w, "    %s\n", lineText)

	prefix := lineText
	if int(start.Col-1) <= len(lineText) {
		prefix = lineText[:start.Col-1]
	}
	pad := runewidth.StringWidth(prefix)

	spanLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		marked := lineText[start.Col-1 : min(int(end.Col-1), len(lineText))]
		spanLen = runewidth.StringWidth(marked)
	}
	underline := "^" + strings.Repeat("~", max(spanLen-1, 0))
	if opts.Color {
		underline = underlineColor.Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(s diag.Severity) *color.Color {
	if s >= diag.SevError {
		return sevErrorColor
	}
	return sevWarningColor
}
