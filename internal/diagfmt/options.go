package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// Color enables ANSI colors.
	Color bool
	// ShowSource prints the offending source line with an underline.
	ShowSource bool
}
