// Package diag defines the diagnostic model for the template pipeline.
//
//   - Code identifies the failure condition; its numeric range maps to
//     the phase (2xxx structural, 3xxx resolution).
//   - Error is the render-aborting error value the engine returns. The
//     first Error raised anywhere in lexing, parsing, or rendering
//     surfaces to the caller unmodified; nothing retries or swallows.
//   - Diagnostic and Bag are the aggregate forms the CLI uses when it
//     reports over many templates at once.
//
// Formatting lives in internal/diagfmt; this package stays data-only.
package diag
