// Package token defines the template token types produced by the lexer.
//
// Tokenization is a lossless partition: every byte of the template
// belongs to exactly one token span, in order. Directive payloads are
// trimmed in Contents but their spans keep the raw slice, which is what
// line accounting and diagnostics work from.
package token
