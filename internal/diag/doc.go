// Package diag defines the diagnostic model shared by the lexer and parser.
//
// A Diagnostic is a span plus three owned strings: Message (what went
// wrong), Label (the short phrase placed under the underlined span), and an
// optional Hint (a longer, separately-styled suggestion). Producers never
// return a Go error for a source-text problem; they append a Diagnostic to
// a Bag and keep going, returning the best-effort partial result (often the
// invalid/zero node) to the caller.
//
// Rendering the three-part header/snippet/hint emission lives in
// internal/diagfmt, which is the only consumer that needs the virtual file
// store to resolve a Span back to source text.
package diag
