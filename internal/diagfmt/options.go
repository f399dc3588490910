package diagfmt

// PrettyOpts configures Pretty's rendering of a diagnostic bag.
type PrettyOpts struct {
	// Color enables ANSI styling of the header, underline and hint.
	Color bool
	// ContextLines carries wave.toml's [diagnostics].context_lines. Pretty
	// does not read it: a snippet always shows only the lines the
	// diagnostic's span covers.
	ContextLines uint8
}
