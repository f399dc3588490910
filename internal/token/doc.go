package token

// The Kind and keyword tables in this package are initialized once at
// package load and never mutated afterward; lookups are safe for
// concurrent use.
