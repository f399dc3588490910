// Package trace provides a tracing subsystem for the wave front-end.
//
// The trace package enables tracking of lex/parse phases, per-file
// processing, and other operations to help diagnose performance issues
// and hangs.
//
// # Usage
//
// No wave subcommand has a tracing flag, and the lexer and parser do not
// take a tracer. A host builds one with New and carries it in a context
// (see Context Propagation below).
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - NopTracer: Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer for crash dumps
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Module-level events
//   - LevelDebug: Everything including AST nodes
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: Top-level CLI operations
//   - ScopeModule: Per-module processing
//   - ScopePass: Front-end phases (lex, parse, print)
//   - ScopeNode: AST node level (future)
//
// # Context Propagation
//
// A tracer can be carried in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
