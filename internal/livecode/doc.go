// Package livecode resolves Control trees into Value trees.
//
// A Control tree holds literals and unevaluated expressions. Resolving it
// against a world.Context evaluates every expression and expands every
// sequencer into one resolved payload per unit cell, each cell seeing its
// own index variables.
//
// A Resolver carries the field path of whatever is being resolved, so every
// failure is reported as a *FieldError naming that path. What happens next
// depends on the Mode:
//
//   - Strict: the first failure aborts the pass. Later fields are not
//     evaluated and Err returns the failure.
//   - Lenient: the field takes its last-known-good value, or its default
//     when it never resolved. Every failure is collected and logged.
//
// Evaluating an expression that was never bound (lazy.ErrUninitialized) is a
// wiring bug and aborts the pass in both modes.
package livecode
