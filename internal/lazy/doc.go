// Package lazy defines the deferred scalar computation that binds an
// expression to the world it will be evaluated in.
//
// A Node is one of three states. The zero value is Uninitialized and always
// fails to evaluate. NoCtx holds a literal and ignores any injected values.
// Bound holds a parsed expression plus a captured world.Context.
//
// Injecting extra values (AddExprValues, AddMoreDefs, EvalIdx) returns a new
// Node with an extended overlay; the expression is shared and never
// re-parsed, and the receiver is unchanged. Independent call sites can
// therefore evaluate the same shared node concurrently as long as each keeps
// its own extended copy.
package lazy
