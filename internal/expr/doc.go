// Package expr wraps HCL expressions as the scalar expression language used by
// scene descriptions.
//
// A Node is parsed once and evaluated many times against different
// hcl.EvalContext values; nothing is re-parsed per frame or per cell. Nodes
// can report the free variable and function names they reference, which the
// engine uses to warn about identifiers that no input source provides.
package expr
