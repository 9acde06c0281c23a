// Package lastgood remembers the most recent successfully resolved value of
// every field, so lenient resolution can fall back to it when an expression
// stops evaluating.
//
// # Concurrency Model
//
// Values are written once per field per frame and read only when that field
// fails. Keys are independent and the key space is stable across frames, so
// the store uses sync.Map instead of a single lock.
package lastgood
