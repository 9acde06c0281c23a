// Package idx provides the "item i of n" value types used when enumerating
// fixed-size sequences: unit cells, curve segments, list elements.
//
// IndexInRange knows its position and the size of the sequence, so it can
// map itself into percentages and interpolation domains without the caller
// carrying the total around. Index2d pairs two of them for grid cells and
// derives a reproducible per-cell seed.
//
// Both types are immutable values. Derived indices (Prev, Next, Skip) return
// a second boolean that is false at the sequence boundaries.
package idx
