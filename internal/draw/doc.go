// Package draw is the boundary to rendering backends: a Frame of transformed
// paths and labels in draw order. Nothing here rasterizes.
package draw
