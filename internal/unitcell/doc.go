// Package unitcell turns a grid description into an ordered list of cell
// contexts and attaches a payload to each.
//
// Emission order is column-major: the outer loop runs over x (columns) and
// the inner loop over y (rows). That order is the draw order and the order
// lists are matched in when two generations of cells are blended, so every
// Sequencer keeps it.
package unitcell
