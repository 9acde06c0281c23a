package idx

import "fmt"

// Index2d is a grid position: X is the column, Y is the row.
type Index2d struct {
	X IndexInRange
	Y IndexInRange
}

// New2d builds a grid index from column and row positions.
func New2d(x, cols, y, rows uint) Index2d {
	return Index2d{X: New(x, cols), Y: New(y, rows)}
}

// Total is the number of cells in the grid.
func (g Index2d) Total() uint {
	return g.X.Total * g.Y.Total
}

// Flat is the position of the cell in column-major emission order.
func (g Index2d) Flat() uint {
	return g.X.I*g.Y.Total + g.Y.I
}

// Seed is a deterministic function of (x.I, x.Total, y.I). Two grids with the
// same column count produce the same seed for the same cell.
func (g Index2d) Seed() uint64 {
	h := uint64(g.X.I)*0x9E3779B97F4A7C15 ^ uint64(g.X.Total)*0xC2B2AE3D27D4EB4F ^ uint64(g.Y.I)*0x165667B19E3779F9
	// splitmix64 finalizer
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return h
}

// Random maps Seed into [0, 1).
func (g Index2d) Random() float64 {
	return float64(g.Seed()>>11) / float64(uint64(1)<<53)
}

// Vars returns the per-axis variables plus the flat index, the cell count and
// a per-cell random value, all under the prefix.
func (g Index2d) Vars(prefix string) []Var {
	vars := make([]Var, 0, 11)
	vars = append(vars, g.X.Vars(prefix+"_x")...)
	vars = append(vars, g.Y.Vars(prefix+"_y")...)
	vars = append(vars,
		Var{Name: prefix + "_i", Value: float64(g.Flat())},
		Var{Name: prefix + "_total", Value: float64(g.Total())},
		Var{Name: prefix + "_rand", Value: g.Random()},
	)
	return vars
}

func (g Index2d) String() string {
	return fmt.Sprintf("(%s, %s)", g.X, g.Y)
}
