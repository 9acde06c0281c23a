package geom

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

func sincos(a float64) (float64, float64) {
	s, c := math.Sincos(a)
	// snap the quarter turns so rotations by them stay exact
	for _, v := range []*float64{&s, &c} {
		if math.Abs(*v) < 1e-15 {
			*v = 0
		}
	}
	return s, c
}
