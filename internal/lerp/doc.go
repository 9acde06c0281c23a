// Package lerp blends two values of the same type by a progress fraction.
//
// Numbers interpolate linearly and extrapolate outside [0,1]. Values that
// cannot be blended (booleans, strings, mismatched variants) switch from the
// first to the second value once pct passes 0.5. Lists of different lengths
// grow or shrink smoothly: the result length is the rounded lerp of the two
// lengths, and positions only one side has are taken from that side.
//
// Types opt in by implementing Lerpable. Any covers everything else by
// walking the value with reflection, honoring Lerpify methods wherever it
// finds them.
package lerp
