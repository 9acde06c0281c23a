package lerp

import "math"

// Lerpable is implemented by every type that can blend toward another value
// of itself.
type Lerpable[T any] interface {
	Lerpify(other T, pct float64) T
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float64 returns a + (b-a)*pct. The endpoints are returned exactly.
func Float64(a, b, pct float64) float64 {
	switch pct {
	case 0:
		return a
	case 1:
		return b
	}
	return a + (b-a)*pct
}

func Float32(a, b float32, pct float64) float32 {
	return float32(Float64(float64(a), float64(b), pct))
}

// Int lerps as a float and truncates toward zero.
func Int[T Signed](a, b T, pct float64) T {
	return T(Float64(float64(a), float64(b), pct))
}

// Uint lerps as a float and truncates. Negative extrapolation stops at zero.
func Uint[T Unsigned](a, b T, pct float64) T {
	f := Float64(float64(a), float64(b), pct)
	if f < 0 {
		return 0
	}
	return T(f)
}

// Step returns b once pct passes the midpoint, a otherwise.
func Step[T any](a, b T, pct float64) T {
	if pct > 0.5 {
		return b
	}
	return a
}

func Bool(a, b bool, pct float64) bool       { return Step(a, b, pct) }
func String(a, b string, pct float64) string { return Step(a, b, pct) }

// Count is the rounded lerp of two lengths, never negative.
func Count(a, b int, pct float64) int {
	n := int(math.Round(Float64(float64(a), float64(b), pct)))
	if n < 0 {
		return 0
	}
	return n
}
