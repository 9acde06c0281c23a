package lerp

// Slice blends two lists element by element.
//
// When either list is empty, a is returned unchanged. When the lengths differ
// the result holds Count(len(a), len(b), pct) elements; index i is blended
// when both lists have it and copied from whichever list has it otherwise.
func Slice[T Lerpable[T]](a, b []T, pct float64) []T {
	return SliceFunc(a, b, pct, func(x, y T, p float64) T {
		return x.Lerpify(y, p)
	})
}

// SliceFunc is Slice with an explicit element blend.
func SliceFunc[T any](a, b []T, pct float64, fn func(x, y T, pct float64) T) []T {
	if len(a) == 0 || len(b) == 0 {
		return a
	}
	count := len(a)
	if len(a) != len(b) {
		count = Count(len(a), len(b), pct)
	}
	out := make([]T, count)
	for i := range out {
		switch {
		case i < len(a) && i < len(b):
			out[i] = fn(a[i], b[i], pct)
		case i < len(a):
			out[i] = a[i]
		default:
			out[i] = b[i]
		}
	}
	return out
}
