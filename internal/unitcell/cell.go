package unitcell

import "github.com/vk/livegrid/internal/lerp"

// Cell is one payload placed by a sequencer.
type Cell[T any] struct {
	Node   T
	Detail Context
}

// Cells keep generation order.
type Cells[T any] []Cell[T]

// Build attaches fn's payload to every context, in order.
func Build[T any](ctxs []Context, fn func(Context) T) Cells[T] {
	out := make(Cells[T], len(ctxs))
	for i, c := range ctxs {
		out[i] = Cell[T]{Node: fn(c), Detail: c}
	}
	return out
}

// Nodes returns the payloads in order.
func (cs Cells[T]) Nodes() []T {
	out := make([]T, len(cs))
	for i, c := range cs {
		out[i] = c.Node
	}
	return out
}

// LerpFunc blends payloads with fn and contexts with Context.Lerpify. Which
// cells exist follows the list rule of lerp.SliceFunc.
func LerpFunc[T any](a, b Cells[T], pct float64, fn func(x, y T, pct float64) T) Cells[T] {
	return lerp.SliceFunc(a, b, pct, func(x, y Cell[T], p float64) Cell[T] {
		return Cell[T]{Node: fn(x.Node, y.Node, p), Detail: x.Detail.Lerpify(y.Detail, p)}
	})
}

// Lerp is LerpFunc for Lerpable payloads.
func Lerp[T lerp.Lerpable[T]](a, b Cells[T], pct float64) Cells[T] {
	return LerpFunc(a, b, pct, func(x, y T, p float64) T { return x.Lerpify(y, p) })
}
