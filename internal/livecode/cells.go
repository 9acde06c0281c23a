package livecode

import (
	"github.com/vk/livegrid/internal/unitcell"
	"github.com/vk/livegrid/internal/world"
)

// Cells resolves one payload per unit cell. Each cell is resolved against w
// extended with the cell variables under prefix, at path "cells[i]". The
// cells placed so far are returned when the pass aborts.
func Cells[V any](r *Resolver, w *world.Context, ctxs []unitcell.Context, prefix string,
	fn func(r *Resolver, w *world.Context, cell unitcell.Context) V,
) unitcell.Cells[V] {
	out := make(unitcell.Cells[V], 0, len(ctxs))
	for i, cell := range ctxs {
		if r.Aborted() {
			break
		}
		cw := w.With(cell.ExprValues(prefix)...)
		out = append(out, unitcell.Cell[V]{
			Node:   fn(r.Index("cells", i), cw, cell),
			Detail: cell,
		})
	}
	return out
}

// Each resolves a list of Control values, at path "name[i]".
func Each[C Resolvable[V], V any](r *Resolver, w *world.Context, name string, ctrls []C) []V {
	out := make([]V, 0, len(ctrls))
	for i, c := range ctrls {
		if r.Aborted() {
			break
		}
		out = append(out, c.ToValue(r.Index(name, i), w))
	}
	return out
}
