package unitcell

import (
	"github.com/vk/livegrid/internal/geom"
	"github.com/vk/livegrid/internal/idx"
	"github.com/vk/livegrid/internal/lerp"
	"github.com/vk/livegrid/internal/world"
)

// ReferenceUnit is the cell size that maps to a unit scale.
const ReferenceUnit = 100.0

// Tile describes the cell shape a sequencer produced.
type Tile struct {
	Kind string
	Size geom.Vec2
}

// Context is everything one cell knows about itself.
type Context struct {
	Idx       idx.Index2d
	Transform geom.Mat4
	Detail    []world.ExprValue
	Tile      *Tile
}

// Root is the context of the whole canvas: a single cell with no offset.
func Root() Context {
	return Context{Idx: idx.New2d(0, 1, 0, 1), Transform: geom.Identity()}
}

func (c Context) Center() geom.Vec2 { return c.Transform.Translation() }

// ExprValues are the variables injected for this cell: the index variables,
// {prefix}_x and {prefix}_y for the cell center, then Detail.
func (c Context) ExprValues(prefix string) []world.ExprValue {
	vals := world.FromVars(c.Idx.Vars(prefix))
	center := c.Center()
	vals = append(vals,
		world.Float(prefix+"_x", center.X),
		world.Float(prefix+"_y", center.Y),
		world.Float(prefix+"_scale", c.Transform.ScaleFactor()),
	)
	return append(vals, c.Detail...)
}

// WithDetail returns a copy with extra injected values.
func (c Context) WithDetail(vals ...world.ExprValue) Context {
	detail := make([]world.ExprValue, 0, len(c.Detail)+len(vals))
	detail = append(detail, c.Detail...)
	c.Detail = append(detail, vals...)
	return c
}

// Compose places inner inside outer. Transforms multiply; index, detail and
// tile come from inner alone.
func Compose(outer, inner Context) Context {
	return Context{
		Idx:       inner.Idx,
		Transform: outer.Transform.Mul(inner.Transform),
		Detail:    inner.Detail,
		Tile:      inner.Tile,
	}
}

// Lerpify blends the transform. Index, detail and tile switch at the
// midpoint.
func (c Context) Lerpify(o Context, pct float64) Context {
	out := lerp.Step(c, o, pct)
	out.Transform = c.Transform.Lerpify(o.Transform, pct)
	return out
}
