package scene

import (
	"slices"

	"github.com/vk/livegrid/internal/expr"
	"github.com/vk/livegrid/internal/idx"
	"github.com/vk/livegrid/internal/livecode"
	"github.com/vk/livegrid/internal/unitcell"
	"github.com/vk/livegrid/internal/world"
)

// Expressions lists every expression node in the scene, in tree order.
func (s *Scene) Expressions() []*expr.Node {
	out := colorExprs(s.Background)
	out = append(out, defExprs(s.Defs)...)
	for _, l := range s.Layers {
		out = append(out, l.expressions()...)
	}
	return out
}

// KnownNames lists the variables the scene provides to itself: vars, defs,
// and the cell and curve index variables under their prefixes.
func (s *Scene) KnownNames() []string {
	seen := make(map[string]struct{})
	for _, v := range s.Vars {
		seen[v.Name] = struct{}{}
	}
	for _, d := range s.Defs {
		seen[d.Name] = struct{}{}
	}
	for _, l := range s.Layers {
		l.knownNames(seen)
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func (l Layer) knownNames(seen map[string]struct{}) {
	for _, v := range unitcell.Root().ExprValues(l.Prefix) {
		seen[v.Name] = struct{}{}
	}
	for _, d := range l.Defs {
		seen[d.Name] = struct{}{}
	}
	for _, sh := range l.Shapes {
		if c, ok := sh.(Curve); ok {
			for _, v := range idx.New(0, 1).Vars(c.Prefix) {
				seen[v.Name] = struct{}{}
			}
		}
	}
	for _, child := range l.Layers {
		child.knownNames(seen)
	}
}

func (l Layer) expressions() []*expr.Node {
	var out []*expr.Node
	if l.Sequencer != nil {
		s := l.Sequencer
		out = appendExprs(out, s.Rows.Expr, s.Cols.Expr, s.Size.Expr, s.W.Expr, s.H.Expr, s.Alternate.Expr)
	}
	out = append(out, l.Transform.expressions()...)
	out = append(out, l.CellTransform.expressions()...)
	out = append(out, colorExprs(l.Style.Fill)...)
	out = append(out, colorExprs(l.Style.Stroke)...)
	out = appendExprs(out, l.Style.StrokeWidth.Expr)
	out = append(out, defExprs(l.Defs)...)
	for _, sh := range l.Shapes {
		out = append(out, sh.expressions()...)
	}
	for _, child := range l.Layers {
		out = append(out, child.expressions()...)
	}
	return out
}

func (t Transform) expressions() []*expr.Node {
	return appendExprs(nil, t.X.Expr, t.Y.Expr, t.Rotate.Expr, t.Scale.Expr)
}

func (c Circle) expressions() []*expr.Node {
	return appendExprs(nil, c.Radius.Expr, c.Segments.Expr)
}

func (p Polygon) expressions() []*expr.Node {
	return appendExprs(nil, p.Sides.Expr, p.Radius.Expr, p.Rotation.Expr)
}

func (s Rect) expressions() []*expr.Node  { return appendExprs(nil, s.W.Expr, s.H.Expr) }
func (l Line) expressions() []*expr.Node  { return appendExprs(nil, l.X1.Expr, l.Y1.Expr, l.X2.Expr, l.Y2.Expr) }
func (c Curve) expressions() []*expr.Node { return appendExprs(nil, c.Points.Expr, c.X.Expr, c.Y.Expr, c.Closed.Expr) }
func (l Label) expressions() []*expr.Node { return appendExprs(nil, l.Text.Expr, l.Size.Expr, l.X.Expr, l.Y.Expr) }

func colorExprs(c livecode.Color) []*expr.Node {
	return appendExprs(nil, c.H.Expr, c.S.Expr, c.V.Expr, c.A.Expr)
}

func defExprs(defs []world.Def) []*expr.Node {
	out := make([]*expr.Node, 0, len(defs))
	for _, d := range defs {
		out = appendExprs(out, d.Expr)
	}
	return out
}

func appendExprs(out []*expr.Node, nodes ...*expr.Node) []*expr.Node {
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
