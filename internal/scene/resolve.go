package scene

import (
	"github.com/vk/livegrid/internal/draw"
	"github.com/vk/livegrid/internal/geom"
	"github.com/vk/livegrid/internal/idx"
	"github.com/vk/livegrid/internal/livecode"
	"github.com/vk/livegrid/internal/unitcell"
	"github.com/vk/livegrid/internal/world"
)

// MaxPoints bounds circle segments and curve points.
const MaxPoints = 4096

// ToValue resolves the whole scene against w.
func (s *Scene) ToValue(r *livecode.Resolver, w *world.Context) Value {
	w = w.WithDefs(s.Defs...)
	return Value{
		Background: s.Background.ToValue(r.Field("background"), w),
		Layers:     livecode.Each[Layer, LayerValue](r, w, "layers", s.Layers),
	}
}

func (l Layer) ToValue(r *livecode.Resolver, w *world.Context) LayerValue {
	var seq unitcell.Sequencer = unitcell.Single{}
	if l.Sequencer != nil {
		seq = l.Sequencer.ToValue(r.Field("sequencer"), w)
	}
	out := LayerValue{
		Name:      l.Name,
		Transform: l.Transform.ToValue(r.Field("transform"), w),
	}
	out.Cells = livecode.Cells(r, w, seq.ToUnitCellCtxs(), l.Prefix,
		func(r *livecode.Resolver, cw *world.Context, _ unitcell.Context) CellValue {
			cw = cw.WithDefs(l.Defs...)
			return CellValue{
				Transform: l.CellTransform.ToValue(r.Field("cell_transform"), cw),
				Style:     l.Style.ToValue(r.Field("style"), cw),
				Shapes:    livecode.Each[Shape, ShapeValue](r, cw, "shapes", l.Shapes),
				Children:  livecode.Each[Layer, LayerValue](r, cw, "layers", l.Layers),
			}
		})
	return out
}

func (s Sequencer) ToValue(r *livecode.Resolver, w *world.Context) unitcell.Sequencer {
	rows := count(s.Rows.ToValue(r.Field("rows"), w))
	cols := count(s.Cols.ToValue(r.Field("cols"), w))
	switch s.Kind {
	case "rect":
		return unitcell.Rect{
			Rows: rows, Cols: cols,
			Size: geom.V2(s.W.ToValue(r.Field("w"), w), s.H.ToValue(r.Field("h"), w)),
		}
	case "hex":
		return unitcell.Hex{
			Rows: rows, Cols: cols,
			Size:      s.Size.ToValue(r.Field("size"), w),
			Alternate: s.Alternate.ToValue(r.Field("alternate"), w),
		}
	default:
		return unitcell.Square{Rows: rows, Cols: cols, Size: s.Size.ToValue(r.Field("size"), w)}
	}
}

func count(n int) uint {
	return uint(max(0, min(n, MaxPoints)))
}

func (t Transform) ToValue(r *livecode.Resolver, w *world.Context) geom.Mat4 {
	x := t.X.ToValue(r.Field("x"), w)
	y := t.Y.ToValue(r.Field("y"), w)
	rot := t.Rotate.ToValue(r.Field("rotate"), w)
	scale := t.Scale.ToValue(r.Field("scale"), w)
	return geom.Translate(geom.V2(x, y)).Mul(geom.RotateZ(rot)).Mul(geom.UniformScale(scale))
}

func (s Style) ToValue(r *livecode.Resolver, w *world.Context) draw.Style {
	return draw.Style{
		Fill:        s.Fill.ToValue(r.Field("fill"), w),
		Stroke:      s.Stroke.ToValue(r.Field("stroke"), w),
		StrokeWidth: s.StrokeWidth.ToValue(r.Field("stroke_width"), w),
	}
}

func (c Circle) ToValue(r *livecode.Resolver, w *world.Context) ShapeValue {
	return CircleValue{
		Radius:   c.Radius.ToValue(r.Field("radius"), w),
		Segments: c.Segments.ToValue(r.Field("segments"), w),
	}
}

func (p Polygon) ToValue(r *livecode.Resolver, w *world.Context) ShapeValue {
	return PolygonValue{
		Sides:    p.Sides.ToValue(r.Field("sides"), w),
		Radius:   p.Radius.ToValue(r.Field("radius"), w),
		Rotation: p.Rotation.ToValue(r.Field("rotation"), w),
	}
}

func (s Rect) ToValue(r *livecode.Resolver, w *world.Context) ShapeValue {
	return RectValue{W: s.W.ToValue(r.Field("w"), w), H: s.H.ToValue(r.Field("h"), w)}
}

func (l Line) ToValue(r *livecode.Resolver, w *world.Context) ShapeValue {
	return LineValue{
		From: geom.V2(l.X1.ToValue(r.Field("x1"), w), l.Y1.ToValue(r.Field("y1"), w)),
		To:   geom.V2(l.X2.ToValue(r.Field("x2"), w), l.Y2.ToValue(r.Field("y2"), w)),
	}
}

// ToValue evaluates the shared x and y expressions once per point with the
// point index injected; the expressions are never re-parsed.
func (c Curve) ToValue(r *livecode.Resolver, w *world.Context) ShapeValue {
	n := count(c.Points.ToValue(r.Field("points"), w))
	x := c.X.ToValue(r, w)
	y := c.Y.ToValue(r, w)
	out := CurveValue{Closed: c.Closed.ToValue(r.Field("closed"), w)}
	if n == 0 {
		return out
	}
	out.Points = make([]geom.Vec2, 0, n)
	for _, i := range idx.Enumerate(n) {
		if r.Aborted() {
			break
		}
		pr := r.Index("points", int(i.I))
		px := livecode.Resolve(pr.Field("x"), c.X.Default, func() (float64, error) { return x.EvalIdx(i, c.Prefix) })
		py := livecode.Resolve(pr.Field("y"), c.Y.Default, func() (float64, error) { return y.EvalIdx(i, c.Prefix) })
		out.Points = append(out.Points, geom.V2(px, py))
	}
	return out
}

func (l Label) ToValue(r *livecode.Resolver, w *world.Context) ShapeValue {
	return LabelValue{
		Text: l.Text.ToValue(r.Field("text"), w),
		Size: l.Size.ToValue(r.Field("size"), w),
		Pos:  geom.V2(l.X.ToValue(r.Field("x"), w), l.Y.ToValue(r.Field("y"), w)),
	}
}

// regular returns n points evenly spaced on a circle, starting at angle a0.
func regular(n int, radius, a0 float64) []geom.Vec2 {
	n = max(3, min(n, MaxPoints))
	pts := make([]geom.Vec2, n)
	for i := range pts {
		pts[i] = geom.Polar(a0+geom.Tau*float64(i)/float64(n), radius)
	}
	return pts
}
