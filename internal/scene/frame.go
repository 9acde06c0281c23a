package scene

import (
	"github.com/vk/livegrid/internal/draw"
	"github.com/vk/livegrid/internal/geom"
	"github.com/vk/livegrid/internal/unitcell"
)

// Frame flattens v into world-space paths and labels, in draw order.
func (v Value) Frame() *draw.Frame {
	f := &draw.Frame{Background: v.Background}
	root := unitcell.Root()
	for _, l := range v.Layers {
		l.emit(f, root)
	}
	return f
}

func (l LayerValue) emit(f *draw.Frame, parent unitcell.Context) {
	base := unitcell.Compose(parent, unitcell.Context{Transform: l.Transform})
	for _, c := range l.Cells {
		placed := unitcell.Compose(base, c.Detail)
		m := placed.Transform.Mul(c.Node.Transform)
		for _, s := range c.Node.Shapes {
			s.Emit(f, m, c.Node.Style)
		}
		for _, child := range c.Node.Children {
			child.emit(f, unitcell.Context{Idx: placed.Idx, Transform: m})
		}
	}
}

func applyAll(m geom.Mat4, pts []geom.Vec2) []geom.Vec2 {
	out := make([]geom.Vec2, len(pts))
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}

func (c CircleValue) Emit(f *draw.Frame, m geom.Mat4, style draw.Style) {
	f.Paths = append(f.Paths, draw.Path{
		Points: applyAll(m, regular(c.Segments, c.Radius, 0)),
		Closed: true,
		Style:  style,
	})
}

func (p PolygonValue) Emit(f *draw.Frame, m geom.Mat4, style draw.Style) {
	f.Paths = append(f.Paths, draw.Path{
		Points: applyAll(m, regular(p.Sides, p.Radius, p.Rotation)),
		Closed: true,
		Style:  style,
	})
}

func (r RectValue) Emit(f *draw.Frame, m geom.Mat4, style draw.Style) {
	w, h := r.W/2, r.H/2
	f.Paths = append(f.Paths, draw.Path{
		Points: applyAll(m, []geom.Vec2{{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h}}),
		Closed: true,
		Style:  style,
	})
}

func (l LineValue) Emit(f *draw.Frame, m geom.Mat4, style draw.Style) {
	f.Paths = append(f.Paths, draw.Path{Points: applyAll(m, []geom.Vec2{l.From, l.To}), Style: style})
}

func (c CurveValue) Emit(f *draw.Frame, m geom.Mat4, style draw.Style) {
	if len(c.Points) < 2 {
		return
	}
	f.Paths = append(f.Paths, draw.Path{Points: applyAll(m, c.Points), Closed: c.Closed, Style: style})
}

// Emit places the label at its transformed anchor, scaled with the cell, in
// the fill color.
func (l LabelValue) Emit(f *draw.Frame, m geom.Mat4, style draw.Style) {
	f.Labels = append(f.Labels, draw.Label{
		Text:  l.Text,
		Pos:   m.Apply(l.Pos),
		Size:  l.Size * m.ScaleFactor(),
		Color: style.Fill,
	})
}
