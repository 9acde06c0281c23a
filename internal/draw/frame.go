package draw

import (
	"context"

	"github.com/vk/livegrid/internal/color"
	"github.com/vk/livegrid/internal/geom"
)

type Style struct {
	Fill        color.HSVA
	Stroke      color.HSVA
	StrokeWidth float64
}

// DefaultStyle fills white with no stroke.
func DefaultStyle() Style {
	return Style{Fill: color.White, Stroke: color.HSVA{}, StrokeWidth: 1}
}

// Path is a polyline in world space.
type Path struct {
	Points []geom.Vec2
	Closed bool
	Style  Style
}

type Label struct {
	Text  string
	Pos   geom.Vec2
	Size  float64
	Color color.HSVA
}

// Frame is everything one tick draws.
type Frame struct {
	Background color.HSVA
	Paths      []Path
	Labels     []Label
}

// Bounds is the axis-aligned box around every path point and label anchor.
// ok is false for an empty frame.
func (f *Frame) Bounds() (lo, hi geom.Vec2, ok bool) {
	extend := func(p geom.Vec2) {
		if !ok {
			lo, hi, ok = p, p, true
			return
		}
		lo = geom.V2(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = geom.V2(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	for _, p := range f.Paths {
		for _, pt := range p.Points {
			extend(pt)
		}
	}
	for _, l := range f.Labels {
		extend(l.Pos)
	}
	return lo, hi, ok
}

// Drawer consumes frames.
type Drawer interface {
	Draw(ctx context.Context, f *Frame) error
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(ctx context.Context, f *Frame) error

func (fn DrawerFunc) Draw(ctx context.Context, f *Frame) error { return fn(ctx, f) }

// Input is the pointer, window and keyboard state a windowed backend saw
// since the last frame. Zero window sizes mean the backend doesn't know.
type Input struct {
	MouseX, MouseY   float64
	MouseDown        bool
	WindowW, WindowH float64
	Keys             map[string]bool
}

// InputReader is implemented by drawers that own a window. The frame loop
// reads it once per frame before resolving the scene.
type InputReader interface {
	ReadInput() Input
}
