package scene

import "github.com/vk/livegrid/internal/config"

type shapeSpec struct {
	attrs []string
	parse func(d *decoder, b *config.Body) Shape
}

// shapeParsers maps a block type to its shape.
var shapeParsers = map[string]shapeSpec{
	"circle": {
		attrs: []string{"radius", "segments"},
		parse: func(d *decoder, b *config.Body) Shape {
			return Circle{Radius: d.float(b, "radius", 50), Segments: d.int(b, "segments", 32)}
		},
	},
	"polygon": {
		attrs: []string{"sides", "radius", "rotation"},
		parse: func(d *decoder, b *config.Body) Shape {
			return Polygon{
				Sides:    d.int(b, "sides", 6),
				Radius:   d.float(b, "radius", 50),
				Rotation: d.float(b, "rotation", 0),
			}
		},
	},
	"rect": {
		attrs: []string{"w", "h"},
		parse: func(d *decoder, b *config.Body) Shape {
			return Rect{W: d.float(b, "w", 100), H: d.float(b, "h", 100)}
		},
	},
	"line": {
		attrs: []string{"x1", "y1", "x2", "y2"},
		parse: func(d *decoder, b *config.Body) Shape {
			return Line{
				X1: d.float(b, "x1", -50), Y1: d.float(b, "y1", 0),
				X2: d.float(b, "x2", 50), Y2: d.float(b, "y2", 0),
			}
		},
	},
	"curve": {
		attrs: []string{"points", "prefix", "x", "y", "closed"},
		parse: func(d *decoder, b *config.Body) Shape {
			return Curve{
				Points: d.int(b, "points", 32),
				Prefix: d.staticString(b, "prefix", "seg"),
				X:      d.lazy(b, "x", 0),
				Y:      d.lazy(b, "y", 0),
				Closed: d.bool(b, "closed", false),
			}
		},
	},
	"label": {
		attrs: []string{"text", "size", "x", "y"},
		parse: func(d *decoder, b *config.Body) Shape {
			return Label{
				Text: d.text(b, "text", ""),
				Size: d.float(b, "size", 12),
				X:    d.float(b, "x", 0),
				Y:    d.float(b, "y", 0),
			}
		},
	},
}
