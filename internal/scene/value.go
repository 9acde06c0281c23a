package scene

import (
	"github.com/vk/livegrid/internal/color"
	"github.com/vk/livegrid/internal/draw"
	"github.com/vk/livegrid/internal/geom"
	"github.com/vk/livegrid/internal/lerp"
	"github.com/vk/livegrid/internal/unitcell"
)

// Value is a fully resolved scene.
type Value struct {
	Background color.HSVA
	Layers     []LayerValue
}

// Lerpify blends two resolved scenes field by field. Layers, cells, shapes
// and curve points follow the list length rule of package lerp.
func (v Value) Lerpify(o Value, pct float64) Value {
	return lerp.Structural(v, o, pct)
}

type LayerValue struct {
	Name      string
	Transform geom.Mat4
	Cells     unitcell.Cells[CellValue]
}

type CellValue struct {
	Transform geom.Mat4
	Style     draw.Style
	Shapes    []ShapeValue
	Children  []LayerValue
}

// ShapeValue is a resolved shape. Emit appends its paths or labels to f,
// with m taking local coordinates to world space.
type ShapeValue interface {
	Emit(f *draw.Frame, m geom.Mat4, style draw.Style)
}

type CircleValue struct {
	Radius   float64
	Segments int
}

type PolygonValue struct {
	Sides    int
	Radius   float64
	Rotation float64
}

type RectValue struct {
	W, H float64
}

type LineValue struct {
	From, To geom.Vec2
}

type CurveValue struct {
	Points []geom.Vec2
	Closed bool
}

type LabelValue struct {
	Text string
	Size float64
	Pos  geom.Vec2
}
