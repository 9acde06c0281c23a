package scene

import (
	"strconv"

	"github.com/vk/livegrid/internal/expr"
	"github.com/vk/livegrid/internal/livecode"
	"github.com/vk/livegrid/internal/world"
)

// DefaultPrefix names the cell variables of a top-level layer that sets
// none. Nested layers default to DefaultPrefix followed by their depth, so
// cell1_i inside a layer nested once.
const DefaultPrefix = "cell"

func defaultPrefix(depth int) string {
	if depth == 0 {
		return DefaultPrefix
	}
	return DefaultPrefix + strconv.Itoa(depth)
}

// Scene is the root of the Control tree.
type Scene struct {
	// Mode and TransitionFrames override the engine defaults when set.
	Mode             *livecode.Mode
	TransitionFrames *int

	Vars       []world.ExprValue
	Defs       []world.Def
	Background livecode.Color
	Layers     []Layer
}

// Layer repeats its shapes and child layers in every cell of its sequencer.
type Layer struct {
	Name   string
	Prefix string

	// Sequencer is nil for a single cell at the origin.
	Sequencer *Sequencer

	// Transform applies to the whole layer; CellTransform to each cell,
	// evaluated with that cell's variables.
	Transform     Transform
	CellTransform Transform

	Style  Style
	Defs   []world.Def
	Shapes []Shape
	Layers []Layer
}

// Sequencer selects and sizes the unit cell layout.
type Sequencer struct {
	Kind       string // square, rect or hex
	Rows, Cols livecode.Int
	Size       livecode.Float
	W, H       livecode.Float
	Alternate  livecode.Bool
}

// Transform is translate · rotate · scale.
type Transform struct {
	X, Y   livecode.Float
	Rotate livecode.Float
	Scale  livecode.Float
}

func identityTransform() Transform {
	return Transform{Scale: livecode.Const(1)}
}

type Style struct {
	Fill        livecode.Color
	Stroke      livecode.Color
	StrokeWidth livecode.Float
}

// Shape is one drawable in a cell.
type Shape interface {
	livecode.Resolvable[ShapeValue]
	Kind() string
	expressions() []*expr.Node
}

type Circle struct {
	Radius   livecode.Float
	Segments livecode.Int
}

type Polygon struct {
	Sides    livecode.Int
	Radius   livecode.Float
	Rotation livecode.Float
}

type Rect struct {
	W, H livecode.Float
}

type Line struct {
	X1, Y1, X2, Y2 livecode.Float
}

// Curve samples X and Y once per point, with the point index injected under
// Prefix.
type Curve struct {
	Points livecode.Int
	Prefix string
	X, Y   livecode.Lazy
	Closed livecode.Bool
}

type Label struct {
	Text livecode.Text
	Size livecode.Float
	X, Y livecode.Float
}

func (Circle) Kind() string  { return "circle" }
func (Polygon) Kind() string { return "polygon" }
func (Rect) Kind() string    { return "rect" }
func (Line) Kind() string    { return "line" }
func (Curve) Kind() string   { return "curve" }
func (Label) Kind() string   { return "label" }
