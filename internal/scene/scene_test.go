package scene

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/livegrid/internal/config"
	"github.com/vk/livegrid/internal/geom"
	"github.com/vk/livegrid/internal/lastgood"
	"github.com/vk/livegrid/internal/livecode"
	"github.com/vk/livegrid/internal/testutil"
	"github.com/vk/livegrid/internal/world"
)

const gridHCL = `
background = "#000000ff"

vars {
  base = 50
}

layer "grid" {
  sequencer "square" {
    rows = 2
    cols = 2
    size = 10
  }
  circle {
    radius = base
  }
}
`

const gridYAML = `
background: "#000000ff"
vars:
  base: 50
layer grid:
  sequencer square:
    rows: 2
    cols: 2
    size: 10
  circle:
    radius: base
`

func load(t *testing.T, filename, src string) *Scene {
	t.Helper()
	s, err := Load(filename, []byte(src))
	require.NoError(t, err)
	return s
}

func resolve(t *testing.T, s *Scene, mode livecode.Mode, vals ...world.ExprValue) (Value, *livecode.Resolver) {
	t.Helper()
	ctx, _ := testutil.Context(t)
	r := livecode.NewResolver(ctx, mode, lastgood.New())
	w := testutil.World(t, s.Vars...).With(vals...)
	return s.ToValue(r, w), r
}

func TestSquareGridIsSymmetric(t *testing.T) {
	s := load(t, "grid.hcl", gridHCL)
	v, r := resolve(t, s, livecode.Strict)
	require.NoError(t, r.Err())

	require.Len(t, v.Layers, 1)
	layer := v.Layers[0]
	assert.Equal(t, "grid", layer.Name)
	require.Len(t, layer.Cells, 4)

	var sum geom.Vec2
	for _, c := range layer.Cells {
		center := c.Detail.Center()
		assert.InDelta(t, 5, abs(center.X), 1e-9)
		assert.InDelta(t, 5, abs(center.Y), 1e-9)
		sum = sum.Add(center)
		require.Len(t, c.Node.Shapes, 1)
		assert.Equal(t, CircleValue{Radius: 50, Segments: 32}, c.Node.Shapes[0])
	}
	assert.InDelta(t, 0, sum.X, 1e-9)
	assert.InDelta(t, 0, sum.Y, 1e-9)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestFrameFlattensToWorldSpace(t *testing.T) {
	s := load(t, "grid.hcl", gridHCL)
	v, _ := resolve(t, s, livecode.Strict)
	f := v.Frame()

	require.Len(t, f.Paths, 4)
	first := f.Paths[0]
	assert.True(t, first.Closed)
	require.Len(t, first.Points, 32)
	// Cell (-5,-5), scaled by 10/100, radius 50 -> 5 world units.
	assert.InDelta(t, 0, first.Points[0].X, 1e-9)
	assert.InDelta(t, -5, first.Points[0].Y, 1e-9)

	lo, hi, ok := f.Bounds()
	require.True(t, ok)
	assert.InDelta(t, -10, lo.X, 1e-9)
	assert.InDelta(t, 10, hi.X, 1e-9)
}

func TestHCLAndYAMLDecodeEquivalently(t *testing.T) {
	fromHCL := load(t, "grid.hcl", gridHCL)
	fromYAML := load(t, "grid.yaml", gridYAML)

	vh, _ := resolve(t, fromHCL, livecode.Strict)
	vy, _ := resolve(t, fromYAML, livecode.Strict)
	if diff := cmp.Diff(vh.Frame(), vy.Frame()); diff != "" {
		t.Errorf("frames differ (-hcl +yaml):\n%s", diff)
	}
	assert.Equal(t, fromHCL.KnownNames(), fromYAML.KnownNames())
}

func TestCurveEvaluatesPerPoint(t *testing.T) {
	s := load(t, "curve.hcl", `
layer {
  curve {
    points = 5
    x      = seg_pct * 100
    y      = seg_i * amp
  }
}
`)
	v, r := resolve(t, s, livecode.Strict, world.Float("amp", 2))
	require.NoError(t, r.Err())

	curve := v.Layers[0].Cells[0].Node.Shapes[0].(CurveValue)
	want := []geom.Vec2{{X: 0, Y: 0}, {X: 25, Y: 2}, {X: 50, Y: 4}, {X: 75, Y: 6}, {X: 100, Y: 8}}
	assert.Equal(t, want, curve.Points)
	assert.False(t, curve.Closed)
}

func TestCurvePrefixAndNestedLayers(t *testing.T) {
	s := load(t, "nested.hcl", `
layer "outer" {
  sequencer "rect" {
    cols = 2
    w    = 200
    h    = 100
  }
  layer "inner" {
    prefix = "dot"
    sequencer "square" {
      rows = 1
      cols = 2
      size = 100
    }
    label {
      text = "${cell_i}:${dot_i}"
    }
  }
}
`)
	v, r := resolve(t, s, livecode.Strict)
	require.NoError(t, r.Err())

	f := v.Frame()
	require.Len(t, f.Labels, 4)
	var texts []string
	for _, l := range f.Labels {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{"0:0", "0:1", "1:0", "1:1"}, texts)
	// Outer cells sit at x=-100 and x=100 with a 2x horizontal scale; inner
	// cells at x=-50 and x=50.
	assert.InDelta(t, -200, f.Labels[0].Pos.X, 1e-9)
	assert.InDelta(t, 200, f.Labels[3].Pos.X, 1e-9)
}

func TestStrictFailureNamesField(t *testing.T) {
	s := load(t, "bad.hcl", `
layer {
  rect {
    w = 10
    h = sqrt(0 - 1)
  }
}
`)
	_, r := resolve(t, s, livecode.Strict)
	err := r.Err()
	require.Error(t, err)

	var fe *livecode.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "layers[0].cells[0].shapes[0].h", fe.Path.String())
}

func TestLenientFailureUsesDefault(t *testing.T) {
	s := load(t, "bad.hcl", `
layer {
  rect {
    w = missing * 2
  }
}
`)
	v, r := resolve(t, s, livecode.Lenient)
	require.NoError(t, r.Err())
	require.Len(t, r.Errors(), 1)
	assert.Equal(t, RectValue{W: 100, H: 100}, v.Layers[0].Cells[0].Node.Shapes[0])
}

func TestValueLerpify(t *testing.T) {
	at := func(radius float64) Value {
		s := load(t, "one.hcl", `
layer {
  circle {
    radius = r
  }
  style {
    fill { v = r / 100 }
  }
}
`)
		v, _ := resolve(t, s, livecode.Strict, world.Float("r", radius))
		return v
	}
	a, b := at(20), at(40)

	mid := a.Lerpify(b, 0.5)
	cell := mid.Layers[0].Cells[0].Node
	assert.Equal(t, CircleValue{Radius: 30, Segments: 32}, cell.Shapes[0])
	assert.InDelta(t, 0.3, cell.Style.Fill.V, 1e-9)

	assert.Equal(t, a, a.Lerpify(b, 0))
	assert.Equal(t, b, a.Lerpify(b, 1))
}

func TestDecodeDefaults(t *testing.T) {
	s := load(t, "defaults.hcl", `
mode              = "strict"
transition_frames = 12

defs {
  a = 1
  b = a + 1
}

layer {
  polygon {}
  line {}
}
`)
	require.NotNil(t, s.Mode)
	assert.Equal(t, livecode.Strict, *s.Mode)
	require.NotNil(t, s.TransitionFrames)
	assert.Equal(t, 12, *s.TransitionFrames)
	require.Len(t, s.Defs, 2)
	assert.Equal(t, "a", s.Defs[0].Name)

	layer := s.Layers[0]
	assert.Equal(t, DefaultPrefix, layer.Prefix)
	assert.Nil(t, layer.Sequencer)
	require.Len(t, layer.Shapes, 2)
	assert.Equal(t, "polygon", layer.Shapes[0].Kind())
	assert.Equal(t, "line", layer.Shapes[1].Kind())

	v, r := resolve(t, s, livecode.Strict)
	require.NoError(t, r.Err())
	assert.Equal(t, PolygonValue{Sides: 6, Radius: 50}, v.Layers[0].Cells[0].Node.Shapes[0])
	assert.Equal(t, LineValue{From: geom.V2(-50, 0), To: geom.V2(50, 0)}, v.Layers[0].Cells[0].Node.Shapes[1])
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		summary string
	}{
		{name: "unknown argument", src: `speed = 1`, summary: "Unsupported argument"},
		{name: "unknown shape", src: "layer {\n  blob {}\n}", summary: "Unsupported block type"},
		{name: "unknown shape argument", src: "layer {\n  circle {\n    r = 1\n  }\n}", summary: "Unsupported argument"},
		{name: "sequencer kind", src: "layer {\n  sequencer \"tri\" {}\n}", summary: "Unknown sequencer"},
		{name: "sequencer without kind", src: "layer {\n  sequencer {}\n}", summary: "Missing sequencer kind"},
		{name: "duplicate sequencer", src: "layer {\n  sequencer \"square\" {}\n  sequencer \"hex\" {}\n}", summary: `Duplicate "sequencer" block`},
		{name: "bad hex", src: `background = "#zz0000"`, summary: "Invalid color"},
		{name: "conflicting color", src: "background = \"#fff\"\nbackground {\n  h = 1\n}", summary: "Conflicting color"},
		{name: "mode", src: `mode = "loose"`, summary: "Invalid mode"},
		{name: "dynamic mode", src: `mode = t`, summary: "Invalid value"},
		{name: "negative transition", src: `transition_frames = -1`, summary: "Invalid value"},
		{name: "self reference", src: "defs {\n  a = a + 1\n}", summary: "Self-referential definition"},
		{name: "dynamic var", src: "vars {\n  a = t\n}", summary: "Invalid variable"},
		{name: "labelled shape", src: "layer {\n  rect \"r\" {}\n}", summary: "Unexpected label"},
		{name: "block in vars", src: "vars {\n  nested {}\n}", summary: "Unsupported block type"},
		{name: "block in defs", src: "defs {\n  nested {}\n}", summary: "Unsupported block type"},
		{name: "shadowed default prefix", src: "layer {\n  layer {\n    prefix = \"cell\"\n  }\n}", summary: "Shadowed prefix"},
		{name: "shadowed explicit prefix", src: "layer {\n  prefix = \"c\"\n  layer {\n    layer {\n      prefix = \"c\"\n    }\n  }\n}", summary: "Shadowed prefix"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("bad.hcl", []byte(tt.src))
			require.Error(t, err)

			var pe *config.ParseError
			require.True(t, errors.As(err, &pe), "want *config.ParseError, got %T", err)
			require.NotEmpty(t, pe.Diags)
			var summaries []string
			for _, d := range pe.Diags {
				summaries = append(summaries, d.Summary)
			}
			assert.Contains(t, summaries, tt.summary)
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load("broken.hcl", []byte(`layer {`))
	var pe *config.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "broken.hcl", pe.Filename)
}

func TestExpressionsAndKnownNames(t *testing.T) {
	s := load(t, "names.hcl", `
vars {
  speed = 2
}
defs {
  phase = t * speed
}
layer {
  prefix = "c"
  sequencer "hex" {
    rows = 2
    cols = 2
  }
  curve {
    prefix = "p"
    x      = p_pct + c_x
  }
}
`)
	var srcs []string
	for _, n := range s.Expressions() {
		srcs = append(srcs, n.Source())
	}
	assert.Equal(t, []string{"t * speed", "2", "2", "p_pct + c_x"}, srcs)

	names := s.KnownNames()
	for _, want := range []string{"speed", "phase", "c_i", "c_x", "c_y", "c_rand", "p_i", "p_pct"} {
		assert.Contains(t, names, want)
	}
	assert.NotContains(t, names, "t")
}

func TestDecodeVarsAndDefs(t *testing.T) {
	s := load(t, "v.hcl", `
vars {
  base = 50
  on   = true
}
defs {
  r = base * 2
}
layer {
  circle {
    radius = r
  }
}
`)
	assert.Equal(t, []world.ExprValue{world.Float("base", 50), world.Bool("on", true)}, s.Vars)
	require.Len(t, s.Defs, 1)
	assert.Equal(t, "r", s.Defs[0].Name)

	v, r := resolve(t, s, livecode.Strict)
	require.NoError(t, r.Err())
	assert.Equal(t, CircleValue{Radius: 100, Segments: 32}, v.Layers[0].Cells[0].Node.Shapes[0])
}

func TestNestedLayersGetDepthPrefixes(t *testing.T) {
	s := load(t, "depth.hcl", `
layer {
  sequencer "square" {
    cols = 2
  }
  layer {
    sequencer "square" {
      cols = 3
    }
    layer {
      label {
        text = "${cell_x_i}/${cell_x_total}:${cell1_x_i}/${cell1_x_total}:${cell2_i}"
      }
    }
  }
}
`)
	outer := s.Layers[0]
	assert.Equal(t, "cell", outer.Prefix)
	assert.Equal(t, "cell1", outer.Layers[0].Prefix)
	assert.Equal(t, "cell2", outer.Layers[0].Layers[0].Prefix)

	v, r := resolve(t, s, livecode.Strict)
	require.NoError(t, r.Err())

	var texts []string
	for _, l := range v.Frame().Labels {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{
		"0/2:0/3:0", "0/2:1/3:0", "0/2:2/3:0",
		"1/2:0/3:0", "1/2:1/3:0", "1/2:2/3:0",
	}, texts)
	assert.Contains(t, s.KnownNames(), "cell1_x_total")
}

func TestFieldErrorPointsAtExpression(t *testing.T) {
	s := load(t, "bad.hcl", `
layer {
  rect {
    w = 10
    h = sqrt(0 - 1)
  }
}
`)
	_, r := resolve(t, s, livecode.Strict)
	var fe *livecode.FieldError
	require.True(t, errors.As(r.Err(), &fe))
	require.NotNil(t, fe.Subject)
	assert.Equal(t, "bad.hcl", fe.Subject.Filename)
	assert.Equal(t, 5, fe.Subject.Start.Line)
	assert.Equal(t, 9, fe.Subject.Start.Column)
	assert.Equal(t, 20, fe.Subject.End.Column)
	assert.Contains(t, fe.Error(), "bad.hcl:5,9-20: layers[0].cells[0].shapes[0].h")

	diag := fe.Diagnostic()
	assert.Equal(t, "Failed to resolve layers[0].cells[0].shapes[0].h", diag.Summary)
	assert.Equal(t, fe.Subject, diag.Subject)
}
