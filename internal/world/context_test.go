package world

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/vk/livegrid/internal/expr"
	"github.com/zclconf/go-cty/cty"
)

func eval(t *testing.T, w *Context, src string) float64 {
	t.Helper()
	ectx, err := w.EvalContext()
	require.NoError(t, err)
	got, err := expr.MustParse(src).Eval(ectx)
	require.NoError(t, err)
	return got
}

func TestContext_WithDoesNotMutate(t *testing.T) {
	base := NewContext(map[string]cty.Value{"t": cty.NumberIntVal(2)})
	child := base.With(Float("cell_i", 3))

	assert.Equal(t, 5.0, eval(t, child, "t + cell_i"))

	_, ok := base.Lookup("cell_i")
	assert.False(t, ok, "base context must not see the overlay")

	ectx, err := base.EvalContext()
	require.NoError(t, err)
	_, err = expr.MustParse("cell_i").Eval(ectx)
	assert.Error(t, err)
}

func TestContext_OverlayShadowsBase(t *testing.T) {
	base := NewContext(map[string]cty.Value{"x": cty.NumberIntVal(1)})
	assert.Equal(t, 9.0, eval(t, base.With(Float("x", 9)), "x"))
	assert.Equal(t, 1.0, eval(t, base, "x"))
}

func TestContext_DefsEvaluateInOrder(t *testing.T) {
	w := Empty().With(Float("r", 2)).WithDefs(
		Def{Name: "d", Expr: expr.MustParse("r * 2")},
		Def{Name: "area", Expr: expr.MustParse("d * d")},
	)
	assert.Equal(t, 16.0, eval(t, w, "area"))
	assert.Contains(t, w.Names(), "area")
}

func TestContext_FailedDefIsUndefined(t *testing.T) {
	w := Empty().With(Float("r", 3)).WithDefs(
		Def{Name: "bad", Expr: expr.MustParse("cell_i + 1")},
		Def{Name: "worse", Expr: expr.MustParse("bad * 2")},
		Def{Name: "ok", Expr: expr.MustParse("r + 1")},
	)
	ectx, err := w.EvalContext()
	require.NoError(t, err)
	assert.Equal(t, 4.0, eval(t, w, "ok"))
	_, err = expr.MustParse("worse").Eval(ectx)
	assert.Error(t, err)

	// The same def resolves once the cell variable is there.
	cell := w.With(Float("cell_i", 1))
	assert.Equal(t, 4.0, eval(t, cell, "worse"))
}

func TestFunctions(t *testing.T) {
	w := Empty()
	testCases := []struct {
		src  string
		want float64
	}{
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"abs(-2)", 2},
		{"max(1, 5, 3)", 5},
		{"min(1, 5, 3)", 1},
		{"floor(2.7)", 2},
		{"clamp(5, 0, 1)", 1},
		{"lerp(10, 20, 0.25)", 12.5},
		{"fract(2.25)", 0.25},
		{"tri(0.5)", 1},
		{"smoothstep(0, 1, 0.5)", 0.5},
		{"pow(2, 3)", 8},
		{"sqrt(9)", 3},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			assert.InDelta(t, tc.want, eval(t, w, tc.src), 1e-9)
		})
	}

	ectx, err := w.EvalContext()
	require.NoError(t, err)
	_, err = expr.MustParse("sqrt(-1)").Eval(ectx)
	assert.Error(t, err)
	assert.True(t, w.HasFunction("smoothstep"))
}

type fixedSource struct {
	name string
	vals []ExprValue
	upd  int
}

func (s *fixedSource) Name() string           { return s.name }
func (s *fixedSource) Update(FrameInput)      { s.upd++ }
func (s *fixedSource) ExecFuncs() []ExprValue { return s.vals }

func TestSources_LastRegisteredWins(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	first := &fixedSource{name: "first", vals: []ExprValue{Float("speed", 1), Float("only_first", 7)}}
	second := &fixedSource{name: "second", vals: []ExprValue{Float("speed", 2)}}

	w := NewSources(first, second).Build(ctx, FrameInput{})
	assert.Equal(t, 2.0, eval(t, w, "speed"))
	assert.Equal(t, 7.0, eval(t, w, "only_first"))
	assert.Equal(t, 1, first.upd)
	assert.Equal(t, 1, second.upd)

	w = NewSources(second, first).Build(ctx, FrameInput{})
	assert.Equal(t, 1.0, eval(t, w, "speed"))
}

func TestSources_DuplicateNamePanics(t *testing.T) {
	s := NewSources(&fixedSource{name: "a"})
	assert.Panics(t, func() { s.Register(&fixedSource{name: "a"}) })
}

func TestTimeSource(t *testing.T) {
	src := NewTimeSource()
	src.Update(FrameInput{Frame: 30, Elapsed: 500 * time.Millisecond, Dt: 20 * time.Millisecond, FPS: 50})
	got := map[string]float64{}
	for _, v := range src.ExecFuncs() {
		got[v.Name] = v.Val.Float()
	}
	assert.Equal(t, map[string]float64{"t": 0.5, "frame": 30, "dt": 0.02, "fps": 50}, got)
}

func TestAppInputSource_KeyEdges(t *testing.T) {
	src := NewAppInputSource("a")
	read := func() (held, pressed bool) {
		for _, v := range src.ExecFuncs() {
			switch v.Name {
			case "key_a":
				held = v.Val.Bool()
			case "key_a_pressed":
				pressed = v.Val.Bool()
			}
		}
		return
	}

	src.Update(FrameInput{Keys: map[string]bool{"a": true}})
	held, pressed := read()
	assert.True(t, held)
	assert.True(t, pressed)

	src.Update(FrameInput{Keys: map[string]bool{"a": true}})
	held, pressed = read()
	assert.True(t, held)
	assert.False(t, pressed, "pressed is only true on the first frame")

	src.Update(FrameInput{})
	held, pressed = read()
	assert.False(t, held)
	assert.False(t, pressed)
}

func TestCustomSource(t *testing.T) {
	src := NewCustomSource()
	assert.Empty(t, src.ExecFuncs())
	src.Set([]ExprValue{Float("speed", 3)})
	assert.Equal(t, []ExprValue{Float("speed", 3)}, src.ExecFuncs())
}
