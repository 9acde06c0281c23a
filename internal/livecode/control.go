package livecode

import (
	"math"

	"github.com/vk/livegrid/internal/color"
	"github.com/vk/livegrid/internal/expr"
	"github.com/vk/livegrid/internal/geom"
	"github.com/vk/livegrid/internal/lazy"
	"github.com/vk/livegrid/internal/world"
)

// Float is a numeric field. A nil Expr resolves to Default without a world.
type Float struct {
	Expr    *expr.Node
	Default float64
}

// Const is a Float holding only a literal.
func Const(f float64) Float { return Float{Default: f} }

// Bind turns the field into a lazy node over w.
func (f Float) Bind(w *world.Context) lazy.Node {
	if f.Expr == nil {
		return lazy.NoCtx(f.Default)
	}
	return lazy.Bind(f.Expr, w)
}

func (f Float) ToValue(r *Resolver, w *world.Context) float64 {
	return Resolve(r, f.Default, f.Bind(w).Eval)
}

// Int rounds its evaluated value to the nearest integer.
type Int struct {
	Expr    *expr.Node
	Default int
}

func (i Int) Bind(w *world.Context) lazy.Node {
	return Float{Expr: i.Expr, Default: float64(i.Default)}.Bind(w)
}

func (i Int) ToValue(r *Resolver, w *world.Context) int {
	n := i.Bind(w)
	return Resolve(r, i.Default, func() (int, error) {
		f, err := n.Eval()
		if err != nil {
			return 0, err
		}
		return int(math.Round(f)), nil
	})
}

type Bool struct {
	Expr    *expr.Node
	Default bool
}

func (b Bool) Bind(w *world.Context) lazy.Node {
	if b.Expr == nil {
		return lazy.NoCtxBool(b.Default)
	}
	return lazy.Bind(b.Expr, w)
}

func (b Bool) ToValue(r *Resolver, w *world.Context) bool {
	return Resolve(r, b.Default, b.Bind(w).EvalBool)
}

// Text is a string field; templates like "n=${x}" are evaluated.
type Text struct {
	Expr    *expr.Node
	Default string
}

func (t Text) ToValue(r *Resolver, w *world.Context) string {
	if t.Expr == nil {
		return t.Default
	}
	return Resolve(r, t.Default, lazy.Bind(t.Expr, w).EvalString)
}

type Vec2 struct {
	X, Y Float
}

func ConstVec2(x, y float64) Vec2 { return Vec2{X: Const(x), Y: Const(y)} }

func (v Vec2) ToValue(r *Resolver, w *world.Context) geom.Vec2 {
	return geom.Vec2{
		X: v.X.ToValue(r.Field("x"), w),
		Y: v.Y.ToValue(r.Field("y"), w),
	}
}

// Color is an HSVA color with every channel an expression.
type Color struct {
	H, S, V, A Float
}

// ConstColor is a Color holding only literals.
func ConstColor(c color.HSVA) Color {
	return Color{H: Const(c.H), S: Const(c.S), V: Const(c.V), A: Const(c.A)}
}

func (c Color) ToValue(r *Resolver, w *world.Context) color.HSVA {
	return color.New(
		c.H.ToValue(r.Field("h"), w),
		c.S.ToValue(r.Field("s"), w),
		c.V.ToValue(r.Field("v"), w),
		c.A.ToValue(r.Field("a"), w),
	)
}

// Lazy stays unevaluated: its value is the bound node, for consumers that
// evaluate it themselves (e.g. once per curve segment).
type Lazy struct {
	Expr    *expr.Node
	Default float64
}

func (l Lazy) ToValue(_ *Resolver, w *world.Context) lazy.Node {
	return Float(l).Bind(w)
}
