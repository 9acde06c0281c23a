package world

import (
	"errors"
	"math"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

var errNaN = errors.New("result is not a number")

// Functions returns the function table available to every expression.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"abs":   stdlib.AbsoluteFunc,
		"ceil":  stdlib.CeilFunc,
		"floor": stdlib.FloorFunc,
		"log":   stdlib.LogFunc,
		"max":   stdlib.MaxFunc,
		"min":   stdlib.MinFunc,
		"mod":   stdlib.ModuloFunc,
		"pow":   stdlib.PowFunc,
		"sign":  stdlib.SignumFunc,

		"sin":   unaryFunc(math.Sin),
		"cos":   unaryFunc(math.Cos),
		"tan":   unaryFunc(math.Tan),
		"sqrt":  unaryFunc(math.Sqrt),
		"fract": unaryFunc(func(x float64) float64 { return x - math.Floor(x) }),
		// tri is a triangle wave with period 1 and range [0, 1].
		"tri": unaryFunc(func(x float64) float64 {
			f := x - math.Floor(x)
			return 1 - math.Abs(2*f-1)
		}),

		"clamp": ternaryFunc("x", "lo", "hi", func(x, lo, hi float64) float64 {
			return math.Max(lo, math.Min(hi, x))
		}),
		"lerp": ternaryFunc("a", "b", "pct", func(a, b, pct float64) float64 {
			return a + (b-a)*pct
		}),
		"smoothstep": ternaryFunc("edge0", "edge1", "x", func(e0, e1, x float64) float64 {
			if e0 == e1 {
				if x < e0 {
					return 0
				}
				return 1
			}
			t := math.Max(0, math.Min(1, (x-e0)/(e1-e0)))
			return t * t * (3 - 2*t)
		}),
	}
}

func numberResult(f float64) (cty.Value, error) {
	if math.IsNaN(f) {
		return cty.UnknownVal(cty.Number), errNaN
	}
	return cty.NumberFloatVal(f), nil
}

func unaryFunc(fn func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "x", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			x, _ := args[0].AsBigFloat().Float64()
			return numberResult(fn(x))
		},
	})
}

func ternaryFunc(a, b, c string, fn func(x, y, z float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: a, Type: cty.Number},
			{Name: b, Type: cty.Number},
			{Name: c, Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			x, _ := args[0].AsBigFloat().Float64()
			y, _ := args[1].AsBigFloat().Float64()
			z, _ := args[2].AsBigFloat().Float64()
			return numberResult(fn(x, y, z))
		},
	})
}
