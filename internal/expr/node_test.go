package expr

import (
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func evalCtx(vars map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{Variables: vars}
}

func TestEval_CoercionOrder(t *testing.T) {
	ctx := evalCtx(map[string]cty.Value{
		"x":    cty.NumberFloatVal(1.5),
		"n":    cty.NumberIntVal(3),
		"on":   cty.True,
		"off":  cty.False,
		"text": cty.StringVal("2.25"),
	})

	testCases := []struct {
		src  string
		want float64
	}{
		{"x * 2", 3},
		{"n", 3},
		{"n + 1", 4},
		{"on", 1},
		{"off", -1},
		{"x > 1", 1},
		{"x < 1", -1},
		{"text", 2.25},
		{"n % 2 == 1 ? 10 : 20", 10},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			n, err := Parse(tc.src)
			require.NoError(t, err)
			got, err := n.Eval(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEval_Failures(t *testing.T) {
	ctx := evalCtx(map[string]cty.Value{"name": cty.StringVal("dot")})

	for _, src := range []string{"missing + 1", "name", `"a" + 1`} {
		t.Run(src, func(t *testing.T) {
			n, err := Parse(src)
			require.NoError(t, err)
			_, err = n.Eval(ctx)
			require.Error(t, err)

			var evalErr *EvalError
			require.True(t, errors.As(err, &evalErr), "expected an EvalError, got %T", err)
			assert.Equal(t, src, evalErr.Source)
			assert.Error(t, evalErr.Cause)
		})
	}
}

func TestEval_ReusesParsedNode(t *testing.T) {
	n := MustParse("x * x")
	for i := 1; i <= 3; i++ {
		got, err := n.Eval(evalCtx(map[string]cty.Value{"x": cty.NumberIntVal(int64(i))}))
		require.NoError(t, err)
		assert.Equal(t, float64(i*i), got)
	}
}

func TestParse_InvalidSyntax(t *testing.T) {
	_, err := Parse("1 +")
	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, parseErr.Diags.HasErrors())
}

func TestEvalBoolAndString(t *testing.T) {
	ctx := evalCtx(map[string]cty.Value{"i": cty.NumberIntVal(4)})

	b, err := MustParse("i > 2").EvalBool(ctx)
	require.NoError(t, err)
	assert.True(t, b)

	b, err = MustParse("i - 4").EvalBool(ctx)
	require.NoError(t, err)
	assert.False(t, b)

	s, err := MustParse(`"cell ${i}"`).EvalString(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cell 4", s)
}

func TestLiteralAndNumber(t *testing.T) {
	got, err := Number(2.5).Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	got, err = Literal(cty.True).Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	assert.True(t, Number(1).IsConstant())
	assert.False(t, MustParse("t").IsConstant())
}

func TestVariablesAndFunctions(t *testing.T) {
	n := MustParse("x + x + y")
	assert.Equal(t, []string{"x", "y"}, n.Variables())
	assert.Empty(t, n.Functions())

	n = MustParse("sin(t * 2) + max(cos(t), b, sin(a))")
	assert.Equal(t, []string{"a", "b", "t"}, n.Variables())
	assert.Equal(t, []string{"cos", "max", "sin"}, n.Functions())
}
