package world

import (
	"fmt"

	"github.com/vk/livegrid/internal/expr"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ValFromNative converts a decoded payload value (float64, int, bool, numeric
// string) into a Val.
func ValFromNative(v any) (Val, error) {
	if v == nil {
		return Val{}, fmt.Errorf("value is null")
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return Val{}, fmt.Errorf("unable to infer type: %w", err)
	}
	cv, err := gocty.ToCtyValue(v, ty)
	if err != nil {
		return Val{}, err
	}
	return ValFromCty(cv)
}

// ValFromCty converts a cty bool or number-like value.
func ValFromCty(v cty.Value) (Val, error) {
	if !v.IsKnown() || v.IsNull() {
		return Val{}, fmt.Errorf("value is null or unknown")
	}
	if v.Type() == cty.Bool {
		return BoolVal(v.True()), nil
	}
	f, err := expr.ToFloat(v)
	if err != nil {
		return Val{}, err
	}
	return FloatVal(f), nil
}
