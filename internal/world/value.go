package world

import (
	"fmt"

	"github.com/vk/livegrid/internal/expr"
	"github.com/vk/livegrid/internal/idx"
	"github.com/zclconf/go-cty/cty"
)

// Val is a Float or a Bool.
type Val struct {
	f      float64
	b      bool
	isBool bool
}

func FloatVal(f float64) Val { return Val{f: f} }
func BoolVal(b bool) Val     { return Val{b: b, isBool: true} }

func (v Val) IsBool() bool { return v.isBool }

// Float returns the numeric reading of the value; booleans read as 1 or -1.
func (v Val) Float() float64 {
	if !v.isBool {
		return v.f
	}
	if v.b {
		return 1
	}
	return -1
}

// Bool returns the flag reading of the value; numbers are true when non-zero.
func (v Val) Bool() bool {
	if v.isBool {
		return v.b
	}
	return v.f != 0
}

// Cty converts the value for use in an evaluation context.
func (v Val) Cty() cty.Value {
	if v.isBool {
		return cty.BoolVal(v.b)
	}
	return cty.NumberFloatVal(v.f)
}

func (v Val) String() string {
	if v.isBool {
		return fmt.Sprint(v.b)
	}
	return fmt.Sprint(v.f)
}

// ExprValue is a named value contributed to an evaluation context.
type ExprValue struct {
	Name string
	Val  Val
}

func Float(name string, f float64) ExprValue { return ExprValue{Name: name, Val: FloatVal(f)} }
func Bool(name string, b bool) ExprValue     { return ExprValue{Name: name, Val: BoolVal(b)} }

// FromVars converts index-derived variables.
func FromVars(vars []idx.Var) []ExprValue {
	out := make([]ExprValue, len(vars))
	for i, v := range vars {
		out[i] = Float(v.Name, v.Value)
	}
	return out
}

// Def is a named expression evaluated inside a context, after the values it
// was layered on. Defs see the defs that precede them.
type Def struct {
	Name string
	Expr *expr.Node
}
