package expr

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Node is an immutable parsed expression. It is shared, never deep-copied,
// by everything that captures it.
type Node struct {
	expr hcl.Expression
	src  string
}

// ParseError is returned when expression text is not valid syntax.
type ParseError struct {
	Source string
	Diags  hcl.Diagnostics
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid expression %q: %s", e.Source, e.Diags.Error())
}

func (e *ParseError) Unwrap() error { return e.Diags }

// EvalError carries the underlying cause of a failed evaluation and the
// source range of the expression.
type EvalError struct {
	Source string
	Range  hcl.Range
	Cause  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating %q: %v", e.Source, e.Cause)
}

func (e *EvalError) Unwrap() error { return e.Cause }

// Parse parses a single expression.
func Parse(src string) (*Node, error) {
	e, diags := hclsyntax.ParseExpression([]byte(src), "expr", hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return nil, &ParseError{Source: src, Diags: diags}
	}
	return &Node{expr: e, src: src}, nil
}

// MustParse is Parse for expressions known at compile time.
func MustParse(src string) *Node {
	n, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return n
}

// FromExpression wraps an expression that was parsed as part of a larger
// document. src is the text used in error messages.
func FromExpression(e hcl.Expression, src string) *Node {
	if e == nil {
		return nil
	}
	if src == "" {
		src = e.Range().String()
	}
	return &Node{expr: e, src: src}
}

// Literal wraps a constant value.
func Literal(v cty.Value) *Node {
	return &Node{expr: hcl.StaticExpr(v, hcl.Range{}), src: v.GoString()}
}

// Number wraps a constant number.
func Number(f float64) *Node {
	return &Node{expr: hcl.StaticExpr(cty.NumberFloatVal(f), hcl.Range{}), src: fmt.Sprint(f)}
}

// Source is the expression text.
func (n *Node) Source() string { return n.src }

// Expression exposes the underlying HCL expression.
func (n *Node) Expression() hcl.Expression { return n.expr }

// Range is where the expression sits in its source file. Literals built in
// code have an empty range.
func (n *Node) Range() hcl.Range { return n.expr.Range() }

func (n *Node) evalError(cause error) *EvalError {
	return &EvalError{Source: n.src, Range: n.expr.Range(), Cause: cause}
}

// IsConstant reports whether the expression references no variables.
func (n *Node) IsConstant() bool {
	return len(n.expr.Variables()) == 0
}

// Value evaluates the expression without any coercion.
func (n *Node) Value(ectx *hcl.EvalContext) (cty.Value, error) {
	val, diags := n.expr.Value(ectx)
	if diags.HasErrors() {
		return cty.NilVal, n.evalError(diags)
	}
	if !val.IsKnown() || val.IsNull() {
		return cty.NilVal, n.evalError(errors.New("expression produced no value"))
	}
	return val, nil
}

// Eval evaluates the expression as a float. Numbers (integer or not) are
// returned as-is, booleans become 1.0 or -1.0, and strings are accepted when
// they convert to a number.
func (n *Node) Eval(ectx *hcl.EvalContext) (float64, error) {
	val, err := n.Value(ectx)
	if err != nil {
		return 0, err
	}
	f, err := ToFloat(val)
	if err != nil {
		return 0, n.evalError(err)
	}
	return f, nil
}

// EvalBool evaluates the expression as a flag. Numbers are true when non-zero.
func (n *Node) EvalBool(ectx *hcl.EvalContext) (bool, error) {
	val, err := n.Value(ectx)
	if err != nil {
		return false, err
	}
	if val.Type() == cty.Bool {
		return val.True(), nil
	}
	f, err := ToFloat(val)
	if err != nil {
		return false, n.evalError(err)
	}
	return f != 0, nil
}

// EvalString evaluates the expression as text.
func (n *Node) EvalString(ectx *hcl.EvalContext) (string, error) {
	val, err := n.Value(ectx)
	if err != nil {
		return "", err
	}
	s, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", n.evalError(err)
	}
	return s.AsString(), nil
}

// ToFloat applies the number, then bool, then numeric-string coercion order.
func ToFloat(val cty.Value) (float64, error) {
	switch val.Type() {
	case cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case cty.Bool:
		if val.True() {
			return 1, nil
		}
		return -1, nil
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("expected a number or bool, got %s", val.Type().FriendlyName())
	}
	f, _ := num.AsBigFloat().Float64()
	return f, nil
}

func (n *Node) String() string { return n.src }
