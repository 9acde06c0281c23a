package lazy

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/livegrid/internal/expr"
	"github.com/vk/livegrid/internal/idx"
	"github.com/vk/livegrid/internal/world"
)

// ErrUninitialized is returned when a node that was never bound to a world is
// evaluated.
var ErrUninitialized = errors.New("lazy node is not initialized")

type kind uint8

const (
	kindUninitialized kind = iota
	kindNoCtx
	kindBound
)

// Node is a deferred scalar.
type Node struct {
	kind    kind
	literal float64
	expr    *expr.Node
	world   *world.Context
	memo    *evalMemo
}

// evalMemo holds the evaluation context built on first use.
type evalMemo struct {
	once sync.Once
	ectx *hcl.EvalContext
	err  error
}

// Uninitialized returns the unbound zero node.
func Uninitialized() Node { return Node{} }

// NoCtx returns a node that evaluates to f without a context.
func NoCtx(f float64) Node {
	return Node{kind: kindNoCtx, literal: f}
}

// NoCtxBool follows the expression coercion rule for booleans.
func NoCtxBool(b bool) Node {
	if b {
		return NoCtx(1)
	}
	return NoCtx(-1)
}

// Bind captures e together with w.
func Bind(e *expr.Node, w *world.Context) Node {
	if e == nil {
		return Node{}
	}
	if w == nil {
		w = world.Empty()
	}
	return Node{kind: kindBound, expr: e, world: w, memo: &evalMemo{}}
}

func (n Node) IsInitialized() bool { return n.kind != kindUninitialized }
func (n Node) IsBound() bool       { return n.kind == kindBound }

// Expr returns the bound expression, or nil.
func (n Node) Expr() *expr.Node { return n.expr }

// World returns the captured context, or nil.
func (n Node) World() *world.Context { return n.world }

func (n Node) evalContext() (*hcl.EvalContext, error) {
	n.memo.once.Do(func() {
		n.memo.ectx, n.memo.err = n.world.EvalContext()
	})
	return n.memo.ectx, n.memo.err
}

// Eval produces the value.
func (n Node) Eval() (float64, error) {
	switch n.kind {
	case kindNoCtx:
		return n.literal, nil
	case kindBound:
		ectx, err := n.evalContext()
		if err != nil {
			return 0, &expr.EvalError{Source: n.expr.Source(), Range: n.expr.Range(), Cause: err}
		}
		return n.expr.Eval(ectx)
	default:
		return 0, ErrUninitialized
	}
}

// EvalBool produces the value as a flag.
func (n Node) EvalBool() (bool, error) {
	switch n.kind {
	case kindNoCtx:
		return n.literal > 0, nil
	case kindBound:
		ectx, err := n.evalContext()
		if err != nil {
			return false, &expr.EvalError{Source: n.expr.Source(), Range: n.expr.Range(), Cause: err}
		}
		return n.expr.EvalBool(ectx)
	default:
		return false, ErrUninitialized
	}
}

// EvalString produces text. A NoCtx node formats its literal.
func (n Node) EvalString() (string, error) {
	switch n.kind {
	case kindNoCtx:
		return strconv.FormatFloat(n.literal, 'g', -1, 64), nil
	case kindBound:
		ectx, err := n.evalContext()
		if err != nil {
			return "", &expr.EvalError{Source: n.expr.Source(), Range: n.expr.Range(), Cause: err}
		}
		return n.expr.EvalString(ectx)
	default:
		return "", ErrUninitialized
	}
}

// AddExprValues returns a node whose overlay also holds vals.
func (n Node) AddExprValues(vals ...world.ExprValue) Node {
	if n.kind != kindBound || len(vals) == 0 {
		return n
	}
	return Bind(n.expr, n.world.With(vals...))
}

// AddMoreDefs returns a node whose context also evaluates defs.
func (n Node) AddMoreDefs(defs ...world.Def) Node {
	if n.kind != kindBound || len(defs) == 0 {
		return n
	}
	return Bind(n.expr, n.world.WithDefs(defs...))
}

// EvalIdx injects {prefix}_i, {prefix}_total, {prefix}_pct and {prefix}_half
// and evaluates.
func (n Node) EvalIdx(i idx.IndexInRange, prefix string) (float64, error) {
	return n.AddExprValues(world.FromVars(i.Vars(prefix))...).Eval()
}

// EvalIdx2d injects the grid index variables under prefix and evaluates.
func (n Node) EvalIdx2d(i idx.Index2d, prefix string) (float64, error) {
	return n.AddExprValues(world.FromVars(i.Vars(prefix))...).Eval()
}

// Lerpify switches from n to other at the midpoint; expressions do not blend.
func (n Node) Lerpify(other Node, pct float64) Node {
	if pct > 0.5 {
		return other
	}
	return n
}

func (n Node) String() string {
	switch n.kind {
	case kindNoCtx:
		return fmt.Sprint(n.literal)
	case kindBound:
		return n.expr.Source()
	default:
		return "<uninitialized>"
	}
}
