package world

import (
	"maps"
	"sort"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Context is a shared base namespace plus a local overlay scoped to one
// evaluation. It is never mutated after construction.
type Context struct {
	base    *hcl.EvalContext
	overlay map[string]cty.Value
	defs    []Def
	memo    *evalMemo
}

type evalMemo struct {
	once sync.Once
	ectx *hcl.EvalContext
	err  error
}

// NewContext creates a base context over vars with the built-in functions.
func NewContext(vars map[string]cty.Value) *Context {
	if vars == nil {
		vars = map[string]cty.Value{}
	}
	return &Context{
		base: &hcl.EvalContext{
			Variables: vars,
			Functions: Functions(),
		},
		memo: &evalMemo{},
	}
}

// Empty is a context with no variables, only the function table.
func Empty() *Context {
	return NewContext(nil)
}

// With returns a context whose overlay also holds vals. Later values replace
// earlier ones of the same name.
func (c *Context) With(vals ...ExprValue) *Context {
	if len(vals) == 0 {
		return c
	}
	overlay := make(map[string]cty.Value, len(c.overlay)+len(vals))
	maps.Copy(overlay, c.overlay)
	for _, v := range vals {
		overlay[v.Name] = v.Val.Cty()
	}
	return &Context{base: c.base, overlay: overlay, defs: c.defs, memo: &evalMemo{}}
}

// WithDefs returns a context that evaluates defs, in order, on top of the
// overlay. A def that fails to evaluate, for instance because it uses a cell
// variable outside any cell, is left undefined.
func (c *Context) WithDefs(defs ...Def) *Context {
	if len(defs) == 0 {
		return c
	}
	all := make([]Def, 0, len(c.defs)+len(defs))
	all = append(all, c.defs...)
	all = append(all, defs...)
	return &Context{base: c.base, overlay: c.overlay, defs: all, memo: &evalMemo{}}
}

// EvalContext returns the hcl.EvalContext for evaluations in this context.
// It is built once, on first use. The overlay is a child of the shared base,
// so the base is never copied.
func (c *Context) EvalContext() (*hcl.EvalContext, error) {
	if c.memo == nil {
		return c.build()
	}
	c.memo.once.Do(func() {
		c.memo.ectx, c.memo.err = c.build()
	})
	return c.memo.ectx, c.memo.err
}

func (c *Context) build() (*hcl.EvalContext, error) {
	if len(c.overlay) == 0 && len(c.defs) == 0 {
		return c.base, nil
	}
	child := c.base.NewChild()
	child.Variables = make(map[string]cty.Value, len(c.overlay)+len(c.defs))
	maps.Copy(child.Variables, c.overlay)

	for _, d := range c.defs {
		if d.Expr == nil {
			continue
		}
		v, err := d.Expr.Value(child)
		if err != nil {
			continue
		}
		child.Variables[d.Name] = v
	}
	return child, nil
}

// Lookup finds a value by name, overlay first. Defs are not evaluated.
func (c *Context) Lookup(name string) (cty.Value, bool) {
	if v, ok := c.overlay[name]; ok {
		return v, true
	}
	v, ok := c.base.Variables[name]
	return v, ok
}

// Names lists every variable name visible in the context, defs included.
func (c *Context) Names() []string {
	seen := make(map[string]struct{}, len(c.base.Variables)+len(c.overlay)+len(c.defs))
	for k := range c.base.Variables {
		seen[k] = struct{}{}
	}
	for k := range c.overlay {
		seen[k] = struct{}{}
	}
	for _, d := range c.defs {
		seen[d.Name] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// HasFunction reports whether the function table defines name.
func (c *Context) HasFunction(name string) bool {
	_, ok := c.base.Functions[name]
	return ok
}
