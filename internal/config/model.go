package config

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/livegrid/internal/expr"
)

// Attribute is one `name = expression` pair.
type Attribute struct {
	Name  string
	Expr  *expr.Node
	Range hcl.Range
}

// Block is a nested `type "label" { ... }` body.
type Block struct {
	Type     string
	Labels   []string
	Body     *Body
	DefRange hcl.Range
}

// Label returns the first label, or "".
func (b *Block) Label() string {
	if len(b.Labels) == 0 {
		return ""
	}
	return b.Labels[0]
}

// Body holds attributes by name and blocks in source order.
type Body struct {
	Attributes map[string]*Attribute
	Blocks     []*Block
	Range      hcl.Range
}

func newBody(rng hcl.Range) *Body {
	return &Body{Attributes: map[string]*Attribute{}, Range: rng}
}

// Attr returns the named attribute, or nil.
func (b *Body) Attr(name string) *Attribute {
	if b == nil {
		return nil
	}
	return b.Attributes[name]
}

// OrderedAttributes returns the attributes in source order.
func (b *Body) OrderedAttributes() []*Attribute {
	out := make([]*Attribute, 0, len(b.Attributes))
	for _, a := range b.Attributes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Range.Start, out[j].Range.Start
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Column < pj.Column
	})
	return out
}

// BlocksOfType returns every block of the given type, in source order.
func (b *Body) BlocksOfType(typ string) []*Block {
	if b == nil {
		return nil
	}
	var out []*Block
	for _, blk := range b.Blocks {
		if blk.Type == typ {
			out = append(out, blk)
		}
	}
	return out
}

// UniqueBlock searches for a block of the given type. It returns a
// diagnostic if more than one is found, and nil if none is.
func (b *Body) UniqueBlock(typ string) (*Block, hcl.Diagnostics) {
	var found *Block
	var diags hcl.Diagnostics
	for _, blk := range b.BlocksOfType(typ) {
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"" + typ + "\" block",
				Detail:   "Only one \"" + typ + "\" block is allowed here.",
				Subject:  blk.DefRange.Ptr(),
			})
			continue
		}
		found = blk
	}
	return found, diags
}

// CheckNoBlocks reports every nested block. Bodies that declare free-form
// names, such as vars and defs, accept any attribute.
func (b *Body) CheckNoBlocks() hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, blk := range b.Blocks {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported block type",
			Detail:   "Blocks of type \"" + blk.Type + "\" are not expected here; only arguments are.",
			Subject:  blk.DefRange.Ptr(),
		})
	}
	return diags
}

// CheckKnown reports every attribute or block whose name is not listed.
func (b *Body) CheckKnown(attrs, blocks []string) hcl.Diagnostics {
	known := func(list []string, name string) bool {
		for _, n := range list {
			if n == name {
				return true
			}
		}
		return false
	}

	var diags hcl.Diagnostics
	for _, a := range b.OrderedAttributes() {
		if !known(attrs, a.Name) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported argument",
				Detail:   "An argument named \"" + a.Name + "\" is not expected here.",
				Subject:  a.Range.Ptr(),
			})
		}
	}
	for _, blk := range b.Blocks {
		if !known(blocks, blk.Type) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported block type",
				Detail:   "Blocks of type \"" + blk.Type + "\" are not expected here.",
				Subject:  blk.DefRange.Ptr(),
			})
		}
	}
	return diags
}
