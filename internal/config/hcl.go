package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/livegrid/internal/expr"
)

// ParseHCL reads native HCL syntax.
func ParseHCL(filename string, src []byte) (*Body, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, &ParseError{Filename: filename, Diags: diags}
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, &ParseError{Filename: filename, Cause: fmt.Errorf("unexpected body type %T", file.Body)}
	}
	return fromSyntax(body, src), nil
}

func fromSyntax(b *hclsyntax.Body, src []byte) *Body {
	out := newBody(b.SrcRange)
	for name, a := range b.Attributes {
		out.Attributes[name] = &Attribute{
			Name:  name,
			Expr:  expr.FromExpression(a.Expr, string(a.Expr.Range().SliceBytes(src))),
			Range: a.SrcRange,
		}
	}
	for _, blk := range b.Blocks {
		out.Blocks = append(out.Blocks, &Block{
			Type:     blk.Type,
			Labels:   blk.Labels,
			Body:     fromSyntax(blk.Body, src),
			DefRange: blk.DefRange(),
		})
	}
	return out
}

// rangeAt is a zero-width range, for positions outside HCL text.
func rangeAt(filename string, line, col int) hcl.Range {
	pos := hcl.Pos{Line: line, Column: col}
	return hcl.Range{Filename: filename, Start: pos, End: pos}
}
