package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/livegrid/internal/expr"
	"gopkg.in/yaml.v3"
)

// ParseYAML reads the YAML front-end.
//
// A mapping key is "type" or "type label...". A mapping value becomes a
// block, and so does a null value. A sequence of mappings becomes one block
// per item, and any other sequence becomes a tuple attribute. Scalars are
// HCL expressions: plain scalars as written, quoted scalars as string
// templates.
func ParseYAML(filename string, src []byte) (*Body, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, &ParseError{Filename: filename, Cause: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return newBody(rangeAt(filename, 1, 1)), nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 || isNull(root) {
		return newBody(rangeAt(filename, 1, 1)), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{
			Filename: filename,
			Cause:    fmt.Errorf("line %d: top level must be a mapping", root.Line),
		}
	}

	d := &yamlDecoder{filename: filename}
	body := d.body(root)
	if d.diags.HasErrors() {
		return nil, &ParseError{Filename: filename, Diags: d.diags}
	}
	return body, nil
}

type yamlDecoder struct {
	filename string
	diags    hcl.Diagnostics
}

func (d *yamlDecoder) rng(n *yaml.Node) hcl.Range {
	return rangeAt(d.filename, n.Line, n.Column)
}

func (d *yamlDecoder) errorf(n *yaml.Node, summary, format string, args ...any) {
	d.diags = append(d.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  d.rng(n).Ptr(),
	})
}

func (d *yamlDecoder) body(n *yaml.Node) *Body {
	out := newBody(d.rng(n))
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], deref(n.Content[i+1])
		fields := strings.Fields(k.Value)
		if len(fields) == 0 {
			d.errorf(k, "Empty key", "Every key needs a name.")
			continue
		}
		typ, labels := fields[0], unquoteLabels(fields[1:])

		switch {
		case v.Kind == yaml.MappingNode || isNull(v):
			out.Blocks = append(out.Blocks, &Block{Type: typ, Labels: labels, Body: d.body(v), DefRange: d.rng(k)})
		case v.Kind == yaml.SequenceNode && isBlockList(v):
			for _, item := range v.Content {
				out.Blocks = append(out.Blocks, &Block{Type: typ, Labels: labels, Body: d.body(deref(item)), DefRange: d.rng(item)})
			}
		default:
			if len(labels) > 0 {
				d.errorf(k, "Unexpected labels", "The argument %q takes no labels.", typ)
				continue
			}
			if _, dup := out.Attributes[typ]; dup {
				d.errorf(k, "Duplicate argument", "The argument %q was already set.", typ)
				continue
			}
			if e := d.value(v); e != nil {
				out.Attributes[typ] = &Attribute{Name: typ, Expr: e, Range: d.rng(k)}
			}
		}
	}
	return out
}

func (d *yamlDecoder) value(n *yaml.Node) *expr.Node {
	src := d.source(n)
	if src == "" {
		return nil
	}
	e, diags := hclsyntax.ParseExpression([]byte(src), d.filename, hcl.Pos{Line: n.Line, Column: n.Column})
	if diags.HasErrors() {
		d.diags = append(d.diags, diags...)
		return nil
	}
	return expr.FromExpression(e, src)
}

// source renders a scalar or a sequence of scalars as HCL expression text.
func (d *yamlDecoder) source(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
			return quoteTemplate(n.Value)
		}
		if n.Value == "" {
			d.errorf(n, "Missing value", "An expression is required.")
		}
		return n.Value
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			s := d.source(deref(item))
			if s == "" {
				return ""
			}
			items = append(items, s)
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		d.errorf(n, "Unsupported value", "Mappings are only allowed as blocks.")
		return ""
	}
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null" && n.Value == ""
}

func isBlockList(n *yaml.Node) bool {
	if len(n.Content) == 0 {
		return false
	}
	for _, item := range n.Content {
		if deref(item).Kind != yaml.MappingNode {
			return false
		}
	}
	return true
}

func unquoteLabels(fields []string) []string {
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.Trim(f, `"'`)
	}
	return out
}

// quoteTemplate wraps s as an HCL string template. Interpolations stay live.
func quoteTemplate(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}
