package scene

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/livegrid/internal/color"
	"github.com/vk/livegrid/internal/config"
	"github.com/vk/livegrid/internal/expr"
	"github.com/vk/livegrid/internal/livecode"
	"github.com/vk/livegrid/internal/world"
)

// Load parses and decodes scene text. The format follows the file extension.
func Load(filename string, src []byte) (*Scene, error) {
	body, err := config.Parse(filename, src)
	if err != nil {
		return nil, err
	}
	return Decode(filename, body)
}

// Decode builds the Control tree. Every problem found is reported in one
// *config.ParseError.
func Decode(filename string, body *config.Body) (*Scene, error) {
	d := &decoder{}
	s := d.scene(body)
	if err := config.DiagError(filename, d.diags); err != nil {
		return nil, err
	}
	return s, nil
}

// staticCtx evaluates settings that must not depend on the world.
var staticCtx = &hcl.EvalContext{Functions: world.Functions()}

type decoder struct {
	diags hcl.Diagnostics
}

func (d *decoder) errorf(rng hcl.Range, summary, format string, args ...any) {
	d.diags = append(d.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  rng.Ptr(),
	})
}

func (d *decoder) check(b *config.Body, attrs, blocks []string) {
	d.diags = append(d.diags, b.CheckKnown(attrs, blocks)...)
}

func (d *decoder) unique(b *config.Body, typ string) *config.Block {
	blk, diags := b.UniqueBlock(typ)
	d.diags = append(d.diags, diags...)
	return blk
}

func (d *decoder) noLabels(blk *config.Block) {
	if len(blk.Labels) > 0 {
		d.errorf(blk.DefRange, "Unexpected label", "A %q block takes no labels.", blk.Type)
	}
}

func (d *decoder) float(b *config.Body, name string, def float64) livecode.Float {
	if a := b.Attr(name); a != nil {
		return livecode.Float{Expr: a.Expr, Default: def}
	}
	return livecode.Const(def)
}

func (d *decoder) int(b *config.Body, name string, def int) livecode.Int {
	return livecode.Int{Expr: exprOf(b, name), Default: def}
}

func (d *decoder) bool(b *config.Body, name string, def bool) livecode.Bool {
	return livecode.Bool{Expr: exprOf(b, name), Default: def}
}

func (d *decoder) lazy(b *config.Body, name string, def float64) livecode.Lazy {
	return livecode.Lazy{Expr: exprOf(b, name), Default: def}
}

func (d *decoder) text(b *config.Body, name, def string) livecode.Text {
	return livecode.Text{Expr: exprOf(b, name), Default: def}
}

func (d *decoder) staticString(b *config.Body, name, def string) string {
	a := b.Attr(name)
	if a == nil {
		return def
	}
	s, err := a.Expr.EvalString(staticCtx)
	if err != nil {
		d.errorf(a.Range, "Invalid value", "%q must be a constant string: %v", name, err)
		return def
	}
	return s
}

func (d *decoder) staticNumber(b *config.Body, name string) (float64, bool) {
	a := b.Attr(name)
	if a == nil {
		return 0, false
	}
	f, err := a.Expr.Eval(staticCtx)
	if err != nil {
		d.errorf(a.Range, "Invalid value", "%q must be a constant number: %v", name, err)
		return 0, false
	}
	return f, true
}

// color reads a hex string attribute or a block of h, s, v and a channels.
func (d *decoder) color(b *config.Body, name string, def color.HSVA) livecode.Color {
	attr := b.Attr(name)
	blk := d.unique(b, name)
	switch {
	case attr != nil && blk != nil:
		d.errorf(blk.DefRange, "Conflicting color", "%q is set both as an argument and as a block.", name)
	case attr != nil:
		s, err := attr.Expr.EvalString(staticCtx)
		if err != nil {
			d.errorf(attr.Range, "Invalid color", "%q must be a hex string or a block: %v", name, err)
			break
		}
		c, err := color.ParseHex(s)
		if err != nil {
			d.errorf(attr.Range, "Invalid color", "%v", err)
			break
		}
		return livecode.ConstColor(c)
	case blk != nil:
		d.noLabels(blk)
		d.check(blk.Body, []string{"h", "s", "v", "a"}, nil)
		return livecode.Color{
			H: d.float(blk.Body, "h", def.H),
			S: d.float(blk.Body, "s", def.S),
			V: d.float(blk.Body, "v", def.V),
			A: d.float(blk.Body, "a", def.A),
		}
	}
	return livecode.ConstColor(def)
}

func (d *decoder) defs(b *config.Body) []world.Def {
	blk := d.unique(b, "defs")
	if blk == nil {
		return nil
	}
	d.noLabels(blk)
	d.diags = append(d.diags, blk.Body.CheckNoBlocks()...)
	var out []world.Def
	for _, a := range blk.Body.OrderedAttributes() {
		if !d.checkNotSelfReferential(a) {
			continue
		}
		out = append(out, world.Def{Name: a.Name, Expr: a.Expr})
	}
	return out
}

func (d *decoder) checkNotSelfReferential(a *config.Attribute) bool {
	for _, v := range a.Expr.Variables() {
		if v == a.Name {
			d.errorf(a.Range, "Self-referential definition", "%q refers to itself.", a.Name)
			return false
		}
	}
	return true
}

func (d *decoder) vars(b *config.Body) []world.ExprValue {
	blk := d.unique(b, "vars")
	if blk == nil {
		return nil
	}
	d.noLabels(blk)
	d.diags = append(d.diags, blk.Body.CheckNoBlocks()...)
	var out []world.ExprValue
	for _, a := range blk.Body.OrderedAttributes() {
		v, err := a.Expr.Value(staticCtx)
		if err == nil {
			var val world.Val
			if val, err = world.ValFromCty(v); err == nil {
				out = append(out, world.ExprValue{Name: a.Name, Val: val})
				continue
			}
		}
		d.errorf(a.Range, "Invalid variable", "%q must be a constant number or bool: %v", a.Name, err)
	}
	return out
}

func (d *decoder) scene(b *config.Body) *Scene {
	attrs := []string{"mode", "transition_frames", "background"}
	d.check(b, attrs, []string{"background", "vars", "defs", "layer"})

	s := &Scene{
		Vars:       d.vars(b),
		Defs:       d.defs(b),
		Background: d.color(b, "background", color.Black),
	}
	if a := b.Attr("mode"); a != nil {
		m, err := livecode.ParseMode(d.staticString(b, "mode", ""))
		if err != nil {
			d.errorf(a.Range, "Invalid mode", "%v", err)
		} else {
			s.Mode = &m
		}
	}
	if f, ok := d.staticNumber(b, "transition_frames"); ok {
		if f < 0 {
			d.errorf(b.Attr("transition_frames").Range, "Invalid value", "transition_frames must not be negative.")
		} else {
			n := int(f)
			s.TransitionFrames = &n
		}
	}
	for _, blk := range b.BlocksOfType("layer") {
		s.Layers = append(s.Layers, d.layer(blk, nil))
	}
	return s
}

// layer decodes one layer. ancestors holds the cell prefixes of the
// enclosing layers, outermost first; a nested layer without a prefix gets
// one numbered by its depth.
func (d *decoder) layer(blk *config.Block, ancestors []string) Layer {
	b := blk.Body
	blocks := []string{"sequencer", "transform", "cell_transform", "style", "defs", "layer"}
	for kind := range shapeParsers {
		blocks = append(blocks, kind)
	}
	d.check(b, []string{"prefix"}, blocks)
	if len(blk.Labels) > 1 {
		d.errorf(blk.DefRange, "Too many labels", "A layer takes at most one label, its name.")
	}

	prefix := d.staticString(b, "prefix", defaultPrefix(len(ancestors)))
	if slices.Contains(ancestors, prefix) {
		rng := blk.DefRange
		if a := b.Attr("prefix"); a != nil {
			rng = a.Range
		}
		d.errorf(rng, "Shadowed prefix", "The prefix %q is already used by an enclosing layer, so its cell variables would be hidden.", prefix)
	}

	l := Layer{
		Name:          blk.Label(),
		Prefix:        prefix,
		Sequencer:     d.sequencer(b),
		Transform:     d.transform(b, "transform"),
		CellTransform: d.transform(b, "cell_transform"),
		Style:         d.style(b),
		Defs:          d.defs(b),
	}
	for _, child := range b.Blocks {
		switch child.Type {
		case "layer":
			l.Layers = append(l.Layers, d.layer(child, append(slices.Clip(ancestors), prefix)))
		default:
			if spec, ok := shapeParsers[child.Type]; ok {
				d.noLabels(child)
				d.check(child.Body, spec.attrs, nil)
				l.Shapes = append(l.Shapes, spec.parse(d, child.Body))
			}
		}
	}
	return l
}

func (d *decoder) sequencer(b *config.Body) *Sequencer {
	blk := d.unique(b, "sequencer")
	if blk == nil {
		return nil
	}
	if len(blk.Labels) != 1 {
		d.errorf(blk.DefRange, "Missing sequencer kind", `A sequencer needs one label: "square", "rect" or "hex".`)
		return nil
	}
	kind := blk.Labels[0]
	switch kind {
	case "square", "hex":
		d.check(blk.Body, []string{"rows", "cols", "size", "alternate"}, nil)
		if kind == "square" && blk.Body.Attr("alternate") != nil {
			d.errorf(blk.Body.Attr("alternate").Range, "Unsupported argument", "Only hex sequencers alternate.")
		}
	case "rect":
		d.check(blk.Body, []string{"rows", "cols", "w", "h"}, nil)
	default:
		d.errorf(blk.DefRange, "Unknown sequencer", "%q is not one of square, rect or hex.", kind)
		return nil
	}
	return &Sequencer{
		Kind:      kind,
		Rows:      d.int(blk.Body, "rows", 1),
		Cols:      d.int(blk.Body, "cols", 1),
		Size:      d.float(blk.Body, "size", 100),
		W:         d.float(blk.Body, "w", 100),
		H:         d.float(blk.Body, "h", 100),
		Alternate: d.bool(blk.Body, "alternate", false),
	}
}

func (d *decoder) transform(b *config.Body, typ string) Transform {
	blk := d.unique(b, typ)
	if blk == nil {
		return identityTransform()
	}
	d.noLabels(blk)
	d.check(blk.Body, []string{"x", "y", "rotate", "scale"}, nil)
	return Transform{
		X:      d.float(blk.Body, "x", 0),
		Y:      d.float(blk.Body, "y", 0),
		Rotate: d.float(blk.Body, "rotate", 0),
		Scale:  d.float(blk.Body, "scale", 1),
	}
}

func (d *decoder) style(b *config.Body) Style {
	blk := d.unique(b, "style")
	if blk == nil {
		return Style{
			Fill:        livecode.ConstColor(color.White),
			Stroke:      livecode.ConstColor(color.HSVA{}),
			StrokeWidth: livecode.Const(1),
		}
	}
	d.noLabels(blk)
	d.check(blk.Body, []string{"fill", "stroke", "stroke_width"}, []string{"fill", "stroke"})
	return Style{
		Fill:        d.color(blk.Body, "fill", color.White),
		Stroke:      d.color(blk.Body, "stroke", color.HSVA{}),
		StrokeWidth: d.float(blk.Body, "stroke_width", 1),
	}
}

func exprOf(b *config.Body, name string) *expr.Node {
	if a := b.Attr(name); a != nil {
		return a.Expr
	}
	return nil
}
