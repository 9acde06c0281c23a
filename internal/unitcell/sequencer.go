package unitcell

import (
	"math"

	"github.com/vk/livegrid/internal/geom"
	"github.com/vk/livegrid/internal/idx"
)

// Sequencer generates cell contexts in column-major order.
type Sequencer interface {
	ToUnitCellCtxs() []Context
}

// Square is a cols x rows grid of square cells.
type Square struct {
	Rows, Cols uint
	Size       float64
}

func (s Square) ToUnitCellCtxs() []Context {
	return Rect{Rows: s.Rows, Cols: s.Cols, Size: geom.V2(s.Size, s.Size)}.tiles("square")
}

// Rect is a cols x rows grid of cells with independent width and height.
type Rect struct {
	Rows, Cols uint
	Size       geom.Vec2
}

func (r Rect) ToUnitCellCtxs() []Context { return r.tiles("rect") }

func (r Rect) tiles(kind string) []Context {
	if r.Rows == 0 || r.Cols == 0 {
		return nil
	}
	tile := &Tile{Kind: kind, Size: r.Size}
	out := make([]Context, 0, r.Rows*r.Cols)
	for _, x := range idx.Enumerate(r.Cols) {
		for _, y := range idx.Enumerate(r.Rows) {
			center := geom.V2(x.Centered()*r.Size.X, y.Centered()*r.Size.Y)
			out = append(out, cellAt(idx.Index2d{X: x, Y: y}, center, r.Size, tile))
		}
	}
	return out
}

// Hex is a hex tiling. Columns are size*sin(τ/6) apart and odd columns sit
// half a cell lower. With Alternate set, odd rows are also nudged right by
// half a column.
type Hex struct {
	Rows, Cols uint
	Size       float64
	Alternate  bool
}

func (h Hex) ToUnitCellCtxs() []Context {
	if h.Rows == 0 || h.Cols == 0 {
		return nil
	}
	colStep := h.Size * math.Sin(geom.Tau/6)
	size := geom.V2(h.Size, h.Size)
	tile := &Tile{Kind: "hex", Size: size}

	type placed struct {
		i      idx.Index2d
		center geom.Vec2
	}
	cells := make([]placed, 0, h.Rows*h.Cols)
	lo := geom.V2(math.Inf(1), math.Inf(1))
	hi := geom.V2(math.Inf(-1), math.Inf(-1))
	for _, x := range idx.Enumerate(h.Cols) {
		for _, y := range idx.Enumerate(h.Rows) {
			c := geom.V2(float64(x.I)*colStep, float64(y.I)*h.Size)
			if x.IsOdd() {
				c.Y += h.Size / 2
			}
			if h.Alternate && y.I%2 == 1 {
				c.X += colStep / 2
			}
			lo = geom.V2(math.Min(lo.X, c.X), math.Min(lo.Y, c.Y))
			hi = geom.V2(math.Max(hi.X, c.X), math.Max(hi.Y, c.Y))
			cells = append(cells, placed{i: idx.Index2d{X: x, Y: y}, center: c})
		}
	}

	mid := lo.Add(hi).Scale(0.5)
	out := make([]Context, len(cells))
	for i, p := range cells {
		out[i] = cellAt(p.i, p.center.Sub(mid), size, tile)
	}
	return out
}

func cellAt(i idx.Index2d, center, size geom.Vec2, tile *Tile) Context {
	return Context{
		Idx:       i,
		Transform: geom.Translate(center).Mul(geom.Scale(geom.V2(size.X/ReferenceUnit, size.Y/ReferenceUnit))),
		Tile:      tile,
	}
}

// Single yields the root context only.
type Single struct{}

func (Single) ToUnitCellCtxs() []Context { return []Context{Root()} }
