package idx

import "fmt"

// Var is a named scalar derived from an index, ready to be injected into an
// expression context.
type Var struct {
	Name  string
	Value float64
}

// IndexInRange is item I of a sequence of Total items.
type IndexInRange struct {
	I     uint
	Total uint
}

// New returns the index i of total. It panics when the pair is not a valid
// position, since that can only come from a broken enumeration.
func New(i, total uint) IndexInRange {
	if total == 0 || i >= total {
		panic(fmt.Sprintf("idx: invalid index %d of %d", i, total))
	}
	return IndexInRange{I: i, Total: total}
}

// Enumerate returns every index of a sequence of the given size, in order.
func Enumerate(total uint) []IndexInRange {
	out := make([]IndexInRange, 0, total)
	for i := uint(0); i < total; i++ {
		out = append(out, IndexInRange{I: i, Total: total})
	}
	return out
}

// Pct maps the index into [0, 1] with the first item at 0 and the last at 1.
// A single-item sequence sits at 0.
func (x IndexInRange) Pct() float64 {
	if x.Total <= 1 {
		return 0
	}
	return float64(x.I) / float64(x.Total-1)
}

// HalfStepPct is the center of the item's slot when [0, 1] is split into
// Total equal slots.
func (x IndexInRange) HalfStepPct() float64 {
	if x.Total == 0 {
		return 0
	}
	return (float64(x.I) + 0.5) / float64(x.Total)
}

// Centered is the offset of the index from the middle of the sequence.
func (x IndexInRange) Centered() float64 {
	return float64(x.I) - float64(x.Total-1)/2
}

// ToRange maps Pct into [lo, hi].
func (x IndexInRange) ToRange(lo, hi float64) float64 {
	return lo + (hi-lo)*x.Pct()
}

func (x IndexInRange) IsFirst() bool { return x.I == 0 }
func (x IndexInRange) IsLast() bool  { return x.I+1 == x.Total }
func (x IndexInRange) IsOdd() bool   { return x.I%2 == 1 }

// Prev returns the previous index, or false at the start.
func (x IndexInRange) Prev() (IndexInRange, bool) {
	if x.I == 0 {
		return IndexInRange{}, false
	}
	return IndexInRange{I: x.I - 1, Total: x.Total}, true
}

// Next returns the following index, or false at the end.
func (x IndexInRange) Next() (IndexInRange, bool) {
	return x.Skip(1)
}

// Skip moves forward by n items, or returns false when that runs past the end.
func (x IndexInRange) Skip(n uint) (IndexInRange, bool) {
	if x.I+n >= x.Total {
		return IndexInRange{}, false
	}
	return IndexInRange{I: x.I + n, Total: x.Total}, true
}

// Reverse counts from the other end of the sequence.
func (x IndexInRange) Reverse() IndexInRange {
	return IndexInRange{I: x.Total - 1 - x.I, Total: x.Total}
}

// Vars returns {prefix}_i, {prefix}_total, {prefix}_pct and {prefix}_half.
func (x IndexInRange) Vars(prefix string) []Var {
	return []Var{
		{Name: prefix + "_i", Value: float64(x.I)},
		{Name: prefix + "_total", Value: float64(x.Total)},
		{Name: prefix + "_pct", Value: x.Pct()},
		{Name: prefix + "_half", Value: x.HalfStepPct()},
	}
}

func (x IndexInRange) String() string {
	return fmt.Sprintf("%d/%d", x.I, x.Total)
}
