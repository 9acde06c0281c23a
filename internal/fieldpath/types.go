// internal/fieldpath/types.go
package fieldpath

// PathSegment is a single component of a path, e.g. `name[index]`.
type PathSegment struct {
	Name  string
	Index int // -1 indicates no index is present.
}

// NewPathSegment creates a path segment without an index.
func NewPathSegment(name string) PathSegment {
	return PathSegment{Name: name, Index: -1}
}

// NewPathSegmentWithIndex creates a path segment that includes an index.
func NewPathSegmentWithIndex(name string, index int) PathSegment {
	return PathSegment{Name: name, Index: index}
}

// HasIndex returns true if the path segment has an explicit index.
func (ps PathSegment) HasIndex() bool {
	return ps.Index != -1
}

// Address locates one field. The zero value is the root.
type Address struct {
	Path []PathSegment
}

// Root is the empty address.
func Root() Address { return Address{} }

func (a Address) IsRoot() bool { return len(a.Path) == 0 }

// Child returns a new address one level deeper. The receiver is unchanged.
func (a Address) Child(name string) Address {
	return a.push(NewPathSegment(name))
}

// Indexed returns a new address one level deeper with an index.
func (a Address) Indexed(name string, index int) Address {
	return a.push(NewPathSegmentWithIndex(name, index))
}

// At re-indexes the last segment.
func (a Address) At(index int) Address {
	if a.IsRoot() {
		return a
	}
	out := a.clone(0)
	out.Path[len(out.Path)-1].Index = index
	return out
}

func (a Address) push(seg PathSegment) Address {
	out := a.clone(1)
	out.Path = append(out.Path, seg)
	return out
}

func (a Address) clone(extra int) Address {
	path := make([]PathSegment, len(a.Path), len(a.Path)+extra)
	copy(path, a.Path)
	return Address{Path: path}
}
