package geom

import "github.com/vk/livegrid/internal/lerp"

// Mat4 is a column-major homogeneous matrix: element (row r, column c) lives
// at index c*4+r.
type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate(v Vec2) Mat4 {
	m := Identity()
	m[12], m[13] = v.X, v.Y
	return m
}

func Scale(v Vec2) Mat4 {
	m := Identity()
	m[0], m[5] = v.X, v.Y
	return m
}

func UniformScale(s float64) Mat4 { return Scale(Vec2{s, s}) }

// RotateZ rotates counter-clockwise by a radians.
func RotateZ(a float64) Mat4 {
	m := Identity()
	s, c := sincos(a)
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

func (m Mat4) at(r, c int) float64 { return m[c*4+r] }

// Mul returns m·o: o is applied first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := range 4 {
		for r := range 4 {
			var sum float64
			for k := range 4 {
				sum += m.at(r, k) * o.at(k, c)
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// Apply transforms a point (w = 1).
func (m Mat4) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[4]*p.Y + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[13],
	}
}

// ApplyVec transforms a direction (w = 0).
func (m Mat4) ApplyVec(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[4]*p.Y,
		Y: m[1]*p.X + m[5]*p.Y,
	}
}

func (m Mat4) Translation() Vec2 { return Vec2{m[12], m[13]} }

// ScaleFactor is the length of the transformed unit x axis.
func (m Mat4) ScaleFactor() float64 { return m.ApplyVec(Vec2{1, 0}).Len() }

func (m Mat4) IsIdentity() bool { return m == Identity() }

func (m Mat4) Lerpify(o Mat4, pct float64) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = lerp.Float64(m[i], o[i], pct)
	}
	return out
}
