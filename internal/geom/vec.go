package geom

import (
	"fmt"
	"math"

	"github.com/vk/livegrid/internal/lerp"
)

type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2  { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Mul(o Vec2) Vec2       { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Len() float64          { return math.Hypot(v.X, v.Y) }
func (v Vec2) Neg() Vec2             { return Vec2{-v.X, -v.Y} }
func (v Vec2) String() string        { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
func (v Vec2) ToVec3(z float64) Vec3 { return Vec3{v.X, v.Y, z} }
func (v Vec2) Dist(o Vec2) float64   { return v.Sub(o).Len() }

// Polar returns the point at angle a (radians) and distance r from the origin.
func Polar(a, r float64) Vec2 {
	return Vec2{X: math.Cos(a) * r, Y: math.Sin(a) * r}
}

func (v Vec2) Lerpify(o Vec2, pct float64) Vec2 {
	return Vec2{lerp.Float64(v.X, o.X, pct), lerp.Float64(v.Y, o.Y, pct)}
}

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

func (v Vec3) Lerpify(o Vec3, pct float64) Vec3 {
	return Vec3{
		lerp.Float64(v.X, o.X, pct),
		lerp.Float64(v.Y, o.Y, pct),
		lerp.Float64(v.Z, o.Z, pct),
	}
}
