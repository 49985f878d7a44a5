package game

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a horizontal block coordinate on the X/Z plane.
type Vec2 struct {
	X, Z int
}

// Add returns the sum of the two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Z: v.Z + o.Z}
}

// Sub returns v minus o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Z: v.Z - o.Z}
}

// Scale multiplies both components by f, truncating the result.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: int(float64(v.X) * f), Z: int(float64(v.Z) * f)}
}

// Distance returns the euclidean distance between two points.
func (v Vec2) Distance(o Vec2) float64 {
	dx, dz := float64(v.X-o.X), float64(v.Z-o.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// Min returns the component-wise minimum.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: min(v.X, o.X), Z: min(v.Z, o.Z)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Z: max(v.Z, o.Z)}
}

// Centre returns the centre of the column at v, offset by half a block on both axes.
func (v Vec2) Centre(y float64) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X) + 0.5, y, float64(v.Z) + 0.5}
}

// PosMin returns the component-wise minimum of two block positions.
func PosMin(a, b cube.Pos) cube.Pos {
	return cube.Pos{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// PosMax returns the component-wise maximum of two block positions.
func PosMax(a, b cube.Pos) cube.Pos {
	return cube.Pos{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// PosScale multiplies each component of the position by f, truncating the result.
func PosScale(p cube.Pos, f float64) cube.Pos {
	return cube.Pos{int(float64(p[0]) * f), int(float64(p[1]) * f), int(float64(p[2]) * f)}
}

// PosDistance returns the euclidean distance between two block positions.
func PosDistance(a, b cube.Pos) float64 {
	return a.Vec3().Sub(b.Vec3()).Len()
}

// Centre returns the centre of the block at p.
func Centre(p cube.Pos) mgl64.Vec3 {
	return p.Vec3().Add(mgl64.Vec3{0.5, 0.5, 0.5})
}

// Vec3Min returns the component-wise minimum of two vectors.
func Vec3Min(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

// Vec3Max returns the component-wise maximum of two vectors.
func Vec3Max(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}
