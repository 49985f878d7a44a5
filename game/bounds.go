package game

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is the axis-aligned box spanned by two block positions. It is derived on demand and never
// stored by a region.
type Bounds struct {
	box cube.BBox
}

// BoundsOf returns the bounds spanned by a and b, regardless of their order.
func BoundsOf(a, b cube.Pos) Bounds {
	lo, hi := PosMin(a, b), PosMax(a, b)
	return Bounds{box: cube.Box(
		float64(lo[0]), float64(lo[1]), float64(lo[2]),
		float64(hi[0]), float64(hi[1]), float64(hi[2]),
	)}
}

// Min returns the minimum corner.
func (b Bounds) Min() mgl64.Vec3 { return b.box.Min() }

// Max returns the maximum corner.
func (b Bounds) Max() mgl64.Vec3 { return b.box.Max() }

// Width returns the extent along the X axis.
func (b Bounds) Width() float64 { return b.box.Width() }

// Height returns the extent along the Y axis.
func (b Bounds) Height() float64 { return b.box.Height() }

// Length returns the extent along the Z axis.
func (b Bounds) Length() float64 { return b.box.Length() }

// Centre returns the midpoint of the two corners.
func (b Bounds) Centre() mgl64.Vec3 {
	return b.box.Min().Add(b.box.Max()).Mul(0.5)
}

// Volume returns the product of the three extents.
func (b Bounds) Volume() float64 {
	return b.Width() * b.Height() * b.Length()
}

// Expand returns the bounds with the maximum corner advanced by one block on each axis, so that the
// box encloses every block between the two corners.
func (b Bounds) Expand() Bounds {
	lo, hi := b.box.Min(), b.box.Max()
	return Bounds{box: cube.Box(lo[0], lo[1], lo[2], hi[0]+1, hi[1]+1, hi[2]+1)}
}

// BBox returns the underlying bounding box.
func (b Bounds) BBox() cube.BBox { return b.box }
