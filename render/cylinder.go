package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/wedisplay/game"
	"github.com/oomph-ac/wedisplay/palette"
	"github.com/oomph-ac/wedisplay/region"
	"github.com/oomph-ac/wedisplay/settings"
)

// centreCubeSize is the size of the marker drawn on the centre block of a cylinder.
const centreCubeSize = 1.03

// Cylinder tessellates a cylinder: horizontal rings stepped over its height, a grid of vertical frames
// across it and a marker on its centre. Cylinders with one or both radii at zero collapse into a flat
// grid or a single marker.
func Cylinder(c *region.Cylinder, s settings.Cylinder, multi bool) Shape {
	centre, ok := c.Centre()
	if !ok {
		return Shape{}
	}
	var (
		b          builder
		circle     = material(c, multi, 0, s.CircleMaterial)
		grid       = material(c, multi, 1, s.GridMaterial)
		centreMat  = material(c, multi, 2, s.CenterMaterial)
		rx, rz     = c.Radii()
		minY, maxY = c.Bounds()
		cy         = centre[1]
		mid        = game.Centre(centre)
		hideGrid   = multi && c.Style().GridHidden
	)

	if rx == 0 && rz == 0 {
		b.cube(mid, centreCubeSize, centreMat, s.CenterThickness)
		return b.shape
	}
	step := game.GridStep(float64(maxY-minY+1), s.HeightGridDivision, s.MaxGridSpacing)
	if rx == 0 || rz == 0 {
		flatCylinder(&b, mid, rx, rz, minY, maxY, step, hideGrid, s, grid)
		b.cube(mid, centreCubeSize, centreMat, s.CenterThickness)
		return b.shape
	}

	bounds := game.SegmentBounds{Min: s.MinCircleSegments, Max: s.MaxCircleSegments, TargetLength: s.TargetSegmentLength, ScaleFactor: s.SqrtScaleFactor}
	ring := func(y int, m palette.Material, thickness float64, role Role) {
		at := mgl64.Vec3{mid[0], float64(y), mid[2]}
		b.loop(ellipse(at, 0, 2, rx, rz, game.CircleSegments(rx, rz, bounds)), m, thickness, role)
	}
	top := maxY + 1
	for y := minY; y <= top; y += step {
		if y == cy || y == cy+1 {
			continue
		}
		ring(y, circle, s.CircleThickness, RoleEdge)
	}
	if (top-minY)%step != 0 && top != cy && top != cy+1 {
		ring(top, circle, s.CircleThickness, RoleEdge)
	}
	for _, y := range [2]int{cy, cy + 1} {
		if y >= minY && y <= top {
			ring(y, s.CenterLineMaterial, s.CenterLineThickness, RoleCentreLine)
		}
	}

	cylinderGrid(&b, mid, rx, rz, float64(minY), float64(top), hideGrid, s, grid)
	b.cube(mid, centreCubeSize, centreMat, s.CenterThickness)
	return b.shape
}

// flatCylinder draws a cylinder with one radius at zero as a vertical rectangle. If hidden is true, only
// the outline and the centre line are drawn.
func flatCylinder(b *builder, mid mgl64.Vec3, rx, rz float64, minY, maxY, step int, hidden bool, s settings.Cylinder, grid palette.Material) {
	// along is the axis the rectangle spans.
	along, r := 2, rz
	if rz == 0 {
		along, r = 0, rx
	}
	at := func(offset, y float64) mgl64.Vec3 {
		p := mgl64.Vec3{mid[0], y, mid[2]}
		p[along] += offset
		return p
	}
	bottom, top := float64(minY), float64(maxY+1)

	b.loop([]mgl64.Vec3{at(-r, bottom), at(r, bottom), at(r, top), at(-r, top)}, grid, s.GridThickness, RoleGrid)
	b.line(at(0, bottom), at(0, top), s.CenterLineMaterial, s.CenterLineThickness, RoleCentreLine)
	if hidden {
		return
	}
	for y := minY; y <= maxY+1; y += step {
		b.line(at(-r, float64(y)), at(r, float64(y)), grid, s.GridThickness, RoleGrid)
	}
	n := int(math.Ceil(r))
	for t := -n; t <= n; t++ {
		if t != 0 {
			b.line(at(float64(t), bottom), at(float64(t), top), grid, s.GridThickness, RoleGrid)
		}
	}
}

// cylinderGrid draws vertical frames across the cylinder, parallel to the Z axis and to the X axis. If
// hidden is true, only the two frames through the centre are drawn.
func cylinderGrid(b *builder, mid mgl64.Vec3, rx, rz, bottom, top float64, hidden bool, s settings.Cylinder, grid palette.Material) {
	// frame draws a rectangle at offset along axis a, spanning half on either side along axis o.
	frame := func(a, o int, offset, half float64, m palette.Material, thickness float64, role Role) {
		at := func(side, y float64) mgl64.Vec3 {
			p := mgl64.Vec3{mid[0], y, mid[2]}
			p[a] += offset
			p[o] += side
			return p
		}
		b.line(at(half, top), at(-half, top), m, thickness, role)
		b.line(at(-half, top), at(-half, bottom), m, thickness, role)
		b.line(at(-half, bottom), at(half, bottom), m, thickness, role)
		b.line(at(half, bottom), at(half, top), m, thickness, role)
	}

	frame(0, 2, 0, rz, s.CenterLineMaterial, s.CenterLineThickness, RoleCentreLine)
	frame(2, 0, 0, rx, s.CenterLineMaterial, s.CenterLineThickness, RoleCentreLine)
	if hidden {
		return
	}
	xStep := game.GridStep(rx, s.RadiusGridDivision, s.MaxGridSpacing)
	for t := -math.Ceil(rx); t <= math.Ceil(rx); t += float64(xStep) {
		ratio := t / rx
		if math.Abs(t) < 0.01 || math.Abs(ratio) > 1 {
			continue
		}
		frame(0, 2, t, rz*math.Cos(math.Asin(ratio)), grid, s.GridThickness, RoleGrid)
	}

	zStep := game.GridStep(rz, s.RadiusGridDivision, s.MaxGridSpacing)
	for t := -math.Ceil(rz); t <= math.Ceil(rz); t += float64(zStep) {
		ratio := t / rz
		if math.Abs(t) < 0.01 || math.Abs(ratio) > 1 {
			continue
		}
		frame(2, 0, t, rx*math.Sin(math.Acos(ratio)), grid, s.GridThickness, RoleGrid)
	}
}
