package render

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/wedisplay/game"
	"github.com/oomph-ac/wedisplay/palette"
	"github.com/oomph-ac/wedisplay/region"
	"github.com/oomph-ac/wedisplay/settings"
)

// Polygon tessellates a polygon extruded between its vertical bounds: an outline at every height step,
// a vertical line through each point and a marker around the column of each point.
func Polygon(p *region.Polygon, s settings.Polygon, multi bool) Shape {
	points := p.Points()
	if len(points) == 0 {
		return Shape{}
	}
	var (
		b          builder
		minY, maxY = p.Bounds()
		vertex     = material(p, multi, 2, s.VertexMaterial)
	)
	if len(points) == 1 {
		polygonMarkers(&b, points, minY, maxY, vertex, s.VertexThickness)
		return b.shape
	}

	edge := material(p, multi, 0, s.EdgeMaterial)
	outline := func(y int) {
		ring := make([]mgl64.Vec3, len(points))
		for i, pt := range points {
			ring[i] = pt.Centre(float64(y))
		}
		b.loop(ring, edge, s.EdgeThickness, RoleEdge)
	}
	top := maxY + 1
	step := game.GridStep(float64(maxY-minY+1), s.HeightGridDivision, s.MaxGridSpacing)
	for y := minY; y <= top; y += step {
		outline(y)
	}
	if (top-minY)%step != 0 {
		outline(top)
	}

	for _, pt := range points {
		b.line(pt.Centre(float64(minY)), pt.Centre(float64(top)), s.VerticalMaterial, s.VerticalThickness, RoleVertical)
	}
	polygonMarkers(&b, points, minY, maxY, vertex, s.VertexThickness)
	return b.shape
}

func polygonMarkers(b *builder, points []game.Vec2, minY, maxY int, m palette.Material, thickness float64) {
	for _, pt := range points {
		x, z := float64(pt.X), float64(pt.Z)
		b.marker(cube.Box(x, float64(minY), z, x+1, float64(maxY+1), z+1), m, thickness)
	}
}
