package render

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/wedisplay/game"
	"github.com/oomph-ac/wedisplay/palette"
	"github.com/oomph-ac/wedisplay/region"
	"github.com/oomph-ac/wedisplay/settings"
)

const (
	// minGridSpacing is the smallest distance between two grid lines of a cuboid.
	minGridSpacing = region.MinGridSpacing
	// gridSkip is the distance from the far edge under which a grid line is not drawn, since the edge
	// itself is already drawn there.
	gridSkip = 0.25
	// maxGridLines is the most grid lines drawn across a single axis of a face.
	maxGridLines = 256
)

// Cuboid tessellates a cuboid: a marker on each point that is set and, once both are set, the frame of
// the box with a grid on each of its faces.
func Cuboid(c *region.Cuboid, s settings.Cuboid, multi bool) Shape {
	var (
		b        builder
		edge     = material(c, multi, 0, s.EdgeMaterial)
		grid     = material(c, multi, 1, s.GridMaterial)
		point1   = material(c, multi, 2, s.Point1Material)
		point2   = material(c, multi, 3, s.Point2Material)
		p1, set1 = c.Point(0)
		p2, set2 = c.Point(1)
	)
	if set1 {
		b.marker(pointBox(p1), point1, s.EdgeThickness)
	}
	if set2 {
		b.marker(pointBox(p2), point2, s.EdgeThickness)
	}

	bounds, ok := c.Bounds()
	if !ok {
		return b.shape
	}
	box := bounds.Expand().BBox()
	b.frame(box, edge, s.EdgeThickness, RoleEdge)
	if multi && c.Style().GridHidden {
		return b.shape
	}
	cuboidGrid(&b, box, c.Style().GridSpacing, s, grid)
	return b.shape
}

func cuboidGrid(b *builder, box cube.BBox, spacing float64, s settings.Cuboid, m palette.Material) {
	size := box.Max().Sub(box.Min())
	if size[0] < minGridSpacing && size[1] < minGridSpacing && size[2] < minGridSpacing {
		return
	}
	var step mgl64.Vec3
	for i := range step {
		if spacing > 0 {
			step[i] = max(spacing, minGridSpacing, size[i]/maxGridLines)
		} else {
			step[i] = float64(game.GridStep(size[i], s.HeightGridDivision, s.MaxGridSpacing))
		}
	}

	lo, hi := box.Min(), box.Max()
	// Each face is spanned by two axes and sits at the minimum or maximum of the third.
	for _, face := range [3][3]int{{0, 2, 1}, {0, 1, 2}, {1, 2, 0}} {
		u, v, w := face[0], face[1], face[2]
		for _, at := range [2]float64{lo[w], hi[w]} {
			plane(b, lo, hi, u, v, w, at, step, s.GridThickness, m)
			plane(b, lo, hi, v, u, w, at, step, s.GridThickness, m)
		}
	}
}

// plane draws lines along axis u, spaced along axis v, on the plane where axis w equals at.
func plane(b *builder, lo, hi mgl64.Vec3, u, v, w int, at float64, step mgl64.Vec3, thickness float64, m palette.Material) {
	for pos := lo[v]; pos <= hi[v]; pos += step[v] {
		if pos > lo[v] && hi[v]-pos < gridSkip {
			continue
		}
		var start, end mgl64.Vec3
		start[u], end[u] = lo[u], hi[u]
		start[v], end[v] = pos, pos
		start[w], end[w] = at, at
		b.line(start, end, m, thickness, RoleGrid)
	}
}
