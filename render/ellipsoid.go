package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/wedisplay/game"
	"github.com/oomph-ac/wedisplay/palette"
	"github.com/oomph-ac/wedisplay/region"
	"github.com/oomph-ac/wedisplay/settings"
)

// Ellipsoid tessellates an ellipsoid as a marker on its centre and three sets of parallel rings, one
// set slicing it along each axis.
func Ellipsoid(e *region.Ellipsoid, s settings.Ellipsoid, multi bool) Shape {
	if !e.Defined() {
		return Shape{}
	}
	var (
		b         builder
		centre, _ = e.Centre()
		radii, _  = e.Radii()
		mid       = game.Centre(centre)
		line      = material(e, multi, 0, s.LineMaterial)
		centreMat = material(e, multi, 2, s.CenterMaterial)
		bounds    = game.SegmentBounds{Min: s.MinSegments, Max: s.MaxSegments, TargetLength: s.TargetSegmentLength, ScaleFactor: s.SqrtScaleFactor}
	)
	b.cube(mid, s.CenterMarkerSize, centreMat, s.CenterThickness)

	// Each plane is spanned by two axes and stepped along the third.
	for _, p := range [3][3]int{{0, 2, 1}, {1, 2, 0}, {0, 1, 2}} {
		u, v, w := p[0], p[1], p[2]
		step := game.GridStep(radii[w], s.RadiusGridDivision, s.MaxGridSpacing)
		slice := func(offset int, m palette.Material, thickness float64, role Role) {
			ellipsoidRing(&b, mid, radii, u, v, w, offset, bounds, m, thickness, role)
		}
		if radii[w] < 0.5 {
			slice(0, s.CenterLineMaterial, s.CenterLineThickness, RoleCentreLine)
			continue
		}
		n := int(math.Floor(radii[w]))
		for offset := -n; offset < n; offset += step {
			if offset == 0 {
				continue
			}
			slice(offset, line, s.LineThickness, RoleEdge)
		}
		slice(0, s.CenterLineMaterial, s.CenterLineThickness, RoleCentreLine)
	}
	return b.shape
}

// ellipsoidRing draws the cross-section of the ellipsoid in the plane of axes u and v, offset along
// axis w. Nothing is drawn if the offset is outside the ellipsoid.
func ellipsoidRing(b *builder, mid, radii mgl64.Vec3, u, v, w, offset int, bounds game.SegmentBounds, m palette.Material, thickness float64, role Role) {
	scale := 1.0
	if radii[w] >= 0.01 {
		n := float64(offset) / radii[w]
		if math.Abs(n) >= 1 {
			return
		}
		scale = math.Sqrt(1 - n*n)
	}
	ru, rv := radii[u]*scale, radii[v]*scale
	at := mid
	at[w] += float64(offset)
	b.loop(ellipse(at, u, v, ru, rv, game.EllipseSegments(ru, rv, bounds)), m, thickness, role)
}
