package render

import (
	"github.com/oomph-ac/wedisplay/palette"
	"github.com/oomph-ac/wedisplay/region"
	"github.com/oomph-ac/wedisplay/settings"
)

// Tessellate returns the geometry of a region. Style overrides sent by the selection tool are only
// applied if multi is true, meaning the region is a named selection. Regions missing data are drawn
// as far as possible.
func Tessellate(r region.Region, s settings.Renderers, multi bool) Shape {
	switch r := r.(type) {
	case *region.Cuboid:
		return Cuboid(r, s.Cuboid, multi)
	case *region.Cylinder:
		return Cylinder(r, s.Cylinder, multi)
	case *region.Ellipsoid:
		return Ellipsoid(r, s.Ellipsoid, multi)
	case *region.Polygon:
		return Polygon(r, s.Polygon, multi)
	case *region.Polyhedron:
		return Polyhedron(r, s.Polyhedron, multi)
	}
	return Shape{}
}

// material returns the style override of r at index, or def if there is none or overrides do not
// apply.
func material(r region.Region, multi bool, index int, def palette.Material) palette.Material {
	if !multi {
		return def
	}
	return r.Style().Material(index, def)
}
