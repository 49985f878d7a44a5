// Package region holds the geometric definition of a selection as it is built up by the selection
// tool, one shape kind at a time.
package region

import (
	"errors"
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/wedisplay/game"
	"github.com/oomph-ac/wedisplay/palette"
)

// Kind is the shape of a region.
type Kind uint8

const (
	KindCuboid Kind = iota
	KindCylinder
	KindEllipsoid
	KindPolygon
	KindPolyhedron
)

const (
	// MaxPointIndex is the highest point index a polygon or polyhedron accepts.
	MaxPointIndex = 1 << 16
	// MinGridSpacing is the smallest explicit distance between two grid lines.
	MinGridSpacing = 1.0
)

// ErrUnknownShape is returned when a shape key does not name any region kind.
var ErrUnknownShape = errors.New("unknown shape")

var kindKeys = map[string]Kind{
	"cuboid":     KindCuboid,
	"extend":     KindCuboid,
	"cylinder":   KindCylinder,
	"cyl":        KindCylinder,
	"ellipsoid":  KindEllipsoid,
	"sphere":     KindEllipsoid,
	"polygon2d":  KindPolygon,
	"poly":       KindPolygon,
	"polyhedron": KindPolyhedron,
	"polyhedral": KindPolyhedron,
	"convex":     KindPolyhedron,
	"hull":       KindPolyhedron,
}

// KindByKey returns the kind named by a protocol shape key.
func KindByKey(key string) (Kind, error) {
	k, ok := kindKeys[strings.ToLower(key)]
	if !ok {
		return 0, ErrUnknownShape
	}
	return k, nil
}

// Key returns the protocol key of the kind.
func (k Kind) Key() string {
	switch k {
	case KindCuboid:
		return "cuboid"
	case KindCylinder:
		return "cylinder"
	case KindEllipsoid:
		return "ellipsoid"
	case KindPolygon:
		return "polygon2d"
	case KindPolyhedron:
		return "polyhedron"
	}
	return "unknown"
}

// String ...
func (k Kind) String() string {
	return k.Key()
}

// Region is the accumulated definition of one selection.
type Region interface {
	// Kind returns the shape of the region.
	Kind() Kind
	// Defined returns true if enough data is present to render the full shape.
	Defined() bool
	// Style returns the style overrides of the region.
	Style() *Style
}

// Style holds the per-region visual overrides sent by the selection tool.
type Style struct {
	// Materials holds the primary, secondary, grid and background overrides in that order. A nil
	// entry means the default material is used.
	Materials [4]*palette.Material
	// GridSpacing is the distance between grid lines. Values of zero or less mean the spacing is
	// derived from the size of the region.
	GridSpacing float64
	// GridHidden and BackgroundHidden are set when the tool sent an empty grid or background colour.
	GridHidden, BackgroundHidden bool
}

// Material returns the override at the index passed, or def if none is set.
func (s *Style) Material(index int, def palette.Material) palette.Material {
	if index < 0 || index >= len(s.Materials) || s.Materials[index] == nil {
		return def
	}
	return *s.Materials[index]
}

// PointSetter is implemented by regions defined by indexed 3D points.
type PointSetter interface {
	SetPoint(id int, pos cube.Pos, volume int64)
}

// Point2DSetter is implemented by regions defined by indexed points on the horizontal plane.
type Point2DSetter interface {
	SetPoint2D(id int, pos game.Vec2, area int64)
}

// EllipsoidSetter is implemented by regions defined by a centre and three radii.
type EllipsoidSetter interface {
	SetCentre(pos cube.Pos)
	SetRadii(radii mgl64.Vec3)
}

// CylinderSetter is implemented by regions defined by a centre and two horizontal radii.
type CylinderSetter interface {
	SetCylinder(centre cube.Pos, radiusX, radiusZ float64)
}

// BoundsSetter is implemented by regions with a vertical extent.
type BoundsSetter interface {
	SetBounds(minY, maxY int)
}

// FaceAdder is implemented by regions built from faces of vertex indices.
type FaceAdder interface {
	AddFace(indices []int)
}

// New creates an empty region of the kind passed.
func New(k Kind) Region {
	switch k {
	case KindCuboid:
		return &Cuboid{}
	case KindCylinder:
		return &Cylinder{}
	case KindEllipsoid:
		return &Ellipsoid{}
	case KindPolygon:
		return &Polygon{}
	case KindPolyhedron:
		return &Polyhedron{}
	}
	return nil
}

// grow extends a sparse slice so that index i is addressable.
func grow[T any](s []*T, i int) []*T {
	for len(s) <= i {
		s = append(s, nil)
	}
	return s
}
