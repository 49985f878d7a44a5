// Package render turns regions into line geometry and keeps track of what is shown to a viewer.
package render

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/wedisplay/palette"
)

// Role is the part of a shape a line belongs to.
type Role uint8

const (
	// RoleEdge is an outline of the shape: box edges, rings and polygon outlines.
	RoleEdge Role = iota
	// RoleGrid is a grid line drawn across a face of the shape.
	RoleGrid
	// RoleCentreLine is a line marking the centre of the shape.
	RoleCentreLine
	// RoleVertical is a vertical line through a polygon vertex.
	RoleVertical
)

// Line is a straight segment drawn between two points.
type Line struct {
	Start, End mgl64.Vec3
	Material   palette.Material
	Thickness  float64
	Role       Role
}

// Length returns the distance between the two ends of the line.
func (l Line) Length() float64 {
	return l.End.Sub(l.Start).Len()
}

// Mid returns the midpoint of the line.
func (l Line) Mid() mgl64.Vec3 {
	return l.Start.Add(l.End).Mul(0.5)
}

// Marker is a wireframe box marking a point of a shape.
type Marker struct {
	Box       cube.BBox
	Material  palette.Material
	Thickness float64
}

// Centre returns the centre of the marker.
func (m Marker) Centre() mgl64.Vec3 {
	return m.Box.Min().Add(m.Box.Max()).Mul(0.5)
}

// Size returns the extents of the marker.
func (m Marker) Size() mgl64.Vec3 {
	return m.Box.Max().Sub(m.Box.Min())
}

// Edges returns the twelve edges of the marker.
func (m Marker) Edges() []Line {
	return boxEdges(m.Box, m.Material, m.Thickness, RoleEdge)
}

// Shape is the geometry of a single region.
type Shape struct {
	Lines   []Line
	Markers []Marker
}

// Empty returns true if the shape has nothing to draw.
func (s Shape) Empty() bool {
	return len(s.Lines) == 0 && len(s.Markers) == 0
}

// AllLines returns the lines of the shape followed by the edges of every marker.
func (s Shape) AllLines() []Line {
	lines := make([]Line, 0, len(s.Lines)+len(s.Markers)*12)
	lines = append(lines, s.Lines...)
	for _, m := range s.Markers {
		lines = append(lines, m.Edges()...)
	}
	return lines
}

// builder accumulates the geometry of a shape.
type builder struct {
	shape Shape
}

func (b *builder) line(start, end mgl64.Vec3, m palette.Material, thickness float64, role Role) {
	b.shape.Lines = append(b.shape.Lines, Line{Start: start, End: end, Material: m, Thickness: thickness, Role: role})
}

// frame adds the twelve edges of a box as lines.
func (b *builder) frame(box cube.BBox, m palette.Material, thickness float64, role Role) {
	b.shape.Lines = append(b.shape.Lines, boxEdges(box, m, thickness, role)...)
}

func (b *builder) marker(box cube.BBox, m palette.Material, thickness float64) {
	b.shape.Markers = append(b.shape.Markers, Marker{Box: box, Material: m, Thickness: thickness})
}

// cube adds a marker of the size passed centred on centre.
func (b *builder) cube(centre mgl64.Vec3, size float64, m palette.Material, thickness float64) {
	half := size / 2
	b.marker(cube.Box(centre[0]-half, centre[1]-half, centre[2]-half, centre[0]+half, centre[1]+half, centre[2]+half), m, thickness)
}

// loop connects every point to the next, wrapping back to the first.
func (b *builder) loop(points []mgl64.Vec3, m palette.Material, thickness float64, role Role) {
	for i := range points {
		b.line(points[i], points[(i+1)%len(points)], m, thickness, role)
	}
}

// pointPadding is how far a point marker extends past the block it marks.
const pointPadding = 0.03

// pointBox returns the box of a marker enclosing the block at pos.
func pointBox(pos cube.Pos) cube.BBox {
	v := pos.Vec3()
	return cube.Box(
		v[0]-pointPadding, v[1]-pointPadding, v[2]-pointPadding,
		v[0]+1+pointPadding, v[1]+1+pointPadding, v[2]+1+pointPadding,
	)
}

func boxEdges(box cube.BBox, m palette.Material, thickness float64, role Role) []Line {
	lo, hi := box.Min(), box.Max()
	v := func(x, y, z bool) mgl64.Vec3 {
		p := lo
		if x {
			p[0] = hi[0]
		}
		if y {
			p[1] = hi[1]
		}
		if z {
			p[2] = hi[2]
		}
		return p
	}
	pairs := [12][2]mgl64.Vec3{
		{v(false, false, false), v(false, false, true)},
		{v(false, false, false), v(true, false, false)},
		{v(false, false, true), v(true, false, true)},
		{v(true, false, false), v(true, false, true)},
		{v(false, true, false), v(false, true, true)},
		{v(false, true, false), v(true, true, false)},
		{v(false, true, true), v(true, true, true)},
		{v(true, true, false), v(true, true, true)},
		{v(false, false, false), v(false, true, false)},
		{v(false, false, true), v(false, true, true)},
		{v(true, false, false), v(true, true, false)},
		{v(true, false, true), v(true, true, true)},
	}
	lines := make([]Line, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, Line{Start: p[0], End: p[1], Material: m, Thickness: thickness, Role: role})
	}
	return lines
}

// ellipse returns segments points on an ellipse around centre. The two radii are along the axes a and
// b, given as indices into a vector.
func ellipse(centre mgl64.Vec3, a, b int, ra, rb float64, segments int) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, segments)
	for i := range points {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		p := centre
		p[a] += ra * math.Cos(angle)
		p[b] += rb * math.Sin(angle)
		points[i] = p
	}
	return points
}
