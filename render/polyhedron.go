package render

import (
	"github.com/oomph-ac/wedisplay/game"
	"github.com/oomph-ac/wedisplay/region"
	"github.com/oomph-ac/wedisplay/settings"
)

// Polyhedron tessellates a polyhedron as a marker on every vertex and a line for every distinct edge of
// its faces.
func Polyhedron(p *region.Polyhedron, s settings.Polyhedron, multi bool) Shape {
	if !p.Defined() {
		return Shape{}
	}
	var (
		b       builder
		line    = material(p, multi, 0, s.LineMaterial)
		vertex  = material(p, multi, 2, s.VertexMaterial)
		vertex0 = material(p, multi, 3, s.Vertex0Material)
	)
	for i := 0; i < p.VertexCount(); i++ {
		v, ok := p.Vertex(i)
		if !ok {
			continue
		}
		m := vertex
		if i == 0 {
			m = vertex0
		}
		b.cube(game.Centre(v), s.VertexSize, m, s.VertexThickness)
	}

	type edge struct{ a, b int }
	drawn := make(map[edge]struct{})
	for _, face := range p.Faces() {
		if len(face) < 2 {
			continue
		}
		for i, from := range face {
			to := face[(i+1)%len(face)]
			start, ok1 := p.Vertex(from)
			end, ok2 := p.Vertex(to)
			if !ok1 || !ok2 {
				continue
			}
			key := edge{min(from, to), max(from, to)}
			if _, ok := drawn[key]; ok {
				continue
			}
			drawn[key] = struct{}{}
			b.line(game.Centre(start), game.Centre(end), line, s.LineThickness, RoleEdge)
		}
	}
	return b.shape
}
