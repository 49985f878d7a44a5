package region

import (
	"slices"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/samber/lo"
)

// Polyhedron is a set of vertices connected by faces, where each face lists the indices of its
// vertices in order.
type Polyhedron struct {
	style Style

	vertices []*cube.Pos
	faces    [][]int
}

// Kind ...
func (*Polyhedron) Kind() Kind { return KindPolyhedron }

// Style ...
func (p *Polyhedron) Style() *Style { return &p.style }

// Defined ...
func (p *Polyhedron) Defined() bool {
	return lo.ContainsBy(p.vertices, func(v *cube.Pos) bool { return v != nil })
}

// SetPoint sets the vertex at the index passed, growing the vertex list with holes if needed.
// Ids that are negative or above MaxPointIndex are ignored.
func (p *Polyhedron) SetPoint(id int, pos cube.Pos, _ int64) {
	if id < 0 || id > MaxPointIndex {
		return
	}
	p.vertices = grow(p.vertices, id)
	p.vertices[id] = &pos
}

// AddFace adds a face made up of the vertex indices passed.
func (p *Polyhedron) AddFace(indices []int) {
	p.faces = append(p.faces, slices.Clone(indices))
}

// Vertex returns the vertex at the index passed. False is returned if the index is out of range or
// the vertex was never set.
func (p *Polyhedron) Vertex(i int) (cube.Pos, bool) {
	if i < 0 || i >= len(p.vertices) || p.vertices[i] == nil {
		return cube.Pos{}, false
	}
	return *p.vertices[i], true
}

// VertexCount returns the length of the sparse vertex list, including holes.
func (p *Polyhedron) VertexCount() int {
	return len(p.vertices)
}

// Faces returns the faces of the polyhedron.
func (p *Polyhedron) Faces() [][]int {
	return p.faces
}
