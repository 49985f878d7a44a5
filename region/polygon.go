package region

import (
	"github.com/oomph-ac/wedisplay/game"
	"github.com/samber/lo"
)

// Polygon is a polygon on the horizontal plane, extruded over a vertical range. Points are indexed
// and may contain holes until every index is filled.
type Polygon struct {
	style Style

	points     []*game.Vec2
	area       int64
	minY, maxY int
}

// Kind ...
func (*Polygon) Kind() Kind { return KindPolygon }

// Style ...
func (p *Polygon) Style() *Style { return &p.style }

// Defined ...
func (p *Polygon) Defined() bool {
	return lo.ContainsBy(p.points, func(v *game.Vec2) bool { return v != nil })
}

// SetPoint2D sets the point at the index passed, growing the point list with holes if needed.
// Ids that are negative or above MaxPointIndex are ignored.
func (p *Polygon) SetPoint2D(id int, pos game.Vec2, area int64) {
	if id < 0 || id > MaxPointIndex {
		return
	}
	p.points = grow(p.points, id)
	p.points[id] = &pos
	if area > 0 {
		p.area = area
	}
}

// SetBounds ...
func (p *Polygon) SetBounds(minY, maxY int) {
	p.minY, p.maxY = minY, maxY
}

// Points returns the set points in index order, skipping holes.
func (p *Polygon) Points() []game.Vec2 {
	return lo.FilterMap(p.points, func(v *game.Vec2, _ int) (game.Vec2, bool) {
		if v == nil {
			return game.Vec2{}, false
		}
		return *v, true
	})
}

// Len returns the length of the sparse point list, including holes.
func (p *Polygon) Len() int {
	return len(p.points)
}

// Bounds returns the lowest and highest block layer of the polygon.
func (p *Polygon) Bounds() (minY, maxY int) {
	return p.minY, p.maxY
}
