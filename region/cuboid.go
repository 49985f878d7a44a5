package region

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/wedisplay/game"
)

// Cuboid is a box between two corners.
type Cuboid struct {
	style  Style
	points [2]*cube.Pos
	volume int64
}

// Kind ...
func (*Cuboid) Kind() Kind { return KindCuboid }

// Style ...
func (c *Cuboid) Style() *Style { return &c.style }

// Defined ...
func (c *Cuboid) Defined() bool {
	return c.points[0] != nil && c.points[1] != nil
}

// SetPoint sets the first (id 0) or second (id 1) corner. Other ids are ignored.
func (c *Cuboid) SetPoint(id int, pos cube.Pos, volume int64) {
	if id < 0 || id > 1 {
		return
	}
	c.points[id] = &pos
	if volume > 0 {
		c.volume = volume
	}
}

// Point returns the corner with the id passed, if set.
func (c *Cuboid) Point(id int) (cube.Pos, bool) {
	if id < 0 || id > 1 || c.points[id] == nil {
		return cube.Pos{}, false
	}
	return *c.points[id], true
}

// Volume returns the last volume hint sent with a corner, or 0 if none was sent.
func (c *Cuboid) Volume() int64 {
	return c.volume
}

// Bounds returns the bounds spanned by both corners. False is returned if the cuboid is not defined.
func (c *Cuboid) Bounds() (game.Bounds, bool) {
	if !c.Defined() {
		return game.Bounds{}, false
	}
	return game.BoundsOf(*c.points[0], *c.points[1]), true
}
