package region

import "github.com/df-mc/dragonfly/server/block/cube"

// Cylinder is an elliptic cylinder around a centre block, spanning a vertical range.
type Cylinder struct {
	style Style

	centre           *cube.Pos
	radiusX, radiusZ float64
	minY, maxY       int
}

// Kind ...
func (*Cylinder) Kind() Kind { return KindCylinder }

// Style ...
func (c *Cylinder) Style() *Style { return &c.style }

// Defined ...
func (c *Cylinder) Defined() bool {
	return c.centre != nil && c.radiusX > 0 && c.radiusZ > 0
}

// SetCylinder sets the centre and both radii at once.
func (c *Cylinder) SetCylinder(centre cube.Pos, radiusX, radiusZ float64) {
	c.centre, c.radiusX, c.radiusZ = &centre, radiusX, radiusZ
}

// SetBounds ...
func (c *Cylinder) SetBounds(minY, maxY int) {
	c.minY, c.maxY = minY, maxY
}

// Centre returns the centre block, if set.
func (c *Cylinder) Centre() (cube.Pos, bool) {
	if c.centre == nil {
		return cube.Pos{}, false
	}
	return *c.centre, true
}

// Radii returns the radius along the X and Z axes.
func (c *Cylinder) Radii() (x, z float64) {
	return c.radiusX, c.radiusZ
}

// Bounds returns the lowest and highest block layer of the cylinder.
func (c *Cylinder) Bounds() (minY, maxY int) {
	return c.minY, c.maxY
}
