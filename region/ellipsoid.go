package region

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Ellipsoid is an ellipsoid around a centre block.
type Ellipsoid struct {
	style Style

	centre *cube.Pos
	radii  *mgl64.Vec3
}

// Kind ...
func (*Ellipsoid) Kind() Kind { return KindEllipsoid }

// Style ...
func (e *Ellipsoid) Style() *Style { return &e.style }

// Defined ...
func (e *Ellipsoid) Defined() bool {
	return e.centre != nil && e.radii != nil
}

// SetCentre ...
func (e *Ellipsoid) SetCentre(pos cube.Pos) {
	e.centre = &pos
}

// SetRadii ...
func (e *Ellipsoid) SetRadii(radii mgl64.Vec3) {
	e.radii = &radii
}

// Centre returns the centre block, if set.
func (e *Ellipsoid) Centre() (cube.Pos, bool) {
	if e.centre == nil {
		return cube.Pos{}, false
	}
	return *e.centre, true
}

// Radii returns the radii along each axis, if set.
func (e *Ellipsoid) Radii() (mgl64.Vec3, bool) {
	if e.radii == nil {
		return mgl64.Vec3{}, false
	}
	return *e.radii, true
}
