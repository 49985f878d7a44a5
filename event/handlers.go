package event

import (
	"strconv"
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/oomph-ac/wedisplay/game"
	"github.com/oomph-ac/wedisplay/palette"
	"github.com/oomph-ac/wedisplay/region"
)

func applySelection(c *context) (Outcome, error) {
	key := c.str(0)
	var r region.Region
	if key != clearShape {
		k, err := region.KindByKey(key)
		if err != nil {
			// Shapes added to the tool later are not known to us.
			return OutcomeNone, nil
		}
		r = region.New(k)
		c.sel.Mode = k.Key()
	}

	if !c.f.Multi {
		if c.sel.Main() != nil && r != nil {
			c.target.ClearRender()
		}
		c.sel.SetMain(r)
		if r == nil {
			return OutcomeRemoved, nil
		}
		return OutcomeCreated, nil
	}

	if len(c.f.Params) < 2 {
		if r == nil {
			c.sel.ClearNamed()
			return OutcomeRemoved, nil
		}
		// A new named region without an id cannot be addressed.
		return OutcomeNone, nil
	}
	id, err := uuid.Parse(c.str(1))
	if err != nil {
		return OutcomeNone, nil
	}
	c.sel.SetNamed(id, r)
	if r != nil {
		c.sel.SetCurrent(id)
		return OutcomeCreated, nil
	}
	if cur, _, _ := c.sel.Current(); cur == id {
		c.sel.ClearCurrent()
	}
	return OutcomeRemoved, nil
}

func applyPoint3D(c *context) (Outcome, error) {
	id, err := c.pointIndex(0)
	if err != nil {
		return OutcomeNone, err
	}
	xyz, err := c.floats(1, 3)
	if err != nil {
		return OutcomeNone, err
	}
	// The volume is advisory only.
	volume, _ := strconv.ParseInt(c.str(4), 10, 64)

	if s, ok := c.sel.Selection(c.f.Multi).(region.PointSetter); ok {
		s.SetPoint(id, cube.PosFromVec3(mgl64.Vec3{xyz[0], xyz[1], xyz[2]}), volume)
	}
	return OutcomeMutated, nil
}

func applyPoint2D(c *context) (Outcome, error) {
	id, err := c.pointIndex(0)
	if err != nil {
		return OutcomeNone, err
	}
	v, err := c.ints(1, 2)
	if err != nil {
		return OutcomeNone, err
	}
	var area int64
	if len(c.f.Params) > 3 {
		area, _ = strconv.ParseInt(c.str(3), 10, 64)
	}

	if s, ok := c.sel.Selection(c.f.Multi).(region.Point2DSetter); ok {
		s.SetPoint2D(id, game.Vec2{X: v[0], Z: v[1]}, area)
	}
	return OutcomeMutated, nil
}

func applyEllipsoid(c *context) (Outcome, error) {
	id, err := c.integer(0)
	if err != nil {
		return OutcomeNone, err
	}
	s, _ := c.sel.Selection(c.f.Multi).(region.EllipsoidSetter)
	switch id {
	case 0:
		v, err := c.ints(1, 3)
		if err != nil {
			return OutcomeNone, err
		}
		if s != nil {
			s.SetCentre(cube.Pos{v[0], v[1], v[2]})
		}
	case 1:
		v, err := c.floats(1, 3)
		if err != nil {
			return OutcomeNone, err
		}
		if s != nil {
			s.SetRadii(mgl64.Vec3{v[0], v[1], v[2]})
		}
	}
	return OutcomeMutated, nil
}

func applyCylinder(c *context) (Outcome, error) {
	centre, err := c.ints(0, 3)
	if err != nil {
		return OutcomeNone, err
	}
	radii, err := c.floats(3, 2)
	if err != nil {
		return OutcomeNone, err
	}
	if s, ok := c.sel.Selection(c.f.Multi).(region.CylinderSetter); ok {
		s.SetCylinder(cube.Pos{centre[0], centre[1], centre[2]}, radii[0], radii[1])
	}
	return OutcomeMutated, nil
}

func applyBounds(c *context) (Outcome, error) {
	v, err := c.ints(0, 2)
	if err != nil {
		return OutcomeNone, err
	}
	if s, ok := c.sel.Selection(c.f.Multi).(region.BoundsSetter); ok {
		s.SetBounds(v[0], v[1])
	}
	return OutcomeMutated, nil
}

func applyUpdate(*context) (Outcome, error) {
	return OutcomeMutated, nil
}

func applyPolygon(c *context) (Outcome, error) {
	indices, err := c.ints(0, len(c.f.Params))
	if err != nil {
		return OutcomeNone, err
	}
	if s, ok := c.sel.Selection(c.f.Multi).(region.FaceAdder); ok {
		s.AddFace(indices)
	}
	return OutcomeMutated, nil
}

func applyColour(c *context) (Outcome, error) {
	r := c.sel.Selection(true)
	if r == nil {
		return OutcomeMutated, nil
	}
	style := r.Style()
	for i := range style.Materials {
		style.Materials[i] = colour(c.str(i))
	}
	style.GridHidden = strings.TrimSpace(c.str(2)) == ""
	style.BackgroundHidden = strings.TrimSpace(c.str(3)) == ""
	return OutcomeMutated, nil
}

// colour resolves a colour sent by the tool to the closest material. Empty or malformed colours
// resolve to nil.
func colour(s string) *palette.Material {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	m, err := palette.Resolve(s)
	if err != nil {
		return nil
	}
	return &m
}

func applyGrid(c *context) (Outcome, error) {
	spacing, err := c.double(0)
	if err != nil {
		return OutcomeNone, err
	}
	if spacing > 0 && spacing < region.MinGridSpacing {
		return OutcomeNone, ParseError{Type: c.t, Index: 0, Value: c.str(0), Err: strconv.ErrRange}
	}
	if _, r, ok := c.sel.Current(); ok {
		r.Style().GridSpacing = spacing
	}
	return OutcomeMutated, nil
}
