package event

import (
	"errors"
	"strings"
)

// ErrMultiOnly is matched by errors returned for events that are only valid in multi mode.
var ErrMultiOnly = errors.New("event is only valid for multi selections")

// Outcome describes what applying an event did.
type Outcome uint8

const (
	// OutcomeNone means the event did not change anything.
	OutcomeNone Outcome = iota
	// OutcomeMutated means the event changed the data of a region, or had no region to change.
	OutcomeMutated
	// OutcomeCreated means the event started a new region.
	OutcomeCreated
	// OutcomeRemoved means the event removed one or more regions.
	OutcomeRemoved
)

// Type is a kind of event the selection tool may send.
type Type struct {
	// Name is a readable name of the event.
	Name string
	// Key is the protocol key of the event.
	Key string
	// Min and Max are the bounds of the parameter count accepted.
	Min, Max int
	// MultiOnly is true if the event is rejected in single mode.
	MultiOnly bool
	// Refresh returns true if the selections should be rendered again after an event of this type was
	// applied with the outcome passed.
	Refresh func(Outcome) bool

	apply func(c *context) (Outcome, error)
}

// Accepts checks if n parameters are in range for the type.
func (t *Type) Accepts(n int) bool {
	return n >= t.Min && n <= t.Max
}

func always(Outcome) bool { return true }

func onRemoval(o Outcome) bool { return o == OutcomeRemoved }

var (
	TypeSelection = &Type{Name: "Selection", Key: "s", Min: 1, Max: 2, Refresh: onRemoval, apply: applySelection}
	TypePoint3D   = &Type{Name: "Point3D", Key: "p", Min: 5, Max: 6, Refresh: always, apply: applyPoint3D}
	TypePoint2D   = &Type{Name: "Point2D", Key: "p2", Min: 4, Max: 5, Refresh: always, apply: applyPoint2D}
	TypeEllipsoid = &Type{Name: "Ellipsoid", Key: "e", Min: 4, Max: 4, Refresh: always, apply: applyEllipsoid}
	TypeCylinder  = &Type{Name: "Cylinder", Key: "cyl", Min: 5, Max: 5, Refresh: always, apply: applyCylinder}
	TypeBounds    = &Type{Name: "Bounds", Key: "mm", Min: 2, Max: 2, Refresh: always, apply: applyBounds}
	TypeUpdate    = &Type{Name: "Update", Key: "u", Min: 1, Max: 1, Refresh: always, apply: applyUpdate}
	TypePolygon   = &Type{Name: "Polygon", Key: "poly", Min: 3, Max: 99, Refresh: always, apply: applyPolygon}
	TypeColour    = &Type{Name: "Colour", Key: "col", Min: 4, Max: 4, MultiOnly: true, Refresh: always, apply: applyColour}
	TypeGrid      = &Type{Name: "Grid", Key: "grid", Min: 1, Max: 2, MultiOnly: true, Refresh: always, apply: applyGrid}
)

var types = map[string]*Type{}

func init() {
	for _, t := range []*Type{
		TypeSelection, TypePoint3D, TypePoint2D, TypeEllipsoid, TypeCylinder,
		TypeBounds, TypeUpdate, TypePolygon, TypeColour, TypeGrid,
	} {
		types[t.Key] = t
	}
}

// TypeByKey looks up the event type with the protocol key passed.
func TypeByKey(key string) (*Type, bool) {
	t, ok := types[strings.ToLower(key)]
	return t, ok
}
