package event

import (
	"math"
	"strconv"

	"github.com/oomph-ac/wedisplay/region"
	"github.com/oomph-ac/wedisplay/session"
)

// Target is the viewer events are applied to.
type Target interface {
	// Selections returns the selections of the viewer.
	Selections() *session.Selections
	// ClearRender discards everything currently rendered for the viewer.
	ClearRender()
	// Refresh renders the selections of the viewer again.
	Refresh()
}

// Dispatcher applies frames to a Target in the order they are passed.
type Dispatcher struct {
	target Target
}

// NewDispatcher returns a Dispatcher applying events to the target passed.
func NewDispatcher(t Target) *Dispatcher {
	return &Dispatcher{target: t}
}

// Dispatch applies a single frame. Frames with an unknown key are ignored. An error is returned if the
// frame was rejected, in which case nothing was changed.
func (d *Dispatcher) Dispatch(f Frame) error {
	t, ok := TypeByKey(f.Key)
	if !ok {
		return nil
	}
	if t.MultiOnly && !f.Multi {
		return MultiOnlyError{Type: t}
	}
	if !t.Accepts(len(f.Params)) {
		return ArityError{Type: t, Got: len(f.Params)}
	}

	c := &context{t: t, f: f, target: d.target, sel: d.target.Selections()}
	outcome, err := t.apply(c)
	if err != nil {
		return err
	}
	if t.Refresh(outcome) {
		d.target.Refresh()
	}
	return nil
}

// DispatchRaw parses and applies a raw frame.
func (d *Dispatcher) DispatchRaw(raw string) error {
	return d.Dispatch(ParseFrame(raw))
}

// context is the state passed to an event while it is applied.
type context struct {
	t      *Type
	f      Frame
	target Target
	sel    *session.Selections
}

func (c *context) str(i int) string {
	return c.f.Params[i]
}

// integer parses an integer parameter. Integers may be sent with a fractional part, which is truncated.
func (c *context) integer(i int) (int, error) {
	v, err := c.finite(i, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func (c *context) double(i int) (float64, error) {
	return c.finite(i, 64)
}

// finite parses a float parameter, rejecting NaN and infinities.
func (c *context) finite(i, bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(c.f.Params[i], bitSize)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = strconv.ErrRange
	}
	if err != nil {
		return 0, ParseError{Type: c.t, Index: i, Value: c.f.Params[i], Err: err}
	}
	return v, nil
}

// pointIndex parses the index of a point, rejecting indices no region can hold.
func (c *context) pointIndex(i int) (int, error) {
	id, err := c.integer(i)
	if err != nil {
		return 0, err
	}
	if id > region.MaxPointIndex {
		return 0, ParseError{Type: c.t, Index: i, Value: c.f.Params[i], Err: strconv.ErrRange}
	}
	return id, nil
}

func (c *context) ints(from, n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := c.integer(from + i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c *context) floats(from, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := c.double(from + i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
