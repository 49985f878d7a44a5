package render

import (
	"github.com/google/uuid"
	"github.com/oomph-ac/wedisplay/assert"
	"github.com/oomph-ac/wedisplay/region"
	"github.com/oomph-ac/wedisplay/session"
	"github.com/oomph-ac/wedisplay/settings"
)

// SlotID identifies where a shape is shown: the main selection or one of the named selections.
type SlotID struct {
	Named bool
	ID    uuid.UUID
}

// MainSlot is the slot of the main selection.
var MainSlot = SlotID{}

// NamedSlot returns the slot of the named selection with the id passed.
func NamedSlot(id uuid.UUID) SlotID {
	return SlotID{Named: true, ID: id}
}

// String ...
func (s SlotID) String() string {
	if !s.Named {
		return "main"
	}
	return s.ID.String()
}

// Sink turns shapes into something a viewer can see.
type Sink interface {
	// Show shows a shape in a slot, replacing whatever was shown there before.
	Show(slot SlotID, s Shape)
	// Hide removes everything shown in a slot.
	Hide(slot SlotID)
}

type slot struct {
	kind  region.Kind
	shape Shape
}

// State tracks the shapes shown to a single viewer and reconciles them with its selections. It is not
// safe for concurrent use.
type State struct {
	sink  Sink
	main  *slot
	named map[uuid.UUID]*slot
}

// NewState returns an empty State that shows shapes through the sink passed.
func NewState(sink Sink) *State {
	return &State{sink: sink, named: make(map[uuid.UUID]*slot)}
}

// Update brings the shapes shown in line with the selections passed. Every selection that is present
// is tessellated again.
func (s *State) Update(sel *session.Selections, r settings.Renderers) {
	s.main = s.reconcile(MainSlot, s.main, sel.Main(), r, false)

	for id := range s.named {
		if _, ok := sel.Named(id); !ok {
			s.sink.Hide(NamedSlot(id))
			delete(s.named, id)
		}
	}
	sel.EachNamed(func(id uuid.UUID, reg region.Region) {
		if sl := s.reconcile(NamedSlot(id), s.named[id], reg, r, true); sl != nil {
			s.named[id] = sl
		}
	})
	assert.IsTrue(len(s.named) == sel.NamedLen(), "rendering %d named selections, expected %d", len(s.named), sel.NamedLen())
}

func (s *State) reconcile(id SlotID, current *slot, reg region.Region, r settings.Renderers, multi bool) *slot {
	if reg == nil {
		if current != nil {
			s.sink.Hide(id)
		}
		return nil
	}
	if current != nil && current.kind != reg.Kind() {
		s.sink.Hide(id)
		current = nil
	}
	if current == nil {
		current = &slot{kind: reg.Kind()}
	}
	current.shape = Tessellate(reg, r, multi)
	s.sink.Show(id, current.shape)
	return current
}

// Clear hides every shape.
func (s *State) Clear() {
	if s.main != nil {
		s.sink.Hide(MainSlot)
		s.main = nil
	}
	for id := range s.named {
		s.sink.Hide(NamedSlot(id))
	}
	clear(s.named)
}

// Shape returns the shape last shown in a slot.
func (s *State) Shape(id SlotID) (Shape, bool) {
	sl := s.main
	if id.Named {
		sl = s.named[id.ID]
	}
	if sl == nil {
		return Shape{}, false
	}
	return sl.shape, true
}

// Active returns true if any shape is shown.
func (s *State) Active() bool {
	return s.Count() > 0
}

// Count returns the amount of slots a shape is shown in.
func (s *State) Count() int {
	n := len(s.named)
	if s.main != nil {
		n++
	}
	return n
}
