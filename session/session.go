// Package session holds the selections of a single viewer.
package session

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	"github.com/oomph-ac/wedisplay/region"
)

// Selections is the set of regions a viewer currently has selected: one main region plus any number of
// named regions sent in multi mode. It is not safe for concurrent use; the owner serialises access.
type Selections struct {
	main  region.Region
	named *orderedmap.OrderedMap[uuid.UUID, region.Region]

	current    uuid.UUID
	hasCurrent bool

	// Mode is the shape key of the last selection that was started.
	Mode string
}

// NewSelections returns an empty selection set.
func NewSelections() *Selections {
	return &Selections{named: orderedmap.NewOrderedMap[uuid.UUID, region.Region]()}
}

// Main returns the main region, or nil if there is none.
func (s *Selections) Main() region.Region {
	return s.main
}

// SetMain replaces the main region. Passing nil clears it.
func (s *Selections) SetMain(r region.Region) {
	s.main = r
}

// Named returns the named region with the id passed.
func (s *Selections) Named(id uuid.UUID) (region.Region, bool) {
	return s.named.Get(id)
}

// SetNamed replaces the named region with the id passed. Passing nil removes it.
func (s *Selections) SetNamed(id uuid.UUID, r region.Region) {
	if r == nil {
		s.named.Delete(id)
		return
	}
	s.named.Set(id, r)
}

// Current returns the named region events without an id apply to.
func (s *Selections) Current() (uuid.UUID, region.Region, bool) {
	if !s.hasCurrent {
		return uuid.Nil, nil, false
	}
	r, ok := s.named.Get(s.current)
	if !ok {
		return s.current, nil, false
	}
	return s.current, r, true
}

// SetCurrent marks the named region with the id passed as current.
func (s *Selections) SetCurrent(id uuid.UUID) {
	s.current, s.hasCurrent = id, true
}

// ClearCurrent resets the current named region.
func (s *Selections) ClearCurrent() {
	s.current, s.hasCurrent = uuid.Nil, false
}

// Selection returns the region events apply to: the current named region in multi mode, and the main
// region otherwise.
func (s *Selections) Selection(multi bool) region.Region {
	if !multi {
		return s.main
	}
	_, r, _ := s.Current()
	return r
}

// ClearNamed removes all named regions.
func (s *Selections) ClearNamed() {
	s.named = orderedmap.NewOrderedMap[uuid.UUID, region.Region]()
	s.ClearCurrent()
}

// ClearAll removes every region.
func (s *Selections) ClearAll() {
	s.main = nil
	s.ClearNamed()
}

// NamedIDs returns the ids of all named regions in the order they were first selected.
func (s *Selections) NamedIDs() []uuid.UUID {
	return s.named.Keys()
}

// NamedLen returns the amount of named regions.
func (s *Selections) NamedLen() int {
	return s.named.Len()
}

// EachNamed calls fn for every named region in the order they were first selected.
func (s *Selections) EachNamed(fn func(id uuid.UUID, r region.Region)) {
	for el := s.named.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// IsNamed returns true if r is one of the named regions.
func (s *Selections) IsNamed(r region.Region) bool {
	if r == nil {
		return false
	}
	for el := s.named.Front(); el != nil; el = el.Next() {
		if el.Value == r {
			return true
		}
	}
	return false
}
