package event

import (
	"errors"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/google/uuid"
	"github.com/oomph-ac/wedisplay/region"
	"github.com/oomph-ac/wedisplay/session"
)

type mockTarget struct {
	sel       *session.Selections
	refreshes int
	clears    int
}

func newMockTarget() *mockTarget {
	return &mockTarget{sel: session.NewSelections()}
}

func (m *mockTarget) Selections() *session.Selections { return m.sel }
func (m *mockTarget) ClearRender()                    { m.clears++ }
func (m *mockTarget) Refresh()                        { m.refreshes++ }

func dispatchAll(t *testing.T, d *Dispatcher, frames ...string) {
	t.Helper()
	for _, f := range frames {
		if err := d.DispatchRaw(f); err != nil {
			t.Fatalf("dispatch %q: %v", f, err)
		}
	}
}

func TestParseFrame(t *testing.T) {
	tests := []struct {
		raw    string
		key    string
		multi  bool
		params int
	}{
		{raw: "s|cuboid", key: "s", params: 1},
		{raw: "+s|cuboid|abc", key: "s", multi: true, params: 2},
		{raw: "+col|#ff0000|#00ff00||", key: "col", multi: true, params: 4},
		{raw: "u", key: "u", params: 0},
	}
	for _, tt := range tests {
		f := ParseFrame(tt.raw)
		if f.Key != tt.key || f.Multi != tt.multi || len(f.Params) != tt.params {
			t.Errorf("ParseFrame(%q) = %+v", tt.raw, f)
		}
		if f.String() != tt.raw {
			t.Errorf("String() = %q, want %q", f.String(), tt.raw)
		}
	}
	if n := len(Frames("s|cuboid\np|0|1|2|3|8\n")); n != 2 {
		t.Fatalf("expected 2 frames, got %d", n)
	}
}

func TestCuboidScenario(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	dispatchAll(t, d, "s|cuboid")
	if m.refreshes != 0 {
		t.Fatal("creating a selection should not refresh")
	}
	dispatchAll(t, d, "p|0|0|0|0|1", "p|1|2|2|2|27")
	if m.refreshes != 2 {
		t.Fatalf("expected 2 refreshes, got %d", m.refreshes)
	}

	c, ok := m.sel.Main().(*region.Cuboid)
	if !ok || !c.Defined() {
		t.Fatalf("expected a defined cuboid, got %#v", m.sel.Main())
	}
	b, _ := c.Bounds()
	if max := b.Expand().Max(); max.X() != 3 || max.Y() != 3 || max.Z() != 3 {
		t.Fatalf("unexpected max corner %v", max)
	}
	if m.sel.Mode != "cuboid" {
		t.Fatalf("unexpected mode %q", m.sel.Mode)
	}
}

func TestSingleReplaceClearsRender(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	dispatchAll(t, d, "s|cuboid", "s|cylinder")
	if m.clears != 1 {
		t.Fatalf("replacing a selection should clear the render once, got %d", m.clears)
	}
	if m.sel.Main().Kind() != region.KindCylinder {
		t.Fatal("selection was not replaced")
	}
	dispatchAll(t, d, "s|clear")
	if m.sel.Main() != nil || m.refreshes != 1 {
		t.Fatalf("clear should remove the selection and refresh, refreshes=%d", m.refreshes)
	}
}

func TestCylinderZeroRadius(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	dispatchAll(t, d, "s|cylinder", "cyl|0|0|0|0|0")
	c := m.sel.Main().(*region.Cylinder)
	if centre, ok := c.Centre(); !ok || centre != (cube.Pos{}) {
		t.Fatalf("unexpected centre %v", centre)
	}
	if c.Defined() {
		t.Fatal("cylinder with zero radii should not be defined")
	}
}

func TestMultiSelections(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	a, b := uuid.New(), uuid.New()
	dispatchAll(t, d, "+s|cuboid|"+a.String(), "+p|0|1|2|3|1", "+s|ellipsoid|"+b.String())
	if m.sel.NamedLen() != 2 {
		t.Fatalf("expected 2 named regions, got %d", m.sel.NamedLen())
	}
	if id, _, _ := m.sel.Current(); id != b {
		t.Fatal("the last started region should be current")
	}
	if m.sel.Main() != nil {
		t.Fatal("multi events should not touch the main selection")
	}

	refreshes := m.refreshes
	dispatchAll(t, d, "+s|clear|"+b.String())
	if m.refreshes != refreshes+1 {
		t.Fatal("removing a named region should refresh")
	}
	if _, _, ok := m.sel.Current(); ok {
		t.Fatal("removing the current region should reset it")
	}

	dispatchAll(t, d, "+s|cuboid|not-a-uuid")
	if m.sel.NamedLen() != 1 {
		t.Fatal("invalid ids should be ignored")
	}

	dispatchAll(t, d, "+s|clear")
	if m.sel.NamedLen() != 0 {
		t.Fatal("clear without an id should remove all named regions")
	}
}

func TestColour(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	id := uuid.New()
	dispatchAll(t, d, "+s|cuboid|"+id.String(), "+col|#ff0000|00ff00||#0000ff80")

	r, _ := m.sel.Named(id)
	style := r.Style()
	if style.Materials[0] == nil || style.Materials[1] == nil {
		t.Fatal("primary and secondary overrides should be set")
	}
	if style.Materials[2] != nil || !style.GridHidden {
		t.Fatal("empty grid colour should leave the override unset and hide the grid")
	}
	if style.Materials[3] == nil || style.BackgroundHidden {
		t.Fatal("background override should be set")
	}

	err := d.DispatchRaw("col|#ff0000|#ff0000|#ff0000|#ff0000")
	if !errors.Is(err, ErrMultiOnly) {
		t.Fatalf("expected ErrMultiOnly, got %v", err)
	}
}

func TestGridWithoutCurrent(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	dispatchAll(t, d, "+grid|4.5")

	id := uuid.New()
	dispatchAll(t, d, "+s|cuboid|"+id.String(), "+grid|4.5|cull")
	r, _ := m.sel.Named(id)
	if r.Style().GridSpacing != 4.5 {
		t.Fatalf("unexpected spacing %v", r.Style().GridSpacing)
	}
}

func TestRejectedFrames(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	dispatchAll(t, d, "s|polyhedron", "unknown|1|2|3", "s|dodecahedron")

	var arity ArityError
	if err := d.DispatchRaw("p|0|1|2"); !errors.As(err, &arity) || arity.Got != 3 {
		t.Fatalf("expected an arity error, got %v", err)
	}
	var parse ParseError
	if err := d.DispatchRaw("p|0|x|2|3|1"); !errors.As(err, &parse) || parse.Index != 1 {
		t.Fatalf("expected a parse error, got %v", err)
	}
	if m.refreshes != 0 {
		t.Fatal("rejected frames should not refresh")
	}

	// Capability mismatches are absorbed.
	dispatchAll(t, d, "mm|0|10", "p2|0|1|2|1", "cyl|0|0|0|1|1")
	if p := m.sel.Main().(*region.Polyhedron); p.VertexCount() != 0 {
		t.Fatal("polyhedron should not have vertices")
	}
}

func TestPolyhedronFaces(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	dispatchAll(t, d, "s|polyhedron", "p|0|0|0|0|0", "p|1|1|0|0|0", "p|2|1.9|1|0|0", "poly|0|1|2")
	p := m.sel.Main().(*region.Polyhedron)
	if p.VertexCount() != 3 || len(p.Faces()) != 1 {
		t.Fatalf("unexpected polyhedron %d vertices, %d faces", p.VertexCount(), len(p.Faces()))
	}
	if v, _ := p.Vertex(2); v != (cube.Pos{1, 1, 0}) {
		t.Fatalf("unexpected vertex %v", v)
	}
}

func TestGridSpacingBounds(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	id := uuid.New()
	dispatchAll(t, d, "+s|cuboid|"+id.String())

	for _, raw := range []string{"+grid|1e-20", "+grid|0.5", "+grid|NaN", "+grid|Inf"} {
		var parse ParseError
		if err := d.DispatchRaw(raw); !errors.As(err, &parse) {
			t.Fatalf("%s: expected a parse error, got %v", raw, err)
		}
	}
	r, _ := m.sel.Named(id)
	if r.Style().GridSpacing != 0 {
		t.Fatalf("rejected spacings should not be stored, got %v", r.Style().GridSpacing)
	}
	// Zero and negative spacings select the automatic grid.
	dispatchAll(t, d, "+grid|0", "+grid|-1", "+grid|1")
	if r.Style().GridSpacing != 1 {
		t.Fatalf("unexpected spacing %v", r.Style().GridSpacing)
	}
}

func TestPointIndexBounds(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	dispatchAll(t, d, "s|polyhedron")

	var parse ParseError
	if err := d.DispatchRaw("p|100000000|0|0|0|1"); !errors.As(err, &parse) || parse.Index != 0 {
		t.Fatalf("expected the index to be rejected, got %v", err)
	}
	if p := m.sel.Main().(*region.Polyhedron); p.VertexCount() != 0 {
		t.Fatalf("expected no vertices, got %d", p.VertexCount())
	}

	dispatchAll(t, d, "s|polygon2d")
	if err := d.DispatchRaw("p2|100000000|0|0|1"); !errors.As(err, &parse) {
		t.Fatalf("expected the index to be rejected, got %v", err)
	}
	if p := m.sel.Main().(*region.Polygon); p.Len() != 0 {
		t.Fatalf("expected no points, got %d", p.Len())
	}
	dispatchAll(t, d, "p2|3|4|5|1")
	if p := m.sel.Main().(*region.Polygon); p.Len() != 4 {
		t.Fatalf("expected the point list to grow to 4, got %d", p.Len())
	}
}

func TestNonFiniteValues(t *testing.T) {
	m := newMockTarget()
	d := NewDispatcher(m)
	dispatchAll(t, d, "s|ellipsoid", "e|0|0|0|0")

	var parse ParseError
	if err := d.DispatchRaw("e|1|NaN|2|2"); !errors.As(err, &parse) || parse.Index != 1 {
		t.Fatalf("expected NaN to be rejected, got %v", err)
	}
	if _, ok := m.sel.Main().(*region.Ellipsoid).Radii(); ok {
		t.Fatal("rejected radii should not be stored")
	}

	dispatchAll(t, d, "s|cylinder")
	if err := d.DispatchRaw("cyl|0|0|0|+Inf|1"); !errors.As(err, &parse) || parse.Index != 3 {
		t.Fatalf("expected Inf to be rejected, got %v", err)
	}
	if err := d.DispatchRaw("p|0|NaN|0|0|1"); !errors.As(err, &parse) {
		t.Fatalf("expected NaN to be rejected, got %v", err)
	}
}
