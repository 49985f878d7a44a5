package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/wedisplay/palette"
	"github.com/sirupsen/logrus"
)

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatal(err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatal("expected error when the file already exists")
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Renderer != DefaultRenderers() {
		t.Fatalf("loaded renderers differ from defaults: %+v", s.Renderer)
	}
	if s.Limits.Segments.Max != 120 {
		t.Fatalf("unexpected segment limit: %v", s.Limits.Segments)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestKeys(t *testing.T) {
	keys := Keys("cuboid")
	if len(keys) != 9 || keys[0] != "edge_material" || keys[8] != "max_grid_spacing" {
		t.Fatalf("unexpected cuboid keys: %v", keys)
	}
	if Keys("sphere") != nil {
		t.Fatal("unknown shape should have no keys")
	}
	for _, shape := range Shapes() {
		for _, key := range Keys(shape) {
			if _, ok := DefaultRenderers().Get(shape, key); !ok {
				t.Errorf("%s.%s has no value", shape, key)
			}
		}
	}
}

func TestOverrideSet(t *testing.T) {
	l := DefaultSettings().Limits
	tests := []struct {
		shape, key, value string
		reason            Reason
		ok                bool
	}{
		{shape: "cuboid", key: "edge_thickness", value: "0.2", ok: true},
		{shape: "cylinder", key: "max_circle_segments", value: "100", ok: true},
		{shape: "ellipsoid", key: "sqrt_scale_factor", value: "2.5", ok: true},
		{shape: "polyhedron", key: "vertex_size", value: "2", ok: true},
		{shape: "cuboid", key: "edge_thickness", value: "0.9", reason: ReasonOutOfRange},
		{shape: "cylinder", key: "min_circle_segments", value: "5", reason: ReasonOutOfRange},
		{shape: "polygon", key: "height_grid_division", value: "0", reason: ReasonOutOfRange},
		{shape: "cuboid", key: "vertex_marker_size", value: "big", reason: ReasonInvalidValue},
		{shape: "cuboid", key: "height_grid_division", value: "2.5", reason: ReasonInvalidValue},
		{shape: "cuboid", key: "max_grid_spacing", value: "4", reason: ReasonServerOnly},
		{shape: "cuboid", key: "colour", value: "4", reason: ReasonUnknownSetting},
		{shape: "cone", key: "edge_thickness", value: "0.1", reason: ReasonUnknownShape},
	}
	for _, tt := range tests {
		o := &Override{}
		err := o.Set(l, tt.shape, tt.key, tt.value)
		if tt.ok {
			if err != nil {
				t.Errorf("Set(%s.%s=%s) returned %v", tt.shape, tt.key, tt.value, err)
			}
			continue
		}
		var verr ValidationError
		if !errors.As(err, &verr) || verr.Reason != tt.reason {
			t.Errorf("Set(%s.%s=%s) = %v, want reason %v", tt.shape, tt.key, tt.value, err, tt.reason)
		}
		if len(o.Renderer) != 0 {
			t.Errorf("Set(%s.%s=%s) changed the override on failure", tt.shape, tt.key, tt.value)
		}
	}
}

func TestOverrideSetMaterial(t *testing.T) {
	o := &Override{}
	if err := o.Set(DefaultSettings().Limits, "cuboid", "edge_material", "DIAMOND_BLOCK"); err != nil {
		t.Fatal(err)
	}
	r := DefaultSettings().Resolve(o)
	if r.Cuboid.EdgeMaterial != "minecraft:diamond_block" {
		t.Fatalf("unexpected material: %v", r.Cuboid.EdgeMaterial)
	}
	if err := o.Set(DefaultSettings().Limits, "cuboid", "edge_material", "not_a_block"); err == nil {
		t.Fatal("expected error for unknown material")
	}
}

func TestResolve(t *testing.T) {
	s := DefaultSettings()
	o := &Override{Renderer: map[string]map[string]any{
		"cuboid": {
			"edge_thickness":   0.2,
			"grid_thickness":   9.0,
			"max_grid_spacing": 3,
		},
		"cylinder": {
			"max_circle_segments":   90.0,
			"target_segment_length": 1,
			"circle_material":       "minecraft:nope",
		},
		"cone": {"edge_thickness": 0.1},
	}}
	r := s.Resolve(o)
	if r.Cuboid.EdgeThickness != 0.2 {
		t.Errorf("edge thickness not applied: %v", r.Cuboid.EdgeThickness)
	}
	if r.Cuboid.GridThickness != s.Limits.Thickness.Max {
		t.Errorf("grid thickness not clamped: %v", r.Cuboid.GridThickness)
	}
	if r.Cuboid.MaxGridSpacing != -1 {
		t.Errorf("server-only setting was overridden: %v", r.Cuboid.MaxGridSpacing)
	}
	if r.Cylinder.MaxCircleSegments != 90 || r.Cylinder.TargetSegmentLength != 1 {
		t.Errorf("numeric coercion failed: %+v", r.Cylinder)
	}
	if r.Cylinder.CircleMaterial != "minecraft:gold_block" {
		t.Errorf("unknown material was applied: %v", r.Cylinder.CircleMaterial)
	}
	if s.Renderer.Cuboid.EdgeThickness != 0.05 {
		t.Error("resolve modified the global settings")
	}
	if s.Resolve(nil) != s.Renderer {
		t.Error("nil override should resolve to the global settings")
	}
}

func TestOverrideReset(t *testing.T) {
	l := DefaultSettings().Limits
	o := &Override{}
	_ = o.Set(l, "cuboid", "edge_thickness", "0.2")
	_ = o.Set(l, "cuboid", "grid_thickness", "0.2")
	o.Reset("cuboid", "edge_thickness")
	if _, ok := o.Renderer["cuboid"]["edge_thickness"]; ok {
		t.Fatal("setting was not reset")
	}
	o.ResetShape("CUBOID")
	if _, ok := o.Renderer["cuboid"]; ok {
		t.Fatal("shape was not reset")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir, logrus.New())

	o, err := st.Load("1234")
	if err != nil || len(o.Renderer) != 0 {
		t.Fatalf("expected empty override, got %+v, %v", o, err)
	}

	enabled := false
	o.Language = "zh_TW"
	o.Rendering = &enabled
	_ = o.Set(DefaultSettings().Limits, "cylinder", "min_circle_segments", "40")
	_ = o.Set(DefaultSettings().Limits, "cuboid", "edge_thickness", "0.1")
	if err := st.Save("1234", o); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "1234.yml")); err != nil {
		t.Fatal(err)
	}

	loaded, err := st.Load("1234")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Language != "zh_TW" || loaded.Rendering == nil || *loaded.Rendering {
		t.Fatalf("unexpected loaded override: %+v", loaded)
	}
	r := DefaultSettings().Resolve(loaded)
	if r.Cylinder.MinCircleSegments != 40 || r.Cuboid.EdgeThickness != 0.1 {
		t.Fatalf("loaded values not applied: %+v %+v", r.Cylinder, r.Cuboid)
	}
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	s.Renderer.Polygon.EdgeMaterial = palette.Material("")
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for empty material")
	}
}
