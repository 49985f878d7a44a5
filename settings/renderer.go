package settings

import (
	"reflect"
	"slices"

	"github.com/oomph-ac/wedisplay/palette"
)

// Renderers holds the render settings of every shape. The toml keys double as the setting names
// players use for their own overrides.
type Renderers struct {
	Cuboid     Cuboid     `toml:"cuboid"`
	Cylinder   Cylinder   `toml:"cylinder"`
	Ellipsoid  Ellipsoid  `toml:"ellipsoid"`
	Polygon    Polygon    `toml:"polygon"`
	Polyhedron Polyhedron `toml:"polyhedron"`
}

// Cuboid holds the render settings of cuboid selections.
type Cuboid struct {
	EdgeMaterial       palette.Material `toml:"edge_material"`
	Point1Material     palette.Material `toml:"point1_material"`
	Point2Material     palette.Material `toml:"point2_material"`
	GridMaterial       palette.Material `toml:"grid_material"`
	EdgeThickness      float64          `toml:"edge_thickness"`
	GridThickness      float64          `toml:"grid_thickness"`
	VertexMarkerSize   float64          `toml:"vertex_marker_size"`
	HeightGridDivision int              `toml:"height_grid_division"`
	MaxGridSpacing     int              `toml:"max_grid_spacing"`
}

// Cylinder holds the render settings of cylinder selections.
type Cylinder struct {
	CircleMaterial      palette.Material `toml:"circle_material"`
	GridMaterial        palette.Material `toml:"grid_material"`
	CenterMaterial      palette.Material `toml:"center_material"`
	CenterLineMaterial  palette.Material `toml:"center_line_material"`
	CircleThickness     float64          `toml:"circle_thickness"`
	GridThickness       float64          `toml:"grid_thickness"`
	CenterLineThickness float64          `toml:"center_line_thickness"`
	CenterThickness     float64          `toml:"center_thickness"`
	MinCircleSegments   int              `toml:"min_circle_segments"`
	MaxCircleSegments   int              `toml:"max_circle_segments"`
	TargetSegmentLength float64          `toml:"target_segment_length"`
	SqrtScaleFactor     float64          `toml:"sqrt_scale_factor"`
	HeightGridDivision  int              `toml:"height_grid_division"`
	RadiusGridDivision  int              `toml:"radius_grid_division"`
	MaxGridSpacing      int              `toml:"max_grid_spacing"`
}

// Ellipsoid holds the render settings of ellipsoid selections.
type Ellipsoid struct {
	LineMaterial        palette.Material `toml:"line_material"`
	CenterLineMaterial  palette.Material `toml:"center_line_material"`
	CenterMaterial      palette.Material `toml:"center_material"`
	LineThickness       float64          `toml:"line_thickness"`
	CenterLineThickness float64          `toml:"center_line_thickness"`
	CenterMarkerSize    float64          `toml:"center_marker_size"`
	CenterThickness     float64          `toml:"center_thickness"`
	MinSegments         int              `toml:"min_segments"`
	MaxSegments         int              `toml:"max_segments"`
	TargetSegmentLength float64          `toml:"target_segment_length"`
	SqrtScaleFactor     float64          `toml:"sqrt_scale_factor"`
	RadiusGridDivision  int              `toml:"radius_grid_division"`
	MaxGridSpacing      int              `toml:"max_grid_spacing"`
}

// Polygon holds the render settings of polygon selections.
type Polygon struct {
	EdgeMaterial       palette.Material `toml:"edge_material"`
	VertexMaterial     palette.Material `toml:"vertex_material"`
	VerticalMaterial   palette.Material `toml:"vertical_material"`
	EdgeThickness      float64          `toml:"edge_thickness"`
	VerticalThickness  float64          `toml:"vertical_thickness"`
	VertexThickness    float64          `toml:"vertex_thickness"`
	HeightGridDivision int              `toml:"height_grid_division"`
	MaxGridSpacing     int              `toml:"max_grid_spacing"`
}

// Polyhedron holds the render settings of polyhedron selections.
type Polyhedron struct {
	LineMaterial    palette.Material `toml:"line_material"`
	Vertex0Material palette.Material `toml:"vertex0_material"`
	VertexMaterial  palette.Material `toml:"vertex_material"`
	LineThickness   float64          `toml:"line_thickness"`
	VertexSize      float64          `toml:"vertex_size"`
	VertexThickness float64          `toml:"vertex_thickness"`
}

// serverOnlyKey is the one setting players cannot override.
const serverOnlyKey = "max_grid_spacing"

// Shapes returns the names of all shapes with render settings.
func Shapes() []string {
	return []string{"cuboid", "cylinder", "ellipsoid", "polygon", "polyhedron"}
}

// Keys returns the setting names of the shape passed, in declaration order.
func Keys(shape string) []string {
	t, ok := shapeType(shape)
	if !ok {
		return nil
	}
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, t.Field(i).Tag.Get("toml"))
	}
	return keys
}

// HasKey checks if the shape has a setting with the name passed.
func HasKey(shape, key string) bool {
	return slices.Contains(Keys(shape), key)
}

// Get returns the value of a setting. The value is a palette.Material, float64 or int.
func (r Renderers) Get(shape, key string) (any, bool) {
	f, ok := r.field(shape, key)
	if !ok {
		return nil, false
	}
	return f.Interface(), true
}

// set assigns a setting, converting v to the type of the field. It returns false if the setting does
// not exist or v cannot be converted.
func (r *Renderers) set(shape, key string, v any) bool {
	f, ok := r.field(shape, key)
	if !ok {
		return false
	}
	val, ok := coerce(f.Kind(), v)
	if !ok {
		return false
	}
	f.Set(reflect.ValueOf(val).Convert(f.Type()))
	return true
}

func (r *Renderers) field(shape, key string) (reflect.Value, bool) {
	rv := reflect.ValueOf(r).Elem()
	for i := 0; i < rv.NumField(); i++ {
		if rv.Type().Field(i).Tag.Get("toml") != shape {
			continue
		}
		sv := rv.Field(i)
		for j := 0; j < sv.NumField(); j++ {
			if sv.Type().Field(j).Tag.Get("toml") == key {
				return sv.Field(j), true
			}
		}
	}
	return reflect.Value{}, false
}

func shapeType(shape string) (reflect.Type, bool) {
	t := reflect.TypeOf(Renderers{})
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("toml") == shape {
			return t.Field(i).Type, true
		}
	}
	return nil, false
}

// coerce converts a decoded value to the Go type stored in a field of the kind passed. Values read
// from YAML may hold an int where a float is expected, or the other way around.
func coerce(k reflect.Kind, v any) (any, bool) {
	switch k {
	case reflect.String:
		switch v := v.(type) {
		case string:
			return v, true
		case palette.Material:
			return string(v), true
		}
	case reflect.Float64:
		switch v := v.(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		}
	case reflect.Int:
		switch v := v.(type) {
		case int:
			return v, true
		case int64:
			return int(v), true
		case float64:
			return int(v), true
		}
	}
	return nil, false
}
