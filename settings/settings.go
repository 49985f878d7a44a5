package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/wedisplay/palette"
	"github.com/pelletier/go-toml"
)

// Settings contains the global configuration of the proxy and the default render settings of every
// shape.
type Settings struct {
	Proxy struct {
		// LocalAddress is the address players connect to.
		LocalAddress string
		// RemoteAddress is the address of the server connections are forwarded to.
		RemoteAddress string
		// LogLevel is the logrus level name, such as "info" or "debug".
		LogLevel string
	}
	Display struct {
		// RenderingEnabled is the default for players who never toggled rendering.
		RenderingEnabled bool
		// DefaultLanguage is the language used for players who never picked one.
		DefaultLanguage string
		// PlayerDataDir is the directory per-player overrides are stored in.
		PlayerDataDir string
		// LangDir is an optional directory with additional language files.
		LangDir string
	}
	// Limits bound the values players may choose for their own overrides.
	Limits Limits
	// Renderer holds the default render settings of each shape.
	Renderer Renderers
}

// Range is an inclusive numeric range.
type Range struct {
	Min, Max float64
}

// Contains checks if v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return max(r.Min, min(v, r.Max))
}

// Limits holds the ranges player overrides are validated against.
type Limits struct {
	Thickness           Range
	MarkerSize          Range
	Segments            Range
	GridDivision        Range
	GridSpacing         Range
	TargetSegmentLength Range
	ScaleFactor         Range
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Proxy.LocalAddress = ":19132"
	s.Proxy.RemoteAddress = "127.0.0.1:19133"
	s.Proxy.LogLevel = "info"

	s.Display.RenderingEnabled = true
	s.Display.DefaultLanguage = "en_US"
	s.Display.PlayerDataDir = "players"

	s.Limits = Limits{
		Thickness:           Range{Min: 0.01, Max: 0.5},
		MarkerSize:          Range{Min: 0.1, Max: 5},
		Segments:            Range{Min: 10, Max: 120},
		GridDivision:        Range{Min: 1, Max: 50},
		GridSpacing:         Range{Min: -1, Max: 100},
		TargetSegmentLength: Range{Min: 0.1, Max: 5},
		ScaleFactor:         Range{Min: 0.5, Max: 10},
	}
	s.Renderer = DefaultRenderers()
	return s
}

// DefaultRenderers returns the default render settings of every shape.
func DefaultRenderers() Renderers {
	return Renderers{
		Cuboid: Cuboid{
			EdgeMaterial:       "minecraft:gold_block",
			Point1Material:     "minecraft:diamond_block",
			Point2Material:     "minecraft:emerald_block",
			GridMaterial:       "minecraft:iron_block",
			EdgeThickness:      0.05,
			GridThickness:      0.03,
			VertexMarkerSize:   1,
			HeightGridDivision: 10,
			MaxGridSpacing:     -1,
		},
		Cylinder: Cylinder{
			CircleMaterial:      "minecraft:gold_block",
			GridMaterial:        "minecraft:iron_block",
			CenterMaterial:      "minecraft:glowstone",
			CenterLineMaterial:  "minecraft:redstone_block",
			CircleThickness:     0.08,
			GridThickness:       0.05,
			CenterLineThickness: 0.08,
			CenterThickness:     0.05,
			MinCircleSegments:   30,
			MaxCircleSegments:   60,
			TargetSegmentLength: 0.5,
			SqrtScaleFactor:     4,
			HeightGridDivision:  10,
			RadiusGridDivision:  5,
			MaxGridSpacing:      -1,
		},
		Ellipsoid: Ellipsoid{
			LineMaterial:        "minecraft:gold_block",
			CenterLineMaterial:  "minecraft:redstone_block",
			CenterMaterial:      "minecraft:glowstone",
			LineThickness:       0.06,
			CenterLineThickness: 0.08,
			CenterMarkerSize:    1,
			CenterThickness:     0.05,
			MinSegments:         20,
			MaxSegments:         40,
			TargetSegmentLength: 0.5,
			SqrtScaleFactor:     4,
			RadiusGridDivision:  6,
			MaxGridSpacing:      -1,
		},
		Polygon: Polygon{
			EdgeMaterial:       "minecraft:gold_block",
			VertexMaterial:     "minecraft:diamond_block",
			VerticalMaterial:   "minecraft:iron_block",
			EdgeThickness:      0.05,
			VerticalThickness:  0.04,
			VertexThickness:    0.05,
			HeightGridDivision: 10,
			MaxGridSpacing:     -1,
		},
		Polyhedron: Polyhedron{
			LineMaterial:    "minecraft:cyan_stained_glass",
			Vertex0Material: "minecraft:orange_stained_glass",
			VertexMaterial:  "minecraft:yellow_stained_glass",
			LineThickness:   0.03,
			VertexSize:      1,
			VertexThickness: 0.03,
		},
	}
}

// Validate checks the settings for values that cannot be rendered with.
func (s Settings) Validate() error {
	for _, shape := range Shapes() {
		for _, key := range Keys(shape) {
			v, _ := s.Renderer.Get(shape, key)
			if m, ok := v.(palette.Material); ok && m == "" {
				return fmt.Errorf("renderer.%s.%s: material must not be empty", shape, key)
			}
		}
	}
	for name, r := range map[string]Range{
		"thickness": s.Limits.Thickness, "marker size": s.Limits.MarkerSize, "segments": s.Limits.Segments,
		"grid division": s.Limits.GridDivision, "grid spacing": s.Limits.GridSpacing,
		"target segment length": s.Limits.TargetSegmentLength, "scale factor": s.Limits.ScaleFactor,
	} {
		if r.Min > r.Max {
			return fmt.Errorf("limits: %s minimum %v exceeds maximum %v", name, r.Min, r.Max)
		}
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will
// return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not
// exist. Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	s := DefaultSettings()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err = s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}
