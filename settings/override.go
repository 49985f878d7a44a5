package settings

import (
	"fmt"
	"maps"
	"reflect"
	"strconv"
	"strings"

	"github.com/oomph-ac/wedisplay/palette"
)

// Override holds the settings a single player changed from the global defaults.
type Override struct {
	// Language is the language the player picked, or empty for the default.
	Language string `yaml:"language,omitempty"`
	// Rendering is the player's rendering toggle, or nil for the default.
	Rendering *bool `yaml:"rendering,omitempty"`
	// Renderer maps a shape name to the settings overridden for it.
	Renderer map[string]map[string]any `yaml:"renderer,omitempty"`
}

// Reason describes why a setting change was rejected.
type Reason uint8

const (
	ReasonUnknownShape Reason = iota
	ReasonUnknownSetting
	ReasonServerOnly
	ReasonInvalidValue
	ReasonOutOfRange
)

// ValidationError is returned when a player tries to change a setting to a value that is not
// accepted. The override is left unchanged.
type ValidationError struct {
	Shape, Key, Value string
	Reason            Reason
	// Range is the accepted range if Reason is ReasonOutOfRange.
	Range Range
}

// Error ...
func (e ValidationError) Error() string {
	switch e.Reason {
	case ReasonUnknownShape:
		return fmt.Sprintf("unknown shape %q", e.Shape)
	case ReasonUnknownSetting:
		return fmt.Sprintf("unknown setting %q for %s", e.Key, e.Shape)
	case ReasonServerOnly:
		return fmt.Sprintf("setting %q can only be changed by the server", e.Key)
	case ReasonOutOfRange:
		return fmt.Sprintf("%s.%s: %s is outside [%v, %v]", e.Shape, e.Key, e.Value, e.Range.Min, e.Range.Max)
	}
	return fmt.Sprintf("%s.%s: invalid value %q", e.Shape, e.Key, e.Value)
}

// For returns the range a numeric setting is validated against. False is returned if the setting
// is not bounded.
func (l Limits) For(key string) (Range, bool) {
	switch {
	case strings.Contains(key, "thickness"):
		return l.Thickness, true
	case key == "vertex_marker_size" || key == "center_marker_size" || key == "vertex_size":
		return l.MarkerSize, true
	case strings.Contains(key, "segments"):
		return l.Segments, true
	case strings.Contains(key, "division"):
		return l.GridDivision, true
	case strings.Contains(key, "spacing"):
		return l.GridSpacing, true
	case key == "target_segment_length":
		return l.TargetSegmentLength, true
	case strings.Contains(key, "scale_factor"):
		return l.ScaleFactor, true
	}
	return Range{}, false
}

// Set parses raw and stores it as the player's value for a setting. A ValidationError is returned if
// the shape or setting does not exist, the value cannot be parsed, or it falls outside the limits.
func (o *Override) Set(l Limits, shape, key, raw string) error {
	shape, key = strings.ToLower(shape), strings.ToLower(key)
	verr := ValidationError{Shape: shape, Key: key, Value: raw}
	t, ok := shapeType(shape)
	if !ok {
		verr.Reason = ReasonUnknownShape
		return verr
	}
	sf, ok := fieldByTag(t, key)
	if !ok {
		verr.Reason = ReasonUnknownSetting
		return verr
	}
	if key == serverOnlyKey {
		verr.Reason = ReasonServerOnly
		return verr
	}

	var v any
	switch sf.Type.Kind() {
	case reflect.String:
		m := palette.Normalise(raw)
		if !palette.Known(m) {
			verr.Reason = ReasonInvalidValue
			return verr
		}
		v = string(m)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			verr.Reason = ReasonInvalidValue
			return verr
		}
		v = f
	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.Reason = ReasonInvalidValue
			return verr
		}
		v = n
	}
	if f, ok := numeric(v); ok {
		if r, bounded := l.For(key); bounded && !r.Contains(f) {
			verr.Reason, verr.Range = ReasonOutOfRange, r
			return verr
		}
	}

	if o.Renderer == nil {
		o.Renderer = make(map[string]map[string]any)
	}
	if o.Renderer[shape] == nil {
		o.Renderer[shape] = make(map[string]any)
	}
	o.Renderer[shape][key] = v
	return nil
}

// Reset removes the player's value for a setting.
func (o *Override) Reset(shape, key string) {
	delete(o.Renderer[strings.ToLower(shape)], strings.ToLower(key))
}

// ResetShape removes every value the player set for a shape.
func (o *Override) ResetShape(shape string) {
	delete(o.Renderer, strings.ToLower(shape))
}

// Clone returns a deep copy of the override.
func (o *Override) Clone() *Override {
	c := &Override{Language: o.Language}
	if o.Rendering != nil {
		r := *o.Rendering
		c.Rendering = &r
	}
	if o.Renderer != nil {
		c.Renderer = make(map[string]map[string]any, len(o.Renderer))
		for shape, m := range o.Renderer {
			c.Renderer[shape] = maps.Clone(m)
		}
	}
	return c
}

// Resolve layers the override on top of the global render settings. Overridden numbers are clamped
// to the limits, and values that do not fit their setting are ignored. The server-only grid spacing
// limit is never overridden.
func (s Settings) Resolve(o *Override) Renderers {
	r := s.Renderer
	if o == nil {
		return r
	}
	for shape, values := range o.Renderer {
		for key, v := range values {
			if key == serverOnlyKey {
				continue
			}
			if f, ok := numeric(v); ok {
				if lim, bounded := s.Limits.For(key); bounded {
					v = lim.Clamp(f)
				}
			} else if m, ok := v.(string); ok && !palette.Known(palette.Material(m)) {
				continue
			}
			r.set(shape, key, v)
		}
	}
	return r
}

func fieldByTag(t reflect.Type, tag string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("toml") == tag {
			return t.Field(i), true
		}
	}
	return reflect.StructField{}, false
}

func numeric(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
