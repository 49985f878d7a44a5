// Package palette resolves colours sent by the selection tool into block materials that can be shown
// to the player.
package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/df-mc/dragonfly/server/world"
)

// Material is the identifier of a block used to draw lines and markers, such as "minecraft:gold_block".
type Material string

// String ...
func (m Material) String() string {
	return string(m)
}

// Colour is a single palette entry.
type Colour struct {
	Material Material
	R, G, B  uint8
}

// Colours is the fixed palette that style colours are matched against. The RGB values are the map
// colours of each block.
var Colours = []Colour{
	{"minecraft:white_concrete", 255, 255, 255},
	{"minecraft:orange_concrete", 216, 127, 51},
	{"minecraft:magenta_concrete", 178, 76, 216},
	{"minecraft:light_blue_concrete", 102, 153, 216},
	{"minecraft:yellow_concrete", 229, 229, 51},
	{"minecraft:lime_concrete", 127, 204, 25},
	{"minecraft:pink_concrete", 242, 127, 165},
	{"minecraft:gray_concrete", 76, 76, 76},
	{"minecraft:light_gray_concrete", 153, 153, 153},
	{"minecraft:cyan_concrete", 76, 127, 153},
	{"minecraft:purple_concrete", 127, 63, 178},
	{"minecraft:blue_concrete", 51, 76, 178},
	{"minecraft:brown_concrete", 102, 76, 51},
	{"minecraft:green_concrete", 102, 127, 51},
	{"minecraft:red_concrete", 153, 51, 51},
	{"minecraft:black_concrete", 25, 25, 25},
	{"minecraft:white_terracotta", 209, 177, 161},
	{"minecraft:orange_terracotta", 159, 82, 36},
	{"minecraft:magenta_terracotta", 149, 87, 108},
	{"minecraft:light_blue_terracotta", 112, 108, 138},
	{"minecraft:yellow_terracotta", 186, 133, 36},
	{"minecraft:lime_terracotta", 103, 117, 53},
	{"minecraft:pink_terracotta", 160, 77, 78},
	{"minecraft:gray_terracotta", 57, 41, 35},
	{"minecraft:light_gray_terracotta", 135, 107, 98},
	{"minecraft:cyan_terracotta", 87, 92, 92},
	{"minecraft:purple_terracotta", 122, 73, 88},
	{"minecraft:blue_terracotta", 76, 62, 92},
	{"minecraft:brown_terracotta", 76, 50, 35},
	{"minecraft:green_terracotta", 76, 82, 42},
	{"minecraft:red_terracotta", 142, 60, 46},
	{"minecraft:black_terracotta", 37, 22, 16},
	{"minecraft:hardened_clay", 216, 127, 51},
}

// Closest returns the palette material whose colour is nearest to the RGB colour passed.
func Closest(r, g, b uint8) Material {
	best, bestDist := Colours[0].Material, math.MaxFloat64
	for _, c := range Colours {
		dr, dg, db := float64(r)-float64(c.R), float64(g)-float64(c.G), float64(b)-float64(c.B)
		if d := math.Sqrt(dr*dr + dg*dg + db*db); d < bestDist {
			best, bestDist = c.Material, d
		}
	}
	return best
}

// ParseHex parses a colour in the "#RRGGBB" form. A missing "#" is tolerated and any digits after
// the sixth, such as an alpha channel, are ignored.
func ParseHex(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) < 6 {
		return 0, 0, 0, fmt.Errorf("colour %q: expected at least 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex[:6], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("colour %q: %w", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Resolve parses a hex colour and returns the closest palette material.
func Resolve(s string) (Material, error) {
	r, g, b, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return Closest(r, g, b), nil
}

// Normalise lower-cases a material name and adds the "minecraft:" namespace if it is missing.
func Normalise(name string) Material {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.Contains(name, ":") {
		name = "minecraft:" + name
	}
	return Material(name)
}

// Known checks if the material names an existing block.
func Known(m Material) bool {
	_, ok := world.BlockByName(string(m), nil)
	return ok
}

// RuntimeID returns the network runtime ID of the block the material names. If the material is not
// known, the runtime ID of air is returned with false.
func RuntimeID(m Material) (uint32, bool) {
	b, ok := world.BlockByName(string(m), nil)
	if !ok {
		return 0, false
	}
	return world.BlockRuntimeID(b), true
}
