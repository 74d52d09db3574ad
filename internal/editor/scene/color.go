package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/primforge/pkg/math"
)

// Color is a linear RGB triple in [0, 1].
type Color struct {
	R, G, B float32
}

// DefaultColorHex is the colour given to new instances.
const DefaultColorHex = "#ff5533"

// DefaultColor is DefaultColorHex parsed.
var DefaultColor = Color{R: 1, G: 0x55 / 255.0, B: 0x33 / 255.0}

// ParseColor parses "#rrggbb" (the leading # is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: float32(v>>16&0xff) / 255,
		G: float32(v>>8&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// Highlight returns the brightened tint used to draw the selected instance.
func (c Color) Highlight() Color {
	lift := func(v float32) float32 { return math.Clamp(v*1.25+0.05, 0, 1) }
	return Color{R: lift(c.R), G: lift(c.G), B: lift(c.B)}
}

// Array returns the components as an array (for uniform upload).
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

func channel(v float32) uint8 {
	return uint8(math.Clamp(v, 0, 1)*255 + 0.5)
}
