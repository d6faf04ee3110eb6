package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// HexColor parses the #rgb, #rrggbb and #rrggbbaa notations. The leading
// hash is optional.
func HexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
