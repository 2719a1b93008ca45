// Package database holds the in-memory tile metadata catalog and the two
// ingesters (custom-world TOML, vanilla script scrape) that populate it.
package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a tile's color, either a coordinate into the global palette
// image or a direct RGB triple. It's a sealed interface (one concrete
// type per case, in the style of go/ast.Expr) rather than a tagged
// struct, since the two cases carry disjoint fields.
type Color interface {
	isColor()
}

// Paletted selects a pixel at (X, Y) in the loaded palette image.
type Paletted struct {
	X, Y uint8
}

func (Paletted) isColor() {}

// RGB is a color specified directly, bypassing the palette.
type RGB struct {
	R, G, B uint8
}

func (RGB) isColor() {}

// DefaultColor is the color a tile gets when none is specified: palette
// coordinate (0, 3).
func DefaultColor() Color {
	return Paletted{X: 0, Y: 3}
}

// namedColors is the closed set of recognized color names. Paletted
// coordinates are copied from the original game's palette layout; RGB
// values mark holdovers from an earlier standalone renderer ("RIC").
var namedColors = map[string]Color{
	// Custom color names
	"maroon": Paletted{X: 2, Y: 1},
	"gold":   Paletted{X: 6, Y: 2},
	"teal":   Paletted{X: 1, Y: 2},
	// Vanilla color names
	"red":    Paletted{X: 2, Y: 2},
	"orange": Paletted{X: 2, Y: 3},
	"yellow": Paletted{X: 2, Y: 4},
	"lime":   Paletted{X: 5, Y: 3},
	"green":  Paletted{X: 5, Y: 2},
	"cyan":   Paletted{X: 1, Y: 4},
	"blue":   Paletted{X: 3, Y: 2},
	"purple": Paletted{X: 3, Y: 1},
	"pink":   Paletted{X: 4, Y: 1},
	"rosy":   Paletted{X: 4, Y: 2},
	"grey":   Paletted{X: 0, Y: 1},
	"gray":   Paletted{X: 0, Y: 1},
	"black":  Paletted{X: 0, Y: 4},
	"silver": Paletted{X: 0, Y: 2},
	"white":  Paletted{X: 0, Y: 3},
	"brown":  Paletted{X: 6, Y: 1},
	// Holdover from RIC
	"darkpink": RGB{R: 0x80, G: 0x00, B: 0x3B},
}

// ColorError reports why a color string failed to parse.
type ColorError struct {
	// Reason is a short human-readable cause: a wrong-length or non-hex
	// RGB string, or "invalid name".
	Reason string
	// Value is the offending input, set only for an invalid name.
	Value string
}

func (e *ColorError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s is not a valid color name", e.Value)
	}
	return e.Reason
}

// ParseColor parses a color from "#RRGGBB" (case-insensitive) or from one
// of the closed set of recognized color names.
func ParseColor(v string) (Color, error) {
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) != 6 {
			return nil, &ColorError{Reason: "RGB color string must be exactly 7 characters long"}
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, &ColorError{Reason: "RGB color string must be in base 16"}
		}
		return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
	}
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	return nil, &ColorError{Reason: "invalid name", Value: v}
}

// ColorString renders a Color the way the original game's debug output does:
// "(x, y)" for paletted colors, "#RRGGBB" for RGB.
func ColorString(c Color) string {
	switch v := c.(type) {
	case Paletted:
		return fmt.Sprintf("(%d, %d)", v.X, v.Y)
	case RGB:
		return fmt.Sprintf("#%02X%02X%02X", v.R, v.G, v.B)
	default:
		return "<invalid color>"
	}
}
