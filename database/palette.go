package database

import (
	"fmt"
	"image"
	"image/color"
)

// ResolveRGBA resolves c into a concrete color: an RGB color converts
// directly, a Paletted color samples (X, Y) out of the loaded palette
// image.
func ResolveRGBA(c Color, palette image.Image) (color.RGBA, error) {
	switch v := c.(type) {
	case RGB:
		return color.RGBA{R: v.R, G: v.G, B: v.B, A: 0xFF}, nil
	case Paletted:
		bounds := palette.Bounds()
		x, y := bounds.Min.X+int(v.X), bounds.Min.Y+int(v.Y)
		if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
			return color.RGBA{}, fmt.Errorf("palette coordinate (%d, %d) is out of bounds", v.X, v.Y)
		}
		r, g, b, a := palette.At(x, y).RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}, nil
	default:
		return color.RGBA{}, fmt.Errorf("unrecognized color type %T", c)
	}
}
