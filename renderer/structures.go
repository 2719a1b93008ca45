// Package renderer turns a solidify.SkeletalScene into a RenderedScene:
// a concrete RGBA image for every sprite, frame-by-frame, with variants
// applied in image space.
package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/balt-dev/chilly/arguments"
	"github.com/balt-dev/chilly/parser"
)

// RenderedScene is the fully rendered output of one scene: a background
// color, pixel dimensions, whether it loops, and one SceneFrame per time
// index.
type RenderedScene struct {
	Background color.RGBA
	Width      int
	Height     int
	Loops      bool
	Frames     []SceneFrame
	Flags      map[arguments.FlagName]arguments.Flag
}

// SceneFrame is every sprite visible at one time index, plus the duration
// (in outer animation ticks) that frame is held for.
type SceneFrame struct {
	Length  int
	Sprites []Sprite
}

// Sprite is one rendered tile: its draw scale, unique stacking order
// within its frame, pixel position, and composited image.
type Sprite struct {
	Size   float32
	ZOrder int
	X, Y   int
	Image  *image.RGBA
}

// SpriteFailedOpenError reports a failure opening or decoding a tile's
// sprite file. A missing primary-frame file is retried against the
// fallback frame first; a missing fallback file is reported here.
type SpriteFailedOpenError struct {
	Span  parser.Span
	Cause error
}

func (e *SpriteFailedOpenError) Error() string {
	return fmt.Sprintf("failed to open sprite files for this tile: %s", e.Cause)
}

func (e *SpriteFailedOpenError) Unwrap() error { return e.Cause }

// NoPaletteError reports that no PNG matching the requested palette name
// was found under the asset root.
type NoPaletteError struct {
	Name string
}

func (e *NoPaletteError) Error() string {
	return fmt.Sprintf("no palette named %q was found", e.Name)
}

// InvalidFlagError reports a flag whose argument values fail a
// renderer-level constraint (e.g. an out-of-range wobble index).
type InvalidFlagError struct {
	Flag   arguments.FlagName
	Reason string
}

func (e *InvalidFlagError) Error() string {
	return fmt.Sprintf("flag %s is invalid: %s", e.Flag, e.Reason)
}

// SpriteNoTileError reports a Generative tile with no way to synthesize
// a sprite for its text.
type SpriteNoTileError struct {
	Span parser.Span
	Text string
}

func (e *SpriteNoTileError) Error() string {
	return fmt.Sprintf("no tile exists to render the text %q", e.Text)
}

// InvalidVariantError reports a residual variant whose arguments fail a
// renderer-level constraint (e.g. a zero Meta size).
type InvalidVariantError struct {
	Span   parser.Span
	Reason string
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("variant is invalid: %s", e.Reason)
}
