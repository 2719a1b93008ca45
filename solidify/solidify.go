// Package solidify turns a parser.RawScene into a SkeletalScene: every
// tile's name is canonicalized, its frame-setting variants are folded
// into a concrete animation frame, and it's resolved against a
// database.Database into either an Existing or Generative skeleton.
package solidify

import (
	"math/rand/v2"
	"sort"

	"github.com/balt-dev/chilly"
	"github.com/balt-dev/chilly/arguments"
	"github.com/balt-dev/chilly/database"
	"github.com/balt-dev/chilly/parser"
)

// TileDefault selects which tag-less tiles get canonicalized as.
type TileDefault int

const (
	DefaultTile TileDefault = iota
	DefaultText
	DefaultGlyph
)

const (
	animRight uint8 = 0
	animUp    uint8 = 8
	animLeft  uint8 = 16
	animDown  uint8 = 24
)

// TileData is either a resolved database entry (Existing) or a bare name
// with no matching entry (Generative). The renderer has no sprite for a
// Generative tile and rejects it with a SpriteNoTileError.
type TileData interface {
	isTileData()
}

// Existing wraps a tile whose canonical name matched a database entry.
type Existing struct {
	Data database.TileData
}

func (Existing) isTileData() {}

// Generative names a tile with no database entry.
type Generative struct {
	Name string
}

func (Generative) isTileData() {}

// TileSkeleton is a tile after name canonicalization, frame-variant
// folding, and database resolution, still carrying its residual variants
// and source span for rendering and diagnostics.
type TileSkeleton struct {
	Data           TileData
	AnimationFrame [2]uint8 // primary, fallback
	Variants       []arguments.Variant
	Span           parser.Span
}

// SkeletalScene is a RawScene with every tile resolved to a TileSkeleton.
type SkeletalScene struct {
	Map     chilly.ObjectMap[TileSkeleton]
	Letters bool
	Flags   map[arguments.FlagName]arguments.Flag
}

// Solidify resolves scene against db, canonicalizing names under default
// and replacing any literal "2" tile with a random pick from the
// intersection of easterEggTiles and db, if both are non-empty.
func Solidify(scene *parser.RawScene, db *database.Database, def TileDefault, easterEggTiles map[string]struct{}) *SkeletalScene {
	flags := make(map[arguments.FlagName]arguments.Flag, len(scene.Flags))
	for k, v := range scene.Flags {
		flags[k] = v
	}
	connectCorners := popFlag(flags, arguments.FlagConnectBorders)
	letters := popFlag(flags, arguments.FlagUseLetters)

	out := &SkeletalScene{
		Map: chilly.ObjectMap[TileSkeleton]{
			Width:  scene.Map.Width,
			Height: scene.Map.Height,
			Length: scene.Map.Length,
			Cells:  make(map[chilly.Position]TileSkeleton, len(scene.Map.Cells)),
		},
		Letters: letters,
		Flags:   flags,
	}

	names := make(map[chilly.Position]string, len(scene.Map.Cells))
	for pos, tile := range scene.Map.Cells {
		names[pos] = canonicalize(tile, def)
	}

	var easterEggCandidates []string
	for name := range easterEggTiles {
		if _, ok := db.Get(name); ok {
			easterEggCandidates = append(easterEggCandidates, name)
		}
	}
	sort.Strings(easterEggCandidates) // deterministic ordering before each random pick

	for pos, tile := range scene.Map.Cells {
		name := names[pos]
		animFrame, residual := foldFrameVariants(tile.Variants)

		// Every "2" tile gets its own independent random pick.
		if name == "2" && len(easterEggCandidates) > 0 {
			name = easterEggCandidates[rand.N(len(easterEggCandidates))]
		}

		data, ok := db.Get(name)
		if !ok {
			out.Map.Cells[pos] = TileSkeleton{
				Data:           Generative{Name: name},
				AnimationFrame: animFrame.orDefault(),
				Variants:       residual,
				Span:           tile.Span,
			}
			continue
		}

		frame := animFrame
		if !frame.set && data.Tiling == database.TilingAutoTiled {
			mask := neighborsOf(names, pos, out.Map.Width, out.Map.Height, connectCorners)
			primary, fallback := mask.intoFrames()
			frame = animPair{set: true, primary: primary, fallback: fallback}
		}

		out.Map.Cells[pos] = TileSkeleton{
			Data:           Existing{Data: data},
			AnimationFrame: frame.orDefault(),
			Variants:       residual,
			Span:           tile.Span,
		}
	}

	return out
}

func popFlag(flags map[arguments.FlagName]arguments.Flag, name arguments.FlagName) bool {
	_, ok := flags[name]
	delete(flags, name)
	return ok
}

// canonicalize applies the (tag, default) name transform.
func canonicalize(tile parser.RawTile, def TileDefault) string {
	switch {
	case tile.Tag != nil && *tile.Tag == parser.TagText && def == DefaultText:
		return stripPrefix(tile.Name, "text_")
	case (tile.Tag != nil && *tile.Tag == parser.TagText) || (tile.Tag == nil && def == DefaultText):
		return "text_" + tile.Name
	case tile.Tag != nil && *tile.Tag == parser.TagGlyph && def == DefaultGlyph:
		return stripPrefix(tile.Name, "glyph_")
	case (tile.Tag != nil && *tile.Tag == parser.TagGlyph) || (tile.Tag == nil && def == DefaultGlyph):
		return "glyph_" + tile.Name
	default:
		return tile.Name
	}
}

func stripPrefix(s, prefix string) string {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}

// animPair is an animation frame (primary, fallback) that may or may not
// have been set yet by a variant fold.
type animPair struct {
	set      bool
	primary  uint8
	fallback uint8
}

func (a animPair) orDefault() [2]uint8 {
	return [2]uint8{a.primary, a.fallback}
}

// foldFrameVariants consumes every variant that sets the animation frame,
// returning the resulting frame pair (if any were seen) and the remaining
// variants untouched.
func foldFrameVariants(variants []arguments.Variant) (animPair, []arguments.Variant) {
	var frame animPair
	residual := make([]arguments.Variant, 0, len(variants))
	for _, v := range variants {
		switch vv := v.(type) {
		case arguments.AnimationFrameVariant:
			frame = animPair{set: true, primary: vv.Frame, fallback: vv.Frame}
		case arguments.LeftVariant:
			frame = animPair{set: true, primary: animLeft, fallback: animLeft}
		case arguments.UpVariant:
			frame = animPair{set: true, primary: animUp, fallback: animUp}
		case arguments.DownVariant:
			frame = animPair{set: true, primary: animDown, fallback: animDown}
		case arguments.RightVariant:
			frame = animPair{set: true, primary: animRight, fallback: animRight}
		case arguments.SleepVariant:
			cur := frame.primary // zero value if unset, matching the wrapping-subtract-from-0 case
			sleepFrame := (int(cur) - 1) % 32
			if sleepFrame < 0 { // Go's % keeps the dividend's sign; wrap into [0, 32)
				sleepFrame += 32
			}
			frame = animPair{set: true, primary: uint8(sleepFrame), fallback: cur}
		case arguments.AnimationVariant:
			cur := frame.primary
			next := cur + vv.Cycle
			frame = animPair{set: true, primary: next, fallback: next}
		case arguments.TilingVariant:
			var mask neighborMask
			for _, dir := range vv.Directions {
				mask |= maskForDirection(dir)
			}
			primary, fallback := mask.intoFrames()
			frame = animPair{set: true, primary: primary, fallback: fallback}
		default:
			residual = append(residual, v)
		}
	}
	return frame, residual
}

func maskForDirection(d arguments.TilingDirection) neighborMask {
	switch d {
	case arguments.DirUp:
		return maskUp
	case arguments.DirDown:
		return maskDown
	case arguments.DirLeft:
		return maskLeft
	case arguments.DirRight:
		return maskRight
	case arguments.DirUpRight:
		return maskUpRight
	case arguments.DirUpLeft:
		return maskUpLeft
	case arguments.DirDownLeft:
		return maskDownLeft
	case arguments.DirDownRight:
		return maskDownRight
	default:
		return 0
	}
}

// neighborsOf derives the neighbor mask for pos from the spatial grid of
// canonical names, treating positions outside the width x height grid as
// present neighbors when connectCorners is set.
func neighborsOf(names map[chilly.Position]string, pos chilly.Position, width, height int, connectCorners bool) neighborMask {
	self, ok := names[pos]
	if !ok {
		return 0
	}
	var mask neighborMask
	check := func(dx, dy int, bit neighborMask) {
		x, y := pos.X+dx, pos.Y+dy
		if x < 0 || y < 0 || x >= width || y >= height {
			if connectCorners {
				mask |= bit
			}
			return
		}
		neighborPos := chilly.Position{X: x, Y: y, Z: pos.Z, T: pos.T}
		if name, ok := names[neighborPos]; ok && name == self {
			mask |= bit
		}
	}
	check(1, 0, maskRight)
	check(0, -1, maskUp)
	check(-1, 0, maskLeft)
	check(0, 1, maskDown)
	check(1, -1, maskUpRight)
	check(-1, -1, maskUpLeft)
	check(-1, 1, maskDownLeft)
	check(1, 1, maskDownRight)
	return mask
}
