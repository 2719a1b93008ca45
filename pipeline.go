package chilly

import (
	"fmt"

	"github.com/balt-dev/chilly/database"
	"github.com/balt-dev/chilly/parser"
	"github.com/balt-dev/chilly/renderer"
	"github.com/balt-dev/chilly/solidify"
)

// Options configures [Render]'s pipeline wiring. The zero value renders
// tag-less tiles as plain tiles, treats no name as an easter-egg
// candidate, and uses an unbounded image cache.
type Options struct {
	// AssetRoot is the directory sprite and palette images are read from.
	AssetRoot string

	// Default selects which tag-less tiles canonicalize as (plain tile,
	// text, or glyph). Zero value is solidify.DefaultTile.
	Default solidify.TileDefault

	// EasterEggTiles is the pool a literal "2" tile may be replaced with,
	// intersected against db at render time. Nil or empty disables the
	// easter egg.
	EasterEggTiles map[string]struct{}

	// Cache holds decoded sprite and palette images across renders. A nil
	// Cache gets a fresh renderer.MapCache for this call only.
	Cache renderer.ImageCache
}

// Render parses source, resolves it against db, and renders the result,
// wiring the parser, solidify, and renderer packages together for the
// common case. Callers needing finer control (e.g. inspecting the
// intermediate SkeletalScene) should call those packages directly.
func Render(source string, db *database.Database, opts Options) (*renderer.RenderedScene, error) {
	raw, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}

	skeleton := solidify.Solidify(raw, db, opts.Default, opts.EasterEggTiles)

	cache := opts.Cache
	if cache == nil {
		cache = renderer.NewMapCache()
	}

	scene, err := renderer.Render(skeleton, opts.AssetRoot, cache)
	if err != nil {
		return nil, fmt.Errorf("rendering scene: %w", err)
	}
	return scene, nil
}
