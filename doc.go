// Package chilly renders short four-dimensional tile scenes — a 2D grid
// animated across Z layers and time — into layered sprite frames for a
// sokoban-like tile game.
//
// Callers submit a compact textual scene description; chilly parses it,
// resolves each tile against a [github.com/balt-dev/chilly/database.Database]
// of sprite metadata, applies per-tile transforms ("variants") and
// scene-level options ("flags"), and emits an ordered list of sprite draws
// per animation frame.
//
// # Quick start
//
// The simplest way to get a rendered scene is [Render], which wires the
// parser, solidifier, and renderer together for the common case:
//
//	db := database.New()
//	if err := db.LoadCustom("assets/worlds"); err != nil {
//		log.Fatal(err)
//	}
//
//	rendered, err := chilly.Render(source, db, chilly.Options{
//		AssetRoot: "assets",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, frame := range rendered.Frames {
//		// composite frame.Sprites into a PNG, elsewhere
//	}
//
// For finer control over each pipeline stage, call the parser, solidify,
// and renderer packages directly.
//
// # Pipeline stages
//
// The five stages run in dependency order: database has no internal
// dependencies and is populated ahead of time; arguments declares the typed
// variant/flag registry; parser turns scene text into a RawScene;
// solidify attaches database metadata and computes animation frames,
// producing a SkeletalScene; renderer resolves sprite paths through a
// caching image loader and emits the final RenderedScene.
//
// # Debug logging
//
// [SetDebug] toggles [chilly]-prefixed logging to stderr for this package.
// The ingest and render stages do not log, so enabling it adds no ingest
// or render warnings.
package chilly
