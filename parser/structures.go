// Package parser turns scene source text into a RawScene: a tilemap of
// unparsed tiles plus the scene's flag map, with every tile carrying the
// source span its name was read from for later diagnostics.
package parser

import (
	"github.com/balt-dev/chilly"
	"github.com/balt-dev/chilly/arguments"
)

// Span is a byte-offset range into the original scene source.
type Span struct {
	Start, End int
}

// TileTag transforms a tile's canonical name during solidification.
type TileTag int

const (
	TagText TileTag = iota
	TagGlyph
)

// RawTile is a tile as parsed, before variant aliases are folded into
// animation state or the name is resolved against a Database.
type RawTile struct {
	Name     string
	Tag      *TileTag
	Variants []arguments.Variant
	Span     Span
}

// RawScene is the direct result of parsing scene source text: a tilemap
// of RawTile plus the scene's accumulated flags.
type RawScene struct {
	Map   chilly.ObjectMap[RawTile]
	Flags map[arguments.FlagName]arguments.Flag
}
