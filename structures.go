package chilly

import "sort"

// Object marks a type as usable as the element of an [ObjectMap]. It
// carries no methods; it exists only for documentation parity with the
// sum-type-per-case object kinds the pipeline passes between stages
// (RawTile, TileSkeleton, ...).
type Object interface{}

// Position is a four-dimensional coordinate (x, y, z, t) in tile units:
// x/y locate a cell in the 2D grid, z is the stacking layer, and t is the
// animation time index.
//
// Positions order lexicographically by (z, y, x, t): this is the emit
// order for rendering — bottom layer first, reading order, earliest frame
// first.
type Position struct {
	X, Y, Z, T int
}

// Compare orders p before, equal to, or after other by (z, y, x, t),
// returning a negative, zero, or positive int respectively.
func (p Position) Compare(other Position) int {
	if p.Z != other.Z {
		return p.Z - other.Z
	}
	if p.Y != other.Y {
		return p.Y - other.Y
	}
	if p.X != other.X {
		return p.X - other.X
	}
	return p.T - other.T
}

// Less reports whether p sorts before other under Compare.
func (p Position) Less(other Position) bool {
	return p.Compare(other) < 0
}

// ObjectMap is a sparse 4D grid of objects keyed by Position. Width,
// Height, and Length are the exclusive maxima over the x/y/t coordinates
// observed in Cells, plus one; Z has no declared bound and is implicit in
// the map.
type ObjectMap[O Object] struct {
	Width, Height, Length int
	Cells                 map[Position]O
}

// NewObjectMap returns an empty ObjectMap ready for insertion.
func NewObjectMap[O Object]() ObjectMap[O] {
	return ObjectMap[O]{Cells: make(map[Position]O)}
}

// Positions returns the map's keys sorted by Position.Compare, the emit
// order used throughout the pipeline.
func (m ObjectMap[O]) Positions() []Position {
	out := make([]Position, 0, len(m.Cells))
	for pos := range m.Cells {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
