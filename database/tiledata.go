package database

// Coord is an (x, y) byte pair used for the various optional grid
// coordinates a TileData can carry.
type Coord struct {
	X, Y uint8
}

// TagSet is an insertion-ordered set of tag strings. Ingest merges
// (vanilla scrape union, custom-world overrides) preserve first-seen
// order rather than sorting, matching the source's iteration order over
// a Vec-backed set.
type TagSet struct {
	order []string
	seen  map[string]struct{}
}

// NewTagSet builds a TagSet from zero or more tags, in order, deduping
// repeats.
func NewTagSet(tags ...string) TagSet {
	s := TagSet{seen: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// Add appends tag to the set if not already present.
func (s *TagSet) Add(tag string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[tag]; ok {
		return
	}
	s.seen[tag] = struct{}{}
	s.order = append(s.order, tag)
}

// Union appends every tag of other not already present, in other's order.
func (s *TagSet) Union(other TagSet) {
	for _, t := range other.order {
		s.Add(t)
	}
}

// Tags returns the set's members in insertion order.
func (s TagSet) Tags() []string {
	return s.order
}

// Has reports whether tag is a member.
func (s TagSet) Has(tag string) bool {
	_, ok := s.seen[tag]
	return ok
}

// TileData holds everything the database knows about one named tile.
type TileData struct {
	Color     Color
	Sprite    string
	Directory string
	Tiling    Tiling
	Author    string
	// TileIndex is the tile's index into the original game's internal
	// tile grid, when known.
	TileIndex *Coord
	// GridIndex is the tile's position in the editor's object grid, when
	// known. Carried separately from TileIndex per the latest structures
	// draft, which splits the two out instead of conflating them.
	GridIndex *Coord
	// ObjectID is the tile's internal object identifier in the original
	// game (e.g. "object19"), when known.
	ObjectID *string
	// Layer is the tile's z-layer, used only by level data, when known.
	Layer *uint8
	// Tags is the set of tags the tile was scraped or declared with.
	Tags TagSet
}

// DefaultTileData returns the TileData a tile gets before any field is
// filled in by an ingester: an error-placeholder sprite in the vanilla
// directory, no tiling, authored by Hempuli (the original game's author,
// the default for vanilla-scraped entries).
func DefaultTileData() TileData {
	return TileData{
		Color:     DefaultColor(),
		Sprite:    "error",
		Directory: "vanilla",
		Tiling:    TilingNone,
		Author:    "Hempuli",
	}
}
