package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// tomlTileData mirrors the on-disk shape of one entry in a custom
// world's sprites.toml. Color is represented as a 2-or-3-element array
// (palette coordinate or RGB triple), matching the original database's
// custom seq-based (de)serialization for Color.
type tomlTileData struct {
	Color     []int  `toml:"color"`
	Sprite    string `toml:"sprite"`
	Tiling    int8   `toml:"tiling"`
	Author    string `toml:"author"`
	TileIndex []int  `toml:"tile_index"`
	GridIndex []int  `toml:"grid_index"`
	ObjectID  string `toml:"object_id"`
	Layer     *uint8 `toml:"layer"`
	Tags      []string `toml:"tags"`
}

// LoadCustom walks the subdirectories of root; each subdirectory is a
// "world" and, if it contains a sprites.toml, is merged into the
// database with Directory set to the subdirectory's final path segment.
func (d *Database) LoadCustom(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return &LoadError{Op: fmt.Sprintf("read custom asset root %s", root), Cause: err}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := d.loadCustomWorld(filepath.Join(root, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// loadCustomWorld loads a single world directory's sprites.toml, if
// present. A world directory with no sprites.toml contributes nothing
// (it may hold only sprites/palette assets referenced by the vanilla
// scrape's Directory field, e.g. "vanilla" itself).
func (d *Database) loadCustomWorld(dir string) error {
	spritesPath := filepath.Join(dir, "sprites.toml")
	if _, err := os.Stat(spritesPath); os.IsNotExist(err) {
		return nil
	}

	var decoded map[string]tomlTileData
	if _, err := toml.DecodeFile(spritesPath, &decoded); err != nil {
		return &LoadError{Op: fmt.Sprintf("decode %s", spritesPath), Cause: err}
	}

	world := filepath.Base(dir)
	for name, raw := range decoded {
		td, err := raw.toTileData(world, name)
		if err != nil {
			return err
		}
		d.Set(name, td)
	}
	return nil
}

func (raw tomlTileData) toTileData(world, name string) (TileData, error) {
	td := DefaultTileData()
	td.Directory = world

	if raw.Color != nil {
		c, err := colorFromInts(raw.Color)
		if err != nil {
			return TileData{}, &InvalidFieldError{Role: "no color", Name: name, Value: fmt.Sprint(raw.Color)}
		}
		td.Color = c
	}
	if raw.Sprite != "" {
		td.Sprite = raw.Sprite
	} else {
		td.Sprite = name
	}
	td.Tiling = Tiling(raw.Tiling)
	if raw.Author != "" {
		td.Author = raw.Author
	}
	if coord, ok := coordFromInts(raw.TileIndex); ok {
		td.TileIndex = &coord
	}
	if coord, ok := coordFromInts(raw.GridIndex); ok {
		td.GridIndex = &coord
	}
	if raw.ObjectID != "" {
		id := raw.ObjectID
		td.ObjectID = &id
	}
	td.Layer = raw.Layer
	td.Tags = NewTagSet(raw.Tags...)
	return td, nil
}

func colorFromInts(vals []int) (Color, error) {
	switch len(vals) {
	case 2:
		return Paletted{X: uint8(vals[0]), Y: uint8(vals[1])}, nil
	case 3:
		return RGB{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2])}, nil
	default:
		return nil, fmt.Errorf("color array has wrong number of elements (expected 2 or 3, got %d)", len(vals))
	}
}

func coordFromInts(vals []int) (Coord, bool) {
	if len(vals) != 2 {
		return Coord{}, false
	}
	return Coord{X: uint8(vals[0]), Y: uint8(vals[1])}, true
}
