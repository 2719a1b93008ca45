package database

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const valuesListMarker = "tileslist =\n{\n\t"
const valuesObjectPattern = `(?s)(\w+) =\n\t\{\s+(.+?\n)\t\},`
const valuesFieldPattern = `(\w+) = (.+?),\n`

const objlistMarker = "editor_objlist = {\n\t"
const objlistObjectPattern = `(?s)\[\d+?\] = \{(.+?)\t\},`

var (
	valuesObjectRe = regexp.MustCompile(valuesObjectPattern)
	valuesFieldRe  = regexp.MustCompile(valuesFieldPattern)
	objlistObjectRe = regexp.MustCompile(objlistObjectPattern)
)

// LoadVanilla scrapes the original game's Data/values.lua and
// Data/Editor/editor_objectlist.lua under root and merges the result
// into the database, each entry's Directory set to "vanilla".
func (d *Database) LoadVanilla(root string) error {
	valuesPath := filepath.Join(root, "Data", "values.lua")
	objlistPath := filepath.Join(root, "Data", "Editor", "editor_objectlist.lua")

	valuesSrc, err := os.ReadFile(valuesPath)
	if err != nil {
		return &LoadError{Op: fmt.Sprintf("read %s", valuesPath), Cause: err}
	}
	vanilla, err := scrapeValuesLua(string(valuesSrc), valuesPath)
	if err != nil {
		return err
	}

	objlistSrc, err := os.ReadFile(objlistPath)
	if err != nil {
		return &LoadError{Op: fmt.Sprintf("read %s", objlistPath), Cause: err}
	}
	objlist, err := scrapeObjectListLua(string(objlistSrc), objlistPath)
	if err != nil {
		return err
	}

	for name, entry := range objlist {
		if existing, ok := vanilla[name]; ok {
			vanilla[name] = mergeVanillaEntry(existing, entry)
		} else {
			vanilla[name] = entry
		}
	}

	for name, td := range vanilla {
		td.Directory = "vanilla"
		d.Set(name, td)
	}
	return nil
}

// sliceBlock locates the text between the literal marker and the next
// top-level "\n}" after it, deriving the start offset from the marker's
// own byte length rather than a hardcoded constant (see DESIGN.md: the
// source's own offset comments disagree between revisions).
func sliceBlock(src, marker, path string) (string, error) {
	idx := strings.Index(src, marker)
	if idx == -1 {
		return "", &LoadError{Op: fmt.Sprintf("scrape %s", path), Cause: fmt.Errorf("marker %q not found", marker)}
	}
	start := idx + len(marker)
	rel := strings.Index(src[start:], "\n}")
	if rel == -1 {
		return "", &LoadError{Op: fmt.Sprintf("scrape %s", path), Cause: fmt.Errorf("closing brace after marker %q not found", marker)}
	}
	return src[start : start+rel], nil
}

// parseFields splits a Lua table body into its "key = value" rows.
func parseFields(body string) map[string]string {
	fields := make(map[string]string)
	for _, m := range valuesFieldRe.FindAllStringSubmatch(body, -1) {
		fields[m[1]] = m[2]
	}
	return fields
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseBraceInts parses a Lua literal like "{2, 3}" into its integer
// elements.
func parseBraceInts(s string) ([]int, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, false
	}
	inner := s[1 : len(s)-1]
	if strings.TrimSpace(inner) == "" {
		return []int{}, true
	}
	parts := strings.Split(inner, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// parseBraceStrings parses a Lua literal like `{"a", "b"}` into its
// unquoted string elements.
func parseBraceStrings(s string) ([]string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, false
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return []string{}, true
	}
	parts := strings.Split(inner, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, unquote(p))
	}
	return out, true
}

// tileDataFromFields builds a TileData from a scraped property map,
// applying the required/fallback rules spec'd for values.lua entries.
// objectID is empty for editor-objectlist entries, which carry no id.
func tileDataFromFields(fields map[string]string, objectID string) (string, TileData, bool) {
	rawName, ok := fields["name"]
	if !ok {
		return "", TileData{}, false
	}
	name := unquote(rawName)

	td := DefaultTileData()

	colourField, ok := fields["colour_active"]
	if !ok {
		colourField, ok = fields["colour"]
	}
	if ok {
		if ints, okInts := parseBraceInts(colourField); okInts && len(ints) == 2 {
			td.Color = Paletted{X: uint8(ints[0]), Y: uint8(ints[1])}
		}
	}

	if tilingField, ok := fields["tiling"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(tilingField)); err == nil {
			td.Tiling = Tiling(n)
		}
	}

	if spriteField, ok := fields["sprite"]; ok {
		td.Sprite = unquote(spriteField)
	} else {
		td.Sprite = name
	}

	if authorField, ok := fields["author"]; ok {
		td.Author = unquote(authorField)
	}

	if tileField, ok := fields["tile"]; ok {
		if ints, okInts := parseBraceInts(tileField); okInts && len(ints) == 2 {
			c := Coord{X: uint8(ints[0]), Y: uint8(ints[1])}
			td.TileIndex = &c
		}
	}
	if gridField, ok := fields["grid"]; ok {
		if ints, okInts := parseBraceInts(gridField); okInts && len(ints) == 2 {
			c := Coord{X: uint8(ints[0]), Y: uint8(ints[1])}
			td.GridIndex = &c
		}
	}
	if layerField, ok := fields["layer"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(layerField)); err == nil {
			l := uint8(n)
			td.Layer = &l
		}
	}
	if tagsField, ok := fields["tags"]; ok {
		if tags, okTags := parseBraceStrings(tagsField); okTags {
			td.Tags = NewTagSet(tags...)
		}
	}

	if objectID != "" {
		id := objectID
		td.ObjectID = &id
	}

	return name, td, true
}

func scrapeValuesLua(src, path string) (map[string]TileData, error) {
	block, err := sliceBlock(src, valuesListMarker, path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]TileData)
	for _, m := range valuesObjectRe.FindAllStringSubmatch(block, -1) {
		objectID, body := m[1], m[2]
		fields := parseFields(body)
		if _, skip := fields["does_not_exist"]; skip {
			continue
		}
		name, td, ok := tileDataFromFields(fields, objectID)
		if !ok {
			continue
		}
		out[name] = td
	}
	return out, nil
}

func scrapeObjectListLua(src, path string) (map[string]TileData, error) {
	block, err := sliceBlock(src, objlistMarker, path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]TileData)
	for _, m := range objlistObjectRe.FindAllStringSubmatch(block, -1) {
		fields := parseFields(m[1])
		name, td, ok := tileDataFromFields(fields, "")
		if !ok {
			continue
		}
		out[name] = td
	}
	return out, nil
}

// mergeVanillaEntry folds an editor-objectlist entry into an existing
// values.lua entry: optional scalar fields on the existing entry survive
// if the new entry doesn't carry one; tags are unioned.
func mergeVanillaEntry(existing, incoming TileData) TileData {
	if existing.TileIndex == nil {
		existing.TileIndex = incoming.TileIndex
	}
	if existing.GridIndex == nil {
		existing.GridIndex = incoming.GridIndex
	}
	if existing.ObjectID == nil {
		existing.ObjectID = incoming.ObjectID
	}
	if existing.Layer == nil {
		existing.Layer = incoming.Layer
	}
	existing.Tags.Union(incoming.Tags)
	return existing
}
