package parser

import (
	"strings"

	"github.com/balt-dev/chilly"
	"github.com/balt-dev/chilly/arguments"
)

// Parse parses scene source text into a RawScene.
func Parse(source string) (*RawScene, error) {
	lines := strings.Split(source, "\n")
	lineOffsets := make([]int, len(lines))
	off := 0
	for i, l := range lines {
		lineOffsets[i] = off
		off += len(l) + 1
	}

	flags := make(map[arguments.FlagName]arguments.Flag)
	tilemapStart := len(lines)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "-") {
			tilemapStart = i
			break
		}
		if err := parseFlagLine(trimmed, lineOffsets[i]+indexOf(line, trimmed), flags); err != nil {
			return nil, err
		}
	}

	m := chilly.NewObjectMap[RawTile]()
	lastTile := make(map[[3]int]*RawTile) // keyed by (x, y, z); tracks the carry within an animation strip
	stripEnd := make(map[[3]int]int)      // last t index each strip actually listed a cell for

	for rowIdx := tilemapStart; rowIdx < len(lines); rowIdx++ {
		row := lines[rowIdx]
		if strings.TrimSpace(row) == "" {
			continue
		}
		y := rowIdx - tilemapStart
		rowOffset := lineOffsets[rowIdx]
		for x, stackTok := range splitUnescaped(row, ' ') {
			if stackTok.Text == "" {
				continue
			}
			stackOffset := rowOffset + stackTok.Start
			for z, animTok := range splitUnescaped(stackTok.Text, '&') {
				animOffset := stackOffset + animTok.Start
				key := [3]int{x, y, z}
				for t, cellTok := range splitUnescaped(animTok.Text, '>') {
					cellOffset := animOffset + cellTok.Start
					tile, produced, err := parseCell(cellTok.Text, cellOffset, lastTile[key])
					if err != nil {
						return nil, err
					}
					stripEnd[key] = t
					if !produced {
						delete(lastTile, key)
						continue
					}
					pos := chilly.Position{X: x, Y: y, Z: z, T: t}
					m.Cells[pos] = *tile
					if x+1 > m.Width {
						m.Width = x + 1
					}
					if y+1 > m.Height {
						m.Height = y + 1
					}
					if t+1 > m.Length {
						m.Length = t + 1
					}
					lastTile[key] = tile
				}
			}
		}
	}

	// Pad every strip that fell short of the scene's overall length by
	// carrying its last tile forward, advancing t without changing frame.
	for key, endT := range stripEnd {
		tile, ok := lastTile[key]
		if !ok {
			continue
		}
		for t := endT + 1; t < m.Length; t++ {
			pos := chilly.Position{X: key[0], Y: key[1], Z: key[2], T: t}
			m.Cells[pos] = *tile
		}
	}

	return &RawScene{Map: m, Flags: flags}, nil
}

// indexOf finds the byte offset of needle within haystack, returning 0
// if not found (used only to locate an already-trimmed line's content
// inside its untrimmed original).
func indexOf(haystack, needle string) int {
	if i := strings.Index(haystack, needle); i >= 0 {
		return i
	}
	return 0
}

// parseFlagLine parses every whitespace-separated flag token on one
// flags-section line.
func parseFlagLine(line string, lineOffset int, flags map[arguments.FlagName]arguments.Flag) error {
	for _, tok := range splitUnescaped(line, ' ') {
		if tok.Text == "" {
			continue
		}
		if err := parseFlagToken(tok.Text, lineOffset+tok.Start, flags); err != nil {
			return err
		}
	}
	return nil
}

func parseFlagToken(tok string, offset int, flags map[arguments.FlagName]arguments.Flag) error {
	rest := tok
	if strings.HasPrefix(rest, "--") {
		rest = rest[2:]
	} else if strings.HasPrefix(rest, "-") {
		rest = rest[1:]
	}

	namePart := rest
	var argsPart string
	hasArgs := false
	if i := strings.IndexByte(rest, '='); i >= 0 {
		namePart = rest[:i]
		argsPart = rest[i+1:]
		hasArgs = true
	}

	name, ok := arguments.FlagNameFromAlias(unescape(namePart))
	if !ok {
		return &ParseError{
			Span:  Span{Start: offset, End: offset + len(tok)},
			Cause: &arguments.NonExistentNameError{Kind: "flag", Name: namePart},
		}
	}

	var argTokens []string
	if hasArgs {
		for _, t := range splitUnescaped(argsPart, ',') {
			argTokens = append(argTokens, unescape(t.Text))
		}
	}

	flag, err := arguments.ParseFlag(name, argTokens)
	if err != nil {
		return &ParseError{Span: Span{Start: offset, End: offset + len(tok)}, Cause: err}
	}
	flags[name] = flag
	return nil
}

// parseCell resolves one cell's object and variant tokens into a tile,
// applying the empty-cell and variant-carry rules. produced is false
// when the cell is empty (explicitly or with no predecessor to carry).
func parseCell(cell string, offset int, prev *RawTile) (*RawTile, bool, error) {
	parts := splitUnescaped(cell, ':')
	objectTok := parts[0]
	object := objectTok.Text

	var tag *TileTag
	name := object
	if strings.HasPrefix(object, "$") {
		t := TagText
		tag = &t
		name = object[1:]
	} else if strings.HasPrefix(object, "#") {
		t := TagGlyph
		tag = &t
		name = object[1:]
	}
	name = unescape(name)

	implicit := name == ""
	explicit := name == "."

	if explicit {
		return nil, false, nil
	}
	if implicit {
		if prev == nil {
			return nil, false, nil
		}
		name = prev.Name
		tag = prev.Tag
	}

	var variants []arguments.Variant
	if len(parts) > 1 {
		variants = make([]arguments.Variant, 0, len(parts)-1)
		for _, vtok := range parts[1:] {
			vOffset := offset + vtok.Start
			v, err := parseVariantToken(vtok.Text, vOffset)
			if err != nil {
				return nil, false, err
			}
			variants = append(variants, v)
		}
	} else if implicit && prev != nil {
		variants = prev.Variants
	}

	span := Span{Start: offset, End: offset + len(objectTok.Text)}
	return &RawTile{Name: name, Tag: tag, Variants: variants, Span: span}, true, nil
}

func parseVariantToken(tok string, offset int) (arguments.Variant, error) {
	argParts := splitUnescaped(tok, '/')
	alias := unescape(argParts[0].Text)

	if len(argParts) == 1 {
		if v, ok := arguments.CollapseVariantAlias(alias); ok {
			return v, nil
		}
	}

	name, ok := arguments.VariantNameFromAlias(alias)
	if !ok {
		if v, ok := arguments.CollapseVariantAlias(alias); ok {
			return v, nil
		}
		return nil, &ParseError{
			Span:  Span{Start: offset, End: offset + len(argParts[0].Text)},
			Cause: &arguments.NonExistentNameError{Kind: "variant", Name: alias},
		}
	}

	args := make([]string, 0, len(argParts)-1)
	for _, a := range argParts[1:] {
		args = append(args, unescape(a.Text))
	}

	v, err := arguments.ParseVariant(name, args)
	if err != nil {
		span := Span{Start: offset, End: offset + len(tok)}
		if aerr, ok := err.(*arguments.ArgumentError); ok {
			argIdx := aerr.Index + 1 // +1 to skip the alias slot in argParts
			if argIdx >= 0 && argIdx < len(argParts) {
				bad := argParts[argIdx]
				span = Span{Start: offset + bad.Start, End: offset + bad.Start + len(bad.Text)}
			}
		}
		return nil, &ParseError{Span: span, Cause: err}
	}
	return v, nil
}
