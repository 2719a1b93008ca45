package parser

import (
	"testing"

	"github.com/balt-dev/chilly"
	"github.com/balt-dev/chilly/arguments"
	"github.com/balt-dev/chilly/database"
)

func TestParseSingleTile(t *testing.T) {
	scene, err := Parse("baba")
	if err != nil {
		t.Fatal(err)
	}
	if scene.Map.Width != 1 || scene.Map.Height != 1 || scene.Map.Length != 1 {
		t.Fatalf("got width=%d height=%d length=%d", scene.Map.Width, scene.Map.Height, scene.Map.Length)
	}
	tile, ok := scene.Map.Cells[chilly.Position{}]
	if !ok {
		t.Fatal("expected a tile at the origin")
	}
	if tile.Name != "baba" {
		t.Errorf("Name = %q, want baba", tile.Name)
	}
	if tile.Tag != nil {
		t.Errorf("Tag = %v, want nil", tile.Tag)
	}
	if len(tile.Variants) != 0 {
		t.Errorf("Variants = %v, want empty", tile.Variants)
	}
	if len(scene.Flags) != 0 {
		t.Errorf("Flags = %v, want empty", scene.Flags)
	}
}

func TestParseTextTag(t *testing.T) {
	scene, err := Parse("$baba")
	if err != nil {
		t.Fatal(err)
	}
	tile := scene.Map.Cells[chilly.Position{}]
	if tile.Name != "baba" {
		t.Errorf("Name = %q, want baba", tile.Name)
	}
	if tile.Tag == nil || *tile.Tag != TagText {
		t.Errorf("Tag = %v, want Text", tile.Tag)
	}
}

func TestParseGlyphTag(t *testing.T) {
	scene, err := Parse("#baba")
	if err != nil {
		t.Fatal(err)
	}
	tile := scene.Map.Cells[chilly.Position{}]
	if tile.Tag == nil || *tile.Tag != TagGlyph {
		t.Errorf("Tag = %v, want Glyph", tile.Tag)
	}
}

func TestParseFlagsLastWriteWins(t *testing.T) {
	scene, err := Parse("--background=#FFFFFF -let -b=blue\nbaba")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := scene.Flags[arguments.FlagUseLetters]; !ok {
		t.Error("expected UseLetters flag to be set")
	}
	f, ok := scene.Flags[arguments.FlagBackgroundColor]
	if !ok {
		t.Fatal("expected BackgroundColor flag to be set")
	}
	bg := f.(arguments.BackgroundColorFlag)
	if bg.Color == nil {
		t.Fatal("expected a color from the last -b=blue")
	}
	// the second background flag (-b=blue) should have overwritten the
	// first (--background=#FFFFFF).
	if *bg.Color != (database.Paletted{X: 3, Y: 2}) {
		t.Errorf("Color = %#v, want the last flag (-b=blue) to win", *bg.Color)
	}
}

func TestParseVariantInvalidArgument(t *testing.T) {
	_, err := Parse("me:m/2/invalid")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	const source = "me:m/2/invalid"
	want := "invalid"
	if got := source[perr.Span.Start:perr.Span.End]; got != want {
		t.Errorf("Span covers %q, want %q", got, want)
	}
}

func TestParseVariantNonExistent(t *testing.T) {
	_, err := Parse("me:dne")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	nerr, ok := perr.Cause.(*arguments.NonExistentNameError)
	if !ok || nerr.Kind != "variant" || nerr.Name != "dne" {
		t.Errorf("got cause %#v", perr.Cause)
	}
}

func TestParseCarryAndPadding(t *testing.T) {
	scene, err := Parse("x&y a>a>a z:red>>z")
	if err != nil {
		t.Fatal(err)
	}
	if scene.Map.Width != 3 || scene.Map.Height != 1 || scene.Map.Length != 3 {
		t.Fatalf("got width=%d height=%d length=%d", scene.Map.Width, scene.Map.Height, scene.Map.Length)
	}

	// stack 0 ("x&y") is only defined at t=0 on each of its two z-layers;
	// both must be padded forward through t=2.
	for z, name := range map[int]string{0: "x", 1: "y"} {
		for tt := 0; tt < 3; tt++ {
			tile, ok := scene.Map.Cells[chilly.Position{X: 0, Y: 0, Z: z, T: tt}]
			if !ok {
				t.Fatalf("missing padded tile at x=0 z=%d t=%d", z, tt)
			}
			if tile.Name != name {
				t.Errorf("x=0 z=%d t=%d: Name = %q, want %q", z, tt, tile.Name, name)
			}
		}
	}

	// stack 2 ("z:red>>z"): t0 = z@red (explicit), t1 = "" implicit carry
	// (inherits z@red), t2 = z explicit with no variants (resets).
	t0 := scene.Map.Cells[chilly.Position{X: 2, Y: 0, Z: 0, T: 0}]
	if t0.Name != "z" || len(t0.Variants) != 1 {
		t.Errorf("t0 = %#v", t0)
	}
	t1 := scene.Map.Cells[chilly.Position{X: 2, Y: 0, Z: 0, T: 1}]
	if t1.Name != "z" || len(t1.Variants) != 1 {
		t.Errorf("t1 (implicit carry) = %#v, want carried variants", t1)
	}
	t2 := scene.Map.Cells[chilly.Position{X: 2, Y: 0, Z: 0, T: 2}]
	if t2.Name != "z" || len(t2.Variants) != 0 {
		t.Errorf("t2 (explicit reset) = %#v, want no variants", t2)
	}
}
