package database

import "testing"

func TestLoadCustom(t *testing.T) {
	db := New()
	if err := db.LoadCustom("testdata/custom"); err != nil {
		t.Fatal(err)
	}

	rock, ok := db.Get("rock")
	if !ok {
		t.Fatal("rock not loaded")
	}
	if rock.Directory != "myworld" {
		t.Errorf("rock.Directory = %q, want myworld", rock.Directory)
	}
	if rock.Color != (Paletted{X: 2, Y: 1}) {
		t.Errorf("rock.Color = %#v", rock.Color)
	}
	if rock.Tiling != TilingAutoTiled {
		t.Errorf("rock.Tiling = %v, want AutoTiled", rock.Tiling)
	}
	if rock.TileIndex == nil || *rock.TileIndex != (Coord{X: 4, Y: 5}) {
		t.Errorf("rock.TileIndex = %#v", rock.TileIndex)
	}
	if got := rock.Tags.Tags(); len(got) != 2 || got[0] != "solid" || got[1] != "pushable" {
		t.Errorf("rock.Tags = %v", got)
	}

	flag, ok := db.Get("flag")
	if !ok {
		t.Fatal("flag not loaded")
	}
	if flag.ObjectID == nil || *flag.ObjectID != "object99" {
		t.Errorf("flag.ObjectID = %#v", flag.ObjectID)
	}
	if flag.Layer == nil || *flag.Layer != 3 {
		t.Errorf("flag.Layer = %#v", flag.Layer)
	}
	if flag.Author != "Hempuli" {
		t.Errorf("flag.Author = %q, want default Hempuli", flag.Author)
	}
}

func TestLoadVanilla(t *testing.T) {
	db := New()
	if err := db.LoadVanilla("testdata/vanilla"); err != nil {
		t.Fatal(err)
	}

	baba, ok := db.Get("baba")
	if !ok {
		t.Fatal("baba not loaded")
	}
	if baba.Directory != "vanilla" {
		t.Errorf("baba.Directory = %q, want vanilla", baba.Directory)
	}
	if baba.Color != (Paletted{X: 2, Y: 2}) {
		t.Errorf("baba.Color = %#v, want colour_active over colour", baba.Color)
	}
	if baba.Tiling != TilingCharacter {
		t.Errorf("baba.Tiling = %v, want Character", baba.Tiling)
	}
	if baba.ObjectID == nil || *baba.ObjectID != "object0" {
		t.Errorf("baba.ObjectID = %#v", baba.ObjectID)
	}
	// merged in from editor_objectlist.lua: grid survives since values.lua
	// didn't carry one, tags union with the values.lua scrape.
	if baba.GridIndex == nil || *baba.GridIndex != (Coord{X: 3, Y: 3}) {
		t.Errorf("baba.GridIndex = %#v, want merged {3,3}", baba.GridIndex)
	}
	wantTags := map[string]bool{"text": true, "noun": true, "character": true}
	gotTags := baba.Tags.Tags()
	if len(gotTags) != len(wantTags) {
		t.Fatalf("baba.Tags = %v, want union of %v", gotTags, wantTags)
	}
	for _, tag := range gotTags {
		if !wantTags[tag] {
			t.Errorf("unexpected tag %q", tag)
		}
	}
	// values.lua already had a tile_index; must survive the merge untouched.
	if baba.TileIndex == nil || *baba.TileIndex != (Coord{X: 0, Y: 0}) {
		t.Errorf("baba.TileIndex = %#v, want values.lua's {0,0} to survive merge", baba.TileIndex)
	}

	rock, ok := db.Get("rock")
	if !ok {
		t.Fatal("rock not loaded")
	}
	if rock.Sprite != "rock" {
		t.Errorf("rock.Sprite = %q", rock.Sprite)
	}
	if rock.TileIndex == nil || *rock.TileIndex != (Coord{X: 1, Y: 0}) {
		t.Errorf("rock.TileIndex = %#v", rock.TileIndex)
	}

	if _, ok := db.Get("ghost"); ok {
		t.Error("ghost has does_not_exist set and should have been skipped")
	}

	wall, ok := db.Get("wall")
	if !ok {
		t.Fatal("wall (editor-objectlist-only entry) not loaded")
	}
	if wall.TileIndex == nil || *wall.TileIndex != (Coord{X: 2, Y: 2}) {
		t.Errorf("wall.TileIndex = %#v", wall.TileIndex)
	}
	if wall.Tiling != TilingAutoTiled {
		t.Errorf("wall.Tiling = %v, want AutoTiled", wall.Tiling)
	}
}
