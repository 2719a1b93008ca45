package arguments

import "testing"

func TestCursorNextAndRemaining(t *testing.T) {
	c := NewCursor([]string{"a", "b"})
	if c.Remaining() != 2 {
		t.Fatalf("Remaining() = %d, want 2", c.Remaining())
	}
	tok, ok := c.Next()
	if !ok || tok != "a" {
		t.Fatalf("Next() = %q, %v", tok, ok)
	}
	if c.Remaining() != 1 {
		t.Fatalf("Remaining() = %d, want 1", c.Remaining())
	}
	c.Next()
	if _, ok := c.Next(); ok {
		t.Fatal("expected exhausted cursor to return false")
	}
}

func TestParseOptionAbsentVsPresent(t *testing.T) {
	c := NewCursor(nil)
	v, err := parseOption(c, parseUint8)
	if err != nil || v != nil {
		t.Fatalf("expected nil, nil for empty cursor, got %v, %v", v, err)
	}

	c = NewCursor([]string{"9"})
	v, err = parseOption(c, parseUint8)
	if err != nil || v == nil || *v != 9 {
		t.Fatalf("expected pointer to 9, got %v, %v", v, err)
	}
}

func TestParseVecConsumesAllRemaining(t *testing.T) {
	c := NewCursor([]string{"1", "2", "3"})
	v, err := parseVec(c, parseUint8)
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 3 || v[0] != 1 || v[2] != 3 {
		t.Errorf("got %v", v)
	}
	if c.Remaining() != 0 {
		t.Errorf("expected cursor exhausted, Remaining() = %d", c.Remaining())
	}
}

func TestParseIsizeNegative(t *testing.T) {
	c := NewCursor([]string{"-42"})
	v, err := parseIsize(c)
	if err != nil || v != -42 {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestMetaKernelRoundTrip(t *testing.T) {
	for _, k := range []MetaKernel{MetaKernelFull, MetaKernelEdge, MetaKernelUnit} {
		got, err := parseMetaKernel(k.String())
		if err != nil || got != k {
			t.Errorf("round trip for %v failed: %v, %v", k, got, err)
		}
	}
}

func TestTilingDirectionRoundTrip(t *testing.T) {
	dirs := []TilingDirection{DirRight, DirUpRight, DirUp, DirUpLeft, DirLeft, DirDownLeft, DirDown, DirDownRight}
	for _, d := range dirs {
		got, err := parseTilingDirection(d.String())
		if err != nil || got != d {
			t.Errorf("round trip for %v failed: %v, %v", d, got, err)
		}
	}
}
