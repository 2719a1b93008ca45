package database

import "testing"

func TestParseColorHex(t *testing.T) {
	cases := map[string]RGB{
		"#FF00AA": {R: 0xFF, G: 0x00, B: 0xAA},
		"#ff00aa": {R: 0xFF, G: 0x00, B: 0xAA},
		"#000000": {R: 0, G: 0, B: 0},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		rgb, ok := got.(RGB)
		if !ok || rgb != want {
			t.Errorf("ParseColor(%q) = %#v, want %#v", in, got, want)
		}
	}
}

func TestParseColorHexRoundTrip(t *testing.T) {
	c, err := ParseColor("#1A2B3C")
	if err != nil {
		t.Fatal(err)
	}
	if got := ColorString(c); got != "#1A2B3C" {
		t.Errorf("ColorString round trip = %q, want #1A2B3C", got)
	}
}

func TestParseColorHexInvalid(t *testing.T) {
	for _, in := range []string{"#FFF", "#GGGGGG", "#12345"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) = nil error, want error", in)
		}
	}
}

func TestParseColorNames(t *testing.T) {
	got, err := ParseColor("red")
	if err != nil {
		t.Fatal(err)
	}
	if got != (Paletted{X: 2, Y: 2}) {
		t.Errorf("ParseColor(red) = %#v, want Paletted{2,2}", got)
	}

	if _, err := ParseColor("grey"); err != nil {
		t.Errorf("grey: %v", err)
	}
	if _, err := ParseColor("gray"); err != nil {
		t.Errorf("gray: %v", err)
	}
}

func TestParseColorInvalidName(t *testing.T) {
	_, err := ParseColor("notacolor")
	if err == nil {
		t.Fatal("expected error for unknown color name")
	}
	var cerr *ColorError
	if ce, ok := err.(*ColorError); !ok {
		t.Fatalf("expected *ColorError, got %T", err)
	} else {
		cerr = ce
	}
	if cerr.Value != "notacolor" {
		t.Errorf("ColorError.Value = %q, want notacolor", cerr.Value)
	}
}

func TestDefaultColor(t *testing.T) {
	if DefaultColor() != (Paletted{X: 0, Y: 3}) {
		t.Errorf("DefaultColor() = %#v, want Paletted{0,3}", DefaultColor())
	}
}
