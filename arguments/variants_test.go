package arguments

import "testing"

func TestVariantNameFromAlias(t *testing.T) {
	cases := map[string]VariantName{
		"m":      VariantMeta,
		"meta":   VariantMeta,
		"f":      VariantAnimationFrame,
		"frame":  VariantAnimationFrame,
		"l":      VariantLeft,
		"r":      VariantRight,
		"t":      VariantTiling,
		"tiling": VariantTiling,
		"c":      VariantColor,
		"color":  VariantColor,
		"disp":   VariantDisplace,
	}
	for alias, want := range cases {
		got, ok := VariantNameFromAlias(alias)
		if !ok || got != want {
			t.Errorf("VariantNameFromAlias(%q) = %v, %v; want %v, true", alias, got, ok, want)
		}
	}
	if _, ok := VariantNameFromAlias("nonexistent"); ok {
		t.Error("expected no match for unknown alias")
	}
}

func TestParseVariantAnimationFrame(t *testing.T) {
	v, err := ParseVariant(VariantAnimationFrame, []string{"3"})
	if err != nil {
		t.Fatal(err)
	}
	af, ok := v.(AnimationFrameVariant)
	if !ok || af.Frame != 3 {
		t.Errorf("got %#v", v)
	}
}

func TestParseVariantMetaAllOptionsAbsent(t *testing.T) {
	v, err := ParseVariant(VariantMeta, nil)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := v.(MetaVariant)
	if !ok {
		t.Fatalf("got %#v", v)
	}
	if m.Count != nil || m.Kernel != nil || m.Size != nil {
		t.Errorf("expected all fields nil when no arguments given, got %#v", m)
	}
}

func TestParseVariantMetaAllOptionsPresent(t *testing.T) {
	v, err := ParseVariant(VariantMeta, []string{"-2", "edge", "4"})
	if err != nil {
		t.Fatal(err)
	}
	m := v.(MetaVariant)
	if m.Count == nil || *m.Count != -2 {
		t.Errorf("Count = %v", m.Count)
	}
	if m.Kernel == nil || *m.Kernel != MetaKernelEdge {
		t.Errorf("Kernel = %v", m.Kernel)
	}
	if m.Size == nil || *m.Size != 4 {
		t.Errorf("Size = %v", m.Size)
	}
}

func TestParseVariantTiling(t *testing.T) {
	v, err := ParseVariant(VariantTiling, []string{"r", "u", "dl"})
	if err != nil {
		t.Fatal(err)
	}
	tv := v.(TilingVariant)
	want := []TilingDirection{DirRight, DirUp, DirDownLeft}
	if len(tv.Directions) != len(want) {
		t.Fatalf("got %v", tv.Directions)
	}
	for i := range want {
		if tv.Directions[i] != want[i] {
			t.Errorf("Directions[%d] = %v, want %v", i, tv.Directions[i], want[i])
		}
	}
}

func TestParseVariantDisplace(t *testing.T) {
	v, err := ParseVariant(VariantDisplace, []string{"-5", "7"})
	if err != nil {
		t.Fatal(err)
	}
	dv := v.(DisplaceVariant)
	if dv.DX != -5 || dv.DY != 7 {
		t.Errorf("got %#v", dv)
	}
}

func TestParseVariantMissingArgumentWrapsError(t *testing.T) {
	_, err := ParseVariant(VariantAnimationFrame, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	aerr, ok := err.(*ArgumentError)
	if !ok {
		t.Fatalf("expected *ArgumentError, got %T", err)
	}
	if aerr.Kind != "variant" || aerr.Index != 0 {
		t.Errorf("got %#v", aerr)
	}
}

func TestCollapseVariantAlias(t *testing.T) {
	v, ok := CollapseVariantAlias("red")
	if !ok {
		t.Fatal("expected red to collapse to a color variant")
	}
	cv, ok := v.(ColorVariant)
	if !ok {
		t.Fatalf("got %#v", v)
	}
	if cv.Color == nil {
		t.Errorf("expected a non-nil database.Color")
	}

	if _, ok := CollapseVariantAlias("notacolorname"); ok {
		t.Error("expected no collapse for a non-color alias")
	}
}
