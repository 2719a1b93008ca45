package chilly

import "testing"

func TestPositionOrdering(t *testing.T) {
	positions := []Position{
		{X: 1, Y: 0, Z: 1, T: 0},
		{X: 0, Y: 0, Z: 0, T: 5},
		{X: 0, Y: 1, Z: 0, T: 0},
		{X: 0, Y: 0, Z: 0, T: 0},
	}
	// Expected order by (z, y, x, t): the two z=0 rows before the z=1 row,
	// and within z=0, y=0 before y=1, and t=0 before t=5 for the same (z,y,x).
	if !positions[3].Less(positions[1]) {
		t.Error("(0,0,0,0) should sort before (0,0,0,5)")
	}
	if !positions[1].Less(positions[2]) {
		t.Error("(0,0,0,5) should sort before (0,1,0,0): y differs")
	}
	if !positions[2].Less(positions[0]) {
		t.Error("z=0 row should sort before z=1 row")
	}
}

func TestObjectMapPositionsSorted(t *testing.T) {
	m := NewObjectMap[string]()
	m.Cells[Position{X: 1, Y: 0, Z: 0, T: 0}] = "b"
	m.Cells[Position{X: 0, Y: 0, Z: 0, T: 0}] = "a"
	m.Cells[Position{X: 0, Y: 0, Z: 1, T: 0}] = "c"

	got := m.Positions()
	if len(got) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Less(got[i]) {
			t.Errorf("positions not strictly increasing at index %d: %v >= %v", i, got[i-1], got[i])
		}
	}
}
