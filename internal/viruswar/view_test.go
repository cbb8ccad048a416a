package viruswar

import "testing"

func TestCellDisplayStates(t *testing.T) {
	cases := []struct {
		cell  Cell
		state DisplayState
		text  string
	}{
		{Empty, ShowEmpty, "."},
		{UnitOf(Blue), ShowBlueUnit, "b"},
		{UnitOf(Red), ShowRedUnit, "r"},
		{WallOf(Blue), ShowBlueWall, "B"},
		{WallOf(Red), ShowRedWall, "R"},
	}
	for _, c := range cases {
		if got := c.cell.Display(); got != c.state {
			t.Fatalf("%v.Display(): got=%d want=%d", c.cell, got, c.state)
		}
		if got := c.cell.String(); got != c.text {
			t.Fatalf("String(): got=%q want=%q", got, c.text)
		}
	}
}

func TestGameString(t *testing.T) {
	want := "It is the Blue player's turn. 3 turns are left.\n" +
		"b.........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		".........r\n"
	if got := NewGame().String(); got != want {
		t.Fatalf("String():\n%s\nwant\n%s", got, want)
	}
	if got := (BoardPos{Row: 3, Col: 7}).String(); got != "3 7" {
		t.Fatalf("BoardPos.String(): got=%q", got)
	}
}
