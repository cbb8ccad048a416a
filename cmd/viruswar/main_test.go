package main

import (
	"errors"
	"testing"

	"viruswar/internal/viruswar"
)

func TestParsePos(t *testing.T) {
	for _, s := range []string{"3 4", "3,4", " 3  4 "} {
		pos, err := parsePos(s)
		if err != nil {
			t.Fatalf("parsePos(%q): %v", s, err)
		}
		if pos != (viruswar.BoardPos{Row: 3, Col: 4}) {
			t.Fatalf("parsePos(%q): got=%v", s, pos)
		}
	}
	for _, s := range []string{"3", "a 4", "3 b", "1 2 3"} {
		if _, err := parsePos(s); err == nil {
			t.Fatalf("parsePos(%q): expected error", s)
		}
	}
}

func TestReplay(t *testing.T) {
	g := viruswar.NewGame()
	if err := replay(g, "1 1; 2 2;3 3"); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if g.Player != viruswar.Red || g.TurnsLeft != viruswar.TurnsPerCycle {
		t.Fatalf("after a full cycle: player=%v turns=%d", g.Player, g.TurnsLeft)
	}

	g = viruswar.NewGame()
	if err := replay(g, "5 5"); !errors.Is(err, viruswar.ErrIllegalMove) {
		t.Fatalf("got err=%v want ErrIllegalMove", err)
	}
	if err := replay(viruswar.NewGame(), ""); err != nil {
		t.Fatalf("empty replay: %v", err)
	}
}
