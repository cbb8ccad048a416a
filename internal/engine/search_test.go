package engine

import (
	"testing"

	"viruswar/internal/viruswar"
)

func mustDecode(t *testing.T, s string) *viruswar.Game {
	t.Helper()
	g, err := viruswar.DecodeGame(s)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return g
}

// 复制局面递归的参考实现，用来核对原地 Apply/Undo 的版本
func referenceSearch(g viruswar.Game, depth int) (viruswar.BoardPos, int) {
	if depth <= 0 {
		return viruswar.NoMove, Evaluate(&g)
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return viruswar.NoMove, Evaluate(&g)
	}
	best, bestScore := viruswar.NoMove, 0
	for i, mv := range moves {
		child := g
		child.Apply(mv)
		_, score := referenceSearch(child, depth-1)
		if g.TurnsLeft == 1 {
			score = -score
		}
		if i == 0 || score > bestScore {
			best, bestScore = mv, score
		}
	}
	return best, bestScore
}

func TestEvaluateInitialIsBalanced(t *testing.T) {
	if got := Evaluate(viruswar.NewGame()); got != 0 {
		t.Fatalf("Evaluate(initial): got=%d want=0", got)
	}
}

func TestSearchDepthZeroReturnsLeafScore(t *testing.T) {
	e := NewEngine()
	g := viruswar.NewGame()
	res := e.Search(g, SearchConfig{Depth: 0})
	if res.BestMove != viruswar.NoMove {
		t.Fatalf("depth 0 move: got=%v want NoMove", res.BestMove)
	}
	if res.Score != 0 {
		t.Fatalf("depth 0 score: got=%d want=0", res.Score)
	}
	if res.Nodes != 1 {
		t.Fatalf("depth 0 nodes: got=%d want=1", res.Nodes)
	}
}

func TestSearchDepthOnePrefersDiagonalClaim(t *testing.T) {
	e := NewEngine()
	g := viruswar.NewGame()
	res := e.Search(g, SearchConfig{Depth: 1})
	// (1,1) 之后蓝方有 7 个落点，红方 3 个
	if res.BestMove != (viruswar.BoardPos{Row: 1, Col: 1}) || res.Score != 4 {
		t.Fatalf("depth 1: got move=%v score=%d, want 1 1 / 4", res.BestMove, res.Score)
	}
	if res.Nodes != 4 {
		t.Fatalf("depth 1 nodes: got=%d want=4", res.Nodes)
	}
}

func TestSearchNegatesAcrossTurnBoundary(t *testing.T) {
	e := NewEngine()
	g := mustDecode(t, "b9/10/10/10/10/10/10/10/10/9r b 1")
	res := e.Search(g, SearchConfig{Depth: 1})
	// 子节点轮到红方：3 - 7 = -4，取反后对蓝方是 +4
	if res.BestMove != (viruswar.BoardPos{Row: 1, Col: 1}) || res.Score != 4 {
		t.Fatalf("got move=%v score=%d, want 1 1 / 4", res.BestMove, res.Score)
	}
}

func TestMoverScore(t *testing.T) {
	if got := moverScore(5, false); got != 5 {
		t.Fatalf("same mover: got=%d want=5", got)
	}
	if got := moverScore(5, true); got != -5 {
		t.Fatalf("turn passed: got=%d want=-5", got)
	}
	if got := moverScore(-3, true); got != 3 {
		t.Fatalf("turn passed: got=%d want=3", got)
	}
}

func TestSearchWithoutMovesReturnsSentinel(t *testing.T) {
	// 红方只剩墙，轮到红方
	g := mustDecode(t, "bR8/1B8/10/10/10/10/10/10/10/10 r 2")
	e := NewEngine()
	for depth := 0; depth <= 3; depth++ {
		res := e.Search(g, SearchConfig{Depth: depth})
		if res.BestMove != viruswar.NoMove {
			t.Fatalf("depth %d: got move=%v want NoMove", depth, res.BestMove)
		}
		if res.Score != -6 {
			t.Fatalf("depth %d: got score=%d want=-6", depth, res.Score)
		}
	}
}

func TestSearchRestoresGameAndMatchesReference(t *testing.T) {
	positions := []string{
		"b9/10/10/10/10/10/10/10/10/9r b 3",
		"b9/10/10/10/10/10/10/10/10/9r b 1",
		"b9/1r8/10/10/10/10/10/10/10/10 b 2",
		"bB8/1Bb7/2r7/10/10/10/10/10/8R1/9r r 1",
	}
	for _, s := range positions {
		for depth := 0; depth <= 2; depth++ {
			g := mustDecode(t, s)
			before := *g

			res := NewEngine().Search(g, SearchConfig{Depth: depth})
			if *g != before {
				t.Fatalf("%q depth %d: search left the game modified", s, depth)
			}

			wantMove, wantScore := referenceSearch(before, depth)
			if res.BestMove != wantMove || res.Score != wantScore {
				t.Fatalf("%q depth %d: got %v/%d want %v/%d", s, depth, res.BestMove, res.Score, wantMove, wantScore)
			}
		}
	}
}

func TestSearchNegativeDepthActsAsZero(t *testing.T) {
	res := NewEngine().Search(viruswar.NewGame(), SearchConfig{Depth: -2})
	if res.Depth != 0 || res.BestMove != viruswar.NoMove {
		t.Fatalf("got depth=%d move=%v", res.Depth, res.BestMove)
	}
}
