package viruswar

import "sync"

const numSquares = Size * Size

var (
	zobristOnce sync.Once

	// [owner][kind-1][square]，空格不参与哈希
	zobristCells [2][2][numSquares]uint64
	zobristSide  uint64
	zobristTurns [TurnsPerCycle + 1]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for owner := 0; owner < 2; owner++ {
			for kind := 0; kind < 2; kind++ {
				for sq := 0; sq < numSquares; sq++ {
					zobristCells[owner][kind][sq] = next()
				}
			}
		}
		zobristSide = next()
		for n := 1; n <= TurnsPerCycle; n++ {
			zobristTurns[n] = next()
		}
	})
}

func cellHashKey(c Cell, pos BoardPos) uint64 {
	if c.IsEmpty() || !pos.Valid() {
		return 0
	}
	initZobrist()
	return zobristCells[c.Owner][c.Kind-1][pos.Row*Size+pos.Col]
}

func turnsHashKey(n int) uint64 {
	if n < 1 || n > TurnsPerCycle {
		return 0
	}
	initZobrist()
	return zobristTurns[n]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希。
func (g *Game) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			pos := BoardPos{Row: r, Col: c}
			h ^= cellHashKey(g.Board.At(pos), pos)
		}
	}
	if g.Player == Red {
		h ^= zobristSide
	}
	h ^= turnsHashKey(g.TurnsLeft)
	return h
}

// EnsureHash 确保 Game.Hash 已初始化；返回当前哈希值。
func (g *Game) EnsureHash() uint64 {
	if g.Hash == 0 {
		g.Hash = g.CalculateHash()
	}
	return g.Hash
}
