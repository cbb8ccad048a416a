package viruswar

import "strings"

const (
	Size          = 10
	TurnsPerCycle = 3
)

func onBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (b *Board) At(p BoardPos) Cell { return b[p.Row][p.Col] }

// Count 统计等于 cell 的格子数
func (b *Board) Count(cell Cell) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == cell {
				n++
			}
		}
	}
	return n
}

// Occupied 非空格子总数
func (b *Board) Occupied() int {
	return Size*Size - b.Count(Empty)
}

func cellToChar(c Cell) byte {
	switch {
	case c.IsUnitOf(Blue):
		return 'b'
	case c.IsUnitOf(Red):
		return 'r'
	case c.IsWallOf(Blue):
		return 'B'
	case c.IsWallOf(Red):
		return 'R'
	default:
		return '.'
	}
}

func charToCell(ch byte) (Cell, bool) {
	switch ch {
	case '.':
		return Empty, true
	case 'b':
		return UnitOf(Blue), true
	case 'r':
		return UnitOf(Red), true
	case 'B':
		return WallOf(Blue), true
	case 'R':
		return WallOf(Red), true
	}
	return Empty, false
}

// 开局：蓝方在左上角，红方在右下角
const initialBoardString = `b.........
..........
..........
..........
..........
..........
..........
..........
..........
.........r`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Size)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Size {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Size; r++ {
		if len(lines[r]) != Size {
			panic("initialBoardString 列数不为 10")
		}
		for c := 0; c < Size; c++ {
			cell, ok := charToCell(lines[r][c])
			if !ok {
				panic("unknown cell letter: " + string(lines[r][c]))
			}
			b[r][c] = cell
		}
	}
	return b
}

func NewGame() *Game {
	g := &Game{
		Board:     parseInitialBoard(),
		Player:    Blue, // 蓝先
		TurnsLeft: TurnsPerCycle,
	}
	g.Hash = g.CalculateHash()
	return g
}
