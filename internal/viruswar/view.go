package viruswar

import (
	"fmt"
	"strings"
)

// DisplayState 渲染层只需要区分这五种状态
type DisplayState int8

const (
	ShowEmpty DisplayState = iota
	ShowBlueUnit
	ShowRedUnit
	ShowBlueWall
	ShowRedWall
)

func (c Cell) Display() DisplayState {
	switch {
	case c.IsUnitOf(Blue):
		return ShowBlueUnit
	case c.IsUnitOf(Red):
		return ShowRedUnit
	case c.IsWallOf(Blue):
		return ShowBlueWall
	case c.IsWallOf(Red):
		return ShowRedWall
	default:
		return ShowEmpty
	}
}

func (p Player) String() string {
	if p == Blue {
		return "Blue"
	}
	return "Red"
}

func (c Cell) String() string { return string(cellToChar(c)) }

func (p BoardPos) String() string { return fmt.Sprintf("%d %d", p.Row, p.Col) }

func (g *Game) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "It is the %v player's turn. %d turns are left.\n", g.Player, g.TurnsLeft)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte(cellToChar(g.Board[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
