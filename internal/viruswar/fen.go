package viruswar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// 简单 FEN-like：10 行用“/”隔开，连续空格压缩成十进制数字；
// 空格后 b/r 表示轮到谁，再跟本轮剩余步数。
// 例如开局：b9/10/10/10/10/10/10/10/10/9r b 3
func (g *Game) Encode() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Size; c++ {
			cell := g.Board[r][c]
			if cell.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(cellToChar(cell))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	sb.WriteByte(' ')
	if g.Player == Blue {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('r')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.TurnsLeft))
	return sb.String()
}

var ErrInvalidPosition = errors.New("invalid position")

func DecodeGame(s string) (*Game, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want 3 fields, got %d", ErrInvalidPosition, len(parts))
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidPosition, Size, len(rows))
	}

	var b Board
	for r, row := range rows {
		c := 0
		for i := 0; i < len(row); {
			ch := row[i]
			if ch >= '0' && ch <= '9' {
				j := i
				for j < len(row) && row[j] >= '0' && row[j] <= '9' {
					j++
				}
				n, _ := strconv.Atoi(row[i:j])
				if n == 0 {
					return nil, fmt.Errorf("%w: zero run in row %d", ErrInvalidPosition, r)
				}
				c += n
				i = j
				continue
			}
			cell, ok := charToCell(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell %q in row %d", ErrInvalidPosition, ch, r)
			}
			if c >= Size {
				return nil, fmt.Errorf("%w: row %d too long", ErrInvalidPosition, r)
			}
			b[r][c] = cell
			c++
			i++
		}
		if c != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidPosition, r, c)
		}
	}

	var player Player
	switch parts[1] {
	case "b":
		player = Blue
	case "r":
		player = Red
	default:
		return nil, fmt.Errorf("%w: unknown player %q", ErrInvalidPosition, parts[1])
	}

	turns, err := strconv.Atoi(parts[2])
	if err != nil || turns < 1 || turns > TurnsPerCycle {
		return nil, fmt.Errorf("%w: turns left %q", ErrInvalidPosition, parts[2])
	}

	g := &Game{
		Board:     b,
		Player:    player,
		TurnsLeft: turns,
	}
	g.Hash = g.CalculateHash()
	return g, nil
}
