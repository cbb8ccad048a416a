package viruswar

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds    = errors.New("position out of bounds")
	ErrApplyOnWall    = errors.New("apply on a wall")
	ErrApplyOnOwnUnit = errors.New("apply on own unit")
	ErrUndoEmpty      = errors.New("undo on an empty cell")
	ErrIllegalMove    = errors.New("illegal move")
)

// EndsTurnCycle 这一步走完后是否轮到对方（走之前只剩 1 步）
func (g *Game) EndsTurnCycle() bool {
	return g.TurnsLeft == 1
}

// Apply 原地走一步，O(1)。传进来的必须是 LegalMoves 给出的落点，
// 否则视为调用方的逻辑错误，直接 panic。
func (g *Game) Apply(pos BoardPos) {
	mustOnBoard(pos)

	var next Cell
	old := g.Board.At(pos)
	switch old.Kind {
	case KindEmpty:
		next = UnitOf(g.Player)
	case KindUnit:
		if old.Owner == g.Player {
			panic(fmt.Errorf("%w: %v", ErrApplyOnOwnUnit, pos))
		}
		next = WallOf(g.Player)
	default:
		panic(fmt.Errorf("%w: %v", ErrApplyOnWall, pos))
	}
	g.setCell(pos, next)

	if g.EndsTurnCycle() {
		g.setTurnsLeft(TurnsPerCycle)
		g.switchPlayer()
	} else {
		g.setTurnsLeft(g.TurnsLeft - 1)
	}
}

// Undo 是 Apply 的逆：先恢复回合计数和走子方，再恢复格子。
// 墙恢复成被吃掉的那一方（恢复后走子方的对手）的活子。
func (g *Game) Undo(pos BoardPos) {
	mustOnBoard(pos)

	old := g.Board.At(pos)
	if old.IsEmpty() {
		panic(fmt.Errorf("%w: %v", ErrUndoEmpty, pos))
	}

	if g.TurnsLeft == TurnsPerCycle {
		g.setTurnsLeft(1)
		g.switchPlayer()
	} else {
		g.setTurnsLeft(g.TurnsLeft + 1)
	}

	if old.Kind == KindUnit {
		g.setCell(pos, Empty)
	} else {
		g.setCell(pos, UnitOf(g.Player.Opponent()))
	}
}

// Play 带合法性检查的走子，给人类输入和自对弈用
func (g *Game) Play(pos BoardPos) error {
	if !g.IsLegal(pos) {
		return fmt.Errorf("%w: %v for %v", ErrIllegalMove, pos, g.Player)
	}
	g.Apply(pos)
	return nil
}

func mustOnBoard(pos BoardPos) {
	if !pos.Valid() {
		panic(fmt.Errorf("%w: %d,%d", ErrOutOfBounds, pos.Row, pos.Col))
	}
}

// 以下三个 setter 同步维护增量哈希

func (g *Game) setCell(pos BoardPos, c Cell) {
	h := g.EnsureHash()
	h ^= cellHashKey(g.Board.At(pos), pos)
	h ^= cellHashKey(c, pos)
	g.Board[pos.Row][pos.Col] = c
	g.Hash = h
}

func (g *Game) setTurnsLeft(n int) {
	h := g.EnsureHash()
	h ^= turnsHashKey(g.TurnsLeft)
	h ^= turnsHashKey(n)
	g.TurnsLeft = n
	g.Hash = h
}

func (g *Game) switchPlayer() {
	initZobrist()
	h := g.EnsureHash()
	g.Player = g.Player.Opponent()
	g.Hash = h ^ zobristSide
}
