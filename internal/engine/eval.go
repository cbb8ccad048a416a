package engine

import "viruswar/internal/viruswar"

// Evaluate 机动性差：从走子方视角，自己的合法落点数减去对手的。
// 对手的落点数直接按对手身份生成，不改动局面。
func Evaluate(g *viruswar.Game) int {
	mover := g.Board.Mobility(g.Player)
	other := g.Board.Mobility(g.Player.Opponent())
	return mover - other
}
