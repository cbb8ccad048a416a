package engine

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"viruswar/internal/viruswar"
)

// 搜索配置
type SearchConfig struct {
	Depth int // 固定搜索深度（ply），0 表示只做静态评估
}

// 搜索结果
type SearchResult struct {
	BestMove viruswar.BoardPos // 没有合法走法时为 viruswar.NoMove
	Score    int               // 走子方视角的评估分
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
}

// Search 在 g 上原地搜索（Apply/Undo 成对调用），返回时 g 与调用前一致。
// 没有剪枝、没有置换表，也没有迭代加深。
func (e *Engine) Search(g *viruswar.Game, cfg SearchConfig) SearchResult {
	depth := cfg.Depth
	if depth < 0 {
		depth = 0
	}
	start := time.Now()
	e.nodes = 0

	move, score := e.search(g, depth)

	res := SearchResult{
		BestMove: move,
		Score:    score,
		Depth:    depth,
		Nodes:    e.nodes,
		TimeUsed: time.Since(start),
	}
	log.WithFields(log.Fields{
		"depth":   res.Depth,
		"nodes":   res.Nodes,
		"score":   res.Score,
		"move":    res.BestMove.String(),
		"elapsed": res.TimeUsed,
	}).Debug("search finished")
	return res
}

func (e *Engine) search(g *viruswar.Game, depth int) (viruswar.BoardPos, int) {
	e.nodes++

	if depth <= 0 {
		return viruswar.NoMove, Evaluate(g)
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return viruswar.NoMove, Evaluate(g)
	}

	bestMove := viruswar.NoMove
	bestScore := math.MinInt
	for _, mv := range moves {
		endsCycle := g.EndsTurnCycle()

		g.Apply(mv)
		_, score := e.search(g, depth-1)
		g.Undo(mv)

		score = moverScore(score, endsCycle)
		// 严格大于：同分时保留生成顺序里靠前的走法
		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
	}
	return bestMove, bestScore
}

// moverScore 把子节点的分数换算回当前走子方视角：
// 这一步用掉了本轮最后一次行动时，子节点是对手在走，分数要取反。
func moverScore(childScore int, endsCycle bool) int {
	if endsCycle {
		return -childScore
	}
	return childScore
}
