package viruswar

// 八方向，顺序固定，保证生成结果可复现
var neighborDirs = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// LegalMoves 当前走子方的合法落点
func (g *Game) LegalMoves() []BoardPos {
	return g.Board.LegalMovesFor(g.Player)
}

// LegalMovesFor 从 p 的所有活子出发做泛洪：
// 空格、对方活子是落点；自己的墙继续向外扩展；对方的墙是死路。
// 每个格子最多被检查一次，结果无重复。
func (b *Board) LegalMovesFor(p Player) []BoardPos {
	var visited Mask
	var frontier []BoardPos
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c].IsUnitOf(p) {
				visited[r][c] = true
				frontier = append(frontier, BoardPos{Row: r, Col: c})
			}
		}
	}

	var moves []BoardPos
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, d := range neighborDirs {
			r, c := cur.Row+d[0], cur.Col+d[1]
			if !onBoard(r, c) || visited[r][c] {
				continue
			}
			visited[r][c] = true

			cell := b[r][c]
			switch cell.Kind {
			case KindEmpty:
				moves = append(moves, BoardPos{Row: r, Col: c})
			case KindUnit:
				if cell.Owner != p {
					moves = append(moves, BoardPos{Row: r, Col: c})
				}
			case KindWall:
				if cell.Owner == p {
					frontier = append(frontier, BoardPos{Row: r, Col: c})
				}
			}
		}
	}
	return moves
}

// Mobility 合法落点个数
func (b *Board) Mobility(p Player) int {
	return len(b.LegalMovesFor(p))
}

// IsLegal 判断 pos 是否在当前走子方的合法落点里
func (g *Game) IsLegal(pos BoardPos) bool {
	if !pos.Valid() {
		return false
	}
	for _, mv := range g.LegalMoves() {
		if mv == pos {
			return true
		}
	}
	return false
}

// Winner 轮到的一方无路可走即判负
func (g *Game) Winner() (Player, bool) {
	if len(g.LegalMoves()) == 0 {
		return g.Player.Opponent(), true
	}
	return Blue, false
}
