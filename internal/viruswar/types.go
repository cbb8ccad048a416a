package viruswar

type Player int8

const (
	Blue Player = 0
	Red  Player = 1
)

// Opponent 取反：Blue <-> Red，两次取反回到自己
func (p Player) Opponent() Player {
	if p == Blue {
		return Red
	}
	return Blue
}

type CellKind int8

const (
	KindEmpty CellKind = iota
	KindUnit           // 活子，可被对方吃掉
	KindWall           // 吃子后留下的墙，永久归属
)

// Cell 三态之一：空 / 某方的子 / 某方的墙。
// 空格的 Owner 恒为零值，只能通过下面几个构造函数生成。
type Cell struct {
	Kind  CellKind
	Owner Player
}

var Empty = Cell{}

func UnitOf(p Player) Cell { return Cell{Kind: KindUnit, Owner: p} }
func WallOf(p Player) Cell { return Cell{Kind: KindWall, Owner: p} }

func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

func (c Cell) IsUnitOf(p Player) bool { return c.Kind == KindUnit && c.Owner == p }

func (c Cell) IsWallOf(p Player) bool { return c.Kind == KindWall && c.Owner == p }

type Board [Size][Size]Cell

// Mask 和棋盘同形状，只在一次走法生成里用来标记访问过的格子
type Mask [Size][Size]bool

// BoardPos 既是走法，也是棋盘下标
type BoardPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove 表示“没有合法走法”
var NoMove = BoardPos{Row: -1, Col: -1}

func (p BoardPos) Valid() bool { return onBoard(p.Row, p.Col) }

// Game = 棋盘 + 轮到谁 + 本轮还剩几步
type Game struct {
	Board     Board
	Player    Player
	TurnsLeft int
	Hash      uint64
}
