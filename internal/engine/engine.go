package engine

// Engine 持有一次搜索的统计信息。搜索本身是单线程的，
// 一个 Engine 同一时间只服务一局。
type Engine struct {
	nodes int64
}

func NewEngine() *Engine {
	return &Engine{}
}

// Nodes 最近一次 Search 访问的节点数
func (e *Engine) Nodes() int64 {
	return e.nodes
}
