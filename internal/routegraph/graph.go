package routegraph

import (
	"sort"

	"github.com/katalvlaran/lvlath/graph/core"

	"multimodal-router/internal/domain"
)

type edgeKey struct {
	from, to string
}

// Graph is the multi-modal directed graph the rest of the planner
// operates on. Structure and traversal ride on
// katalvlaran/lvlath/graph/core.Graph (AddEdge/RemoveEdge/Neighbors/
// AdjacencyList); lvlath's Edge only carries an int64 Weight, so the
// per-edge mode of transport rides alongside as an overlay map keyed
// by (from, to) uid, and an edge's integer cost is carried in the
// lvlath Weight field.
type Graph struct {
	lv    *core.Graph
	nodes map[string]domain.Node
	order []string
	mot   map[edgeKey]domain.TransportType
}

// NewGraph constructs an empty directed, weighted graph.
func NewGraph() *Graph {
	return &Graph{
		lv:    core.NewGraph(true, true),
		nodes: make(map[string]domain.Node),
		mot:   make(map[edgeKey]domain.TransportType),
	}
}

// AddNode registers n in the graph if not already present.
func (g *Graph) AddNode(n domain.Node) {
	uid := n.UID()
	if _, ok := g.nodes[uid]; ok {
		return
	}
	g.nodes[uid] = n
	g.order = append(g.order, uid)
	g.lv.AddVertex(&core.Vertex{ID: uid, Metadata: make(map[string]interface{})})
}

// AddEdge adds or replaces the single directed edge from → to. Per
// spec.md §3's invariant, a directed graph carries at most one edge
// per (from,to); duplicate additions overwrite, so any existing edge
// is removed from the lvlath graph first.
func (g *Graph) AddEdge(from, to domain.Node, mot domain.TransportType, cost int) {
	g.AddNode(from)
	g.AddNode(to)
	g.lv.RemoveEdge(from.UID(), to.UID())
	g.lv.AddEdge(from.UID(), to.UID(), int64(cost))
	g.mot[edgeKey{from.UID(), to.UID()}] = mot
}

// HasNode reports whether uid is present in the graph.
func (g *Graph) HasNode(uid string) bool {
	_, ok := g.nodes[uid]
	return ok
}

// Node returns the node registered under uid.
func (g *Graph) Node(uid string) (domain.Node, bool) {
	n, ok := g.nodes[uid]
	return n, ok
}

// Nodes returns every registered node, in insertion order.
func (g *Graph) Nodes() []domain.Node {
	out := make([]domain.Node, 0, len(g.order))
	for _, uid := range g.order {
		out = append(out, g.nodes[uid])
	}
	return out
}

// NodeCount is the number of distinct nodes the graph holds.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// IsEmpty reports whether the graph holds no nodes at all — the
// signal the graph builder's precondition failure produces.
func (g *Graph) IsEmpty() bool { return len(g.nodes) == 0 }

// Neighbors returns the uids reachable by a single outgoing edge from
// uid, sorted lexicographically so enumeration order is deterministic
// regardless of lvlath's internal map iteration order.
func (g *Graph) Neighbors(uid string) []string {
	vs := g.lv.Neighbors(uid)
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	sort.Strings(out)
	return out
}

// Edge returns the mode of transport and cost of the edge from → to,
// if one exists.
func (g *Graph) Edge(fromUID, toUID string) (domain.TransportType, int, bool) {
	mot, ok := g.mot[edgeKey{fromUID, toUID}]
	if !ok {
		return 0, 0, false
	}
	for _, e := range g.lv.AdjacencyList()[fromUID][toUID] {
		return mot, int(e.Weight), true
	}
	return 0, 0, false
}
