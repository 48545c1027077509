package graphmodel

import (
	"image"
	"slices"
)

// Node is a graph vertex: caller data plus the ID the graph assigned.
type Node[N Spatial] struct {
	ID   int
	Data N
}

// Edge is a directed link between two node IDs.
type Edge[E any] struct {
	FromID int
	ToID   int
	Data   E
}

// Graph holds nodes in insertion order, which is also their stacking
// order: later nodes are drawn and hit-tested above earlier ones.
type Graph[N Spatial, E any] struct {
	byID   map[int]*Node[N]
	order  []*Node[N]
	edges  []Edge[E]
	nextID int
}

// New returns an empty graph.
func New[N Spatial, E any]() *Graph[N, E] {
	return &Graph[N, E]{byID: make(map[int]*Node[N])}
}

// AddNode stores data on top of the stack and returns its ID. IDs are
// never reused.
func (g *Graph[N, E]) AddNode(data N) int {
	n := &Node[N]{ID: g.nextID, Data: data}
	g.nextID++
	g.byID[n.ID] = n
	g.order = append(g.order, n)
	return n.ID
}

// Node returns the node with the given ID, or nil.
func (g *Graph[N, E]) Node(id int) *Node[N] {
	return g.byID[id]
}

// Len returns the number of nodes.
func (g *Graph[N, E]) Len() int { return len(g.order) }

// Nodes returns the nodes bottom to top.
func (g *Graph[N, E]) Nodes() []*Node[N] {
	return slices.Clone(g.order)
}

// IDs returns the node IDs bottom to top.
func (g *Graph[N, E]) IDs() []int {
	return ids(g.order)
}

// RemoveNode deletes a node together with every edge touching it.
func (g *Graph[N, E]) RemoveNode(id int) {
	if _, ok := g.byID[id]; !ok {
		return
	}
	delete(g.byID, id)
	g.order = slices.DeleteFunc(g.order, func(n *Node[N]) bool { return n.ID == id })
	g.edges = slices.DeleteFunc(g.edges, func(e Edge[E]) bool { return e.FromID == id || e.ToID == id })
}

// MoveNode repositions a node through setPos; N is usually a value type,
// so the graph cannot call a setter on it directly.
func (g *Graph[N, E]) MoveNode(id int, pos image.Point, setPos func(*N, image.Point)) {
	if n := g.byID[id]; n != nil {
		setPos(&n.Data, pos)
	}
}

// AddEdge links fromID to toID. Repeated pairs and unknown IDs are
// ignored.
func (g *Graph[N, E]) AddEdge(fromID, toID int, data E) {
	if g.byID[fromID] == nil || g.byID[toID] == nil {
		return
	}
	dup := slices.ContainsFunc(g.edges, func(e Edge[E]) bool {
		return e.FromID == fromID && e.ToID == toID
	})
	if !dup {
		g.edges = append(g.edges, Edge[E]{FromID: fromID, ToID: toID, Data: data})
	}
}

// Edges returns the edges in insertion order. The slice is shared with
// the graph.
func (g *Graph[N, E]) Edges() []Edge[E] {
	return g.edges
}

// HitTest returns the topmost node containing pt, or nil.
func (g *Graph[N, E]) HitTest(pt image.Point) *Node[N] {
	for _, n := range slices.Backward(g.order) {
		if pt.In(BoundsOf(n.Data)) {
			return n
		}
	}
	return nil
}

// nodesInRect is IDsInRect returning the nodes.
func (g *Graph[N, E]) nodesInRect(r image.Rectangle) []*Node[N] {
	if r.Empty() {
		if n := g.HitTest(r.Min); n != nil {
			return []*Node[N]{n}
		}
		return nil
	}
	var hits []*Node[N]
	for _, n := range g.order {
		if BoundsOf(n.Data).Overlaps(r) {
			hits = append(hits, n)
		}
	}
	return hits
}

// IDsInRect returns the IDs of the nodes overlapping r, bottom to top. An
// empty r selects the topmost node under r.Min, so a click without drag
// still picks something.
func (g *Graph[N, E]) IDsInRect(r image.Rectangle) []int {
	return ids(g.nodesInRect(r))
}

// Bounds returns the union of all node rectangles.
func (g *Graph[N, E]) Bounds() image.Rectangle {
	var u image.Rectangle
	for _, n := range g.order {
		u = u.Union(BoundsOf(n.Data))
	}
	return u
}

func ids[N Spatial](nodes []*Node[N]) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}
