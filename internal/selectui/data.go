package selectui

import (
	"fmt"
	"image"

	"github.com/wesen/rubberband/internal/selectfilter"
	"github.com/wesen/rubberband/pkg/graphmodel"
)

// KindInfo is the display metadata of a node kind.
type KindInfo struct {
	Tag  string
	W, H int
}

var kindInfo = map[string]KindInfo{
	"service": {Tag: "S", W: 12, H: 3},
	"db":      {Tag: "DB", W: 10, H: 3},
	"queue":   {Tag: "Q", W: 10, H: 3},
	"client":  {Tag: "C", W: 8, H: 3},
}

var kindOrder = []string{"service", "db", "queue", "client"}

// NodeData is a canvas node in world cells.
type NodeData struct {
	Kind  string
	Label string
	X, Y  int
}

// Pos implements graphmodel.Spatial.
func (n NodeData) Pos() image.Point { return image.Pt(n.X, n.Y) }

// Size implements graphmodel.Spatial.
func (n NodeData) Size() image.Point {
	info, ok := kindInfo[n.Kind]
	if !ok {
		return image.Pt(8, 3)
	}
	return image.Pt(info.W, info.H)
}

// SetPos is the setter for graphmodel.MoveNode.
func SetPos(n *NodeData, p image.Point) {
	n.X, n.Y = p.X, p.Y
}

// EdgeData carries no payload; edges are drawn as plain arrows.
type EdgeData struct{}

// Graph is the canvas graph.
type Graph = graphmodel.Graph[NodeData, EdgeData]

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return graphmodel.New[NodeData, EdgeData]()
}

// SampleGraph lays out cols×rows nodes on a grid wide enough to need
// scrolling, with a sparse set of edges between neighbours.
func SampleGraph(cols, rows int) *Graph {
	const stepX, stepY = 16, 6
	g := NewGraph()
	ids := make([][]int, rows)
	for r := range rows {
		ids[r] = make([]int, cols)
		for c := range cols {
			kind := kindOrder[(r+c)%len(kindOrder)]
			ids[r][c] = g.AddNode(NodeData{
				Kind:  kind,
				Label: fmt.Sprintf("%s-%d.%d", kind, r, c),
				X:     2 + c*stepX,
				Y:     1 + r*stepY,
			})
		}
	}
	for r := range rows {
		for c := range cols {
			if c+1 < cols && (r+c)%2 == 0 {
				g.AddEdge(ids[r][c], ids[r][c+1], EdgeData{})
			}
			if r+1 < rows && c%3 == 0 {
				g.AddEdge(ids[r][c], ids[r+1][c], EdgeData{})
			}
		}
	}
	return g
}

// filterNode exposes a node to the selection filter.
func filterNode(g *Graph, id int) (selectfilter.Node, bool) {
	n := g.Node(id)
	if n == nil {
		return selectfilter.Node{}, false
	}
	return selectfilter.Node{
		ID:    n.ID,
		Label: n.Data.Label,
		Kind:  n.Data.Kind,
		X:     n.Data.X,
		Y:     n.Data.Y,
	}, true
}
