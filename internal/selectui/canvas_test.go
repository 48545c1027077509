package selectui

import (
	"image"
	"reflect"
	"testing"

	"github.com/wesen/rubberband/internal/selectfilter"
	"github.com/wesen/rubberband/pkg/rubberband"
)

// testGraph has three 8×3 client nodes: 0 and 1 side by side at the top,
// 2 below node 0.
func testGraph() *Graph {
	g := NewGraph()
	g.AddNode(NodeData{Kind: "client", Label: "a", X: 2, Y: 2})
	g.AddNode(NodeData{Kind: "client", Label: "b", X: 20, Y: 2})
	g.AddNode(NodeData{Kind: "db", Label: "c", X: 2, Y: 12})
	return g
}

func newTestCanvas() *Canvas {
	return NewCanvas(testGraph(), image.Rect(0, 1, 46, 23), nil)
}

func TestCanvasSelectInRectReplaces(t *testing.T) {
	cv := newTestCanvas()
	cv.Select(2)

	got := cv.SelectInRect(image.Rect(0, 1, 30, 8), 0)
	if !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("hits: got %v, want [0 1]", got)
	}
	if !reflect.DeepEqual(cv.Selected(), []int{0, 1}) {
		t.Errorf("selection: got %v, want [0 1]", cv.Selected())
	}
}

func TestCanvasSelectInRectShiftAdds(t *testing.T) {
	cv := newTestCanvas()
	cv.Select(2)

	cv.SelectInRect(image.Rect(15, 1, 30, 8), rubberband.ModShift)
	if !reflect.DeepEqual(cv.Selected(), []int{1, 2}) {
		t.Errorf("selection: got %v, want [1 2]", cv.Selected())
	}
}

func TestCanvasEmptyRectClick(t *testing.T) {
	cv := newTestCanvas()
	cv.Select(0)

	// A click on blank canvas clears the selection.
	if got := cv.SelectInRect(image.Rect(14, 9, 14, 9), 0); len(got) != 0 {
		t.Errorf("blank click hits: %v", got)
	}
	if len(cv.Selected()) != 0 {
		t.Errorf("blank click kept selection %v", cv.Selected())
	}

	// A zero-size rectangle on a node selects that node.
	if got := cv.SelectInRect(image.Rect(4, 4, 4, 4), 0); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("node click hits: got %v, want [0]", got)
	}
}

func TestCanvasHitsFollowCamera(t *testing.T) {
	cv := newTestCanvas()
	cv.TranslateBy(-18, 0)

	// Node 1 (world x 20..28) now sits at screen x 2..10.
	if got := cv.Hits(image.Rect(0, 1, 12, 8)); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("after pan: got %v, want [1]", got)
	}
	if got := cv.NodeAt(image.Pt(4, 4)); got != 1 {
		t.Errorf("NodeAt after pan: got %d, want 1", got)
	}
	if got := cv.NodeAt(image.Pt(40, 20)); got != -1 {
		t.Errorf("NodeAt blank: got %d, want -1", got)
	}
}

func TestCanvasFilter(t *testing.T) {
	cv := newTestCanvas()
	f, err := selectfilter.Compile(`node.kind == "db"`, nil)
	if err != nil {
		t.Fatal(err)
	}
	cv.SetFilter(f)

	if got := cv.SelectInRect(image.Rect(0, 1, 46, 23), 0); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("filtered hits: got %v, want [2]", got)
	}
	cv.SelectAll()
	if !reflect.DeepEqual(cv.Selected(), []int{2}) {
		t.Errorf("filtered select all: got %v", cv.Selected())
	}
}

func TestCanvasToggleAndDelete(t *testing.T) {
	cv := newTestCanvas()
	cv.Toggle(0)
	cv.Toggle(1)
	cv.Toggle(0)
	if !reflect.DeepEqual(cv.Selected(), []int{1}) {
		t.Fatalf("toggle: got %v, want [1]", cv.Selected())
	}
	if n := cv.DeleteSelected(); n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}
	if cv.Graph().Len() != 2 || cv.Graph().Node(1) != nil {
		t.Error("node 1 not removed")
	}
}

func TestSampleGraph(t *testing.T) {
	g := SampleGraph(4, 3)
	if g.Len() != 12 {
		t.Fatalf("expected 12 nodes, got %d", g.Len())
	}
	if len(g.Edges()) == 0 {
		t.Error("expected edges")
	}
	for _, a := range g.Nodes() {
		for _, b := range g.Nodes() {
			if a.ID != b.ID && nodeBounds(a.Data).Overlaps(nodeBounds(b.Data)) {
				t.Fatalf("nodes %d and %d overlap", a.ID, b.ID)
			}
		}
	}
}

func nodeBounds(d NodeData) image.Rectangle {
	return image.Rectangle{Min: d.Pos(), Max: d.Pos().Add(d.Size())}
}
