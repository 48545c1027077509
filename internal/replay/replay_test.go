package replay

import (
	"errors"
	"image"
	"reflect"
	"strings"
	"testing"
)

const basic = `
[container]
width = 800
height = 600

[[node]]
label = "inside"
x = 150
y = 120
w = 50
h = 50

[[node]]
label = "outside"
x = 500
y = 400
w = 50
h = 50

[[step]]
down = [100, 100]

[[step]]
move = [300, 250]

[[step]]
up = true
`

func mustParse(t *testing.T, data string) *Scenario {
	t.Helper()
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestRunWithoutPan(t *testing.T) {
	rep, err := Run(mustParse(t, basic))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(rep.Results))
	}
	mv := rep.Results[1]
	if mv.Rect.Left != 100 || mv.Rect.Top != 100 || mv.Rect.Width != 200 || mv.Rect.Height != 150 {
		t.Errorf("move rect: got %+v", mv.Rect)
	}
	commits := rep.Commits()
	if len(commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(commits))
	}
	if commits[0].Screen != image.Rect(100, 100, 300, 250) {
		t.Errorf("commit screen: got %v", commits[0].Screen)
	}
	if !reflect.DeepEqual(commits[0].Selected, []int{0}) {
		t.Errorf("selected: got %v, want [0]", commits[0].Selected)
	}
	if rep.Translate != (image.Point{}) {
		t.Errorf("translate: got %v", rep.Translate)
	}
}

const rightEdge = `
zoom = %s

[container]
width = 800
height = 600

[[step]]
down = [600, 300]

[[step]]
move = [790, 400]

[[step]]
frames = 5

[[step]]
up = true
`

func TestRunRightEdgePan(t *testing.T) {
	rep, err := Run(mustParse(t, strings.Replace(rightEdge, "%s", "1.0", 1)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.Results) != 8 {
		t.Fatalf("expected 8 results, got %d", len(rep.Results))
	}
	if rep.Translate != image.Pt(-36, 0) {
		t.Errorf("translate: got %v, want (-36,0)", rep.Translate)
	}
	c := rep.Commits()[0]
	if c.Screen != image.Rect(564, 300, 790, 400) {
		t.Errorf("commit screen: got %v, want (564,300)-(790,400)", c.Screen)
	}
	for _, res := range rep.Results[1:7] {
		if !res.Panning {
			t.Errorf("step %d %s: pan loop not running", res.Step, res.Kind)
		}
	}
}

func TestRunZoomScalesPan(t *testing.T) {
	rep, err := Run(mustParse(t, strings.Replace(rightEdge, "%s", "2.0", 1)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Six steps of round(-6/2).
	if rep.Translate != image.Pt(-18, 0) {
		t.Errorf("translate: got %v, want (-18,0)", rep.Translate)
	}
}

func TestRunInvalidZoomClamped(t *testing.T) {
	rep, err := Run(mustParse(t, strings.Replace(rightEdge, "%s", "0.0", 1)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Translate != image.Pt(-36, 0) {
		t.Errorf("translate: got %v, want (-36,0)", rep.Translate)
	}
}

func TestFramesWithoutLoopRecordNothing(t *testing.T) {
	data := strings.Replace(basic, "[[step]]\nup = true", "[[step]]\nframes = 3\n\n[[step]]\nup = true", 1)
	rep, err := Run(mustParse(t, data))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.Results) != 3 {
		t.Errorf("expected 3 results, got %d", len(rep.Results))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no container", "[[step]]\nup = true\n"},
		{"no steps", "[container]\nwidth = 10\nheight = 10\n"},
		{"two actions", "[container]\nwidth = 10\nheight = 10\n[[step]]\nup = true\nleave = true\n"},
		{"bad point", "[container]\nwidth = 10\nheight = 10\n[[step]]\ndown = [1]\n"},
		{"unknown key", "[container]\nwidth = 10\nheight = 10\ndepth = 3\n[[step]]\nup = true\n"},
		{"bad tie break", "[container]\nwidth = 10\nheight = 10\n[engine]\ntie_break = \"x\"\n[[step]]\nup = true\n"},
		{"malformed", "[container\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.data)
			if err == nil {
				_, err = Run(s)
			}
			if !errors.Is(err, ErrScenario) {
				t.Errorf("expected ErrScenario, got %v", err)
			}
		})
	}
}

func TestRunMoveWithoutDown(t *testing.T) {
	s := mustParse(t, "[container]\nwidth = 10\nheight = 10\n[[step]]\nmove = [1, 1]\n")
	if _, err := Run(s); !errors.Is(err, ErrScenario) {
		t.Errorf("expected ErrScenario, got %v", err)
	}
}

func TestDraw(t *testing.T) {
	s := mustParse(t, `
[container]
width = 20
height = 6

[engine]
edge_threshold = 0
min_size = 0

[[node]]
x = 1
y = 1
w = 4
h = 3

[[step]]
down = [8, 1]

[[step]]
move = [15, 4]
`)
	rep, err := Run(s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(rep.Draw(1), "\n")
	want := []string{
		strings.Repeat(" ", 20),
		" ┌──┐   ┌╌╌╌╌╌┐     ",
		" │  │   ╎     ╎     ",
		" └──┘   └╌╌╌╌╌┘     ",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d:\n got %q\nwant %q", i, lines[i], w)
		}
	}
}

func TestResultString(t *testing.T) {
	rep, err := Run(mustParse(t, basic))
	if err != nil {
		t.Fatal(err)
	}
	if got := rep.Results[1].String(); !strings.Contains(got, "rect=100,100 200x150") {
		t.Errorf("move line: %q", got)
	}
	if got := rep.Results[2].String(); !strings.Contains(got, "selected=[0]") {
		t.Errorf("commit line: %q", got)
	}
}
