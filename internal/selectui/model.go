// Package selectui is the terminal host for the rubberband engine: a
// pannable, zoomable graph canvas where dragging on blank space draws a
// selection marquee that scrolls the view near the edges.
package selectui

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/wesen/rubberband/internal/config"
	"github.com/wesen/rubberband/internal/selectfilter"
	"github.com/wesen/rubberband/pkg/rubberband"
)

// Options configures a Model.
type Options struct {
	Config *config.Config
	// Graph defaults to SampleGraph(10, 8).
	Graph  *Graph
	Logger *slog.Logger
}

// marquee is the overlay element the controller writes to.
type marquee struct {
	rect    rubberband.Rect
	visible bool
}

func (m *marquee) Draw(r rubberband.Rect) {
	m.rect = r
	m.visible = true
}

// panFrameMsg is one scheduled auto-pan frame.
type panFrameMsg struct {
	gen uint64
}

// Model is the application state.
type Model struct {
	Width, Height int
	// MouseX and MouseY are relative to the canvas region.
	MouseX, MouseY int

	canvas  *Canvas
	ctrl    *rubberband.Controller
	marquee *marquee
	frame   time.Duration
	grid    image.Point
	log     *slog.Logger

	// Live gesture feedback.
	last    rubberband.Sample
	preview map[int]bool
	commit  *rubberband.Commit

	// Node drag state
	Dragging   bool
	DragNodeID int
	DragOff    image.Point

	// Filter modal state
	FilterOpen  bool
	FilterInput textinput.Model
	FilterErr   string

	Status string
}

// NewModel builds the model from opts.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	g := opts.Graph
	if g == nil {
		g = SampleGraph(10, 8)
	}

	engine, err := cfg.EngineConfig()
	if err != nil {
		return Model{}, err
	}
	resolver, err := cfg.Resolver()
	if err != nil {
		return Model{}, err
	}
	filter, err := selectfilter.Compile(cfg.Filter.Expr, log)
	if err != nil {
		return Model{}, err
	}

	canvas := NewCanvas(g, image.Rectangle{}, log)
	canvas.Camera().SetZoom(cfg.Canvas.Zoom)
	canvas.SetFilter(filter)

	mq := &marquee{}
	ctrl, err := rubberband.NewController(canvas, engine,
		rubberband.WithOverlay(mq),
		rubberband.WithResolver(resolver),
	)
	if err != nil {
		return Model{}, fmt.Errorf("selectui: %w", err)
	}

	return Model{
		canvas:     canvas,
		ctrl:       ctrl,
		marquee:    mq,
		frame:      cfg.FrameInterval(),
		grid:       image.Pt(cfg.Canvas.GridX, cfg.Canvas.GridY),
		log:        log,
		DragNodeID: -1,
	}, nil
}

// Canvas returns the canvas collaborator.
func (m Model) Canvas() *Canvas { return m.canvas }

// Controller returns the drag controller.
func (m Model) Controller() *rubberband.Controller { return m.ctrl }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
