package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wesen/rubberband/pkg/rubberband"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Engine.EdgeThreshold != 3 || cfg.Engine.PanSpeed != 2 || cfg.Engine.MinSize != 2 {
		t.Errorf("engine defaults: got %+v", cfg.Engine)
	}
	if cfg.Canvas.Zoom != 1 {
		t.Errorf("expected zoom 1, got %g", cfg.Canvas.Zoom)
	}
	if cfg.FrameInterval() != 60*time.Millisecond {
		t.Errorf("frame interval: got %v", cfg.FrameInterval())
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	if dir := Dir(); dir != "/tmp/test-xdg/rubberband" {
		t.Errorf("expected /tmp/test-xdg/rubberband, got %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "rubberband")
	if dir := Dir(); dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Engine.PanSpeed = 5
	cfg.Engine.TieBreak = "first"
	cfg.Filter.Expr = `node.kind == "db"`
	if err := Save(cfg, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Engine.PanSpeed != 5 {
		t.Errorf("expected pan_speed 5, got %d", loaded.Engine.PanSpeed)
	}
	if loaded.Filter.Expr != cfg.Filter.Expr {
		t.Errorf("expected filter %q, got %q", cfg.Filter.Expr, loaded.Filter.Expr)
	}
	r, err := loaded.Resolver()
	if err != nil {
		t.Fatalf("Resolver: %v", err)
	}
	if _, ok := r.(rubberband.FirstCheckedEdge); !ok {
		t.Errorf("expected FirstCheckedEdge, got %T", r)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.EdgeThreshold != Default().Engine.EdgeThreshold {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[engine]\nedge_threshold = 6\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.EdgeThreshold != 6 {
		t.Errorf("expected edge_threshold 6, got %d", cfg.Engine.EdgeThreshold)
	}
	if cfg.Engine.PanSpeed != 2 || cfg.Canvas.FrameMS != 60 {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative threshold", "[engine]\nedge_threshold = -1\n"},
		{"tie break", "[engine]\ntie_break = \"random\"\n"},
		{"corner", "[engine]\ncorner = \"both\"\n"},
		{"zoom", "[canvas]\nzoom = 9.0\n"},
		{"frame", "[canvas]\nframe_ms = 0\n"},
		{"misspelled key", "[engine]\nedge_treshold = 3\n"},
		{"unknown table", "[colors]\nbg = \"#000\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[engine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnsureExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	wrote, err := EnsureExists(path)
	if err != nil || !wrote {
		t.Fatalf("first EnsureExists: wrote=%v err=%v", wrote, err)
	}
	wrote, err = EnsureExists(path)
	if err != nil || wrote {
		t.Fatalf("second EnsureExists: wrote=%v err=%v", wrote, err)
	}
}

func TestResolverCorner(t *testing.T) {
	cfg := Default()
	cfg.Engine.Corner = "vertical"
	r, err := cfg.Resolver()
	if err != nil {
		t.Fatal(err)
	}
	ce, ok := r.(rubberband.ClosestEdge)
	if !ok || ce.Corner != rubberband.CornerVertical {
		t.Errorf("expected vertical ClosestEdge, got %#v", r)
	}
}
