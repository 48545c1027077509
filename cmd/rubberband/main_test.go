package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/wesen/rubberband/pkg/rubberband"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReplayCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	scenario := `
[container]
width = 800
height = 600

[[step]]
down = [600, 300]

[[step]]
move = [790, 400]

[[step]]
frames = 2

[[step]]
up = true
`
	if err := os.WriteFile(path, []byte(scenario), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "replay", "--draw", path)
	if err != nil {
		t.Fatalf("replay: %v\n%s", err, out)
	}
	for _, want := range []string{"frame", "translate=(-18,0)", "commits"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReplayMissingFile(t *testing.T) {
	if _, err := run(t, "replay", filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing scenario")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubberband", "config.toml")

	out, err := run(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "wrote") {
		t.Errorf("init output: %q", out)
	}

	out, err = run(t, "--config", path, "config", "init")
	if err != nil || !strings.Contains(out, "already exists") {
		t.Errorf("second init: %q %v", out, err)
	}

	out, err = run(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "edge_threshold = 3") {
		t.Errorf("show output:\n%s", out)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	out, err := run(t, "config", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "/tmp/xdg-test/rubberband/config.toml" {
		t.Errorf("path: %q", out)
	}
}

func TestSetupLoggingWritesEngineEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubberband.log")
	_, closeLog, err := setupLogging(globalFlags{logFile: path, debug: true})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { rubberband.SetLogger(nil) })

	rubberband.Logger().Debug("rubberband: gesture start", "anchor", "1,2")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "gesture start") || !strings.Contains(string(data), "level=DEBUG") {
		t.Errorf("log file = %q", data)
	}
}

func TestSetupLoggingBadPath(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := setupLogging(globalFlags{logFile: dir}); err == nil {
		t.Error("expected an error opening a directory as log file")
	}
}
