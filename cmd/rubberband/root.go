package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/wesen/rubberband/internal/config"
	"github.com/wesen/rubberband/internal/selectui"
	"github.com/wesen/rubberband/pkg/rubberband"
)

var version = "0.1.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logFile    string
	debug      bool
}

func rootCmd() *cobra.Command {
	var (
		g       globalFlags
		cols    int
		rows    int
		engine  config.EngineConfig
		zoom    float64
		filter  string
		frameMS int
	)

	cmd := &cobra.Command{
		Use:           "rubberband",
		Short:         "Graph canvas with marquee selection and edge auto-pan",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(g.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("edge-threshold") {
				cfg.Engine.EdgeThreshold = engine.EdgeThreshold
			}
			if flags.Changed("pan-speed") {
				cfg.Engine.PanSpeed = engine.PanSpeed
			}
			if flags.Changed("min-size") {
				cfg.Engine.MinSize = engine.MinSize
			}
			if flags.Changed("tie-break") {
				cfg.Engine.TieBreak = engine.TieBreak
			}
			if flags.Changed("corner") {
				cfg.Engine.Corner = engine.Corner
			}
			if flags.Changed("zoom") {
				cfg.Canvas.Zoom = zoom
			}
			if flags.Changed("filter") {
				cfg.Filter.Expr = filter
			}
			if flags.Changed("frame-ms") {
				cfg.Canvas.FrameMS = frameMS
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, closeLog, err := setupLogging(g)
			if err != nil {
				return err
			}
			defer closeLog()

			model, err := selectui.NewModel(selectui.Options{
				Config: cfg,
				Graph:  selectui.SampleGraph(cols, rows),
				Logger: log,
			})
			if err != nil {
				return err
			}
			log.Info("starting", "nodes", cols*rows, "engine", cfg.Engine)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return fmt.Errorf("run: %w", err)
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default "+config.Path()+")")
	pf.StringVar(&g.logFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&g.debug, "debug", false, "log gesture events at debug level")

	f := cmd.Flags()
	f.IntVar(&cols, "cols", 10, "sample graph columns")
	f.IntVar(&rows, "rows", 8, "sample graph rows")
	f.IntVar(&engine.EdgeThreshold, "edge-threshold", 0, "auto-pan edge band in cells")
	f.IntVar(&engine.PanSpeed, "pan-speed", 0, "auto-pan step per frame in cells")
	f.IntVar(&engine.MinSize, "min-size", 0, "marquee freeze threshold in cells")
	f.StringVar(&engine.TieBreak, "tie-break", "", "opposing edge tie break: closest or first")
	f.StringVar(&engine.Corner, "corner", "", "corner policy: diagonal, horizontal or vertical")
	f.Float64Var(&zoom, "zoom", 1, "initial zoom")
	f.StringVar(&filter, "filter", "", "JS selection filter, e.g. 'node.kind == \"db\"'")
	f.IntVar(&frameMS, "frame-ms", 0, "auto-pan frame interval in milliseconds")

	cmd.AddCommand(
		replayCmd(&g),
		configCmd(&g),
	)
	return cmd
}

// setupLogging builds the CLI logger and installs it as the engine logger.
// Without --log-file logs are discarded: stdout belongs to the TUI.
func setupLogging(g globalFlags) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if g.debug {
		level = slog.LevelDebug
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if g.logFile != "" {
		f, err := os.OpenFile(g.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	rubberband.SetLogger(log)
	return log, closeFn, nil
}
