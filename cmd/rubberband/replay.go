package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wesen/rubberband/internal/replay"
	"github.com/wesen/rubberband/internal/ui"
)

func replayCmd(g *globalFlags) *cobra.Command {
	var (
		draw bool
		cell int
	)

	cmd := &cobra.Command{
		Use:   "replay <scenario.toml>",
		Short: "Replay a scripted drag gesture without a terminal",
		Long: "Replay a TOML gesture scenario against an in-memory canvas and\n" +
			"print the rectangle, quadrant and pan after every step.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, closeLog, err := setupLogging(*g)
			if err != nil {
				return err
			}
			defer closeLog()

			s, err := replay.Load(args[0])
			if err != nil {
				return err
			}
			rep, err := replay.Run(s)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), args[0], rep)
			if draw {
				if cell <= 0 {
					cell = (s.Container.Width + 79) / 80
				}
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), rep.Draw(cell))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&draw, "draw", false, "render the final frame as text")
	cmd.Flags().IntVar(&cell, "cell", 0, "pixels per character when drawing (0 fits 80 columns)")
	return cmd
}

func printReport(w io.Writer, name string, rep *replay.Report) {
	fmt.Fprintf(w, "%s %s\n\n", ui.Brand.Sprint("replay"), name)
	for _, res := range rep.Results {
		line := res.String()
		switch {
		case res.Commit != nil:
			ui.Good.Fprintln(w, line)
		case res.Kind == "down":
			ui.Info.Fprintln(w, line)
		case res.Flipped:
			ui.Warn.Fprintln(w, line)
		case res.Kind == "frame":
			ui.Subtle.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w)
	ui.KV(w, "final translate", rep.Translate)
	ui.KV(w, "commits", len(rep.Commits()))
}
