package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/neotower/internal/application/replay"
)

func newReplayCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Play a recording back headlessly",
		Long: `Run a recording made with 'neotower play --record' through the simulation
without opening a window, and print where the run ended up. The save
database is not touched.

Examples:
  neotower replay run.json
  neotower replay run.json --config tuning.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := replay.LoadReplay(args[0])
			if err != nil {
				return err
			}

			cfg, err := flags.config()
			if err != nil {
				return err
			}

			res, err := replay.Run(cfg, *data, flags.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Replay %s (seed %d, %d frames)\n", args[0], data.Seed, len(data.Frames))
			fmt.Fprintf(out, "  frames played:    %d\n", res.Frames)
			fmt.Fprintf(out, "  levels completed: %d\n", res.Levels)
			fmt.Fprintf(out, "  lives lost:       %d\n", res.LivesLost)
			fmt.Fprintf(out, "  level:            %d\n", res.Progress.Level)
			fmt.Fprintf(out, "  lives:            %d\n", res.Progress.Lives)
			fmt.Fprintf(out, "  score:            %d\n", res.Progress.Score)
			fmt.Fprintf(out, "  mode:             %s\n", res.Progress.Mode)
			fmt.Fprintf(out, "  time:             %.2fs\n", res.RunTime)
			if res.Ended {
				fmt.Fprintln(out, "  tower cleared")
			}
			return nil
		},
	}
}
