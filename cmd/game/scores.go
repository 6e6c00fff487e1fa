package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/neotower/internal/infrastructure/storage"
)

func newScoresCmd(flags *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the fastest runs",
		Long: `Display the fastest completed runs and the saved progress.

Examples:
  neotower scores
  neotower scores --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.Progress.LeaderboardShown
			}

			store, err := flags.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			logger := flags.logger(cmd.ErrOrStderr())

			board, err := storage.LoadLeaderboard(store)
			if errors.Is(err, storage.ErrMalformed) {
				logger.Warn("ignoring unreadable leaderboard", "error", err)
			} else if err != nil {
				return fmt.Errorf("read leaderboard: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Fastest runs - NeoTower Quest")
			fmt.Fprintln(out)

			if len(board) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
			} else {
				fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Name", "Time")
				fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "----", "----")
				for i, e := range storage.Top(board, limit) {
					fmt.Fprintf(out, "  %-4d  %-10s  %.2fs\n", i+1, e.Name, e.Time)
				}
			}

			// LoadProgress falls back to defaults on error
			prog, err := storage.LoadProgress(store, cfg, timeNow())
			if err != nil {
				logger.Warn("ignoring saved progress", "error", err)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Saved run: level %d (unlocked %d), %d lives, score %d\n",
				prog.Level, prog.Unlocked, prog.Lives, prog.Score)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of runs to show (default from config)")
	return cmd
}
