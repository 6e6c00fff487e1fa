// neotower is a vertical platformer: climb 128 generated levels across
// eight themed worlds as fast as you can.
//
// Usage:
//
//	neotower play             - Play from the saved level
//	neotower replay <file>    - Play a recording back headlessly
//	neotower scores           - Show the fastest runs
//	neotower levels [n]       - Describe generated levels
//
// Global flags:
//
//	--db <path>       - Save database (default: ~/.neotower/save.db)
//	--config <path>   - Tuning YAML (default: embedded)
//	--seed <value>    - RNG seed (0 = random based on time)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/neotower/internal/infrastructure/config"
	"github.com/younwookim/neotower/internal/infrastructure/storage"
)

var timeNow = time.Now

// globalFlags are shared by every subcommand
type globalFlags struct {
	dbPath     string
	configPath string
	seed       int64
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "neotower",
		Short: "NeoTower Quest - climb the tower",
		Long: `NeoTower Quest is a vertical platformer. Each level is a tall shaft of
one-way platforms with coins, hazards and enemies; reach the goal at the
top to unlock the next one. Every tenth level has a boss.

Examples:
  neotower play
  neotower play --level 12 --record run.json
  neotower replay run.json
  neotower scores
  neotower levels 10`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.dbPath, "db", "~/.neotower/save.db", "Path to save database")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to tuning YAML (default: embedded)")
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "RNG seed (0 = random based on time)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newPlayCmd(flags))
	root.AddCommand(newReplayCmd(flags))
	root.AddCommand(newScoresCmd(flags))
	root.AddCommand(newLevelsCmd(flags))
	return root
}

// logger creates the process logger writing to w
func (f *globalFlags) logger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "neotower",
	})
	if f.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// config resolves the tuning file, or the embedded defaults
func (f *globalFlags) config() (*config.GameConfig, error) {
	cfg, err := config.Resolve(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveSeed returns the seed flag, or a time based seed when unset
func (f *globalFlags) resolveSeed() int64 {
	if f.seed != 0 {
		return f.seed
	}
	return time.Now().UnixNano()
}

func (f *globalFlags) openStore() (*storage.SQLiteStore, error) {
	store, err := storage.Open(f.dbPath)
	if err != nil {
		return nil, fmt.Errorf("open save database: %w", err)
	}
	return store, nil
}
