package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/neotower/internal/application/game"
	"github.com/younwookim/neotower/internal/application/scene/playing"
	"github.com/younwookim/neotower/internal/application/session"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

func newPlayCmd(flags *globalFlags) *cobra.Command {
	var (
		recordPath string
		level      int
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play from the saved level",
		Long: `Open the game window and continue the saved run.

Controls:
  Left/Right, A/D     - Move
  Up, W, Space        - Jump (double jump in the air)
  Down, S             - Slide
  X, K                - Attack (Fire mode shoots)
  Esc                 - Pause
  F5                  - Save recording now
  R                   - Play again after clearing the tower

Examples:
  neotower play
  neotower play --level 7
  neotower play --record run.json
  neotower play --config tuning.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if recordPath == "auto" {
				recordPath = playing.GenerateFilename()
			}
			return runPlay(cmd, flags, recordPath, level, watch)
		},
	}

	cmd.Flags().StringVar(&recordPath, "record", "", "Record input to file (\"auto\" picks a name)")
	cmd.Flags().IntVar(&level, "level", 0, "Start at an unlocked level")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload --config when it changes")
	return cmd
}

func runPlay(cmd *cobra.Command, flags *globalFlags, recordPath string, level int, watch bool) error {
	logger := flags.logger(cmd.ErrOrStderr())

	cfg, err := flags.config()
	if err != nil {
		return err
	}

	store, err := flags.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	seed := flags.resolveSeed()
	sess, err := session.New(cfg, store, session.Options{Seed: seed, Logger: logger})
	if err != nil {
		return err
	}
	if level > 0 {
		if err := sess.SelectLevel(level); err != nil {
			return err
		}
	}

	var watcher *config.Watcher
	if watch {
		if flags.configPath == "" {
			return fmt.Errorf("--watch needs --config")
		}
		watcher, err = config.NewWatcher(flags.configPath)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		logger.Info("watching config", "path", flags.configPath)
	}

	scene := playing.New(sess, playing.Options{
		Logger:     logger,
		RecordPath: recordPath,
		Seed:       seed,
		Watcher:    watcher,
	})
	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("NeoTower Quest")
	ebiten.SetTPS(cfg.Display.Framerate)

	return ebiten.RunGame(g)
}
