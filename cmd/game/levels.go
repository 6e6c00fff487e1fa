package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/younwookim/neotower/internal/application/system"
	"github.com/younwookim/neotower/internal/domain/entity"
)

func newLevelsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "levels [n]",
		Short: "Describe generated levels",
		Long: `Print the layout summary of level n, or of every level when n is
omitted. Layouts depend only on the level number.

Examples:
  neotower levels
  neotower levels 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}

			from, to := 1, cfg.World.MaxLevel()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid level %q", args[0])
				}
				from, to = n, n
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-5s  %-5s  %-20s  %6s  %5s  %5s  %7s  %5s  %s\n",
				"Level", "World", "Theme", "Height", "Plats", "Coins", "Hazards", "Foes", "Extras")
			for n := from; n <= to; n++ {
				lvl, err := system.GenerateLevel(cfg, n)
				if err != nil {
					return err
				}
				printLevel(out, lvl)
			}
			return nil
		},
	}
}

func printLevel(w io.Writer, lvl *entity.Level) {
	extras := ""
	if lvl.IsBoss {
		extras += " boss"
	}
	if len(lvl.HiddenRooms) > 0 {
		extras += " secret"
	}
	if len(lvl.Checkpoints) > 0 {
		extras += fmt.Sprintf(" cp=%d", len(lvl.Checkpoints))
	}
	fmt.Fprintf(w, "%-5d  %-5d  %-20s  %6.0f  %5d  %5d  %7d  %5d %s\n",
		lvl.Number, lvl.World, lvl.Theme.Name, lvl.Height,
		len(lvl.Platforms), len(lvl.Coins), len(lvl.Hazards), len(lvl.Enemies), extras)
}
