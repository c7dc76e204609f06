package commands

import (
	"fmt"
	"os"

	"github.com/bleeeehhhhhhhhh/spipy/internal/config"
	"github.com/bleeeehhhhhhhhh/spipy/internal/printer"
	"github.com/spf13/cobra"
)

var (
	initBoard string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Spipy feed",
	Long: `Initialize a new Spipy feed in the current directory.

Creates:
  • .spipy.yml - Feed configuration (board name, data directory, remote board)
  • .spipy/    - Durable local storage directory

Edit .spipy.yml afterwards to point at your board's Redis server, or remove
the remote section to keep the feed local-only.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initBoard, "board", "b", "default", "Board name for this feed")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing .spipy.yml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			return printer.Error(
				".spipy.yml already exists",
				"This directory is already a Spipy feed.",
				[]string{"Reinitialize with:\n  spipy init --force"},
			)
		}
	}

	cfg := config.Default()
	cfg.Board = initBoard
	if err := cfg.Validate(); err != nil {
		return printer.Error(
			"invalid board name",
			err.Error(),
			[]string{"Pick a short name without colons or whitespace:\n  spipy init --board my-feed"},
		)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(config.DefaultFileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.DefaultFileName, err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	printer.Success("Initialized Spipy feed on board '%s'\n", cfg.Board)
	printer.Info("\nNext steps:\n")
	printer.Info("  1. Point remote.redis_addr in .spipy.yml at your board (or delete the remote section)\n")
	printer.Info("  2. Post something:  spipy post note \"hello world\"\n")
	printer.Info("  3. See the feed:    spipy list\n")

	return nil
}
