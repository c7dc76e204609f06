package commands

import (
	"github.com/bleeeehhhhhhhhh/spipy/internal/printer"
	"github.com/bleeeehhhhhhhhh/spipy/internal/store"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the persisted theme preference",
	Long: `Show or set the theme preference stored alongside the feed.

With no argument, prints the current theme. With an argument, persists it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 0 {
		printer.Info("%s\n", a.store.Theme())
		return nil
	}

	theme := args[0]
	if theme != store.ThemeLight && theme != store.ThemeDark {
		return printer.Error(
			"unknown theme",
			"Themes are 'light' or 'dark'.",
			nil,
		)
	}

	if err := a.store.SetTheme(theme); err != nil {
		return err
	}

	if theme == store.ThemeDark {
		printer.Toast("Dark mode activated")
	} else {
		printer.Toast("Light mode activated")
	}
	return nil
}
