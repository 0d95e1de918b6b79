package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacehub/space-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, press Esc to return to the menu and play again.
Scores are kept for as long as the arcade runs.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Session scoreboard
  T            - Toggle dark/light theme
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30 --theme light`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := configureGames(""); err != nil {
		return err
	}

	theme, ok := tui.ThemeByName(flagTheme)
	if !ok {
		logger.Warn("unknown theme, using dark", "theme", flagTheme)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, runtimeConfig(), playerName(), theme); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
