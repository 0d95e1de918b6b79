package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacehub/space-arcade/internal/platform/tui"
	"github.com/spacehub/space-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD      - Move (race: steer, throttle up/down)
  Shift+Arrow      - Boost (race)
  Enter/Space      - Start the race
  P                - Pause
  R                - Restart
  T                - Toggle dark/light theme
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play spacejump
  arcade play spacerace --seed 42
  arcade play spacejump --difficulty hard
  arcade play spacerace --config ./my-race.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := prepareGame(args[0])
	if err != nil {
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

	if err := tui.Run(game, store, runtimeConfig(), playerName(), theme); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// prepareGame validates the game ID, applies the config flags and creates
// the game.
func prepareGame(gameID string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}
	if err := configureGames(gameID); err != nil {
		return nil, err
	}
	return registry.Create(gameID)
}
