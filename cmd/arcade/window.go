package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacehub/space-arcade/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the specified game in a desktop window rendered with Ebitengine.
The window uses real key up/down events, so held keys never decay.

Controls:
  Arrows/WASD   - Move (race: steer, throttle up/down)
  Shift         - Boost (race)
  Enter/Space   - Start the race
  P             - Pause
  R             - Restart
  T             - Toggle dark/light palette
  Q/Esc         - Quit

Examples:
  arcade window spacejump
  arcade window spacerace --theme light --fps 120`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	game, err := prepareGame(args[0])
	if err != nil {
		return err
	}

	palette, ok := window.PaletteByName(flagTheme)
	if !ok {
		logger.Warn("unknown theme, using dark", "theme", flagTheme)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	if err := window.Run(game, store, cfg, playerName(), palette); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
