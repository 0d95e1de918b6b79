// arcade is a space arcade for the terminal and the desktop.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window <game>     - Play a game in a desktop window
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Game config YAML (play, window) or a directory
//	                         of <game>.yaml files (menu, serve)
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--theme <name>         - dark or light
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spacehub/space-arcade/internal/config"
	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/games/spacejump"
	"github.com/spacehub/space-arcade/internal/games/spacerace"
	"github.com/spacehub/space-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagTheme      string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Space Arcade - shoot and race in your terminal",
	Long: `Space Arcade runs two games on a shared frame loop:

  spacejump  - vertical shooter: dodge, collect stars, destroy enemies
  spacerace  - race three AI pilots through an asteroid field

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  menu     - Interactive game picker with session scores
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play spacejump
  arcade window spacerace --theme light
  arcade menu --difficulty hard
  arcade serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Game config YAML; a directory of <game>.yaml files for menu and serve")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "dark", "Color theme: dark, light")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// gameIDs lists the games the menu and the server configure.
var gameIDs = []string{"spacejump", "spacerace"}

// configureGames applies --config and --difficulty. An empty gameID
// configures every game, which is what the menu needs.
func configureGames(gameID string) error {
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		preset = p
	}

	paths, err := configPaths(gameID, flagConfig)
	if err != nil {
		return err
	}
	if path, ok := paths["spacejump"]; ok {
		spacejump.SetConfigPath(path)
		spacejump.SetDifficultyPreset(preset)
	}
	if path, ok := paths["spacerace"]; ok {
		spacerace.SetConfigPath(path)
		spacerace.SetDifficultyPreset(preset)
	}
	return nil
}

// configPaths maps each configured game to its config file. A single game
// takes path as its YAML file. The menu and the server take path as a
// directory of <game>.yaml files, so one game's file never configures
// another.
func configPaths(gameID, path string) (map[string]string, error) {
	paths := make(map[string]string)
	if gameID != "" {
		if path != "" {
			if _, err := os.Stat(path); err != nil {
				logger.Warn("config file not readable, using defaults", "path", path, "error", err)
			}
		}
		paths[gameID] = path
		return paths, nil
	}

	for _, id := range gameIDs {
		paths[id] = ""
	}
	if path == "" {
		return paths, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("--config must be a directory of <game>.yaml files for the menu and the server, got file %s", path)
	}
	for _, id := range gameIDs {
		file := filepath.Join(path, id+".yaml")
		if _, err := os.Stat(file); err != nil {
			logger.Warn("no config for game, using defaults", "game", id, "dir", path)
			continue
		}
		paths[id] = file
	}
	return paths, nil
}

// openStore opens the session leaderboard, degrading to no scores.
func openStore() *storage.Store {
	store, err := storage.Open()
	if err != nil {
		logger.Warn("session leaderboard unavailable", "error", err)
		return nil
	}
	return store
}

// playerName is the name scores are saved under.
func playerName() string {
	return config.GetEnv("USER", "player")
}
