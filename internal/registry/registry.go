// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/spacehub/space-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no
// Bubble Tea or Ebitengine). The platform handles input sampling, frame
// timing and the drawing surface.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "spacejump").
	// Used for CLI commands and the session leaderboard.
	ID() string

	// Title returns a human-readable name for display (e.g., "Space Jump").
	Title() string

	// World returns the size of the game's logical play field.
	// Frontends scale it to terminal cells or window pixels.
	World() core.Size

	// Reset initializes or resets the game state.
	// Called once at start and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame.
	// Input carries the held actions and the frame timestamp.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state, back to front, onto dst.
	Render(dst core.Canvas)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Outcome describes how a finished race ended.
type Outcome struct {
	Winner     string
	Placement  int // 1-based; 0 when the player did not finish
	Eliminated bool
	Duration   time.Duration
}

// OutcomeReporter is implemented by games that end with a ranked result
// in addition to a score.
type OutcomeReporter interface {
	Outcome() (Outcome, bool)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
