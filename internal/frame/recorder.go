package frame

import (
	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/registry"
	"github.com/spacehub/space-arcade/internal/storage"
)

// Recorder writes each finished game to the session leaderboard exactly
// once. Races also store their outcome. A nil store records nothing.
type Recorder struct {
	store  *storage.Store
	player string
	saved  bool
}

// NewRecorder creates a recorder saving results under the player's name.
func NewRecorder(store *storage.Store, player string) *Recorder {
	return &Recorder{store: store, player: player}
}

// Observe inspects the state after a frame and saves the result the first
// time the game is over. It reports whether something was saved.
func (r *Recorder) Observe(game registry.Game, state core.GameState) bool {
	if !state.GameOver || r.saved {
		return false
	}
	r.saved = true
	if r.store == nil {
		return false
	}

	if state.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		r.store.SaveScore(game.ID(), r.player, state.Score)
	}

	if reporter, ok := game.(registry.OutcomeReporter); ok {
		if out, ok := reporter.Outcome(); ok {
			//nolint:errcheck // Best-effort save, game continues regardless
			r.store.SaveRaceResult(storage.RaceResult{
				Player:     r.player,
				Winner:     out.Winner,
				Placement:  out.Placement,
				Score:      state.Score,
				Eliminated: out.Eliminated,
				Duration:   out.Duration,
			})
		}
	}
	return true
}

// Rearm allows the next finished game to be saved.
func (r *Recorder) Rearm() {
	r.saved = false
}
