// Package frame drives games frame by frame: Loop applies the
// update-then-draw contract to one game and Scheduler produces the frame
// callbacks for frontends that have no render loop of their own.
package frame

import (
	"sync"

	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/registry"
)

// Loop owns one running game.
//
// Update advances the game unless it is over; Render always draws the
// latest state. Once Stop has been called, neither touches the game again,
// so a frontend tearing down its surface can never receive a late draw.
type Loop struct {
	mu      sync.Mutex
	game    registry.Game
	cfg     core.RuntimeConfig
	stopped bool
}

// NewLoop resets the game with cfg and returns a loop driving it.
func NewLoop(game registry.Game, cfg core.RuntimeConfig) *Loop {
	game.Reset(cfg)
	return &Loop{game: game, cfg: cfg}
}

// Game returns the driven game.
func (l *Loop) Game() registry.Game {
	return l.game
}

// Update runs the update half of a frame. Restart resets the game from any
// state; otherwise the game steps only while it is not over.
func (l *Loop) Update(in core.InputFrame) core.GameState {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return l.game.State()
	}

	if in.Has(core.ActionRestart) {
		l.restartLocked()
		return l.game.State()
	}
	if l.game.State().GameOver {
		return l.game.State()
	}
	return l.game.Step(in).State
}

// Render runs the draw half of a frame. It reports false once stopped.
func (l *Loop) Render(dst core.Canvas) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return false
	}
	dst.Clear()
	l.game.Render(dst)
	return true
}

// Frame runs a whole frame: update, then draw.
func (l *Loop) Frame(in core.InputFrame, dst core.Canvas) core.GameState {
	state := l.Update(in)
	l.Render(dst)
	return state
}

// Restart resets the game to its initial state.
func (l *Loop) Restart() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.stopped {
		l.restartLocked()
	}
}

func (l *Loop) restartLocked() {
	l.game.Reset(l.cfg)
}

// Stop halts the loop. It is safe to call more than once.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = true
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}
