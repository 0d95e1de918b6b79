// Package spacerace implements a vertical race between the player and AI
// racers on a track strewn with obstacles. A countdown gates the start,
// Shift fires a timed boost, and touching an obstacle eliminates a racer.
package spacerace

import (
	"math/rand"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/spacehub/space-arcade/internal/config"
	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/registry"
)

// Phase is the race state machine.
type Phase int

const (
	PhasePreStart Phase = iota
	PhaseCountdown
	PhaseRacing
	PhaseFinished
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePreStart:
		return "PreStart"
	case PhaseCountdown:
		return "Countdown"
	case PhaseRacing:
		return "Racing"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// GoLabel is shown for the last second of the countdown.
const GoLabel = "GO"

// player is the index of the human racer; it is always inserted first.
const player = 0

// Game implements the SpaceRace game logic.
type Game struct {
	racers    []core.Racer
	aiSpeed   []float64 // cruise speed per racer, AI only
	obstacles []core.GameObject
	ranking   []int // racer indices, leader first; eliminated racers excluded
	backdrop  []core.GameObject

	phase          Phase
	countdownStart time.Time
	countdownLabel string
	raceStart      time.Time
	finishedAt     time.Time
	now            time.Time
	boostUntil     time.Time
	boostReadyAt   time.Time
	pausedAt       time.Time

	winner    int // racer index, -1 when nobody finished
	placement int
	score     int
	paused    bool
	frames    int

	rng         *rand.Rand
	runtime     core.RuntimeConfig
	cfg         config.SpaceRaceConfig
	fixedConfig bool
	difficulty  *config.DifficultyManager
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path used on every Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

func init() {
	registry.Register("spacerace", func() registry.Game { return New() })
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{winner: -1}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.SpaceRaceConfig) *Game {
	return &Game{cfg: cfg, fixedConfig: true, winner: -1}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "spacerace"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Race"
}

// World returns the visible window onto the track.
func (g *Game) World() core.Size {
	w := g.cfg.World
	if w.Width <= 0 || w.Height <= 0 {
		w = config.DefaultSpaceRaceConfig().World
	}
	return core.Size{W: w.Width, H: w.Height}
}

// Reset returns the race to PreStart with a freshly generated track.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedConfig {
		cfg, err := config.LoadSpaceRace(configPath)
		if err != nil {
			cfg = config.DefaultSpaceRaceConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = runtime.Rand()

	g.obstacles = g.generateTrack()
	g.lineUp()
	g.backdrop = g.newBackdrop()
	g.ranking = g.ranking[:0]

	g.phase = PhasePreStart
	g.countdownStart = time.Time{}
	g.countdownLabel = ""
	g.raceStart = time.Time{}
	g.finishedAt = time.Time{}
	g.now = time.Time{}
	g.boostUntil = time.Time{}
	g.boostReadyAt = time.Time{}
	g.pausedAt = time.Time{}

	g.winner = -1
	g.placement = 0
	g.score = 0
	g.paused = false
	g.frames = 0
}

// lineUp places the player and the AI field on the start grid.
func (g *Game) lineUp() {
	entrants := append([]config.RaceEntrant{g.cfg.Player}, g.cfg.AI...)
	track := g.cfg.Track
	size := g.cfg.Racer.Size

	lane := (track.Right - track.Left) / float64(len(entrants))
	g.racers = make([]core.Racer, len(entrants))
	g.aiSpeed = make([]float64, len(entrants))

	for i, e := range entrants {
		glyph, _ := utf8.DecodeRuneInString(e.Glyph)
		if glyph == utf8.RuneError {
			glyph = '^'
		}
		g.racers[i] = core.Racer{
			GameObject: core.GameObject{
				X:     track.Left + lane*float64(i) + (lane-size)/2,
				Y:     track.Length - size,
				Size:  size,
				Speed: g.cfg.Racer.CruiseSpeed,
			},
			Name:  e.Name,
			Glyph: glyph,
			Color: core.ParseColor(e.Color),
			AI:    i != player,
		}
		if i != player {
			skill := e.Skill
			if skill <= 0 {
				skill = 1
			}
			g.aiSpeed[i] = g.difficulty.Speed(g.cfg.Racer.CruiseSpeed*skill, 0, 0)
		}
	}
}

// Step advances the state machine by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseFinished {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == PhaseRacing {
		g.togglePause(in.Time)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	now := in.Time
	g.now = now

	switch g.phase {
	case PhasePreStart:
		if in.Has(core.ActionStart) {
			g.phase = PhaseCountdown
			g.countdownStart = now
			g.countdownLabel = strconv.Itoa(g.cfg.Countdown)
		}
	case PhaseCountdown:
		g.tickCountdown(now)
	case PhaseRacing:
		g.frames++
		g.race(in, now)
	}

	return core.StepResult{State: g.State()}
}

// tickCountdown shows N..1 then GO, one second each, and starts the race
// when GO has been up for its second.
func (g *Game) tickCountdown(now time.Time) {
	remaining := g.cfg.Countdown - int(now.Sub(g.countdownStart)/time.Second)
	switch {
	case remaining > 0:
		g.countdownLabel = strconv.Itoa(remaining)
	case remaining == 0:
		g.countdownLabel = GoLabel
	default:
		g.countdownLabel = ""
		g.phase = PhaseRacing
		g.raceStart = now
	}
}

func (g *Game) togglePause(now time.Time) {
	g.paused = !g.paused
	if g.paused {
		g.pausedAt = now
		return
	}
	d := now.Sub(g.pausedAt)
	g.raceStart = g.raceStart.Add(d)
	if !g.boostUntil.IsZero() {
		g.boostUntil = g.boostUntil.Add(d)
		g.boostReadyAt = g.boostReadyAt.Add(d)
	}
}

// State returns the current game state. The race is over once finished.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseFinished,
		Paused:   g.paused,
	}
}

// Phase returns the current race phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// CountdownLabel returns "3", "2", "1" or "GO" during the countdown.
func (g *Game) CountdownLabel() string {
	return g.countdownLabel
}

// Racers returns a copy of the field, player first.
func (g *Game) Racers() []core.Racer {
	return append([]core.Racer(nil), g.racers...)
}

// Winner returns the winning racer once the race is finished.
func (g *Game) Winner() (core.Racer, bool) {
	if g.phase != PhaseFinished || g.winner < 0 {
		return core.Racer{}, false
	}
	return g.racers[g.winner], true
}

// Outcome implements registry.OutcomeReporter.
func (g *Game) Outcome() (registry.Outcome, bool) {
	if g.phase != PhaseFinished {
		return registry.Outcome{}, false
	}
	out := registry.Outcome{
		Placement:  g.placement,
		Eliminated: g.racers[player].Eliminated,
		Duration:   g.finishedAt.Sub(g.raceStart),
	}
	if w, ok := g.Winner(); ok {
		out.Winner = w.Name
	}
	return out, true
}
