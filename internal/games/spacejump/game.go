// Package spacejump implements a vertical space shooter. The ship moves
// with the arrow keys and fires automatically; enemies, falling blocks and
// collectible stars enter from the top of the field at fixed intervals.
package spacejump

import (
	"math/rand"
	"time"

	"github.com/spacehub/space-arcade/internal/config"
	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/registry"
)

const explosionDuration = 300 * time.Millisecond

// explosion is a short-lived effect left where an enemy died.
type explosion struct {
	x, y  float64
	until time.Time
}

// Game implements the SpaceJump game logic.
type Game struct {
	player       core.GameObject
	enemies      []core.Enemy
	blocks       []core.GameObject
	stars        []core.GameObject
	bullets      []core.Projectile // fired by the player
	enemyBullets []core.Projectile
	explosions   []explosion
	backdrop     []core.GameObject

	enemySpawn core.Spawner
	blockSpawn core.Spawner
	starSpawn  core.Spawner
	autoFire   core.Spawner

	started  bool
	now      time.Time
	pausedAt time.Time

	score      int
	kills      int
	collected  int
	gameOver   bool
	paused     bool
	frameCount int

	rng         *rand.Rand
	runtime     core.RuntimeConfig
	cfg         config.SpaceJumpConfig
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
	registry.Register("spacejump", func() registry.Game { return New() })
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.SpaceJumpConfig) *Game {
	return &Game{cfg: cfg, fixedConfig: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "spacejump"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Jump"
}

// World returns the play field size.
func (g *Game) World() core.Size {
	w := g.cfg.World
	if w.Width <= 0 || w.Height <= 0 {
		w = config.DefaultSpaceJumpConfig().World
	}
	return core.Size{W: w.Width, H: w.Height}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedConfig {
		cfg, err := config.LoadSpaceJump(configPath)
		if err != nil {
			cfg = config.DefaultSpaceJumpConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = runtime.Rand()

	world := g.World()
	size := g.cfg.Player.Size
	g.player = core.GameObject{
		X:     (world.W - size) / 2,
		Y:     world.H - size - g.cfg.Player.BottomMargin,
		Size:  size,
		Speed: g.cfg.Player.Speed,
	}

	g.enemies = nil
	g.blocks = nil
	g.stars = nil
	g.bullets = nil
	g.enemyBullets = nil
	g.explosions = nil
	g.backdrop = g.newBackdrop(world)

	g.started = false
	g.now = time.Time{}
	g.pausedAt = time.Time{}
	g.score = 0
	g.kills = 0
	g.collected = 0
	g.gameOver = false
	g.paused = false
	g.frameCount = 0
}

// start arms every spawner at the first frame so nothing appears instantly.
func (g *Game) start(now time.Time) {
	g.started = true
	g.enemySpawn = core.NewSpawner(config.Millis(g.cfg.Enemies.SpawnIntervalMs), now)
	g.blockSpawn = core.NewSpawner(config.Millis(g.cfg.Blocks.SpawnIntervalMs), now)
	g.starSpawn = core.NewSpawner(config.Millis(g.cfg.Stars.SpawnIntervalMs), now)
	g.autoFire = core.NewSpawner(config.Millis(g.cfg.Player.FireIntervalMs), now)
}

// Step advances the game by one frame: input, spawns, movement, then
// collisions against the moved positions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause(in.Time)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	now := in.Time
	if !g.started {
		g.start(now)
	}
	g.now = now
	g.frameCount++

	g.movePlayer(in)
	g.spawn(now)
	g.advance()
	g.collide(now)
	g.expireEffects(now)

	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause(now time.Time) {
	g.paused = !g.paused
	if g.paused {
		g.pausedAt = now
		return
	}
	if g.started && !g.pausedAt.IsZero() {
		g.shiftTimers(now.Sub(g.pausedAt))
	}
}

// shiftTimers moves every interval timer forward so time spent paused
// does not count toward the next spawn or shot.
func (g *Game) shiftTimers(d time.Duration) {
	for _, s := range []*core.Spawner{&g.enemySpawn, &g.blockSpawn, &g.starSpawn, &g.autoFire} {
		s.Last = s.Last.Add(d)
	}
	for i := range g.enemies {
		g.enemies[i].LastShot = g.enemies[i].LastShot.Add(d)
	}
	for i := range g.explosions {
		g.explosions[i].until = g.explosions[i].until.Add(d)
	}
}

func (g *Game) movePlayer(in core.InputFrame) {
	world := g.World()
	g.player.X += in.Axis(core.ActionLeft, core.ActionRight) * g.player.Speed
	g.player.Y += in.Axis(core.ActionUp, core.ActionDown) * g.player.Speed
	g.player.X = core.ClampF(g.player.X, 0, world.W-g.player.Size)
	g.player.Y = core.ClampF(g.player.Y, 0, world.H-g.player.Size)
}

func (g *Game) expireEffects(now time.Time) {
	kept := g.explosions[:0]
	for _, e := range g.explosions {
		if now.Before(e.until) {
			kept = append(kept, e)
		}
	}
	g.explosions = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Kills returns the number of enemies destroyed this run.
func (g *Game) Kills() int {
	return g.kills
}

// Collected returns the number of stars picked up this run.
func (g *Game) Collected() int {
	return g.collected
}
