package spacejump

import (
	"strings"
	"testing"
	"time"

	"github.com/spacehub/space-arcade/internal/config"
	"github.com/spacehub/space-arcade/internal/core"
)

var t0 = time.Unix(1_700_000_000, 0)

const frame = time.Second / 60

func newGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultSpaceJumpConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 42})
	return g
}

// quietGame never spawns anything on its own.
func quietGame(t *testing.T) *Game {
	t.Helper()
	hour := int(time.Hour / time.Millisecond)
	cfg := config.DefaultSpaceJumpConfig()
	cfg.Enemies.SpawnIntervalMs = hour
	cfg.Blocks.SpawnIntervalMs = hour
	cfg.Stars.SpawnIntervalMs = hour
	cfg.Player.FireIntervalMs = hour
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 42})
	return g
}

func at(i int, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame(t0.Add(time.Duration(i) * frame))
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestStarPickupScores(t *testing.T) {
	g := newGame(t)
	g.stars = []core.GameObject{{X: g.player.X + 10, Y: g.player.Y + 10, Size: 20, Speed: 2}}

	state := g.Step(at(0)).State

	if state.Score != g.cfg.Scoring.Star {
		t.Errorf("Score = %d, expected %d", state.Score, g.cfg.Scoring.Star)
	}
	if len(g.stars) != 0 {
		t.Errorf("collected star should be removed, %d left", len(g.stars))
	}
	if state.GameOver {
		t.Error("collecting a star should not end the game")
	}
}

func TestKillScoresMoreThanStar(t *testing.T) {
	g := newGame(t)
	enemy := core.Enemy{GameObject: core.GameObject{X: 100, Y: 100, Size: 40, Speed: 1.5}, Health: 1, LastShot: t0}
	g.enemies = []core.Enemy{enemy}
	g.bullets = []core.Projectile{{GameObject: core.GameObject{X: 110, Y: 120, Size: 8, Speed: -10}}}

	state := g.Step(at(0)).State

	if state.Score != g.cfg.Scoring.Kill {
		t.Errorf("Score = %d, expected %d", state.Score, g.cfg.Scoring.Kill)
	}
	if g.cfg.Scoring.Kill <= g.cfg.Scoring.Star {
		t.Error("a kill should be worth more than a star")
	}
	if len(g.enemies) != 0 || len(g.bullets) != 0 {
		t.Errorf("enemies=%d bullets=%d, expected both consumed", len(g.enemies), len(g.bullets))
	}
	if len(g.explosions) != 1 {
		t.Errorf("explosions = %d, expected 1", len(g.explosions))
	}
}

func TestEnemyHealth(t *testing.T) {
	tests := []struct {
		name       string
		bullets    int
		wantHealth int
		wantScore  int
	}{
		{"two hits leave one health", 2, 1, 0},
		{"three hits destroy", 3, 0, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t)
			g.enemies = []core.Enemy{{GameObject: core.GameObject{X: 100, Y: 100, Size: 40}, Health: 3, LastShot: t0}}
			for i := 0; i < tc.bullets; i++ {
				g.bullets = append(g.bullets, core.Projectile{GameObject: core.GameObject{X: 110 + float64(i), Y: 120, Size: 8, Speed: -10}})
			}

			state := g.Step(at(0)).State

			if state.Score != tc.wantScore {
				t.Errorf("Score = %d, expected %d", state.Score, tc.wantScore)
			}
			if tc.wantHealth > 0 {
				if len(g.enemies) != 1 || g.enemies[0].Health != tc.wantHealth {
					t.Errorf("enemies = %+v, expected one with health %d", g.enemies, tc.wantHealth)
				}
			} else if len(g.enemies) != 0 {
				t.Error("destroyed enemy should be removed")
			}
			if len(g.bullets) != 0 {
				t.Errorf("bullets = %d, expected all consumed", len(g.bullets))
			}
		})
	}
}

func TestLethalCollisions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
	}{
		{"block", func(g *Game) {
			g.blocks = []core.GameObject{{X: g.player.X, Y: g.player.Y - 10, Size: 50, Speed: 3}}
		}},
		{"enemy", func(g *Game) {
			g.enemies = []core.Enemy{{GameObject: core.GameObject{X: g.player.X, Y: g.player.Y, Size: 40}, Health: 3, LastShot: t0}}
		}},
		{"enemy bullet", func(g *Game) {
			g.enemyBullets = []core.Projectile{{GameObject: core.GameObject{X: g.player.X + 20, Y: g.player.Y, Size: 8, Speed: 5}}}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t)
			tc.setup(g)

			if !g.Step(at(0)).State.GameOver {
				t.Fatal("collision should end the game")
			}

			x := g.player.X
			g.Step(at(1, core.ActionLeft))
			if g.player.X != x {
				t.Error("no updates should happen after game over")
			}
		})
	}
}

func TestBlockAtPlayerOriginEndsGame(t *testing.T) {
	g := quietGame(t)
	g.player = core.GameObject{X: 100, Y: 100, Size: 60}
	g.blocks = []core.GameObject{{X: 100, Y: 100, Size: 50}}

	state := g.Step(at(0)).State
	if !state.GameOver {
		t.Fatal("a block overlapping the player should end the game")
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0", g.State().Score)
	}
}

func TestRestartResets(t *testing.T) {
	g := newGame(t)
	g.blocks = []core.GameObject{{X: g.player.X, Y: g.player.Y, Size: 50}}
	g.stars = []core.GameObject{{X: 0, Y: 0, Size: 20}}
	g.score = 120
	g.Step(at(0))
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Reset(core.RuntimeConfig{Seed: 7})

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("State() = %+v, expected a fresh game", state)
	}
	if len(g.blocks)+len(g.stars)+len(g.enemies)+len(g.bullets)+len(g.enemyBullets) != 0 {
		t.Error("Reset should clear every entity collection")
	}
}

func TestSpawnIntervals(t *testing.T) {
	cfg := config.DefaultSpaceJumpConfig()
	cfg.Player.FireIntervalMs = int(time.Hour / time.Millisecond)
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 3})

	// 2.5 seconds of frames.
	for i := 0; i <= 150; i++ {
		g.Step(at(i))
	}

	if len(g.blocks) != 2 {
		t.Errorf("blocks = %d, expected 2 after 2.5s", len(g.blocks))
	}
	if len(g.stars) != 1 {
		t.Errorf("stars = %d, expected 1 after 2.5s", len(g.stars))
	}
	if len(g.enemies) != 1 {
		t.Errorf("enemies = %d, expected 1 after 2.5s", len(g.enemies))
	}
	for _, b := range g.blocks {
		if b.X < 0 || b.X > cfg.World.Width-b.Size {
			t.Errorf("block spawned outside the field at x=%v", b.X)
		}
	}
}

func TestAutoFire(t *testing.T) {
	g := newGame(t)
	g.Step(at(0))
	if len(g.bullets) != 0 {
		t.Fatal("no shot expected on the first frame")
	}

	// The 350ms fire interval has elapsed by frame 22.
	g.Step(at(22))
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}
	if g.bullets[0].Speed >= 0 {
		t.Error("player bullets should travel up")
	}
}

func TestEnemyReturnsFire(t *testing.T) {
	g := newGame(t)
	g.enemies = []core.Enemy{{
		GameObject: core.GameObject{X: 0, Y: 0, Size: 40},
		Health:     3,
		LastShot:   t0.Add(-2 * time.Second),
	}}

	g.Step(at(0))

	if len(g.enemyBullets) != 1 {
		t.Fatalf("enemy bullets = %d, expected 1", len(g.enemyBullets))
	}
	if !g.enemies[0].LastShot.Equal(t0) {
		t.Error("LastShot should be updated to the frame time")
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	g := quietGame(t)
	for i := 0; i < 200; i++ {
		g.Step(at(i, core.ActionLeft, core.ActionUp))
		if g.State().GameOver {
			t.Fatalf("unexpected game over at frame %d", i)
		}
	}
	if g.player.X != 0 || g.player.Y != 0 {
		t.Errorf("player at (%v, %v), expected clamped to (0, 0)", g.player.X, g.player.Y)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	g := newGame(t)
	x := g.player.X
	g.Step(at(0, core.ActionLeft, core.ActionRight))
	if g.player.X != x {
		t.Errorf("player moved to %v with both directions held", g.player.X)
	}
}

func TestPauseFreezesAndShiftsTimers(t *testing.T) {
	g := newGame(t)
	g.blocks = []core.GameObject{{X: 0, Y: 100, Size: 50, Speed: 3}}
	g.Step(at(0))
	y := g.blocks[0].Y

	g.Step(at(1, core.ActionPause))
	for i := 2; i < 600; i++ {
		g.Step(at(i))
	}
	if g.blocks[0].Y != y {
		t.Error("entities should not move while paused")
	}

	g.Step(at(600, core.ActionPause))
	// Ten paused seconds must not trigger a burst of spawns.
	g.Step(at(601))
	if len(g.enemies) != 0 {
		t.Errorf("enemies = %d, expected paused time excluded from intervals", len(g.enemies))
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (core.GameState, int) {
		g := NewWithConfig(config.DefaultSpaceJumpConfig())
		g.Reset(core.RuntimeConfig{Seed: 12345})
		for i := 0; i < 900; i++ {
			in := at(i)
			if (i/40)%2 == 0 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.State(), g.frameCount
	}

	s1, f1 := run()
	s2, f2 := run()
	if s1 != s2 || f1 != f2 {
		t.Errorf("runs differ: %+v/%d vs %+v/%d", s1, f1, s2, f2)
	}
}

func TestRenderDrawsPlayerOverObstacles(t *testing.T) {
	g := newGame(t)
	g.blocks = []core.GameObject{{X: g.player.X, Y: g.player.Y, Size: g.player.Size}}

	screen := core.NewScreen(80, 24)
	canvas := core.NewWorldCanvas(screen, g.World())
	g.Render(canvas)

	col, row := canvas.Cell(g.player.CenterX(), g.player.CenterY())
	if got := screen.Get(col, row); got != ShipChar {
		t.Errorf("cell under the player = %q, expected the ship on top", got)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing from the top row: %q", screen.Row(0))
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	g := newGame(t)
	g.gameOver = true

	screen := core.NewScreen(80, 24)
	g.Render(core.NewWorldCanvas(screen, g.World()))

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner not drawn")
	}
}
