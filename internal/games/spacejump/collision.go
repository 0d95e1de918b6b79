package spacejump

import (
	"time"

	"github.com/spacehub/space-arcade/internal/core"
)

func (g *Game) hits(a, b core.GameObject) bool {
	scale := g.cfg.HitboxScale
	return core.Intersects(core.Hitbox(a, scale), core.Hitbox(b, scale))
}

// collide resolves every collision against the positions of this frame.
// Scoring collisions are applied before the lethal check.
func (g *Game) collide(now time.Time) {
	// Each player bullet damages at most one enemy.
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		hit := false
		for i := range g.enemies {
			if g.enemies[i].Health > 0 && g.hits(b.GameObject, g.enemies[i].GameObject) {
				g.enemies[i].Health--
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	g.bullets = kept

	g.enemies = keepEnemies(g.enemies, func(e core.Enemy) bool {
		if e.Health > 0 {
			return true
		}
		g.score += g.cfg.Scoring.Kill
		g.kills++
		g.explosions = append(g.explosions, explosion{x: e.CenterX(), y: e.CenterY(), until: now.Add(explosionDuration)})
		return false
	})

	stars := g.stars[:0]
	for _, s := range g.stars {
		if g.hits(g.player, s) {
			g.score += g.cfg.Scoring.Star
			g.collected++
			continue
		}
		stars = append(stars, s)
	}
	g.stars = stars

	g.gameOver = g.playerHit()
}

// playerHit reports whether anything lethal touches the player.
func (g *Game) playerHit() bool {
	for _, e := range g.enemies {
		if g.hits(g.player, e.GameObject) {
			return true
		}
	}
	for _, b := range g.blocks {
		if g.hits(g.player, b) {
			return true
		}
	}
	for _, p := range g.enemyBullets {
		if g.hits(g.player, p.GameObject) {
			return true
		}
	}
	return false
}
