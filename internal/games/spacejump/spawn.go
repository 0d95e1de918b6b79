package spacejump

import (
	"time"

	"github.com/spacehub/space-arcade/internal/config"
	"github.com/spacehub/space-arcade/internal/core"
)

const backdropStars = 60

// spawn adds every entity whose interval has elapsed.
func (g *Game) spawn(now time.Time) {
	cfg := g.cfg

	if g.enemySpawn.Tick(now) {
		g.enemies = append(g.enemies, core.Enemy{
			GameObject: g.fromTop(cfg.Enemies.Size, cfg.Enemies.Speed),
			Health:     cfg.Enemies.Health,
			LastShot:   now,
		})
	}
	if g.blockSpawn.Tick(now) {
		g.blocks = append(g.blocks, g.fromTop(cfg.Blocks.Size, cfg.Blocks.Speed))
	}
	if g.starSpawn.Tick(now) {
		g.stars = append(g.stars, g.fromTop(cfg.Stars.Size, cfg.Stars.Speed))
	}

	if g.autoFire.Tick(now) {
		size := cfg.Player.BulletSize
		g.bullets = append(g.bullets, core.Projectile{GameObject: core.GameObject{
			X:     g.player.CenterX() - size/2,
			Y:     g.player.Y - size,
			Size:  size,
			Speed: -cfg.Player.BulletSpeed,
		}})
	}

	interval := config.Millis(cfg.Enemies.FireIntervalMs)
	for i := range g.enemies {
		e := &g.enemies[i]
		if now.Sub(e.LastShot) < interval {
			continue
		}
		e.LastShot = now
		size := cfg.Enemies.BulletSize
		g.enemyBullets = append(g.enemyBullets, core.Projectile{GameObject: core.GameObject{
			X:     e.CenterX() - size/2,
			Y:     e.Y + e.Size,
			Size:  size,
			Speed: cfg.Enemies.BulletSpeed,
		}})
	}
}

// fromTop places an object just above the field at a uniformly random
// column; its speed scales with difficulty.
func (g *Game) fromTop(size, speed float64) core.GameObject {
	world := g.World()
	return core.GameObject{
		X:     g.rng.Float64() * max(world.W-size, 0),
		Y:     -size,
		Size:  size,
		Speed: g.difficulty.Speed(speed, g.score, g.frameCount),
	}
}

// advance moves every entity by its speed and drops what left the field.
func (g *Game) advance() {
	world := g.World()

	for i := range g.enemies {
		g.enemies[i].Y += g.enemies[i].Speed
	}
	g.enemies = keepEnemies(g.enemies, func(e core.Enemy) bool { return visible(e.GameObject, world) })

	g.blocks = fall(g.blocks, world)
	g.stars = fall(g.stars, world)
	g.bullets = fly(g.bullets, world)
	g.enemyBullets = fly(g.enemyBullets, world)
}

func fall(objs []core.GameObject, world core.Size) []core.GameObject {
	kept := objs[:0]
	for _, o := range objs {
		o.Y += o.Speed
		if visible(o, world) {
			kept = append(kept, o)
		}
	}
	return kept
}

func fly(shots []core.Projectile, world core.Size) []core.Projectile {
	kept := shots[:0]
	for _, p := range shots {
		p.Y += p.Speed
		if visible(p.GameObject, world) {
			kept = append(kept, p)
		}
	}
	return kept
}

func keepEnemies(enemies []core.Enemy, keep func(core.Enemy) bool) []core.Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

func visible(o core.GameObject, world core.Size) bool {
	return o.Y < world.H && o.Y+o.Size > 0
}

// newBackdrop scatters the decorative starfield.
func (g *Game) newBackdrop(world core.Size) []core.GameObject {
	stars := make([]core.GameObject, backdropStars)
	for i := range stars {
		stars[i] = core.GameObject{
			X:     g.rng.Float64() * world.W,
			Y:     g.rng.Float64() * world.H,
			Speed: 0.3 + g.rng.Float64()*0.7,
		}
	}
	return stars
}
