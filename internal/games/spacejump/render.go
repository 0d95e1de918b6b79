package spacejump

import (
	"fmt"
	"math"

	"github.com/spacehub/space-arcade/internal/core"
)

// Visual characters for rendering
const (
	ShipChar      = '▲'
	EnemyChar     = '▼'
	BlockChar     = '▓'
	StarChar      = '★'
	ShotChar      = '│'
	BackdropChar  = '·'
	ExplosionChar = '✶'
)

// Render draws the current game state back to front.
func (g *Game) Render(dst core.Canvas) {
	world := g.World()

	g.drawBackdrop(dst, world)

	for _, b := range g.blocks {
		dst.Fill(b.X, b.Y, b.Size, b.Size, BlockChar, core.ColorGray)
	}
	for _, s := range g.stars {
		dst.Glyph(s.CenterX(), s.CenterY(), StarChar, core.ColorBrightYellow)
	}
	for _, e := range g.enemies {
		color := core.ColorBrightRed
		if e.Health < g.cfg.Enemies.Health {
			color = core.ColorMagenta
		}
		dst.Fill(e.X, e.Y, e.Size, e.Size, EnemyChar, color)
	}
	for _, p := range g.enemyBullets {
		dst.Fill(p.X, p.Y, p.Size, p.Size, ShotChar, core.ColorRed)
	}
	for _, p := range g.bullets {
		dst.Fill(p.X, p.Y, p.Size, p.Size, ShotChar, core.ColorBrightCyan)
	}

	dst.Fill(g.player.X, g.player.Y, g.player.Size, g.player.Size, ShipChar, core.ColorBrightGreen)

	for _, e := range g.explosions {
		dst.Glyph(e.x, e.y, ExplosionChar, core.ColorOrange)
	}

	dst.Text(10, 4, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)
	dst.Text(world.W-260, 4, fmt.Sprintf(" Kills: %d  Stars: %d ", g.kills, g.collected), core.ColorWhite)

	if g.paused {
		dst.Banner("PAUSED", "Press P to resume", core.ColorYellow)
	}
	if g.gameOver {
		dst.Banner("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score), core.ColorRed)
	}
}

// drawBackdrop scrolls the starfield at per-star parallax speeds.
func (g *Game) drawBackdrop(dst core.Canvas, world core.Size) {
	for _, s := range g.backdrop {
		y := math.Mod(s.Y+float64(g.frameCount)*s.Speed, world.H)
		dst.Glyph(s.X, y, BackdropChar, core.ColorGray)
	}
}
