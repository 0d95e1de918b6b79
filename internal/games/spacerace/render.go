package spacerace

import (
	"fmt"
	"math"

	"github.com/spacehub/space-arcade/internal/core"
)

// Visual characters for rendering
const (
	WallChar      = '┃'
	FinishChar    = '▚'
	StartChar     = '─'
	RockChar      = '▓'
	FlameChar     = '░'
	WreckChar     = 'x'
	BackdropChar  = '·'
	cameraAnchor  = 0.65 // focused racer sits this far down the view
	finishStripe  = 12.0
	hudLineHeight = 26.0
)

// cameraTop returns the track coordinate shown at the top of the view.
// The camera follows the player, or the leader once the player is out.
func (g *Game) cameraTop() float64 {
	focus := g.racers[player]
	if focus.Eliminated && len(g.ranking) > 0 {
		focus = g.racers[g.ranking[0]]
	}
	return focus.Y - g.World().H*cameraAnchor
}

// Render draws the race back to front.
func (g *Game) Render(dst core.Canvas) {
	if len(g.racers) == 0 {
		return
	}
	world := g.World()
	top := g.cameraTop()
	track := g.cfg.Track

	for _, s := range g.backdrop {
		y := math.Mod(s.Y-top*s.Speed, world.H)
		if y < 0 {
			y += world.H
		}
		dst.Glyph(s.X, y, BackdropChar, core.ColorGray)
	}

	dst.Fill(track.Left-8, 0, 8, world.H, WallChar, core.ColorBlue)
	dst.Fill(track.Right, 0, 8, world.H, WallChar, core.ColorBlue)
	if y := -top; y > -finishStripe && y < world.H {
		dst.Fill(track.Left, y-finishStripe, track.Right-track.Left, finishStripe, FinishChar, core.ColorBrightWhite)
	}
	if y := track.Length - top; y >= 0 && y < world.H {
		dst.Fill(track.Left, y, track.Right-track.Left, 1, StartChar, core.ColorWhite)
	}

	for _, o := range g.obstacles {
		y := o.Y - top
		if y+o.Size < 0 || y > world.H {
			continue
		}
		dst.Fill(o.X, y, o.Size, o.Size, RockChar, core.ColorGray)
	}

	for i := len(g.racers) - 1; i >= 0; i-- {
		g.drawRacer(dst, i, top)
	}

	g.drawHUD(dst, world)
	g.drawOverlay(dst)
}

// drawRacer draws AI racers first and the player last, with a wreck
// marker for eliminated racers and a flame while boosting.
func (g *Game) drawRacer(dst core.Canvas, i int, top float64) {
	r := g.racers[i]
	y := r.Y - top
	if y+r.Size < 0 || y > g.World().H {
		return
	}
	if r.Eliminated {
		color := core.ColorGray
		if i == player {
			color = core.ColorRed
		}
		dst.Glyph(r.CenterX(), y+r.Size/2, WreckChar, color)
		return
	}
	if i == player && g.Boosting(g.now) {
		dst.Fill(r.X+r.Size/4, y+r.Size, r.Size/2, r.Size/2, FlameChar, core.ColorOrange)
	}
	dst.Fill(r.X, y, r.Size, r.Size, r.Glyph, r.Color)
}

func (g *Game) drawHUD(dst core.Canvas, world core.Size) {
	me := g.racers[player]

	status := fmt.Sprintf(" Pos: %d/%d ", g.Position(), len(g.racers))
	if me.Eliminated {
		status = " ELIMINATED "
	}
	dst.Text(10, 4, status, core.ColorBrightWhite)
	dst.Text(10, 4+hudLineHeight, fmt.Sprintf(" Dist: %.0f ", math.Max(me.Y, 0)), core.ColorWhite)

	boost := " Boost: READY "
	switch {
	case g.Boosting(g.now):
		boost = " Boost: ACTIVE "
	case !g.BoostReady(g.now):
		boost = fmt.Sprintf(" Boost: %.1fs ", g.boostReadyAt.Sub(g.now).Seconds())
	}
	dst.Text(world.W-200, 4, boost, core.ColorBrightCyan)
}

func (g *Game) drawOverlay(dst core.Canvas) {
	switch g.phase {
	case PhasePreStart:
		dst.Banner("SPACE RACE", "Press Enter to start\nArrows steer and throttle, Shift boosts", core.ColorBrightCyan)
	case PhaseCountdown:
		dst.Banner(g.countdownLabel, "", core.ColorBrightYellow)
	case PhaseFinished:
		dst.Banner(g.resultTitle(), g.resultDetail(), core.ColorBrightYellow)
	}
	if g.paused {
		dst.Banner("PAUSED", "Press P to resume", core.ColorYellow)
	}
}

func (g *Game) resultTitle() string {
	w, ok := g.Winner()
	switch {
	case !ok:
		return "ALL RACERS ELIMINATED"
	case !w.AI:
		return "YOU WIN!"
	default:
		return "WINNER: " + w.Name
	}
}

func (g *Game) resultDetail() string {
	if g.placement == 0 {
		return fmt.Sprintf("Did not finish  Score: %d  |  Press R to restart", g.score)
	}
	return fmt.Sprintf("Place: %d  Score: %d  |  Press R to restart", g.placement, g.score)
}
