package spacerace

import (
	"math"
	"sort"
	"time"

	"github.com/spacehub/space-arcade/internal/config"
	"github.com/spacehub/space-arcade/internal/core"
)

// race runs one Racing frame: steer and move every racer, then eliminate
// on obstacle contact, then rank and check for a finish.
func (g *Game) race(in core.InputFrame, now time.Time) {
	g.drive(in, now)
	for i := range g.racers {
		if g.racers[i].AI {
			g.pilot(i)
		}
	}

	for i := range g.racers {
		r := &g.racers[i]
		if r.Eliminated {
			continue
		}
		r.Y -= g.forwardSpeed(i, now)
	}

	for i := range g.racers {
		if !g.racers[i].Eliminated && g.crashed(g.racers[i].GameObject) {
			g.racers[i].Eliminated = true
		}
	}

	g.rank()
	switch {
	case len(g.ranking) == 0:
		g.finish(now, -1)
	case g.racers[g.ranking[0]].Y <= 0:
		g.finish(now, g.ranking[0])
	}
}

// drive applies the player's throttle, steering and boost.
func (g *Game) drive(in core.InputFrame, now time.Time) {
	r := &g.racers[player]
	if r.Eliminated {
		return
	}
	rc := g.cfg.Racer

	target := rc.CruiseSpeed
	switch in.Axis(core.ActionDown, core.ActionUp) {
	case 1:
		target = rc.MaxSpeed
	case -1:
		target = rc.MinSpeed
	}
	r.Speed = approach(r.Speed, target, rc.Acceleration)

	r.X += in.Axis(core.ActionLeft, core.ActionRight) * rc.SteerSpeed
	g.keepOnTrack(r)

	if in.Has(core.ActionBoost) && !now.Before(g.boostReadyAt) {
		g.boostUntil = now.Add(config.Millis(rc.BoostMs))
		g.boostReadyAt = g.boostUntil.Add(config.Millis(rc.BoostCooldownMs))
	}
}

// pilot steers an AI racer away from the nearest obstacle inside its
// lookahead window.
func (g *Game) pilot(i int) {
	r := &g.racers[i]
	if r.Eliminated {
		return
	}
	r.Speed = g.aiSpeed[i]

	lookahead := g.lookahead(i)
	body := core.Hitbox(r.GameObject, g.cfg.HitboxScale)
	margin := g.cfg.Racer.Size * 0.25

	threat := -1
	for j, o := range g.obstacles {
		box := core.Hitbox(o, g.cfg.HitboxScale)
		if box.Y+box.Size <= body.Y-lookahead || box.Y >= body.Y+body.Size {
			continue
		}
		if box.X >= body.X+body.Size+margin || box.X+box.Size <= body.X-margin {
			continue
		}
		if threat < 0 || o.Y > g.obstacles[threat].Y {
			threat = j
		}
	}
	if threat < 0 {
		return
	}

	o := g.obstacles[threat]
	step := g.cfg.Racer.SteerSpeed
	if o.CenterX() > r.CenterX() {
		step = -step
	}
	track := g.cfg.Track
	if r.X+step < track.Left || r.X+r.Size+step > track.Right {
		step = -step
	}
	r.X += step
	g.keepOnTrack(r)
}

func (g *Game) lookahead(i int) float64 {
	entrant := i - 1
	if entrant >= 0 && entrant < len(g.cfg.AI) && g.cfg.AI[entrant].Lookahead > 0 {
		return g.cfg.AI[entrant].Lookahead
	}
	return g.cfg.Racer.Size * 4
}

func (g *Game) keepOnTrack(r *core.Racer) {
	r.X = core.ClampF(r.X, g.cfg.Track.Left, g.cfg.Track.Right-r.Size)
}

// forwardSpeed is the distance a racer covers this frame.
func (g *Game) forwardSpeed(i int, now time.Time) float64 {
	speed := g.racers[i].Speed
	if i == player && g.Boosting(now) {
		speed *= g.cfg.Racer.BoostMultiplier
	}
	return speed
}

// Boosting reports whether the player's boost is active at now.
func (g *Game) Boosting(now time.Time) bool {
	return now.Before(g.boostUntil)
}

// BoostReady reports whether a boost can be fired at now.
func (g *Game) BoostReady(now time.Time) bool {
	return !now.Before(g.boostReadyAt)
}

func (g *Game) crashed(r core.GameObject) bool {
	scale := g.cfg.HitboxScale
	body := core.Hitbox(r, scale)
	for _, o := range g.obstacles {
		if core.Intersects(body, core.Hitbox(o, scale)) {
			return true
		}
	}
	return false
}

// rank orders the racers still in the race by distance to the finish.
// Ties keep insertion order, so the player wins a dead heat.
func (g *Game) rank() {
	g.ranking = g.ranking[:0]
	for i, r := range g.racers {
		if !r.Eliminated {
			g.ranking = append(g.ranking, i)
		}
	}
	sort.SliceStable(g.ranking, func(a, b int) bool {
		return g.racers[g.ranking[a]].Y < g.racers[g.ranking[b]].Y
	})
}

// Position returns the player's current place, or 0 once eliminated.
func (g *Game) Position() int {
	for pos, i := range g.ranking {
		if i == player {
			return pos + 1
		}
	}
	return 0
}

func (g *Game) finish(now time.Time, winner int) {
	g.phase = PhaseFinished
	g.finishedAt = now
	g.winner = winner
	g.placement = g.Position()
	g.score = ScoreForPlacement(g.placement, g.cfg.ScoreBands)
}

// ScoreForPlacement maps a finishing place onto the score bands. Places
// beyond the last band earn the last band; place 0 (no finish) earns 0.
func ScoreForPlacement(place int, bands []int) int {
	if place <= 0 || len(bands) == 0 {
		return 0
	}
	return bands[min(place, len(bands))-1]
}

func approach(v, target, step float64) float64 {
	if step <= 0 {
		return target
	}
	if math.Abs(target-v) <= step {
		return target
	}
	if target > v {
		return v + step
	}
	return v - step
}
