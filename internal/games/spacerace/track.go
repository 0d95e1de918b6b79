package spacerace

import (
	"sort"

	"github.com/spacehub/space-arcade/internal/core"
)

const backdropStars = 80

// generateTrack scatters the obstacles once per race. Every obstacle lies
// between the lane walls, outside the start grid and the finish zone, and
// at least ObstacleGap away from every other obstacle. Placement gives up
// after a bounded number of attempts, so a crowded config yields fewer
// obstacles rather than an endless loop.
func (g *Game) generateTrack() []core.GameObject {
	t := g.cfg.Track
	size := t.ObstacleSize

	minX, maxX := t.Left, t.Right-size
	minY, maxY := t.FinishClearance, t.Length-t.StartClearance-size
	if t.Obstacles <= 0 || size <= 0 || maxX < minX || maxY < minY {
		return nil
	}

	obstacles := make([]core.GameObject, 0, t.Obstacles)
	for attempts := t.Obstacles * 25; attempts > 0 && len(obstacles) < t.Obstacles; attempts-- {
		o := core.GameObject{
			X:    minX + g.rng.Float64()*(maxX-minX),
			Y:    minY + g.rng.Float64()*(maxY-minY),
			Size: size,
		}
		if g.crowded(o, obstacles) {
			continue
		}
		obstacles = append(obstacles, o)
	}

	// Nearest to the start first.
	sort.Slice(obstacles, func(i, j int) bool { return obstacles[i].Y > obstacles[j].Y })
	return obstacles
}

func (g *Game) crowded(o core.GameObject, placed []core.GameObject) bool {
	gap := g.cfg.Track.ObstacleGap
	padded := core.GameObject{X: o.X - gap, Y: o.Y - gap, Size: o.Size + 2*gap}
	for _, p := range placed {
		if core.Intersects(padded, p) {
			return true
		}
	}
	return false
}

func (g *Game) newBackdrop() []core.GameObject {
	world := g.World()
	stars := make([]core.GameObject, backdropStars)
	for i := range stars {
		stars[i] = core.GameObject{
			X:     g.rng.Float64() * world.W,
			Y:     g.rng.Float64() * world.H,
			Speed: 0.2 + g.rng.Float64()*0.6,
		}
	}
	return stars
}
