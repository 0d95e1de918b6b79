package core

import "time"

// GameObject is anything positioned in the world: a square with its
// top-left corner at (X, Y) and side length Size. Speed is signed and
// expressed in world units per frame.
type GameObject struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// CenterX returns the horizontal centre of the object.
func (o GameObject) CenterX() float64 {
	return o.X + o.Size/2
}

// CenterY returns the vertical centre of the object.
func (o GameObject) CenterY() float64 {
	return o.Y + o.Size/2
}

// Projectile is a bullet moving vertically at a fixed speed.
type Projectile struct {
	GameObject
}

// Enemy is a hostile ship that absorbs hits and fires back.
type Enemy struct {
	GameObject
	Health   int
	LastShot time.Time
}

// Racer is a participant of a race. Eliminated never reverts to false
// until the race is reset.
type Racer struct {
	GameObject
	Name       string
	Glyph      rune
	Color      Color
	AI         bool
	Eliminated bool
}

// Intersects reports whether two bounding squares overlap.
// Touching edges do not count as an overlap.
func Intersects(a, b GameObject) bool {
	return a.X < b.X+b.Size &&
		a.X+a.Size > b.X &&
		a.Y < b.Y+b.Size &&
		a.Y+a.Size > b.Y
}

// Hitbox shrinks (or grows) a bounding square around its centre.
// A scale of 1 returns the object unchanged.
func Hitbox(o GameObject, scale float64) GameObject {
	if scale == 1 || scale <= 0 {
		return o
	}
	size := o.Size * scale
	inset := (o.Size - size) / 2
	o.X += inset
	o.Y += inset
	o.Size = size
	return o
}
