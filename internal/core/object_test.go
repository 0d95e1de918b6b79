package core

import "testing"

func obj(x, y, size float64) GameObject {
	return GameObject{X: x, Y: y, Size: size}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     GameObject
		expected bool
	}{
		{"same origin", obj(100, 100, 60), obj(100, 100, 50), true},
		{"player over obstacle", obj(100, 100, 60), obj(120, 120, 50), true},
		{"player left of obstacle", obj(100, 100, 60), obj(200, 100, 50), false},
		{"touching right edge", obj(0, 0, 10), obj(10, 0, 10), false},
		{"touching bottom edge", obj(0, 0, 10), obj(0, 10, 10), false},
		{"contained", obj(0, 0, 100), obj(40, 40, 5), true},
		{"sub-unit overlap", obj(0, 0, 10), obj(9.5, 9.5, 10), true},
		{"apart vertically", obj(0, 0, 10), obj(0, 50, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Intersects(tc.a, tc.b); got != tc.expected {
				t.Errorf("Intersects(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := Intersects(tc.b, tc.a); got != tc.expected {
				t.Errorf("Intersects(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestHitbox(t *testing.T) {
	o := obj(100, 100, 100)

	h := Hitbox(o, 0.7)
	if h.Size != 70 {
		t.Errorf("Hitbox size = %v, expected 70", h.Size)
	}
	if h.X != 115 || h.Y != 115 {
		t.Errorf("Hitbox origin = (%v, %v), expected (115, 115)", h.X, h.Y)
	}
	if h.CenterX() != o.CenterX() || h.CenterY() != o.CenterY() {
		t.Error("Hitbox should keep the centre")
	}

	if got := Hitbox(o, 1); got != o {
		t.Errorf("Hitbox(o, 1) = %+v, expected unchanged", got)
	}
}

func TestHitboxAvoidsGrazes(t *testing.T) {
	racer := obj(100, 100, 40)
	rock := obj(135, 100, 40)

	if !Intersects(racer, rock) {
		t.Fatal("raw boxes should overlap")
	}
	if Intersects(Hitbox(racer, 0.7), Hitbox(rock, 0.7)) {
		t.Error("scaled hitboxes should not overlap on a 5 unit graze")
	}
}
