package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Canvas is the immediate-mode drawing surface games render onto.
// All coordinates are world units; the backend decides how a world unit
// maps onto terminal cells or window pixels.
type Canvas interface {
	// Clear wipes the whole surface to the background.
	Clear()
	// Fill paints a rectangle. Terminal backends use glyph; window
	// backends paint a solid block and ignore it.
	Fill(x, y, w, h float64, glyph rune, c Color)
	// Glyph draws a single marker centred on (x, y).
	Glyph(x, y float64, glyph rune, c Color)
	// Text writes a line of text with its top-left at (x, y).
	Text(x, y float64, text string, c Color)
	// Banner draws a boxed, centred overlay message.
	Banner(title, subtitle string, c Color)
}

// WorldCanvas renders a world of a fixed logical size onto a Screen,
// scaling it to whatever cell grid the terminal currently offers.
type WorldCanvas struct {
	screen *Screen
	world  Size
}

// NewWorldCanvas creates a canvas drawing the given world onto screen.
func NewWorldCanvas(screen *Screen, world Size) *WorldCanvas {
	return &WorldCanvas{screen: screen, world: world}
}

// Screen returns the backing cell buffer.
func (c *WorldCanvas) Screen() *Screen {
	return c.screen
}

// SetWorld changes the logical world mapped onto the screen.
func (c *WorldCanvas) SetWorld(world Size) {
	c.world = world
}

// Cell converts a world position to the cell containing it.
func (c *WorldCanvas) Cell(x, y float64) (int, int) {
	if c.world.W <= 0 || c.world.H <= 0 {
		return 0, 0
	}
	col := int(math.Floor(x * float64(c.screen.Width()) / c.world.W))
	row := int(math.Floor(y * float64(c.screen.Height()) / c.world.H))
	return col, row
}

// Clear implements Canvas.
func (c *WorldCanvas) Clear() {
	c.screen.Clear()
}

// Fill implements Canvas. Every rectangle covers at least one cell so that
// small objects stay visible on coarse grids.
func (c *WorldCanvas) Fill(x, y, w, h float64, glyph rune, col Color) {
	x0, y0 := c.Cell(x, y)
	x1, y1 := c.Cell(x+w, y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), glyph, col)
}

// Glyph implements Canvas.
func (c *WorldCanvas) Glyph(x, y float64, glyph rune, col Color) {
	cx, cy := c.Cell(x, y)
	c.screen.SetColor(cx, cy, glyph, col)
}

// Text implements Canvas.
func (c *WorldCanvas) Text(x, y float64, text string, col Color) {
	cx, cy := c.Cell(x, y)
	c.screen.DrawTextColor(cx, cy, text, col)
}

// Banner implements Canvas.
func (c *WorldCanvas) Banner(title, subtitle string, col Color) {
	drawBanner(c.screen, title, subtitle, col)
}

func drawBanner(s *Screen, title, subtitle string, col Color) {
	lines := []string{title}
	if subtitle != "" {
		lines = append(lines, strings.Split(subtitle, "\n")...)
	}

	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)

	s.DrawRect(box, ' ', ColorDefault)
	s.DrawBox(box, col)
	for i, l := range lines {
		c := ColorDefault
		if i == 0 {
			c = col
		}
		x := box.X + (boxW-utf8.RuneCountInString(l))/2
		s.DrawTextColor(x, box.Y+1+i, l, c)
	}
}
