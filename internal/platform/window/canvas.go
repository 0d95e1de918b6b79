// Package window runs a game in a desktop window through Ebitengine.
// The logical world maps one unit to one pixel of the layout; Ebitengine
// scales the layout to the actual window size.
package window

import (
	"image/color"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/spacehub/space-arcade/internal/core"
)

const (
	glyphSize   = 4.0
	lineHeight  = 16.0
	bannerPadX  = 24.0
	bannerPadY  = 16.0
	labelMinBox = 14.0 // smallest filled box that gets its glyph printed on it
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Palette maps game colors to RGBA for one visual theme.
type Palette struct {
	Name       string
	Background color.RGBA
	Colors     map[core.Color]color.RGBA
}

// DarkPalette is the default palette: bright colors on black.
func DarkPalette() Palette {
	return Palette{
		Name:       "dark",
		Background: color.RGBA{8, 8, 20, 255},
		Colors: map[core.Color]color.RGBA{
			core.ColorDefault:       {220, 220, 220, 255},
			core.ColorRed:           {205, 49, 49, 255},
			core.ColorGreen:         {13, 188, 121, 255},
			core.ColorYellow:        {229, 229, 16, 255},
			core.ColorBlue:          {36, 114, 200, 255},
			core.ColorMagenta:       {188, 63, 188, 255},
			core.ColorCyan:          {17, 168, 205, 255},
			core.ColorWhite:         {229, 229, 229, 255},
			core.ColorBrightRed:     {241, 76, 76, 255},
			core.ColorBrightGreen:   {35, 209, 139, 255},
			core.ColorBrightYellow:  {245, 245, 67, 255},
			core.ColorBrightBlue:    {59, 142, 234, 255},
			core.ColorBrightMagenta: {214, 112, 214, 255},
			core.ColorBrightCyan:    {41, 184, 219, 255},
			core.ColorBrightWhite:   {255, 255, 255, 255},
			core.ColorOrange:        {255, 135, 0, 255},
			core.ColorGray:          {138, 138, 138, 255},
		},
	}
}

// LightPalette darkens every color for a white background.
func LightPalette() Palette {
	p := DarkPalette()
	p.Name = "light"
	p.Background = color.RGBA{245, 245, 240, 255}
	p.Colors = map[core.Color]color.RGBA{
		core.ColorDefault:       {40, 40, 40, 255},
		core.ColorRed:           {175, 0, 0, 255},
		core.ColorGreen:         {0, 135, 0, 255},
		core.ColorYellow:        {175, 135, 0, 255},
		core.ColorBlue:          {0, 0, 175, 255},
		core.ColorMagenta:       {135, 0, 135, 255},
		core.ColorCyan:          {0, 135, 135, 255},
		core.ColorWhite:         {68, 68, 68, 255},
		core.ColorBrightRed:     {215, 0, 0, 255},
		core.ColorBrightGreen:   {0, 175, 0, 255},
		core.ColorBrightYellow:  {215, 135, 0, 255},
		core.ColorBrightBlue:    {0, 95, 215, 255},
		core.ColorBrightMagenta: {175, 0, 175, 255},
		core.ColorBrightCyan:    {0, 135, 175, 255},
		core.ColorBrightWhite:   {8, 8, 8, 255},
		core.ColorOrange:        {215, 95, 0, 255},
		core.ColorGray:          {148, 148, 148, 255},
	}
	return p
}

// PaletteByName returns the named palette ("dark" or "light").
func PaletteByName(name string) (Palette, bool) {
	switch name {
	case "", "dark":
		return DarkPalette(), true
	case "light":
		return LightPalette(), true
	}
	return DarkPalette(), false
}

// Toggled returns the other palette.
func (p Palette) Toggled() Palette {
	if p.Name == "light" {
		return DarkPalette()
	}
	return LightPalette()
}

// RGBA returns the palette color for c.
func (p Palette) RGBA(c core.Color) color.RGBA {
	if rgba, ok := p.Colors[c]; ok {
		return rgba
	}
	return p.Colors[core.ColorDefault]
}

// imageCanvas implements core.Canvas on an Ebitengine image.
type imageCanvas struct {
	dst     *ebiten.Image
	world   core.Size
	palette Palette
}

func (c *imageCanvas) Clear() {
	c.dst.Fill(c.palette.Background)
}

func (c *imageCanvas) Fill(x, y, w, h float64, glyph rune, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), c.palette.RGBA(col), false)
	if w >= labelMinBox && h >= labelMinBox && unicode.IsLetter(glyph) {
		c.drawText(string(glyph), x+w/2, y+h/2, c.palette.Background, text.AlignCenter, text.AlignCenter)
	}
}

func (c *imageCanvas) Glyph(x, y float64, _ rune, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x-glyphSize/2), float32(y-glyphSize/2), glyphSize, glyphSize, c.palette.RGBA(col), false)
}

func (c *imageCanvas) Text(x, y float64, s string, col core.Color) {
	c.drawText(s, x, y, c.palette.RGBA(col), text.AlignStart, text.AlignStart)
}

func (c *imageCanvas) Banner(title, subtitle string, col core.Color) {
	lines := []string{title}
	if subtitle != "" {
		lines = append(lines, strings.Split(subtitle, "\n")...)
	}

	width := 0.0
	for _, l := range lines {
		w, _ := text.Measure(l, face, lineHeight)
		width = max(width, w)
	}
	boxW := width + 2*bannerPadX
	boxH := float64(len(lines))*lineHeight + 2*bannerPadY
	x := (c.world.W - boxW) / 2
	y := (c.world.H - boxH) / 2

	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(boxW), float32(boxH), c.palette.Background, false)
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(boxW), float32(boxH), 2, c.palette.RGBA(col), false)

	for i, l := range lines {
		lc := c.palette.RGBA(col)
		if i > 0 {
			lc = c.palette.RGBA(core.ColorWhite)
		}
		c.drawText(l, c.world.W/2, y+bannerPadY+float64(i)*lineHeight, lc, text.AlignCenter, text.AlignStart)
	}
}

func (c *imageCanvas) drawText(s string, x, y float64, col color.Color, primary, secondary text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.LineSpacing = lineHeight
	op.PrimaryAlign = primary
	op.SecondaryAlign = secondary
	text.Draw(c.dst, s, face, op)
}
