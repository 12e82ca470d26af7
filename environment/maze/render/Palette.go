// Package render draws maze boards as images and as coloured terminal
// text
package render

import (
	"image/color"
	"math"
)

// Palette determines the colours boards are drawn with. Characters
// with a Background colour are drawn as a disc of their Foreground
// colour on the Background colour, all others as solid blocks.
type Palette struct {
	Foreground map[byte]color.RGBA
	Background map[byte]color.RGBA

	// Default colours characters missing from Foreground, e.g. padding
	Default color.RGBA
}

// DefaultPalette returns the classic maze colours: golden coins on a
// black floor, purple walls, and a cyan player
func DefaultPalette() Palette {
	return Palette{
		Foreground: map[byte]color.RGBA{
			' ': scaled(0, 0, 0),
			'@': scaled(999, 862, 110),
			'#': scaled(764, 0, 999),
			'P': scaled(0, 999, 999),
			'a': scaled(999, 0, 780),
			'b': scaled(145, 987, 341),
		},
		Background: map[byte]color.RGBA{
			'@': scaled(0, 0, 0),
		},
		Default: scaled(0, 0, 0),
	}
}

// Colour returns the foreground colour of c
func (p Palette) Colour(c byte) color.RGBA {
	if col, ok := p.Foreground[c]; ok {
		return col
	}
	return p.Default
}

// BackgroundColour returns the background colour of c, if c has one
func (p Palette) BackgroundColour(c byte) (color.RGBA, bool) {
	col, ok := p.Background[c]
	return col, ok
}

// scaled converts a colour with components in [0, 999] to 8 bits per
// component
func scaled(r, g, b int) color.RGBA {
	conv := func(v int) uint8 {
		return uint8(math.Round(float64(v) * 255 / 999))
	}
	return color.RGBA{R: conv(r), G: conv(g), B: conv(b), A: 255}
}

// xterm256 returns the closest colour of the 6x6x6 xterm colour cube
func xterm256(c color.RGBA) uint8 {
	level := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * 5 / 255))
	}
	return 16 + 36*level(c.R) + 6*level(c.G) + level(c.B)
}
