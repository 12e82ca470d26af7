package render

import (
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/mazelearn/environment/maze/game"
)

// ANSI returns b as text with one line per row, each character coloured
// with its palette colour. Colouring is controlled by a, so that
// aurora.NewAurora(false) yields plain text.
func ANSI(b *game.Board, a aurora.Aurora, p Palette) string {
	rows, cols := b.Dims()

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ch := b.At(r, c)
			v := a.Index(xterm256(p.Colour(ch)), string(ch))
			if bg, ok := p.BackgroundColour(ch); ok {
				v = v.BgIndex(xterm256(bg))
			}
			sb.WriteString(v.String())
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
