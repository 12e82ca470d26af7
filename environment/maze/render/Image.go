package render

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/environment/maze/game"
)

// Image draws b with each cell as a cell x cell pixel square
func Image(b *game.Board, cell int, p Palette) image.Image {
	rows, cols := b.Dims()
	dc := gg.NewContext(cols*cell, rows*cell)
	draw(dc, b, 0, cell, p)
	return dc.Image()
}

// SavePNG draws boards one above the other and saves the result as a
// PNG image at path
func SavePNG(path string, cell int, p Palette, boards ...*game.Board) error {
	if len(boards) == 0 {
		return errors.New("savePNG: no boards to draw")
	}
	if cell <= 0 {
		return errors.Errorf("savePNG: cell size must be positive, got %d",
			cell)
	}

	width, height := 0, 0
	for _, b := range boards {
		rows, cols := b.Dims()
		if cols*cell > width {
			width = cols * cell
		}
		height += rows * cell
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(p.Default)
	dc.Clear()

	top := 0
	for _, b := range boards {
		draw(dc, b, top, cell, p)
		rows, _ := b.Dims()
		top += rows * cell
	}

	if err := dc.SavePNG(path); err != nil {
		return errors.Wrapf(err, "savePNG: could not save %v", path)
	}
	return nil
}

// draw draws b onto dc with its top edge at pixel row top
func draw(dc *gg.Context, b *game.Board, top, cell int, p Palette) {
	rows, cols := b.Dims()
	size := float64(cell)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ch := b.At(r, c)
			x := float64(c * cell)
			y := float64(top + r*cell)

			if bg, ok := p.BackgroundColour(ch); ok {
				dc.SetColor(bg)
				dc.DrawRectangle(x, y, size, size)
				dc.Fill()

				dc.SetColor(p.Colour(ch))
				dc.DrawCircle(x+size/2, y+size/2, size/4)
				dc.Fill()
				continue
			}

			dc.SetColor(p.Colour(ch))
			dc.DrawRectangle(x, y, size, size)
			dc.Fill()
		}
	}
}
