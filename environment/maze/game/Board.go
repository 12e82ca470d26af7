package game

import (
	"sort"
	"strings"
)

// Board is a rendered frame of a game: one character per cell plus a
// Layer for each character of interest, where a Layer cell is true if
// the Board shows that character in the cell. A Board also records the
// positions of the sprites it was rendered from, including sprites that
// are hidden beneath others.
//
// Boards are never modified after construction.
type Board struct {
	rows, cols int
	chars      [][]byte
	layers     map[byte]*Layer
	positions  map[byte]Position
}

// NewBoard returns a Board showing chars, with one Layer for each of
// layerChars. The chars and positions arguments are copied.
func NewBoard(chars [][]byte, layerChars []byte,
	positions map[byte]Position) *Board {
	rows := len(chars)
	cols := 0
	if rows > 0 {
		cols = len(chars[0])
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		chars:     make([][]byte, rows),
		layers:    make(map[byte]*Layer, len(layerChars)),
		positions: make(map[byte]Position, len(positions)),
	}
	for r := range chars {
		b.chars[r] = append([]byte(nil), chars[r]...)
	}
	for _, ch := range layerChars {
		layer := NewLayer(rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if b.chars[r][c] == ch {
					layer.Set(r, c, true)
				}
			}
		}
		b.layers[ch] = layer
	}
	for ch, p := range positions {
		b.positions[ch] = p
	}
	return b
}

// Dims returns the number of rows and columns on the Board
func (b *Board) Dims() (rows, cols int) {
	return b.rows, b.cols
}

// At returns the character shown at (row, col)
func (b *Board) At(row, col int) byte {
	return b.chars[row][col]
}

// Layer returns a copy of the Layer of character c. If the Board has no
// Layer for c, an all false Layer is returned and ok is false.
func (b *Board) Layer(c byte) (l *Layer, ok bool) {
	layer, ok := b.layers[c]
	if !ok {
		return NewLayer(b.rows, b.cols), false
	}
	return layer.Clone(), true
}

// LayerAt returns the value of the Layer of character c at (row, col)
// without copying the Layer
func (b *Board) LayerAt(c byte, row, col int) bool {
	layer, ok := b.layers[c]
	return ok && layer.At(row, col)
}

// Characters returns the characters the Board has Layers for in
// ascending order
func (b *Board) Characters() []byte {
	chars := make([]byte, 0, len(b.layers))
	for c := range b.layers {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// Position returns the position of the sprite drawn with character c
func (b *Board) Position(c byte) (Position, bool) {
	p, ok := b.positions[c]
	return p, ok
}

// Positions returns a copy of all sprite positions on the Board
func (b *Board) Positions() map[byte]Position {
	positions := make(map[byte]Position, len(b.positions))
	for c, p := range b.positions {
		positions[c] = p
	}
	return positions
}

// Rows returns the Board as one string per row
func (b *Board) Rows() []string {
	rows := make([]string, b.rows)
	for r := range b.chars {
		rows[r] = string(b.chars[r])
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
