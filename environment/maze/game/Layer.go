package game

import (
	"fmt"
	"strings"
)

// Layer is a boolean occupancy grid with the dimensions of a map. Reads
// outside the grid are false.
type Layer struct {
	rows, cols int
	cells      []bool
}

// NewLayer returns a new Layer with all cells false
func NewLayer(rows, cols int) *Layer {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("newLayer: negative dimensions (%d, %d)", rows, cols))
	}
	return &Layer{rows, cols, make([]bool, rows*cols)}
}

// Dims returns the number of rows and columns in the Layer
func (l *Layer) Dims() (rows, cols int) {
	return l.rows, l.cols
}

// InBounds returns whether (row, col) lies on the Layer
func (l *Layer) InBounds(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// At returns the value of the cell at (row, col)
func (l *Layer) At(row, col int) bool {
	if !l.InBounds(row, col) {
		return false
	}
	return l.cells[row*l.cols+col]
}

// AtPosition returns the value of the cell at p
func (l *Layer) AtPosition(p Position) bool {
	return l.At(p.Row, p.Col)
}

// Set sets the value of the cell at (row, col). Set panics if (row, col)
// is not on the Layer.
func (l *Layer) Set(row, col int, v bool) {
	if !l.InBounds(row, col) {
		panic(fmt.Sprintf("set: index (%d, %d) out of bounds (%d, %d)", row,
			col, l.rows, l.cols))
	}
	l.cells[row*l.cols+col] = v
}

// Any returns whether any cell is true
func (l *Layer) Any() bool {
	for _, c := range l.cells {
		if c {
			return true
		}
	}
	return false
}

// Count returns the number of true cells
func (l *Layer) Count() int {
	n := 0
	for _, c := range l.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the Layer
func (l *Layer) Clone() *Layer {
	cells := make([]bool, len(l.cells))
	copy(cells, l.cells)
	return &Layer{l.rows, l.cols, cells}
}

// Equal returns whether two Layers have the same dimensions and cells
func (l *Layer) Equal(o *Layer) bool {
	if l.rows != o.rows || l.cols != o.cols {
		return false
	}
	for i := range l.cells {
		if l.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String returns the layer as rows of 1s and 0s
func (l *Layer) String() string {
	var b strings.Builder
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			if l.At(r, c) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		if r < l.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
