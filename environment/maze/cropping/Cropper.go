// Package cropping implements observation croppers, which cut fixed
// size windows out of rendered game boards. Croppers give the
// impression of a scrolling world without the game itself scrolling,
// and several croppers can view the same game at once.
//
// Croppers only read the boards they are given.
package cropping

import "github.com/samuelfneumann/mazelearn/environment/maze/game"

// Cropper crops a window out of a game.Board
type Cropper interface {
	// Reset prepares the Cropper for the first Board of a new episode
	Reset()

	// Crop returns the window of b that the Cropper views. The returned
	// Board has a Layer for every character b has a Layer for.
	Crop(b *game.Board) *game.Board

	// Dims returns the number of rows and columns of cropped Boards
	Dims() (rows, cols int)
}

// crop returns the rows x cols window of b whose top left corner is at
// (top, left) in b. Cells of the window outside of b are filled with
// pad, and sprites outside of the window are dropped.
func crop(b *game.Board, top, left, rows, cols int, pad byte) *game.Board {
	boardRows, boardCols := b.Dims()

	chars := make([][]byte, rows)
	for r := range chars {
		chars[r] = make([]byte, cols)
		for c := range chars[r] {
			br, bc := top+r, left+c
			if br < 0 || br >= boardRows || bc < 0 || bc >= boardCols {
				chars[r][c] = pad
			} else {
				chars[r][c] = b.At(br, bc)
			}
		}
	}

	positions := make(map[byte]game.Position)
	for ch, p := range b.Positions() {
		inWindow := game.Position{Row: p.Row - top, Col: p.Col - left}
		if inWindow.Row >= 0 && inWindow.Row < rows &&
			inWindow.Col >= 0 && inWindow.Col < cols {
			positions[ch] = inWindow
		}
	}

	return game.NewBoard(chars, b.Characters(), positions)
}

// Fixed crops the same window out of every Board
type Fixed struct {
	topLeft    game.Position
	rows, cols int
	pad        byte
}

// NewFixed returns a new Fixed cropper viewing the rows x cols window
// whose top left corner is at topLeft. Parts of the window which fall
// outside of a Board are filled with pad.
func NewFixed(topLeft game.Position, rows, cols int, pad byte) *Fixed {
	return &Fixed{topLeft, rows, cols, pad}
}

// Reset implements the Cropper interface. Fixed croppers have no
// per-episode state.
func (f *Fixed) Reset() {}

// Crop crops the fixed window out of b
func (f *Fixed) Crop(b *game.Board) *game.Board {
	return crop(b, f.topLeft.Row, f.topLeft.Col, f.rows, f.cols, f.pad)
}

// Dims returns the number of rows and columns of cropped Boards
func (f *Fixed) Dims() (rows, cols int) {
	return f.rows, f.cols
}

// Tracking crops a window centred on a sprite. The window is kept
// inside the Board whenever the Board is at least as large as the
// window; along dimensions where the Board is smaller than the window,
// the Board is centred in the window and the rest is padded.
//
// The first Board cropped after a Reset is shifted so that the tracked
// sprite sits initialOffset rows and columns away from the centre of
// the window.
type Tracking struct {
	rows, cols    int
	track         byte
	initialOffset game.Position
	pad           byte

	first  bool
	corner game.Position
}

// NewTracking returns a new Tracking cropper which follows the sprite
// drawn with character track
func NewTracking(rows, cols int, track byte, initialOffset game.Position,
	pad byte) *Tracking {
	return &Tracking{
		rows:          rows,
		cols:          cols,
		track:         track,
		initialOffset: initialOffset,
		pad:           pad,
		first:         true,
	}
}

// Reset re-arms the initial offset for the next Board cropped
func (t *Tracking) Reset() {
	t.first = true
	t.corner = game.Position{}
}

// Crop crops the window around the tracked sprite out of b. If b does
// not contain the tracked sprite, the last window is reused.
func (t *Tracking) Crop(b *game.Board) *game.Board {
	if pos, ok := b.Position(t.track); ok {
		centre := pos
		if t.first {
			centre.Row -= t.initialOffset.Row
			centre.Col -= t.initialOffset.Col
		}

		rows, cols := b.Dims()
		t.corner = game.Position{
			Row: clampCorner(centre.Row-t.rows/2, t.rows, rows),
			Col: clampCorner(centre.Col-t.cols/2, t.cols, cols),
		}
	}
	t.first = false

	return crop(b, t.corner.Row, t.corner.Col, t.rows, t.cols, t.pad)
}

// Dims returns the number of rows and columns of cropped Boards
func (t *Tracking) Dims() (rows, cols int) {
	return t.rows, t.cols
}

// Corner returns the top left corner of the last window cropped
func (t *Tracking) Corner() game.Position {
	return t.corner
}

// clampCorner clamps the corner of a window of size window so that the
// window lies on a board dimension of size extent
func clampCorner(corner, window, extent int) int {
	if extent < window {
		return -((window - extent) / 2)
	}
	if corner < 0 {
		return 0
	}
	if corner > extent-window {
		return extent - window
	}
	return corner
}
