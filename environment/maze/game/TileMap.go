package game

import (
	"fmt"
	"strings"
)

// Legend assigns meaning to the characters of a tile map
type Legend struct {
	Wall   byte
	Floor  byte
	Coin   byte
	Player byte

	// Patrollers lists the characters which start a Patroller, in the
	// order in which patrollers are updated and drawn.
	Patrollers string
}

// DefaultLegend returns the legend of the built-in mazes:
//
//	'#': impassable walls.            'a': patroller A.
//	'@': collectable coins.           'b': patroller B.
//	'P': player starting location.    ' ': maze floor.
func DefaultLegend() Legend {
	return Legend{
		Wall:       '#',
		Floor:      ' ',
		Coin:       '@',
		Player:     'P',
		Patrollers: "ab",
	}
}

// Validate returns an error if two roles of the Legend share a
// character
func (l Legend) Validate() error {
	seen := make(map[byte]string)
	check := func(c byte, role string) error {
		if other, ok := seen[c]; ok {
			return &MalformedMapError{-1, -1, fmt.Sprintf("legend character "+
				"%q used for both %v and %v", c, other, role)}
		}
		seen[c] = role
		return nil
	}

	roles := []struct {
		c    byte
		role string
	}{
		{l.Wall, "wall"},
		{l.Floor, "floor"},
		{l.Coin, "coin"},
		{l.Player, "player"},
	}
	for _, r := range roles {
		if err := check(r.c, r.role); err != nil {
			return err
		}
	}
	for i := 0; i < len(l.Patrollers); i++ {
		if err := check(l.Patrollers[i], "patroller"); err != nil {
			return err
		}
	}
	return nil
}

// IsPatroller returns whether c starts a Patroller
func (l Legend) IsPatroller(c byte) bool {
	return strings.IndexByte(l.Patrollers, c) >= 0
}

// Characters returns every character the Legend assigns, in the order
// walls, floor, patrollers, coins, player.
func (l Legend) Characters() []byte {
	chars := []byte{l.Wall, l.Floor}
	chars = append(chars, l.Patrollers...)
	return append(chars, l.Coin, l.Player)
}

// TileMap is a parsed, immutable tile map. It records the static walls
// of the map and the initial positions of everything that moves or can
// be collected.
type TileMap struct {
	legend     Legend
	art        []string
	rows, cols int

	walls      *Layer
	coins      *Layer
	player     Position
	patrollers map[byte]Position
}

// ParseTileMap parses the rows of a tile map using the given legend.
// A *MalformedMapError is returned if the rows are not all the same
// length, if there is not exactly one player start, if a patroller
// character appears more than once, or if any character is not part
// of the legend.
func ParseTileMap(art []string, legend Legend) (*TileMap, error) {
	if err := legend.Validate(); err != nil {
		return nil, err
	}
	if len(art) == 0 || len(art[0]) == 0 {
		return nil, &MalformedMapError{-1, -1, "map is empty"}
	}

	rows, cols := len(art), len(art[0])
	tm := &TileMap{
		legend:     legend,
		art:        append([]string(nil), art...),
		rows:       rows,
		cols:       cols,
		walls:      NewLayer(rows, cols),
		coins:      NewLayer(rows, cols),
		patrollers: make(map[byte]Position),
	}

	players := 0
	for r, line := range art {
		if len(line) != cols {
			return nil, &MalformedMapError{r, -1, fmt.Sprintf("row has "+
				"length %d, expected %d", len(line), cols)}
		}

		for c := 0; c < cols; c++ {
			switch ch := line[c]; {
			case ch == legend.Wall:
				tm.walls.Set(r, c, true)

			case ch == legend.Floor:

			case ch == legend.Coin:
				tm.coins.Set(r, c, true)

			case ch == legend.Player:
				players++
				if players > 1 {
					return nil, &MalformedMapError{r, c,
						"more than one player start"}
				}
				tm.player = Position{r, c}

			case legend.IsPatroller(ch):
				if _, ok := tm.patrollers[ch]; ok {
					return nil, &MalformedMapError{r, c, fmt.Sprintf(
						"patroller %q appears more than once", ch)}
				}
				tm.patrollers[ch] = Position{r, c}

			default:
				return nil, &MalformedMapError{r, c, fmt.Sprintf(
					"unknown map character %q", ch)}
			}
		}
	}

	if players == 0 {
		return nil, &MalformedMapError{-1, -1, "no player start"}
	}

	return tm, nil
}

// Dims returns the number of rows and columns of the map
func (t *TileMap) Dims() (rows, cols int) {
	return t.rows, t.cols
}

// Legend returns the Legend the map was parsed with
func (t *TileMap) Legend() Legend {
	return t.legend
}

// Art returns a copy of the rows the map was parsed from
func (t *TileMap) Art() []string {
	return append([]string(nil), t.art...)
}

// Walls returns a copy of the wall layer of the map
func (t *TileMap) Walls() *Layer {
	return t.walls.Clone()
}

// Coins returns a copy of the initial coin layer of the map
func (t *TileMap) Coins() *Layer {
	return t.coins.Clone()
}

// PlayerStart returns the starting position of the player
func (t *TileMap) PlayerStart() Position {
	return t.player
}

// PatrollerStart returns the starting position of the patroller drawn
// with character c, if the map contains one
func (t *TileMap) PatrollerStart(c byte) (Position, bool) {
	p, ok := t.patrollers[c]
	return p, ok
}

// Patrollers returns the characters of the patrollers on the map in
// legend order
func (t *TileMap) Patrollers() []byte {
	var chars []byte
	for i := 0; i < len(t.legend.Patrollers); i++ {
		if _, ok := t.patrollers[t.legend.Patrollers[i]]; ok {
			chars = append(chars, t.legend.Patrollers[i])
		}
	}
	return chars
}
