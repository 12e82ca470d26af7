package game

// Walker is a sprite which walks the maze one cell at a time. Player and
// Patroller both satisfy Walker.
type Walker interface {
	// Character returns the map character the sprite is drawn with
	Character() byte

	// Position returns the current position of the sprite
	Position() Position
}

// walker implements the movement shared by all sprites: a move of one
// cell in a cardinal direction which is silently rejected if the
// destination is impassable or off the map.
type walker struct {
	char       byte
	position   Position
	impassable *Layer
}

func (w *walker) Character() byte {
	return w.char
}

func (w *walker) Position() Position {
	return w.position
}

// move attempts to move the walker one cell in direction d and returns
// whether the walker moved
func (w *walker) move(d Direction) bool {
	if d == Stay {
		return false
	}

	next := w.position.Add(d)
	if !w.impassable.InBounds(next.Row, next.Col) ||
		w.impassable.AtPosition(next) {
		return false
	}
	w.position = next
	return true
}

// Player is the sprite controlled by the actions passed to the Engine
type Player struct {
	walker
}

func newPlayer(char byte, start Position, impassable *Layer) *Player {
	return &Player{walker{char, start, impassable}}
}

// update moves the player in the direction selected by action. Actions
// which select no direction leave the player in place.
func (p *Player) update(action int) {
	d, _ := DirectionFor(action)
	p.move(d)
}

// Patroller is a sprite which wanders back and forth horizontally at
// half the speed of the player, ending the episode on contact with the
// player. Patrollers ignore actions.
type Patroller struct {
	walker
	heading Heading
}

func newPatroller(char byte, start Position, impassable *Layer) *Patroller {
	return &Patroller{
		walker:  walker{char, start, impassable},
		heading: InitialHeading(char),
	}
}

// Heading returns the current heading of the patroller
func (p *Patroller) Heading() Heading {
	return p.heading
}

// update moves the patroller on even turns, turning around at walls,
// and returns whether the patroller ended the turn on the player.
func (p *Patroller) update(turn int, walls *Layer, player Position) bool {
	if turn%2 != 0 {
		return false
	}

	row, col := p.position.Row, p.position.Col
	p.heading = NextHeading(p.heading, walls.At(row, col-1),
		walls.At(row, col+1))
	p.move(p.heading.Direction())

	return p.position == player
}
