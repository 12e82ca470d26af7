// Package game implements a turn based, tile based maze game. A player
// explores a maze collecting coins while patrollers wander back and
// forth along corridors. Touching a patroller ends the game, as does
// collecting the last coin.
//
// Every turn is played out in a fixed order: patrollers move first, in
// legend order, then the player moves, then coins under the player are
// collected. Patrollers move only on even turns.
package game

import (
	log "github.com/sirupsen/logrus"
)

// State is the state of an Engine's episode
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "Terminated"
	}
	return "Running"
}

// Cause records what ended an episode. Both causes can fire on the same
// turn.
type Cause int

const (
	CauseNone      Cause = 0
	CauseCollision Cause = 1 << iota
	CauseCleared
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCollision:
		return "collision"
	case CauseCleared:
		return "cleared"
	default:
		return "collision+cleared"
	}
}

// Option configures an Engine
type Option func(*Engine)

// WithCoinReward sets the reward for collecting a coin
func WithCoinReward(r float64) Option {
	return func(e *Engine) {
		e.coinReward = r
	}
}

// WithLogger sets the logger the Engine reports game events to
func WithLogger(l log.FieldLogger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// Engine plays out episodes on a TileMap. The Engine exclusively owns
// all game state; an Engine must not be used from more than one
// goroutine at a time.
type Engine struct {
	tileMap    *TileMap
	coinReward float64
	log        log.FieldLogger

	walls      *Layer
	player     *Player
	patrollers []*Patroller
	coins      *CoinDrape

	turn  int
	state State
	cause Cause
	board *Board
}

// NewEngine returns a new Engine, reset and ready to play on tm
func NewEngine(tm *TileMap, opts ...Option) *Engine {
	e := &Engine{
		tileMap:    tm,
		coinReward: DefaultCoinReward,
		log:        log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.Reset()
	return e
}

// Reset discards all sprite and coin state, re-deriving it from the
// TileMap, and returns the Board for turn 0
func (e *Engine) Reset() *Board {
	legend := e.tileMap.Legend()

	e.walls = e.tileMap.Walls()
	e.player = newPlayer(legend.Player, e.tileMap.PlayerStart(), e.walls)

	e.patrollers = e.patrollers[:0]
	for _, c := range e.tileMap.Patrollers() {
		start, _ := e.tileMap.PatrollerStart(c)
		e.patrollers = append(e.patrollers, newPatroller(c, start, e.walls))
	}

	e.coins = newCoinDrape(legend.Coin, e.tileMap.Coins(), e.coinReward)

	e.turn = 0
	e.state = Running
	e.cause = CauseNone
	e.board = e.render()

	return e.board
}

// Step plays out a single turn using action to move the player and
// returns the rendered Board, the reward earned on the turn, and
// whether the episode has ended. Actions other than 0 (north), 1
// (south), 2 (west), and 3 (east) leave the player in place.
//
// Stepping a terminated episode returns an *InvalidStateError.
func (e *Engine) Step(action int) (*Board, float64, bool, error) {
	if e.state == Terminated {
		return e.board, 0, true, &InvalidStateError{e.turn}
	}

	e.turn++
	var cause Cause

	for _, p := range e.patrollers {
		if p.update(e.turn, e.walls, e.player.Position()) {
			cause |= CauseCollision
		}
	}

	e.player.update(action)
	for _, p := range e.patrollers {
		if p.Position() == e.player.Position() {
			cause |= CauseCollision
		}
	}
	if cause&CauseCollision != 0 {
		e.log.WithField("turn", e.turn).Debugf("player caught at %v",
			e.player.Position())
	}

	reward, cleared := e.coins.update(e.player.Position())
	if reward != 0 {
		e.log.WithField("turn", e.turn).Debugf("coin collected at %v",
			e.player.Position())
	}
	if cleared {
		cause |= CauseCleared
	}

	if cause != CauseNone {
		e.state = Terminated
		e.cause = cause
	}
	e.board = e.render()

	return e.board, reward, e.state == Terminated, nil
}

// render draws the backdrop, then patrollers in legend order, then
// coins, then the player, each on top of the last
func (e *Engine) render() *Board {
	legend := e.tileMap.Legend()
	rows, cols := e.tileMap.Dims()

	chars := make([][]byte, rows)
	for r := range chars {
		chars[r] = make([]byte, cols)
		for c := range chars[r] {
			if e.walls.At(r, c) {
				chars[r][c] = legend.Wall
			} else {
				chars[r][c] = legend.Floor
			}
		}
	}

	positions := make(map[byte]Position, len(e.patrollers)+1)
	for _, p := range e.patrollers {
		pos := p.Position()
		chars[pos.Row][pos.Col] = p.Character()
		positions[p.Character()] = pos
	}

	for r := range chars {
		for c := range chars[r] {
			if e.coins.curtain.At(r, c) {
				chars[r][c] = legend.Coin
			}
		}
	}

	pos := e.player.Position()
	chars[pos.Row][pos.Col] = e.player.Character()
	positions[e.player.Character()] = pos

	return NewBoard(chars, legend.Characters(), positions)
}

// Board returns the most recently rendered Board
func (e *Engine) Board() *Board {
	return e.board
}

// TileMap returns the TileMap the Engine plays on
func (e *Engine) TileMap() *TileMap {
	return e.tileMap
}

// Turn returns the number of turns played in the current episode
func (e *Engine) Turn() int {
	return e.turn
}

// State returns the state of the current episode
func (e *Engine) State() State {
	return e.state
}

// Terminated returns whether the current episode has ended
func (e *Engine) Terminated() bool {
	return e.state == Terminated
}

// Cause returns what ended the current episode, or CauseNone if the
// episode is still running
func (e *Engine) Cause() Cause {
	return e.cause
}

// Player returns the player sprite
func (e *Engine) Player() *Player {
	return e.player
}

// Patrollers returns the patroller sprites in update order
func (e *Engine) Patrollers() []*Patroller {
	return append([]*Patroller(nil), e.patrollers...)
}

// Coins returns the coin drape
func (e *Engine) Coins() *CoinDrape {
	return e.coins
}

// CoinReward returns the reward for collecting a single coin
func (e *Engine) CoinReward() float64 {
	return e.coinReward
}
