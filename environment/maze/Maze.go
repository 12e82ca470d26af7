// Package maze implements coin collecting maze environments. The maze
// game itself is played by package game; this package adapts it to the
// environment.Environment interface.
//
// Observations are uint8 tensors of shape (rows, cols, channels) with
// one channel each for the player, every patroller of the level's
// legend, the coins, and the maze floor, in that order. A cell of a
// channel is 1 if the rendered board shows that channel's character in
// the cell and 0 otherwise.
package maze

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/environment"
	"github.com/samuelfneumann/mazelearn/environment/maze/cropping"
	"github.com/samuelfneumann/mazelearn/environment/maze/game"
	ts "github.com/samuelfneumann/mazelearn/timestep"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// Keys of TimeStep.Info
const (
	InfoTurn  string = "turn"
	InfoCoins string = "coins"
	InfoCause string = "cause"
)

// Option configures a Maze
type Option func(*Maze)

// WithEnders adds Enders which are consulted after every step, e.g. to
// impose a step budget on episodes
func WithEnders(enders ...environment.Ender) Option {
	return func(m *Maze) {
		m.enders = append(m.enders, enders...)
	}
}

// WithCoinReward sets the reward for collecting a coin
func WithCoinReward(r float64) Option {
	return func(m *Maze) {
		m.coinReward = r
	}
}

// WithLogger sets the logger for the Maze and its game
func WithLogger(l log.FieldLogger) Option {
	return func(m *Maze) {
		m.log = l
	}
}

// Maze is a coin collecting maze environment
type Maze struct {
	level      Level
	discount   float64
	coinReward float64
	enders     []environment.Ender
	log        log.FieldLogger

	channels    []byte
	engine      *game.Engine
	currentStep ts.TimeStep
}

// New creates a new Maze environment playing level, returning the
// environment along with its first TimeStep. A *game.MalformedMapError
// is returned if the level's tile map cannot be parsed.
func New(level Level, discount float64, opts ...Option) (*Maze, ts.TimeStep,
	error) {
	m := &Maze{
		level:      level,
		discount:   discount,
		coinReward: game.DefaultCoinReward,
		log:        log.StandardLogger(),
		channels:   ObservationCharacters(level.Legend),
	}
	for _, opt := range opts {
		opt(m)
	}

	step, err := m.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrapf(err, "new: could not "+
			"create maze %v", level.Name)
	}

	return m, step, nil
}

// ObservationCharacters returns the characters of the observation
// channels for a legend: the player, each patroller, coins, and floor
func ObservationCharacters(l game.Legend) []byte {
	chars := []byte{l.Player}
	chars = append(chars, l.Patrollers...)
	return append(chars, l.Coin, l.Floor)
}

// Reset starts a new episode, re-parsing the level's tile map
func (m *Maze) Reset() (ts.TimeStep, error) {
	tm, err := m.level.TileMap()
	if err != nil {
		return ts.TimeStep{}, errors.Wrap(err, "reset: could not parse "+
			"tile map")
	}
	m.engine = game.NewEngine(tm, game.WithCoinReward(m.coinReward),
		game.WithLogger(m.log))

	step := ts.New(ts.First, 0, m.discount, m.observation(m.engine.Board()), 0)
	m.setInfo(&step)
	m.currentStep = step

	return step, nil
}

// Step takes one environmental step. The action must be a vector of
// length 1. Actions 0, 1, 2, and 3 move the player north, south, west,
// and east respectively; any other value, including non-integer values,
// leaves the player in place.
//
// Stepping after the last TimeStep of an episode, without an
// intervening Reset, returns an error wrapping a
// *game.InvalidStateError.
func (m *Maze) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != 1 {
		return ts.TimeStep{}, false, errors.Errorf("step: actions must be "+
			"1-dimensional, got %d dimensions", action.Len())
	}

	return m.StepAction(actionIndex(action.AtVec(0)))
}

// StepAction takes one environmental step using an integer action, as
// in Step
func (m *Maze) StepAction(action int) (ts.TimeStep, bool, error) {
	if m.currentStep.Last() {
		err := &game.InvalidStateError{Turn: m.engine.Turn()}
		return m.currentStep, true, errors.Wrap(err, "step")
	}

	board, reward, done, err := m.engine.Step(action)
	if err != nil {
		return m.currentStep, true, errors.Wrap(err, "step: could not "+
			"step maze")
	}

	discount := m.discount
	if done {
		discount = 0
	}
	step := ts.New(ts.Mid, reward, discount, m.observation(board),
		m.currentStep.Number+1)
	if done {
		step.SetEnd(ts.TerminalStateReached)
	}
	for _, ender := range m.enders {
		ender.End(&step)
	}
	m.setInfo(&step)
	m.currentStep = step

	if step.Last() {
		m.log.WithFields(log.Fields{
			"level": m.level.Name,
			"turn":  m.engine.Turn(),
			"cause": m.engine.Cause(),
			"end":   step.EndType(),
		}).Debug("episode over")
	}

	return step, step.Last(), nil
}

// actionIndex converts an action value to a discrete action. Values
// which are not integers map to -1, which is a no-op.
func actionIndex(a float64) int {
	if math.IsNaN(a) || math.IsInf(a, 0) || a != math.Trunc(a) {
		return -1
	}
	if a < math.MinInt32 || a > math.MaxInt32 {
		return -1
	}
	return int(a)
}

// observation stacks the channel layers of b into a uint8 tensor of
// shape (rows, cols, channels)
func (m *Maze) observation(b *game.Board) tensor.Tensor {
	rows, cols := b.Dims()
	channels := len(m.channels)

	data := make([]uint8, rows*cols*channels)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for k, ch := range m.channels {
				if b.LayerAt(ch, r, c) {
					data[(r*cols+c)*channels+k] = 1
				}
			}
		}
	}

	return tensor.New(tensor.WithShape(rows, cols, channels),
		tensor.WithBacking(data))
}

func (m *Maze) setInfo(step *ts.TimeStep) {
	step.Info[InfoTurn] = m.engine.Turn()
	step.Info[InfoCoins] = m.engine.Coins().Remaining()
	step.Info[InfoCause] = m.engine.Cause().String()
}

// CurrentTimeStep returns the current TimeStep in the environment
func (m *Maze) CurrentTimeStep() ts.TimeStep {
	return m.currentStep
}

// Board returns the fully rendered, uncropped board of the current
// TimeStep
func (m *Maze) Board() *game.Board {
	return m.engine.Board()
}

// Level returns the Level being played
func (m *Maze) Level() Level {
	return m.level
}

// Turn returns the number of turns played in the current episode
func (m *Maze) Turn() int {
	return m.engine.Turn()
}

// CoinsRemaining returns the number of coins left in the current
// episode
func (m *Maze) CoinsRemaining() int {
	return m.engine.Coins().Remaining()
}

// Croppers returns new croppers for the level's human views
func (m *Maze) Croppers() []cropping.Cropper {
	return m.level.Croppers()
}

// ActionSpec returns the action specification of the environment
func (m *Maze) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(game.Actions - 1)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (m *Maze) ObservationSpec() environment.Spec {
	rows, cols := m.engine.TileMap().Dims()
	shape := tensor.Shape{rows, cols, len(m.channels)}

	return environment.NewTensorSpec(shape, environment.Observation, 0, 1,
		tensor.Uint8, environment.Discrete)
}

// RewardSpec returns the reward specification of the environment
func (m *Maze) RewardSpec() environment.Spec {
	rewards := []float64{0, m.coinReward}
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{floats.Min(rewards)})
	upperBound := mat.NewVecDense(1, []float64{floats.Max(rewards)})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Continuous)
}

// DiscountSpec returns the discount specification of the environment
func (m *Maze) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{m.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}
