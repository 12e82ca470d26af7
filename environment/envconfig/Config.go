// Package envconfig provides configuration structs for configuring
// maze environments. Environment configurations in this package are
// JSON serializable.
package envconfig

import (
	"github.com/pkg/errors"
	env "github.com/samuelfneumann/mazelearn/environment"
	"github.com/samuelfneumann/mazelearn/environment/maze"
	"github.com/samuelfneumann/mazelearn/environment/wrappers"
	ts "github.com/samuelfneumann/mazelearn/timestep"
)

// Config implements a specific configuration of a registered maze
// environment
type Config struct {
	// Environment is the id the maze is registered under, e.g. "dense"
	Environment string

	// EpisodeCutoff is the maximum number of steps per episode. Zero
	// means episodes only end in terminal states.
	EpisodeCutoff uint

	Discount float64

	// CoinReward overrides the reward for each coin if positive
	CoinReward float64
}

// NewConfig returns a new environment Config
func NewConfig(environment string, episodeCutoff uint,
	discount float64) Config {
	return Config{
		Environment:   environment,
		EpisodeCutoff: episodeCutoff,
		Discount:      discount,
	}
}

// Validate returns an error if the Config cannot create an environment
func (c Config) Validate() error {
	if _, ok := maze.Lookup(c.Environment); !ok {
		return errors.Errorf("validate: no such environment %q, must be "+
			"one of %v", c.Environment, maze.Registered())
	}
	if c.Discount < 0 || c.Discount > 1 {
		return errors.Errorf("validate: discount must be in [0, 1], got %v",
			c.Discount)
	}
	if c.CoinReward < 0 {
		return errors.Errorf("validate: coin reward must be non-negative, "+
			"got %v", c.CoinReward)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment
func (c Config) Create(opts ...maze.Option) (env.Environment, ts.TimeStep,
	error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "create")
	}

	if c.CoinReward > 0 {
		opts = append(opts, maze.WithCoinReward(c.CoinReward))
	}
	m, step, err := maze.Make(c.Environment, c.Discount, opts...)
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrapf(err, "create: could not "+
			"create environment %v", c.Environment)
	}

	if c.EpisodeCutoff == 0 {
		return m, step, nil
	}

	limited, step, err := wrappers.NewStepLimit(m, int(c.EpisodeCutoff))
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "create")
	}
	return limited, step, nil
}
