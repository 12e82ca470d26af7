// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/agent"
	"github.com/samuelfneumann/mazelearn/environment/envconfig"
	"github.com/samuelfneumann/mazelearn/experiment/tracker"
)

// Experiment outlines structs that can run experiments. Experiments
// send each environment TimeStep to Trackers, which cache the data in
// RAM to be later saved to disk with Save. Run runs all episodes until
// the maximum timestep limit is reached. RunEpisode runs a single
// episode.
type Experiment interface {
	Run() error

	// RunEpisode returns whether the step budget has been spent
	RunEpisode() (bool, error)

	// Save all tracked data to disk
	Save() error

	// Register adds a new tracker.Tracker to the (possibly already
	// running) experiment
	Register(t tracker.Tracker)
}

// Type is a type of experiment
type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment
type Config struct {
	Type
	MaxSteps  uint
	EnvConf   envconfig.Config
	AgentConf agent.TypedConfig
}

// LoadConfig reads a JSON experiment Config from path
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "loadConfig: could not read config")
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrapf(err, "loadConfig: could not parse %v",
			path)
	}
	return c, nil
}

// Validate returns an error if the Config cannot create an experiment
func (c Config) Validate() error {
	if c.Type != OnlineExp {
		return errors.Errorf("validate: no such experiment type %q", c.Type)
	}
	if c.MaxSteps == 0 {
		return errors.New("validate: max steps must be positive")
	}
	if c.AgentConf.Config == nil {
		return errors.New("validate: no agent configured")
	}
	if err := c.AgentConf.Validate(); err != nil {
		return errors.Wrap(err, "validate")
	}
	return errors.Wrap(c.EnvConf.Validate(), "validate")
}

// CreateExp creates the experiment described by the Config, seeding the
// agent with seed
func (c Config) CreateExp(seed uint64, opts []Option,
	t ...tracker.Tracker) (Experiment, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "createExp")
	}

	env, _, err := c.EnvConf.Create()
	if err != nil {
		return nil, errors.Wrap(err, "createExp: could not create environment")
	}
	a, err := c.AgentConf.CreateAgent(env, seed)
	if err != nil {
		return nil, errors.Wrap(err, "createExp: could not create agent")
	}

	return NewOnline(env, a, c.MaxSteps, opts, t...), nil
}
