// Package random implements an agent which selects actions uniformly
// at random and never learns
package random

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/agent"
	"github.com/samuelfneumann/mazelearn/environment"
	ts "github.com/samuelfneumann/mazelearn/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Type is the agent.Type of random agents
const Type agent.Type = "Random"

func init() {
	agent.Register(Type, Config{})
}

// Config represents a configuration for the random agent. Random
// agents have no hyperparameters.
type Config struct{}

// NewConfig returns a new Config as an agent.TypedConfig
func NewConfig() agent.TypedConfig {
	return agent.NewTypedConfig(Config{})
}

// CreateAgent creates the agent from the Config
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return New(env, seed)
}

// Validate returns an error if the Config is invalid
func (c Config) Validate() error {
	return nil
}

// Type returns the type of agent created by the Config
func (c Config) Type() agent.Type {
	return Type
}

// Random selects each discrete action with equal probability
type Random struct {
	offset float64
	dist   distuv.Categorical
	eval   bool
}

// New creates a new Random agent for env, which must have
// 1-dimensional discrete actions
func New(env environment.Environment, seed uint64) (*Random, error) {
	spec := env.ActionSpec()
	if spec.Shape.Len() != 1 {
		return nil, errors.Errorf("new: random agent requires "+
			"1-dimensional actions, got %d dimensions", spec.Shape.Len())
	}
	if spec.Cardinality != environment.Discrete {
		return nil, errors.New("new: random agent requires discrete actions")
	}

	low := spec.LowerBound.AtVec(0)
	high := spec.UpperBound.AtVec(0)
	if high < low {
		return nil, errors.Errorf("new: empty action range [%v, %v]", low,
			high)
	}

	// Weights for the uniform categorical distribution
	weights := make([]float64, int(high-low)+1)
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return &Random{
		offset: low,
		dist:   distuv.NewCategorical(weights, rand.NewSource(seed)),
	}, nil
}

// SelectAction selects an action uniformly at random
func (r *Random) SelectAction(t ts.TimeStep) *mat.VecDense {
	return mat.NewVecDense(1, []float64{r.offset + r.dist.Rand()})
}

// Eval sets the agent to evaluation mode
func (r *Random) Eval() { r.eval = true }

// Train sets the agent to training mode
func (r *Random) Train() { r.eval = false }

// IsEval returns whether the agent is in evaluation mode
func (r *Random) IsEval() bool { return r.eval }

// Step performs no update
func (r *Random) Step() error { return nil }

// Observe does nothing, random agents do not learn
func (r *Random) Observe(mat.Vector, ts.TimeStep) error { return nil }

// ObserveFirst does nothing, random agents do not learn
func (r *Random) ObserveFirst(ts.TimeStep) error { return nil }

// EndEpisode does nothing
func (r *Random) EndEpisode() {}
