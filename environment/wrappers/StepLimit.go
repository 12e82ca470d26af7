// Package wrappers implements wrappers around environments
package wrappers

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/environment"
	ts "github.com/samuelfneumann/mazelearn/timestep"
	"gonum.org/v1/gonum/mat"
)

// StepLimit wraps an environment and cuts episodes off after a fixed
// number of steps. Episodes which are cut off end with EndType
// timestep.Timeout. Episodes which end on their own before the step
// limit are unaffected.
//
// StepLimit itself implements the environment.Environment interface,
// and is therefore itself an Environment.
type StepLimit struct {
	environment.Environment
	ender   environment.StepLimit
	current ts.TimeStep
}

// NewStepLimit wraps env so that its episodes last at most steps steps.
// The environment is reset and its first TimeStep returned.
func NewStepLimit(env environment.Environment, steps int) (*StepLimit,
	ts.TimeStep, error) {
	if steps <= 0 {
		return nil, ts.TimeStep{}, errors.Errorf("newStepLimit: step "+
			"limit must be positive, got %d", steps)
	}

	s := &StepLimit{
		Environment: env,
		ender:       environment.NewStepLimit(steps),
	}
	step, err := s.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "newStepLimit")
	}
	return s, step, nil
}

// Reset resets the wrapped environment
func (s *StepLimit) Reset() (ts.TimeStep, error) {
	step, err := s.Environment.Reset()
	if err != nil {
		return ts.TimeStep{}, err
	}
	s.current = step
	return step, nil
}

// Step takes one step in the wrapped environment, ending the episode
// if the step limit has been reached. Stepping after the episode has
// ended is an error.
func (s *StepLimit) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if s.current.Last() {
		return s.current, true, errors.Errorf("step: episode ended on "+
			"step %d, reset before stepping", s.current.Number)
	}

	step, _, err := s.Environment.Step(action)
	if err != nil {
		return step, true, err
	}
	s.ender.End(&step)
	s.current = step

	return step, step.Last(), nil
}

// CurrentTimeStep returns the current TimeStep, including any cut off
// applied by the StepLimit
func (s *StepLimit) CurrentTimeStep() ts.TimeStep {
	return s.current
}

// Steps returns the maximum number of steps per episode
func (s *StepLimit) Steps() int {
	return s.ender.Steps()
}
