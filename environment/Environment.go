// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	ts "github.com/samuelfneumann/mazelearn/timestep"
	"gonum.org/v1/gonum/mat"
)

// Ender determines when an episode should end. If the episode should
// be ended, End() modifies the argument TimeStep so that it is the last
// TimeStep of the episode and records the ending type.
type Ender interface {
	End(*ts.TimeStep) bool
}

// Environment implements a simulated environment. An Environment is
// ready to use as soon as it is constructed. Observations are returned
// as tensors whose layout is described by ObservationSpec().
type Environment interface {
	// Reset resets the environment between episodes
	Reset() (ts.TimeStep, error)

	// Step takes one environmental step given some action and returns
	// the next TimeStep as well as whether or not that TimeStep is the
	// last in the episode.
	Step(action *mat.VecDense) (ts.TimeStep, bool, error)

	// CurrentTimeStep returns the most recent TimeStep
	CurrentTimeStep() ts.TimeStep

	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
