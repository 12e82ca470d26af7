package experiment

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/agent"
	env "github.com/samuelfneumann/mazelearn/environment"
	"github.com/samuelfneumann/mazelearn/experiment/tracker"
	ts "github.com/samuelfneumann/mazelearn/timestep"
	"github.com/samuelfneumann/mazelearn/utils/progressbar"
	log "github.com/sirupsen/logrus"
)

// Option configures an Online experiment
type Option func(*Online)

// WithProgressBar displays progress through the step budget on p
func WithProgressBar(p *progressbar.ProgressBar) Option {
	return func(o *Online) {
		o.progress = p
	}
}

// WithLogger sets the logger episode summaries are reported to
func WithLogger(l log.FieldLogger) Option {
	return func(o *Online) {
		o.log = l
	}
}

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	env.Environment
	agent.Agent
	maxSteps     uint
	currentSteps uint
	episodes     int
	trackers     []tracker.Tracker

	progress *progressbar.ProgressBar
	log      log.FieldLogger
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter
// determines what data is tracked.
func NewOnline(e env.Environment, a agent.Agent, steps uint, opts []Option,
	t ...tracker.Tracker) *Online {
	o := &Online{
		Environment: e,
		Agent:       a,
		maxSteps:    steps,
		trackers:    t,
		log:         log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment, returning whether
// the step budget has been spent
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return true, errors.Wrap(err, "runEpisode: could not reset")
	}
	if err := o.Agent.ObserveFirst(step); err != nil {
		return true, errors.Wrap(err, "runEpisode: could not observe first "+
			"step")
	}
	o.track(step)

	var ret float64
	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return true, errors.Wrap(err, "runEpisode: could not step")
		}
		ret += step.Reward
		o.track(step)

		// Observe the timestep and step the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return true, errors.Wrap(err, "runEpisode: could not observe")
		}
		if err := o.Agent.Step(); err != nil {
			return true, errors.Wrap(err, "runEpisode: could not update agent")
		}

		if o.progress != nil {
			o.progress.Increment()
			if o.currentSteps%100 == 0 || o.currentSteps == o.maxSteps {
				o.progress.Display()
			}
		}
	}

	if step.Last() {
		o.Agent.EndEpisode()
		o.episodes++
		o.log.WithFields(log.Fields{
			"episode": o.episodes,
			"steps":   step.Number,
			"return":  ret,
			"end":     step.EndType(),
		}).Info("episode finished")
	}

	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	for ended := false; !ended; {
		var err error
		if ended, err = o.RunEpisode(); err != nil {
			return errors.Wrap(err, "run")
		}
	}
	if o.progress != nil {
		o.progress.Close()
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return errors.Wrap(err, "save")
		}
	}
	return nil
}

// Steps returns the number of steps taken so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// Episodes returns the number of episodes finished so far
func (o *Online) Episodes() int {
	return o.episodes
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}
