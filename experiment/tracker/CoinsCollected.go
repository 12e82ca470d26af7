package tracker

import (
	"github.com/samuelfneumann/mazelearn/environment/maze"
	ts "github.com/samuelfneumann/mazelearn/timestep"
)

// CoinsCollected tracks and saves the number of coins collected in each
// episode of a maze experiment. It reads the number of coins remaining
// from each TimeStep's Info, so TimeSteps without it are ignored.
type CoinsCollected struct {
	start     int
	started   bool
	collected []float64
	filename  string
}

// NewCoinsCollected returns a new CoinsCollected tracker which will save
// its data at the specified location filename
func NewCoinsCollected(filename string) *CoinsCollected {
	return &CoinsCollected{filename: filename}
}

// Track records the coins remaining at the start of each episode and
// caches the number collected once the episode ends
func (c *CoinsCollected) Track(t ts.TimeStep) {
	remaining, ok := t.Info[maze.InfoCoins].(int)
	if !ok {
		return
	}

	if t.First() {
		c.start = remaining
		c.started = true
		return
	}
	if t.Last() && c.started {
		c.collected = append(c.collected, float64(c.start-remaining))
		c.started = false
	}
}

// Data returns the number of coins collected in each finished episode
func (c *CoinsCollected) Data() []float64 {
	return append([]float64(nil), c.collected...)
}

// Save saves the data tracked by the CoinsCollected Tracker to disk
func (c *CoinsCollected) Save() error {
	return save(c.filename, c.collected)
}
