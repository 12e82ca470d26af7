package tracker_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/mazelearn/environment/maze"
	"github.com/samuelfneumann/mazelearn/experiment/tracker"
	ts "github.com/samuelfneumann/mazelearn/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// episode returns the TimeSteps of an episode with the given rewards
// and coins remaining after each step
func episode(rewards []float64, coins []int) []ts.TimeStep {
	first := ts.New(ts.First, 0, 1, nil, 0)
	first.Info[maze.InfoCoins] = coins[0]
	steps := []ts.TimeStep{first}

	for i, r := range rewards {
		step := ts.New(ts.Mid, r, 1, nil, i+1)
		step.Info[maze.InfoCoins] = coins[i+1]
		if i == len(rewards)-1 {
			step.SetEnd(ts.TerminalStateReached)
		}
		steps = append(steps, step)
	}
	return steps
}

func TestTrackers(t *testing.T) {
	dir := t.TempDir()
	ret := tracker.NewReturn(filepath.Join(dir, "return.bin"))
	length := tracker.NewEpisodeLength(filepath.Join(dir, "length.bin"))
	coins := tracker.NewCoinsCollected(filepath.Join(dir, "coins.bin"))
	trackers := []tracker.Tracker{ret, length, coins}

	for _, steps := range [][]ts.TimeStep{
		episode([]float64{0, 100, 0, 100}, []int{5, 5, 4, 4, 3}),
		episode([]float64{0, 0}, []int{5, 5, 5}),
	} {
		for _, step := range steps {
			for _, tr := range trackers {
				tr.Track(step)
			}
		}
	}

	// An unfinished episode is not recorded
	for _, tr := range trackers {
		tr.Track(episode([]float64{100}, []int{5, 4})[0])
	}

	assert.Equal(t, []float64{200, 0}, ret.Data())
	assert.Equal(t, []float64{4, 2}, length.Data())
	assert.Equal(t, []float64{2, 0}, coins.Data())

	for _, tr := range trackers {
		require.NoError(t, tr.Save())
	}
	data, err := tracker.LoadData(filepath.Join(dir, "return.bin"))
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 0}, data)

	_, err = tracker.LoadData(filepath.Join(dir, "missing.bin"))
	assert.Error(t, err)
}

func TestReturnPanicsOnGaps(t *testing.T) {
	ret := tracker.NewReturn("")
	steps := episode([]float64{0, 0, 0}, []int{1, 1, 1, 1})

	ret.Track(steps[0])
	assert.Panics(t, func() { ret.Track(steps[2]) })
}

func TestSummarise(t *testing.T) {
	s := tracker.Summarise([]float64{1, 2, 3, 4})
	assert.Equal(t, 4, s.Episodes)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.StdDev, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)

	one := tracker.Summarise([]float64{7})
	assert.Equal(t, 0.0, one.StdDev)

	empty := tracker.Summarise(nil)
	assert.Equal(t, 0, empty.Episodes)
	assert.True(t, math.IsNaN(empty.Mean))
}
