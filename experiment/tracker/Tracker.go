// Package tracker implements Trackers, which track and save data in an
// experiment
package tracker

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	ts "github.com/samuelfneumann/mazelearn/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished. Trackers only record data for episodes which
// finish.
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error

	// Data returns one value per finished episode
	Data() []float64
}

// save gob encodes data to filename
func save(filename string, data []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "save: could not open save file")
	}
	defer file.Close()

	if data == nil {
		data = []float64{}
	}
	if err := gob.NewEncoder(file).Encode(data); err != nil {
		return errors.Wrap(err, "save: could not encode data")
	}
	return file.Close()
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "loadData: could not open data file")
	}
	defer file.Close()

	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "loadData: could not decode data")
	}
	return data, nil
}

// Summary summarises per episode data
type Summary struct {
	Episodes int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Summarise returns the Summary of data. Statistics of empty data are
// NaN.
func Summarise(data []float64) Summary {
	if len(data) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, StdDev: nan, Min: nan, Max: nan}
	}

	mean, std := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		std = 0
	}
	return Summary{
		Episodes: len(data),
		Mean:     mean,
		StdDev:   std,
		Min:      floats.Min(data),
		Max:      floats.Max(data),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("episodes: %d  mean: %.3f  std: %.3f  min: %.3f  "+
		"max: %.3f", s.Episodes, s.Mean, s.StdDev, s.Min, s.Max)
}
