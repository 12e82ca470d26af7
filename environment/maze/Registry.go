package maze

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	ts "github.com/samuelfneumann/mazelearn/timestep"
)

// EntryPoint constructs a Maze environment for a Level
type EntryPoint func(level Level, discount float64,
	opts ...Option) (*Maze, ts.TimeStep, error)

// Registration associates a Level with the EntryPoint which constructs
// environments for it
type Registration struct {
	Level      Level
	EntryPoint EntryPoint
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Registration)
)

func init() {
	for _, r := range []struct {
		id    string
		level Level
	}{
		{"dense", Dense},
		{"sparse", Sparse},
		{"simple", Simple},
		{"maze-v0", Dense},
	} {
		if err := Register(r.id, Registration{Level: r.level}); err != nil {
			panic(err)
		}
	}
}

// Register registers a Level under id so that it can be constructed
// with Make. If the Registration has no EntryPoint, New is used.
// Registering an id twice is an error.
func Register(id string, r Registration) error {
	if id == "" {
		return errors.New("register: id must not be empty")
	}
	if r.EntryPoint == nil {
		r.EntryPoint = New
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[id]; ok {
		return errors.Errorf("register: id %q already registered", id)
	}
	registry[id] = r
	return nil
}

// Lookup returns the Registration for id
func Lookup(id string) (Registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	r, ok := registry[id]
	return r, ok
}

// Registered returns all registered ids in sorted order
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Make constructs the Maze environment registered under id
func Make(id string, discount float64, opts ...Option) (*Maze, ts.TimeStep,
	error) {
	r, ok := Lookup(id)
	if !ok {
		return nil, ts.TimeStep{}, errors.Errorf("make: no maze registered "+
			"as %q", id)
	}
	return r.EntryPoint(r.Level, discount, opts...)
}
