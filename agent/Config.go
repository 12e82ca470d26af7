package agent

import (
	"encoding/json"
	"reflect"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent the Config creates
	Type() Type
}

// Type represents a type of an agent, e.g. Random
type Type string

// Registered types with the package. Once a Type has been registered
// with this map, a TypedConfig with that type can be deserialized.
//
// No Types are registered with this package upon initialization.
// Each agent package registers its own Type to avoid circular imports.
var (
	registeredMu    sync.RWMutex
	registeredTypes = make(map[Type]reflect.Type)
)

// Register registers an agent's Type with a concrete Config type so
// that upon deserialization of a TypedConfig, Configs of type agentType
// are deserialized into the concrete type of config.
func Register(agentType Type, config Config) {
	registeredMu.Lock()
	defer registeredMu.Unlock()
	registeredTypes[agentType] = reflect.TypeOf(config)
}

// Registered returns the registered agent Types in sorted order
func Registered() []Type {
	registeredMu.RLock()
	defer registeredMu.RUnlock()

	types := make([]Type, 0, len(registeredTypes))
	for t := range registeredTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// TypedConfig types a Config so that it can be deserialized into its
// concrete type without declaring a variable of that type beforehand
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type   Type
		Config json.RawMessage
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "unmarshalJSON: could not unmarshal "+
			"typed config")
	}

	registeredMu.RLock()
	ty, found := registeredTypes[raw.Type]
	registeredMu.RUnlock()
	if !found {
		return errors.Errorf("unmarshalJSON: agent type %q not registered",
			raw.Type)
	}

	value := reflect.New(ty)
	if len(raw.Config) > 0 && string(raw.Config) != "null" {
		if err := json.Unmarshal(raw.Config, value.Interface()); err != nil {
			return errors.Wrapf(err, "unmarshalJSON: could not unmarshal "+
				"config of type %v", raw.Type)
		}
	}

	t.Type = raw.Type
	t.Config = value.Elem().Interface().(Config)
	return nil
}
