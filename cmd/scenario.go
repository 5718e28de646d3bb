package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/queueing-sim/queueing-sim/sim"
)

// ScenarioSpec is the top-level YAML scenario configuration.
// Loaded via LoadScenarioSpec(path).
type ScenarioSpec struct {
	Name        string          `yaml:"name"`
	Seed        int64           `yaml:"seed"`
	Servers     int             `yaml:"servers"`
	ArrivalRate float64         `yaml:"arrival_rate"`
	MaxSteps    int64           `yaml:"max_steps"`
	Dispatcher  string          `yaml:"dispatcher,omitempty"`
	ServiceTime ServiceTimeSpec `yaml:"service_time"`
}

// ServiceTimeSpec parameterizes the service-time distribution in a scenario.
type ServiceTimeSpec struct {
	Distribution string  `yaml:"distribution"`
	Min          int64   `yaml:"min,omitempty"`
	Max          int64   `yaml:"max,omitempty"`
	Rate         float64 `yaml:"rate,omitempty"`
}

// LoadScenarioSpec reads and validates a scenario YAML file.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	if err := spec.ToConfig().Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", spec.Name, err)
	}
	return &spec, nil
}

// ToConfig converts a scenario spec into an engine configuration.
func (s *ScenarioSpec) ToConfig() sim.Config {
	return sim.Config{
		NumServers:  s.Servers,
		ArrivalRate: s.ArrivalRate,
		MaxSteps:    s.MaxSteps,
		Seed:        s.Seed,
		Dispatch:    s.Dispatcher,
		ServiceTime: sim.ServiceTimeConfig{
			Kind: sim.ServiceTimeKind(s.ServiceTime.Distribution),
			Min:  s.ServiceTime.Min,
			Max:  s.ServiceTime.Max,
			Rate: s.ServiceTime.Rate,
		},
	}
}
