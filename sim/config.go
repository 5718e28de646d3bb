package sim

import "fmt"

// ServiceTimeKind selects the service-time distribution.
type ServiceTimeKind string

const (
	ServiceTimeUniform     ServiceTimeKind = "uniform"
	ServiceTimeExponential ServiceTimeKind = "exponential"
)

// ServiceTimeConfig parameterizes the service-time distribution.
// Uniform uses Min/Max (closed integer range); exponential uses Rate.
type ServiceTimeConfig struct {
	Kind ServiceTimeKind
	Min  int64   // uniform: lower bound in ticks (>= 1)
	Max  int64   // uniform: upper bound in ticks (>= Min)
	Rate float64 // exponential: rate parameter (> 0)
}

// Config groups all engine construction parameters.
type Config struct {
	NumServers  int               // number of servers (> 0)
	ArrivalRate float64           // probability of one arrival per step, in [0, 1]
	ServiceTime ServiceTimeConfig // service demand distribution
	MaxSteps    int64             // run length in ticks (> 0)
	Seed        int64             // master seed for all randomness
	Dispatch    string            // dispatch policy name; empty selects shortest-queue
}

// ConfigError is the single error kind reported for invalid construction
// parameters. Construction either fully succeeds or produces no Engine.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Param, e.Reason)
}

// Validate checks the configuration, returning a *ConfigError describing
// the first violation found.
func (c Config) Validate() error {
	if c.NumServers <= 0 {
		return &ConfigError{Param: "NumServers", Reason: fmt.Sprintf("must be > 0, got %d", c.NumServers)}
	}
	if c.ArrivalRate < 0 || c.ArrivalRate > 1 {
		return &ConfigError{Param: "ArrivalRate", Reason: fmt.Sprintf("must be in [0, 1], got %g", c.ArrivalRate)}
	}
	if c.MaxSteps <= 0 {
		return &ConfigError{Param: "MaxSteps", Reason: fmt.Sprintf("must be > 0, got %d", c.MaxSteps)}
	}
	switch c.ServiceTime.Kind {
	case ServiceTimeUniform:
		if c.ServiceTime.Min < 1 {
			return &ConfigError{Param: "ServiceTime.Min", Reason: fmt.Sprintf("must be >= 1, got %d", c.ServiceTime.Min)}
		}
		if c.ServiceTime.Max < c.ServiceTime.Min {
			return &ConfigError{Param: "ServiceTime.Max", Reason: fmt.Sprintf("must be >= Min, got %d < %d", c.ServiceTime.Max, c.ServiceTime.Min)}
		}
	case ServiceTimeExponential:
		if c.ServiceTime.Rate <= 0 {
			return &ConfigError{Param: "ServiceTime.Rate", Reason: fmt.Sprintf("must be > 0, got %g", c.ServiceTime.Rate)}
		}
	default:
		return &ConfigError{Param: "ServiceTime.Kind", Reason: fmt.Sprintf("unknown distribution %q", c.ServiceTime.Kind)}
	}
	if c.Dispatch != "" && !isKnownDispatcher(c.Dispatch) {
		return &ConfigError{Param: "Dispatch", Reason: fmt.Sprintf("unknown policy %q", c.Dispatch)}
	}
	return nil
}

func isKnownDispatcher(policy string) bool {
	for _, p := range GetAvailableDispatchers() {
		if p == policy {
			return true
		}
	}
	return false
}
