// Implements the stochastic arrival process: a Bernoulli draw per step and a
// pluggable service-time sampler for newly spawned tasks.

package sim

import (
	"math/rand"
)

// ServiceTimeSampler generates service demands in ticks.
type ServiceTimeSampler interface {
	// Sample returns a positive service time (>= 1).
	Sample(rng *rand.Rand) int64
}

// UniformSampler produces integer service times uniform over the closed
// range [min, max].
type UniformSampler struct {
	min, max int64
}

// NewUniformSampler creates a uniform sampler over [min, max].
func NewUniformSampler(min, max int64) *UniformSampler {
	return &UniformSampler{min: min, max: max}
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min+1)
}

// ExponentialSampler produces exponentially-distributed service times with
// the given rate parameter, floored to an integer. A sampled value of 0 is
// clamped to 1: a zero-length task would complete without ever being in
// service, which the server state machine forbids.
type ExponentialSampler struct {
	rate float64
}

// NewExponentialSampler creates an exponential sampler with rate > 0.
func NewExponentialSampler(rate float64) *ExponentialSampler {
	return &ExponentialSampler{rate: rate}
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	val := int64(rng.ExpFloat64() / s.rate)
	if val < 1 {
		return 1
	}
	return val
}

// ArrivalProcess spawns at most one task per step. Each step it draws one
// uniform value in [0,1); if the draw is below the arrival rate, a task is
// created with a sampled service time.
type ArrivalProcess struct {
	rate       float64
	sampler    ServiceTimeSampler
	arrivalRNG *rand.Rand
	serviceRNG *rand.Rand
	nextID     int64
}

// NewArrivalProcess creates an arrival process. The arrival draw and the
// service-time sampling consume separate RNG streams so that changing one
// distribution never perturbs the other.
func NewArrivalProcess(rate float64, sampler ServiceTimeSampler, rng *PartitionedRNG) *ArrivalProcess {
	return &ArrivalProcess{
		rate:       rate,
		sampler:    sampler,
		arrivalRNG: rng.ForSubsystem(SubsystemArrival),
		serviceRNG: rng.ForSubsystem(SubsystemService),
	}
}

// MaybeSpawn returns a new task arriving at the given step, or nil.
// Never called more than once per step by the engine.
func (a *ArrivalProcess) MaybeSpawn(step int64) *Task {
	if a.arrivalRNG.Float64() >= a.rate {
		return nil
	}
	serviceTime := a.sampler.Sample(a.serviceRNG)
	t := NewTask(a.nextID, step, serviceTime)
	a.nextID++
	return t
}

// NewServiceTimeSampler creates a ServiceTimeSampler from a validated
// ServiceTimeConfig.
func NewServiceTimeSampler(cfg ServiceTimeConfig) ServiceTimeSampler {
	switch cfg.Kind {
	case ServiceTimeUniform:
		return NewUniformSampler(cfg.Min, cfg.Max)
	case ServiceTimeExponential:
		return NewExponentialSampler(cfg.Rate)
	default:
		// Validate rejects unknown kinds before construction gets here.
		return nil
	}
}
