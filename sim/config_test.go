package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		NumServers:  3,
		ArrivalRate: 0.7,
		MaxSteps:    100,
		Seed:        42,
		ServiceTime: ServiceTimeConfig{Kind: ServiceTimeUniform, Min: 2, Max: 10},
	}
}

func TestConfig_Validate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	exp := validConfig()
	exp.ServiceTime = ServiceTimeConfig{Kind: ServiceTimeExponential, Rate: 0.4}
	assert.NoError(t, exp.Validate())
}

func TestConfig_Validate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		param  string
	}{
		{"zero servers", func(c *Config) { c.NumServers = 0 }, "NumServers"},
		{"negative servers", func(c *Config) { c.NumServers = -2 }, "NumServers"},
		{"arrival rate below zero", func(c *Config) { c.ArrivalRate = -0.1 }, "ArrivalRate"},
		{"arrival rate above one", func(c *Config) { c.ArrivalRate = 1.5 }, "ArrivalRate"},
		{"zero steps", func(c *Config) { c.MaxSteps = 0 }, "MaxSteps"},
		{"uniform min below one", func(c *Config) { c.ServiceTime.Min = 0 }, "ServiceTime.Min"},
		{"uniform max below min", func(c *Config) { c.ServiceTime.Min = 5; c.ServiceTime.Max = 4 }, "ServiceTime.Max"},
		{"exponential rate zero", func(c *Config) {
			c.ServiceTime = ServiceTimeConfig{Kind: ServiceTimeExponential, Rate: 0}
		}, "ServiceTime.Rate"},
		{"unknown distribution", func(c *Config) { c.ServiceTime.Kind = "zipf" }, "ServiceTime.Kind"},
		{"unknown dispatcher", func(c *Config) { c.Dispatch = "least-loaded" }, "Dispatch"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "error must be a *ConfigError")
			assert.Equal(t, tc.param, cfgErr.Param)
		})
	}
}

func TestNewEngine_InvalidConfig_NoPartialConstruction(t *testing.T) {
	cfg := validConfig()
	cfg.NumServers = 0

	engine, err := NewEngine(cfg)
	require.Error(t, err)
	assert.Nil(t, engine)

	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}
