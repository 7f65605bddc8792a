package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyConfig(t *testing.T) {
	t.Run("default_config_is_valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Verify())
	})

	for _, tc := range []struct {
		name     string
		mutate   func(cfg *Config)
		expected string
	}{
		{
			name:     "unknown_log_format",
			mutate:   func(cfg *Config) { cfg.Log.Format = "xml" },
			expected: "config 'log.format' must be one of ['text', 'json']",
		},
		{
			name:     "unknown_log_level",
			mutate:   func(cfg *Config) { cfg.Log.Level = "trace" },
			expected: "config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error']",
		},
		{
			name:     "negative_max_nodes",
			mutate:   func(cfg *Config) { cfg.Containers.MaxNodes = -1 },
			expected: "config 'containers.maxNodes' (-1) cannot be negative",
		},
		{
			name:     "no_workers",
			mutate:   func(cfg *Config) { cfg.Soak.Workers = 0 },
			expected: "config 'soak.workers' (0) must be greater than zero",
		},
		{
			name:     "no_operations",
			mutate:   func(cfg *Config) { cfg.Soak.Operations = -5 },
			expected: "config 'soak.operations' (-5) must be greater than zero",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			require.EqualError(t, cfg.Verify(), tc.expected)
		})
	}
}
