// Package config contains all knobs and defaults used to configure the linkedkit
// command line tools.
package config

import (
	"errors"
	"fmt"
)

const (
	DefaultLogFormat = "text"
	DefaultLogLevel  = "info"

	// DefaultMaxNodes of zero leaves containers uncapped.
	DefaultMaxNodes = 0

	DefaultSoakWorkers    = 4
	DefaultSoakOperations = 10000
	// DefaultSoakSeed of zero asks the soak runner to pick a seed from the clock.
	DefaultSoakSeed = 0
)

type LogConfig struct {
	// Format is the log format to use in the log output (e.g. 'text' or 'json')
	Format string

	// Level is the log level to use in the log output (e.g. 'none', 'debug', or 'info')
	Level string
}

// ContainersConfig defines settings applied to every container the tools build.
type ContainersConfig struct {
	// MaxNodes caps the live nodes of a single container. Inserts past the cap are
	// rejected the same way an allocation failure would be.
	MaxNodes int
}

// SoakConfig defines the randomized differential workload run by the soak command.
type SoakConfig struct {
	// Workers is the number of workloads run concurrently. Every worker owns its
	// containers.
	Workers int

	// Operations is the number of operations each worker applies per container.
	Operations int

	// Seed makes a run reproducible. Worker i uses Seed+i.
	Seed int64
}

type Config struct {
	Log        LogConfig
	Containers ContainersConfig
	Soak       SoakConfig
}

// DefaultConfig returns the linkedkit default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
		},
		Containers: ContainersConfig{
			MaxNodes: DefaultMaxNodes,
		},
		Soak: SoakConfig{
			Workers:    DefaultSoakWorkers,
			Operations: DefaultSoakOperations,
			Seed:       DefaultSoakSeed,
		},
	}
}

func (cfg *Config) Verify() error {
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return errors.New("config 'log.format' must be one of ['text', 'json']")
	}

	if cfg.Log.Level != "none" &&
		cfg.Log.Level != "debug" &&
		cfg.Log.Level != "info" &&
		cfg.Log.Level != "warn" &&
		cfg.Log.Level != "error" {
		return errors.New("config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error']")
	}

	if cfg.Containers.MaxNodes < 0 {
		return fmt.Errorf("config 'containers.maxNodes' (%d) cannot be negative", cfg.Containers.MaxNodes)
	}

	if cfg.Soak.Workers <= 0 {
		return fmt.Errorf("config 'soak.workers' (%d) must be greater than zero", cfg.Soak.Workers)
	}

	if cfg.Soak.Operations <= 0 {
		return fmt.Errorf("config 'soak.operations' (%d) must be greater than zero", cfg.Soak.Operations)
	}

	return nil
}
