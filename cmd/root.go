// Package cmd contains all the commands included in the linkedkit binary.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linkedkit/linkedkit/internal/config"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with LINKEDKIT, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LINKEDKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/linkedkit", "$HOME/.linkedkit", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	cmd := &cobra.Command{
		Use:   "linkedkit",
		Short: "Exercise a library of generic linked lists, stacks and queues",
		Long: `Exercise a library of generic linked lists, stacks and queues.

linkedkit replays example sessions against every container and soaks them with
randomized operations checked against reference implementations.`,
		SilenceUsage: true,
	}

	bindRootFlags(cmd)
	return cmd
}

// ReadConfig loads the configuration from the bound flags, the environment and the
// optional config file, and verifies it.
func ReadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	return cfg, nil
}
