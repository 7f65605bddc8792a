package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/linkedkit/linkedkit/internal/config"
)

// mustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

func mustBindEnv(input ...string) {
	if err := viper.BindEnv(input...); err != nil {
		panic("failed to bind env key: " + err.Error())
	}
}

// bindRootFlags binds the flags shared by every subcommand to the equivalent config
// value being managed by viper.
func bindRootFlags(command *cobra.Command) {
	defaultConfig := config.DefaultConfig()
	flags := command.PersistentFlags()

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in")
	mustBindPFlag("log.format", flags.Lookup("log-format"))
	mustBindEnv("log.format", "LINKEDKIT_LOG_FORMAT")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use")
	mustBindPFlag("log.level", flags.Lookup("log-level"))
	mustBindEnv("log.level", "LINKEDKIT_LOG_LEVEL")

	flags.Int("max-nodes", defaultConfig.Containers.MaxNodes, "the maximum number of live nodes per list (0 means no limit)")
	mustBindPFlag("containers.maxNodes", flags.Lookup("max-nodes"))
	mustBindEnv("containers.maxNodes", "LINKEDKIT_CONTAINERS_MAX_NODES", "LINKEDKIT_CONTAINERS_MAXNODES")
}

// bindSoakFlags binds the soak command flags to their config values.
func bindSoakFlags(command *cobra.Command) {
	defaultConfig := config.DefaultConfig()
	flags := command.Flags()

	flags.Int("workers", defaultConfig.Soak.Workers, "the number of workloads to run concurrently")
	mustBindPFlag("soak.workers", flags.Lookup("workers"))
	mustBindEnv("soak.workers", "LINKEDKIT_SOAK_WORKERS")

	flags.Int("operations", defaultConfig.Soak.Operations, "the number of operations each worker applies to each container")
	mustBindPFlag("soak.operations", flags.Lookup("operations"))
	mustBindEnv("soak.operations", "LINKEDKIT_SOAK_OPERATIONS")

	flags.Int64("seed", defaultConfig.Soak.Seed, "the seed of the run (0 picks one from the clock)")
	mustBindPFlag("soak.seed", flags.Lookup("seed"))
	mustBindEnv("soak.seed", "LINKEDKIT_SOAK_SEED")
}
