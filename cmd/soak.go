package cmd

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linkedkit/linkedkit/internal/soak"
	"github.com/linkedkit/linkedkit/pkg/logger"
)

// NewSoakCommand returns the command that runs randomized operations against every
// container and compares each step with a reference implementation.
func NewSoakCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soak",
		Short: "Run randomized operations against every container",
		Long: `Run randomized operations against every container and compare each step with a
reference implementation. Exits with an error at the first divergence.`,
		RunE: runSoak,
		Args: cobra.NoArgs,
	}

	bindSoakFlags(cmd)
	return cmd
}

func runSoak(cmd *cobra.Command, _ []string) error {
	cfg, err := ReadConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	runner := soak.NewRunner(
		soak.WithWorkers(cfg.Soak.Workers),
		soak.WithOperations(cfg.Soak.Operations),
		soak.WithSeed(cfg.Soak.Seed),
		soak.WithMaxNodes(cfg.Containers.MaxNodes),
		soak.WithLogger(log),
		soak.WithRegisterer(registry),
	)

	report, runErr := runner.Run(cmd.Context())

	operations, divergences, err := summarize(log, registry)
	if err != nil {
		return fmt.Errorf("failed to gather soak metrics: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run %s seed %d: operations: %d divergences: %d\n",
		report.RunID, report.Seed, operations, divergences)

	return runErr
}

// summarize logs every counter in the registry and returns the operation and divergence totals.
func summarize(log logger.Logger, gatherer prometheus.Gatherer) (operations, divergences int, err error) {
	families, err := gatherer.Gather()
	if err != nil {
		return 0, 0, err
	}

	for _, family := range families {
		for _, m := range family.GetMetric() {
			value := int(m.GetCounter().GetValue())

			labels := make([]string, 0, len(m.GetLabel()))
			for _, pair := range m.GetLabel() {
				labels = append(labels, pair.GetName()+"="+pair.GetValue())
			}
			log.Info("soak counter",
				zap.String("metric", family.GetName()),
				zap.String("labels", strings.Join(labels, ",")),
				zap.Int("value", value),
			)

			switch family.GetName() {
			case soak.OperationsMetricName:
				operations += value
			case soak.DivergencesMetricName:
				divergences += value
			}
		}
	}

	return operations, divergences, nil
}
