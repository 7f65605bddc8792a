package soak

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/linkedkit/linkedkit/pkg/chainerr"
)

const (
	OperationsMetricName  = "linkedkit_soak_operations_total"
	DivergencesMetricName = "linkedkit_soak_divergences_total"
)

type metrics struct {
	operations  *prometheus.CounterVec
	divergences *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: OperationsMetricName,
			Help: "The total number of container operations applied during soak runs, by outcome.",
		}, []string{"structure", "operation", "outcome"}),
		divergences: factory.NewCounterVec(prometheus.CounterOpts{
			Name: DivergencesMetricName,
			Help: "The total number of times a container disagreed with its reference implementation.",
		}, []string{"structure"}),
	}
}

// outcome names the result of an operation for the outcome label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, chainerr.ErrEmpty):
		return "empty"
	case errors.Is(err, chainerr.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, chainerr.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, chainerr.ErrNilHandle):
		return "nil_handle"
	default:
		return "error"
	}
}
