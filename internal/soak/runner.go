// Package soak applies long randomized operation sequences to every container and
// checks each step against a reference implementation from emirpasic/gods.
package soak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/linkedkit/linkedkit/internal/concurrency"
	"github.com/linkedkit/linkedkit/pkg/logger"
)

// ErrDivergence if a container's contents or result differ from the reference
// implementation after an operation.
var ErrDivergence = errors.New("container diverged from reference")

type Structure string

const (
	DoublyLinked Structure = "doubly_linked"
	SinglyLinked Structure = "singly_linked"
	Stack        Structure = "stack"
	Queue        Structure = "queue"
)

// Structures lists every container a worker exercises, in the order it does so.
var Structures = []Structure{DoublyLinked, SinglyLinked, Stack, Queue}

const (
	defaultWorkers    = 4
	defaultOperations = 10000

	// cancellationCheckInterval is how many operations run between context checks.
	cancellationCheckInterval = 256
)

// Report describes a finished run.
type Report struct {
	RunID      string
	Seed       int64
	Workers    int
	Operations int
	Duration   time.Duration
}

type Runner struct {
	workers    int
	operations int
	seed       int64
	maxNodes   int
	logger     logger.Logger
	registerer prometheus.Registerer

	metrics *metrics
}

type RunnerOpt func(*Runner)

func WithWorkers(n int) RunnerOpt {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithOperations sets how many operations each worker applies to each container.
func WithOperations(n int) RunnerOpt {
	return func(r *Runner) {
		r.operations = n
	}
}

// WithSeed makes runs reproducible. Zero picks a seed from the clock.
func WithSeed(seed int64) RunnerOpt {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithMaxNodes caps the lists under test so inserts past the cap are rejected.
func WithMaxNodes(n int) RunnerOpt {
	return func(r *Runner) {
		r.maxNodes = n
	}
}

func WithLogger(l logger.Logger) RunnerOpt {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithRegisterer sets where the soak metrics are registered. By default a private
// registry is used.
func WithRegisterer(reg prometheus.Registerer) RunnerOpt {
	return func(r *Runner) {
		r.registerer = reg
	}
}

func NewRunner(opts ...RunnerOpt) *Runner {
	r := &Runner{
		workers:    defaultWorkers,
		operations: defaultOperations,
		logger:     logger.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.workers < 1 {
		r.workers = 1
	}
	if r.registerer == nil {
		r.registerer = prometheus.NewRegistry()
	}
	r.metrics = newMetrics(r.registerer)

	return r
}

// Run starts the workers and waits for all of them. It stops at the first
// divergence and returns it wrapped around ErrDivergence.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:      ulid.Make().String(),
		Seed:       r.seed,
		Workers:    r.workers,
		Operations: r.operations,
	}
	if report.Seed == 0 {
		report.Seed = time.Now().UnixNano()
	}

	log := r.logger.With(zap.String("run_id", report.RunID), zap.Int64("seed", report.Seed))
	log.Info("soak run started", zap.Int("workers", r.workers), zap.Int("operations", r.operations))

	start := time.Now()
	p := concurrency.NewPool(ctx, r.workers)
	for i := range r.workers {
		w := &worker{
			id:         i,
			seed:       report.Seed + int64(i),
			operations: r.operations,
			maxNodes:   r.maxNodes,
			metrics:    r.metrics,
		}
		p.Go(func(ctx context.Context) error {
			err := w.run(ctx)
			if err != nil {
				log.Error("soak worker failed", zap.Int("worker", w.id), zap.Error(err))
			}
			return err
		})
	}

	err := p.Wait()
	report.Duration = time.Since(start)
	if err != nil {
		return report, fmt.Errorf("soak run %s: %w", report.RunID, err)
	}

	log.Info("soak run finished", zap.Duration("duration", report.Duration))
	return report, nil
}
