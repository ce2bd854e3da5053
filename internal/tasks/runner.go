// Package tasks runs named background jobs spawned by the services, such
// as the season recalculation a challenge closure triggers. Every job gets
// a correlation ID and its outcome is always logged, so no background
// failure can disappear silently.
package tasks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultJobTimeout bounds a single background job
const defaultJobTimeout = 2 * time.Minute

// Runner defines the interface for scheduling background jobs
type Runner interface {
	// Run schedules a named job. It returns immediately; the job's
	// outcome is logged, not returned.
	Run(name string, job func(ctx context.Context) error)
}

// Config holds configuration for the runner
type Config struct {
	// Logger for job outcomes
	Logger zerolog.Logger

	// JobTimeout bounds each job, defaultJobTimeout when zero
	JobTimeout time.Duration
}

// runner implements the Runner interface with one goroutine per job
type runner struct {
	logger  zerolog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewRunner creates a new background job runner
func NewRunner(cfg *Config) (*runner, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	timeout := cfg.JobTimeout
	if timeout <= 0 {
		timeout = defaultJobTimeout
	}

	return &runner{
		logger:  cfg.Logger,
		timeout: timeout,
	}, nil
}

// Run schedules a named job on its own goroutine
func (r *runner) Run(name string, job func(ctx context.Context) error) {
	jobID := uuid.NewString()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		logger := r.logger.With().Str("job", name).Str("job_id", jobID).Logger()
		logger.Debug().Msg("job started")

		if err := job(ctx); err != nil {
			logger.Error().Err(err).Msg("job failed")
			return
		}

		logger.Debug().Msg("job finished")
	}()
}

// Wait blocks until every scheduled job has finished. Called on shutdown.
func (r *runner) Wait() {
	r.wg.Wait()
}
