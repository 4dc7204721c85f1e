package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/parametriclabs/policyd/internal/adapter"
	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/logger"
	"github.com/parametriclabs/policyd/internal/messaging"
	"github.com/parametriclabs/policyd/internal/store"
)

const (
	DEFAULT_SWEEP_INTERVAL = 1 * time.Minute // Time to sleep between sweep cycles
)

// ExpirySweeperConfig holds configuration for the expiry sweeper
type ExpirySweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Policies to expire per batch
	WorkerPoolSize int           // Concurrent event publishers
}

func (c *ExpirySweeperConfig) interval() time.Duration {
	if c.Interval <= 0 {
		return DEFAULT_SWEEP_INTERVAL
	}
	return c.Interval
}

// expirySweeper implements the Sweeper interface for policy expiry.
// It moves overdue active and purchased policies to the expired status
// and publishes a lifecycle event for each swept policy.
type expirySweeper struct {
	config    *ExpirySweeperConfig
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewExpirySweeper creates a new expiry sweeper
func NewExpirySweeper(
	config *ExpirySweeperConfig,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Sweeper {
	return &expirySweeper{
		config:    config,
		store:     st,
		publisher: publisher,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *expirySweeper) Name() string {
	return "policy-expiry-sweeper"
}

// Start begins the sweeper's main loop
// This is a blocking call that runs until the context is canceled
func (s *expirySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting policy expiry sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	// Create worker pool
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	// Continuous loop - stops when context is canceled or stop is requested
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Policy expiry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Policy expiry sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *expirySweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *expirySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping policy expiry sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Policy expiry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Policy expiry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle expires one batch of overdue policies
func (s *expirySweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	swept, err := s.sweepWithRetry(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep expired policies: %w", err)
	}

	if len(swept) == 0 {
		// Nothing overdue right now, wait before checking again.
		// Use context-aware sleep so we can be interrupted.
		if !s.sleep(ctx, s.config.interval()) {
			return ctx.Err()
		}
		return nil
	}

	logger.InfoCtx(ctx, "Expired overdue policies", zap.Int("count", len(swept)))

	var publishedCount, failedCount atomic.Int32

	// Publish lifecycle events concurrently. The status change is already
	// committed; a failed publish is logged but never undone.
	for _, p := range swept {
		s.pool.Submit(func() {
			if err := s.publishExpired(ctx, p); err != nil {
				failedCount.Add(1)
				logger.ErrorCtx(ctx, err,
					zap.String("authority", string(p.Authority)),
					zap.String("policy_holder", string(p.PolicyHolder)),
				)
				return
			}
			publishedCount.Add(1)
		})
	}

	// Wait for all publishes to complete
	s.pool.StopAndWait()

	// Recreate pool for next cycle
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	duration := s.clock.Since(startTime)
	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", duration),
		zap.Int("total_swept", len(swept)),
		zap.Int32("events_published", publishedCount.Load()),
		zap.Int32("events_failed", failedCount.Load()),
	)

	// A full batch means there may be more overdue policies waiting;
	// continue immediately instead of sleeping.
	if len(swept) >= s.config.BatchSize {
		return nil
	}

	if !s.sleep(ctx, s.config.interval()) {
		return ctx.Err()
	}

	return nil
}

// sweepWithRetry runs the batch sweep with exponential backoff on transient
// database failures
func (s *expirySweeper) sweepWithRetry(ctx context.Context) ([]*domain.Policy, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxInterval = 1 * time.Minute
	b.MaxElapsedTime = 10 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	backoffWithContext := backoff.WithContext(b, ctx)

	var swept []*domain.Policy
	var attemptCount int
	operation := func() error {
		var err error
		swept, err = s.store.SweepExpired(ctx, s.clock.Now().UTC(), s.config.BatchSize)
		return err
	}
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Expiry sweep failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoffWithContext, notifyOnError); err != nil {
		return nil, fmt.Errorf("failed after %d attempts: %w", attemptCount, err)
	}

	return swept, nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally.
func (s *expirySweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}

// publishExpired emits the lifecycle event for a swept policy
func (s *expirySweeper) publishExpired(ctx context.Context, p *domain.Policy) error {
	record, err := domain.EncodeRecord(p)
	if err != nil {
		return fmt.Errorf("failed to encode policy record: %w", err)
	}

	event := &domain.LifecycleEvent{
		EventID:      ulid.MustNewDefault(s.clock.Now()).String(),
		Type:         domain.EventPolicyExpired,
		Authority:    p.Authority,
		PolicyHolder: p.PolicyHolder,
		Record:       record,
		OccurredAt:   s.clock.Now().UTC(),
	}

	return s.publisher.PublishEvent(ctx, event)
}
