// Package retry re-runs side effects that live outside a user's request,
// such as audit writes, with capped exponential backoff.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/models"
)

// Func is one attempt of the retried operation
type Func func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	Op         string        // name used in log lines
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool // adds up to 10% to each delay
	// Retryable decides whether err is worth another attempt
	Retryable func(error) bool
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		Op:         "operation",
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		Retryable:  IsRetryable,
	}
}

// IsRetryable retries transient and unclassified failures. Validation, conflict
// and the other typed outcomes would fail the same way again.
func IsRetryable(err error) bool {
	return apperrors.IsTransient(err) || !apperrors.IsTyped(err)
}

// FromAuditConfig builds the retry policy used for audit writes
func FromAuditConfig(cfg models.AuditConfig) Config {
	c := DefaultConfig()
	c.Op = "audit write"
	c.MaxRetries = cfg.MaxRetries
	if cfg.InitialDelay > 0 {
		c.BaseDelay = cfg.InitialDelay
	}
	if cfg.MaxDelay > 0 {
		c.MaxDelay = cfg.MaxDelay
	}
	return c
}

// Retrier runs a Func until it succeeds, fails permanently or runs out of attempts
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a retrier
func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.Retryable == nil {
		config.Retryable = IsRetryable
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	return &Retrier{config: config, logger: l}
}

// Execute runs fn. It stops early when ctx is done or the error is not retryable.
func (r *Retrier) Execute(ctx context.Context, fn Func) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			if attempt > 0 {
				r.logger.Info("Retry succeeded",
					logger.String("op", r.config.Op),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		if !r.config.Retryable(lastErr) {
			return lastErr
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)
		r.logger.Debug("Attempt failed, retrying",
			logger.String("op", r.config.Op),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Err(lastErr))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("%s: retry limit exceeded after %d attempts: %w", r.config.Op, r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if ceiling := float64(r.config.MaxDelay); ceiling > 0 && delay > ceiling {
		delay = ceiling
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
