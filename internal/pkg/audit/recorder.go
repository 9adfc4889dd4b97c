// Package audit appends coordinator log entries in the background and
// mirrors them as entity-change events for downstream consumers.
package audit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/boleias/internal/pkg/circuitbreaker"
	"github.com/piresc/boleias/internal/pkg/constants"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/pkg/observability"
	"github.com/piresc/boleias/internal/pkg/retry"
)

// Sink persists audit entries
type Sink interface {
	AppendAuditLog(ctx context.Context, entry *models.AuditLogEntry) error
}

// Publisher delivers entity-change events. *nsq.Producer satisfies it.
type Publisher interface {
	Publish(topic string, message interface{}) error
}

const (
	writeTimeout       = 10 * time.Second
	defaultMaxInFlight = 16
)

// Recorder writes audit entries off the caller's path, at most MaxInFlight at a time.
// A failed write never reaches the caller; it is retried and then logged.
type Recorder struct {
	sink      Sink
	publisher Publisher
	topic     string
	retrier   *retry.Retrier
	breaker   *circuitbreaker.CircuitBreaker
	slots     chan struct{}
	wg        sync.WaitGroup
}

// NewRecorder creates a recorder. publisher may be nil to disable events.
func NewRecorder(sink Sink, publisher Publisher, cfg models.AuditConfig) *Recorder {
	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "event-publisher",
		FailureThreshold: cfg.PublishFailureThreshold,
		Cooldown:         cfg.PublishCooldown,
	})
	inFlight := cfg.MaxInFlight
	if inFlight <= 0 {
		inFlight = defaultMaxInFlight
	}
	return &Recorder{
		sink:      sink,
		publisher: publisher,
		topic:     constants.TopicEntityChanged,
		retrier:   retry.New(retry.FromAuditConfig(cfg), logger.GetGlobalLogger()),
		breaker:   breaker,
		slots:     make(chan struct{}, inFlight),
	}
}

// WithTopic overrides the topic entity-change events are published on
func (r *Recorder) WithTopic(topic string) *Recorder {
	if topic != "" {
		r.topic = topic
	}
	return r
}

// RecordAudit stamps entry and hands it to a background writer
func (r *Recorder) RecordAudit(ctx context.Context, entry *models.AuditLogEntry) {
	if entry == nil {
		return
	}
	e := *entry
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = models.Now()
	}
	requestID := logger.RequestIDFromContext(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.slots <- struct{}{}
		defer func() { <-r.slots }()

		bg, cancel := context.WithTimeout(logger.ContextWithRequestID(context.Background(), requestID), writeTimeout)
		defer cancel()
		r.write(bg, &e)
		r.publish(bg, &e)
	}()
}

func (r *Recorder) write(ctx context.Context, e *models.AuditLogEntry) {
	err := r.retrier.Execute(ctx, func(ctx context.Context) error {
		return r.sink.AppendAuditLog(ctx, e)
	})
	if err != nil {
		observability.AuditWriteFailures.Inc()
		logger.ErrorCtx(ctx, "Failed to append audit log",
			logger.String("action", e.Action),
			logger.Entity(e.EntityType, e.EntityID),
			logger.Err(err))
	}
}

func (r *Recorder) publish(ctx context.Context, e *models.AuditLogEntry) {
	if r.publisher == nil {
		return
	}
	event := models.EntityChangedEvent{
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Metadata:   e.Metadata,
		OccurredAt: e.CreatedAt,
	}
	err := r.breaker.Execute(ctx, func(context.Context) error {
		return r.publisher.Publish(r.topic, event)
	})
	if err != nil {
		observability.EventPublishFailures.Inc()
		if errors.Is(err, circuitbreaker.ErrOpen) {
			return
		}
		logger.WarnCtx(ctx, "Failed to publish entity change",
			logger.String("topic", r.topic),
			logger.Entity(e.EntityType, e.EntityID),
			logger.Err(err))
	}
}

// Wait blocks until pending writes finish or ctx is done
func (r *Recorder) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
