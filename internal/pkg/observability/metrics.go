package observability

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "boleias"

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "transitions_total", Help: "Lifecycle triggers applied, by trigger and outcome"},
		[]string{"trigger", "outcome"},
	)
	CompatibleOffers = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "compatible_offers",
		Help:      "Number of compatible offers returned per search",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})
	AuditWriteFailures   = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "audit_write_failures_total", Help: "Audit entries dropped after retries"})
	EventPublishFailures = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "event_publish_failures_total", Help: "Entity change events that could not be published"})
	SubmissionsTotal     = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "submissions_total", Help: "Self-service submissions, by entity and outcome"},
		[]string{"entity", "outcome"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Outcome labels
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// OutcomeOf classifies a use case result for the outcome label
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case apperrors.IsConflict(err):
		return OutcomeConflict
	case apperrors.IsTyped(err) && !apperrors.IsTransient(err):
		return OutcomeRejected
	}
	return OutcomeError
}

// MetricsMiddleware records request counts and latency per route template
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			labels := []string{c.Request().Method, route, strconv.Itoa(status)}
			HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RegisterMetricsEndpoint exposes the default registry on /metrics
func RegisterMetricsEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
