package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(MetricsMiddleware())
	e.GET("/api/v1/offers", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	RegisterMetricsEndpoint(e)

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/offers", "200"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/offers", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/offers", "200"))
	assert.Equal(t, before+1, after)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "boleias_http_requests_total")
}

func TestTransitionsCounter(t *testing.T) {
	before := testutil.ToFloat64(TransitionsTotal.WithLabelValues("confirm", OutcomeOK))
	TransitionsTotal.WithLabelValues("confirm", OutcomeOK).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(TransitionsTotal.WithLabelValues("confirm", OutcomeOK)))
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeOK, OutcomeOf(nil))
	assert.Equal(t, OutcomeConflict, OutcomeOf(apperrors.Conflict("match", "m-1", "")))
	assert.Equal(t, OutcomeRejected, OutcomeOf(apperrors.Validation("passengers", "too many")))
	assert.Equal(t, OutcomeError, OutcomeOf(apperrors.Transient("get", errors.New("down"))))
	assert.Equal(t, OutcomeError, OutcomeOf(errors.New("boom")))
}
