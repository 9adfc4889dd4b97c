package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", Validation("passengers", "must be at least 1"), http.StatusBadRequest},
		{"forbidden", Forbidden("propose match"), http.StatusForbidden},
		{"not found", NotFound("request", "r1"), http.StatusNotFound},
		{"illegal transition", &IllegalTransitionError{Entity: "match", From: "DONE", To: "CONFIRMED"}, http.StatusConflict},
		{"conflict", Conflict("offer", "o1", "already matched"), http.StatusConflict},
		{"transient", Transient("get request", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{"wrapped not found", fmt.Errorf("lookup: %w", NotFound("match", "m1")), http.StatusNotFound},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestTransient(t *testing.T) {
	assert.Nil(t, Transient("op", nil))

	typed := NotFound("request", "r1")
	assert.Same(t, typed, Transient("op", typed))

	err := Transient("get offer", context.DeadlineExceeded)
	assert.True(t, IsTransient(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, IsTimeout(err))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Internal server error", Message(errors.New("pq: secret detail")))
	assert.Equal(t, "passengers: must be at least 1", Message(Validation("passengers", "must be at least 1")))
	assert.Contains(t, Message(Conflict("offer", "o1", "already matched")), "already matched")
	assert.Equal(t, "Service temporarily unavailable, please retry", Message(Transient("x", errors.New("dial tcp"))))
}

func TestIllegalTransitionError_Error(t *testing.T) {
	err := &IllegalTransitionError{Entity: "match", ID: "m1", From: "DONE", To: "CONFIRMED", Reason: "match is terminal"}
	assert.Equal(t, "illegal match m1 transition DONE -> CONFIRMED: match is terminal", err.Error())
	assert.True(t, IsIllegalTransition(fmt.Errorf("confirm: %w", err)))
}

func TestFieldOf(t *testing.T) {
	assert.Equal(t, "window_end", FieldOf(Validation("window_end", "must be after window_start")))
	assert.Equal(t, "", FieldOf(NotFound("request", "r1")))
}
