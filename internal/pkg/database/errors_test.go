package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, TranslateError("get", "request", "r1", nil))

	err := TranslateError("get", "request", "r1", sql.ErrNoRows)
	assert.True(t, apperrors.IsNotFound(err))

	err = TranslateError("get", "request", "abc", &pgconn.PgError{Code: "22P02"})
	assert.True(t, apperrors.IsNotFound(err))

	err = TranslateError("create", "match", "m1", &pgconn.PgError{Code: "23505", ConstraintName: "uq_matches_live_request"})
	assert.True(t, apperrors.IsConflict(err))
	assert.Contains(t, err.Error(), "uq_matches_live_request")

	err = TranslateError("create", "match", "m1", &pq.Error{Code: "23505", Constraint: "uq_matches_live_offer"})
	assert.True(t, apperrors.IsConflict(err))

	err = TranslateError("update", "offer", "o1", &pgconn.PgError{Code: "40P01"})
	assert.True(t, apperrors.IsTransient(err))

	err = TranslateError("update", "offer", "o1", context.DeadlineExceeded)
	assert.True(t, apperrors.IsTransient(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	typed := apperrors.Conflict("offer", "o1", "taken")
	assert.Equal(t, typed, TranslateError("update", "offer", "o1", typed))
}
