package audit

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/models"
)

func TestPostgresSink_AppendAuditLog(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	sink := NewPostgresSink(sqlx.NewDb(mockDB, "sqlmock"))

	entry := &models.AuditLogEntry{
		ID:         "a-1",
		Action:     "match_confirmed",
		EntityType: models.EntityMatch,
		EntityID:   "m-1",
		Metadata:   map[string]interface{}{"new_status": "CONFIRMED"},
		CreatedAt:  time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO coordinator_logs")).
		WithArgs("a-1", "match_confirmed", models.EntityMatch, "m-1", []byte(`{"new_status":"CONFIRMED"}`), entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, sink.AppendAuditLog(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSink_NilMetadataAndError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	sink := NewPostgresSink(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO coordinator_logs")).
		WithArgs("a-2", "request_created", models.EntityRequest, "r-1", []byte(`{}`), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	err = sink.AppendAuditLog(context.Background(), &models.AuditLogEntry{
		ID:         "a-2",
		Action:     "request_created",
		EntityType: models.EntityRequest,
		EntityID:   "r-1",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsTransient(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSink_DuplicateID(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	sink := NewPostgresSink(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO coordinator_logs")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "coordinator_logs_pkey"})

	err = sink.AppendAuditLog(context.Background(), &models.AuditLogEntry{ID: "a-3", Action: "offer_created"})

	assert.True(t, apperrors.IsConflict(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
