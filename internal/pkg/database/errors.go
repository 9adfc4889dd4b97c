package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
	"github.com/piresc/boleias/internal/pkg/apperrors"
)

// Postgres SQLSTATE codes the store reacts to
const (
	codeUniqueViolation      = "23505"
	codeInvalidText          = "22P02"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// sqlState extracts the SQLSTATE and constraint from either driver's error type
func sqlState(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	return "", ""
}

// TranslateError maps a driver error on entity id to the typed errors of apperrors.
// Missing rows and malformed ids become NotFound, unique violations become Conflict,
// everything else is Transient.
func TranslateError(op, entity, id string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsTyped(err) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(entity, id)
	}
	if apperrors.IsTimeout(err) {
		return apperrors.Transient(op, err)
	}

	code, constraint := sqlState(err)
	switch code {
	case codeInvalidText:
		return apperrors.NotFound(entity, id)
	case codeUniqueViolation:
		return apperrors.Conflict(entity, id, "violates "+constraint)
	case codeSerializationFailure, codeDeadlockDetected:
		return apperrors.Transient(op, err)
	}
	return apperrors.Transient(op, fmt.Errorf("failed to %s: %w", op, err))
}
