package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/database"
	"github.com/piresc/boleias/internal/pkg/models"
)

// PostgresSink appends audit entries to coordinator_logs
type PostgresSink struct {
	db *sqlx.DB
}

// NewPostgresSink creates a sink over db
func NewPostgresSink(db *sqlx.DB) *PostgresSink {
	return &PostgresSink{db: db}
}

// AppendAuditLog inserts one entry. Metadata is stored as JSONB.
// A duplicate id surfaces as ConflictError so the recorder does not retry it.
func (s *PostgresSink) AppendAuditLog(ctx context.Context, entry *models.AuditLogEntry) error {
	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return apperrors.Validation("metadata", fmt.Sprintf("cannot encode audit metadata: %v", err))
	}

	query := `
		INSERT INTO coordinator_logs (id, action, entity_type, entity_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := s.db.ExecContext(ctx, query,
		entry.ID, entry.Action, entry.EntityType, entry.EntityID, raw, entry.CreatedAt); err != nil {
		return database.TranslateError("append audit log", "audit log entry", entry.ID, err)
	}
	return nil
}
