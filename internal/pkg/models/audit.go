package models

import "time"

// Audit entity types
const (
	EntityRequest = "request"
	EntityOffer   = "offer"
	EntityMatch   = "match"
)

// AuditLogEntry is an append-only record of a state-changing action
type AuditLogEntry struct {
	ID         string                 `json:"id" db:"id"`
	Action     string                 `json:"action" db:"action"`
	EntityType string                 `json:"entity_type" db:"entity_type"`
	EntityID   string                 `json:"entity_id" db:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata" db:"-"`
	CreatedAt  time.Time              `json:"created_at" db:"created_at"`
}

// EntityChangedEvent is published for downstream consumers such as the spreadsheet export
type EntityChangedEvent struct {
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}
