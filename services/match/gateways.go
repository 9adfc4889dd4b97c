package match

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/boleias/services/match MatchGW

import (
	"context"

	"github.com/piresc/boleias/internal/pkg/models"
)

// MatchGW defines the outbound side effects of the match service
type MatchGW interface {
	// RecordAudit appends entry to the audit log without blocking the caller.
	// Failures are retried and logged by the gateway, never returned.
	RecordAudit(ctx context.Context, entry *models.AuditLogEntry)
}
