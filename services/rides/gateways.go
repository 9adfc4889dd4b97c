package rides

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/boleias/services/rides RidesGW,MatchOps

import (
	"context"

	"github.com/piresc/boleias/internal/pkg/models"
)

// RidesGW records audit entries for self-service changes
type RidesGW interface {
	RecordAudit(ctx context.Context, entry *models.AuditLogEntry)
}

// MatchOps runs owner cancellations through the lifecycle cascade and
// checks owner edits against the live match. match.MatchUC satisfies it.
type MatchOps interface {
	CancelRequest(ctx context.Context, requestID, editToken string) (*models.RideRequest, error)
	CancelOffer(ctx context.Context, offerID, editToken string) (*models.RideOffer, error)
	CheckRequestEdit(ctx context.Context, requestID string, next *models.RideRequest) error
	CheckOfferEdit(ctx context.Context, offerID string, next *models.RideOffer) error
}
