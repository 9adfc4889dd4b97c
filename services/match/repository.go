package match

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/boleias/services/match MatchRepo,Tx

import (
	"context"

	"github.com/piresc/boleias/internal/pkg/models"
)

// MatchRepo is the entity store as seen by the coordination core.
// Missing rows surface as apperrors.NotFoundError, lost races as
// apperrors.ConflictError and store failures as apperrors.TransientError.
type MatchRepo interface {
	GetRequest(ctx context.Context, id string) (*models.RideRequest, error)
	GetOffer(ctx context.Context, id string) (*models.RideOffer, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListAvailableOffers(ctx context.Context, filter models.AvailableOfferFilter) ([]*models.RideOffer, error)
	ListMatches(ctx context.Context, filter models.MatchFilter) ([]*models.Match, error)

	// WithinTx runs fn as one atomic unit. Any error from fn rolls every write back.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the store surface available inside WithinTx.
// Reads lock the row until the unit ends; writes are compare-and-swap on the
// expected status and fail with ConflictError when it no longer holds.
type Tx interface {
	GetRequestForUpdate(ctx context.Context, id string) (*models.RideRequest, error)
	GetOfferForUpdate(ctx context.Context, id string) (*models.RideOffer, error)
	GetMatchForUpdate(ctx context.Context, id string) (*models.Match, error)

	// LiveMatchForRequest returns nil, nil when no live match exists
	LiveMatchForRequest(ctx context.Context, requestID string) (*models.Match, error)
	// LiveMatchForOffer returns nil, nil when no live match exists
	LiveMatchForOffer(ctx context.Context, offerID string) (*models.Match, error)

	CreateMatch(ctx context.Context, m *models.Match) error
	UpdateMatch(ctx context.Context, id string, update models.MatchUpdate) error
	UpdateRequestStatus(ctx context.Context, id string, update models.RequestUpdate) error
	UpdateOfferStatus(ctx context.Context, id string, update models.OfferUpdate) error
}
