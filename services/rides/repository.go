package rides

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/boleias/services/rides RidesRepo

import (
	"context"

	"github.com/piresc/boleias/internal/pkg/models"
)

// RidesRepo defines data access for self-service requests and offers.
// Status columns are owned by the match lifecycle; detail updates never touch them.
type RidesRepo interface {
	CreateRequest(ctx context.Context, r *models.RideRequest) error
	GetRequestByToken(ctx context.Context, token string) (*models.RideRequest, error)
	UpdateRequestDetails(ctx context.Context, r *models.RideRequest, expected models.RequestStatus) error
	ListRequests(ctx context.Context, filter models.RequestFilter) ([]*models.RideRequest, error)

	CreateOffer(ctx context.Context, o *models.RideOffer) error
	GetOfferByToken(ctx context.Context, token string) (*models.RideOffer, error)
	UpdateOfferDetails(ctx context.Context, o *models.RideOffer, expected models.OfferStatus) error
	ListOffers(ctx context.Context, filter models.OfferFilter) ([]*models.RideOffer, error)
}
