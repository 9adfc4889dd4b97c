package rides

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/boleias/services/rides RidesUC

import (
	"context"

	"github.com/piresc/boleias/internal/pkg/models"
)

// RidesUC defines the self-service and listing use cases.
// Owner operations are authorized by the edit token alone.
type RidesUC interface {
	SubmitRequest(ctx context.Context, in models.RideRequestInput) (*models.RideRequestCreated, error)
	GetRequestByToken(ctx context.Context, token string) (*models.RideRequest, error)
	UpdateRequest(ctx context.Context, token string, in models.RideRequestInput) (*models.RideRequest, error)
	CancelRequestByToken(ctx context.Context, token string) (*models.RideRequest, error)
	ListPublicRequests(ctx context.Context, filter models.RequestFilter) ([]*models.PublicRideRequest, error)
	ListRequests(ctx context.Context, auth models.AuthContext, filter models.RequestFilter) ([]*models.RideRequest, error)

	SubmitOffer(ctx context.Context, in models.RideOfferInput) (*models.RideOfferCreated, error)
	GetOfferByToken(ctx context.Context, token string) (*models.RideOffer, error)
	UpdateOffer(ctx context.Context, token string, in models.RideOfferInput) (*models.RideOffer, error)
	CancelOfferByToken(ctx context.Context, token string) (*models.RideOffer, error)
	ListPublicOffers(ctx context.Context, filter models.OfferFilter) ([]*models.PublicRideOffer, error)
	ListOffers(ctx context.Context, auth models.AuthContext, filter models.OfferFilter) ([]*models.RideOffer, error)
}
