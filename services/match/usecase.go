package match

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/boleias/services/match MatchUC

import (
	"context"

	"github.com/piresc/boleias/internal/pkg/models"
)

// MatchUC defines the match orchestration use cases.
// Every coordinator operation takes the caller's AuthContext explicitly.
type MatchUC interface {
	ProposeMatch(ctx context.Context, auth models.AuthContext, req models.ProposeMatchRequest) (*models.Match, error)
	TransitionMatch(ctx context.Context, auth models.AuthContext, matchID string, target models.MatchStatus) (*models.Match, error)
	GetCompatibleOffers(ctx context.Context, auth models.AuthContext, requestID string) ([]*models.RideOffer, error)
	GetMatch(ctx context.Context, auth models.AuthContext, matchID string) (*models.MatchDetail, error)
	ListMatches(ctx context.Context, auth models.AuthContext, filter models.MatchFilter) ([]*models.MatchDetail, error)

	UpdateRequestStatus(ctx context.Context, auth models.AuthContext, requestID string, target models.RequestStatus) (*models.RideRequest, error)
	UpdateOfferStatus(ctx context.Context, auth models.AuthContext, offerID string, target models.OfferStatus) (*models.RideOffer, error)

	// Owner paths: the edit token is the only authorization signal
	CancelRequest(ctx context.Context, requestID, editToken string) (*models.RideRequest, error)
	CancelOffer(ctx context.Context, offerID, editToken string) (*models.RideOffer, error)
	// Owner edits must keep a live match's pair fitting
	CheckRequestEdit(ctx context.Context, requestID string, next *models.RideRequest) error
	CheckOfferEdit(ctx context.Context, offerID string, next *models.RideOffer) error
}
