package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/audit"
	"github.com/piresc/boleias/internal/pkg/constants"
	"github.com/piresc/boleias/internal/pkg/memstore"
	"github.com/piresc/boleias/internal/pkg/models"
	matchUsecase "github.com/piresc/boleias/services/match/usecase"
)

func TestSelfServiceRideThroughMatch(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	recorder := audit.NewRecorder(store, nil, models.AuditConfig{})
	cfg := &models.Config{Match: models.MatchConfig{StoreTimeout: time.Second, CompatibleLimit: 50}}
	matchUC := matchUsecase.NewMatchUC(cfg, store, recorder)
	uc := NewRidesUC(cfg, store, recorder, matchUC)
	coordinator := models.AuthContext{Role: models.RoleCoordinator, CoordinatorName: "Ana"}

	request, err := uc.SubmitRequest(ctx, futureRequestInput())
	require.NoError(t, err)
	offer, err := uc.SubmitOffer(ctx, futureOfferInput())
	require.NoError(t, err)

	compatible, err := matchUC.GetCompatibleOffers(ctx, coordinator, request.Request.ID)
	require.NoError(t, err)
	require.Len(t, compatible, 1)
	assert.Equal(t, offer.Offer.ID, compatible[0].ID)

	m, err := matchUC.ProposeMatch(ctx, coordinator, models.ProposeMatchRequest{
		RequestID:        request.Request.ID,
		OfferID:          offer.Offer.ID,
		CoordinatorName:  "Ana",
		CoordinatorPhone: "911111111",
	})
	require.NoError(t, err)
	_, err = matchUC.TransitionMatch(ctx, coordinator, m.ID, models.MatchStatusConfirmed)
	require.NoError(t, err)

	// the passenger edits notes while confirmed, then cancels
	in := futureRequestInput()
	in.Notes = "two suitcases"
	edited, err := uc.UpdateRequest(ctx, request.EditToken, in)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusConfirmed, edited.Status)
	require.NotNil(t, edited.MatchedOfferID)

	cancelled, err := uc.CancelRequestByToken(ctx, request.EditToken)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, cancelled.Status)

	freed, err := store.GetOffer(ctx, offer.Offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusAvailable, freed.Status)

	gone, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusCancelled, gone.Status)

	_, err = uc.UpdateRequest(ctx, request.EditToken, in)
	assert.Error(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, recorder.Wait(waitCtx))

	var actions []string
	for _, entry := range store.AuditLog() {
		actions = append(actions, entry.Action)
	}
	assert.Contains(t, actions, constants.ActionRequestCreated)
	assert.Contains(t, actions, constants.ActionOfferCreated)
	assert.Contains(t, actions, constants.ActionRequestUpdated)
	assert.Contains(t, actions, constants.ActionRequestCancelled)
}

func TestOwnerEditsMustKeepLiveMatchFitting(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	recorder := audit.NewRecorder(store, nil, models.AuditConfig{})
	cfg := &models.Config{Match: models.MatchConfig{StoreTimeout: time.Second}}
	matchUC := matchUsecase.NewMatchUC(cfg, store, recorder)
	uc := NewRidesUC(cfg, store, recorder, matchUC)
	coordinator := models.AuthContext{Role: models.RoleCoordinator, CoordinatorName: "Ana"}

	request, err := uc.SubmitRequest(ctx, futureRequestInput())
	require.NoError(t, err)
	offer, err := uc.SubmitOffer(ctx, futureOfferInput())
	require.NoError(t, err)
	m, err := matchUC.ProposeMatch(ctx, coordinator, models.ProposeMatchRequest{
		RequestID:        request.Request.ID,
		OfferID:          offer.Offer.ID,
		CoordinatorName:  "Ana",
		CoordinatorPhone: "911111111",
	})
	require.NoError(t, err)
	_, err = matchUC.TransitionMatch(ctx, coordinator, m.ID, models.MatchStatusConfirmed)
	require.NoError(t, err)

	crowded := futureRequestInput()
	crowded.Passengers = offer.Offer.SeatsAvailable + 1
	_, err = uc.UpdateRequest(ctx, request.EditToken, crowded)
	assert.True(t, apperrors.IsConflict(err))

	smaller := futureOfferInput()
	smaller.SeatsAvailable = 1
	_, err = uc.UpdateOffer(ctx, offer.EditToken, smaller)
	assert.True(t, apperrors.IsConflict(err))

	storedRequest, err := store.GetRequest(ctx, request.Request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.Request.Passengers, storedRequest.Passengers)
	storedOffer, err := store.GetOffer(ctx, offer.Offer.ID)
	require.NoError(t, err)
	assert.Equal(t, offer.Offer.SeatsAvailable, storedOffer.SeatsAvailable)

	// edits that still fit go through
	roomier := futureOfferInput()
	roomier.SeatsAvailable = offer.Offer.SeatsAvailable + 1
	updated, err := uc.UpdateOffer(ctx, offer.EditToken, roomier)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusReserved, updated.Status)
}
