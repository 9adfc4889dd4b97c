package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/constants"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/rides/mocks"
)

type ucMocks struct {
	repo     *mocks.MockRidesRepo
	gw       *mocks.MockRidesGW
	matchOps *mocks.MockMatchOps
}

func newTestUC(t *testing.T) (*RidesUC, ucMocks) {
	ctrl := gomock.NewController(t)
	m := ucMocks{
		repo:     mocks.NewMockRidesRepo(ctrl),
		gw:       mocks.NewMockRidesGW(ctrl),
		matchOps: mocks.NewMockMatchOps(ctrl),
	}
	cfg := &models.Config{Match: models.MatchConfig{StoreTimeout: time.Second}}
	return NewRidesUC(cfg, m.repo, m.gw, m.matchOps), m
}

func futureRequestInput() models.RideRequestInput {
	in := validRequestInput()
	in.WindowStart = time.Now().Add(24 * time.Hour)
	in.WindowEnd = in.WindowStart.Add(2 * time.Hour)
	return in
}

func futureOfferInput() models.RideOfferInput {
	in := validOfferInput()
	in.TimeWindowStart = time.Now().Add(24 * time.Hour)
	in.TimeWindowEnd = in.TimeWindowStart.Add(4 * time.Hour)
	return in
}

func TestSubmitRequest_Success(t *testing.T) {
	uc, m := newTestUC(t)

	var stored *models.RideRequest
	m.repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.RideRequest) error {
			stored = r
			return nil
		})
	m.gw.EXPECT().RecordAudit(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *models.AuditLogEntry) {
			assert.Equal(t, constants.ActionRequestCreated, entry.Action)
			assert.Equal(t, models.EntityRequest, entry.EntityType)
			assert.Equal(t, "owner", entry.Metadata[constants.MetaActor])
		})

	created, err := uc.SubmitRequest(context.Background(), futureRequestInput())

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, created.Request.ID)
	assert.Len(t, created.EditToken, 32)
	assert.Equal(t, created.EditToken, stored.EditToken)
	assert.Equal(t, models.RequestStatusNew, stored.Status)
	assert.Nil(t, stored.MatchedOfferID)
	assert.Equal(t, "+351912345678", stored.RequesterPhone)
	assert.NotEmpty(t, stored.PickupGeohash)
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

func TestSubmitRequest_ValidationSkipsStore(t *testing.T) {
	uc, _ := newTestUC(t)
	in := futureRequestInput()
	in.Honeypot = "bot"

	created, err := uc.SubmitRequest(context.Background(), in)

	assert.Nil(t, created)
	assert.Equal(t, "honeypot", apperrors.FieldOf(err))
}

func TestSubmitOffer_StoreFailureIsTransient(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	created, err := uc.SubmitOffer(context.Background(), futureOfferInput())

	assert.Nil(t, created)
	assert.True(t, apperrors.IsTransient(err))
}

func TestGetRequestByToken_Empty(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.GetRequestByToken(context.Background(), "   ")

	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateRequest_KeepsStatus(t *testing.T) {
	uc, m := newTestUC(t)
	offerID := "o-1"
	current := &models.RideRequest{
		ID:             "r-1",
		Status:         models.RequestStatusConfirmed,
		MatchedOfferID: &offerID,
		EditToken:      "tok",
		Passengers:     1,
	}

	m.repo.EXPECT().GetRequestByToken(gomock.Any(), "tok").Return(current, nil)
	m.matchOps.EXPECT().CheckRequestEdit(gomock.Any(), "r-1", gomock.Any()).Return(nil)
	m.repo.EXPECT().UpdateRequestDetails(gomock.Any(), gomock.Any(), models.RequestStatusConfirmed).
		DoAndReturn(func(_ context.Context, r *models.RideRequest, _ models.RequestStatus) error {
			assert.Equal(t, 2, r.Passengers)
			assert.Equal(t, models.RequestStatusConfirmed, r.Status)
			assert.Equal(t, &offerID, r.MatchedOfferID)
			return nil
		})
	m.gw.EXPECT().RecordAudit(gomock.Any(), gomock.Any())

	in := futureRequestInput()
	in.AcceptTerms = false
	updated, err := uc.UpdateRequest(context.Background(), " tok ", in)

	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", updated.RequesterName)
	assert.Equal(t, 1, current.Passengers)
}

func TestUpdateRequest_Terminal(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetRequestByToken(gomock.Any(), "tok").
		Return(&models.RideRequest{ID: "r-1", Status: models.RequestStatusCancelled}, nil)

	_, err := uc.UpdateRequest(context.Background(), "tok", futureRequestInput())

	assert.True(t, apperrors.IsIllegalTransition(err))
}

func TestUpdateOffer_StatusRaceIsConflict(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetOfferByToken(gomock.Any(), "tok").
		Return(&models.RideOffer{ID: "o-1", Status: models.OfferStatusAvailable}, nil)
	m.matchOps.EXPECT().CheckOfferEdit(gomock.Any(), "o-1", gomock.Any()).Return(nil)
	m.repo.EXPECT().UpdateOfferDetails(gomock.Any(), gomock.Any(), models.OfferStatusAvailable).
		Return(apperrors.Conflict(models.EntityOffer, "o-1", "status changed to RESERVED"))

	_, err := uc.UpdateOffer(context.Background(), "tok", futureOfferInput())

	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateRequest_LiveMatchNoLongerFits(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetRequestByToken(gomock.Any(), "tok").
		Return(&models.RideRequest{ID: "r-1", Status: models.RequestStatusConfirmed, Passengers: 1}, nil)
	m.matchOps.EXPECT().CheckRequestEdit(gomock.Any(), "r-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, next *models.RideRequest) error {
			assert.Equal(t, 2, next.Passengers)
			return apperrors.Conflict(models.EntityRequest, "r-1", "the change no longer fits the offer of match m-1")
		})

	_, err := uc.UpdateRequest(context.Background(), "tok", futureRequestInput())

	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateOffer_LiveMatchNoLongerFits(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetOfferByToken(gomock.Any(), "tok").
		Return(&models.RideOffer{ID: "o-1", Status: models.OfferStatusReserved, SeatsAvailable: 4}, nil)
	m.matchOps.EXPECT().CheckOfferEdit(gomock.Any(), "o-1", gomock.Any()).
		Return(apperrors.Conflict(models.EntityOffer, "o-1", "the change no longer fits the request of match m-1"))

	_, err := uc.UpdateOffer(context.Background(), "tok", futureOfferInput())

	assert.True(t, apperrors.IsConflict(err))
}

func TestCancelRequestByToken_DelegatesToCascade(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetRequestByToken(gomock.Any(), "tok").
		Return(&models.RideRequest{ID: "r-1", Status: models.RequestStatusNew, EditToken: "tok"}, nil)
	m.matchOps.EXPECT().CancelRequest(gomock.Any(), "r-1", "tok").
		Return(&models.RideRequest{ID: "r-1", Status: models.RequestStatusCancelled}, nil)

	cancelled, err := uc.CancelRequestByToken(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, cancelled.Status)
}

func TestCancelOfferByToken_UnknownToken(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetOfferByToken(gomock.Any(), "nope").
		Return(nil, apperrors.NotFound(models.EntityOffer, "for token"))

	_, err := uc.CancelOfferByToken(context.Background(), "nope")

	assert.True(t, apperrors.IsNotFound(err))
}

func TestListPublicRequests_MasksAndSearchesLocations(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().ListRequests(gomock.Any(), models.RequestFilter{Status: models.RequestStatusNew}).
		Return([]*models.RideRequest{
			{ID: "r-1", RequesterName: "João Pedro Santos", RequesterPhone: "+351962123040", PickupLocationText: "Alvalade", DropoffLocationText: "Belém", Status: models.RequestStatusNew},
			{ID: "r-2", RequesterName: "Alvalade Ferreira", RequesterPhone: "+351912345678", PickupLocationText: "Sintra", DropoffLocationText: "Cascais", Status: models.RequestStatusNew},
		}, nil)

	out, err := uc.ListPublicRequests(context.Background(), models.RequestFilter{
		Status: models.RequestStatusNew,
		Search: "alvalade",
	})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "r-1", out[0].ID)
	assert.Equal(t, "João S.", out[0].RequesterName)
	assert.Equal(t, "962***040", out[0].RequesterPhone)
}

func TestListPublicOffers_Masks(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().ListOffers(gomock.Any(), models.OfferFilter{}).
		Return([]*models.RideOffer{{ID: "o-1", DriverName: "Rui", DriverPhone: "+351962123040"}}, nil)

	out, err := uc.ListPublicOffers(context.Background(), models.OfferFilter{})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Rui", out[0].DriverName)
	assert.Equal(t, "962***040", out[0].DriverPhone)
}

func TestListRequests_RequiresCoordinator(t *testing.T) {
	uc, m := newTestUC(t)

	_, err := uc.ListRequests(context.Background(), models.PublicAuth(), models.RequestFilter{})
	assert.True(t, apperrors.IsForbidden(err))

	m.repo.EXPECT().ListRequests(gomock.Any(), models.RequestFilter{Search: "rato", GeohashPrefix: "eyckp"}).
		Return([]*models.RideRequest{{ID: "r-1"}}, nil)

	coordinator := models.AuthContext{Role: models.RoleCoordinator, CoordinatorName: "Ana"}
	out, err := uc.ListRequests(context.Background(), coordinator, models.RequestFilter{Search: " rato ", GeohashPrefix: "EYCKP"})

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestListOffers_RequiresCoordinator(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.ListOffers(context.Background(), models.PublicAuth(), models.OfferFilter{})

	assert.True(t, apperrors.IsForbidden(err))
}
