package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/rides/repository"
)

func setupMockDB(t *testing.T) (*repository.RidesRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return repository.NewRidesRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestCreateRequest(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_requests")).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Duplicate token",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_requests")).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "ride_requests_edit_token_key"})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsConflict(err))
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_requests")).
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsTransient(err))
				assert.Contains(t, err.Error(), "failed to create request")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupMockDB(t)
			tc.mockSetup(mock)

			err := repo.CreateRequest(context.Background(), &models.RideRequest{
				ID:           "r-1",
				Passengers:   2,
				SpecialNeeds: pq.StringArray{"elderly"},
				Status:       models.RequestStatusNew,
				EditToken:    "tok",
			})

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetRequestByToken(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "requester_name", "special_needs", "status", "matched_offer_id"}).
		AddRow("r-1", "Maria Silva", "{elderly,wheelchair}", "CONFIRMED", "o-1")
	mock.ExpectQuery(regexp.QuoteMeta("FROM ride_requests WHERE edit_token = $1")).
		WithArgs("tok").
		WillReturnRows(rows)

	req, err := repo.GetRequestByToken(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", req.RequesterName)
	assert.Equal(t, pq.StringArray{"elderly", "wheelchair"}, req.SpecialNeeds)
	require.NotNil(t, req.MatchedOfferID)
	assert.Equal(t, "o-1", *req.MatchedOfferID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOfferByToken_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ride_offers WHERE edit_token = $1")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetOfferByToken(context.Background(), "nope")

	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRequestDetails_StatusMoved(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_requests SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRequestDetails(context.Background(), &models.RideRequest{ID: "r-1", UpdatedAt: time.Now()}, models.RequestStatusNew)

	assert.True(t, apperrors.IsConflict(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOfferDetails(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_offers SET")).
		WithArgs("Rui Costa", "+351962123040", "van", 5, "Benfica", "ANY",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "", sqlmock.AnyArg(), "o-1", "RESERVED").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateOfferDetails(context.Background(), &models.RideOffer{
		ID:                "o-1",
		DriverName:        "Rui Costa",
		DriverPhone:       "+351962123040",
		VehicleType:       "van",
		SeatsAvailable:    5,
		DepartureAreaText: "Benfica",
		CanGoDistance:     models.DistanceAny,
	}, models.OfferStatusReserved)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRequests_Filters(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM ride_requests WHERE status = $1 AND (pickup_geohash LIKE $2) AND (requester_name ILIKE $3")).
		WithArgs("NEW", "eyckp%", "%rato%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-1"))

	requests, err := repo.ListRequests(context.Background(), models.RequestFilter{
		Status:        models.RequestStatusNew,
		GeohashPrefix: "eyckp",
		Search:        "rato",
	})

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRequests_NearGeohash(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM ride_requests WHERE (pickup_geohash LIKE $1 OR pickup_geohash LIKE $2")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ListRequests(context.Background(), models.RequestFilter{GeohashPrefix: "eyckp", Near: true})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOffers_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`FROM ride_offers ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	offers, err := repo.ListOffers(context.Background(), models.OfferFilter{})

	require.NoError(t, err)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
