package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.CreateRequest(ctx, &models.RideRequest{
		ID: "r1", RequesterName: "Maria Silva", PickupLocationText: "Leiria", Status: models.RequestStatusNew,
		EditToken: "tr1", PickupGeohash: "ez4q1b", CreatedAt: time.Unix(100, 0),
	}))
	require.NoError(t, s.CreateOffer(ctx, &models.RideOffer{
		ID: "o1", DriverName: "Rui", SeatsAvailable: 2, Status: models.OfferStatusAvailable, EditToken: "to1",
		TimeWindowStart: time.Unix(1000, 0), TimeWindowEnd: time.Unix(2000, 0), CreatedAt: time.Unix(100, 0),
	}))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	s := New()
	seed(t, s)
	ctx := context.Background()

	err := s.WithinTx(ctx, func(tx match.Tx) error {
		require.NoError(t, tx.CreateMatch(ctx, &models.Match{ID: "m1", RequestID: "r1", OfferID: "o1", Status: models.MatchStatusProposed}))
		require.NoError(t, tx.UpdateRequestStatus(ctx, "r1", models.RequestUpdate{ExpectedStatus: models.RequestStatusNew, Status: models.RequestStatusTriage}))
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	_, err = s.GetMatch(ctx, "m1")
	assert.True(t, apperrors.IsNotFound(err))
	r, err := s.GetRequest(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusNew, r.Status)
}

func TestTx_CompareAndSwap(t *testing.T) {
	s := New()
	seed(t, s)
	ctx := context.Background()

	err := s.WithinTx(ctx, func(tx match.Tx) error {
		return tx.UpdateOfferStatus(ctx, "o1", models.OfferUpdate{ExpectedStatus: models.OfferStatusReserved, Status: models.OfferStatusInProgress})
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestTx_OneLiveMatch(t *testing.T) {
	s := New()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.WithinTx(ctx, func(tx match.Tx) error {
		return tx.CreateMatch(ctx, &models.Match{ID: "m1", RequestID: "r1", OfferID: "o1", Status: models.MatchStatusProposed})
	}))
	err := s.WithinTx(ctx, func(tx match.Tx) error {
		return tx.CreateMatch(ctx, &models.Match{ID: "m2", RequestID: "r1", OfferID: "o2", Status: models.MatchStatusProposed})
	})
	assert.True(t, apperrors.IsConflict(err))

	require.NoError(t, s.WithinTx(ctx, func(tx match.Tx) error {
		live, err := tx.LiveMatchForOffer(ctx, "o1")
		require.NoError(t, err)
		require.NotNil(t, live)
		return tx.UpdateMatch(ctx, live.ID, models.MatchUpdate{ExpectedStatus: models.MatchStatusProposed, Status: models.MatchStatusCancelled})
	}))
	require.NoError(t, s.WithinTx(ctx, func(tx match.Tx) error {
		live, err := tx.LiveMatchForRequest(ctx, "r1")
		assert.Nil(t, live)
		return err
	}))
}

func TestFailOn(t *testing.T) {
	s := New()
	seed(t, s)
	ctx := context.Background()

	s.FailOn(OpUpdateMatch, errors.New("injected"))
	err := s.WithinTx(ctx, func(tx match.Tx) error {
		return tx.UpdateMatch(ctx, "m1", models.MatchUpdate{})
	})
	assert.EqualError(t, err, "injected")

	s.FailOn(OpUpdateMatch, nil)
	err = s.WithinTx(ctx, func(tx match.Tx) error {
		return tx.UpdateMatch(ctx, "m1", models.MatchUpdate{})
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCancelledContextIsTransient(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetRequest(ctx, "r1")
	assert.True(t, apperrors.IsTransient(err))
	err = s.WithinTx(ctx, func(tx match.Tx) error { return nil })
	assert.True(t, apperrors.IsTransient(err))
}

func TestListAndFilters(t *testing.T) {
	s := New()
	seed(t, s)
	ctx := context.Background()

	requests, err := s.ListRequests(ctx, models.RequestFilter{Search: "leiria"})
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	requests, err = s.ListRequests(ctx, models.RequestFilter{GeohashPrefix: "ez4"})
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	requests, err = s.ListRequests(ctx, models.RequestFilter{GeohashPrefix: "ez4q40"})
	require.NoError(t, err)
	assert.Empty(t, requests)

	requests, err = s.ListRequests(ctx, models.RequestFilter{GeohashPrefix: "ez4q40", Near: true})
	require.NoError(t, err)
	assert.Len(t, requests, 1, "west neighbour cell is included")

	requests, err = s.ListRequests(ctx, models.RequestFilter{Status: models.RequestStatusDone})
	require.NoError(t, err)
	assert.Empty(t, requests)

	offers, err := s.ListAvailableOffers(ctx, models.AvailableOfferFilter{MinSeats: 3})
	require.NoError(t, err)
	assert.Empty(t, offers)

	offers, err = s.ListAvailableOffers(ctx, models.AvailableOfferFilter{MinSeats: 2, WindowStart: time.Unix(2000, 0), WindowEnd: time.Unix(3000, 0)})
	require.NoError(t, err)
	assert.Len(t, offers, 1)

	r, err := s.GetRequestByToken(ctx, "tr1")
	require.NoError(t, err)
	assert.Equal(t, "r1", r.ID)
	_, err = s.GetOfferByToken(ctx, "nope")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateDetailsKeepsServerFields(t *testing.T) {
	s := New()
	seed(t, s)
	ctx := context.Background()

	err := s.UpdateRequestDetails(ctx, &models.RideRequest{ID: "r1", RequesterName: "Maria S", Status: models.RequestStatusDone, EditToken: "x"}, models.RequestStatusNew)
	require.NoError(t, err)

	r, err := s.GetRequest(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Maria S", r.RequesterName)
	assert.Equal(t, models.RequestStatusNew, r.Status)
	assert.Equal(t, "tr1", r.EditToken)

	err = s.UpdateRequestDetails(ctx, &models.RideRequest{ID: "r1"}, models.RequestStatusTriage)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAuditLog(t *testing.T) {
	s := New()
	require.NoError(t, s.AppendAuditLog(context.Background(), &models.AuditLogEntry{Action: "a"}))
	s.FailOn(OpAppendAuditLog, errors.New("down"))
	assert.Error(t, s.AppendAuditLog(context.Background(), &models.AuditLogEntry{Action: "b"}))

	entries := s.AuditLog()
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
}
