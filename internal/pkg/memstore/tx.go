package memstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/models"
)

type memTx struct {
	store *Store
	state state
}

func (tx *memTx) GetRequestForUpdate(ctx context.Context, id string) (*models.RideRequest, error) {
	r, ok := tx.state.requests[id]
	if !ok {
		return nil, apperrors.NotFound(models.EntityRequest, id)
	}
	return r.Clone(), nil
}

func (tx *memTx) GetOfferForUpdate(ctx context.Context, id string) (*models.RideOffer, error) {
	o, ok := tx.state.offers[id]
	if !ok {
		return nil, apperrors.NotFound(models.EntityOffer, id)
	}
	return o.Clone(), nil
}

func (tx *memTx) GetMatchForUpdate(ctx context.Context, id string) (*models.Match, error) {
	m, ok := tx.state.matches[id]
	if !ok {
		return nil, apperrors.NotFound(models.EntityMatch, id)
	}
	return m.Clone(), nil
}

func (tx *memTx) LiveMatchForRequest(ctx context.Context, requestID string) (*models.Match, error) {
	for _, m := range tx.state.matches {
		if m.RequestID == requestID && m.Status.IsLive() {
			return m.Clone(), nil
		}
	}
	return nil, nil
}

func (tx *memTx) LiveMatchForOffer(ctx context.Context, offerID string) (*models.Match, error) {
	for _, m := range tx.state.matches {
		if m.OfferID == offerID && m.Status.IsLive() {
			return m.Clone(), nil
		}
	}
	return nil, nil
}

// CreateMatch enforces one live match per request and per offer, like the partial unique indexes in Postgres
func (tx *memTx) CreateMatch(ctx context.Context, m *models.Match) error {
	if err := tx.store.fault(OpCreateMatch); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	for _, existing := range tx.state.matches {
		if !existing.Status.IsLive() {
			continue
		}
		if existing.RequestID == m.RequestID {
			return apperrors.Conflict(models.EntityRequest, m.RequestID, "request already has a live match")
		}
		if existing.OfferID == m.OfferID {
			return apperrors.Conflict(models.EntityOffer, m.OfferID, "offer already has a live match")
		}
	}
	tx.state.matches[m.ID] = m.Clone()
	return nil
}

func (tx *memTx) UpdateMatch(ctx context.Context, id string, u models.MatchUpdate) error {
	if err := tx.store.fault(OpUpdateMatch); err != nil {
		return err
	}
	m, ok := tx.state.matches[id]
	if !ok {
		return apperrors.NotFound(models.EntityMatch, id)
	}
	if m.Status != u.ExpectedStatus {
		return apperrors.Conflict(models.EntityMatch, id, "status is "+string(m.Status))
	}
	m.Status = u.Status
	m.UpdatedAt = u.UpdatedAt
	return nil
}

func (tx *memTx) UpdateRequestStatus(ctx context.Context, id string, u models.RequestUpdate) error {
	if err := tx.store.fault(OpUpdateRequestStatus); err != nil {
		return err
	}
	r, ok := tx.state.requests[id]
	if !ok {
		return apperrors.NotFound(models.EntityRequest, id)
	}
	if r.Status != u.ExpectedStatus {
		return apperrors.Conflict(models.EntityRequest, id, "status is "+string(r.Status))
	}
	r.Status = u.Status
	if u.SetMatchedOffer {
		r.MatchedOfferID = nil
		if u.MatchedOfferID != nil {
			v := *u.MatchedOfferID
			r.MatchedOfferID = &v
		}
	}
	r.UpdatedAt = u.UpdatedAt
	return nil
}

func (tx *memTx) UpdateOfferStatus(ctx context.Context, id string, u models.OfferUpdate) error {
	if err := tx.store.fault(OpUpdateOfferStatus); err != nil {
		return err
	}
	o, ok := tx.state.offers[id]
	if !ok {
		return apperrors.NotFound(models.EntityOffer, id)
	}
	if o.Status != u.ExpectedStatus {
		return apperrors.Conflict(models.EntityOffer, id, "status is "+string(o.Status))
	}
	o.Status = u.Status
	o.UpdatedAt = u.UpdatedAt
	return nil
}
