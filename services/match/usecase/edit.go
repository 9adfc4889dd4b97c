package usecase

import (
	"context"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/match"
	"github.com/piresc/boleias/services/match/compat"
)

// CheckRequestEdit rejects owner edits that would leave the request's live match
// with an offer that can no longer carry it. Requests without a live match pass.
func (uc *MatchUC) CheckRequestEdit(ctx context.Context, requestID string, next *models.RideRequest) error {
	ctx, cancel := uc.storeCtx(ctx)
	defer cancel()

	err := uc.matchRepo.WithinTx(ctx, func(tx match.Tx) error {
		live, err := tx.LiveMatchForRequest(ctx, requestID)
		if err != nil || live == nil {
			return err
		}
		offer, err := tx.GetOfferForUpdate(ctx, live.OfferID)
		if err != nil {
			return err
		}
		if !compat.Fits(next, offer) {
			return apperrors.Conflict(models.EntityRequest, requestID,
				"the change no longer fits the offer of match "+live.ID)
		}
		return nil
	})
	if err != nil {
		uc.logRejection(ctx, "edit request", requestID, err)
	}
	return apperrors.Transient("check request edit", err)
}

// CheckOfferEdit is the offer side of CheckRequestEdit
func (uc *MatchUC) CheckOfferEdit(ctx context.Context, offerID string, next *models.RideOffer) error {
	ctx, cancel := uc.storeCtx(ctx)
	defer cancel()

	err := uc.matchRepo.WithinTx(ctx, func(tx match.Tx) error {
		live, err := tx.LiveMatchForOffer(ctx, offerID)
		if err != nil || live == nil {
			return err
		}
		request, err := tx.GetRequestForUpdate(ctx, live.RequestID)
		if err != nil {
			return err
		}
		if !compat.Fits(request, next) {
			return apperrors.Conflict(models.EntityOffer, offerID,
				"the change no longer fits the request of match "+live.ID)
		}
		return nil
	})
	if err != nil {
		uc.logRejection(ctx, "edit offer", offerID, err)
	}
	return apperrors.Transient("check offer edit", err)
}
