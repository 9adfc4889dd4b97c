package usecase

import (
	"context"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/match"
	"github.com/piresc/boleias/services/match/lifecycle"
)

// CancelRequest cancels a request on behalf of its owner.
// A live PROPOSED or CONFIRMED match is cancelled in the same transaction and its offer released.
func (uc *MatchUC) CancelRequest(ctx context.Context, requestID, editToken string) (*models.RideRequest, error) {
	authorize := func(r *models.RideRequest) error {
		if !tokenMatches(r.EditToken, editToken) {
			return apperrors.NotFound(models.EntityRequest, requestID)
		}
		return nil
	}
	return uc.changeRequest(ctx, models.PublicAuth(), requestID, models.RequestStatusCancelled, authorize)
}

// CancelOffer cancels an offer on behalf of its driver.
// A live PROPOSED or CONFIRMED match is cancelled in the same transaction and its request requeued.
func (uc *MatchUC) CancelOffer(ctx context.Context, offerID, editToken string) (*models.RideOffer, error) {
	authorize := func(o *models.RideOffer) error {
		if !tokenMatches(o.EditToken, editToken) {
			return apperrors.NotFound(models.EntityOffer, offerID)
		}
		return nil
	}
	return uc.changeOffer(ctx, models.PublicAuth(), offerID, models.OfferStatusCancelled, authorize)
}

// UpdateRequestStatus applies a coordinator status change: TRIAGE, DONE (archive) or CANCELLED
func (uc *MatchUC) UpdateRequestStatus(ctx context.Context, auth models.AuthContext, requestID string, target models.RequestStatus) (*models.RideRequest, error) {
	if err := requireCoordinator(auth, "update request status"); err != nil {
		return nil, err
	}
	switch target {
	case models.RequestStatusNew, models.RequestStatusTriage, models.RequestStatusConfirmed,
		models.RequestStatusInProgress, models.RequestStatusDone, models.RequestStatusCancelled:
	default:
		return nil, apperrors.Validation("status", "unknown request status "+string(target))
	}
	return uc.changeRequest(ctx, auth, requestID, target, nil)
}

// UpdateOfferStatus applies a coordinator status change. Only CANCELLED is accepted.
func (uc *MatchUC) UpdateOfferStatus(ctx context.Context, auth models.AuthContext, offerID string, target models.OfferStatus) (*models.RideOffer, error) {
	if err := requireCoordinator(auth, "update offer status"); err != nil {
		return nil, err
	}
	switch target {
	case models.OfferStatusAvailable, models.OfferStatusReserved, models.OfferStatusInProgress,
		models.OfferStatusDone, models.OfferStatusCancelled:
	default:
		return nil, apperrors.Validation("status", "unknown offer status "+string(target))
	}
	return uc.changeOffer(ctx, auth, offerID, target, nil)
}

func (uc *MatchUC) changeRequest(
	ctx context.Context,
	auth models.AuthContext,
	requestID string,
	target models.RequestStatus,
	authorize func(*models.RideRequest) error,
) (*models.RideRequest, error) {
	ctx, cancel := uc.storeCtx(ctx)
	defer cancel()

	var (
		result  *models.RideRequest
		cascade *lifecycle.Cascade
	)
	err := uc.matchRepo.WithinTx(ctx, func(tx match.Tx) error {
		request, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if authorize != nil {
			if err := authorize(request); err != nil {
				return err
			}
		}
		live, err := tx.LiveMatchForRequest(ctx, requestID)
		if err != nil {
			return err
		}
		var offer *models.RideOffer
		if live != nil {
			if offer, err = tx.GetOfferForUpdate(ctx, live.OfferID); err != nil {
				return err
			}
		}

		cascade, err = lifecycle.PlanRequestStatus(request, target, live, offer)
		if err != nil {
			return err
		}
		now := models.Now()
		if err := lifecycle.Apply(ctx, tx, cascade, now); err != nil {
			return err
		}
		result = request
		result.Status = cascade.Request.To
		if cascade.Request.SetMatchedOffer {
			result.MatchedOfferID = cascade.Request.MatchedOfferID
		}
		result.UpdatedAt = now
		return nil
	})

	trigger := requestTrigger(target)
	countTrigger(trigger, err)
	if err != nil {
		uc.logRejection(ctx, string(trigger), requestID, err)
		return nil, apperrors.Transient("update request status", err)
	}

	uc.matchGW.RecordAudit(ctx, cascade.AuditEntry(actorOf(auth)))
	logger.InfoCtx(ctx, "Request status updated",
		logger.Entity(models.EntityRequest, requestID),
		logger.String("trigger", string(cascade.Trigger)),
		logger.Bool("released_match", cascade.Match != nil))

	return result, nil
}

func (uc *MatchUC) changeOffer(
	ctx context.Context,
	auth models.AuthContext,
	offerID string,
	target models.OfferStatus,
	authorize func(*models.RideOffer) error,
) (*models.RideOffer, error) {
	ctx, cancel := uc.storeCtx(ctx)
	defer cancel()

	// Rows are locked request first everywhere; find the linked request before taking locks
	matches, err := uc.matchRepo.ListMatches(ctx, models.MatchFilter{OfferID: offerID})
	if err != nil {
		return nil, apperrors.Transient("list matches", err)
	}
	linkedRequestID := ""
	for _, m := range matches {
		if m.Status.IsLive() {
			linkedRequestID = m.RequestID
			break
		}
	}

	var (
		result  *models.RideOffer
		cascade *lifecycle.Cascade
	)
	err = uc.matchRepo.WithinTx(ctx, func(tx match.Tx) error {
		var request *models.RideRequest
		if linkedRequestID != "" {
			r, err := tx.GetRequestForUpdate(ctx, linkedRequestID)
			if err != nil {
				return err
			}
			request = r
		}
		offer, err := tx.GetOfferForUpdate(ctx, offerID)
		if err != nil {
			return err
		}
		if authorize != nil {
			if err := authorize(offer); err != nil {
				return err
			}
		}
		live, err := tx.LiveMatchForOffer(ctx, offerID)
		if err != nil {
			return err
		}
		if live != nil && live.RequestID != linkedRequestID {
			return apperrors.Conflict(models.EntityOffer, offerID, "offer was matched concurrently")
		}
		if live == nil {
			request = nil
		}

		cascade, err = lifecycle.PlanOfferStatus(offer, target, live, request)
		if err != nil {
			return err
		}
		now := models.Now()
		if err := lifecycle.Apply(ctx, tx, cascade, now); err != nil {
			return err
		}
		result = offer
		result.Status = cascade.Offer.To
		result.UpdatedAt = now
		return nil
	})

	trigger := lifecycle.TriggerCancelOffer
	countTrigger(trigger, err)
	if err != nil {
		uc.logRejection(ctx, string(trigger), offerID, err)
		return nil, apperrors.Transient("update offer status", err)
	}

	uc.matchGW.RecordAudit(ctx, cascade.AuditEntry(actorOf(auth)))
	logger.InfoCtx(ctx, "Offer status updated",
		logger.Entity(models.EntityOffer, offerID),
		logger.String("trigger", string(cascade.Trigger)),
		logger.Bool("released_match", cascade.Match != nil))

	return result, nil
}

func requestTrigger(target models.RequestStatus) lifecycle.Trigger {
	switch target {
	case models.RequestStatusTriage:
		return lifecycle.TriggerTriage
	case models.RequestStatusDone:
		return lifecycle.TriggerArchive
	}
	return lifecycle.TriggerCancelRequest
}
