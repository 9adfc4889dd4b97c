package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/constants"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/pkg/observability"
	"github.com/piresc/boleias/internal/utils"
	"github.com/piresc/boleias/services/match"
	"github.com/piresc/boleias/services/match/compat"
	"github.com/piresc/boleias/services/match/lifecycle"
)

const triggerPropose lifecycle.Trigger = "propose"

// ProposeMatch pairs a request with an offer in PROPOSED status.
// Every precondition is re-checked on locked rows inside the transaction,
// so two coordinators racing for the same request or offer get one match and one ConflictError.
func (uc *MatchUC) ProposeMatch(ctx context.Context, auth models.AuthContext, req models.ProposeMatchRequest) (*models.Match, error) {
	if err := requireCoordinator(auth, "propose match"); err != nil {
		return nil, err
	}

	req.RequestID = strings.TrimSpace(req.RequestID)
	req.OfferID = strings.TrimSpace(req.OfferID)
	req.CoordinatorName = utils.SanitizeString(req.CoordinatorName)
	req.CoordinatorPhone = strings.TrimSpace(req.CoordinatorPhone)
	req.Notes = utils.SanitizeString(req.Notes)

	switch {
	case req.RequestID == "":
		return nil, apperrors.Validation("request_id", "request_id is required")
	case req.OfferID == "":
		return nil, apperrors.Validation("offer_id", "offer_id is required")
	case req.CoordinatorName == "":
		return nil, apperrors.Validation("coordinator_name", "coordinator name is required")
	case req.CoordinatorPhone == "":
		return nil, apperrors.Validation("coordinator_phone", "coordinator phone is required")
	case utils.RuneLen(req.Notes) > 500:
		return nil, apperrors.Validation("notes", "notes must be at most 500 characters")
	}
	req.CoordinatorPhone = utils.NormalizePhone(req.CoordinatorPhone)

	ctx, cancel := uc.storeCtx(ctx)
	defer cancel()

	var created *models.Match
	err := uc.matchRepo.WithinTx(ctx, func(tx match.Tx) error {
		request, err := tx.GetRequestForUpdate(ctx, req.RequestID)
		if err != nil {
			return err
		}
		offer, err := tx.GetOfferForUpdate(ctx, req.OfferID)
		if err != nil {
			return err
		}
		requestLive, err := tx.LiveMatchForRequest(ctx, request.ID)
		if err != nil {
			return err
		}
		offerLive, err := tx.LiveMatchForOffer(ctx, offer.ID)
		if err != nil {
			return err
		}

		if err := lifecycle.PlanPropose(request, offer, requestLive, offerLive); err != nil {
			return err
		}
		if !compat.IsCompatible(request, offer) {
			return apperrors.Validation("offer_id", "offer is not compatible with the request")
		}

		now := models.Now()
		m := &models.Match{
			ID:               uuid.NewString(),
			RequestID:        request.ID,
			OfferID:          offer.ID,
			CoordinatorName:  req.CoordinatorName,
			CoordinatorPhone: req.CoordinatorPhone,
			Notes:            req.Notes,
			Status:           models.MatchStatusProposed,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := tx.CreateMatch(ctx, m); err != nil {
			return err
		}
		created = m
		return nil
	})
	countTrigger(triggerPropose, err)
	if err != nil {
		uc.logRejection(ctx, "propose", req.RequestID, err)
		return nil, apperrors.Transient("propose match", err)
	}

	uc.matchGW.RecordAudit(ctx, &models.AuditLogEntry{
		Action:     constants.ActionMatchProposed,
		EntityType: models.EntityMatch,
		EntityID:   created.ID,
		Metadata: map[string]interface{}{
			constants.MetaNewStatus: string(models.MatchStatusProposed),
			constants.MetaRequestID: created.RequestID,
			constants.MetaOfferID:   created.OfferID,
			constants.MetaActor:     actorOf(auth),
		},
	})
	logger.InfoCtx(ctx, "Match proposed",
		logger.Entity(models.EntityMatch, created.ID),
		logger.String("request_id", created.RequestID),
		logger.String("offer_id", created.OfferID))

	return created, nil
}

// TransitionMatch moves a match to target and cascades the change to its request and offer.
// Repeating a transition that already happened fails with IllegalTransitionError.
func (uc *MatchUC) TransitionMatch(ctx context.Context, auth models.AuthContext, matchID string, target models.MatchStatus) (*models.Match, error) {
	if err := requireCoordinator(auth, "update match status"); err != nil {
		return nil, err
	}
	switch target {
	case models.MatchStatusConfirmed, models.MatchStatusInProgress, models.MatchStatusDone, models.MatchStatusCancelled:
	case models.MatchStatusProposed:
		return nil, apperrors.Validation("status", "matches are only PROPOSED at creation")
	default:
		return nil, apperrors.Validation("status", "unknown match status "+string(target))
	}

	ctx, cancel := uc.storeCtx(ctx)
	defer cancel()

	// request and offer ids never change, so they can be read before locking
	m, err := uc.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, apperrors.Transient("get match", err)
	}

	var (
		result  *models.Match
		cascade *lifecycle.Cascade
	)
	err = uc.matchRepo.WithinTx(ctx, func(tx match.Tx) error {
		request, err := tx.GetRequestForUpdate(ctx, m.RequestID)
		if err != nil {
			return err
		}
		offer, err := tx.GetOfferForUpdate(ctx, m.OfferID)
		if err != nil {
			return err
		}
		current, err := tx.GetMatchForUpdate(ctx, matchID)
		if err != nil {
			return err
		}

		cascade, err = lifecycle.PlanMatchTransition(current, request, offer, target)
		if err != nil {
			return err
		}
		now := models.Now()
		if err := lifecycle.Apply(ctx, tx, cascade, now); err != nil {
			return err
		}
		result = current.Clone()
		result.Status = target
		result.UpdatedAt = now
		return nil
	})

	trigger, _ := lifecycle.MatchTrigger(m.ID, m.Status, target)
	if cascade != nil {
		trigger = cascade.Trigger
	}
	countTrigger(trigger, err)
	if err != nil {
		uc.logRejection(ctx, "transition", matchID, err)
		return nil, apperrors.Transient("update match status", err)
	}

	uc.matchGW.RecordAudit(ctx, cascade.AuditEntry(actorOf(auth)))
	logger.InfoCtx(ctx, "Match status updated",
		logger.Entity(models.EntityMatch, matchID),
		logger.String("trigger", string(cascade.Trigger)),
		logger.String("status", string(target)))

	return result, nil
}

// GetCompatibleOffers lists the offers that can serve the request, newest first
func (uc *MatchUC) GetCompatibleOffers(ctx context.Context, auth models.AuthContext, requestID string) ([]*models.RideOffer, error) {
	if err := requireCoordinator(auth, "search compatible offers"); err != nil {
		return nil, err
	}

	ctx, cancel := uc.storeCtx(ctx)
	defer cancel()

	request, err := uc.matchRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, apperrors.Transient("get request", err)
	}
	pool, err := uc.matchRepo.ListAvailableOffers(ctx, compat.Filter(request, uc.compatibleLimit()))
	if err != nil {
		return nil, apperrors.Transient("list available offers", err)
	}

	offers := compat.FindCompatibleOffers(request, pool)
	observability.CompatibleOffers.Observe(float64(len(offers)))
	return offers, nil
}

// GetMatch returns a match with its request and offer
func (uc *MatchUC) GetMatch(ctx context.Context, auth models.AuthContext, matchID string) (*models.MatchDetail, error) {
	if err := requireCoordinator(auth, "view match"); err != nil {
		return nil, err
	}

	ctx, cancel := uc.storeCtx(ctx)
	defer cancel()

	m, err := uc.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, apperrors.Transient("get match", err)
	}
	return uc.detail(ctx, m)
}

// ListMatches returns matches with their request and offer, newest first
func (uc *MatchUC) ListMatches(ctx context.Context, auth models.AuthContext, filter models.MatchFilter) ([]*models.MatchDetail, error) {
	if err := requireCoordinator(auth, "list matches"); err != nil {
		return nil, err
	}

	ctx, cancel := uc.storeCtx(ctx)
	defer cancel()

	matches, err := uc.matchRepo.ListMatches(ctx, filter)
	if err != nil {
		return nil, apperrors.Transient("list matches", err)
	}

	out := make([]*models.MatchDetail, 0, len(matches))
	for _, m := range matches {
		d, err := uc.detail(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (uc *MatchUC) detail(ctx context.Context, m *models.Match) (*models.MatchDetail, error) {
	request, err := uc.matchRepo.GetRequest(ctx, m.RequestID)
	if err != nil {
		return nil, apperrors.Transient("get request", err)
	}
	offer, err := uc.matchRepo.GetOffer(ctx, m.OfferID)
	if err != nil {
		return nil, apperrors.Transient("get offer", err)
	}
	return &models.MatchDetail{Match: m, Request: request, Offer: offer}, nil
}

func (uc *MatchUC) logRejection(ctx context.Context, op, id string, err error) {
	fields := []logger.Field{
		logger.String("operation", op),
		logger.String("id", id),
		logger.Err(err),
	}
	switch {
	case apperrors.IsConflict(err):
		logger.WarnCtx(ctx, "Concurrent update lost", fields...)
	case apperrors.IsTyped(err) && !apperrors.IsTransient(err):
		logger.DebugCtx(ctx, "Operation rejected", fields...)
	default:
		logger.ErrorCtx(ctx, "Operation failed", fields...)
	}
}
