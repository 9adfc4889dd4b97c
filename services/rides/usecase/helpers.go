package usecase

import (
	"context"
	"strings"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/constants"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/pkg/observability"
)

const actorOwner = "owner"

func (uc *RidesUC) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg == nil || uc.cfg.Match.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.cfg.Match.StoreTimeout)
}

func (uc *RidesUC) audit(ctx context.Context, action, entity, id string, status string) {
	uc.ridesGW.RecordAudit(ctx, &models.AuditLogEntry{
		Action:     action,
		EntityType: entity,
		EntityID:   id,
		Metadata: map[string]interface{}{
			constants.MetaNewStatus: status,
			constants.MetaActor:     actorOwner,
		},
	})
}

func countSubmission(entity string, err error) {
	observability.SubmissionsTotal.WithLabelValues(entity, observability.OutcomeOf(err)).Inc()
}

func requireCoordinator(auth models.AuthContext, action string) error {
	if !auth.IsCoordinator() {
		return apperrors.Forbidden(action)
	}
	return nil
}

// tokenOf trims the presented token; an empty token never matches anything
func tokenOf(entity, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", apperrors.NotFound(entity, "for token")
	}
	return token, nil
}

func notEditable(entity, id, status string) error {
	return &apperrors.IllegalTransitionError{
		Entity: entity,
		ID:     id,
		From:   status,
		To:     status,
		Reason: "no longer editable",
	}
}

func normalizeGeohash(prefix string) string {
	return strings.ToLower(strings.TrimSpace(prefix))
}
