package usecase

import (
	"context"
	"crypto/subtle"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/pkg/observability"
	"github.com/piresc/boleias/services/match/lifecycle"
)

// storeCtx bounds a whole store interaction by the configured timeout
func (uc *MatchUC) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg == nil || uc.cfg.Match.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.cfg.Match.StoreTimeout)
}

func (uc *MatchUC) compatibleLimit() int {
	if uc.cfg == nil {
		return 0
	}
	return uc.cfg.Match.CompatibleLimit
}

func requireCoordinator(auth models.AuthContext, action string) error {
	if !auth.IsCoordinator() {
		return apperrors.Forbidden(action)
	}
	return nil
}

func actorOf(auth models.AuthContext) string {
	if auth.IsCoordinator() {
		return "coordinator:" + auth.CoordinatorName
	}
	return "owner"
}

// tokenMatches compares edit tokens in constant time
func tokenMatches(stored, presented string) bool {
	if stored == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

func countTrigger(trigger lifecycle.Trigger, err error) {
	if trigger == "" {
		trigger = "unknown"
	}
	observability.TransitionsTotal.WithLabelValues(string(trigger), observability.OutcomeOf(err)).Inc()
}
