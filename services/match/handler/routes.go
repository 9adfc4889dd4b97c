package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/boleias/internal/pkg/middleware"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/match"
	httpHandler "github.com/piresc/boleias/services/match/handler/http"
)

// Handler combines the coordinator-facing match handlers
type Handler struct {
	matchHTTP   *httpHandler.MatchHandler
	sessionHTTP *httpHandler.SessionHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUC, cfg *models.Config) *Handler {
	return &Handler{
		matchHTTP:   httpHandler.NewMatchHandler(matchUC),
		sessionHTTP: httpHandler.NewSessionHandler(cfg),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the coordinator routes. sessionLimiters guard the PIN exchange.
func (h *Handler) RegisterRoutes(e *echo.Echo, sessionLimiters ...echo.MiddlewareFunc) {
	e.POST("/api/v1/coordinator/session", h.sessionHTTP.OpenSession, sessionLimiters...)

	coordinator := e.Group("/api/v1/coordinator", middleware.CoordinatorAuthMiddleware(h.cfg.JWT))

	coordinator.GET("/requests/:id/compatible-offers", h.matchHTTP.GetCompatibleOffers)
	coordinator.POST("/requests/:id/status", h.matchHTTP.UpdateRequestStatus)
	coordinator.POST("/offers/:id/status", h.matchHTTP.UpdateOfferStatus)

	matches := coordinator.Group("/matches")
	matches.GET("", h.matchHTTP.ListMatches)
	matches.POST("", h.matchHTTP.ProposeMatch)
	matches.GET("/:id", h.matchHTTP.GetMatch)
	matches.POST("/:id/status", h.matchHTTP.TransitionMatch)
}
