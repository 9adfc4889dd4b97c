package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/middleware"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/utils"
	"github.com/piresc/boleias/services/match"
)

// MatchHandler handles coordinator HTTP requests for matching
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

// ProposeMatch pairs a request with an offer
func (h *MatchHandler) ProposeMatch(c echo.Context) error {
	var req models.ProposeMatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	auth := middleware.AuthFromContext(c)
	if req.CoordinatorName == "" {
		req.CoordinatorName = auth.CoordinatorName
	}

	m, err := h.matchUC.ProposeMatch(c.Request().Context(), auth, req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to propose match",
			logger.String("request_id", req.RequestID),
			logger.String("offer_id", req.OfferID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Match proposed", m)
}

// TransitionMatch moves a match to the status in the body
func (h *MatchHandler) TransitionMatch(c echo.Context) error {
	matchID := c.Param("id")
	if matchID == "" {
		return utils.BadRequestResponse(c, "Match ID is required")
	}

	var req models.MatchTransitionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.FieldErrorResponse(c, "status", "status is required")
	}

	m, err := h.matchUC.TransitionMatch(c.Request().Context(), middleware.AuthFromContext(c), matchID, req.Status)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to transition match",
			logger.Entity(models.EntityMatch, matchID),
			logger.String("target", string(req.Status)),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match updated", m)
}

// GetMatch returns a match with its request and offer
func (h *MatchHandler) GetMatch(c echo.Context) error {
	detail, err := h.matchUC.GetMatch(c.Request().Context(), middleware.AuthFromContext(c), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", detail)
}

// ListMatches lists matches, optionally narrowed by status, request_id or offer_id
func (h *MatchHandler) ListMatches(c echo.Context) error {
	filter := models.MatchFilter{
		Status:    models.MatchStatus(c.QueryParam("status")),
		RequestID: c.QueryParam("request_id"),
		OfferID:   c.QueryParam("offer_id"),
	}

	matches, err := h.matchUC.ListMatches(c.Request().Context(), middleware.AuthFromContext(c), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", matches)
}

// GetCompatibleOffers lists the offers that could serve a request
func (h *MatchHandler) GetCompatibleOffers(c echo.Context) error {
	requestID := c.Param("id")

	offers, err := h.matchUC.GetCompatibleOffers(c.Request().Context(), middleware.AuthFromContext(c), requestID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", offers)
}

// UpdateRequestStatus triages, archives or cancels a request
func (h *MatchHandler) UpdateRequestStatus(c echo.Context) error {
	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.matchUC.UpdateRequestStatus(c.Request().Context(), middleware.AuthFromContext(c),
		c.Param("id"), models.RequestStatus(req.Status))
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to update request status",
			logger.Entity(models.EntityRequest, c.Param("id")),
			logger.String("target", req.Status),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request updated", updated)
}

// UpdateOfferStatus cancels an offer on the driver's behalf
func (h *MatchHandler) UpdateOfferStatus(c echo.Context) error {
	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.matchUC.UpdateOfferStatus(c.Request().Context(), middleware.AuthFromContext(c),
		c.Param("id"), models.OfferStatus(req.Status))
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to update offer status",
			logger.Entity(models.EntityOffer, c.Param("id")),
			logger.String("target", req.Status),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer updated", updated)
}
