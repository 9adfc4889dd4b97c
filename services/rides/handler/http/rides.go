package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/middleware"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/utils"
	"github.com/piresc/boleias/services/rides"
)

// RidesHandler handles HTTP requests for self-service requests and offers
type RidesHandler struct {
	ridesUC rides.RidesUC
}

// NewRidesHandler creates a new rides HTTP handler
func NewRidesHandler(ridesUC rides.RidesUC) *RidesHandler {
	return &RidesHandler{
		ridesUC: ridesUC,
	}
}

// SubmitRequest creates a ride request and returns its edit token
func (h *RidesHandler) SubmitRequest(c echo.Context) error {
	var in models.RideRequestInput
	if err := c.Bind(&in); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.ridesUC.SubmitRequest(c.Request().Context(), in)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride request submitted", created)
}

// GetRequestByToken returns the request owned by the token
func (h *RidesHandler) GetRequestByToken(c echo.Context) error {
	req, err := h.ridesUC.GetRequestByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", req)
}

// UpdateRequest edits the request owned by the token
func (h *RidesHandler) UpdateRequest(c echo.Context) error {
	var in models.RideRequestInput
	if err := c.Bind(&in); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	req, err := h.ridesUC.UpdateRequest(c.Request().Context(), c.Param("token"), in)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride request updated", req)
}

// CancelRequest cancels the request owned by the token
func (h *RidesHandler) CancelRequest(c echo.Context) error {
	req, err := h.ridesUC.CancelRequestByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to cancel ride request", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride request cancelled", req)
}

// ListPublicRequests lists requests with masked contact details
func (h *RidesHandler) ListPublicRequests(c echo.Context) error {
	requests, err := h.ridesUC.ListPublicRequests(c.Request().Context(), requestFilter(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// ListRequests lists requests for coordinators, with search and area filters
func (h *RidesHandler) ListRequests(c echo.Context) error {
	requests, err := h.ridesUC.ListRequests(c.Request().Context(), middleware.AuthFromContext(c), requestFilter(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// SubmitOffer creates a ride offer and returns its edit token
func (h *RidesHandler) SubmitOffer(c echo.Context) error {
	var in models.RideOfferInput
	if err := c.Bind(&in); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.ridesUC.SubmitOffer(c.Request().Context(), in)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride offer submitted", created)
}

// GetOfferByToken returns the offer owned by the token
func (h *RidesHandler) GetOfferByToken(c echo.Context) error {
	offer, err := h.ridesUC.GetOfferByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", offer)
}

// UpdateOffer edits the offer owned by the token
func (h *RidesHandler) UpdateOffer(c echo.Context) error {
	var in models.RideOfferInput
	if err := c.Bind(&in); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	offer, err := h.ridesUC.UpdateOffer(c.Request().Context(), c.Param("token"), in)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride offer updated", offer)
}

// CancelOffer cancels the offer owned by the token
func (h *RidesHandler) CancelOffer(c echo.Context) error {
	offer, err := h.ridesUC.CancelOfferByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to cancel ride offer", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride offer cancelled", offer)
}

// ListPublicOffers lists offers with masked contact details
func (h *RidesHandler) ListPublicOffers(c echo.Context) error {
	offers, err := h.ridesUC.ListPublicOffers(c.Request().Context(), offerFilter(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", offers)
}

// ListOffers lists offers for coordinators
func (h *RidesHandler) ListOffers(c echo.Context) error {
	offers, err := h.ridesUC.ListOffers(c.Request().Context(), middleware.AuthFromContext(c), offerFilter(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", offers)
}

func requestFilter(c echo.Context) models.RequestFilter {
	return models.RequestFilter{
		Status:        models.RequestStatus(statusParam(c)),
		Search:        c.QueryParam("search"),
		GeohashPrefix: c.QueryParam("geohash"),
		Near:          c.QueryParam("near") == "true",
	}
}

func offerFilter(c echo.Context) models.OfferFilter {
	return models.OfferFilter{
		Status: models.OfferStatus(statusParam(c)),
		Search: c.QueryParam("search"),
	}
}

// statusParam treats ALL as no status filter
func statusParam(c echo.Context) string {
	status := c.QueryParam("status")
	if status == "ALL" {
		return ""
	}
	return status
}
