package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/boleias/internal/pkg/middleware"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/rides"
	httpHandler "github.com/piresc/boleias/services/rides/handler/http"
)

// Limiters groups the optional rate limiters for the public routes
type Limiters struct {
	Submit []echo.MiddlewareFunc
	Token  []echo.MiddlewareFunc
}

// Handler combines the rides handlers
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(ridesUC rides.RidesUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(ridesUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers the public self-service routes and the coordinator listings
func (h *Handler) RegisterRoutes(e *echo.Echo, limiters Limiters) {
	api := e.Group("/api/v1")

	requests := api.Group("/requests")
	requests.GET("", h.ridesHTTP.ListPublicRequests)
	requests.POST("", h.ridesHTTP.SubmitRequest, limiters.Submit...)
	requests.GET("/token/:token", h.ridesHTTP.GetRequestByToken, limiters.Token...)
	requests.PUT("/token/:token", h.ridesHTTP.UpdateRequest, limiters.Submit...)
	requests.POST("/token/:token/cancel", h.ridesHTTP.CancelRequest, limiters.Token...)

	offers := api.Group("/offers")
	offers.GET("", h.ridesHTTP.ListPublicOffers)
	offers.POST("", h.ridesHTTP.SubmitOffer, limiters.Submit...)
	offers.GET("/token/:token", h.ridesHTTP.GetOfferByToken, limiters.Token...)
	offers.PUT("/token/:token", h.ridesHTTP.UpdateOffer, limiters.Submit...)
	offers.POST("/token/:token/cancel", h.ridesHTTP.CancelOffer, limiters.Token...)

	coordinator := api.Group("/coordinator", middleware.CoordinatorAuthMiddleware(h.cfg.JWT))
	coordinator.GET("/requests", h.ridesHTTP.ListRequests)
	coordinator.GET("/offers", h.ridesHTTP.ListOffers)
}
