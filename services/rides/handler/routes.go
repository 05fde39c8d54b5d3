package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/middleware"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/services/rides"
	httpHandler "github.com/piresc/carpool/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers the ride ledger endpoints behind the capability middleware
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	ridesGroup := e.Group("/rides", middleware.CapabilityMiddleware(h.cfg.JWT))

	ridesGroup.GET("", h.ridesHTTP.ListRides, middleware.RequirePermission(auth.PermViewOpenRides))
	ridesGroup.POST("", h.ridesHTTP.PublishRide, middleware.RequirePermission(auth.PermPublishRide))
	ridesGroup.GET("/mine", h.ridesHTTP.ListMyRides, middleware.RequirePermission(auth.PermPublishRide))
	ridesGroup.POST("/:id/cancel", h.ridesHTTP.CancelRide, middleware.RequirePermission(auth.PermCancelRide))
	ridesGroup.POST("/:id/complete", h.ridesHTTP.CompleteRide, middleware.RequirePermission(auth.PermCompleteRide))
}
