package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/middleware"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/services/trips"
	httpHandler "github.com/piresc/carpool/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
	cfg       *models.Config
	contended []echo.MiddlewareFunc
}

// NewHandler creates a new combined handler. contended runs after the permission
// check on the seat-contended join and accept routes
func NewHandler(tripUC trips.TripUC, cfg *models.Config, contended ...echo.MiddlewareFunc) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
		cfg:       cfg,
		contended: contended,
	}
}

func (h *Handler) guard(p auth.Permission) []echo.MiddlewareFunc {
	return append([]echo.MiddlewareFunc{middleware.RequirePermission(p)}, h.contended...)
}

// RegisterRoutes registers passenger, driver and order endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	capability := middleware.CapabilityMiddleware(h.cfg.JWT)

	requests := e.Group("/trip/requests", capability)
	requests.POST("", h.tripsHTTP.SubmitRequest, middleware.RequirePermission(auth.PermSubmitTripRequest))
	requests.GET("", h.tripsHTTP.ListMyRequests, middleware.RequirePermission(auth.PermViewOwnTripRequests))
	requests.POST("/:id/cancel", h.tripsHTTP.CancelRequest, middleware.RequirePermission(auth.PermCancelTripRequest))

	e.POST("/rides/:id/join", h.tripsHTTP.JoinRide, append([]echo.MiddlewareFunc{capability}, h.guard(auth.PermJoinRide)...)...)

	driver := e.Group("/driver/trip-requests", capability)
	driver.GET("", h.tripsHTTP.ListQueue, middleware.RequirePermission(auth.PermViewDriverQueue))
	driver.POST("/:id/accept", h.tripsHTTP.AcceptRequest, h.guard(auth.PermAcceptTripRequest)...)
	driver.POST("/:id/start", h.tripsHTTP.StartTrip, middleware.RequirePermission(auth.PermProgressTrip))
	driver.POST("/:id/complete", h.tripsHTTP.CompleteTrip, middleware.RequirePermission(auth.PermProgressTrip))

	orders := e.Group("/orders", capability)
	orders.GET("", h.tripsHTTP.ListOrders, middleware.RequirePermission(auth.PermViewOrders))
	orders.POST("/:id/rating", h.tripsHTTP.RateOrder, middleware.RequirePermission(auth.PermRateOrder))
}
