package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/converter"
	"github.com/piresc/carpool/internal/pkg/middleware"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
	"github.com/piresc/carpool/internal/utils"
	"github.com/piresc/carpool/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// PublishRide handles POST /rides
func (h *RidesHandler) PublishRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.PublishRide")

	var req models.PublishRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	capability := middleware.CapabilityFrom(c)
	ride, err := h.rideUC.PublishRide(c.Request().Context(), capability.AccountID(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride published", ride)
}

// ListRides handles GET /rides?status=open
func (h *RidesHandler) ListRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ListRides")

	list, err := h.rideUC.ListRides(c.Request().Context(), models.RideStatus(c.QueryParam("status")))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListMyRides handles GET /rides/mine
func (h *RidesHandler) ListMyRides(c echo.Context) error {
	capability := middleware.CapabilityFrom(c)
	list, err := h.rideUC.ListDriverRides(c.Request().Context(), capability.AccountID())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// CancelRide handles POST /rides/:id/cancel
func (h *RidesHandler) CancelRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CancelRide")

	rideID, err := converter.ParseID("ride id", c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	nrpkg.AddTransactionAttribute(txn, "ride.id", rideID.String())

	capability := middleware.CapabilityFrom(c)
	ride, err := h.rideUC.CancelRide(c.Request().Context(), rideID, capability.AccountID())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// CompleteRide handles POST /rides/:id/complete
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CompleteRide")

	rideID, err := converter.ParseID("ride id", c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	nrpkg.AddTransactionAttribute(txn, "ride.id", rideID.String())

	capability := middleware.CapabilityFrom(c)
	ride, err := h.rideUC.CompleteRide(c.Request().Context(), rideID, capability.AccountID())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", ride)
}
