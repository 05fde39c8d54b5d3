package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/converter"
	"github.com/piresc/carpool/internal/pkg/middleware"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
	"github.com/piresc/carpool/internal/utils"
	"github.com/piresc/carpool/services/trips"
)

// TripsHandler handles HTTP requests for trip requests, orders and ratings
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{
		tripUC: tripUC,
	}
}

// SubmitRequest handles POST /trip/requests
func (h *TripsHandler) SubmitRequest(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.SubmitRequest")

	var req models.SubmitTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	capability := middleware.CapabilityFrom(c)
	tripRequest, err := h.tripUC.SubmitRequest(c.Request().Context(), capability.AccountID(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip request submitted", tripRequest)
}

// ListMyRequests handles GET /trip/requests
func (h *TripsHandler) ListMyRequests(c echo.Context) error {
	capability := middleware.CapabilityFrom(c)
	list, err := h.tripUC.ListPassengerRequests(c.Request().Context(), capability.AccountID())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// CancelRequest handles POST /trip/requests/:id/cancel
func (h *TripsHandler) CancelRequest(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.CancelRequest")

	requestID, err := converter.ParseID("trip request id", c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	nrpkg.AddTransactionAttribute(txn, "trip_request.id", requestID.String())

	capability := middleware.CapabilityFrom(c)
	cancelled, err := h.tripUC.CancelRequest(c.Request().Context(), requestID, capability.AccountID())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip request cancelled", cancelled)
}

// JoinRide handles POST /rides/:id/join
func (h *TripsHandler) JoinRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.JoinRide")

	rideID, err := converter.ParseID("ride id", c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	nrpkg.AddTransactionAttribute(txn, "ride.id", rideID.String())

	capability := middleware.CapabilityFrom(c)
	order, err := h.tripUC.JoinRide(c.Request().Context(), rideID, capability.AccountID())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat booked", order)
}

// ListQueue handles GET /driver/trip-requests?status=pending&trip_type=&geohash=
func (h *TripsHandler) ListQueue(c echo.Context) error {
	filter := models.TripRequestFilter{
		Status:   models.TripRequestStatus(c.QueryParam("status")),
		TripType: models.TripType(c.QueryParam("trip_type")),
		Geohash:  c.QueryParam("geohash"),
	}

	list, err := h.tripUC.ListPendingRequests(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// AcceptRequest handles POST /driver/trip-requests/:id/accept
func (h *TripsHandler) AcceptRequest(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.AcceptRequest")

	requestID, err := converter.ParseID("trip request id", c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	nrpkg.AddTransactionAttribute(txn, "trip_request.id", requestID.String())

	capability := middleware.CapabilityFrom(c)
	order, err := h.tripUC.AcceptRequest(c.Request().Context(), requestID, capability.AccountID())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip request accepted", order)
}

// StartTrip handles POST /driver/trip-requests/:id/start
func (h *TripsHandler) StartTrip(c echo.Context) error {
	requestID, err := converter.ParseID("trip request id", c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	capability := middleware.CapabilityFrom(c)
	order, err := h.tripUC.StartTrip(c.Request().Context(), requestID, capability.AccountID())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip started", order)
}

// CompleteTrip handles POST /driver/trip-requests/:id/complete
func (h *TripsHandler) CompleteTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.CompleteTrip")

	requestID, err := converter.ParseID("trip request id", c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var req models.CompleteTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	capability := middleware.CapabilityFrom(c)
	order, err := h.tripUC.CompleteTrip(c.Request().Context(), requestID, capability.AccountID(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", order)
}

// ListOrders handles GET /orders. Passengers see orders of their requests, drivers the orders they drive.
func (h *TripsHandler) ListOrders(c echo.Context) error {
	capability := middleware.CapabilityFrom(c)
	accountID := capability.AccountID()

	var filter models.OrderFilter
	if capability.HasRole(auth.RolePassenger) {
		filter.PassengerID = &accountID
	}
	if capability.HasRole(auth.RoleDriver) {
		filter.DriverID = &accountID
	}

	list, err := h.tripUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// RateOrder handles POST /orders/:id/rating
func (h *TripsHandler) RateOrder(c echo.Context) error {
	orderID, err := converter.ParseID("order id", c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var req models.RateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	capability := middleware.CapabilityFrom(c)
	order, err := h.tripUC.RateOrder(c.Request().Context(), orderID, capability.AccountID(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rating saved", order)
}
