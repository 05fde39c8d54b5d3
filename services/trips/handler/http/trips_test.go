package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/constants"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/internal/pkg/validation"
	"github.com/piresc/carpool/internal/utils"
	"github.com/piresc/carpool/services/trips/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, accountID uuid.UUID, roles ...auth.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(constants.ContextKeyCapability, auth.NewCapability(accountID, roles...))
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTripsHandler_SubmitRequest(t *testing.T) {
	passengerID := uuid.New()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(uc *mocks.MockTripUC)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Taxi request",
			body: `{"trip_type":"taxi","pickup_location":{"lat":31.23,"lng":121.47},"pickup_address":"Central","dropoff_location":{"lat":31.14,"lng":121.8},"dropoff_address":"Airport"}`,
			mockSetup: func(uc *mocks.MockTripUC) {
				uc.EXPECT().SubmitRequest(gomock.Any(), passengerID, gomock.Any()).DoAndReturn(
					func(_ interface{}, _ uuid.UUID, in models.SubmitTripRequest) (*models.TripRequest, error) {
						assert.Equal(t, models.TripTypeTaxi, in.TripType)
						assert.Equal(t, 31.23, in.PickupLocation.Latitude)
						return &models.TripRequest{ID: uuid.New(), Status: models.TripRequestPending}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Unknown trip type",
			body:       `{"trip_type":"bike","pickup_address":"Central","dropoff_address":"Airport"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "validationError",
		},
		{
			name:       "Latitude out of range",
			body:       `{"trip_type":"taxi","pickup_location":{"lat":123,"lng":0},"pickup_address":"Central","dropoff_address":"Airport"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "validationError",
		},
		{
			name: "Carpool without seats",
			body: `{"trip_type":"carpool","pickup_address":"Central","dropoff_address":"Airport","scheduled_time":"2030-05-01T08:00:00Z"}`,
			mockSetup: func(uc *mocks.MockTripUC) {
				uc.EXPECT().SubmitRequest(gomock.Any(), passengerID, gomock.Any()).Return(nil, apperror.ErrMissingSeatCount)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "missingSeatCount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockTripUC(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(uc)
			}

			c, rec := newContext(http.MethodPost, "/trip/requests", tt.body, passengerID, auth.RolePassenger)
			require.NoError(t, NewTripsHandler(uc).SubmitRequest(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestTripsHandler_JoinRide(t *testing.T) {
	passengerID := uuid.New()
	rideID := uuid.New()

	tests := []struct {
		name       string
		param      string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "Seat booked", param: rideID.String(), wantStatus: http.StatusOK},
		{name: "Full ride", param: rideID.String(), err: apperror.ErrRideFull, wantStatus: http.StatusConflict, wantCode: "rideFull"},
		{name: "Own ride", param: rideID.String(), err: apperror.ErrSelfJoin, wantStatus: http.StatusConflict, wantCode: "selfJoin"},
		{name: "Unknown ride", param: rideID.String(), err: apperror.ErrRideNotFound, wantStatus: http.StatusNotFound, wantCode: "rideNotFound"},
		{name: "Busy ride", param: rideID.String(), err: apperror.ErrConflict, wantStatus: http.StatusConflict, wantCode: "conflict"},
		{name: "Malformed id", param: "abc", wantStatus: http.StatusBadRequest, wantCode: "validationError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockTripUC(ctrl)
			if tt.param == rideID.String() {
				var order *models.TripOrder
				if tt.err == nil {
					order = &models.TripOrder{ID: uuid.New(), RideID: &rideID}
				}
				uc.EXPECT().JoinRide(gomock.Any(), rideID, passengerID).Return(order, tt.err)
			}

			c, rec := newContext(http.MethodPost, "/", "", passengerID, auth.RolePassenger)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)
			require.NoError(t, NewTripsHandler(uc).JoinRide(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestTripsHandler_ListQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockTripUC(ctrl)

	uc.EXPECT().ListPendingRequests(gomock.Any(), models.TripRequestFilter{
		Status: models.TripRequestPending, TripType: models.TripTypeCarpool, Geohash: "wtw3sj",
	}).Return([]*models.TripRequest{{ID: uuid.New()}}, nil)

	c, rec := newContext(http.MethodGet, "/driver/trip-requests?status=pending&trip_type=carpool&geohash=wtw3sj", "", uuid.New(), auth.RoleDriver)
	require.NoError(t, NewTripsHandler(uc).ListQueue(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTripsHandler_AcceptRequest(t *testing.T) {
	driverID := uuid.New()
	requestID := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "Accepted", wantStatus: http.StatusCreated},
		{name: "Gone", err: apperror.ErrRequestNotFound, wantStatus: http.StatusNotFound, wantCode: "requestNotFound"},
		{name: "No matching ride", err: apperror.ErrNoMatchingRide, wantStatus: http.StatusNotFound, wantCode: "noMatchingRide"},
		{name: "Not enough seats", err: apperror.ErrInsufficientSeats, wantStatus: http.StatusConflict, wantCode: "insufficientSeats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockTripUC(ctrl)
			var order *models.TripOrder
			if tt.err == nil {
				order = &models.TripOrder{ID: uuid.New(), TripRequestID: requestID, DriverID: driverID}
			}
			uc.EXPECT().AcceptRequest(gomock.Any(), requestID, driverID).Return(order, tt.err)

			c, rec := newContext(http.MethodPost, "/", "", driverID, auth.RoleDriver)
			c.SetParamNames("id")
			c.SetParamValues(requestID.String())
			require.NoError(t, NewTripsHandler(uc).AcceptRequest(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestTripsHandler_CompleteTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockTripUC(ctrl)
	driverID := uuid.New()
	requestID := uuid.New()
	couponID := uuid.New()

	uc.EXPECT().CompleteTrip(gomock.Any(), requestID, driverID, gomock.Any()).DoAndReturn(
		func(_ interface{}, _, _ uuid.UUID, in models.CompleteTripRequest) (*models.TripOrder, error) {
			assert.True(t, in.ActualPrice.Equal(decimal.RequireFromString("42.5")))
			assert.Len(t, in.Route, 2)
			assert.Equal(t, &couponID, in.UserCouponID)
			return &models.TripOrder{ID: uuid.New()}, nil
		})

	body := `{"actual_price":"42.50","route":[{"lat":1,"lng":2},{"lat":3,"lng":4}],"user_coupon_id":"` + couponID.String() + `"}`
	c, rec := newContext(http.MethodPost, "/", body, driverID, auth.RoleDriver)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	require.NoError(t, NewTripsHandler(uc).CompleteTrip(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTripsHandler_CompleteTrip_InvalidRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockTripUC(ctrl)

	body := `{"actual_price":"10","route":[{"lat":95,"lng":2}]}`
	c, rec := newContext(http.MethodPost, "/", body, uuid.New(), auth.RoleDriver)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	require.NoError(t, NewTripsHandler(uc).CompleteTrip(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validationError", decodeError(t, rec).Code)
}

func TestTripsHandler_ListOrders_ScopedByRole(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name          string
		roles         []auth.Role
		wantPassenger bool
		wantDriver    bool
	}{
		{name: "Passenger", roles: []auth.Role{auth.RolePassenger}, wantPassenger: true},
		{name: "Driver", roles: []auth.Role{auth.RoleDriver}, wantDriver: true},
		{name: "Both", roles: []auth.Role{auth.RolePassenger, auth.RoleDriver}, wantPassenger: true, wantDriver: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockTripUC(ctrl)
			uc.EXPECT().ListOrders(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ interface{}, filter models.OrderFilter) ([]*models.OrderWithRequest, error) {
					assert.Equal(t, tt.wantPassenger, filter.PassengerID != nil)
					assert.Equal(t, tt.wantDriver, filter.DriverID != nil)
					return []*models.OrderWithRequest{}, nil
				})

			c, rec := newContext(http.MethodGet, "/orders", "", accountID, tt.roles...)
			require.NoError(t, NewTripsHandler(uc).ListOrders(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestTripsHandler_RateOrder(t *testing.T) {
	accountID := uuid.New()
	orderID := uuid.New()

	tests := []struct {
		name       string
		body       string
		err        error
		callsUC    bool
		wantStatus int
		wantCode   string
	}{
		{name: "Rated", body: `{"rating":"4.5","comment":"great"}`, callsUC: true, wantStatus: http.StatusOK},
		{name: "Twice", body: `{"rating":"4"}`, callsUC: true, err: apperror.ErrAlreadyRated, wantStatus: http.StatusConflict, wantCode: "alreadyRated"},
		{name: "Comment too long", body: `{"rating":"4","comment":"` + strings.Repeat("x", 1001) + `"}`, wantStatus: http.StatusBadRequest, wantCode: "validationError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockTripUC(ctrl)
			if tt.callsUC {
				var order *models.TripOrder
				if tt.err == nil {
					order = &models.TripOrder{ID: orderID}
				}
				uc.EXPECT().RateOrder(gomock.Any(), orderID, accountID, gomock.Any()).Return(order, tt.err)
			}

			c, rec := newContext(http.MethodPost, "/", tt.body, accountID, auth.RolePassenger)
			c.SetParamNames("id")
			c.SetParamValues(orderID.String())
			require.NoError(t, NewTripsHandler(uc).RateOrder(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}
