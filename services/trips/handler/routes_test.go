package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/jwt"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/internal/pkg/validation"
	"github.com/piresc/carpool/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes_Permissions(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "routes-test-secret", Expiration: 5, Issuer: "carpool-test"}}

	tests := []struct {
		name       string
		method     string
		path       string
		roles      []auth.Role
		mockSetup  func(uc *mocks.MockTripUC)
		noToken    bool
		wantStatus int
	}{
		{
			name:       "Driver cannot submit a trip request",
			method:     http.MethodPost,
			path:       "/trip/requests",
			roles:      []auth.Role{auth.RoleDriver},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Passenger cannot accept requests",
			method:     http.MethodPost,
			path:       "/driver/trip-requests/" + uuid.NewString() + "/accept",
			roles:      []auth.Role{auth.RolePassenger},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Advertiser cannot join rides",
			method:     http.MethodPost,
			path:       "/rides/" + uuid.NewString() + "/join",
			roles:      []auth.Role{auth.RoleAdvertiser},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Anonymous caller",
			method:     http.MethodGet,
			path:       "/orders",
			noToken:    true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Driver reads the queue",
			method: http.MethodGet,
			path:   "/driver/trip-requests",
			roles:  []auth.Role{auth.RoleDriver},
			mockSetup: func(uc *mocks.MockTripUC) {
				uc.EXPECT().ListPendingRequests(gomock.Any(), gomock.Any()).Return([]*models.TripRequest{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Passenger lists own requests",
			method: http.MethodGet,
			path:   "/trip/requests",
			roles:  []auth.Role{auth.RolePassenger},
			mockSetup: func(uc *mocks.MockTripUC) {
				uc.EXPECT().ListPassengerRequests(gomock.Any(), gomock.Any()).Return([]*models.TripRequest{}, nil)
			},
			wantStatus: http.StatusOK,
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

			e := echo.New()
			e.Validator = validation.New()
			NewHandler(uc, cfg).RegisterRoutes(e)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if !tt.noToken {
				token, _, err := jwt.GenerateToken(uuid.New(), tt.roles, cfg)
				require.NoError(t, err)
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRegisterRoutes_ContendedMiddleware(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "routes-test-secret", Expiration: 5, Issuer: "carpool-test"}}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockTripUC(ctrl)
	uc.EXPECT().ListPassengerRequests(gomock.Any(), gomock.Any()).Return([]*models.TripRequest{}, nil)

	hits := 0
	throttle := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hits++
			return c.NoContent(http.StatusTooManyRequests)
		}
	}

	e := echo.New()
	e.Validator = validation.New()
	NewHandler(uc, cfg, throttle).RegisterRoutes(e)

	send := func(method, path string, roles ...auth.Role) int {
		token, _, err := jwt.GenerateToken(uuid.New(), roles, cfg)
		require.NoError(t, err)
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "/rides/"+uuid.NewString()+"/join", auth.RolePassenger))
	assert.Equal(t, http.StatusForbidden, send(http.MethodPost, "/rides/"+uuid.NewString()+"/join", auth.RoleAdvertiser))
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/trip/requests", auth.RolePassenger))
	assert.Equal(t, 1, hits)
}
