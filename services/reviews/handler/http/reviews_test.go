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
	"github.com/piresc/carpool/services/reviews/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsHandler_SubmitReview(t *testing.T) {
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
		{name: "Submitted", body: `{"order_id":"` + orderID.String() + `","rating":5}`, callsUC: true, wantStatus: http.StatusCreated},
		{name: "Already reviewed", body: `{"order_id":"` + orderID.String() + `","rating":4}`, callsUC: true,
			err: apperror.ErrAlreadyReviewed, wantStatus: http.StatusConflict, wantCode: "alreadyReviewed"},
		{name: "Rating too high", body: `{"order_id":"` + orderID.String() + `","rating":9}`, wantStatus: http.StatusBadRequest, wantCode: "validationError"},
		{name: "Missing order", body: `{"rating":3}`, wantStatus: http.StatusBadRequest, wantCode: "validationError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockReviewUC(ctrl)
			if tt.callsUC {
				var review *models.Review
				if tt.err == nil {
					review = &models.Review{ID: uuid.New(), OrderID: orderID, ReviewerID: accountID}
				}
				uc.EXPECT().SubmitReview(gomock.Any(), accountID, gomock.Any()).Return(review, tt.err)
			}

			e := echo.New()
			e.Validator = validation.New()
			req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(constants.ContextKeyCapability, auth.NewCapability(accountID, auth.RolePassenger))

			require.NoError(t, NewReviewsHandler(uc).SubmitReview(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var body utils.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}
}
