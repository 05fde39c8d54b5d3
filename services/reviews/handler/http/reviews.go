package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/middleware"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/internal/utils"
	"github.com/piresc/carpool/services/reviews"
)

// ReviewsHandler handles HTTP requests for reviews
type ReviewsHandler struct {
	reviewUC reviews.ReviewUC
}

// NewReviewsHandler creates a new reviews HTTP handler
func NewReviewsHandler(reviewUC reviews.ReviewUC) *ReviewsHandler {
	return &ReviewsHandler{reviewUC: reviewUC}
}

// SubmitReview handles POST /reviews
func (h *ReviewsHandler) SubmitReview(c echo.Context) error {
	var req models.SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	capability := middleware.CapabilityFrom(c)
	review, err := h.reviewUC.SubmitReview(c.Request().Context(), capability.AccountID(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review submitted", review)
}

// ListMyReviews handles GET /reviews/me
func (h *ReviewsHandler) ListMyReviews(c echo.Context) error {
	capability := middleware.CapabilityFrom(c)
	list, err := h.reviewUC.ListReviewsFor(c.Request().Context(), capability.AccountID())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}
