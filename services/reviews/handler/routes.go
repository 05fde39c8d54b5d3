package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/middleware"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/services/reviews"
	httpHandler "github.com/piresc/carpool/services/reviews/handler/http"
)

// Handler combines all handlers for the reviews service
type Handler struct {
	reviewsHTTP *httpHandler.ReviewsHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(reviewUC reviews.ReviewUC, cfg *models.Config) *Handler {
	return &Handler{
		reviewsHTTP: httpHandler.NewReviewsHandler(reviewUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the review endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/reviews", middleware.CapabilityMiddleware(h.cfg.JWT), middleware.RequirePermission(auth.PermSubmitReview))

	group.POST("", h.reviewsHTTP.SubmitReview)
	group.GET("/me", h.reviewsHTTP.ListMyReviews)
}
