package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/middleware"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/services/coupons"
	httpHandler "github.com/piresc/carpool/services/coupons/handler/http"
)

// Handler combines all handlers for the coupons service
type Handler struct {
	couponsHTTP *httpHandler.CouponsHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(couponUC coupons.CouponUC, cfg *models.Config) *Handler {
	return &Handler{
		couponsHTTP: httpHandler.NewCouponsHandler(couponUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the coupon endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/coupons", middleware.CapabilityMiddleware(h.cfg.JWT))

	group.GET("", h.couponsHTTP.ListCoupons, middleware.RequirePermission(auth.PermListCoupons))
	group.POST("", h.couponsHTTP.CreateCoupon, middleware.RequirePermission(auth.PermManageCoupons))
	group.POST("/expire", h.couponsHTTP.ExpireClaims, middleware.RequirePermission(auth.PermManageCoupons))
	group.POST("/:id/claim", h.couponsHTTP.ClaimCoupon, middleware.RequirePermission(auth.PermClaimCoupon))
}
