package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/converter"
	"github.com/piresc/carpool/internal/pkg/middleware"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
	"github.com/piresc/carpool/internal/utils"
	"github.com/piresc/carpool/services/coupons"
)

// CouponsHandler handles HTTP requests for coupons
type CouponsHandler struct {
	couponUC coupons.CouponUC
}

// NewCouponsHandler creates a new coupons HTTP handler
func NewCouponsHandler(couponUC coupons.CouponUC) *CouponsHandler {
	return &CouponsHandler{
		couponUC: couponUC,
	}
}

// ListCoupons handles GET /coupons
func (h *CouponsHandler) ListCoupons(c echo.Context) error {
	capability := middleware.CapabilityFrom(c)
	listing, err := h.couponUC.ListAvailable(c.Request().Context(), capability.AccountID(), models.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", listing)
}

// ClaimCoupon handles POST /coupons/:id/claim
func (h *CouponsHandler) ClaimCoupon(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Coupons.ClaimCoupon")

	couponID, err := converter.ParseID("coupon id", c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	capability := middleware.CapabilityFrom(c)
	claim, err := h.couponUC.Claim(c.Request().Context(), capability.AccountID(), couponID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Coupon claimed", claim)
}

// CreateCoupon handles POST /coupons
func (h *CouponsHandler) CreateCoupon(c echo.Context) error {
	var req models.CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	capability := middleware.CapabilityFrom(c)
	coupon, err := h.couponUC.CreateCoupon(c.Request().Context(), capability.AccountID(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Coupon created", coupon)
}

// ExpireClaims handles POST /coupons/expire
func (h *CouponsHandler) ExpireClaims(c echo.Context) error {
	expired, err := h.couponUC.ExpireClaims(c.Request().Context(), models.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Coupon claims expired", map[string]int64{"expired": expired})
}
