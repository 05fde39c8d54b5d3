package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/constants"
	jwtpkg "github.com/piresc/carpool/internal/pkg/jwt"
	"github.com/piresc/carpool/internal/pkg/logger"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/internal/utils"
)

// CapabilityMiddleware authenticates the bearer token and resolves its roles into a capability once per request
func CapabilityMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				logger.Debug("Rejected access token", logger.Err(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			capability := claims.Capability()
			c.Set(constants.ContextKeyCapability, capability)
			c.SetRequest(c.Request().WithContext(auth.WithCapability(c.Request().Context(), capability)))
			AddAttribute(c, "account.id", capability.AccountID().String())

			return next(c)
		}
	}
}

// RequirePermission rejects requests whose capability does not grant p
func RequirePermission(p auth.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			capability := CapabilityFrom(c)
			if capability == nil {
				return utils.UnauthorizedResponse(c, "")
			}
			if !capability.Can(p) {
				return utils.ForbiddenResponse(c, "Operation "+string(p)+" is not permitted for this account")
			}
			return next(c)
		}
	}
}

// CapabilityFrom returns the capability resolved for this request, or nil
func CapabilityFrom(c echo.Context) *auth.Capability {
	if capability, ok := c.Get(constants.ContextKeyCapability).(*auth.Capability); ok {
		return capability
	}
	if capability, ok := auth.FromContext(c.Request().Context()); ok {
		return capability
	}
	return nil
}
