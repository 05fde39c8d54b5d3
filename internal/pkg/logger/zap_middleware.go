package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/carpool/internal/pkg/auth"
)

// ZapEchoMiddleware logs every request with its latency, status and caller account
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// Let echo render the error first so the logged status is the real one.
				c.Error(err)
			}

			latency := time.Since(start)
			txn := newrelic.FromContext(c.Request().Context())

			accountID := "anonymous"
			if capability, ok := auth.FromContext(c.Request().Context()); ok {
				accountID = capability.AccountID().String()
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("account_id", accountID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, c.Request().Method, path, c.RealIP(), accountID, requestID,
				c.Response().Status, latency, err)
			return nil
		}
	}
}
