package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/constants"
	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/logger"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/internal/utils"
)

// windowScript increments the counter, starts the window on the first hit and
// returns the count with the remaining window in milliseconds
var windowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// RateLimiter counts requests per route and caller in a fixed Redis window.
// It keys on the account when a capability is already resolved, else on the client IP.
// A Redis failure lets the request through.
func RateLimiter(redisClient *database.RedisClient, config models.RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if redisClient == nil || config.Requests <= 0 || config.Period <= 0 {
			return next
		}
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if capability := CapabilityFrom(c); capability != nil {
				identifier = capability.AccountID().String()
			}
			key := fmt.Sprintf(constants.KeyRateLimit, c.Path(), identifier)
			ctx := c.Request().Context()

			count, windowMs, err := hit(ctx, redisClient, key, config.Period)
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Requests))

			if count > config.Requests {
				reset := time.Duration(windowMs) * time.Millisecond
				if reset < 0 {
					reset = config.Period
				}
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))
				header.Set("Retry-After", strconv.Itoa(retryAfter(reset)))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "rateLimited", "Rate limit exceeded")
			}

			header.Set("X-RateLimit-Remaining", strconv.Itoa(config.Requests-count))
			return next(c)
		}
	}
}

// retryAfter is the wait in whole seconds, rounded up and never below one
func retryAfter(reset time.Duration) int {
	seconds := int(math.Ceil(reset.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}

func hit(ctx context.Context, redisClient *database.RedisClient, key string, period time.Duration) (int, int64, error) {
	res, err := windowScript.Run(ctx, redisClient.Client, []string{key}, period.Milliseconds()).Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("unexpected rate limit reply %v", res)
	}
	count, ok1 := res[0].(int64)
	windowMs, ok2 := res[1].(int64)
	if !ok1 || !ok2 {
		return 0, 0, fmt.Errorf("unexpected rate limit reply %v", res)
	}
	return int(count), windowMs, nil
}
