package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/constants"
	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedEcho(t *testing.T, limit int, accountID uuid.UUID) (*echo.Echo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	e := echo.New()
	withCapability := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if accountID != uuid.Nil {
				c.Set(constants.ContextKeyCapability, auth.NewCapability(accountID, auth.RolePassenger))
			}
			return next(c)
		}
	}
	e.POST("/rides/:id/join", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, withCapability, RateLimiter(client, models.RateLimitConfig{Requests: limit, Period: time.Minute}))
	return e, mr
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	accountID := uuid.New()
	e, mr := newLimitedEcho(t, 2, accountID)

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rides/"+uuid.NewString()+"/join", nil))
		codes = append(codes, rec.Code)
		last = rec
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", last.Header().Get("Retry-After"))

	key := "rate:/rides/:id/join:" + accountID.String()
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	e, mr := newLimitedEcho(t, 1, uuid.New())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rides/r1/join", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	mr.FastForward(61 * time.Second)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rides/r1/join", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_SeparateCallers(t *testing.T) {
	e, _ := newLimitedEcho(t, 1, uuid.Nil)

	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		req := httptest.NewRequest(http.MethodPost, "/rides/r1/join", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, ip)
	}
}

func TestRateLimiter_RedisDownFailsOpen(t *testing.T) {
	e, mr := newLimitedEcho(t, 1, uuid.New())
	mr.Close()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rides/r1/join", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_RetryAfterNearWindowEnd(t *testing.T) {
	e, mr := newLimitedEcho(t, 1, uuid.New())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rides/r1/join", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	mr.FastForward(59*time.Second + 700*time.Millisecond)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rides/r1/join", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		reset time.Duration
		want  int
	}{
		{reset: 0, want: 1},
		{reset: 300 * time.Millisecond, want: 1},
		{reset: time.Second, want: 1},
		{reset: 1500 * time.Millisecond, want: 2},
		{reset: time.Minute, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.reset.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, retryAfter(tt.reset))
		})
	}
}
