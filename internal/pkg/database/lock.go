package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/logger"
)

// Locker guards a named resource across service instances
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// RedisLocker is a Locker backed by SET NX with a per-holder token
type RedisLocker struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewRedisLocker creates a locker whose locks expire after ttl
func NewRedisLocker(redis *RedisClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{redis: redis, ttl: ttl}
}

// Acquire takes the lock or fails with a conflict when another holder has it
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	ok, err := l.redis.AcquireLock(ctx, key, token, l.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, apperror.ErrConflict.WithMessage("resource %s is locked by another operation", key)
	}

	return func() {
		// The caller's context may already be cancelled by the time the lock is handed back.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := l.redis.ReleaseLock(releaseCtx, key, token); err != nil {
			logger.Warn("Failed to release lock", logger.String("key", key), logger.Err(err))
		}
	}, nil
}
