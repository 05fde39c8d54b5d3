package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func conflictRetrier(maxRetries int) *Retrier {
	return New(ConflictConfig(models.MatchingConfig{
		RetryAttempts:  maxRetries,
		RetryBaseDelay: time.Millisecond,
		RetryMaxDelay:  5 * time.Millisecond,
	}), nil)
}

func TestExecute_SucceedsFirstTime(t *testing.T) {
	calls := 0
	err := conflictRetrier(3).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_RetriesConflictsUntilSuccess(t *testing.T) {
	calls := 0
	err := conflictRetrier(3).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return apperror.ErrConflict
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_SurfacesConflictAfterBoundedAttempts(t *testing.T) {
	calls := 0
	err := conflictRetrier(2).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return apperror.ErrConflict
	})

	assert.Equal(t, 3, calls)
	assert.True(t, apperror.IsConflict(err))
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Contains(t, err.Error(), "retry limit exceeded after 3 attempts")
}

func TestExecute_DomainErrorsAreNotRetried(t *testing.T) {
	calls := 0
	err := conflictRetrier(5).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return apperror.ErrRideFull
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, apperror.ErrRideFull)
}

func TestExecute_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := conflictRetrier(3).Execute(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestNew_DefaultsRetryEverything(t *testing.T) {
	calls := 0
	r := New(Config{MaxRetries: 1, BaseDelay: time.Millisecond}, nil)

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("transient")
	})

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestCalculateDelay_CappedByMaxDelay(t *testing.T) {
	r := New(Config{BaseDelay: 10 * time.Millisecond, MaxDelay: 25 * time.Millisecond, Multiplier: 2}, nil)

	assert.Equal(t, 10*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 20*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 25*time.Millisecond, r.calculateDelay(5))
}
