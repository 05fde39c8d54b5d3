// Package dbtest provides in-process stand-ins for the transactor and locker used by use case tests.
package dbtest

import (
	"context"
	"sync"

	"github.com/piresc/carpool/internal/pkg/apperror"
)

// Transactor runs the unit of work directly and counts how often it was asked to.
// With Serial set, units of work run one at a time, the way row locks on a single hot row serialize them.
type Transactor struct {
	Serial bool

	mu     sync.Mutex
	serial sync.Mutex
	Calls  int
}

type txKey struct{}

// WithinTx implements database.Transactor. Nested calls join the outer unit of work.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	t.Calls++
	t.mu.Unlock()

	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	if t.Serial {
		t.serial.Lock()
		defer t.serial.Unlock()
	}
	return fn(context.WithValue(ctx, txKey{}, true))
}

// Locker is an in-memory lock table. Keys listed in Busy always report contention.
type Locker struct {
	mu       sync.Mutex
	held     map[string]bool
	Busy     map[string]bool
	Acquired []string
}

// NewLocker creates an empty lock table
func NewLocker() *Locker {
	return &Locker{held: map[string]bool{}, Busy: map[string]bool{}}
}

// Acquire implements database.Locker
func (l *Locker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] || l.Busy[key] {
		return nil, apperror.ErrConflict.WithMessage("resource %s is locked by another operation", key)
	}
	l.held[key] = true
	l.Acquired = append(l.Acquired, key)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
	}, nil
}

// Held reports whether key is currently locked
func (l *Locker) Held(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held[key]
}
