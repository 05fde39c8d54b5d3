package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

// Transactor runs a unit of work inside one database transaction
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// txState is the open transaction plus the work deferred until it commits
type txState struct {
	tx    *sqlx.Tx
	mu    sync.Mutex
	hooks []func()
}

func stateFrom(ctx context.Context) (*txState, bool) {
	state, ok := ctx.Value(txKey{}).(*txState)
	return state, ok
}

// SQLTransactor implements Transactor over sqlx; the open transaction travels on the context
type SQLTransactor struct {
	db          *sqlx.DB
	lockTimeout time.Duration
}

// NewTransactor creates a transactor; a positive lockTimeout bounds row-lock waits inside each transaction
func NewTransactor(db *sqlx.DB, lockTimeout time.Duration) *SQLTransactor {
	return &SQLTransactor{db: db, lockTimeout: lockTimeout}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
// A call nested in an existing transaction joins it.
func (t *SQLTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := stateFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", TranslateError(err))
	}
	defer tx.Rollback()

	if t.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", t.lockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	state := &txState{tx: tx}
	if err := fn(context.WithValue(ctx, txKey{}, state)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", TranslateError(err))
	}

	state.mu.Lock()
	hooks := state.hooks
	state.mu.Unlock()
	for _, hook := range hooks {
		hook()
	}
	return nil
}

// AfterCommit defers fn until the transaction carried by ctx commits; it is dropped on rollback.
// Outside a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	state, ok := stateFrom(ctx)
	if !ok {
		fn()
		return
	}
	state.mu.Lock()
	state.hooks = append(state.hooks, fn)
	state.mu.Unlock()
}

// Executor is the query surface shared by *sqlx.DB and *sqlx.Tx
type Executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Conn returns the transaction carried by ctx, or db when there is none
func Conn(ctx context.Context, db *sqlx.DB) Executor {
	if state, ok := stateFrom(ctx); ok {
		return state.tx
	}
	return db
}

// InTx reports whether ctx carries an open transaction
func InTx(ctx context.Context) bool {
	_, ok := stateFrom(ctx)
	return ok
}
