package database

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
	"github.com/piresc/carpool/internal/pkg/apperror"
)

// Postgres SQLSTATEs raised by lock contention
const (
	codeLockNotAvailable     = "55P03"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

// sqlState extracts the SQLSTATE and constraint name from a pgx or lib/pq error
func sqlState(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

// IsLockConflict reports whether err is a lock-wait timeout, NOWAIT failure, deadlock or serialization failure
func IsLockConflict(err error) bool {
	code, _, ok := sqlState(err)
	if !ok {
		return false
	}
	switch code {
	case codeLockNotAvailable, codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}

// IsUniqueViolation reports whether err violates a unique constraint, optionally a specific one
func IsUniqueViolation(err error, constraint string) bool {
	code, name, ok := sqlState(err)
	if !ok || code != codeUniqueViolation {
		return false
	}
	return constraint == "" || name == constraint
}

// TranslateError maps lock contention onto the conflict error and leaves everything else untouched
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if IsLockConflict(err) {
		return apperror.ErrConflict.Wrap(err)
	}
	return err
}
