// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/estateflow/crm/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlstateUniqueViolation      = "23505"
	sqlstateSerializationFailure = "40001"
	sqlstateDeadlockDetected     = "40P01"
)

func isSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool {
	return isSQLState(err, sqlstateUniqueViolation)
}

// isRetryableTxFailure covers the two abort classes Postgres asks callers to
// retry: serialization failures and deadlocks.
func isRetryableTxFailure(err error) bool {
	return isSQLState(err, sqlstateSerializationFailure) ||
		isSQLState(err, sqlstateDeadlockDetected)
}

// withSerializationRetry runs fn and, if it aborts with a retryable
// transaction failure, runs it exactly once more. Business-rule errors are
// never retried; only the storage-level abort gets this single invisible
// second attempt. A second abort surfaces as a conflict rather than leaking
// the driver error.
func withSerializationRetry(fn func() error) error {
	err := fn()
	if err == nil || !isRetryableTxFailure(err) {
		return err
	}
	if err = fn(); err != nil && isRetryableTxFailure(err) {
		return fmt.Errorf("transaction aborted by a concurrent update: %w", domain.ErrConflict)
	}
	return err
}
