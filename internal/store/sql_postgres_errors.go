package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed read may be
// attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier retries on lost connections, rolled back
// transactions and a server that is still starting up. Everything else,
// constraint violations included, fails at once.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError looks only at the SQLSTATE code. Classes 08 and 40 are
// retried as a whole; from class 57 only cannot_connect_now is.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch code := pgErr.Code; {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// isUniqueViolation covers both SQL dialects.
func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation || sqliteUniqueViolation(err)
}
