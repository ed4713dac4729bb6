package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 100 * time.Millisecond
)

// DB wraps a *sql.DB together with the dialect specific pieces the SQL
// repositories need: the placeholder format, the migration dialect and the
// error classifier deciding which failures are worth retrying.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// sqlDialect is what differs between the SQL backends.
type sqlDialect struct {
	driverName   string
	migration    string
	placeholder  sq.PlaceholderFormat
	classifier   ErrorClassificator
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  time.Duration
}

// openSQL opens dsn with d's driver, sizes the pool and pings once. A failed
// ping closes the pool again.
func openSQL(ctx context.Context, d sqlDialect, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.driverName, err)
	}
	conn.SetMaxOpenConns(d.maxOpenConns)
	conn.SetMaxIdleConns(d.maxIdleConns)
	conn.SetConnMaxIdleTime(d.maxIdleTime)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", d.driverName, err)
	}
	log.Info().Str("func", "openSQL").Str("driver", d.driverName).Msg("connected to database")

	return &DB{
		DB:                 conn,
		dialect:            d.migration,
		placeholder:        d.placeholder,
		errorClassificator: d.classifier,
		logger:             log,
	}, nil
}

// Migrate applies the embedded schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping implements [HealthChecker].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) builder() sq.StatementBuilderType {
	placeholder := db.placeholder
	if placeholder == nil {
		placeholder = sq.Question
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

// withRetry runs op until it succeeds, the error is classified as
// [NonRetryable], the attempts are exhausted or ctx is done. It is used for
// reads only; a retried write could apply twice.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	delay := defaultRetryDelay
	for attempt := 1; attempt <= defaultRetryAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.withRetry").
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		delay *= 2
	}

	return err
}
