package store

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

var postgresDialect = sqlDialect{
	driverName:   "pgx",
	migration:    migrations.DialectPostgres,
	placeholder:  sq.Dollar,
	classifier:   NewPostgresErrorClassifier(),
	maxOpenConns: 10,
	maxIdleConns: 4,
	maxIdleTime:  5 * time.Minute,
}

// NewConnectPostgres connects through pgx's database/sql driver. cfg.DSN is
// any URL or key=value string pgx accepts.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	db, err := openSQL(ctx, postgresDialect, cfg.DSN, log)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("postgres is unreachable")
		return nil, err
	}
	return db, nil
}

// postgresError returns the SQLSTATE of err, or "" when err did not come
// from the server.
func postgresError(err error) string {
	if pgErr := (*pgconn.PgError)(nil); errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
