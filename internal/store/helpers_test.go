package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.UTC)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL builds a postgres flavoured DB around an existing *sql.DB.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            "postgres",
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// sequenceIDs hands out predictable, lexically increasing ids.
type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (s *sequenceIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("00000000-0000-7000-8000-%012d", s.n)
}

// tickingClock advances by step on every call.
type tickingClock struct {
	mu   sync.Mutex
	at   time.Time
	step time.Duration
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(c.step)
	return c.at
}

func fixedClock() time.Time { return fixedNow }

func cipheredFields(prefix string) models.CipheredVaultFields {
	return models.CipheredVaultFields{
		Title:    models.CipheredText(prefix + "-title"),
		Username: models.CipheredText(prefix + "-username"),
		Password: models.CipheredText(prefix + "-password"),
		URL:      models.CipheredText(prefix + "-url"),
		Notes:    models.CipheredText(prefix + "-notes"),
	}
}
