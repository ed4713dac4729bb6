package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// userRepository is the SQL implementation of [UserRepository]. It handles
// account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    utils.IDGenerator
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    storeNow,
	}
}

// CreateUser persists a new account and returns it with UserID and CreatedAt
// filled in.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = r.ids.Generate()
	user.CreatedAt = r.now()

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("login already exists")
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.Password = ""
	return user, nil
}

// FindUserByLogin retrieves the account with the given login.
//
// Error handling:
//   - no row → [ErrNoUserWasFound].
//   - any other failure → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByLoginQuery(r.db.builder(), login)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&foundUser.UserID, &foundUser.Login, &foundUser.PasswordHash, &foundUser.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}
