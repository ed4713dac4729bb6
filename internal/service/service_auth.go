package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrValidation if Login or Password is empty or the login is too long.
//   - store.ErrLoginAlreadyExists if the login is taken.
//   - ErrStoreUnavailable for any other storage failure.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("func", "authService.RegisterUser").Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		log.Debug().Str("func", "authService.RegisterUser").Str("login", user.Login).Msg("login already exists")
		return models.User{}, store.ErrLoginAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrValidation if Login or Password is empty.
//   - ErrWrongCredentials if the login is unknown or the password does not
//     match. The two cases are not distinguished.
//   - ErrStoreUnavailable for storage failures.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("func", "authService.Login").Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("func", "authService.Login").Str("login", user.Login).Msg("unknown login")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by login failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	ok, err := a.hasher.Verify(user.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", foundUser.UserID).Msg("stored password hash is unreadable")
		return models.User{}, ErrWrongCredentials
	}
	if !ok {
		log.Debug().Str("func", "authService.Login").Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string: signature, issuer, expiry and a
// non-empty subject. Every failure is reported as ErrUnauthenticated so that
// callers never branch on the cause.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return token, nil
}
