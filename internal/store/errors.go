package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by login matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVaultItemNotFound is returned when a vault item with the requested
	// id does not exist or belongs to another owner. The two cases are
	// indistinguishable to the caller.
	ErrVaultItemNotFound = errors.New("vault item was not found")

	// ErrVaultItemNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrVaultItemNotSaved = errors.New("vault item was not saved")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// storage driver name.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrMongoOperation is returned when a MongoDB command fails.
	ErrMongoOperation = errors.New("mongodb operation failed")
)
