package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email or id matches no user.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPlaceNotFound is returned when a query, update or delete targets a
	// place that does not exist (or, for updates, is not owned by the caller).
	ErrPlaceNotFound = errors.New("place was not found")

	// ErrBookingNotFound is returned when a query or delete targets a booking
	// that does not exist.
	ErrBookingNotFound = errors.New("booking was not found")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN scheme does
	// not match any known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a storage-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a document
	// lookup fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) or a document write fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning or decoding a single record fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrSavingFile is returned when an uploaded file cannot be written to the
	// upload directory.
	ErrSavingFile = errors.New("failed to save file")
)
