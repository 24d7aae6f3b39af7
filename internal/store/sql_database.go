package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/migrations"
)

// ErrorClassification tells whether a failed operation may be retried.
type ErrorClassification int

const (
	// NonRetryable is the classification of every error a classifier does
	// not recognise as transient.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures such as lost connections or
	// deadlocks.
	Retryable
)

// ErrorClassificator inspects driver errors for a particular SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may succeed when retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

// DB wraps a *sql.DB together with the query builder and error classifier of
// its dialect, so repositories stay dialect-agnostic.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

