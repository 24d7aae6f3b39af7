package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stay/internal/config"
	"github.com/MKhiriev/go-stay/internal/logger"
)

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	PlaceRepository   PlaceRepository
	BookingRepository BookingRepository
	UploadStorage     UploadStorage

	closeFn func(ctx context.Context) error
}

// Backend names returned by [BackendFromDSN].
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMongo    = "mongo"
)

// BackendFromDSN selects the storage backend from the DSN scheme:
//   - postgres:// or postgresql://    → PostgreSQL
//   - mongodb:// or mongodb+srv://    → MongoDB
//   - file: or a *.db / *.sqlite path → SQLite
func BackendFromDSN(dsn string) (string, error) {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return BackendMongo, nil
	case strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return BackendSQLite, nil
	}

	path := lower
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") || strings.HasSuffix(path, ".sqlite3") {
		return BackendSQLite, nil
	}

	return "", ErrUnsupportedDSN
}

// NewStorages connects to the backend chosen by cfg.DB.DSN, applies its
// schema (migrations or indexes) and prepares the upload directory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	backend, err := BackendFromDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	uploads, err := NewUploadFileStorage(cfg.Files.UploadDir, logger)
	if err != nil {
		return nil, err
	}

	storages := &Storages{UploadStorage: uploads}

	switch backend {
	case BackendMongo:
		db, err := NewConnectMongo(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("mongo connection error: %w", err)
		}
		if err = db.EnsureIndexes(ctx); err != nil {
			_ = db.Close(context.Background())
			return nil, fmt.Errorf("index creation failed: %w", err)
		}

		storages.UserRepository = NewMongoUserRepository(db, logger)
		storages.PlaceRepository = NewMongoPlaceRepository(db, logger)
		storages.BookingRepository = NewMongoBookingRepository(db, logger)
		storages.closeFn = db.Close

	default:
		var db *DB
		if backend == BackendPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, logger)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, logger)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", backend, err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		storages.UserRepository = NewUserRepository(db, logger)
		storages.PlaceRepository = NewPlaceRepository(db, logger)
		storages.BookingRepository = NewBookingRepository(db, logger)
		storages.closeFn = func(context.Context) error { return db.Close() }
	}

	logger.Info().Str("backend", backend).Msg("storages created")
	return storages, nil
}

// Close releases the database connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	if err := s.closeFn(ctx); err != nil {
		return errors.Join(errors.New("error closing storages"), err)
	}
	return nil
}
