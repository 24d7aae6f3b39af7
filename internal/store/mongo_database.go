package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-stay/internal/config"
	"github.com/MKhiriev/go-stay/internal/logger"
)

// MongoDB holds a connected client and the application database.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to the deployment referenced by cfg.DSN and
// selects the cfg.Name database.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	opts := options.Client().ApplyURI(cfg.DSN)
	if cfg.MaxOpenConns > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxOpenConns))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	return &MongoDB{
		client: client,
		db:     client.Database(cfg.Name),
		logger: log,
	}, nil
}

// EnsureIndexes creates the indexes the repositories rely on. It is the
// document-store counterpart of running migrations.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		usersTable: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		placesTable: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
		bookingsTable: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := m.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("error creating indexes for %s: %w", collection, err)
		}
	}

	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// MongoErrorClassifier implements [ErrorClassificator] for the mongo driver.
type MongoErrorClassifier struct{}

func NewMongoErrorClassifier() *MongoErrorClassifier {
	return &MongoErrorClassifier{}
}

// Classify marks network errors and timeouts as transient.
func (c *MongoErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NonRetryable
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return Retryable
	}
	return NonRetryable
}

func (c *MongoErrorClassifier) IsUniqueViolation(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
