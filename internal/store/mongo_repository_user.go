package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/models"
)

// mongoUserRepository is the MongoDB implementation of [UserRepository]
// over the "users" collection. Email uniqueness is enforced by the index
// created in [MongoDB.EnsureIndexes].
type mongoUserRepository struct {
	coll       *mongo.Collection
	classifier ErrorClassificator
	logger     *logger.Logger
}

func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return newMongoUserRepository(db.db.Collection(usersTable), logger)
}

func newMongoUserRepository(coll *mongo.Collection, logger *logger.Logger) *mongoUserRepository {
	return &mongoUserRepository{
		coll:       coll,
		classifier: NewMongoErrorClassifier(),
		logger:     logger,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Password = ""
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if r.classifier.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, bson.M{"_id": userID})
}

func (r *mongoUserRepository) findUser(ctx context.Context, filter bson.M) (models.User, error) {
	log := logger.FromContext(ctx)

	return withRetry(ctx, r.classifier, func(ctx context.Context) (models.User, error) {
		var user models.User
		err := r.coll.FindOne(ctx, filter).Decode(&user)
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return models.User{}, ErrUserNotFound
		case err != nil:
			log.Err(err).Str("func", "*mongoUserRepository.findUser").Msg("failed to find user")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return user, nil
	})
}
