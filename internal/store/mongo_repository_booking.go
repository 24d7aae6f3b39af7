package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/models"
)

// mongoBookingRepository is the MongoDB implementation of
// [BookingRepository] over the "bookings" collection.
type mongoBookingRepository struct {
	coll       *mongo.Collection
	classifier ErrorClassificator
	logger     *logger.Logger
}

func NewMongoBookingRepository(db *MongoDB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating mongo booking repository")
	return newMongoBookingRepository(db.db.Collection(bookingsTable), logger)
}

func newMongoBookingRepository(coll *mongo.Collection, logger *logger.Logger) *mongoBookingRepository {
	return &mongoBookingRepository{
		coll:       coll,
		classifier: NewMongoErrorClassifier(),
		logger:     logger,
	}
}

func (b *mongoBookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	if _, err := b.coll.InsertOne(ctx, booking); err != nil {
		log.Err(err).
			Str("func", "mongoBookingRepository.CreateBooking").
			Str("user_id", booking.UserID).
			Msg("failed to insert booking")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return booking, nil
}

func (b *mongoBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (models.Booking, error) {
	log := logger.FromContext(ctx)

	return withRetry(ctx, b.classifier, func(ctx context.Context) (models.Booking, error) {
		var booking models.Booking
		err := b.coll.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return models.Booking{}, ErrBookingNotFound
		case err != nil:
			log.Err(err).Str("func", "mongoBookingRepository.FindBookingByID").Msg("failed to find booking")
			return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return booking, nil
	})
}

func (b *mongoBookingRepository) FindBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	return withRetry(ctx, b.classifier, func(ctx context.Context) ([]models.Booking, error) {
		opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}})
		cursor, err := b.coll.Find(ctx, bson.M{"user_id": userID}, opts)
		if err != nil {
			log.Err(err).Str("func", "mongoBookingRepository.FindBookingsByUser").Msg("failed to execute query for getting bookings")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		bookings := make([]models.Booking, 0, 8)
		if err = cursor.All(ctx, &bookings); err != nil {
			log.Err(err).Str("func", "mongoBookingRepository.FindBookingsByUser").Msg("failed to decode bookings")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return bookings, nil
	})
}

func (b *mongoBookingRepository) DeleteBooking(ctx context.Context, bookingID string) error {
	log := logger.FromContext(ctx)

	result, err := b.coll.DeleteOne(ctx, bson.M{"_id": bookingID})
	if err != nil {
		log.Err(err).Str("func", "mongoBookingRepository.DeleteBooking").Msg("failed to delete booking")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.DeletedCount == 0 {
		return ErrBookingNotFound
	}

	return nil
}
