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

// mongoPlaceRepository is the MongoDB implementation of [PlaceRepository]
// over the "places" collection.
type mongoPlaceRepository struct {
	coll       *mongo.Collection
	classifier ErrorClassificator
	logger     *logger.Logger
}

func NewMongoPlaceRepository(db *MongoDB, logger *logger.Logger) PlaceRepository {
	logger.Debug().Msg("creating mongo place repository")
	return newMongoPlaceRepository(db.db.Collection(placesTable), logger)
}

func newMongoPlaceRepository(coll *mongo.Collection, logger *logger.Logger) *mongoPlaceRepository {
	return &mongoPlaceRepository{
		coll:       coll,
		classifier: NewMongoErrorClassifier(),
		logger:     logger,
	}
}

func (p *mongoPlaceRepository) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	place = normalizePlace(place)
	if _, err := p.coll.InsertOne(ctx, place); err != nil {
		log.Err(err).
			Str("func", "mongoPlaceRepository.CreatePlace").
			Str("owner_id", place.OwnerID).
			Msg("failed to insert place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return place, nil
}

func (p *mongoPlaceRepository) FindPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	log := logger.FromContext(ctx)

	return withRetry(ctx, p.classifier, func(ctx context.Context) (models.Place, error) {
		var place models.Place
		err := p.coll.FindOne(ctx, bson.M{"_id": placeID}).Decode(&place)
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return models.Place{}, ErrPlaceNotFound
		case err != nil:
			log.Err(err).Str("func", "mongoPlaceRepository.FindPlaceByID").Msg("failed to find place")
			return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return normalizePlace(place), nil
	})
}

func (p *mongoPlaceRepository) FindPlacesByOwner(ctx context.Context, ownerID string) ([]models.Place, error) {
	return p.findPlaces(ctx, bson.M{"owner_id": ownerID})
}

func (p *mongoPlaceRepository) FindAllPlaces(ctx context.Context) ([]models.Place, error) {
	return p.findPlaces(ctx, bson.M{})
}

func (p *mongoPlaceRepository) findPlaces(ctx context.Context, filter bson.M) ([]models.Place, error) {
	log := logger.FromContext(ctx)

	return withRetry(ctx, p.classifier, func(ctx context.Context) ([]models.Place, error) {
		cursor, err := p.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			log.Err(err).Str("func", "mongoPlaceRepository.findPlaces").Msg("failed to execute query for getting places")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		places := make([]models.Place, 0, 16)
		if err = cursor.All(ctx, &places); err != nil {
			log.Err(err).Str("func", "mongoPlaceRepository.findPlaces").Msg("failed to decode places")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		for i := range places {
			places[i] = normalizePlace(places[i])
		}
		return places, nil
	})
}

// UpdatePlace replaces the mutable fields of a place owned by place.OwnerID.
func (p *mongoPlaceRepository) UpdatePlace(ctx context.Context, place models.Place) error {
	log := logger.FromContext(ctx)

	place = normalizePlace(place)
	update := bson.M{"$set": bson.M{
		"name":        place.Name,
		"title":       place.Title,
		"address":     place.Address,
		"photos":      place.Photos,
		"description": place.Description,
		"perks":       place.Perks,
		"extra_info":  place.ExtraInfo,
		"check_in":    place.CheckIn,
		"check_out":   place.CheckOut,
		"max_guests":  place.MaxGuests,
		"price":       place.Price,
	}}

	result, err := p.coll.UpdateOne(ctx, bson.M{"_id": place.PlaceID, "owner_id": place.OwnerID}, update)
	if err != nil {
		log.Err(err).Str("func", "mongoPlaceRepository.UpdatePlace").Msg("failed to update place")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.MatchedCount == 0 {
		return ErrPlaceNotFound
	}

	return nil
}

func (p *mongoPlaceRepository) DeletePlace(ctx context.Context, placeID string) error {
	log := logger.FromContext(ctx)

	result, err := p.coll.DeleteOne(ctx, bson.M{"_id": placeID})
	if err != nil {
		log.Err(err).Str("func", "mongoPlaceRepository.DeletePlace").Msg("failed to delete place")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.DeletedCount == 0 {
		return ErrPlaceNotFound
	}

	return nil
}
