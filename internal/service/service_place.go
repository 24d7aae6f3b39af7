package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/store"
	"github.com/MKhiriev/go-stay/internal/validators"
	"github.com/MKhiriev/go-stay/models"
)

type placeService struct {
	placeRepository store.PlaceRepository
	guard           AccessGuard
	ids             IDGenerator
	validator       validators.Validator

	logger *logger.Logger
}

func NewPlaceService(placeRepository store.PlaceRepository, guard AccessGuard, ids IDGenerator, logger *logger.Logger) PlaceService {
	return &placeService{
		placeRepository: placeRepository,
		guard:           guard,
		ids:             ids,
		validator:       validators.NewLodgingValidator(),
		logger:          logger,
	}
}

// CreatePlace stores a new listing owned by ownerID. Any id or owner sent
// by the client is ignored.
func (s *placeService) CreatePlace(ctx context.Context, ownerID string, place models.Place) (models.Place, error) {
	place.OwnerID = ownerID
	if err := validate(ctx, s.validator, place, validators.FieldOwnerID); err != nil {
		return models.Place{}, err
	}

	place.PlaceID = s.ids.Generate()

	created, err := s.placeRepository.CreatePlace(ctx, place)
	if err != nil {
		s.logger.ForContext(ctx).Err(err).Str("owner_id", ownerID).Msg("place creation failed")
		return models.Place{}, fmt.Errorf("place creation failed: %w", err)
	}

	return created, nil
}

func (s *placeService) ListOwnerPlaces(ctx context.Context, ownerID string) ([]models.Place, error) {
	places, err := s.placeRepository.FindPlacesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing owner places failed: %w", err)
	}

	return places, nil
}

func (s *placeService) GetPlace(ctx context.Context, placeID string) (models.Place, error) {
	if err := validate(ctx, s.validator, models.Place{PlaceID: placeID}, validators.FieldPlaceID); err != nil {
		return models.Place{}, err
	}

	place, err := s.placeRepository.FindPlaceByID(ctx, placeID)
	if err != nil {
		return models.Place{}, fmt.Errorf("place lookup failed: %w", err)
	}

	return place, nil
}

// UpdatePlace replaces every mutable field of the listing. The caller must
// own the listing; ownership cannot be transferred.
func (s *placeService) UpdatePlace(ctx context.Context, ownerID string, place models.Place) error {
	if err := validate(ctx, s.validator, place, validators.FieldPlaceID); err != nil {
		return err
	}

	if _, err := s.guard.AuthorizePlace(ctx, ownerID, place.PlaceID); err != nil {
		return err
	}

	place.OwnerID = ownerID
	if err := s.placeRepository.UpdatePlace(ctx, place); err != nil {
		s.logger.ForContext(ctx).Err(err).Str("place_id", place.PlaceID).Msg("place update failed")
		return fmt.Errorf("place update failed: %w", err)
	}

	return nil
}

func (s *placeService) DeletePlace(ctx context.Context, ownerID, placeID string) error {
	if err := validate(ctx, s.validator, models.Place{PlaceID: placeID}, validators.FieldPlaceID); err != nil {
		return err
	}

	if _, err := s.guard.AuthorizePlace(ctx, ownerID, placeID); err != nil {
		return err
	}

	if err := s.placeRepository.DeletePlace(ctx, placeID); err != nil {
		s.logger.ForContext(ctx).Err(err).Str("place_id", placeID).Msg("place deletion failed")
		return fmt.Errorf("place deletion failed: %w", err)
	}

	return nil
}

func (s *placeService) ListAllPlaces(ctx context.Context) ([]models.Place, error) {
	places, err := s.placeRepository.FindAllPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing places failed: %w", err)
	}

	return places, nil
}
