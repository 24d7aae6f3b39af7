// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/models"
)

// placeRepository is the SQL implementation of [PlaceRepository] over the
// "places" table. Photos and perks are stored as JSON arrays.
type placeRepository struct {
	*DB
	logger *logger.Logger
}

func NewPlaceRepository(db *DB, logger *logger.Logger) PlaceRepository {
	logger.Debug().Msg("creating place repository")
	return &placeRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePlace inserts a place. PlaceID and OwnerID must be set by the caller.
func (p *placeRepository) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPlaceQuery(p.builder, place)
	if err != nil {
		log.Err(err).Str("func", "placeRepository.CreatePlace").Msg("failed to create query")
		return models.Place{}, err
	}

	if _, err = p.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "placeRepository.CreatePlace").
			Str("owner_id", place.OwnerID).
			Msg("failed to insert place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return normalizePlace(place), nil
}

// FindPlaceByID returns [ErrPlaceNotFound] when no place has the given id.
func (p *placeRepository) FindPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	places, err := p.findPlaces(ctx, sq.Eq{"id": placeID})
	if err != nil {
		return models.Place{}, err
	}
	if len(places) == 0 {
		return models.Place{}, ErrPlaceNotFound
	}
	return places[0], nil
}

// FindPlacesByOwner returns every place owned by ownerID, or an empty slice.
func (p *placeRepository) FindPlacesByOwner(ctx context.Context, ownerID string) ([]models.Place, error) {
	return p.findPlaces(ctx, sq.Eq{"owner_id": ownerID})
}

// FindAllPlaces returns every place in the store.
func (p *placeRepository) FindAllPlaces(ctx context.Context) ([]models.Place, error) {
	return p.findPlaces(ctx, nil)
}

func (p *placeRepository) findPlaces(ctx context.Context, where sq.Sqlizer) ([]models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlacesQuery(p.builder, where)
	if err != nil {
		log.Err(err).Str("func", "placeRepository.findPlaces").Msg("failed to create query")
		return nil, err
	}

	return withRetry(ctx, p.errorClassificator, func(ctx context.Context) ([]models.Place, error) {
		rows, err := p.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "placeRepository.findPlaces").Msg("failed to execute query for getting places")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		places := make([]models.Place, 0, 16)
		for rows.Next() {
			place, scanErr := scanPlace(rows)
			if scanErr != nil {
				log.Err(scanErr).Str("func", "placeRepository.findPlaces").Msg("failed to scan place row")
				return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			places = append(places, place)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			log.Err(rowsErr).Str("func", "placeRepository.findPlaces").Msg("error occurred during rows iteration")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return places, nil
	})
}

// UpdatePlace replaces all mutable fields of a place owned by place.OwnerID.
func (p *placeRepository) UpdatePlace(ctx context.Context, place models.Place) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePlaceQuery(p.builder, place)
	if err != nil {
		log.Err(err).Str("func", "placeRepository.UpdatePlace").Msg("failed to create query")
		return err
	}

	return p.execAffectingOne(ctx, "placeRepository.UpdatePlace", ErrPlaceNotFound, query, args)
}

// DeletePlace removes a place. Bookings referencing it are left untouched.
func (p *placeRepository) DeletePlace(ctx context.Context, placeID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(p.builder, placesTable, placeID)
	if err != nil {
		log.Err(err).Str("func", "placeRepository.DeletePlace").Msg("failed to create query")
		return err
	}

	return p.execAffectingOne(ctx, "placeRepository.DeletePlace", ErrPlaceNotFound, query, args)
}

// execAffectingOne executes a DML statement and returns notFound when no row
// was affected.
func (db *DB) execAffectingOne(ctx context.Context, funcName string, notFound error, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlace(row rowScanner) (models.Place, error) {
	var place models.Place
	err := row.Scan(
		&place.PlaceID,
		&place.OwnerID,
		&place.Name,
		&place.Title,
		&place.Address,
		&place.Photos,
		&place.Description,
		&place.Perks,
		&place.ExtraInfo,
		&place.CheckIn,
		&place.CheckOut,
		&place.MaxGuests,
		&place.Price,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, ErrPlaceNotFound
	}
	return place, err
}

// normalizePlace replaces nil lists so they encode as [] rather than null.
func normalizePlace(place models.Place) models.Place {
	if place.Photos == nil {
		place.Photos = models.StringList{}
	}
	if place.Perks == nil {
		place.Perks = models.StringList{}
	}
	return place
}
