// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-stay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user. Returns [ErrEmailAlreadyExists] when the
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when no user matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] when no user matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// PlaceRepository persists listings.
type PlaceRepository interface {
	CreatePlace(ctx context.Context, place models.Place) (models.Place, error)
	FindPlaceByID(ctx context.Context, placeID string) (models.Place, error)
	FindPlacesByOwner(ctx context.Context, ownerID string) ([]models.Place, error)
	FindAllPlaces(ctx context.Context) ([]models.Place, error)
	// UpdatePlace replaces every mutable field of the place identified by
	// place.PlaceID, provided it is owned by place.OwnerID. Returns
	// [ErrPlaceNotFound] when no such place exists.
	UpdatePlace(ctx context.Context, place models.Place) error
	DeletePlace(ctx context.Context, placeID string) error
}

// BookingRepository persists reservations.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	FindBookingByID(ctx context.Context, bookingID string) (models.Booking, error)
	FindBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

// UploadStorage writes uploaded photos to the upload directory.
type UploadStorage interface {
	// SaveFile writes content under fileName. fileName must be a bare file
	// name without directory components.
	SaveFile(ctx context.Context, fileName string, content io.Reader) error
	// Dir returns the directory files are written to.
	Dir() string
}
