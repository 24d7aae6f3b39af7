package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/store"
	"github.com/MKhiriev/go-stay/models"
)

type accessGuard struct {
	placeRepository   store.PlaceRepository
	bookingRepository store.BookingRepository
}

func NewAccessGuard(placeRepository store.PlaceRepository, bookingRepository store.BookingRepository) AccessGuard {
	return &accessGuard{
		placeRepository:   placeRepository,
		bookingRepository: bookingRepository,
	}
}

func (g *accessGuard) AuthorizePlace(ctx context.Context, userID, placeID string) (models.Place, error) {
	place, err := g.placeRepository.FindPlaceByID(ctx, placeID)
	if err != nil {
		return models.Place{}, fmt.Errorf("place lookup failed: %w", err)
	}

	if userID == "" || place.OwnerID != userID {
		logger.FromContext(ctx).Warn().
			Str("user_id", userID).
			Str("place_id", placeID).
			Str("owner_id", place.OwnerID).
			Msg("place access denied")
		return models.Place{}, ErrForbidden
	}

	return place, nil
}

func (g *accessGuard) AuthorizeBooking(ctx context.Context, userID, bookingID string) (models.Booking, error) {
	booking, err := g.bookingRepository.FindBookingByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking lookup failed: %w", err)
	}

	if userID == "" || booking.UserID != userID {
		logger.FromContext(ctx).Warn().
			Str("user_id", userID).
			Str("booking_id", bookingID).
			Msg("booking access denied")
		return models.Booking{}, ErrForbidden
	}

	return booking, nil
}
