package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/store"
	"github.com/MKhiriev/go-stay/internal/validators"
	"github.com/MKhiriev/go-stay/models"
)

type bookingService struct {
	bookingRepository store.BookingRepository
	placeRepository   store.PlaceRepository
	guard             AccessGuard
	ids               IDGenerator
	validator         validators.Validator

	logger *logger.Logger
}

func NewBookingService(
	bookingRepository store.BookingRepository,
	placeRepository store.PlaceRepository,
	guard AccessGuard,
	ids IDGenerator,
	logger *logger.Logger,
) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		placeRepository:   placeRepository,
		guard:             guard,
		ids:               ids,
		validator:         validators.NewLodgingValidator(),
		logger:            logger,
	}
}

// CreateBooking records a reservation of booking.PlaceID for userID.
//
// The place must exist at creation time. Dates, overlaps and guest count are
// stored as given.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, booking models.Booking) (models.Booking, error) {
	log := s.logger.ForContext(ctx)

	booking.UserID = userID
	if err := validate(ctx, s.validator, booking); err != nil {
		log.Err(err).Str("user_id", userID).Str("place_id", booking.PlaceID).Msg("invalid booking data provided")
		return models.Booking{}, err
	}

	if _, err := s.placeRepository.FindPlaceByID(ctx, booking.PlaceID); err != nil {
		log.Err(err).Str("place_id", booking.PlaceID).Msg("booked place lookup failed")
		return models.Booking{}, fmt.Errorf("booked place lookup failed: %w", err)
	}

	booking.BookingID = s.ids.Generate()

	created, err := s.bookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("booking creation failed")
		return models.Booking{}, fmt.Errorf("booking creation failed: %w", err)
	}

	return created, nil
}

// ListUserBookings returns the bookings of userID, each joined with the
// place it references. A booking whose place no longer exists carries an
// empty place.
func (s *bookingService) ListUserBookings(ctx context.Context, userID string) ([]models.BookingDetails, error) {
	bookings, err := s.bookingRepository.FindBookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user bookings failed: %w", err)
	}

	places := make(map[string]models.Place)
	details := make([]models.BookingDetails, 0, len(bookings))
	for _, booking := range bookings {
		place, ok := places[booking.PlaceID]
		if !ok {
			place, err = s.placeRepository.FindPlaceByID(ctx, booking.PlaceID)
			switch {
			case errors.Is(err, store.ErrPlaceNotFound):
				place = models.Place{}
			case err != nil:
				return nil, fmt.Errorf("resolving booked place failed: %w", err)
			}
			places[booking.PlaceID] = place
		}

		details = append(details, models.BookingDetails{Booking: booking, Place: place})
	}

	return details, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, userID, bookingID string) error {
	if err := validate(ctx, s.validator, models.Booking{BookingID: bookingID}, validators.FieldBookingID); err != nil {
		return err
	}

	if _, err := s.guard.AuthorizeBooking(ctx, userID, bookingID); err != nil {
		return err
	}

	if err := s.bookingRepository.DeleteBooking(ctx, bookingID); err != nil {
		s.logger.ForContext(ctx).Err(err).Str("booking_id", bookingID).Msg("booking deletion failed")
		return fmt.Errorf("booking deletion failed: %w", err)
	}

	return nil
}
