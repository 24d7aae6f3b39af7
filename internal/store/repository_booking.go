package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/models"
)

// bookingRepository is the SQL implementation of [BookingRepository] over the
// "bookings" table.
type bookingRepository struct {
	*DB
	logger *logger.Logger
}

func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		DB:     db,
		logger: logger,
	}
}

func (b *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBookingQuery(b.builder, booking)
	if err != nil {
		log.Err(err).Str("func", "bookingRepository.CreateBooking").Msg("failed to create query")
		return models.Booking{}, err
	}

	if _, err = b.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "bookingRepository.CreateBooking").
			Str("user_id", booking.UserID).
			Str("place_id", booking.PlaceID).
			Msg("failed to insert booking")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return booking, nil
}

// FindBookingByID returns [ErrBookingNotFound] when no booking has the given id.
func (b *bookingRepository) FindBookingByID(ctx context.Context, bookingID string) (models.Booking, error) {
	bookings, err := b.findBookings(ctx, sq.Eq{"id": bookingID})
	if err != nil {
		return models.Booking{}, err
	}
	if len(bookings) == 0 {
		return models.Booking{}, ErrBookingNotFound
	}
	return bookings[0], nil
}

func (b *bookingRepository) FindBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return b.findBookings(ctx, sq.Eq{"user_id": userID})
}

func (b *bookingRepository) findBookings(ctx context.Context, where sq.Eq) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookingsQuery(b.builder, where)
	if err != nil {
		log.Err(err).Str("func", "bookingRepository.findBookings").Msg("failed to create query")
		return nil, err
	}

	return withRetry(ctx, b.errorClassificator, func(ctx context.Context) ([]models.Booking, error) {
		rows, err := b.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "bookingRepository.findBookings").Msg("failed to execute query for getting bookings")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		bookings := make([]models.Booking, 0, 8)
		for rows.Next() {
			var booking models.Booking
			scanErr := rows.Scan(
				&booking.BookingID,
				&booking.PlaceID,
				&booking.UserID,
				&booking.StartDate,
				&booking.EndDate,
				&booking.TotalPrice,
				&booking.Guests,
				&booking.Name,
				&booking.Phone,
			)
			if scanErr != nil {
				log.Err(scanErr).Str("func", "bookingRepository.findBookings").Msg("failed to scan booking row")
				return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			bookings = append(bookings, booking)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			log.Err(rowsErr).Str("func", "bookingRepository.findBookings").Msg("error occurred during rows iteration")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return bookings, nil
	})
}

// DeleteBooking removes a booking; returns [ErrBookingNotFound] when absent.
func (b *bookingRepository) DeleteBooking(ctx context.Context, bookingID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(b.builder, bookingsTable, bookingID)
	if err != nil {
		log.Err(err).Str("func", "bookingRepository.DeleteBooking").Msg("failed to create query")
		return err
	}

	return b.execAffectingOne(ctx, "bookingRepository.DeleteBooking", ErrBookingNotFound, query, args)
}
