// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stay/models"
)

const (
	usersTable    = "users"
	placesTable   = "places"
	bookingsTable = "bookings"
)

var (
	userColumns = []string{"id", "email", "password_hash", "created_at"}

	placeColumns = []string{
		"id", "owner_id", "name", "title", "address", "photos", "description",
		"perks", "extra_info", "check_in", "check_out", "max_guests", "price",
	}

	bookingColumns = []string{
		"id", "place_id", "user_id", "start_date", "end_date",
		"total_price", "guests", "name", "phone",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertPlaceQuery(b sq.StatementBuilderType, place models.Place) (string, []any, error) {
	query, args, err := b.Insert(placesTable).
		Columns(placeColumns...).
		Values(
			place.PlaceID, place.OwnerID, place.Name, place.Title, place.Address,
			place.Photos, place.Description, place.Perks, place.ExtraInfo,
			place.CheckIn, place.CheckOut, place.MaxGuests, place.Price,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectPlacesQuery selects places matching where; a nil where selects
// every place. Results are ordered by id, which for UUIDv7 is creation order.
func buildSelectPlacesQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	builder := b.Select(placeColumns...).From(placesTable)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.OrderBy("id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdatePlaceQuery replaces every mutable column. The owner filter makes
// the ownership check and the write a single statement.
func buildUpdatePlaceQuery(b sq.StatementBuilderType, place models.Place) (string, []any, error) {
	query, args, err := b.Update(placesTable).
		Set("name", place.Name).
		Set("title", place.Title).
		Set("address", place.Address).
		Set("photos", place.Photos).
		Set("description", place.Description).
		Set("perks", place.Perks).
		Set("extra_info", place.ExtraInfo).
		Set("check_in", place.CheckIn).
		Set("check_out", place.CheckOut).
		Set("max_guests", place.MaxGuests).
		Set("price", place.Price).
		Where(sq.Eq{"id": place.PlaceID}).
		Where(sq.Eq{"owner_id": place.OwnerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(b sq.StatementBuilderType, table, id string) (string, []any, error) {
	query, args, err := b.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertBookingQuery(b sq.StatementBuilderType, booking models.Booking) (string, []any, error) {
	query, args, err := b.Insert(bookingsTable).
		Columns(bookingColumns...).
		Values(
			booking.BookingID, booking.PlaceID, booking.UserID, booking.StartDate,
			booking.EndDate, booking.TotalPrice, booking.Guests, booking.Name, booking.Phone,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectBookingsQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(bookingColumns...).
		From(bookingsTable).
		Where(where).
		OrderBy("start_date", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
