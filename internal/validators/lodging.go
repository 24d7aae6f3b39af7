package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stay/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldUserID    = "user_id"
	FieldOwnerID   = "owner_id"
	FieldPlaceID   = "place_id"
	FieldBookingID = "booking_id"
)

// Fields checked when Validate is called without field names.
var (
	defaultUserFields    = []string{FieldEmail, FieldPassword}
	defaultPlaceFields   = []string{FieldPlaceID, FieldOwnerID}
	defaultBookingFields = []string{FieldPlaceID, FieldUserID}
)

// LodgingValidator checks that the identifiers and credentials carried by
// users, places and bookings are present. Values are not checked beyond
// presence: dates, prices and guest counts are stored as given.
type LodgingValidator struct{}

func NewLodgingValidator() Validator {
	return &LodgingValidator{}
}

// Validate dispatches validation to the type-specific method. Every failed
// field is reported; the returned error matches each field's sentinel
// through errors.Is.
func (v *LodgingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Place:
		return v.validatePlace(value, fields...)
	case *models.Place:
		return v.validatePlace(*value, fields...)

	case models.Booking:
		return v.validateBooking(value, fields...)
	case *models.Booking:
		return v.validateBooking(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LodgingValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultUserFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				errs = append(errs, ErrEmptyEmail)
			}
		case FieldPassword:
			if user.Password == "" {
				errs = append(errs, ErrEmptyPassword)
			}
		case FieldUserID:
			errs = appendIfBlank(errs, user.UserID, ErrInvalidUserID)
		default:
			return fmt.Errorf("%w: %q for user", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}

func (v *LodgingValidator) validatePlace(place models.Place, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultPlaceFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldPlaceID:
			errs = appendIfBlank(errs, place.PlaceID, ErrInvalidPlaceID)
		case FieldOwnerID:
			errs = appendIfBlank(errs, place.OwnerID, ErrInvalidOwnerID)
		default:
			return fmt.Errorf("%w: %q for place", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}

func (v *LodgingValidator) validateBooking(booking models.Booking, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultBookingFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldBookingID:
			errs = appendIfBlank(errs, booking.BookingID, ErrInvalidBookingID)
		case FieldPlaceID:
			errs = appendIfBlank(errs, booking.PlaceID, ErrInvalidPlaceID)
		case FieldUserID:
			errs = appendIfBlank(errs, booking.UserID, ErrInvalidUserID)
		default:
			return fmt.Errorf("%w: %q for booking", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}

func appendIfBlank(errs []error, id string, err error) []error {
	if strings.TrimSpace(id) == "" {
		return append(errs, err)
	}
	return errs
}
