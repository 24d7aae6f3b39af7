package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidOwnerID   = errors.New("invalid owner ID")
	ErrInvalidPlaceID   = errors.New("invalid place ID")
	ErrInvalidBookingID = errors.New("invalid booking ID")
)
