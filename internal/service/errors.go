package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stay/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrForbidden is returned by [AccessGuard] when the caller does not own
	// the target resource.
	ErrForbidden = errors.New("access to resource is forbidden")
)

// Upload errors.
var (
	ErrInvalidLink       = errors.New("invalid link provided")
	ErrNoFilesProvided   = errors.New("no files provided")
	ErrTooManyFiles      = errors.New("too many files provided")
	ErrFileTooLarge      = errors.New("file is too large")
	ErrRemoteFetchFailed = errors.New("remote file fetch failed")
)

// validate runs the presence checks of v and reports any failure as
// ErrInvalidDataProvided.
func validate(ctx context.Context, v validators.Validator, obj any, fields ...string) error {
	if err := v.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
