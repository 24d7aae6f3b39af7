package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-stay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	Profile(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PlaceService interface {
	CreatePlace(ctx context.Context, ownerID string, place models.Place) (models.Place, error)
	ListOwnerPlaces(ctx context.Context, ownerID string) ([]models.Place, error)
	GetPlace(ctx context.Context, placeID string) (models.Place, error)
	UpdatePlace(ctx context.Context, ownerID string, place models.Place) error
	DeletePlace(ctx context.Context, ownerID, placeID string) error
	ListAllPlaces(ctx context.Context) ([]models.Place, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, booking models.Booking) (models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.BookingDetails, error)
	DeleteBooking(ctx context.Context, userID, bookingID string) error
}

type UploadService interface {
	// UploadByLink downloads link and stores it, returning the stored file name.
	UploadByLink(ctx context.Context, link string) (string, error)
	// UploadFiles stores every file, returning the stored names in order.
	UploadFiles(ctx context.Context, files []models.UploadedFile) ([]string, error)
}

// AccessGuard is the single ownership policy applied to every mutating
// operation on places and bookings.
type AccessGuard interface {
	// AuthorizePlace loads the place and fails with [ErrForbidden] unless it
	// is owned by userID.
	AuthorizePlace(ctx context.Context, userID, placeID string) (models.Place, error)
	// AuthorizeBooking loads the booking and fails with [ErrForbidden] unless
	// it was made by userID.
	AuthorizeBooking(ctx context.Context, userID, bookingID string) (models.Booking, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// RemoteFetcher downloads a remote resource.
type RemoteFetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// IDGenerator produces unique identifiers for new records and files.
type IDGenerator interface {
	Generate() string
}
