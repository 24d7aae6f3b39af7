package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/models"
)

func newTestBookingRepo(t *testing.T) (*bookingRepository, sqlmock.Sqlmock) {
	db, mock := newTestPostgresDB(t)
	return &bookingRepository{DB: db, logger: logger.Nop()}, mock
}

func testBooking() models.Booking {
	return models.Booking{
		BookingID:  "b-1",
		PlaceID:    "p-1",
		UserID:     "u-1",
		StartDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
		TotalPrice: 480,
		Guests:     2,
		Name:       "John",
		Phone:      "+100",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo, mock := newTestBookingRepo(t)
	b := testBooking()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings (id,place_id,user_id,start_date,end_date,total_price,guests,name,phone) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)")).
		WithArgs(b.BookingID, b.PlaceID, b.UserID, b.StartDate, b.EndDate, b.TotalPrice, b.Guests, b.Name, b.Phone).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateBooking(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, b, created)
}

func TestCreateBooking_ExecError(t *testing.T) {
	repo, mock := newTestBookingRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).WillReturnError(errors.New("boom"))

	_, err := repo.CreateBooking(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestFindBookingsByUser(t *testing.T) {
	repo, mock := newTestBookingRepo(t)
	b := testBooking()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE user_id = $1 ORDER BY start_date, id")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(b.BookingID, b.PlaceID, b.UserID, b.StartDate, b.EndDate, b.TotalPrice, b.Guests, b.Name, b.Phone))

	bookings, err := repo.FindBookingsByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, b, bookings[0])
}

func TestFindBookingsByUser_RowsError(t *testing.T) {
	repo, mock := newTestBookingRepo(t)
	b := testBooking()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE user_id = $1")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(b.BookingID, b.PlaceID, b.UserID, b.StartDate, b.EndDate, b.TotalPrice, b.Guests, b.Name, b.Phone).
			RowError(0, errors.New("broken row")))

	_, err := repo.FindBookingsByUser(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindBookingByID_NotFound(t *testing.T) {
	repo, mock := newTestBookingRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs("b-404").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.FindBookingByID(context.Background(), "b-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteBooking(t *testing.T) {
	query := regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")

	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestBookingRepo(t)
		mock.ExpectExec(query).WithArgs("b-1").WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteBooking(context.Background(), "b-1"))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestBookingRepo(t)
		mock.ExpectExec(query).WithArgs("b-1").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteBooking(context.Background(), "b-1"), ErrBookingNotFound)
	})
}
