package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/models"
)

func newTestPlaceRepo(t *testing.T) (*placeRepository, sqlmock.Sqlmock) {
	db, mock := newTestPostgresDB(t)
	return &placeRepository{DB: db, logger: logger.Nop()}, mock
}

func placeRows() *sqlmock.Rows {
	return sqlmock.NewRows(placeColumns)
}

func testPlace() models.Place {
	return models.Place{
		PlaceID:     "p-1",
		OwnerID:     "u-1",
		Name:        "Cabin",
		Title:       "Cozy cabin",
		Address:     "1 Forest Rd",
		Photos:      models.StringList{"a.jpg", "b.jpg"},
		Description: "Quiet",
		Perks:       models.StringList{"wifi"},
		ExtraInfo:   "No pets",
		CheckIn:     14,
		CheckOut:    11,
		MaxGuests:   4,
		Price:       120.5,
	}
}

func TestCreatePlace_Success(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)
	place := testPlace()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO places")).
		WithArgs(place.PlaceID, place.OwnerID, place.Name, place.Title, place.Address,
			`["a.jpg","b.jpg"]`, place.Description, `["wifi"]`, place.ExtraInfo,
			place.CheckIn, place.CheckOut, place.MaxGuests, place.Price).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreatePlace(context.Background(), place)
	require.NoError(t, err)
	assert.Equal(t, place, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePlace_NilListsStoredAsEmpty(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)
	place := testPlace()
	place.Photos, place.Perks = nil, nil

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO places")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"[]", sqlmock.AnyArg(), "[]", sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreatePlace(context.Background(), place)
	require.NoError(t, err)
	assert.NotNil(t, created.Photos)
	assert.NotNil(t, created.Perks)
}

func TestCreatePlace_ExecError(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO places")).
		WillReturnError(errors.New("boom"))

	_, err := repo.CreatePlace(context.Background(), testPlace())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestFindPlaceByID(t *testing.T) {
	query := regexp.QuoteMeta("SELECT " + "id, owner_id, name, title, address, photos, description, perks, extra_info, check_in, check_out, max_guests, price" +
		" FROM places WHERE id = $1 ORDER BY id")

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)
		p := testPlace()

		mock.ExpectQuery(query).
			WithArgs("p-1").
			WillReturnRows(placeRows().AddRow(p.PlaceID, p.OwnerID, p.Name, p.Title, p.Address,
				[]byte(`["a.jpg","b.jpg"]`), p.Description, `["wifi"]`, p.ExtraInfo,
				p.CheckIn, p.CheckOut, p.MaxGuests, p.Price))

		found, err := repo.FindPlaceByID(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, p, found)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)

		mock.ExpectQuery(query).WithArgs("missing").WillReturnRows(placeRows())

		_, err := repo.FindPlaceByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrPlaceNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)

		mock.ExpectQuery(query).WithArgs("p-1").WillReturnError(errors.New("boom"))

		_, err := repo.FindPlaceByID(context.Background(), "p-1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("bad photos json", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)
		p := testPlace()

		mock.ExpectQuery(query).
			WithArgs("p-1").
			WillReturnRows(placeRows().AddRow(p.PlaceID, p.OwnerID, p.Name, p.Title, p.Address,
				"not json", p.Description, "[]", p.ExtraInfo,
				p.CheckIn, p.CheckOut, p.MaxGuests, p.Price))

		_, err := repo.FindPlaceByID(context.Background(), "p-1")
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestFindPlacesByOwner_Empty(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM places WHERE owner_id = $1")).
		WithArgs("u-2").
		WillReturnRows(placeRows())

	places, err := repo.FindPlacesByOwner(context.Background(), "u-2")
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestFindAllPlaces(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)
	p := testPlace()

	mock.ExpectQuery(regexp.QuoteMeta("FROM places ORDER BY id")).
		WithoutArgs().
		WillReturnRows(placeRows().
			AddRow("p-1", "u-1", p.Name, p.Title, p.Address, "[]", p.Description, "[]", p.ExtraInfo, 14, 11, 2, 10.0).
			AddRow("p-2", "u-2", p.Name, p.Title, p.Address, "[]", p.Description, "[]", p.ExtraInfo, 14, 11, 2, 20.0))

	places, err := repo.FindAllPlaces(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "p-1", places[0].PlaceID)
	assert.Equal(t, "u-2", places[1].OwnerID)
}

func TestUpdatePlace(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE places SET name = $1, title = $2, address = $3, photos = $4, description = $5, " +
		"perks = $6, extra_info = $7, check_in = $8, check_out = $9, max_guests = $10, price = $11 " +
		"WHERE id = $12 AND owner_id = $13")

	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)
		p := testPlace()

		mock.ExpectExec(query).
			WithArgs(p.Name, p.Title, p.Address, `["a.jpg","b.jpg"]`, p.Description, `["wifi"]`, p.ExtraInfo,
				p.CheckIn, p.CheckOut, p.MaxGuests, p.Price, p.PlaceID, p.OwnerID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdatePlace(context.Background(), p))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not owned or missing", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)

		mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePlace(context.Background(), testPlace())
		assert.ErrorIs(t, err, ErrPlaceNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)

		mock.ExpectExec(query).WillReturnError(errors.New("boom"))

		err := repo.UpdatePlace(context.Background(), testPlace())
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestDeletePlace(t *testing.T) {
	query := regexp.QuoteMeta("DELETE FROM places WHERE id = $1")

	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)
		mock.ExpectExec(query).WithArgs("p-1").WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeletePlace(context.Background(), "p-1"))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)
		mock.ExpectExec(query).WithArgs("p-1").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeletePlace(context.Background(), "p-1"), ErrPlaceNotFound)
	})

	t.Run("rows affected error", func(t *testing.T) {
		repo, mock := newTestPlaceRepo(t)
		mock.ExpectExec(query).WithArgs("p-1").WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))

		assert.ErrorIs(t, repo.DeletePlace(context.Background(), "p-1"), ErrExecutingStatement)
	})
}
