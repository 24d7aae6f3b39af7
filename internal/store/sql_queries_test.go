// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stay/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{UserID: "u-1", Email: "a@b.c", PasswordHash: "h"}

	query, args, err := buildInsertUserQuery(pgBuilder, user)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (id,email,password_hash,created_at) VALUES ($1,$2,$3,$4)", query)
	require.Len(t, args, 4)
	assert.Equal(t, "u-1", args[0])
	assert.Equal(t, "a@b.c", args[1])
}

func Test_buildSelectUserQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{"postgres", pgBuilder, "SELECT id, email, password_hash, created_at FROM users WHERE email = $1 LIMIT 1"},
		{"sqlite", sqliteBuilder, "SELECT id, email, password_hash, created_at FROM users WHERE email = ? LIMIT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectUserQuery(tt.builder, sq.Eq{"email": "a@b.c"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"a@b.c"}, args)
		})
	}
}

func Test_buildInsertPlaceQuery_AllColumns(t *testing.T) {
	query, args, err := buildInsertPlaceQuery(pgBuilder, models.Place{PlaceID: "p-1", OwnerID: "u-1"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, c := range placeColumns {
		assert.Contains(t, q, c)
	}
	assert.Contains(t, query, "$13")
	assert.Len(t, args, len(placeColumns))
}

func Test_buildSelectPlacesQuery(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		query, args, err := buildSelectPlacesQuery(pgBuilder, nil)
		require.NoError(t, err)
		assert.NotContains(t, query, "WHERE")
		assert.True(t, strings.HasSuffix(query, "FROM places ORDER BY id"))
		assert.Empty(t, args)
	})

	t.Run("by owner", func(t *testing.T) {
		query, args, err := buildSelectPlacesQuery(pgBuilder, sq.Eq{"owner_id": "u-1"})
		require.NoError(t, err)
		assert.Contains(t, query, "WHERE owner_id = $1")
		assert.Equal(t, []any{"u-1"}, args)
	})
}

func Test_buildUpdatePlaceQuery_FiltersByOwner(t *testing.T) {
	place := models.Place{PlaceID: "p-1", OwnerID: "u-1", Name: "n"}

	query, args, err := buildUpdatePlaceQuery(pgBuilder, place)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE places SET name = $1"))
	assert.True(t, strings.HasSuffix(query, "WHERE id = $12 AND owner_id = $13"))
	require.Len(t, args, 13)
	assert.Equal(t, "p-1", args[11])
	assert.Equal(t, "u-1", args[12])
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(sqliteBuilder, bookingsTable, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bookings WHERE id = ?", query)
	assert.Equal(t, []any{"b-1"}, args)
}

func Test_buildSelectBookingsQuery(t *testing.T) {
	query, args, err := buildSelectBookingsQuery(pgBuilder, sq.Eq{"user_id": "u-1"})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, place_id, user_id, start_date, end_date, total_price, guests, name, phone FROM bookings WHERE user_id = $1 ORDER BY start_date, id",
		query)
	assert.Equal(t, []any{"u-1"}, args)
}
