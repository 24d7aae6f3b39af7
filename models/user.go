// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a marketplace account used for authentication and as the
// owner of listings and bookings.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 string).
	UserID string `json:"id" bson:"_id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email" bson:"email"`

	// Password carries the plain-text password on the way in (register,
	// login requests). It is cleared before the user is persisted.
	Password string `json:"password,omitempty" bson:"-"`

	// PasswordHash is the salted bcrypt hash of the password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-" bson:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-" bson:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the subset of user fields that may be sent to clients.
func (u User) Public() PublicUser {
	return PublicUser{UserID: u.UserID, Email: u.Email}
}

// PublicUser is the client-facing projection of [User].
type PublicUser struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}
