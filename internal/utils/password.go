// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [ComparePassword] when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match hash")

// HashPassword returns the salted bcrypt hash of password.
//
// cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// [bcrypt.DefaultCost].
//
// Example usage:
//
//	hash, err := utils.HashPassword("pw", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks password against a hash produced by [HashPassword].
// It returns [ErrPasswordMismatch] when they do not match and a wrapped error
// when the hash itself is malformed.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}
