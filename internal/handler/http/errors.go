// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrUnauthenticated is returned when a protected route is called without
	// a session cookie.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidMultipart is returned when an upload request is not a valid
	// multipart form.
	ErrInvalidMultipart = errors.New("invalid multipart form")
)
