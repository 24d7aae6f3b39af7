// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the caller resolved from a verified session token.
type Identity struct {
	UserID string
	Email  string
}

// IsAnonymous reports whether no user was resolved for the request.
func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}
