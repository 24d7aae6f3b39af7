// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by a session token.
//
// The user identifier travels in the standard "sub" claim; the e-mail is a
// private claim. "iat" is always set, "iss" and "exp" only when configured.
type TokenClaims struct {
	// Email is the e-mail of the user the token was issued for.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token wraps a JWT session token with convenience accessors for
// authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// TokenClaims holds the decoded claims of the token.
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature). This is the value stored
	// in the session cookie.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// Identity returns the caller identity carried by the token.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID, Email: t.Email}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
