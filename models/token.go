// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session is the identity asserted by a verified session token.
// It never carries a role: the admin flag is always reloaded from storage.
type Session struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// SessionClaims is the JWT claim set of a session token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, sub, iat,
// exp) and adds the identity fields of [Session] as private claims.
type SessionClaims struct {
	Session
	jwt.RegisteredClaims
}

// Token wraps a signed session token together with the identity it carries.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Session is the identity embedded in the token.
	Session Session `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
