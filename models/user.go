// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a portal account: an agency client or an administrator.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is unique across users and always stored lowercased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// IsAdmin grants access to the back-office. It is only ever read from
	// storage, never from a session token.
	IsAdmin bool `json:"isAdmin"`

	// AvatarURL is an optional link to the uploaded avatar image.
	AvatarURL *string `json:"avatarUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the input of register and login operations.
type Credentials struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	// Password is capped at 72 bytes, the most bcrypt hashes.
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// ProfileUpdate carries the self-editable part of a user.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string `validate:"omitempty,min=1,max=100"`
	AvatarURL *string `validate:"omitempty,max=2048"`
}

// PasswordChange is the input of the change-password operation.
type PasswordChange struct {
	CurrentPassword string `validate:"required,max=128"`
	NewPassword     string `validate:"required,min=6,maxbytes=72"`
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	// Search matches name or email, case-insensitively.
	Search string `validate:"omitempty,max=100"`
}
