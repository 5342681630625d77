// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Contact is an immutable lead submitted through the public contact form.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Email     string    `json:"email" validate:"required,email,max=254"`
	Phone     *string   `json:"phone,omitempty" validate:"omitempty,max=40"`
	Company   *string   `json:"company,omitempty" validate:"omitempty,max=200"`
	Message   string    `json:"message" validate:"required,min=1,max=5000"`
	Reason    *string   `json:"reason,omitempty" validate:"omitempty,min=1,max=50"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactFilter narrows the admin contact listing.
type ContactFilter struct {
	Reason *string `validate:"omitempty,min=1,max=50"`
}
