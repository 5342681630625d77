// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MediaKind tells the front-end how to render a case media item.
type MediaKind string

const (
	MediaImage MediaKind = "IMAGE"
	MediaVideo MediaKind = "VIDEO"
)

// Case is an admin-authored portfolio entry. Unpublished cases are visible to
// admins only.
type Case struct {
	ID        int64       `json:"id"`
	Slug      string      `json:"slug"`
	Title     string      `json:"title"`
	Client    string      `json:"client"`
	Summary   string      `json:"summary"`
	Content   string      `json:"content"`
	CoverURL  *string     `json:"coverUrl,omitempty"`
	Tags      []string    `json:"tags"`
	Published bool        `json:"published"`
	Media     []CaseMedia `json:"media"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// CaseMedia is one element of the ordered media list of a case.
type CaseMedia struct {
	ID      int64     `json:"id"`
	CaseID  int64     `json:"caseId"`
	URL     string    `json:"url" validate:"required,max=2048"`
	Kind    MediaKind `json:"kind" validate:"required,oneof=IMAGE VIDEO"`
	Caption string    `json:"caption" validate:"max=500"`
	Order   int       `json:"order" validate:"gte=0"`
}

// CaseInput is used for creation (Slug and Title required) and partial update.
type CaseInput struct {
	Slug      *string   `validate:"omitempty,slug,max=100"`
	Title     *string   `validate:"omitempty,min=1,max=200"`
	Client    *string   `validate:"omitempty,max=200"`
	Summary   *string   `validate:"omitempty,max=1000"`
	Content   *string   `validate:"omitempty,max=50000"`
	CoverURL  *string   `validate:"omitempty,max=2048"`
	Tags      *[]string `validate:"omitempty,max=20,dive,min=1,max=50"`
	Published *bool
}

// CaseFilter selects cases. PublishedOnly is forced for non-admin readers.
type CaseFilter struct {
	ID            *int64
	Slug          *string
	PublishedOnly bool
}
