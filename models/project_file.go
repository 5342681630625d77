// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProjectFile is an uploaded document attached to a project.
type ProjectFile struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"projectId"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProjectFileFilter selects project files; see TaskFilter.
type ProjectFileFilter struct {
	ID        *int64
	ProjectID *int64
	OwnerID   *int64
}
