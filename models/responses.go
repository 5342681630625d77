// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResult is the outcome of register and login. OK is false when the
// credentials were rejected; Token and User are then empty.
type AuthResult struct {
	OK    bool
	Token Token
	User  User
}

// UploadResponse is returned by the upload endpoints. Exactly one of Path
// (local disk) and URL (object storage) is set for generic uploads; avatar
// uploads always set URL.
type UploadResponse struct {
	OK   bool   `json:"ok"`
	Path string `json:"path,omitempty"`
	URL  string `json:"url,omitempty"`
	Name string `json:"name"`
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	OK      bool   `json:"ok"`
	DB      bool   `json:"db"`
	SiteURL string `json:"siteUrl"`
}

// StoredObject describes a file persisted by an object store.
type StoredObject struct {
	// Key is the storage-relative name of the object.
	Key string
	// Path is set when the object lives on local disk under the public dir.
	Path string
	// URL is set when the object lives in a remote bucket.
	URL      string
	Size     int64
	MimeType string
}

// Location returns the address the front-end should use for the object.
func (o StoredObject) Location() string {
	if o.URL != "" {
		return o.URL
	}
	return o.Path
}
