package models

import (
	"io"
	"path"
	"strings"
)

// SuggestionKind selects a DaData suggestions endpoint.
type SuggestionKind string

const (
	SuggestBank  SuggestionKind = "bank"
	SuggestParty SuggestionKind = "party"
)

// EmptySuggestions is returned to the front-end whenever a lookup fails.
const EmptySuggestions = `{"suggestions":[]}`

// MailMessage is a plain-text email.
type MailMessage struct {
	To      []string
	Subject string
	Body    string
}

// Upload is a file received from the client, before it is stored.
type Upload struct {
	// Name is the client-supplied file name. It is never used as a storage key.
	Name    string
	Size    int64
	Content io.Reader

	// ProjectID attaches the stored file to a project when set.
	ProjectID *int64
}

// inlineImages lists the raster image types accepted as avatars and served
// inline from the uploads dir, keyed by MIME type.
var inlineImages = map[string][]string{
	"image/png":  {".png"},
	"image/jpeg": {".jpg", ".jpeg"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
}

// IsInlineImageType reports whether mimeType (parameters ignored) is a raster
// image that may be shown inline.
func IsInlineImageType(mimeType string) bool {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	_, ok := inlineImages[strings.ToLower(strings.TrimSpace(mimeType))]
	return ok
}

// IsInlineImagePath reports whether the extension of p belongs to a raster
// image type.
func IsInlineImagePath(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	for _, exts := range inlineImages {
		for _, e := range exts {
			if e == ext {
				return true
			}
		}
	}
	return false
}
