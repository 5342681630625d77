package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for trace ids and
// uploaded object names.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ObjectName returns a fresh storage key with the given extension, which
// should come from the detected content type. Malformed extensions are
// dropped. Client-provided names are never used as keys.
func (g *UUIDGenerator) ObjectName(ext string) string {
	ext = strings.ToLower(ext)
	if !validExtension(ext) {
		ext = ""
	}
	return g.Generate() + ext
}

func validExtension(ext string) bool {
	if len(ext) < 2 || len(ext) > 10 || ext[0] != '.' {
		return false
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
