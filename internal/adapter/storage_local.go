package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
)

// UploadsDir is the public-dir subdirectory local uploads are written to.
const UploadsDir = "uploads"

type localObjectStore struct {
	dir string

	logger *logger.Logger
}

// NewLocalObjectStore stores objects under <publicDir>/uploads so the static
// file server can serve them at /uploads/<key>.
func NewLocalObjectStore(publicDir string, logger *logger.Logger) (ObjectStore, error) {
	dir := filepath.Join(publicDir, UploadsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads dir %q: %w", dir, err)
	}

	return &localObjectStore{dir: dir, logger: logger}, nil
}

func (s *localObjectStore) Put(ctx context.Context, key string, content io.Reader, size int64, mimeType string) (models.StoredObject, error) {
	if err := checkObjectKey(key); err != nil {
		return models.StoredObject{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.StoredObject{}, err
	}

	target := filepath.Join(s.dir, key)
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return models.StoredObject{}, fmt.Errorf("error creating %q: %w", key, err)
	}

	written, err := io.Copy(f, content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return models.StoredObject{}, fmt.Errorf("error writing %q: %w", key, err)
	}

	if size > 0 && written != size {
		s.logger.Warn().Str("func", "*localObjectStore.Put").
			Str("key", key).Int64("declared", size).Int64("written", written).
			Msg("upload size differs from declared size")
	}

	return models.StoredObject{
		Key:      key,
		Path:     path.Join("/", UploadsDir, key),
		Size:     written,
		MimeType: mimeType,
	}, nil
}

func (s *localObjectStore) Delete(ctx context.Context, key string) error {
	if err := checkObjectKey(key); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing %q: %w", key, err)
	}
	return nil
}

// checkObjectKey rejects keys that could escape the storage root.
func checkObjectKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}
	return nil
}
