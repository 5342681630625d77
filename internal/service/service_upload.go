package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/adapter"
	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/gabriel-vasile/mimetype"
)

const (
	// MaxAvatarSize caps avatar uploads.
	MaxAvatarSize int64 = 5 << 20

	// DefaultMaxUploadSize caps generic uploads when not configured.
	DefaultMaxUploadSize int64 = 32 << 20

	sniffLength = 3072
)

var (
	ErrFileRequired = fmt.Errorf("%w: file is required", validators.ErrInvalidInput)
	ErrFileTooLarge = fmt.Errorf("%w: file is too large", validators.ErrInvalidInput)
	ErrNotAnImage   = fmt.Errorf("%w: avatar must be a png, jpeg, gif or webp image", validators.ErrInvalidInput)
)

type uploadService struct {
	gate                  Gate
	userRepository        store.UserRepository
	projectRepository     store.ProjectRepository
	projectFileRepository store.ProjectFileRepository
	objects               adapter.ObjectStore
	names                 *utils.UUIDGenerator
	maxUploadSize         int64

	logger *logger.Logger
}

func NewUploadService(gate Gate, storages *store.Storages, objects adapter.ObjectStore, cfg config.Files, log *logger.Logger) UploadService {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}

	return &uploadService{
		gate:                  gate,
		userRepository:        storages.UserRepository,
		projectRepository:     storages.ProjectRepository,
		projectFileRepository: storages.ProjectFileRepository,
		objects:               objects,
		names:                 utils.NewUUIDGenerator(),
		maxUploadSize:         maxUploadSize,
		logger:                log,
	}
}

func (s *uploadService) Upload(ctx context.Context, upload models.Upload) (models.StoredObject, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return models.StoredObject{}, err
	}
	if err = checkUpload(upload, s.maxUploadSize); err != nil {
		return models.StoredObject{}, err
	}
	if upload.ProjectID != nil {
		if err = checkProjectAccess(ctx, s.projectRepository, scope, *upload.ProjectID); err != nil {
			return models.StoredObject{}, err
		}
	}

	content, detected, err := sniff(upload.Content)
	if err != nil {
		return models.StoredObject{}, err
	}

	object, err := s.objects.Put(ctx, s.names.ObjectName(detected.Extension()), content, upload.Size, detected.String())
	if err != nil {
		return models.StoredObject{}, fmt.Errorf("storing upload: %w", err)
	}

	log := logger.FromContext(ctx)
	if upload.ProjectID != nil {
		_, err = s.projectFileRepository.Create(ctx, models.ProjectFile{
			ProjectID: *upload.ProjectID,
			Name:      cleanFileName(upload.Name),
			URL:       object.Location(),
			Size:      object.Size,
			MimeType:  object.MimeType,
		})
		if err != nil {
			if delErr := s.objects.Delete(ctx, object.Key); delErr != nil {
				log.Err(delErr).Str("key", object.Key).Msg("orphaned upload was not removed")
			}
			return models.StoredObject{}, storeError(err, ErrProjectNotFound)
		}
	}

	log.Info().Int64("user_id", scope.UserID).Str("key", object.Key).Int64("size", object.Size).Msg("file uploaded")
	return object, nil
}

func (s *uploadService) UploadAvatar(ctx context.Context, upload models.Upload) (models.StoredObject, error) {
	session, err := s.gate.Caller(ctx)
	if err != nil {
		return models.StoredObject{}, err
	}
	if err = checkUpload(upload, MaxAvatarSize); err != nil {
		return models.StoredObject{}, err
	}

	content, detected, err := sniff(upload.Content)
	if err != nil {
		return models.StoredObject{}, err
	}
	if !models.IsInlineImageType(detected.String()) {
		return models.StoredObject{}, ErrNotAnImage
	}

	object, err := s.objects.Put(ctx, s.names.ObjectName(detected.Extension()), content, upload.Size, detected.String())
	if err != nil {
		return models.StoredObject{}, fmt.Errorf("storing avatar: %w", err)
	}

	avatarURL := object.Location()
	if _, err = s.userRepository.UpdateProfile(ctx, session.UserID, models.ProfileUpdate{AvatarURL: &avatarURL}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.StoredObject{}, ErrUnauthorized
		}
		return models.StoredObject{}, err
	}
	return object, nil
}

func checkUpload(upload models.Upload, limit int64) error {
	if upload.Content == nil || cleanFileName(upload.Name) == "" {
		return ErrFileRequired
	}
	if upload.Size > limit {
		return ErrFileTooLarge
	}
	return nil
}

// sniff detects the type of content and returns a reader that still yields
// the whole content.
func sniff(content io.Reader) (io.Reader, *mimetype.MIME, error) {
	head := make([]byte, sniffLength)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, nil, fmt.Errorf("reading upload: %w", err)
	}
	head = head[:n]

	return io.MultiReader(bytes.NewReader(head), content), mimetype.Detect(head), nil
}

func cleanFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
