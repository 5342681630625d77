package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/models"
)

const (
	uploadFormField = "file"

	// multipartOverhead leaves room for part headers and form fields on top
	// of the file size limit.
	multipartOverhead = 1 << 20

	multipartMemory = 8 << 20
)

// upload stores a file and, with a projectId form field, attaches it to the
// project.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, h.settings.MaxUploadSize, func(upload models.Upload) (models.UploadResponse, error) {
		projectID, err := formProjectID(r)
		if err != nil {
			return models.UploadResponse{}, err
		}
		upload.ProjectID = projectID

		object, err := h.services.UploadService.Upload(r.Context(), upload)
		if err != nil {
			return models.UploadResponse{}, err
		}

		resp := models.UploadResponse{OK: true, Name: upload.Name}
		if object.URL != "" {
			resp.URL = object.URL
		} else {
			resp.Path = object.Path
		}
		return resp, nil
	})
}

// uploadAvatar stores an image and makes it the caller's avatar.
func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, service.MaxAvatarSize, func(upload models.Upload) (models.UploadResponse, error) {
		object, err := h.services.UploadService.UploadAvatar(r.Context(), upload)
		if err != nil {
			return models.UploadResponse{}, err
		}
		return models.UploadResponse{OK: true, URL: object.Location(), Name: upload.Name}, nil
	})
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request, limit int64,
	store func(models.Upload) (models.UploadResponse, error)) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, ErrRequestTooLarge)
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequest, err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn().Err(err).Msg("removing multipart temp files")
		}
	}()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, r, service.ErrFileRequired)
		return
	}
	defer file.Close()

	resp, err := store(models.Upload{Name: header.Filename, Size: header.Size, Content: file})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("name", resp.Name).Int64("size", header.Size).Msg("file uploaded")
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("writing upload response")
	}
}

func formProjectID(r *http.Request) (*int64, error) {
	raw := strings.TrimSpace(r.FormValue("projectId"))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, ErrMalformedProjectID
	}
	return &id, nil
}
