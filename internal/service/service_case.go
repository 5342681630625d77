package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
)

// caseService manages portfolio cases. Unpublished cases exist for admins
// only: every other reader gets case_not_found for them.
type caseService struct {
	gate           Gate
	caseRepository store.CaseRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewCaseService(gate Gate, repository store.CaseRepository, validator validators.Validator, log *logger.Logger) CaseService {
	return &caseService{
		gate:           gate,
		caseRepository: repository,
		validator:      validator,
		logger:         log,
	}
}

func (s *caseService) List(ctx context.Context, includeUnpublished bool) ([]models.Case, error) {
	publishedOnly := !includeUnpublished || !s.gate.IsAdmin(ctx)

	cases, err := s.caseRepository.List(ctx, models.CaseFilter{PublishedOnly: publishedOnly})
	if err != nil {
		return nil, err
	}
	if err = s.attachMedia(ctx, cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (s *caseService) BySlug(ctx context.Context, slug string) (models.Case, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return models.Case{}, ErrCaseNotFound
	}

	c, err := s.caseRepository.Get(ctx, models.CaseFilter{Slug: &slug, PublishedOnly: !s.gate.IsAdmin(ctx)})
	if err != nil {
		return models.Case{}, storeError(err, ErrCaseNotFound)
	}
	return s.withMedia(ctx, c)
}

func (s *caseService) Create(ctx context.Context, input models.CaseInput) (models.Case, error) {
	if _, err := s.gate.RequireAdmin(ctx); err != nil {
		return models.Case{}, err
	}

	trimCaseInput(&input)
	if err := requireString(input.Slug, "slug"); err != nil {
		return models.Case{}, err
	}
	if err := requireString(input.Title, "title"); err != nil {
		return models.Case{}, err
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Case{}, err
	}

	c := models.Case{
		Slug:     *input.Slug,
		Title:    *input.Title,
		CoverURL: input.CoverURL,
		Tags:     []string{},
	}
	if input.Client != nil {
		c.Client = *input.Client
	}
	if input.Summary != nil {
		c.Summary = *input.Summary
	}
	if input.Content != nil {
		c.Content = *input.Content
	}
	if input.Tags != nil {
		c.Tags = *input.Tags
	}
	if input.Published != nil {
		c.Published = *input.Published
	}

	created, err := s.caseRepository.Create(ctx, c)
	if err != nil {
		return models.Case{}, caseStoreError(err)
	}
	return created, nil
}

func (s *caseService) Update(ctx context.Context, id int64, input models.CaseInput) (models.Case, error) {
	if _, err := s.gate.RequireAdmin(ctx); err != nil {
		return models.Case{}, err
	}

	if input == (models.CaseInput{}) {
		return models.Case{}, validators.ErrNoFieldsToUpdate
	}
	trimCaseInput(&input)
	if input.Slug != nil {
		if err := requireString(input.Slug, "slug"); err != nil {
			return models.Case{}, err
		}
	}
	if input.Title != nil {
		if err := requireString(input.Title, "title"); err != nil {
			return models.Case{}, err
		}
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Case{}, err
	}

	updated, err := s.caseRepository.Update(ctx, id, input)
	if err != nil {
		return models.Case{}, caseStoreError(err)
	}
	return s.withMedia(ctx, updated)
}

func (s *caseService) Delete(ctx context.Context, id int64) error {
	admin, err := s.gate.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	if err = s.caseRepository.Delete(ctx, id); err != nil {
		return storeError(err, ErrCaseNotFound)
	}

	logger.FromContext(ctx).Info().Int64("admin_id", admin.ID).Int64("case_id", id).Msg("case deleted")
	return nil
}

// SetMedia replaces the whole media list of a case in one transaction.
func (s *caseService) SetMedia(ctx context.Context, caseID int64, media []models.CaseMedia) (models.Case, error) {
	if _, err := s.gate.RequireAdmin(ctx); err != nil {
		return models.Case{}, err
	}

	if media == nil {
		media = []models.CaseMedia{}
	}
	for i := range media {
		media[i].ID = 0
		media[i].CaseID = caseID
		media[i].URL = strings.TrimSpace(media[i].URL)
		media[i].Caption = strings.TrimSpace(media[i].Caption)
	}
	if err := s.validator.Validate(ctx, media); err != nil {
		return models.Case{}, err
	}

	stored, err := s.caseRepository.ReplaceMedia(ctx, caseID, media)
	if err != nil {
		return models.Case{}, storeError(err, ErrCaseNotFound)
	}

	c, err := s.caseRepository.Get(ctx, models.CaseFilter{ID: &caseID})
	if err != nil {
		return models.Case{}, storeError(err, ErrCaseNotFound)
	}
	c.Media = stored
	return c, nil
}

func (s *caseService) withMedia(ctx context.Context, c models.Case) (models.Case, error) {
	cases := []models.Case{c}
	if err := s.attachMedia(ctx, cases); err != nil {
		return models.Case{}, err
	}
	return cases[0], nil
}

// attachMedia loads the media of all cases with a single query.
func (s *caseService) attachMedia(ctx context.Context, cases []models.Case) error {
	if len(cases) == 0 {
		return nil
	}

	ids := make([]int64, len(cases))
	for i, c := range cases {
		ids[i] = c.ID
	}
	media, err := s.caseRepository.ListMedia(ctx, ids...)
	if err != nil {
		return err
	}

	byCase := make(map[int64][]models.CaseMedia, len(cases))
	for _, m := range media {
		byCase[m.CaseID] = append(byCase[m.CaseID], m)
	}
	for i := range cases {
		cases[i].Media = byCase[cases[i].ID]
		if cases[i].Media == nil {
			cases[i].Media = []models.CaseMedia{}
		}
	}
	return nil
}

func trimCaseInput(input *models.CaseInput) {
	trimPtr(input.Slug)
	trimPtr(input.Title)
	trimPtr(input.Client)
	trimPtr(input.CoverURL)
	if input.Tags != nil {
		tags := make([]string, 0, len(*input.Tags))
		for _, tag := range *input.Tags {
			tags = append(tags, strings.TrimSpace(tag))
		}
		input.Tags = &tags
	}
}

func caseStoreError(err error) error {
	if errors.Is(err, store.ErrAlreadyExists) {
		return ErrSlugTaken
	}
	return storeError(err, ErrCaseNotFound)
}
