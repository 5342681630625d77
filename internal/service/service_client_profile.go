package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
)

type clientProfileService struct {
	gate                    Gate
	clientProfileRepository store.ClientProfileRepository
	validator               validators.Validator

	logger *logger.Logger
}

func NewClientProfileService(gate Gate, repository store.ClientProfileRepository, validator validators.Validator, log *logger.Logger) ClientProfileService {
	return &clientProfileService{
		gate:                    gate,
		clientProfileRepository: repository,
		validator:               validator,
		logger:                  log,
	}
}

func (s *clientProfileService) Mine(ctx context.Context) (*models.ClientProfile, error) {
	session, err := s.gate.Caller(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.clientProfileRepository.GetByUserID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Save creates the caller's profile on first use and updates it afterwards.
// Fields of the other client type are dropped before validation.
func (s *clientProfileService) Save(ctx context.Context, profile models.ClientProfile) (models.ClientProfile, error) {
	session, err := s.gate.Caller(ctx)
	if err != nil {
		return models.ClientProfile{}, err
	}

	profile.Normalize()
	for _, field := range []*string{
		profile.LastName, profile.FirstName, profile.MiddleName,
		profile.INN, profile.CompanyName, profile.LegalAddress,
		profile.BIK, profile.BankName, profile.AccountNumber,
	} {
		trimPtr(field)
	}
	if err = s.validator.Validate(ctx, profile); err != nil {
		return models.ClientProfile{}, err
	}

	profile.ID = 0
	profile.UserID = session.UserID
	saved, err := s.clientProfileRepository.Upsert(ctx, profile)
	if err != nil {
		return models.ClientProfile{}, storeError(err, ErrUserNotFound)
	}
	return saved, nil
}
