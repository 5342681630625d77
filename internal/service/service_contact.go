package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/adapter"
	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/metrics"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
)

type contactService struct {
	gate              Gate
	contactRepository store.ContactRepository
	mailer            adapter.Mailer
	validator         validators.Validator

	notifyTo string
	siteURL  string

	logger *logger.Logger
}

func NewContactService(gate Gate, repository store.ContactRepository, mailer adapter.Mailer, validator validators.Validator, cfg config.StructuredConfig, log *logger.Logger) ContactService {
	return &contactService{
		gate:              gate,
		contactRepository: repository,
		mailer:            mailer,
		validator:         validator,
		notifyTo:          strings.TrimSpace(cfg.Mail.NotifyTo),
		siteURL:           cfg.App.SiteURL,
		logger:            log,
	}
}

// Submit stores a lead from the public contact form and notifies the agency
// by email. The notification is best effort: a mail failure is logged and
// the submission still succeeds.
func (s *contactService) Submit(ctx context.Context, contact models.Contact) (models.Contact, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = normalizeEmail(contact.Email)
	contact.Message = strings.TrimSpace(contact.Message)
	trimPtr(contact.Phone)
	trimPtr(contact.Company)
	trimPtr(contact.Reason)
	if err := s.validator.Validate(ctx, contact); err != nil {
		return models.Contact{}, err
	}

	contact.ID = 0
	created, err := s.contactRepository.Create(ctx, contact)
	if err != nil {
		return models.Contact{}, err
	}

	s.notify(ctx, created)
	return created, nil
}

func (s *contactService) List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	if _, err := s.gate.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	trimPtr(filter.Reason)
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, err
	}

	return s.contactRepository.List(ctx, filter)
}

func (s *contactService) notify(ctx context.Context, contact models.Contact) {
	if s.notifyTo == "" {
		return
	}
	log := logger.FromContext(ctx)

	err := s.mailer.Send(ctx, models.MailMessage{
		To:      []string{s.notifyTo},
		Subject: "New contact request from " + contact.Name,
		Body:    contactMailBody(contact, s.siteURL),
	})
	switch {
	case err == nil:
		log.Debug().Int64("contact_id", contact.ID).Msg("contact notification sent")
	case errors.Is(err, adapter.ErrMailDisabled):
		log.Debug().Int64("contact_id", contact.ID).Msg("mail is disabled, notification skipped")
	default:
		metrics.UpstreamFailuresTotal.WithLabelValues("mail").Inc()
		log.Err(err).Int64("contact_id", contact.ID).Msg("contact notification failed")
	}
}

func contactMailBody(contact models.Contact, siteURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", contact.Name)
	fmt.Fprintf(&b, "Email: %s\n", contact.Email)
	if contact.Phone != nil {
		fmt.Fprintf(&b, "Phone: %s\n", *contact.Phone)
	}
	if contact.Company != nil {
		fmt.Fprintf(&b, "Company: %s\n", *contact.Company)
	}
	if contact.Reason != nil {
		fmt.Fprintf(&b, "Reason: %s\n", *contact.Reason)
	}
	fmt.Fprintf(&b, "\n%s\n", contact.Message)
	if siteURL != "" {
		fmt.Fprintf(&b, "\n--\n%s/admin/contacts\n", strings.TrimRight(siteURL, "/"))
	}
	return b.String()
}
