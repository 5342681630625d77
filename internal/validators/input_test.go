// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/agency-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.Credentials
		wantErr string
	}{
		{
			name:  "valid",
			input: models.Credentials{Name: "Ann", Email: "ann@example.com", Password: "secret1"},
		},
		{
			name:    "missing email",
			input:   models.Credentials{Password: "secret1"},
			wantErr: "invalid_input: email is required",
		},
		{
			name:    "malformed email",
			input:   models.Credentials{Email: "not-an-email", Password: "secret1"},
			wantErr: "invalid_input: email must be a valid email",
		},
		{
			name:    "short password",
			input:   models.Credentials{Email: "ann@example.com", Password: "123"},
			wantErr: "invalid_input: password must be at least 6 characters",
		},
		{
			name:  "password of 72 bytes",
			input: models.Credentials{Email: "ann@example.com", Password: strings.Repeat("x", 72)},
		},
		{
			name:    "password of 73 bytes",
			input:   models.Credentials{Email: "ann@example.com", Password: strings.Repeat("x", 73)},
			wantErr: "invalid_input: password must be at most 72 bytes",
		},
		{
			name:    "multibyte password over 72 bytes",
			input:   models.Credentials{Email: "ann@example.com", Password: strings.Repeat("ж", 40)},
			wantErr: "invalid_input: password must be at most 72 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewInputValidator()

	// a short password must not fail a check scoped to the email
	err := v.Validate(context.Background(), &models.Credentials{Email: "ann@example.com", Password: "1"}, "Email")
	assert.NoError(t, err)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewInputValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "text"), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Custom tags
// ---------------------------------------------------------------------------

func TestValidate_CaseSlug(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CaseInput{Slug: ptr("brand-refresh-2026")}))

	for _, bad := range []string{"Brand", "with space", "under_score", "ünicode"} {
		err := v.Validate(ctx, models.CaseInput{Slug: ptr(bad)})
		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), "slug may contain only lowercase letters, digits and dashes")
	}
}

func TestValidate_CaseTags(t *testing.T) {
	v := NewInputValidator()

	tags := make([]string, 21)
	for i := range tags {
		tags[i] = "t"
	}
	err := v.Validate(context.Background(), models.CaseInput{Tags: &tags})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tags must be at most 20 items")
}

func TestValidate_CaseMediaList(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	valid := []models.CaseMedia{
		{URL: "/a.png", Kind: models.MediaImage},
		{URL: "/b.mp4", Kind: models.MediaVideo, Order: 1},
	}
	assert.NoError(t, v.Validate(ctx, valid))
	assert.NoError(t, v.Validate(ctx, []models.CaseMedia{}))

	invalid := []models.CaseMedia{
		{URL: "/a.png", Kind: models.MediaImage},
		{URL: "/b.gif", Kind: "GIF"},
	}
	err := v.Validate(ctx, invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "kind must be one of: IMAGE VIDEO")
	assert.Contains(t, err.Error(), "media[1]")
}

// ---------------------------------------------------------------------------
// Client profile
// ---------------------------------------------------------------------------

func TestValidate_ClientProfile(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		profile  models.ClientProfile
		contains []string
	}{
		{
			name: "valid individual",
			profile: models.ClientProfile{
				Type: models.ClientIndividual, LastName: ptr("Ivanov"), FirstName: ptr("Ivan"),
				BIK: ptr("044525225"), AccountNumber: ptr("40702810400000000001"),
			},
		},
		{
			name: "valid legal with 12 digit inn",
			profile: models.ClientProfile{
				Type: models.ClientLegal, INN: ptr("500100732259"), CompanyName: ptr("ACME"), LegalAddress: ptr("Moscow"),
			},
		},
		{
			name:     "individual without names",
			profile:  models.ClientProfile{Type: models.ClientIndividual, FirstName: ptr("  ")},
			contains: []string{"lastName is required for individuals", "firstName is required for individuals"},
		},
		{
			name:     "legal without company data",
			profile:  models.ClientProfile{Type: models.ClientLegal},
			contains: []string{"inn is required for legal entities", "companyName is required", "legalAddress is required"},
		},
		{
			name: "malformed banking details",
			profile: models.ClientProfile{
				Type: models.ClientLegal, INN: ptr("12345"), CompanyName: ptr("ACME"), LegalAddress: ptr("Moscow"),
				BIK: ptr("04452522"), AccountNumber: ptr("4070281040000000000x"),
			},
			contains: []string{"inn must be 10 or 12 digits", "bik must be 9 digits", "accountNumber must be 20 digits"},
		},
		{
			name:     "unknown type",
			profile:  models.ClientProfile{Type: "ROBOT"},
			contains: []string{"type must be one of: INDIVIDUAL LEGAL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.profile)
			if len(tt.contains) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			for _, part := range tt.contains {
				assert.Contains(t, err.Error(), part)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Misc models
// ---------------------------------------------------------------------------

func TestValidate_TaskInputEnums(t *testing.T) {
	v := NewInputValidator()

	status := models.TaskStatus("BLOCKED")
	err := v.Validate(context.Background(), models.TaskInput{Status: &status})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status must be one of: TODO IN_PROGRESS REVIEW DONE")
}

func TestValidate_Contact(t *testing.T) {
	v := NewInputValidator()

	err := v.Validate(context.Background(), models.Contact{Name: "Ann", Email: "ann@example.com"})
	require.Error(t, err)
	assert.Equal(t, "invalid_input: message is required", err.Error())
}

func TestErrNoFieldsToUpdate_IsInvalidInput(t *testing.T) {
	assert.ErrorIs(t, ErrNoFieldsToUpdate, ErrInvalidInput)
}
