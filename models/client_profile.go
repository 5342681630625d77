// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ClientType discriminates the two kinds of client profiles.
type ClientType string

const (
	// ClientIndividual is a private person; requires last and first name.
	ClientIndividual ClientType = "INDIVIDUAL"
	// ClientLegal is a company; requires INN, company name and legal address.
	ClientLegal ClientType = "LEGAL"
)

// ClientProfile holds the billing details of a user. Exactly one profile
// exists per user; it is created on first save and updated in place after.
type ClientProfile struct {
	ID     int64      `json:"id"`
	UserID int64      `json:"userId"`
	Type   ClientType `json:"type" validate:"required,oneof=INDIVIDUAL LEGAL"`

	// individual
	LastName   *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	FirstName  *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	MiddleName *string `json:"middleName,omitempty" validate:"omitempty,max=100"`

	// legal
	INN          *string `json:"inn,omitempty" validate:"omitempty,inn"`
	CompanyName  *string `json:"companyName,omitempty" validate:"omitempty,min=1,max=200"`
	LegalAddress *string `json:"legalAddress,omitempty" validate:"omitempty,min=1,max=500"`

	// banking
	BIK           *string `json:"bik,omitempty" validate:"omitempty,bik"`
	BankName      *string `json:"bankName,omitempty" validate:"omitempty,max=200"`
	AccountNumber *string `json:"accountNumber,omitempty" validate:"omitempty,account"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Normalize clears the fields that do not belong to the profile type so that
// individual and legal fields are never stored together.
func (p *ClientProfile) Normalize() {
	switch p.Type {
	case ClientIndividual:
		p.INN, p.CompanyName, p.LegalAddress = nil, nil, nil
	case ClientLegal:
		p.LastName, p.FirstName, p.MiddleName = nil, nil, nil
	}
}
