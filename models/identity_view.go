package models

import "strings"

// IdentityView is the plaintext form of an identity item.
type IdentityView struct {
	Title          string `json:"title,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	MiddleName     string `json:"middleName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Address1       string `json:"address1,omitempty"`
	Address2       string `json:"address2,omitempty"`
	Address3       string `json:"address3,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	Country        string `json:"country,omitempty"`
	Company        string `json:"company,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	SSN            string `json:"ssn,omitempty"`
	Username       string `json:"username,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
}

// SubTitle renders "First Last" for list views.
func (i *IdentityView) SubTitle() string {
	parts := make([]string, 0, 2)
	if i.FirstName != "" {
		parts = append(parts, i.FirstName)
	}
	if i.LastName != "" {
		parts = append(parts, i.LastName)
	}
	return strings.Join(parts, " ")
}

// FullName renders "Title First Middle Last".
func (i *IdentityView) FullName() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{i.Title, i.FirstName, i.MiddleName, i.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
