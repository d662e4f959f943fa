// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package models

import "time"

// Cipher is the encrypted, persisted form of a single vault item. Every
// sensitive field is an EncString; the database and the server treat them
// as opaque strings. Non-secret metadata (folder, favorite, collection
// membership, dates) is stored in the clear.
type Cipher struct {
	// ID is assigned client-side on creation and stable thereafter.
	ID string `json:"id"`

	// OrganizationID is empty for personally-owned items. When set, the
	// item is encrypted under that organization's shared key.
	OrganizationID string `json:"organizationId,omitempty"`

	FolderID string     `json:"folderId,omitempty"`
	Type     CipherType `json:"type"`

	Name  *EncString `json:"name"`
	Notes *EncString `json:"notes,omitempty"`

	// Key is an optional per-cipher wrapping key, itself encrypted under
	// the owner's key. When present, all item fields are encrypted under
	// the unwrapped inner key instead of the owner key directly.
	Key *EncString `json:"key,omitempty"`

	// Exactly one of the four payloads below is non-nil, selected by Type.
	Login      *Login      `json:"login,omitempty"`
	Card       *Card       `json:"card,omitempty"`
	Identity   *Identity   `json:"identity,omitempty"`
	SecureNote *SecureNote `json:"secureNote,omitempty"`

	Fields          []Field           `json:"fields,omitempty"`
	Attachments     []Attachment      `json:"attachments,omitempty"`
	PasswordHistory []PasswordHistory `json:"passwordHistory,omitempty"`

	Favorite            bool               `json:"favorite"`
	Edit                bool               `json:"edit"`
	ViewPassword        bool               `json:"viewPassword"`
	OrganizationUseTotp bool               `json:"organizationUseTotp"`
	Reprompt            CipherRepromptType `json:"reprompt"`
	CollectionIDs       []string           `json:"collectionIds,omitempty"`

	RevisionDate *time.Time `json:"revisionDate,omitempty"`
	CreationDate *time.Time `json:"creationDate,omitempty"`
	DeletedDate  *time.Time `json:"deletedDate,omitempty"`
}

// KeyIdentifier returns the organization id whose key protects this item,
// or the empty string when the personal key is used.
func (c *Cipher) KeyIdentifier() string {
	return c.OrganizationID
}

// HasAttachment reports whether the cipher references attachmentID.
func (c *Cipher) HasAttachment(attachmentID string) bool {
	for _, a := range c.Attachments {
		if a.ID == attachmentID {
			return true
		}
	}
	return false
}

// Login is the encrypted counterpart of LoginView.
type Login struct {
	Username *EncString `json:"username,omitempty"`
	Password *EncString `json:"password,omitempty"`
	TOTP     *EncString `json:"totp,omitempty"`
	URIs     []LoginURI `json:"uris,omitempty"`

	// PasswordRevisionDate tracks when the password last changed. It is
	// bumped only when a new history entry is captured.
	PasswordRevisionDate *time.Time `json:"passwordRevisionDate,omitempty"`

	AutofillOnPageLoad *bool `json:"autofillOnPageLoad,omitempty"`
}

// LoginURI is a single resource-matching rule of a login item.
type LoginURI struct {
	URI   *EncString    `json:"uri,omitempty"`
	Match *URIMatchType `json:"match,omitempty"`
}

// Card is the encrypted counterpart of CardView.
type Card struct {
	CardholderName *EncString `json:"cardholderName,omitempty"`
	Brand          *EncString `json:"brand,omitempty"`
	Number         *EncString `json:"number,omitempty"`
	ExpMonth       *EncString `json:"expMonth,omitempty"`
	ExpYear        *EncString `json:"expYear,omitempty"`
	Code           *EncString `json:"code,omitempty"`
}

// Identity is the encrypted counterpart of IdentityView.
type Identity struct {
	Title          *EncString `json:"title,omitempty"`
	FirstName      *EncString `json:"firstName,omitempty"`
	MiddleName     *EncString `json:"middleName,omitempty"`
	LastName       *EncString `json:"lastName,omitempty"`
	Address1       *EncString `json:"address1,omitempty"`
	Address2       *EncString `json:"address2,omitempty"`
	Address3       *EncString `json:"address3,omitempty"`
	City           *EncString `json:"city,omitempty"`
	State          *EncString `json:"state,omitempty"`
	PostalCode     *EncString `json:"postalCode,omitempty"`
	Country        *EncString `json:"country,omitempty"`
	Company        *EncString `json:"company,omitempty"`
	Email          *EncString `json:"email,omitempty"`
	Phone          *EncString `json:"phone,omitempty"`
	SSN            *EncString `json:"ssn,omitempty"`
	Username       *EncString `json:"username,omitempty"`
	PassportNumber *EncString `json:"passportNumber,omitempty"`
	LicenseNumber  *EncString `json:"licenseNumber,omitempty"`
}

// SecureNote has no fields of its own; the note text lives in Cipher.Notes.
type SecureNote struct {
	Type SecureNoteType `json:"type"`
}

// Field is an encrypted user-defined custom field.
type Field struct {
	Name     *EncString   `json:"name,omitempty"`
	Value    *EncString   `json:"value,omitempty"`
	Type     FieldType    `json:"type"`
	LinkedID LinkedIDType `json:"linkedId,omitempty"`
}

// PasswordHistory is a single captured previous secret, newest first in
// the cipher's history list.
type PasswordHistory struct {
	Password     *EncString `json:"password"`
	LastUsedDate time.Time  `json:"lastUsedDate"`
}

// Attachment references an encrypted binary blob stored server-side.
// The record is created by the server on upload registration and is
// immutable afterwards except for deletion.
type Attachment struct {
	ID       string `json:"id"`
	URL      string `json:"url,omitempty"`
	Size     int64  `json:"size,string"`
	SizeName string `json:"sizeName,omitempty"`

	// Key is the per-attachment data key, wrapped under the item's key.
	Key      *EncString `json:"key,omitempty"`
	FileName *EncString `json:"fileName,omitempty"`
}
