// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package models

import "time"

// CipherView is the plaintext, in-memory form of a vault item. It exists
// only between a decrypt and the UI (or user input and an encrypt) and is
// never persisted anywhere.
type CipherView struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organizationId,omitempty"`
	FolderID       string     `json:"folderId,omitempty"`
	Type           CipherType `json:"type"`

	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`

	Login      LoginView      `json:"login,omitempty"`
	Card       CardView       `json:"card,omitempty"`
	Identity   IdentityView   `json:"identity,omitempty"`
	SecureNote SecureNoteView `json:"secureNote,omitempty"`

	Fields          []FieldView           `json:"fields,omitempty"`
	Attachments     []AttachmentView      `json:"attachments,omitempty"`
	PasswordHistory []PasswordHistoryView `json:"passwordHistory,omitempty"`

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
func (v *CipherView) KeyIdentifier() string {
	return v.OrganizationID
}

// SubTitle returns the secondary display line for list views, delegating
// to the active item type.
func (v *CipherView) SubTitle() string {
	switch v.Type {
	case CipherTypeLogin:
		return v.Login.SubTitle()
	case CipherTypeCard:
		return v.Card.SubTitle()
	case CipherTypeIdentity:
		return v.Identity.SubTitle()
	default:
		return ""
	}
}

// HasFields reports whether the item carries any custom fields.
func (v *CipherView) HasFields() bool { return len(v.Fields) > 0 }

// HasAttachments reports whether the item carries any attachments.
func (v *CipherView) HasAttachments() bool { return len(v.Attachments) > 0 }

// IsDeleted reports whether the item sits in the trash.
func (v *CipherView) IsDeleted() bool { return v.DeletedDate != nil }

// LinkedFieldValue resolves the current value of a linked field through
// the static registration table for the item's type.
func (v *CipherView) LinkedFieldValue(id LinkedIDType) string {
	opt, ok := linkedFieldRegistry[v.Type][id]
	if !ok {
		return ""
	}
	return opt.Value(v)
}

// LoginView is the plaintext form of a login item.
type LoginView struct {
	Username string         `json:"username,omitempty"`
	Password string         `json:"password,omitempty"`
	TOTP     string         `json:"totp,omitempty"`
	URIs     []LoginURIView `json:"uris,omitempty"`

	PasswordRevisionDate *time.Time `json:"passwordRevisionDate,omitempty"`
	AutofillOnPageLoad   *bool      `json:"autofillOnPageLoad,omitempty"`
}

// URI returns the first configured URI, the one shown in list views.
func (l *LoginView) URI() string {
	if len(l.URIs) == 0 {
		return ""
	}
	return l.URIs[0].URI
}

// MaskedPassword renders the password as a fixed-width mask without
// revealing its length.
func (l *LoginView) MaskedPassword() string {
	if l.Password == "" {
		return ""
	}
	return "••••••••"
}

// SubTitle is the username.
func (l *LoginView) SubTitle() string { return l.Username }

// HasTOTP reports whether a one-time-password seed is configured.
func (l *LoginView) HasTOTP() bool { return l.TOTP != "" }

// LoginURIView is the plaintext form of a login URI rule.
type LoginURIView struct {
	URI   string        `json:"uri,omitempty"`
	Match *URIMatchType `json:"match,omitempty"`
}

// SecureNoteView is the plaintext form of a secure note; the note body
// lives in CipherView.Notes.
type SecureNoteView struct {
	Type SecureNoteType `json:"type"`
}

// FieldView is the plaintext form of a custom field.
type FieldView struct {
	Name     string       `json:"name,omitempty"`
	Value    string       `json:"value,omitempty"`
	Type     FieldType    `json:"type"`
	LinkedID LinkedIDType `json:"linkedId,omitempty"`
}

// MaskedValue renders a hidden field's value as a fixed mask.
func (f *FieldView) MaskedValue() string {
	if f.Value == "" {
		return ""
	}
	return "••••••••"
}

// PasswordHistoryView is a plaintext previous secret with the moment it
// was superseded.
type PasswordHistoryView struct {
	Password     string    `json:"password"`
	LastUsedDate time.Time `json:"lastUsedDate"`
}

// AttachmentView is the plaintext attachment descriptor: the decrypted
// filename plus the server-side metadata copied as-is.
type AttachmentView struct {
	ID       string `json:"id"`
	URL      string `json:"url,omitempty"`
	Size     int64  `json:"size"`
	SizeName string `json:"sizeName,omitempty"`
	FileName string `json:"fileName,omitempty"`

	// Key is the unwrapped per-attachment data key, kept only in memory
	// for downloading and decrypting the blob.
	Key []byte `json:"-"`
}
