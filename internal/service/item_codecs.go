// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package service

import (
	"fmt"

	"github.com/solovyev/go-vault-cipher/internal/crypto"
	"github.com/solovyev/go-vault-cipher/models"
)

// Per-type payload codecs. Each pair maps one item variant between its
// plaintext view and its encrypted form; non-secret metadata (URI match
// rules, secure-note subtype, flags) passes through verbatim.

// encryptItem dispatches on the item type and fills the matching payload
// slot of c. Exactly one slot ends up non-nil.
func (s *CipherService) encryptItem(c *models.Cipher, view *models.CipherView, key *crypto.SymmetricCryptoKey) error {
	var err error
	switch view.Type {
	case models.CipherTypeLogin:
		c.Login, err = s.encryptLogin(&view.Login, key)
	case models.CipherTypeCard:
		c.Card, err = s.encryptCard(&view.Card, key)
	case models.CipherTypeIdentity:
		c.Identity, err = s.encryptIdentity(&view.Identity, key)
	case models.CipherTypeSecureNote:
		c.SecureNote = &models.SecureNote{Type: view.SecureNote.Type}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedCipherType, view.Type)
	}
	return err
}

func (s *CipherService) encryptLogin(view *models.LoginView, key *crypto.SymmetricCryptoKey) (*models.Login, error) {
	login := &models.Login{
		PasswordRevisionDate: view.PasswordRevisionDate,
		AutofillOnPageLoad:   view.AutofillOnPageLoad,
	}

	var err error
	if login.Username, err = s.encryptString(view.Username, key); err != nil {
		return nil, fmt.Errorf("encrypt username: %w", err)
	}
	if login.Password, err = s.encryptString(view.Password, key); err != nil {
		return nil, fmt.Errorf("encrypt password: %w", err)
	}
	if login.TOTP, err = s.encryptString(view.TOTP, key); err != nil {
		return nil, fmt.Errorf("encrypt totp: %w", err)
	}

	for _, u := range view.URIs {
		uri, err := s.encryptString(u.URI, key)
		if err != nil {
			return nil, fmt.Errorf("encrypt uri: %w", err)
		}
		login.URIs = append(login.URIs, models.LoginURI{URI: uri, Match: u.Match})
	}

	return login, nil
}

func (s *CipherService) decryptLogin(login *models.Login, key *crypto.SymmetricCryptoKey, cipherID string) models.LoginView {
	if login == nil {
		return models.LoginView{}
	}

	view := models.LoginView{
		Username:             s.decryptString(login.Username, key, cipherID, "username"),
		Password:             s.decryptString(login.Password, key, cipherID, "password"),
		TOTP:                 s.decryptString(login.TOTP, key, cipherID, "totp"),
		PasswordRevisionDate: login.PasswordRevisionDate,
		AutofillOnPageLoad:   login.AutofillOnPageLoad,
	}
	for _, u := range login.URIs {
		view.URIs = append(view.URIs, models.LoginURIView{
			URI:   s.decryptString(u.URI, key, cipherID, "uri"),
			Match: u.Match,
		})
	}
	return view
}

func (s *CipherService) encryptCard(view *models.CardView, key *crypto.SymmetricCryptoKey) (*models.Card, error) {
	card := &models.Card{}
	for _, f := range []struct {
		name  string
		plain string
		dst   **models.EncString
	}{
		{"cardholder name", view.CardholderName, &card.CardholderName},
		{"brand", view.Brand, &card.Brand},
		{"number", view.Number, &card.Number},
		{"expiration month", view.ExpMonth, &card.ExpMonth},
		{"expiration year", view.ExpYear, &card.ExpYear},
		{"code", view.Code, &card.Code},
	} {
		enc, err := s.encryptString(f.plain, key)
		if err != nil {
			return nil, fmt.Errorf("encrypt %s: %w", f.name, err)
		}
		*f.dst = enc
	}
	return card, nil
}

func (s *CipherService) decryptCard(card *models.Card, key *crypto.SymmetricCryptoKey, cipherID string) models.CardView {
	if card == nil {
		return models.CardView{}
	}
	return models.CardView{
		CardholderName: s.decryptString(card.CardholderName, key, cipherID, "cardholder name"),
		Brand:          s.decryptString(card.Brand, key, cipherID, "brand"),
		Number:         s.decryptString(card.Number, key, cipherID, "number"),
		ExpMonth:       s.decryptString(card.ExpMonth, key, cipherID, "expiration month"),
		ExpYear:        s.decryptString(card.ExpYear, key, cipherID, "expiration year"),
		Code:           s.decryptString(card.Code, key, cipherID, "code"),
	}
}

func (s *CipherService) encryptIdentity(view *models.IdentityView, key *crypto.SymmetricCryptoKey) (*models.Identity, error) {
	identity := &models.Identity{}
	for _, f := range []struct {
		name  string
		plain string
		dst   **models.EncString
	}{
		{"title", view.Title, &identity.Title},
		{"first name", view.FirstName, &identity.FirstName},
		{"middle name", view.MiddleName, &identity.MiddleName},
		{"last name", view.LastName, &identity.LastName},
		{"address1", view.Address1, &identity.Address1},
		{"address2", view.Address2, &identity.Address2},
		{"address3", view.Address3, &identity.Address3},
		{"city", view.City, &identity.City},
		{"state", view.State, &identity.State},
		{"postal code", view.PostalCode, &identity.PostalCode},
		{"country", view.Country, &identity.Country},
		{"company", view.Company, &identity.Company},
		{"email", view.Email, &identity.Email},
		{"phone", view.Phone, &identity.Phone},
		{"ssn", view.SSN, &identity.SSN},
		{"username", view.Username, &identity.Username},
		{"passport number", view.PassportNumber, &identity.PassportNumber},
		{"license number", view.LicenseNumber, &identity.LicenseNumber},
	} {
		enc, err := s.encryptString(f.plain, key)
		if err != nil {
			return nil, fmt.Errorf("encrypt %s: %w", f.name, err)
		}
		*f.dst = enc
	}
	return identity, nil
}

func (s *CipherService) decryptIdentity(identity *models.Identity, key *crypto.SymmetricCryptoKey, cipherID string) models.IdentityView {
	if identity == nil {
		return models.IdentityView{}
	}
	return models.IdentityView{
		Title:          s.decryptString(identity.Title, key, cipherID, "title"),
		FirstName:      s.decryptString(identity.FirstName, key, cipherID, "first name"),
		MiddleName:     s.decryptString(identity.MiddleName, key, cipherID, "middle name"),
		LastName:       s.decryptString(identity.LastName, key, cipherID, "last name"),
		Address1:       s.decryptString(identity.Address1, key, cipherID, "address1"),
		Address2:       s.decryptString(identity.Address2, key, cipherID, "address2"),
		Address3:       s.decryptString(identity.Address3, key, cipherID, "address3"),
		City:           s.decryptString(identity.City, key, cipherID, "city"),
		State:          s.decryptString(identity.State, key, cipherID, "state"),
		PostalCode:     s.decryptString(identity.PostalCode, key, cipherID, "postal code"),
		Country:        s.decryptString(identity.Country, key, cipherID, "country"),
		Company:        s.decryptString(identity.Company, key, cipherID, "company"),
		Email:          s.decryptString(identity.Email, key, cipherID, "email"),
		Phone:          s.decryptString(identity.Phone, key, cipherID, "phone"),
		SSN:            s.decryptString(identity.SSN, key, cipherID, "ssn"),
		Username:       s.decryptString(identity.Username, key, cipherID, "username"),
		PassportNumber: s.decryptString(identity.PassportNumber, key, cipherID, "passport number"),
		LicenseNumber:  s.decryptString(identity.LicenseNumber, key, cipherID, "license number"),
	}
}

func (s *CipherService) decryptSecureNote(note *models.SecureNote) models.SecureNoteView {
	if note == nil {
		return models.SecureNoteView{}
	}
	return models.SecureNoteView{Type: note.Type}
}
