// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/solovyev/go-vault-cipher/internal/crypto"
	"github.com/solovyev/go-vault-cipher/internal/logger"
	"github.com/solovyev/go-vault-cipher/internal/store"
	"github.com/solovyev/go-vault-cipher/models"
)

// maxPasswordHistory caps the history list after any single encrypt call;
// the oldest entries are dropped first.
const maxPasswordHistory = 5

// CipherService is the aggregate codec between plaintext CipherViews and
// encrypted Cipher records. It owns the encrypt-time business rules
// (password-history capture, hidden-field change detection) and borrows
// keys per call; no key material outlives an invocation.
type CipherService struct {
	enc      crypto.EncryptService
	resolver *crypto.KeyResolver
	local    store.LocalStore
	logger   *logger.Logger
}

// NewCipherService wires the aggregate codec with its collaborators.
func NewCipherService(enc crypto.EncryptService, resolver *crypto.KeyResolver, local store.LocalStore, log *logger.Logger) *CipherService {
	return &CipherService{enc: enc, resolver: resolver, local: local, logger: log}
}

// EncryptOptions tunes a single Encrypt call.
type EncryptOptions struct {
	// Key skips key resolution; bulk operations resolve once and pass
	// the same key for every item.
	Key *crypto.SymmetricCryptoKey

	// Original is the prior encrypted version of the item, used for
	// password-history diffing. When nil it is fetched from the local
	// store for existing items.
	Original *models.Cipher
}

// Encrypt converts a plaintext view into its encrypted domain record.
//
// For existing items the previous version is decrypted and diffed: a
// changed login password prepends a history entry carrying the old
// password, and every previously-hidden custom field whose value changed
// (or disappeared) prepends a synthetic "<name>: <old value>" entry.
// History is capped at maxPasswordHistory entries.
//
// Items owned by an organization fail with ErrMissingOrganizationKey when
// no key for that organization is available; there is no fallback to the
// personal key.
func (s *CipherService) Encrypt(ctx context.Context, view *models.CipherView, opts EncryptOptions) (*models.Cipher, error) {
	key, err := s.resolver.ResolveKey(ctx, view.KeyIdentifier(), opts.Key)
	if err != nil {
		return nil, err
	}

	// Work on a shallow copy: history capture rewrites the history slice
	// and the login revision date without touching the caller's view.
	model := *view

	var original *models.Cipher
	if model.ID != "" {
		original = opts.Original
		if original == nil {
			cached, getErr := s.local.Get(ctx, model.ID)
			switch {
			case getErr == nil:
				original = cached
			case errors.Is(getErr, store.ErrCipherNotFound):
				// First encrypt on this device; nothing to diff against.
			default:
				return nil, fmt.Errorf("load prior cipher: %w", getErr)
			}
		}
	}

	// Items carrying a per-cipher key keep the same inner key across
	// re-encrypts: fields stay encrypted under it, and its wrapped form is
	// refreshed under the target key so ownership moves carry it along.
	// The prior version is always handled under its own owner's key, which
	// may differ from the target key when the item changes hands.
	itemKey := key
	var cipherKey *models.EncString
	if original != nil {
		origKey, resolveErr := s.resolver.ResolveKey(ctx, original.KeyIdentifier(), nil)
		if resolveErr != nil {
			return nil, fmt.Errorf("resolve prior cipher key: %w", resolveErr)
		}

		if err = s.capturePasswordHistory(ctx, &model, original, origKey); err != nil {
			return nil, err
		}

		if original.Key != nil {
			inner, unwrapErr := s.enc.UnwrapKey(original.Key, origKey)
			if unwrapErr != nil {
				return nil, fmt.Errorf("unwrap cipher key: %w", unwrapErr)
			}
			rewrapped, wrapErr := s.enc.Encrypt(string(inner.Key), key)
			if wrapErr != nil {
				return nil, fmt.Errorf("wrap cipher key: %w", wrapErr)
			}
			itemKey = inner
			cipherKey = rewrapped
		}
	}
	if len(model.PasswordHistory) > maxPasswordHistory {
		model.PasswordHistory = model.PasswordHistory[:maxPasswordHistory]
	}

	c := &models.Cipher{
		ID:                  model.ID,
		OrganizationID:      model.OrganizationID,
		FolderID:            model.FolderID,
		Type:                model.Type,
		Key:                 cipherKey,
		Favorite:            model.Favorite,
		Edit:                model.Edit,
		ViewPassword:        model.ViewPassword,
		OrganizationUseTotp: model.OrganizationUseTotp,
		Reprompt:            model.Reprompt,
		CollectionIDs:       append([]string(nil), model.CollectionIDs...),
		RevisionDate:        model.RevisionDate,
		CreationDate:        model.CreationDate,
		DeletedDate:         model.DeletedDate,
	}

	// Independent ciphertexts; encrypt the shared fields, the item
	// payload, and the collections concurrently and join before returning.
	g := new(errgroup.Group)
	g.Go(func() error {
		var encErr error
		if c.Name, encErr = s.encryptString(model.Name, itemKey); encErr != nil {
			return encErr
		}
		c.Notes, encErr = s.encryptString(model.Notes, itemKey)
		return encErr
	})
	g.Go(func() error {
		return s.encryptItem(c, &model, itemKey)
	})
	g.Go(func() error {
		var encErr error
		c.Fields, encErr = s.encryptFields(model.Fields, itemKey)
		return encErr
	})
	g.Go(func() error {
		var encErr error
		c.PasswordHistory, encErr = s.encryptPasswordHistory(model.PasswordHistory, itemKey)
		return encErr
	})
	g.Go(func() error {
		var encErr error
		c.Attachments, encErr = s.encryptAttachments(model.Attachments, itemKey)
		return encErr
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return c, nil
}

// capturePasswordHistory seeds model's history from the decrypted prior
// version and prepends entries for a changed login password and for
// changed or removed hidden fields. The login passwordRevisionDate is
// bumped only when a password entry is actually captured.
func (s *CipherService) capturePasswordHistory(ctx context.Context, model *models.CipherView, original *models.Cipher, key *crypto.SymmetricCryptoKey) error {
	existing, err := s.Decrypt(ctx, original, key)
	if err != nil {
		return fmt.Errorf("decrypt prior cipher: %w", err)
	}

	model.PasswordHistory = append([]models.PasswordHistoryView(nil), existing.PasswordHistory...)

	if model.Type == models.CipherTypeLogin && existing.Type == models.CipherTypeLogin {
		if existing.Login.Password != "" && existing.Login.Password != model.Login.Password {
			now := time.Now().UTC()
			model.PasswordHistory = append([]models.PasswordHistoryView{{
				Password:     existing.Login.Password,
				LastUsedDate: now,
			}}, model.PasswordHistory...)
			model.Login.PasswordRevisionDate = &now
		} else {
			model.Login.PasswordRevisionDate = existing.Login.PasswordRevisionDate
		}
	}

	// Hidden fields are secrets on par with passwords: record the old
	// value whenever it changed or the field disappeared.
	for _, ef := range existing.Fields {
		if ef.Type != models.FieldTypeHidden || ef.Name == "" || ef.Value == "" {
			continue
		}
		matched := findHiddenField(model.Fields, ef.Name)
		if matched == nil || matched.Value != ef.Value {
			model.PasswordHistory = append([]models.PasswordHistoryView{{
				Password:     ef.Name + ": " + ef.Value,
				LastUsedDate: time.Now().UTC(),
			}}, model.PasswordHistory...)
		}
	}

	return nil
}

func findHiddenField(fields []models.FieldView, name string) *models.FieldView {
	for i := range fields {
		if fields[i].Type == models.FieldTypeHidden && fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}

// Decrypt converts an encrypted record back into a plaintext view. It is
// deliberately lossy on partial corruption: a single malformed field
// decrypts to its zero value while the rest of the record still resolves,
// since real vaults carry legacy and occasionally damaged data. Only an
// unknown type tag aborts the whole record.
func (s *CipherService) Decrypt(ctx context.Context, c *models.Cipher, key *crypto.SymmetricCryptoKey) (*models.CipherView, error) {
	itemKey := key
	if c.Key != nil {
		if inner, err := s.enc.UnwrapKey(c.Key, key); err == nil {
			itemKey = inner
		} else {
			s.logger.Debug().Str("cipher_id", c.ID).Msg("cipher key unwrap failed, falling back to owner key")
		}
	}

	view := &models.CipherView{
		ID:                  c.ID,
		OrganizationID:      c.OrganizationID,
		FolderID:            c.FolderID,
		Type:                c.Type,
		Favorite:            c.Favorite,
		Edit:                c.Edit,
		ViewPassword:        c.ViewPassword,
		OrganizationUseTotp: c.OrganizationUseTotp,
		Reprompt:            c.Reprompt,
		CollectionIDs:       append([]string(nil), c.CollectionIDs...),
		RevisionDate:        c.RevisionDate,
		CreationDate:        c.CreationDate,
		DeletedDate:         c.DeletedDate,
	}

	view.Name = s.decryptString(c.Name, itemKey, c.ID, "name")
	view.Notes = s.decryptString(c.Notes, itemKey, c.ID, "notes")

	switch c.Type {
	case models.CipherTypeLogin:
		view.Login = s.decryptLogin(c.Login, itemKey, c.ID)
	case models.CipherTypeCard:
		view.Card = s.decryptCard(c.Card, itemKey, c.ID)
	case models.CipherTypeIdentity:
		view.Identity = s.decryptIdentity(c.Identity, itemKey, c.ID)
	case models.CipherTypeSecureNote:
		view.SecureNote = s.decryptSecureNote(c.SecureNote)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCipherType, c.Type)
	}

	for _, f := range c.Fields {
		view.Fields = append(view.Fields, models.FieldView{
			Name:     s.decryptString(f.Name, itemKey, c.ID, "field name"),
			Value:    s.decryptString(f.Value, itemKey, c.ID, "field value"),
			Type:     f.Type,
			LinkedID: f.LinkedID,
		})
	}

	for _, ph := range c.PasswordHistory {
		view.PasswordHistory = append(view.PasswordHistory, models.PasswordHistoryView{
			Password:     s.decryptString(ph.Password, itemKey, c.ID, "password history"),
			LastUsedDate: ph.LastUsedDate,
		})
	}

	for _, a := range c.Attachments {
		av := models.AttachmentView{
			ID:       a.ID,
			URL:      a.URL,
			Size:     a.Size,
			SizeName: a.SizeName,
			FileName: s.decryptString(a.FileName, itemKey, c.ID, "attachment file name"),
		}
		if a.Key != nil {
			if dataKey, err := s.enc.UnwrapKey(a.Key, itemKey); err == nil {
				av.Key = dataKey.Key
			} else {
				s.logger.Debug().Str("cipher_id", c.ID).Str("attachment_id", a.ID).Msg("attachment key unwrap failed")
			}
		}
		view.Attachments = append(view.Attachments, av)
	}

	return view, nil
}

// encryptString applies the uniform nullable rule: empty plaintext maps
// to a nil ciphertext, never to an encrypted empty string.
func (s *CipherService) encryptString(plain string, key *crypto.SymmetricCryptoKey) (*models.EncString, error) {
	if plain == "" {
		return nil, nil
	}
	return s.enc.Encrypt(plain, key)
}

// decryptString is the lossy inverse of encryptString: nil in, empty out,
// and any decryption failure degrades to empty instead of failing the
// whole record.
func (s *CipherService) decryptString(enc *models.EncString, key *crypto.SymmetricCryptoKey, cipherID, field string) string {
	if enc == nil {
		return ""
	}
	plain, err := s.enc.DecryptString(enc, key)
	if err != nil {
		s.logger.Debug().Str("cipher_id", cipherID).Str("field", field).Msg("failed to decrypt field")
		return ""
	}
	return plain
}

func (s *CipherService) encryptFields(fields []models.FieldView, key *crypto.SymmetricCryptoKey) ([]models.Field, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	out := make([]models.Field, 0, len(fields))
	for _, f := range fields {
		// Boolean fields hold the literal strings "true"/"false"; any
		// other value, including empty, is coerced to "false".
		if f.Type == models.FieldTypeBoolean && f.Value != "true" {
			f.Value = "false"
		}

		name, err := s.encryptString(f.Name, key)
		if err != nil {
			return nil, fmt.Errorf("encrypt field name: %w", err)
		}
		value, err := s.encryptString(f.Value, key)
		if err != nil {
			return nil, fmt.Errorf("encrypt field value: %w", err)
		}
		out = append(out, models.Field{Name: name, Value: value, Type: f.Type, LinkedID: f.LinkedID})
	}
	return out, nil
}

func (s *CipherService) encryptPasswordHistory(history []models.PasswordHistoryView, key *crypto.SymmetricCryptoKey) ([]models.PasswordHistory, error) {
	if len(history) == 0 {
		return nil, nil
	}

	out := make([]models.PasswordHistory, 0, len(history))
	for _, ph := range history {
		password, err := s.encryptString(ph.Password, key)
		if err != nil {
			return nil, fmt.Errorf("encrypt password history: %w", err)
		}
		out = append(out, models.PasswordHistory{Password: password, LastUsedDate: ph.LastUsedDate})
	}
	return out, nil
}

func (s *CipherService) encryptAttachments(attachments []models.AttachmentView, key *crypto.SymmetricCryptoKey) ([]models.Attachment, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	out := make([]models.Attachment, 0, len(attachments))
	for _, a := range attachments {
		fileName, err := s.encryptString(a.FileName, key)
		if err != nil {
			return nil, fmt.Errorf("encrypt attachment file name: %w", err)
		}

		att := models.Attachment{
			ID:       a.ID,
			URL:      a.URL,
			Size:     a.Size,
			SizeName: a.SizeName,
			FileName: fileName,
		}
		if len(a.Key) > 0 {
			wrapped, err := s.enc.Encrypt(string(a.Key), key)
			if err != nil {
				return nil, fmt.Errorf("wrap attachment key: %w", err)
			}
			att.Key = wrapped
		}
		out = append(out, att)
	}
	return out, nil
}
