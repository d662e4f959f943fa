// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package service

import (
	"context"
	"fmt"

	"github.com/solovyev/go-vault-cipher/internal/adapter"
	"github.com/solovyev/go-vault-cipher/internal/crypto"
	"github.com/solovyev/go-vault-cipher/internal/logger"
	"github.com/solovyev/go-vault-cipher/internal/store"
	"github.com/solovyev/go-vault-cipher/models"
)

// ShareService moves personally-owned items into an organization. Sharing
// re-encrypts the whole item under the organization's key before anything
// is sent; the server only ever swaps one opaque record for another.
type ShareService struct {
	codec    *CipherService
	resolver *crypto.KeyResolver
	api      adapter.ApiClient
	local    store.LocalStore
	logger   *logger.Logger
}

// NewShareService wires the share orchestrator.
func NewShareService(codec *CipherService, resolver *crypto.KeyResolver, api adapter.ApiClient, local store.LocalStore, log *logger.Logger) *ShareService {
	return &ShareService{codec: codec, resolver: resolver, api: api, local: local, logger: log}
}

// ShareWithServer transfers one item to organizationID, placing it into
// collectionIDs. Items carrying an attachment without a per-attachment key
// are rejected with [ErrAttachmentMissingKey]: such blobs are encrypted
// directly under the personal key and cannot follow the item.
func (s *ShareService) ShareWithServer(ctx context.Context, view *models.CipherView, organizationID string, collectionIDs []string) (*models.Cipher, error) {
	if err := checkShareableAttachments(view); err != nil {
		return nil, err
	}

	orgKey, err := s.resolver.ResolveKey(ctx, organizationID, nil)
	if err != nil {
		return nil, err
	}

	cipher, err := s.encryptForOrganization(ctx, view, organizationID, collectionIDs, orgKey)
	if err != nil {
		return nil, err
	}

	shared, err := s.api.PutShareCipher(ctx, cipher.ID, models.CipherShareRequest{
		Cipher:        cipher,
		CollectionIDs: collectionIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("share cipher %s: %w", cipher.ID, err)
	}

	if err = s.local.Upsert(ctx, shared); err != nil {
		return nil, fmt.Errorf("cache shared cipher: %w", err)
	}
	return shared, nil
}

// ShareManyWithServer is the bulk variant of ShareWithServer. The
// organization key is resolved once and reused for every item; any item
// with an unshareable attachment fails the whole batch before the first
// request is made.
func (s *ShareService) ShareManyWithServer(ctx context.Context, views []*models.CipherView, organizationID string, collectionIDs []string) error {
	for _, view := range views {
		if err := checkShareableAttachments(view); err != nil {
			return fmt.Errorf("cipher %s: %w", view.ID, err)
		}
	}

	orgKey, err := s.resolver.ResolveKey(ctx, organizationID, nil)
	if err != nil {
		return err
	}

	ciphers := make([]*models.Cipher, 0, len(views))
	for _, view := range views {
		cipher, err := s.encryptForOrganization(ctx, view, organizationID, collectionIDs, orgKey)
		if err != nil {
			return fmt.Errorf("encrypt cipher %s: %w", view.ID, err)
		}
		ciphers = append(ciphers, cipher)
	}

	if err = s.api.PutShareCiphers(ctx, models.CipherBulkShareRequest{
		Ciphers:       ciphers,
		CollectionIDs: collectionIDs,
	}); err != nil {
		return fmt.Errorf("share ciphers: %w", err)
	}

	if err = s.local.Upsert(ctx, ciphers...); err != nil {
		return fmt.Errorf("cache shared ciphers: %w", err)
	}
	return nil
}

// encryptForOrganization re-encrypts view under orgKey with its ownership
// rewritten, leaving the caller's view untouched.
func (s *ShareService) encryptForOrganization(ctx context.Context, view *models.CipherView, organizationID string, collectionIDs []string, orgKey *crypto.SymmetricCryptoKey) (*models.Cipher, error) {
	clone := *view
	clone.OrganizationID = organizationID
	clone.CollectionIDs = collectionIDs
	return s.codec.Encrypt(ctx, &clone, EncryptOptions{Key: orgKey})
}

func checkShareableAttachments(view *models.CipherView) error {
	for _, a := range view.Attachments {
		if len(a.Key) == 0 {
			return fmt.Errorf("%w: %s", ErrAttachmentMissingKey, a.ID)
		}
	}
	return nil
}
