// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/solovyev/go-vault-cipher/internal/adapter"
	"github.com/solovyev/go-vault-cipher/internal/crypto"
	"github.com/solovyev/go-vault-cipher/internal/logger"
	"github.com/solovyev/go-vault-cipher/internal/store"
	"github.com/solovyev/go-vault-cipher/models"
)

// compensationTimeout bounds the cleanup delete issued after a failed
// upload; it runs on a context detached from the caller's.
const compensationTimeout = 30 * time.Second

// AttachmentService encrypts attachment blobs and drives the two-phase
// upload protocol: register the attachment with the server, then transfer
// the encrypted bytes via whichever strategy the server selected. A
// registration whose upload fails is deleted again so the server never
// keeps a record pointing at bytes that were never stored.
type AttachmentService struct {
	enc      crypto.EncryptService
	resolver *crypto.KeyResolver
	api      adapter.ApiClient
	local    store.LocalStore
	logger   *logger.Logger
}

// NewAttachmentService wires the attachment orchestrator.
func NewAttachmentService(enc crypto.EncryptService, resolver *crypto.KeyResolver, api adapter.ApiClient, local store.LocalStore, log *logger.Logger) *AttachmentService {
	return &AttachmentService{enc: enc, resolver: resolver, api: api, local: local, logger: log}
}

// EncryptedAttachment is the output of EncryptAttachment: everything
// needed to register and upload one attachment.
type EncryptedAttachment struct {
	// FileName is the file name encrypted under the item's key.
	FileName *models.EncString

	// WrappedKey is the fresh data key wrapped under the item's key; its
	// wire form is sent to the server on registration.
	WrappedKey *models.EncString

	// DataKey is the unwrapped data key, kept in memory only.
	DataKey *crypto.SymmetricCryptoKey

	// Data is the blob encrypted under DataKey.
	Data *models.EncArrayBuffer
}

// EncryptAttachment prepares one attachment for upload. Every call draws a
// fresh random data key, so encrypting the same file twice never reuses
// key material; the file name is encrypted under the item's key, not the
// data key.
func (s *AttachmentService) EncryptAttachment(ctx context.Context, cipher *models.Cipher, fileName string, data []byte) (*EncryptedAttachment, error) {
	itemKey, err := s.itemKey(ctx, cipher)
	if err != nil {
		return nil, err
	}

	encName, err := s.enc.Encrypt(fileName, itemKey)
	if err != nil {
		return nil, fmt.Errorf("encrypt attachment file name: %w", err)
	}

	dataKey, wrappedKey, err := s.enc.GenerateDataKey(itemKey)
	if err != nil {
		return nil, fmt.Errorf("generate attachment data key: %w", err)
	}

	encData, err := s.enc.EncryptBytes(data, dataKey)
	if err != nil {
		return nil, fmt.Errorf("encrypt attachment data: %w", err)
	}

	return &EncryptedAttachment{
		FileName:   encName,
		WrappedKey: wrappedKey,
		DataKey:    dataKey,
		Data:       encData,
	}, nil
}

// SaveAttachmentRaw encrypts data and uploads it as a new attachment on
// cipher. On success the server's updated cipher record is cached locally
// (unless admin) and returned.
//
// If the transfer fails after the attachment was registered, the
// registration is deleted on a detached context and the original failure
// is returned wrapped in [ErrUploadFailed]. Caller cancellation skips the
// compensating delete; the caller walked away mid-protocol and cleanup on
// its behalf is not safe to assume.
func (s *AttachmentService) SaveAttachmentRaw(ctx context.Context, cipher *models.Cipher, fileName string, data []byte, admin bool) (*models.Cipher, error) {
	att, err := s.EncryptAttachment(ctx, cipher, fileName, data)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.PostCipherAttachment(ctx, cipher.ID, models.AttachmentRequest{
		Key:          att.WrappedKey.String(),
		FileName:     att.FileName.String(),
		FileSize:     int64(att.Data.Size()),
		AdminRequest: admin,
	})
	if err != nil {
		return nil, fmt.Errorf("register attachment: %w", err)
	}

	if err = s.uploadFile(ctx, cipher.ID, resp, att); err != nil {
		if ctx.Err() == nil {
			s.compensate(ctx, cipher.ID, resp.AttachmentID, admin)
		}
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	updated := resp.CipherResponse
	if admin {
		updated = resp.CipherMiniResponse
	}
	if updated == nil {
		return nil, fmt.Errorf("attachment upload response carries no cipher")
	}

	if !admin {
		if err = s.local.Upsert(ctx, updated); err != nil {
			return nil, fmt.Errorf("cache updated cipher: %w", err)
		}
	}
	return updated, nil
}

// uploadFile transfers the encrypted bytes via the strategy the server
// selected at registration time.
func (s *AttachmentService) uploadFile(ctx context.Context, cipherID string, resp *models.AttachmentUploadDataResponse, att *EncryptedAttachment) error {
	switch resp.FileUploadType {
	case models.FileUploadDirect:
		return s.api.PostAttachmentFile(ctx, cipherID, resp.AttachmentID, att.WrappedKey.String(), att.FileName.String(), att.Data.Bytes)
	case models.FileUploadCloudBlob:
		renew := func(ctx context.Context) (string, error) {
			return s.api.RenewAttachmentUploadURL(ctx, cipherID, resp.AttachmentID)
		}
		return s.api.UploadBlob(ctx, resp.URL, att.Data.Bytes, renew)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedUploadType, resp.FileUploadType)
	}
}

// compensate deletes a registered attachment whose upload failed. It runs
// detached from the caller's context so an upload error does not leave an
// orphaned registration just because the caller's deadline also ran out.
// Compensation failure is logged, not returned; the upload error is the
// one the caller needs.
func (s *AttachmentService) compensate(ctx context.Context, cipherID, attachmentID string, admin bool) {
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	del := s.api.DeleteCipherAttachment
	if admin {
		del = s.api.DeleteCipherAttachmentAdmin
	}
	if err := del(dctx, cipherID, attachmentID); err != nil {
		s.logger.Err(err).
			Str("cipher_id", cipherID).
			Str("attachment_id", attachmentID).
			Msg("failed to delete attachment after upload failure")
	}
}

// DeleteAttachmentWithServer removes an attachment server-side and drops
// it from the locally cached cipher record.
func (s *AttachmentService) DeleteAttachmentWithServer(ctx context.Context, cipherID, attachmentID string, admin bool) error {
	del := s.api.DeleteCipherAttachment
	if admin {
		del = s.api.DeleteCipherAttachmentAdmin
	}
	if err := del(ctx, cipherID, attachmentID); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}

	if err := s.local.DeleteAttachment(ctx, cipherID, attachmentID); err != nil {
		s.logger.Err(err).
			Str("cipher_id", cipherID).
			Str("attachment_id", attachmentID).
			Msg("failed to drop attachment from local cache")
	}
	return nil
}

// DecryptAttachmentData decrypts a downloaded attachment blob: the wrapped
// data key from the attachment record is unwrapped under the item's key,
// then the blob is decrypted under the data key.
func (s *AttachmentService) DecryptAttachmentData(ctx context.Context, cipher *models.Cipher, attachment *models.Attachment, encData []byte) ([]byte, error) {
	if attachment.Key == nil {
		return nil, fmt.Errorf("%w: %s", ErrAttachmentMissingKey, attachment.ID)
	}

	itemKey, err := s.itemKey(ctx, cipher)
	if err != nil {
		return nil, err
	}

	dataKey, err := s.enc.UnwrapKey(attachment.Key, itemKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap attachment key: %w", err)
	}

	buf, err := models.NewEncArrayBuffer(encData)
	if err != nil {
		return nil, fmt.Errorf("parse attachment blob: %w", err)
	}
	return s.enc.DecryptBytes(buf, dataKey)
}

// itemKey resolves the key item fields are encrypted under: the owner's
// key, or the unwrapped per-cipher key when the item carries one.
func (s *AttachmentService) itemKey(ctx context.Context, cipher *models.Cipher) (*crypto.SymmetricCryptoKey, error) {
	key, err := s.resolver.ResolveKey(ctx, cipher.KeyIdentifier(), nil)
	if err != nil {
		return nil, err
	}
	if cipher.Key == nil {
		return key, nil
	}

	inner, err := s.enc.UnwrapKey(cipher.Key, key)
	if err != nil {
		return nil, fmt.Errorf("unwrap cipher key: %w", err)
	}
	return inner, nil
}
