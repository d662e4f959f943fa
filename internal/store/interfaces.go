package store

//go:generate mockgen -source=interfaces.go -destination=../mock/local_store_mock.go -package=mock

import (
	"context"

	"github.com/solovyev/go-vault-cipher/models"
)

// LocalStore is the persistence collaborator for encrypted cipher
// records. Only domain (encrypted) records ever pass through it; views
// are never persisted.
type LocalStore interface {
	// Upsert inserts or replaces the given cipher records.
	Upsert(ctx context.Context, ciphers ...*models.Cipher) error

	// Get returns the cipher with the given id, or ErrCipherNotFound.
	Get(ctx context.Context, id string) (*models.Cipher, error)

	// GetAll returns every cached cipher record.
	GetAll(ctx context.Context) ([]*models.Cipher, error)

	// Delete removes a cipher record. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error

	// DeleteAttachment removes one attachment entry from a cached
	// cipher record, leaving the rest of the record untouched.
	DeleteAttachment(ctx context.Context, cipherID, attachmentID string) error
}
