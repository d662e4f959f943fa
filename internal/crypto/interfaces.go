package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import (
	"context"

	"github.com/solovyev/go-vault-cipher/models"
)

// EncryptService performs the symmetric primitives every codec is built
// on. It knows nothing about vault items, ownership, or the network; it
// turns plaintext plus a key into versioned ciphertext wrappers and back.
type EncryptService interface {
	// Encrypt encrypts a UTF-8 string under key and returns the wrapped
	// ciphertext. The caller is responsible for the "nil in, nil out"
	// rule; Encrypt itself always encrypts, including empty strings.
	Encrypt(plain string, key *SymmetricCryptoKey) (*models.EncString, error)

	// EncryptBytes encrypts a binary payload under key, producing the
	// blob form used for file contents.
	EncryptBytes(plain []byte, key *SymmetricCryptoKey) (*models.EncArrayBuffer, error)

	// DecryptString reverses Encrypt. It verifies the MAC before
	// touching the ciphertext and fails on any mismatch.
	DecryptString(enc *models.EncString, key *SymmetricCryptoKey) (string, error)

	// DecryptBytes reverses EncryptBytes.
	DecryptBytes(enc *models.EncArrayBuffer, key *SymmetricCryptoKey) ([]byte, error)

	// GenerateDataKey creates a fresh random 64-byte key and returns it
	// together with its form wrapped under wrappingKey. Every call
	// produces independent material.
	GenerateDataKey(wrappingKey *SymmetricCryptoKey) (*SymmetricCryptoKey, *models.EncString, error)

	// UnwrapKey decrypts a wrapped key back into usable key material.
	UnwrapKey(wrapped *models.EncString, wrappingKey *SymmetricCryptoKey) (*SymmetricCryptoKey, error)
}

// KeyStore is the external collaborator holding the unlocked vault keys.
// Implementations own key lifetime (unlock populates, lock destroys);
// this package only borrows keys for the duration of a call.
type KeyStore interface {
	// PersonalKey returns the active user's key, or ErrNoPersonalKey
	// when the vault is locked.
	PersonalKey(ctx context.Context) (*SymmetricCryptoKey, error)

	// OrganizationKey returns the shared key for orgID, or nil without
	// error when the user has no key for that organization.
	OrganizationKey(ctx context.Context, orgID string) (*SymmetricCryptoKey, error)
}
