// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/solovyev/go-vault-cipher/models"
)

// SymmetricCryptoKey holds raw symmetric key material together with the
// sub-keys derived from it. Keys live in memory only while the vault is
// unlocked; they are never logged and never persisted outside secure
// storage. Treat instances as immutable shared-read values.
type SymmetricCryptoKey struct {
	// Key is the full raw material: 32 bytes for encrypt-only keys,
	// 64 bytes for keys carrying a separate MAC half.
	Key []byte

	// EncKey is the AES key (first 32 bytes of Key).
	EncKey []byte

	// MacKey is the HMAC-SHA256 key (last 32 bytes of a 64-byte Key),
	// nil for encrypt-only keys.
	MacKey []byte

	// Type tags the ciphertexts this key produces.
	Type models.EncryptionType
}

// NewSymmetricCryptoKey builds a key from raw material. 64-byte material
// splits into an encryption half and a MAC half; 32-byte material yields
// an encrypt-only key for legacy data.
func NewSymmetricCryptoKey(key []byte) (*SymmetricCryptoKey, error) {
	switch len(key) {
	case 64:
		return &SymmetricCryptoKey{
			Key:    key,
			EncKey: key[:32],
			MacKey: key[32:],
			Type:   models.AesCbc256HmacSha256B64,
		}, nil
	case 32:
		return &SymmetricCryptoKey{
			Key:    key,
			EncKey: key,
			Type:   models.AesCbc256B64,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(key))
	}
}

// StretchKey expands 32 bytes of derived material into a full 64-byte
// encrypt+MAC key using HKDF-Expand with domain-separating info strings.
// Used to upgrade a password-derived master key before it touches data.
func StretchKey(key *SymmetricCryptoKey) (*SymmetricCryptoKey, error) {
	if len(key.Key) != 32 {
		return nil, fmt.Errorf("%w: can only stretch 32-byte keys, got %d", ErrInvalidKeyLength, len(key.Key))
	}

	stretched := make([]byte, 64)
	if err := hkdfExpand(key.Key, "enc", stretched[:32]); err != nil {
		return nil, err
	}
	if err := hkdfExpand(key.Key, "mac", stretched[32:]); err != nil {
		return nil, err
	}
	return NewSymmetricCryptoKey(stretched)
}

func hkdfExpand(prk []byte, info string, out []byte) error {
	r := hkdf.Expand(sha256.New, prk, []byte(info))
	if _, err := io.ReadFull(r, out); err != nil {
		return fmt.Errorf("hkdf expand %q: %w", info, err)
	}
	return nil
}
