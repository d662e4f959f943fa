// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package crypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/argon2"
)

// KeyChain derives the personal vault key from the user's master password.
// Argon2id tuning parameters are stored in the struct so they can be
// adjusted per deployment target (e.g. mobile vs. desktop).
type KeyChain struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChain constructs a KeyChain with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChain() *KeyChain {
	return &KeyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt reads 16 random bytes from the OS CSPRNG. The salt is not
// a secret; it exists so identical passwords derive different keys.
func (k *KeyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveMasterKey derives the personal vault key from masterPassword and
// salt: Argon2id produces 32 bytes of master material, which is then
// HKDF-stretched into the full 64-byte encrypt+MAC key. The result exists
// only in client memory and is never transmitted anywhere.
func (k *KeyChain) DeriveMasterKey(masterPassword string, salt []byte) (*SymmetricCryptoKey, error) {
	material := argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)

	master, err := NewSymmetricCryptoKey(material)
	if err != nil {
		return nil, err
	}
	return StretchKey(master)
}
