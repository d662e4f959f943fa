package crypto

import (
	"context"
	"sync"
)

// Keyring is the in-memory [KeyStore] used while the vault is unlocked.
// Lock wipes all key material; a locked keyring answers every personal
// key request with ErrNoPersonalKey and every org lookup with nil.
type Keyring struct {
	mu       sync.RWMutex
	personal *SymmetricCryptoKey
	orgKeys  map[string]*SymmetricCryptoKey
}

// NewKeyring returns an empty, locked Keyring.
func NewKeyring() *Keyring {
	return &Keyring{orgKeys: make(map[string]*SymmetricCryptoKey)}
}

// Unlock installs the personal key and the organization keys the user has
// access to, replacing any previous state.
func (k *Keyring) Unlock(personal *SymmetricCryptoKey, orgKeys map[string]*SymmetricCryptoKey) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.personal = personal
	k.orgKeys = make(map[string]*SymmetricCryptoKey, len(orgKeys))
	for id, key := range orgKeys {
		k.orgKeys[id] = key
	}
}

// Lock destroys all held key material.
func (k *Keyring) Lock() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.personal != nil {
		zero(k.personal)
	}
	for _, key := range k.orgKeys {
		zero(key)
	}
	k.personal = nil
	k.orgKeys = make(map[string]*SymmetricCryptoKey)
}

// PersonalKey implements [KeyStore].
func (k *Keyring) PersonalKey(_ context.Context) (*SymmetricCryptoKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.personal == nil {
		return nil, ErrNoPersonalKey
	}
	return k.personal, nil
}

// OrganizationKey implements [KeyStore]. A missing key is not an error
// here; the resolver decides whether that is fatal.
func (k *Keyring) OrganizationKey(_ context.Context, orgID string) (*SymmetricCryptoKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.orgKeys[orgID], nil
}

func zero(key *SymmetricCryptoKey) {
	for i := range key.Key {
		key.Key[i] = 0
	}
}
