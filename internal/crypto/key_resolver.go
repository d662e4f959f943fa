package crypto

import (
	"context"
	"fmt"
)

// KeyResolver picks the correct symmetric key for an item's ownership
// context. It owns no key material itself; keys are borrowed from the
// [KeyStore] for the duration of a single call.
type KeyResolver struct {
	keys KeyStore
}

// NewKeyResolver constructs a KeyResolver backed by keys.
func NewKeyResolver(keys KeyStore) *KeyResolver {
	return &KeyResolver{keys: keys}
}

// ResolveKey resolves the key for an item owned by orgID ("" for personal
// items). A non-nil explicit key short-circuits the lookup, which lets
// bulk operations resolve once and reuse the key per item.
//
// An org-owned item with no available org key fails with
// [ErrMissingOrganizationKey]; there is no fallback to the personal key.
func (r *KeyResolver) ResolveKey(ctx context.Context, orgID string, explicit *SymmetricCryptoKey) (*SymmetricCryptoKey, error) {
	if explicit != nil {
		return explicit, nil
	}

	if orgID != "" {
		key, err := r.keys.OrganizationKey(ctx, orgID)
		if err != nil {
			return nil, fmt.Errorf("fetch organization key: %w", err)
		}
		if key == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingOrganizationKey, orgID)
		}
		return key, nil
	}

	key, err := r.keys.PersonalKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch personal key: %w", err)
	}
	return key, nil
}
