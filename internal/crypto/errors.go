package crypto

import "errors"

// Sentinel errors returned by the crypto layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrMissingOrganizationKey is returned when an item is owned by an
	// organization for which no key is available. This is fatal for the
	// operation: there is deliberately no fallback to the personal key,
	// which would leak the item across tenants.
	ErrMissingOrganizationKey = errors.New("no key available for organization")

	// ErrNoPersonalKey is returned when the vault is locked and no
	// personal key is present in the keyring.
	ErrNoPersonalKey = errors.New("no personal key available")

	// ErrInvalidKeyLength is returned when raw key material is neither
	// 32 bytes (encrypt-only) nor 64 bytes (encrypt + MAC).
	ErrInvalidKeyLength = errors.New("invalid symmetric key length")

	// ErrKeyTypeMismatch is returned when a ciphertext's encryption type
	// does not match the type of the key offered for decryption.
	ErrKeyTypeMismatch = errors.New("encryption type does not match key")

	// ErrMacMismatch is returned when the HMAC over a ciphertext does not
	// verify. The ciphertext is corrupt or the key is wrong.
	ErrMacMismatch = errors.New("message authentication failed")

	// ErrInvalidPadding is returned when CBC padding cannot be removed
	// from a decrypted block.
	ErrInvalidPadding = errors.New("invalid message padding")
)
