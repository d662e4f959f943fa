package store

import "errors"

// Sentinel errors returned by the local store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCipherNotFound is returned when a query targets a cipher id
	// that is not present in the local cache.
	ErrCipherNotFound = errors.New("cipher was not found")

	// ErrAttachmentNotFound is returned when DeleteAttachment targets an
	// attachment id the cached cipher does not reference.
	ErrAttachmentNotFound = errors.New("attachment was not found")
)
